package controllers

import (
	"testing"

	"thesis-management-api/models"
)

func TestThesisStatusMessage(t *testing.T) {
	cases := []struct {
		status string
		want   string
	}{
		{models.StatusPending, "Thesis pending"},
		{models.StatusApproved, "Thesis approved"},
		{models.StatusRejected, "Thesis rejected"},
		{models.StatusRevisionsRequested, "Thesis revisions requested"},
	}

	for _, tc := range cases {
		if got := thesisStatusMessage(tc.status); got != tc.want {
			t.Errorf("thesisStatusMessage(%q) = %q, want %q", tc.status, got, tc.want)
		}
	}
}
