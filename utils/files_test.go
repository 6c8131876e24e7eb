package utils

import (
	"testing"
	"time"
)

func TestStoredFilename(t *testing.T) {
	now := time.UnixMilli(1700000000000)

	got := StoredFilename("thesis.pdf", now)
	want := "1700000000000_thesis.pdf"
	if got != want {
		t.Errorf("StoredFilename = %q, want %q", got, want)
	}
}

func TestStoredFilenameStripsPathComponents(t *testing.T) {
	now := time.UnixMilli(1700000000000)

	cases := []struct {
		name string
		want string
	}{
		{"../../etc/passwd.pdf", "1700000000000_passwd.pdf"},
		{"/tmp/thesis.pdf", "1700000000000_thesis.pdf"},
		{"C:\\Users\\student\\thesis.pdf", "1700000000000_thesis.pdf"},
	}

	for _, tc := range cases {
		if got := StoredFilename(tc.name, now); got != tc.want {
			t.Errorf("StoredFilename(%q) = %q, want %q", tc.name, got, tc.want)
		}
	}
}
