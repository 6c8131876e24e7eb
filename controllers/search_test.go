package controllers

import (
	"reflect"
	"testing"
)

func TestNormalizePagination(t *testing.T) {
	cases := []struct {
		page, pageSize         int
		wantPage, wantPageSize int
	}{
		{1, 10, 1, 10},
		{0, 10, 1, 10},
		{-5, 10, 1, 10},
		{3, 0, 3, 10},
		{3, -1, 3, 10},
		{3, 101, 3, 10},
		{2, 100, 2, 100},
	}

	for _, tc := range cases {
		page, pageSize := normalizePagination(tc.page, tc.pageSize)
		if page != tc.wantPage || pageSize != tc.wantPageSize {
			t.Errorf("normalizePagination(%d, %d) = (%d, %d), want (%d, %d)",
				tc.page, tc.pageSize, page, pageSize, tc.wantPage, tc.wantPageSize)
		}
	}
}

func TestTotalPageCount(t *testing.T) {
	cases := []struct {
		total    int64
		pageSize int
		want     int64
	}{
		{0, 10, 0},
		{1, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{95, 10, 10},
		{100, 10, 10},
		{101, 10, 11},
	}

	for _, tc := range cases {
		if got := totalPageCount(tc.total, tc.pageSize); got != tc.want {
			t.Errorf("totalPageCount(%d, %d) = %d, want %d", tc.total, tc.pageSize, got, tc.want)
		}
	}
}

func TestDistinctNonEmpty(t *testing.T) {
	got := distinctNonEmpty([]string{"AI", "", "  ", "AI", "Databases", " Networks "})
	want := []string{"AI", "Databases", "Networks"}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("distinctNonEmpty = %v, want %v", got, want)
	}
}

func TestDistinctNonEmptyAllBlank(t *testing.T) {
	got := distinctNonEmpty([]string{"", "   ", ""})
	if len(got) != 0 {
		t.Errorf("distinctNonEmpty = %v, want empty", got)
	}
}
