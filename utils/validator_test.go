package utils

import "testing"

func TestIsAllowedThesisFile(t *testing.T) {
	cases := []struct {
		filename string
		allowed  bool
	}{
		{"thesis.pdf", true},
		{"thesis.docx", true},
		{"Thesis.PDF", true},
		{"THESIS.DOCX", true},
		{"thesis.doc", false},
		{"thesis.txt", false},
		{"thesis.pdf.exe", false},
		{"thesis", false},
		{"", false},
	}

	for _, tc := range cases {
		if got := IsAllowedThesisFile(tc.filename); got != tc.allowed {
			t.Errorf("IsAllowedThesisFile(%q) = %v, want %v", tc.filename, got, tc.allowed)
		}
	}
}

func TestFileExtension(t *testing.T) {
	cases := []struct {
		filename string
		want     string
	}{
		{"thesis.pdf", "pdf"},
		{"Thesis.PDF", "pdf"},
		{"report.DocX", "docx"},
		{"noext", ""},
	}

	for _, tc := range cases {
		if got := FileExtension(tc.filename); got != tc.want {
			t.Errorf("FileExtension(%q) = %q, want %q", tc.filename, got, tc.want)
		}
	}
}

func TestValidateEmail(t *testing.T) {
	valid := []string{"student@university.edu", "first.last+tag@sub.example.org"}
	invalid := []string{"", "nope", "missing@tld", "@example.com"}

	for _, email := range valid {
		if !ValidateEmail(email) {
			t.Errorf("ValidateEmail(%q) = false, want true", email)
		}
	}
	for _, email := range invalid {
		if ValidateEmail(email) {
			t.Errorf("ValidateEmail(%q) = true, want false", email)
		}
	}
}

func TestSanitizeInput(t *testing.T) {
	if got := SanitizeInput("  hello\x00world  "); got != "helloworld" {
		t.Errorf("SanitizeInput returned %q", got)
	}
}
