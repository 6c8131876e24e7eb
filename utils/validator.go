// utils/validator.go - Input validation
package utils

import (
	"path/filepath"
	"regexp"
	"strings"
)

// allowedThesisExtensions is the closed set of upload types the faculty accepts.
var allowedThesisExtensions = map[string]bool{
	".pdf":  true,
	".docx": true,
}

// ValidateEmail checks if email is valid
func ValidateEmail(email string) bool {
	emailRegex := regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	return emailRegex.MatchString(email)
}

// ValidatePassword checks password strength
func ValidatePassword(password string) (bool, string) {
	if len(password) < 8 {
		return false, "Password must be at least 8 characters"
	}

	return true, ""
}

// IsAllowedThesisFile reports whether filename carries an accepted
// extension, case-insensitively.
func IsAllowedThesisFile(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	return allowedThesisExtensions[ext]
}

// FileExtension returns the lowercased extension without the leading dot,
// e.g. "Thesis.PDF" -> "pdf".
func FileExtension(filename string) string {
	return strings.TrimPrefix(strings.ToLower(filepath.Ext(filename)), ".")
}

// SanitizeInput removes potentially harmful characters
func SanitizeInput(input string) string {
	// Remove leading/trailing spaces
	input = strings.TrimSpace(input)

	// Remove null bytes
	input = strings.ReplaceAll(input, "\x00", "")

	return input
}
