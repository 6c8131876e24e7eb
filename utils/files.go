package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// UploadPath returns the upload directory, creating it if needed.
func UploadPath() (string, error) {
	uploadPath := os.Getenv("UPLOAD_PATH")
	if uploadPath == "" {
		uploadPath = "./uploads"
	}
	if err := os.MkdirAll(uploadPath, os.ModePerm); err != nil {
		return "", err
	}
	return uploadPath, nil
}

// StoredFilename prefixes the original name with a millisecond timestamp so
// two uploads of the same file do not collide on disk. Path separators are
// stripped from the original name first.
func StoredFilename(originalName string, now time.Time) string {
	base := filepath.Base(strings.ReplaceAll(originalName, "\\", "/"))
	return fmt.Sprintf("%d_%s", now.UnixMilli(), base)
}
