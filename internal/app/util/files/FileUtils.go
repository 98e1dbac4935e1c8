package files

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// ReadOutputFile reads the specified output file and returns its text content.
func ReadOutputFile(filePath string) (string, error) {
	content, err := os.ReadFile(filePath)
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(string(content)), nil
}

// RemoveIfExists deletes filePath. A file that is already gone is not an error.
func RemoveIfExists(filePath string) error {
	if filePath == "" {
		return nil
	}
	if err := os.Remove(filePath); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

// SiblingPath returns filePath with its extension replaced by ext.
func SiblingPath(filePath string, ext string) string {
	return strings.TrimSuffix(filePath, filepath.Ext(filePath)) + ext
}

// Exists reports whether filePath names an existing file.
func Exists(filePath string) bool {
	_, err := os.Stat(filePath)
	return err == nil
}
