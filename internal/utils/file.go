package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"careerpilot/internal/errors"
)

// ValidateCVFile checks a CV file against the upload constraints:
// it must exist, carry one of the allowed extensions, and stay under
// the size limit.
func ValidateCVFile(filename string, maxSize int64, allowedExtensions []string) error {
	if filename == "" {
		return errors.NewValidationError(errors.ErrCodeFileNotFound,
			"No CV file specified", nil)
	}

	info, err := os.Stat(filename)
	if err != nil {
		if os.IsNotExist(err) {
			return errors.NewIOError(errors.ErrCodeFileNotFound,
				fmt.Sprintf("CV file does not exist: %s", filename), err)
		}
		return errors.NewIOError(errors.ErrCodeFileNotReadable,
			fmt.Sprintf("Cannot access CV file: %s", filename), err)
	}
	if info.IsDir() {
		return errors.NewValidationError(errors.ErrCodeInvalidFormat,
			fmt.Sprintf("Path is a directory, not a file: %s", filename), nil)
	}

	ext := GetFileExtension(filename)
	if !slices.Contains(allowedExtensions, ext) {
		return errors.NewValidationError(errors.ErrCodeInvalidFormat,
			fmt.Sprintf("Unsupported CV format %q, allowed: %s",
				ext, strings.Join(allowedExtensions, ", ")), nil)
	}

	if maxSize > 0 && info.Size() > maxSize {
		return errors.NewValidationError(errors.ErrCodeFileTooLarge,
			fmt.Sprintf("CV file is %s, limit is %s",
				FormatFileSize(info.Size()), FormatFileSize(maxSize)), nil)
	}

	return nil
}

// GetFileExtension returns the file extension in lowercase
func GetFileExtension(filename string) string {
	ext := filepath.Ext(filename)
	return strings.ToLower(ext)
}

// FormatFileSize returns a human-readable file size
func FormatFileSize(size int64) string {
	const unit = 1024
	if size < unit {
		return fmt.Sprintf("%d B", size)
	}
	div, exp := int64(unit), 0
	for n := size / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(size)/float64(div), "KMGTPE"[exp])
}
