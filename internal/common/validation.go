package common

import (
	"fmt"
	"slices"
)

// ValidateOutputFormat checks a requested output format against the
// formats the app configuration allows. An empty allow list accepts
// anything.
func ValidateOutputFormat(format string, supportedFormats []string) error {
	if len(supportedFormats) == 0 {
		return nil
	}

	if slices.Contains(supportedFormats, format) {
		return nil
	}

	return fmt.Errorf("unsupported output format %q, supported formats: %v",
		format, supportedFormats)
}

// GetSupportedFormats returns the configured format list, used for
// shell completion of the format flag.
func GetSupportedFormats(supportedFormats []string) []string {
	return supportedFormats
}
