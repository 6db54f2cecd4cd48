package common

import (
	"testing"
)

func TestValidateOutputFormat(t *testing.T) {
	supported := []string{"json", "text", "markdown"}

	tests := []struct {
		name          string
		format        string
		supported     []string
		expectError   bool
		expectedError string
	}{
		{
			name:      "valid format",
			format:    "json",
			supported: supported,
		},
		{
			name:          "unknown format",
			format:        "xml",
			supported:     supported,
			expectError:   true,
			expectedError: `unsupported output format "xml", supported formats: [json text markdown]`,
		},
		{
			name:          "case sensitive",
			format:        "JSON",
			supported:     supported,
			expectError:   true,
			expectedError: `unsupported output format "JSON", supported formats: [json text markdown]`,
		},
		{
			name:          "empty format string",
			format:        "",
			supported:     supported,
			expectError:   true,
			expectedError: `unsupported output format "", supported formats: [json text markdown]`,
		},
		{
			name:      "empty supported formats allows all",
			format:    "xml",
			supported: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOutputFormat(tt.format, tt.supported)

			if tt.expectError {
				if err == nil {
					t.Fatal("expected error but got none")
				}
				if tt.expectedError != "" && err.Error() != tt.expectedError {
					t.Errorf("expected error '%s', got '%s'", tt.expectedError, err.Error())
				}
				return
			}
			if err != nil {
				t.Errorf("expected no error but got: %v", err)
			}
		})
	}
}

func TestGetSupportedFormats(t *testing.T) {
	formats := []string{"json", "text", "markdown"}
	result := GetSupportedFormats(formats)

	if len(result) != len(formats) {
		t.Fatalf("expected %d formats, got %d", len(formats), len(result))
	}
	for i, want := range formats {
		if result[i] != want {
			t.Errorf("format[%d] = '%s', want '%s'", i, result[i], want)
		}
	}
}
