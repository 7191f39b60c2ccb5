package files

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Envelope wraps a report written to disk with export metadata so that
// artifacts from different runs can be told apart.
type Envelope struct {
	ExportID   string      `json:"exportId"`
	ExportedAt string      `json:"exportedAt"`
	Report     interface{} `json:"report"`
}

// ExpandPath resolves paths that include a tilde (~) to the user's home
// directory.
func ExpandPath(path string) (string, error) {
	if strings.HasPrefix(path, "~/") {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(homeDir, path[2:]), nil
	}
	return path, nil
}

// ValidateOutputPath checks that the given path can be written to: its
// parent directory must exist and the path itself must not be a directory.
func ValidateOutputPath(path string) error {
	if path == "" {
		return fmt.Errorf("output path is empty")
	}

	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return fmt.Errorf("output path %q is a directory", path)
	}

	parent := filepath.Dir(path)
	info, err := os.Stat(parent)
	if err != nil {
		return fmt.Errorf("output directory stat error: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%q is not a directory", parent)
	}
	return nil
}

// WriteReport writes the report to path as indented JSON, wrapped in an
// Envelope stamped with a fresh export id and the current UTC time.
func WriteReport(path string, report interface{}) error {
	expanded, err := ExpandPath(path)
	if err != nil {
		return err
	}
	if err := ValidateOutputPath(expanded); err != nil {
		return err
	}

	envelope := Envelope{
		ExportID:   uuid.NewString(),
		ExportedAt: time.Now().UTC().Format(time.RFC3339),
		Report:     report,
	}

	data, err := json.MarshalIndent(envelope, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}

	if err := os.WriteFile(expanded, data, 0o644); err != nil {
		return fmt.Errorf("failed to write report to %q: %w", expanded, err)
	}
	return nil
}
