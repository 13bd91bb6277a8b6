// Package export serializes the assembled report for downstream
// consumers (renderers, document exporters, plain stdout).
package export

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gauthierbraillon/yearwrap/internal/wrapped"
)

// MarshalReport renders the report as indented JSON.
func MarshalReport(r *wrapped.Report) ([]byte, error) {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode report: %w", err)
	}
	return append(data, '\n'), nil
}

// WriteReport writes the report JSON to path. The write goes through
// a temp file in the same directory and a rename, so a crash cannot
// leave a half-written report behind.
func WriteReport(r *wrapped.Report, path string) error {
	data, err := MarshalReport(r)
	if err != nil {
		return err
	}
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".yearwrap-*.json")
	if err != nil {
		return fmt.Errorf("create temp report in %s: %w", dir, err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write report: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close report: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("rename report to %s: %w", path, err)
	}
	return nil
}
