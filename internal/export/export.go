// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package export writes lead collections to CSV, JSON, or YAML files.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/lead-harvester/pkg/types"
)

// Writer persists leads to a file, truncating any previous contents.
type Writer interface {
	WriteLeads(path string, leads []types.Lead) error
}

// CSVWriter writes a header row followed by one row per lead.
type CSVWriter struct{}

// WriteLeads implements Writer.
func (CSVWriter) WriteLeads(path string, leads []types.Lead) error {
	return writeFile(path, func(w io.Writer) error { return WriteCSV(w, leads) })
}

// WriteCSV writes leads as CSV with the LeadColumns header.
func WriteCSV(w io.Writer, leads []types.Lead) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(types.LeadColumns); err != nil {
		return fmt.Errorf("csv: write header: %w", err)
	}
	for _, l := range leads {
		if err := cw.Write(l.Row()); err != nil {
			return fmt.Errorf("csv: write row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// JSONWriter writes leads as an indented JSON array.
type JSONWriter struct{}

// WriteLeads implements Writer.
func (JSONWriter) WriteLeads(path string, leads []types.Lead) error {
	return writeFile(path, func(w io.Writer) error {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(nonNil(leads))
	})
}

// YAMLWriter writes leads as a YAML sequence.
type YAMLWriter struct{}

// WriteLeads implements Writer.
func (YAMLWriter) WriteLeads(path string, leads []types.Lead) error {
	data, err := yaml.Marshal(nonNil(leads))
	if err != nil {
		return fmt.Errorf("marshaling YAML: %w", err)
	}
	return writeFile(path, func(w io.Writer) error {
		_, err := w.Write(data)
		return err
	})
}

// ForFormat returns the Writer for f. An empty format is inferred from the
// extension of path and falls back to CSV.
func ForFormat(f types.OutputFormat, path string) (Writer, error) {
	if f == "" {
		f = FormatFromPath(path)
	}
	switch f {
	case types.FormatCSV:
		return CSVWriter{}, nil
	case types.FormatJSON:
		return JSONWriter{}, nil
	case types.FormatYAML:
		return YAMLWriter{}, nil
	default:
		return nil, fmt.Errorf("unsupported format %q: use csv, json, or yaml", f)
	}
}

// FormatFromPath maps a file extension to an output format.
func FormatFromPath(path string) types.OutputFormat {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return types.FormatJSON
	case ".yaml", ".yml":
		return types.FormatYAML
	default:
		return types.FormatCSV
	}
}

func writeFile(path string, write func(io.Writer) error) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func nonNil(leads []types.Lead) []types.Lead {
	if leads == nil {
		return []types.Lead{}
	}
	return leads
}
