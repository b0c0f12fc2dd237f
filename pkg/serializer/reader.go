/*
Copyright © 2025 Skaelvox authors
SPDX-License-Identifier: Apache-2.0
*/
package serializer

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// FormatFromPath determines the serialization format based on file extension.
// Supported extensions:
//   - .json → FormatJSON
//   - .yaml, .yml → FormatYAML
//   - .table, .txt → FormatTable
//   - .csv → FormatCSV
//
// Returns FormatJSON as default for unknown extensions.
// Extension matching is case-insensitive.
func FormatFromPath(filePath string) Format {
	lowerPath := strings.ToLower(filePath)
	switch {
	case strings.HasSuffix(lowerPath, ".json"):
		return FormatJSON
	case strings.HasSuffix(lowerPath, ".yaml"), strings.HasSuffix(lowerPath, ".yml"):
		return FormatYAML
	case strings.HasSuffix(lowerPath, ".table"), strings.HasSuffix(lowerPath, ".txt"):
		return FormatTable
	case strings.HasSuffix(lowerPath, ".csv"):
		return FormatCSV
	default:
		slog.Warn("unknown file extension, defaulting to JSON", "filePath", filePath)
		return FormatJSON
	}
}

// Reader handles deserialization of structured data from JSON or YAML.
// It supports reading from any io.Reader source including files, strings,
// and HTTP responses.
//
// Close must be called to release resources when using NewFileReader or
// NewFileReaderAuto, and is safe to call multiple times. Table and CSV
// formats are write-only.
type Reader struct {
	format Format
	input  io.Reader
	closer io.Closer
}

// NewReader creates a new Reader for deserializing data from an io.Reader source.
// Returns an error for unknown formats and for the write-only table/CSV formats.
// If input implements io.Closer it will be closed by Reader.Close().
func NewReader(format Format, input io.Reader) (*Reader, error) {
	if format.IsUnknown() {
		return nil, fmt.Errorf("unknown format: %s", format)
	}

	if format == FormatTable || format == FormatCSV {
		return nil, fmt.Errorf("%s format does not support deserialization", format)
	}

	r := &Reader{
		format: format,
		input:  input,
	}

	// Store closer if input implements it
	if closer, ok := input.(io.Closer); ok {
		r.closer = closer
	}

	return r, nil
}

// NewFileReader creates a new Reader that reads from a file path or URL.
// HTTP and HTTPS URLs are downloaded to a temporary file first.
// Close must be called to release the file handle.
func NewFileReader(format Format, filePath string) (*Reader, error) {
	if format.IsUnknown() {
		return nil, fmt.Errorf("unknown format: %s", format)
	}

	if format == FormatTable || format == FormatCSV {
		return nil, fmt.Errorf("%s format does not support deserialization", format)
	}

	var file *os.File
	var err error

	if strings.HasPrefix(filePath, "http://") || strings.HasPrefix(filePath, "https://") {
		name := fmt.Sprintf("skaelvox-%d.tmp", time.Now().UnixNano())
		tempFilePath := filepath.Join(os.TempDir(), name)
		httpReader := NewHttpReader()
		if err = httpReader.Download(filePath, tempFilePath); err != nil {
			return nil, fmt.Errorf("failed to download remote file: %w", err)
		}
		file, err = os.Open(tempFilePath)
	} else {
		file, err = os.Open(filePath)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}

	return &Reader{
		format: format,
		input:  file,
		closer: file,
	}, nil
}

// NewFileReaderAuto creates a new Reader with the format detected from the
// file extension via FormatFromPath.
func NewFileReaderAuto(filePath string) (*Reader, error) {
	format := FormatFromPath(filePath)
	return NewFileReader(format, filePath)
}

// Deserialize reads data from the input source and unmarshals it into v,
// which must be a pointer.
func (r *Reader) Deserialize(v any) error {
	if r == nil {
		return fmt.Errorf("reader is nil")
	}

	if r.input == nil {
		return fmt.Errorf("input source is nil")
	}

	switch r.format {
	case FormatJSON:
		decoder := json.NewDecoder(r.input)
		if err := decoder.Decode(v); err != nil {
			return fmt.Errorf("failed to decode JSON: %w", err)
		}
		return nil

	case FormatYAML:
		decoder := yaml.NewDecoder(r.input)
		if err := decoder.Decode(v); err != nil {
			return fmt.Errorf("failed to decode YAML: %w", err)
		}
		return nil

	default:
		return fmt.Errorf("unsupported format for deserialization: %s", r.format)
	}
}

// Close releases any resources held by the Reader. Safe to call multiple
// times and on a nil Reader.
func (r *Reader) Close() error {
	if r == nil {
		return nil
	}

	if r.closer != nil {
		err := r.closer.Close()
		r.closer = nil // Prevent double-close
		return err
	}
	return nil
}

// FromFile is a generic convenience function that loads and deserializes a
// file in one call. The format is detected from the file extension, and
// path may be a local file path or an HTTP(S) URL. Reader cleanup is
// handled internally.
//
// Example:
//
//	snap, err := serializer.FromFile[CatalogSnapshot]("catalog.yaml")
func FromFile[T any](path string) (*T, error) {
	fileFormat := FormatFromPath(path)
	slog.Debug("determined file format",
		slog.String("path", path),
		slog.String("format", string(fileFormat)),
	)

	ser, err := NewFileReader(fileFormat, path)
	if err != nil {
		return nil, fmt.Errorf("failed to create serializer for %q: %w", path, err)
	}

	defer func() {
		if closeErr := ser.Close(); closeErr != nil {
			slog.Warn("failed to close serializer", "error", closeErr)
		}
	}()

	var r T
	if err := ser.Deserialize(&r); err != nil {
		return nil, fmt.Errorf("failed to deserialize object from %q: %w", path, err)
	}

	return &r, nil
}
