package board

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	errs "github.com/matzehuels/dashgrid/pkg/errors"
)

// Format is a board file encoding.
type Format string

// Supported encodings.
const (
	FormatTOML Format = "toml"
	FormatJSON Format = "json"
)

// FormatFromPath picks the encoding from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".json":
		return FormatJSON, nil
	}
	return "", errs.New(errs.ErrCodeInvalidFormat, "unsupported board file %s (must be .toml or .json)", path)
}

// ReadFile reads and validates a board file.
func ReadFile(path string) (Board, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return Board{}, err
	}
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Board{}, errs.Wrap(errs.ErrCodeFileNotFound, err, "board file %s", path)
		}
		return Board{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	b, err := Read(f, format)
	if err != nil {
		return Board{}, fmt.Errorf("read %s: %w", path, err)
	}
	return b, nil
}

// Read decodes and validates a board from r. Kind and size names are
// case-insensitive.
func Read(r io.Reader, format Format) (Board, error) {
	b := empty()
	switch format {
	case FormatTOML:
		md, err := toml.NewDecoder(r).Decode(&b)
		if err != nil {
			return Board{}, errs.Wrap(errs.ErrCodeInvalidBoard, err, "decode toml")
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return Board{}, errs.New(errs.ErrCodeInvalidBoard, "unknown key %q", undecoded[0].String())
		}
	case FormatJSON:
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&b); err != nil {
			return Board{}, errs.Wrap(errs.ErrCodeInvalidBoard, err, "decode json")
		}
	default:
		return Board{}, errs.New(errs.ErrCodeInvalidFormat, "unsupported board format %q", format)
	}

	if err := b.normalize(); err != nil {
		return Board{}, err
	}
	if err := b.Validate(); err != nil {
		return Board{}, err
	}
	return b, nil
}

// Write encodes b to w.
func Write(w io.Writer, b Board, format Format) error {
	switch format {
	case FormatTOML:
		if err := toml.NewEncoder(w).Encode(b); err != nil {
			return fmt.Errorf("encode toml: %w", err)
		}
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(b); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
	default:
		return errs.New(errs.ErrCodeInvalidFormat, "unsupported board format %q", format)
	}
	return nil
}

// WriteFile writes b to path, choosing the encoding from its extension.
// The file is created with 0644 permissions.
func WriteFile(path string, b Board) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := Write(&buf, b, format); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
