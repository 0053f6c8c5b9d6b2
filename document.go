// FILE: embedconf/document.go
package embedconf

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Document is a parsed configuration file. The root is always a mapping;
// nested values are mappings (map[string]any), arrays ([]any), or scalars
// (bool, string, int64, float64). A Document is immutable after load and
// owned by the resolution that loaded it.
type Document struct {
	root map[string]any
}

// LoadDocument reads and parses the configuration file at path.
// The format is chosen by file extension: .json and .yaml/.yml are parsed
// as JSON and YAML respectively, anything else as TOML.
//
// Failures are precise: a missing file wraps ErrConfigNotFound, invalid
// UTF-8 wraps ErrInvalidEncoding with the offset of the first bad byte,
// and malformed syntax wraps ErrParse with the parser's diagnostic.
// A Document is only returned when the whole file parsed.
func LoadDocument(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return nil, fmt.Errorf("failed to read config file '%s': %w", path, err)
	}

	if !utf8.Valid(data) {
		return nil, fmt.Errorf("%w: invalid byte at offset %d in '%s'",
			ErrInvalidEncoding, validUTF8Len(data), path)
	}

	root := make(map[string]any)
	switch detectFileFormat(path) {
	case "json":
		decoder := json.NewDecoder(bytes.NewReader(data))
		decoder.UseNumber() // Preserve number precision
		if err := decoder.Decode(&root); err != nil {
			return nil, fmt.Errorf("%w: failed to parse JSON config file '%s': %w", ErrParse, path, err)
		}
	case "yaml":
		if err := yaml.Unmarshal(data, &root); err != nil {
			return nil, fmt.Errorf("%w: failed to parse YAML config file '%s': %w", ErrParse, path, err)
		}
	default:
		if err := toml.Unmarshal(data, &root); err != nil {
			return nil, fmt.Errorf("%w: failed to parse TOML config file '%s': %w", ErrParse, path, err)
		}
	}

	return &Document{root: normalizeMap(root)}, nil
}

// detectFileFormat maps a file extension to a parser name.
func detectFileFormat(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return "json"
	case ".yaml", ".yml":
		return "yaml"
	default:
		return "toml"
	}
}
