package export

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/Jumpaku/go-survey/errors"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatJSON, FormatYAML, FormatTOML:
		return Format(s), nil
	case "yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("%q: %w", s, errors.ErrUnsupportedType)
}

// Render encodes doc as text. JSON is indented by two spaces and leaves HTML
// characters unescaped so that the copied text reads as typed.
func Render(doc any, format Format) (string, error) {
	var buf bytes.Buffer
	switch format {
	case FormatJSON, "":
		enc := json.NewEncoder(&buf)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")
		if err := enc.Encode(doc); err != nil {
			return "", fmt.Errorf("failed to encode json: %w", err)
		}
		return string(bytes.TrimSuffix(buf.Bytes(), []byte("\n"))), nil
	case FormatYAML:
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return "", fmt.Errorf("failed to encode yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return "", fmt.Errorf("failed to encode yaml: %w", err)
		}
		return buf.String(), nil
	case FormatTOML:
		enc := toml.NewEncoder(&buf)
		enc.SetIndentTables(true)
		if err := enc.Encode(doc); err != nil {
			return "", fmt.Errorf("failed to encode toml: %w", err)
		}
		return buf.String(), nil
	}
	return "", fmt.Errorf("%q: %w", format, errors.ErrUnsupportedType)
}
