// Package output renders tool payloads as text for MCP results.
package output

import (
	"encoding/json"
	"fmt"
	"strings"

	toon "github.com/toon-format/toon-go"
)

// Format selects how payloads are encoded.
type Format string

const (
	// FormatJSON is 2-space indented JSON.
	FormatJSON Format = "json"
	// FormatTOON is Token-Oriented Object Notation, a denser encoding
	// for the same data model.
	FormatTOON Format = "toon"
)

// Formats lists the accepted format names.
func Formats() []string {
	return []string{string(FormatJSON), string(FormatTOON)}
}

// ParseFormat maps a name to a Format. Empty means JSON.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case "", FormatJSON:
		return FormatJSON, nil
	case FormatTOON:
		return FormatTOON, nil
	default:
		return "", fmt.Errorf("unknown output format %q (want one of %s)", s, strings.Join(Formats(), ", "))
	}
}

// Encode renders data in the given format.
func Encode(data any, format Format) (string, error) {
	switch format {
	case FormatTOON:
		// Round-trip through JSON so json tags and raw upstream payloads
		// both end up as plain maps and slices.
		generic, err := toGeneric(data)
		if err != nil {
			return "", err
		}
		out, err := toon.Marshal(generic, toon.WithIndent(2))
		if err != nil {
			return "", fmt.Errorf("encoding toon: %w", err)
		}
		return string(out), nil
	default:
		out, err := json.MarshalIndent(data, "", "  ")
		if err != nil {
			return "", fmt.Errorf("encoding json: %w", err)
		}
		return string(out), nil
	}
}

func toGeneric(data any) (any, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("encoding json: %w", err)
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, fmt.Errorf("decoding json: %w", err)
	}
	return v, nil
}
