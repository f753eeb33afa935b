package output

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Key   string `json:"key"`
	Total int    `json:"total"`
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    Format
		wantErr bool
	}{
		{"", FormatJSON, false},
		{"json", FormatJSON, false},
		{"JSON", FormatJSON, false},
		{" toon ", FormatTOON, false},
		{"markdown", "", true},
	}

	for _, tt := range tests {
		got, err := ParseFormat(tt.input)
		if tt.wantErr {
			assert.Error(t, err, "ParseFormat(%q)", tt.input)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
}

func TestEncode_JSONIsIndented(t *testing.T) {
	got, err := Encode(sample{Key: "k", Total: 2}, FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"key\": \"k\",\n  \"total\": 2\n}", got)
}

func TestEncode_JSONReindentsRawPayloads(t *testing.T) {
	raw := json.RawMessage(`{"a":{"b":1}}`)
	got, err := Encode(raw, FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"a\": {\n    \"b\": 1\n  }\n}", got)
}

func TestEncode_TOON(t *testing.T) {
	got, err := Encode(sample{Key: "project-key", Total: 42}, FormatTOON)
	require.NoError(t, err)
	assert.Contains(t, got, "key")
	assert.Contains(t, got, "project-key")
	assert.Contains(t, got, "42")
	assert.NotContains(t, got, "{")
}
