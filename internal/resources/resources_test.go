package resources

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInfoResource_Definition(t *testing.T) {
	res := NewHandler(ServerInfo{}).InfoResource()

	assert.Equal(t, InfoURI, res.URI)
	assert.Equal(t, "application/json", res.MIMEType)
	assert.NotEmpty(t, res.Description)
}

func TestHandleInfo(t *testing.T) {
	info := ServerInfo{
		Name:         "sonarqube-mcp",
		Version:      "1.2.3",
		BaseURL:      "https://sonar.example.com",
		ReadOnly:     true,
		OutputFormat: "json",
		Tools:        []string{"get-projects", "get-issues"},
		Prompts:      []string{"prioritize-issues"},
	}
	h := NewHandler(info)

	req := mcp.ReadResourceRequest{}
	req.Params.URI = InfoURI
	contents, err := h.HandleInfo(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, contents, 1)

	text, ok := contents[0].(mcp.TextResourceContents)
	require.True(t, ok, "expected text contents, got %T", contents[0])
	assert.Equal(t, InfoURI, text.URI)
	assert.Equal(t, "application/json", text.MIMEType)

	var got ServerInfo
	require.NoError(t, json.Unmarshal([]byte(text.Text), &got))
	assert.Equal(t, info, got)
	assert.NotContains(t, text.Text, "token")
}
