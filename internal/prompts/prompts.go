// Package prompts implements the MCP prompts offered to the host.
//
// MCP prompts are user-triggered workflows (like slash commands) that
// instruct the AI to run a sequence of SonarQube tools. Each prompt body
// is an embedded markdown template with YAML frontmatter; arguments are
// rendered into it with text/template.
package prompts

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"strings"
	"text/template"

	"github.com/mark3labs/mcp-go/mcp"
	"gopkg.in/yaml.v3"
)

//go:embed templates/*.md
var templateFiles embed.FS

// Prompt is what the server registers.
type Prompt interface {
	Definition() mcp.Prompt
	Handle(ctx context.Context, req mcp.GetPromptRequest) (*mcp.GetPromptResult, error)
}

// All returns every prompt in registration order.
func All() []Prompt {
	return []Prompt{
		NewAnalyzeQualityPrompt(),
		NewQualityReportPrompt(),
		NewPrioritizeIssuesPrompt(),
	}
}

// frontmatter is the YAML header of a template file.
type frontmatter struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

// promptTemplate is a parsed template file.
type promptTemplate struct {
	frontmatter
	body *template.Template
}

// mustLoad parses templates/<name>.md. The files are embedded, so a
// failure is a build defect.
func mustLoad(name string) *promptTemplate {
	t, err := load(name)
	if err != nil {
		panic(err)
	}
	return t
}

func load(name string) (*promptTemplate, error) {
	content, err := templateFiles.ReadFile("templates/" + name + ".md")
	if err != nil {
		return nil, fmt.Errorf("reading prompt %s: %w", name, err)
	}

	fm, body, err := parseFrontmatter(content)
	if err != nil {
		return nil, fmt.Errorf("prompt %s: %w", name, err)
	}

	tmpl, err := template.New(name).Option("missingkey=error").Parse(body)
	if err != nil {
		return nil, fmt.Errorf("parsing prompt %s: %w", name, err)
	}
	return &promptTemplate{frontmatter: fm, body: tmpl}, nil
}

// parseFrontmatter splits "---\n<yaml>\n---\n<body>".
func parseFrontmatter(content []byte) (frontmatter, string, error) {
	var fm frontmatter
	if !bytes.HasPrefix(content, []byte("---\n")) {
		return fm, "", fmt.Errorf("missing frontmatter")
	}

	rest := content[4:]
	end := bytes.Index(rest, []byte("\n---\n"))
	if end == -1 {
		return fm, "", fmt.Errorf("unterminated frontmatter")
	}

	if err := yaml.Unmarshal(rest[:end], &fm); err != nil {
		return fm, "", fmt.Errorf("decoding frontmatter: %w", err)
	}
	return fm, strings.TrimPrefix(string(rest[end+5:]), "\n"), nil
}

// render executes the template and wraps it as a single user message.
func (t *promptTemplate) render(subject string, data any) (*mcp.GetPromptResult, error) {
	var buf bytes.Buffer
	if err := t.body.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("rendering prompt %s: %w", t.body.Name(), err)
	}

	return &mcp.GetPromptResult{
		Description: fmt.Sprintf("%s: %s", t.Title, subject),
		Messages: []mcp.PromptMessage{
			{
				Role:    mcp.RoleUser,
				Content: mcp.NewTextContent(strings.TrimRight(buf.String(), "\n")),
			},
		},
	}, nil
}

// projectKeyArg reads the mandatory projectKey argument.
func projectKeyArg(req mcp.GetPromptRequest) (string, error) {
	key := strings.TrimSpace(req.Params.Arguments["projectKey"])
	if key == "" {
		return "", fmt.Errorf("argument 'projectKey' is required")
	}
	return key, nil
}

// optionalArg returns the trimmed argument value and whether it was set.
func optionalArg(req mcp.GetPromptRequest, name string) (string, bool) {
	v := strings.TrimSpace(req.Params.Arguments[name])
	return v, v != ""
}
