package prompts

import (
	"context"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func getPrompt(t *testing.T, p Prompt, args map[string]string) (*mcp.GetPromptResult, error) {
	t.Helper()
	req := mcp.GetPromptRequest{}
	req.Params.Name = p.Definition().Name
	req.Params.Arguments = args
	return p.Handle(context.Background(), req)
}

func promptText(t *testing.T, result *mcp.GetPromptResult) string {
	t.Helper()
	require.Len(t, result.Messages, 1)
	assert.Equal(t, mcp.RoleUser, result.Messages[0].Role)
	tc, ok := result.Messages[0].Content.(mcp.TextContent)
	require.True(t, ok, "expected text content, got %T", result.Messages[0].Content)
	return tc.Text
}

func TestAll_RegistersEveryPrompt(t *testing.T) {
	var names []string
	for _, p := range All() {
		def := p.Definition()
		names = append(names, def.Name)
		assert.NotEmpty(t, def.Description, def.Name)

		require.NotEmpty(t, def.Arguments, def.Name)
		assert.Equal(t, "projectKey", def.Arguments[0].Name)
		assert.True(t, def.Arguments[0].Required, def.Name)
	}
	assert.Equal(t, []string{"analyze-project-quality", "generate-quality-report", "prioritize-issues"}, names)
}

func TestPrompts_MissingProjectKey(t *testing.T) {
	for _, p := range All() {
		for _, args := range []map[string]string{nil, {"projectKey": "  "}} {
			result, err := getPrompt(t, p, args)
			require.Error(t, err, p.Definition().Name)
			assert.Nil(t, result)
			assert.Contains(t, err.Error(), "'projectKey' is required")
		}
	}
}

// --- analyze-project-quality ---

func TestAnalyzeQualityPrompt_Handle(t *testing.T) {
	result, err := getPrompt(t, NewAnalyzeQualityPrompt(), map[string]string{"projectKey": "my-repo"})
	require.NoError(t, err)

	assert.Equal(t, "Analyze Project Quality: my-repo", result.Description)
	text := promptText(t, result)
	assert.Contains(t, text, `Analyze the quality of project "my-repo" in SonarQube.`)
	assert.Contains(t, text, `Use get-projects with query="my-repo"`)
	for _, tool := range []string{
		"get-projects", "get-project-details", "get-metrics", "get-quality-gate-status",
		"get-issues", "get-hotspots", "get-project-analyses",
	} {
		assert.Contains(t, text, "- "+tool, "workflow should reference %s", tool)
	}
	assert.NotContains(t, text, "{{")
}

// --- generate-quality-report ---

func TestQualityReportPrompt_IncludeIssuesDefault(t *testing.T) {
	result, err := getPrompt(t, NewQualityReportPrompt(), map[string]string{"projectKey": "demo"})
	require.NoError(t, err)

	text := promptText(t, result)
	assert.Contains(t, text, "## 4. Issues Analysis\n- Total issues by severity\n")
	assert.Contains(t, text, "- Detailed list of BLOCKER and CRITICAL issues\n\n## 5. Recommendations")
	assert.NotContains(t, text, "Statistical summary")
}

func TestQualityReportPrompt_WithoutIssues(t *testing.T) {
	result, err := getPrompt(t, NewQualityReportPrompt(), map[string]string{
		"projectKey":    "demo",
		"includeIssues": "false",
	})
	require.NoError(t, err)

	text := promptText(t, result)
	assert.Contains(t, text, "## 4. Issues Analysis\n- Statistical summary of issues\n\n## 5.")
	assert.NotContains(t, text, "Detailed list of BLOCKER")
}

func TestQualityReportPrompt_InvalidIncludeIssues(t *testing.T) {
	_, err := getPrompt(t, NewQualityReportPrompt(), map[string]string{
		"projectKey":    "demo",
		"includeIssues": "sometimes",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "includeIssues")
}

// --- prioritize-issues ---

func TestPrioritizeIssuesPrompt_DefaultMax(t *testing.T) {
	result, err := getPrompt(t, NewPrioritizeIssuesPrompt(), map[string]string{"projectKey": "demo"})
	require.NoError(t, err)

	text := promptText(t, result)
	assert.Contains(t, text, `prioritized list of up to 20 issues`)
	assert.Contains(t, text, "BLOCKER > CRITICAL > MAJOR > MINOR > INFO")
}

func TestPrioritizeIssuesPrompt_CustomMax(t *testing.T) {
	result, err := getPrompt(t, NewPrioritizeIssuesPrompt(), map[string]string{
		"projectKey": "demo",
		"maxIssues":  "5",
	})
	require.NoError(t, err)
	assert.Contains(t, promptText(t, result), "up to 5 issues")
}

func TestPrioritizeIssuesPrompt_InvalidMax(t *testing.T) {
	for _, v := range []string{"many", "0", "-3", "2.5"} {
		_, err := getPrompt(t, NewPrioritizeIssuesPrompt(), map[string]string{
			"projectKey": "demo",
			"maxIssues":  v,
		})
		require.Error(t, err, "maxIssues=%q", v)
		assert.Contains(t, err.Error(), "positive integer")
	}
}

// --- frontmatter ---

func TestParseFrontmatter(t *testing.T) {
	fm, body, err := parseFrontmatter([]byte("---\ntitle: T\ndescription: D\n---\n\nHello {{.X}}\n"))
	require.NoError(t, err)
	assert.Equal(t, "T", fm.Title)
	assert.Equal(t, "D", fm.Description)
	assert.Equal(t, "Hello {{.X}}\n", body)
}

func TestParseFrontmatter_Malformed(t *testing.T) {
	tests := map[string]string{
		"no header":    "Hello",
		"unterminated": "---\ntitle: T\n",
		"bad yaml":     "---\ntitle: [\n---\nbody",
	}
	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			_, _, err := parseFrontmatter([]byte(content))
			assert.Error(t, err)
		})
	}
}

func TestLoad_UnknownTemplate(t *testing.T) {
	_, err := load("does-not-exist")
	assert.Error(t, err)
}
