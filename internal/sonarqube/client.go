// Package sonarqube is a read-only client for the SonarQube / SonarCloud
// Web API.
//
// Every method performs exactly one GET request and returns either the
// decoded payload or an *Error classified by Kind. Nothing is cached and
// nothing is retried.
package sonarqube

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/hashicorp/go-hclog"

	"github.com/HendryAvila/sonarqube-mcp/internal/logging"
)

// DefaultBaseURL is used when no instance URL is configured.
const DefaultBaseURL = "https://sonarcloud.io"

// Config is the immutable client configuration, resolved once at startup.
type Config struct {
	BaseURL string
	Token   string
	// Timeout bounds each request. Zero means no timeout; the request
	// context still applies.
	Timeout time.Duration
}

// Client talks to one SonarQube instance. It is safe for concurrent use.
type Client struct {
	http    *resty.Client
	baseURL string
	logger  hclog.Logger
}

// NewClient validates cfg and builds a Client. A missing token yields an
// *Error of KindConfiguration and no HTTP client is created.
func NewClient(cfg Config, logger hclog.Logger) (*Client, error) {
	if strings.TrimSpace(cfg.Token) == "" {
		return nil, &Error{
			Op:     "Error creating SonarQube client",
			Kind:   KindConfiguration,
			Detail: "SONARQUBE_TOKEN not configured",
		}
	}
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	httpc := resty.New()
	logging.SetRestyLogger(httpc, logger)
	httpc.SetBaseURL(baseURL + "/api")
	httpc.SetHeader("Authorization", "Basic "+basicCredential(cfg.Token))
	httpc.SetHeader("Accept", "application/json")
	httpc.SetRetryCount(0)
	if cfg.Timeout > 0 {
		httpc.SetTimeout(cfg.Timeout)
	}

	return &Client{
		http:    httpc,
		baseURL: baseURL,
		logger:  logger,
	}, nil
}

// BaseURL returns the instance URL requests are sent to (without /api).
func (c *Client) BaseURL() string {
	return c.baseURL
}

// basicCredential encodes a token the way SonarQube expects it: the token
// is the username and the password is empty.
func basicCredential(token string) string {
	return base64.StdEncoding.EncodeToString([]byte(token + ":"))
}

// get issues one request and decodes a successful body into out.
func (c *Client) get(ctx context.Context, op, path string, params query, out any) error {
	start := time.Now()
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(params).
		Get(path)
	if err != nil {
		c.logger.Debug("upstream request failed", "path", path, "error", err)
		return transportError(op, err)
	}

	c.logger.Debug("upstream request",
		"path", path,
		"status", resp.StatusCode(),
		"duration", time.Since(start),
	)

	if !resp.IsSuccess() {
		return statusError(op, resp.StatusCode(), resp.Body())
	}

	if derr := decode(op, resp.Body(), out); derr != nil {
		derr.Status = resp.StatusCode()
		return derr
	}
	return nil
}

func decode(op string, body []byte, out any) *Error {
	if err := json.Unmarshal(body, out); err != nil {
		return &Error{
			Op:     op,
			Kind:   KindUpstream,
			Detail: fmt.Sprintf("decoding response: %v", err),
			Err:    err,
		}
	}
	return nil
}

// member returns one top-level member of a JSON object body, or JSON null
// when the member is absent.
func member(op string, body RawJSON, name string) (RawJSON, error) {
	var fields map[string]RawJSON
	if derr := decode(op, body, &fields); derr != nil {
		return nil, derr
	}
	if v, ok := fields[name]; ok {
		return v, nil
	}
	return RawJSON("null"), nil
}

// getRaw is get for payloads that are passed through unmodeled.
func (c *Client) getRaw(ctx context.Context, op, path string, params query) (RawJSON, error) {
	var raw RawJSON
	if err := c.get(ctx, op, path, params, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

// ─── Projects ────────────────────────────────────────────────────────────────

// ListProjectsOptions filters /api/components/search.
type ListProjectsOptions struct {
	// Query matches project names and keys (e.g. a repository name).
	Query    string
	Page     int
	PageSize int
}

// ListProjects returns one page of projects.
func (c *Client) ListProjects(ctx context.Context, opts ListProjectsOptions) (*ProjectsResponse, error) {
	const op = "Error fetching projects"

	params := query{}.
		set("qualifiers", "TRK").
		page(opts.Page, opts.PageSize).
		str("q", opts.Query)

	raw, err := c.getRaw(ctx, op, "/components/search", params)
	if err != nil {
		return nil, err
	}
	out := ProjectsResponse{Raw: raw}
	if derr := decode(op, raw, &out); derr != nil {
		return nil, derr
	}
	return &out, nil
}

// GetProject returns a single project component.
func (c *Client) GetProject(ctx context.Context, projectKey string) (*Project, error) {
	const op = "Error fetching project details"
	if projectKey == "" {
		return nil, invalidArgument(op, "project key is required")
	}

	raw, err := c.getRaw(ctx, op, "/components/show", query{}.set("component", projectKey))
	if err != nil {
		return nil, err
	}
	component, err := member(op, raw, "component")
	if err != nil {
		return nil, err
	}
	out := Project{Raw: component}
	if derr := decode(op, component, &out); derr != nil {
		return nil, derr
	}
	return &out, nil
}

// ListBranches returns the analyzed branches of a project.
func (c *Client) ListBranches(ctx context.Context, projectKey string) (RawJSON, error) {
	const op = "Error fetching project branches"
	if projectKey == "" {
		return nil, invalidArgument(op, "project key is required")
	}
	return c.getRaw(ctx, op, "/project_branches/list", query{}.set("project", projectKey))
}

// ListAnalyses returns one page of a project's analysis history.
func (c *Client) ListAnalyses(ctx context.Context, projectKey string, page, pageSize int) (RawJSON, error) {
	const op = "Error fetching project analyses"
	if projectKey == "" {
		return nil, invalidArgument(op, "project key is required")
	}

	params := query{}.
		set("project", projectKey).
		page(page, pageSize)
	return c.getRaw(ctx, op, "/project_analyses/search", params)
}

// ─── Issues ──────────────────────────────────────────────────────────────────

// IssueSearchOptions filters /api/issues/search. Empty fields are not sent.
type IssueSearchOptions struct {
	Severities []string
	Types      []string
	// Statuses is the legacy status filter; prefer IssueStatuses.
	Statuses      []string
	IssueStatuses []string
	Branch        string
	CreatedAfter  string
	CreatedBefore string
	Assignees     []string
	Tags          []string
	Page          int
	PageSize      int
}

// SearchIssues returns one page of issues for a project.
func (c *Client) SearchIssues(ctx context.Context, projectKey string, opts IssueSearchOptions) (*IssuesResponse, error) {
	const op = "Error fetching issues"
	if projectKey == "" {
		return nil, invalidArgument(op, "project key is required")
	}

	params := query{}.
		set("projects", projectKey).
		page(opts.Page, opts.PageSize).
		list("severities", opts.Severities).
		list("types", opts.Types).
		list("statuses", opts.Statuses).
		list("issueStatuses", opts.IssueStatuses).
		str("branch", opts.Branch).
		str("createdAfter", opts.CreatedAfter).
		str("createdBefore", opts.CreatedBefore).
		list("assignees", opts.Assignees).
		list("tags", opts.Tags)

	raw, err := c.getRaw(ctx, op, "/issues/search", params)
	if err != nil {
		return nil, err
	}
	out := IssuesResponse{Raw: raw}
	if derr := decode(op, raw, &out); derr != nil {
		return nil, derr
	}
	return &out, nil
}

// ─── Measures & quality gate ─────────────────────────────────────────────────

// GetMetrics returns the requested measures of a project. An empty
// metricKeys list is rejected without contacting the server.
func (c *Client) GetMetrics(ctx context.Context, projectKey string, metricKeys []string) (*MetricsResponse, error) {
	const op = "Error fetching metrics"
	if projectKey == "" {
		return nil, invalidArgument(op, "project key is required")
	}
	if len(metricKeys) == 0 {
		return nil, invalidArgument(op, "at least one metric key is required")
	}

	params := query{}.
		set("component", projectKey).
		list("metricKeys", metricKeys)

	raw, err := c.getRaw(ctx, op, "/measures/component", params)
	if err != nil {
		return nil, err
	}
	out := MetricsResponse{Raw: raw}
	if derr := decode(op, raw, &out); derr != nil {
		return nil, derr
	}
	return &out, nil
}

// GetQualityGateStatus returns the quality gate verdict of a project.
func (c *Client) GetQualityGateStatus(ctx context.Context, projectKey string) (*QualityGate, error) {
	const op = "Error fetching Quality Gate status"
	if projectKey == "" {
		return nil, invalidArgument(op, "project key is required")
	}

	raw, err := c.getRaw(ctx, op, "/qualitygates/project_status", query{}.set("projectKey", projectKey))
	if err != nil {
		return nil, err
	}
	status, err := member(op, raw, "projectStatus")
	if err != nil {
		return nil, err
	}
	out := QualityGate{Raw: status}
	if derr := decode(op, status, &out); derr != nil {
		return nil, derr
	}
	return &out, nil
}

// ─── Security hotspots ───────────────────────────────────────────────────────

// HotspotSearchOptions filters /api/hotspots/search. Resolution is only
// meaningful with Status "REVIEWED"; it is forwarded as given.
type HotspotSearchOptions struct {
	Branch          string
	Status          string
	Resolution      string
	InNewCodePeriod bool
	OnlyMine        bool
	Files           []string
	Page            int
	PageSize        int
}

// SearchHotspots returns one page of security hotspots for a project.
func (c *Client) SearchHotspots(ctx context.Context, projectKey string, opts HotspotSearchOptions) (RawJSON, error) {
	const op = "Error fetching security hotspots"
	if projectKey == "" {
		return nil, invalidArgument(op, "project key is required")
	}

	params := query{}.
		set("projectKey", projectKey).
		page(opts.Page, opts.PageSize).
		str("branch", opts.Branch).
		str("status", opts.Status).
		str("resolution", opts.Resolution).
		flag("inNewCodePeriod", opts.InNewCodePeriod).
		flag("onlyMine", opts.OnlyMine).
		list("files", opts.Files)
	return c.getRaw(ctx, op, "/hotspots/search", params)
}

// GetHotspot returns the full details of one security hotspot.
func (c *Client) GetHotspot(ctx context.Context, hotspotKey string) (RawJSON, error) {
	const op = "Error fetching hotspot details"
	if hotspotKey == "" {
		return nil, invalidArgument(op, "hotspot key is required")
	}
	return c.getRaw(ctx, op, "/hotspots/show", query{}.set("hotspot", hotspotKey))
}

// ─── Files & rules ───────────────────────────────────────────────────────────

// GetDuplications returns the duplicated blocks of a file.
func (c *Client) GetDuplications(ctx context.Context, fileKey string) (RawJSON, error) {
	const op = "Error fetching duplications"
	if fileKey == "" {
		return nil, invalidArgument(op, "file key is required")
	}
	return c.getRaw(ctx, op, "/duplications/show", query{}.set("key", fileKey))
}

// GetSource returns the numbered source lines of a file. from and to are
// 1-based and inclusive; zero leaves that end of the range open.
func (c *Client) GetSource(ctx context.Context, fileKey string, from, to int) (RawJSON, error) {
	const op = "Error fetching source code"
	if fileKey == "" {
		return nil, invalidArgument(op, "file key is required")
	}

	params := query{}.
		set("key", fileKey).
		positive("from", from).
		positive("to", to)
	return c.getRaw(ctx, op, "/sources/show", params)
}

// GetRule returns the description of a rule such as "java:S1144".
func (c *Client) GetRule(ctx context.Context, ruleKey string) (RawJSON, error) {
	const op = "Error fetching rule details"
	if ruleKey == "" {
		return nil, invalidArgument(op, "rule key is required")
	}
	return c.getRaw(ctx, op, "/rules/show", query{}.set("key", ruleKey))
}
