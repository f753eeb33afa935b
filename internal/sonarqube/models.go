package sonarqube

import "encoding/json"

// RawJSON is an upstream payload passed through without local modeling.
type RawJSON = json.RawMessage

// Modeled responses keep the body they were decoded from in Raw and
// marshal back to it, so fields not listed here reach the caller
// unchanged. Values built in Go (Raw empty) marshal field by field.
func marshalRaw(raw RawJSON, plain any) ([]byte, error) {
	if len(raw) > 0 {
		return raw, nil
	}
	return json.Marshal(plain)
}

// Paging is the pagination block SonarQube attaches to search responses.
// It is surfaced verbatim, never recomputed.
type Paging struct {
	PageIndex int `json:"pageIndex"`
	PageSize  int `json:"pageSize"`
	Total     int `json:"total"`
}

// Project represents a SonarQube component with the TRK qualifier.
type Project struct {
	Key              string `json:"key"`
	Name             string `json:"name"`
	Qualifier        string `json:"qualifier"`
	Visibility       string `json:"visibility,omitempty"`
	LastAnalysisDate string `json:"lastAnalysisDate,omitempty"`

	Raw RawJSON `json:"-"`
}

// MarshalJSON returns the upstream component when there is one.
func (p Project) MarshalJSON() ([]byte, error) {
	type plain Project
	return marshalRaw(p.Raw, plain(p))
}

// ProjectsResponse is returned by /api/components/search.
type ProjectsResponse struct {
	Paging     Paging    `json:"paging"`
	Components []Project `json:"components"`

	Raw RawJSON `json:"-"`
}

// MarshalJSON returns the upstream body when there is one.
func (r ProjectsResponse) MarshalJSON() ([]byte, error) {
	type plain ProjectsResponse
	return marshalRaw(r.Raw, plain(r))
}

// TextRange locates an issue inside its component.
type TextRange struct {
	StartLine   int `json:"startLine"`
	EndLine     int `json:"endLine"`
	StartOffset int `json:"startOffset"`
	EndOffset   int `json:"endOffset"`
}

// Issue is a single finding from /api/issues/search.
type Issue struct {
	Key          string     `json:"key"`
	Rule         string     `json:"rule"`
	Severity     string     `json:"severity"`
	Component    string     `json:"component"`
	Project      string     `json:"project"`
	Line         *int       `json:"line,omitempty"`
	TextRange    *TextRange `json:"textRange,omitempty"`
	Message      string     `json:"message"`
	Author       string     `json:"author,omitempty"`
	Assignee     string     `json:"assignee,omitempty"`
	Status       string     `json:"status"`
	IssueStatus  string     `json:"issueStatus,omitempty"`
	Resolution   string     `json:"resolution,omitempty"`
	Type         string     `json:"type"`
	Tags         []string   `json:"tags,omitempty"`
	Effort       string     `json:"effort,omitempty"`
	CreationDate string     `json:"creationDate"`
	UpdateDate   string     `json:"updateDate"`
}

// IssuesResponse is returned by /api/issues/search. Both the legacy
// top-level counters (total, p, ps) and the paging block are kept.
type IssuesResponse struct {
	Total  int     `json:"total,omitempty"`
	P      int     `json:"p,omitempty"`
	PS     int     `json:"ps,omitempty"`
	Paging Paging  `json:"paging"`
	Issues []Issue `json:"issues"`

	Raw RawJSON `json:"-"`
}

// MarshalJSON returns the upstream body when there is one.
func (r IssuesResponse) MarshalJSON() ([]byte, error) {
	type plain IssuesResponse
	return marshalRaw(r.Raw, plain(r))
}

// Measure is one metric value for one component.
type Measure struct {
	Metric    string `json:"metric"`
	Value     string `json:"value,omitempty"`
	Component string `json:"component,omitempty"`
	BestValue *bool  `json:"bestValue,omitempty"`
}

// ComponentMeasures groups the measures of a single component.
type ComponentMeasures struct {
	Key       string    `json:"key"`
	Name      string    `json:"name,omitempty"`
	Qualifier string    `json:"qualifier,omitempty"`
	Measures  []Measure `json:"measures"`
}

// MetricsResponse is returned by /api/measures/component.
type MetricsResponse struct {
	Component ComponentMeasures `json:"component"`

	Raw RawJSON `json:"-"`
}

// MarshalJSON returns the upstream body when there is one.
func (r MetricsResponse) MarshalJSON() ([]byte, error) {
	type plain MetricsResponse
	return marshalRaw(r.Raw, plain(r))
}

// QualityGateCondition is one threshold check of a quality gate.
type QualityGateCondition struct {
	Status         string `json:"status"`
	MetricKey      string `json:"metricKey"`
	Comparator     string `json:"comparator"`
	ErrorThreshold string `json:"errorThreshold,omitempty"`
	ActualValue    string `json:"actualValue,omitempty"`
}

// QualityGate is the projectStatus object of /api/qualitygates/project_status.
type QualityGate struct {
	Name       string                 `json:"name,omitempty"`
	Status     string                 `json:"status"`
	Conditions []QualityGateCondition `json:"conditions,omitempty"`

	Raw RawJSON `json:"-"`
}

// MarshalJSON returns the upstream projectStatus when there is one.
func (q QualityGate) MarshalJSON() ([]byte, error) {
	type plain QualityGate
	return marshalRaw(q.Raw, plain(q))
}
