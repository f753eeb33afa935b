package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pageArgs struct {
	ProjectKey string   `json:"projectKey" validate:"required"`
	PageSize   int      `json:"pageSize" validate:"min=1,max=500"`
	Severities []string `json:"severities,omitempty" validate:"omitempty,dive,oneof=BLOCKER CRITICAL"`
	Keys       []string `json:"metricKeys" validate:"min=1"`
	From       int      `json:"from,omitempty" validate:"omitempty,min=1"`
	To         int      `json:"to,omitempty" validate:"omitempty,min=1,gtefield=From"`
	Rule       string   `json:"ruleKey,omitempty" validate:"omitempty,contains=:"`
}

func valid() pageArgs {
	return pageArgs{ProjectKey: "p", PageSize: 100, Keys: []string{"coverage"}}
}

func TestStruct_Valid(t *testing.T) {
	require.NoError(t, New("json").Struct(valid()))
}

func TestStruct_Messages(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(a *pageArgs)
		want   string
	}{
		{"required", func(a *pageArgs) { a.ProjectKey = "" }, "'projectKey' is required"},
		{"below min", func(a *pageArgs) { a.PageSize = 0 }, "'pageSize' must be at least 1"},
		{"above max", func(a *pageArgs) { a.PageSize = 501 }, "'pageSize' must be at most 500"},
		{"enum element", func(a *pageArgs) { a.Severities = []string{"BLOCKER", "LOW"} }, `'severities[1]' must be one of [BLOCKER CRITICAL], got "LOW"`},
		{"empty slice", func(a *pageArgs) { a.Keys = []string{} }, "'metricKeys' must contain at least 1 item(s)"},
		{"range order", func(a *pageArgs) { a.From, a.To = 10, 5 }, "'to' must be greater than or equal to 'from'"},
		{"contains", func(a *pageArgs) { a.Rule = "S1144" }, `'ruleKey' must contain ":"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := valid()
			tt.mutate(&a)
			err := New("json").Struct(a)
			require.Error(t, err)
			assert.Equal(t, tt.want, err.Error())
		})
	}
}

func TestStruct_UsesRequestedTag(t *testing.T) {
	type cfg struct {
		LogLevel string `koanf:"log_level" validate:"oneof=info debug"`
	}
	err := New("koanf").Struct(cfg{LogLevel: "loud"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "'log_level'")
}

func TestStruct_JoinsMultipleFailures(t *testing.T) {
	a := valid()
	a.ProjectKey = ""
	a.PageSize = 0
	err := New("json").Struct(a)
	require.Error(t, err)
	assert.Equal(t, "'projectKey' is required; 'pageSize' must be at least 1", err.Error())
}
