package sonarqube

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuery_List(t *testing.T) {
	tests := []struct {
		name   string
		values []string
		want   query
	}{
		{"nil", nil, query{}},
		{"empty", []string{}, query{}},
		{"single", []string{"BUG"}, query{"types": "BUG"}},
		{"keeps order", []string{"VULNERABILITY", "BUG", "CODE_SMELL"}, query{"types": "VULNERABILITY,BUG,CODE_SMELL"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, query{}.list("types", tt.values))
		})
	}
}

func TestQuery_OptionalScalars(t *testing.T) {
	q := query{}.
		str("branch", "").
		str("q", "repo").
		flag("onlyMine", false).
		flag("inNewCodePeriod", true).
		positive("from", 0).
		positive("to", 7)

	assert.Equal(t, query{"q": "repo", "inNewCodePeriod": "true", "to": "7"}, q)
}

func TestQuery_PageDefaults(t *testing.T) {
	tests := []struct {
		page, size    int
		wantP, wantPS string
	}{
		{0, 0, "1", "100"},
		{2, 0, "2", "100"},
		{0, 500, "1", "500"},
		{4, 25, "4", "25"},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d/%d", tt.page, tt.size), func(t *testing.T) {
			q := query{}.page(tt.page, tt.size)
			assert.Equal(t, tt.wantP, q["p"])
			assert.Equal(t, tt.wantPS, q["ps"])
		})
	}
}

func TestUpstreamMessage(t *testing.T) {
	assert.Equal(t, "first", upstreamMessage([]byte(`{"errors":[{"msg":"first"},{"msg":"second"}]}`)))
	assert.Equal(t, "", upstreamMessage([]byte(`{"errors":[]}`)))
	assert.Equal(t, "", upstreamMessage([]byte(`plain text`)))
	assert.Equal(t, "", upstreamMessage(nil))
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "configuration", KindConfiguration.String())
	assert.Equal(t, "unauthorized", KindUnauthorized.String())
	assert.Equal(t, "forbidden", KindForbidden.String())
	assert.Equal(t, "not-found", KindNotFound.String())
	assert.Equal(t, "invalid-argument", KindInvalidArgument.String())
	assert.Equal(t, "upstream", KindUpstream.String())
}

func TestIsKind_ThroughWrapping(t *testing.T) {
	base := statusError("Error fetching issues", 404, nil)
	wrapped := fmt.Errorf("handling tool: %w", base)

	assert.True(t, IsKind(wrapped, KindNotFound))
	assert.False(t, IsKind(wrapped, KindForbidden))
	assert.False(t, IsKind(errors.New("plain"), KindUpstream))
}
