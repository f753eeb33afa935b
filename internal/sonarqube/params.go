package sonarqube

import (
	"strconv"
	"strings"
)

const (
	// DefaultPage and DefaultPageSize apply when a caller leaves them zero.
	DefaultPage     = 1
	DefaultPageSize = 100
	// MaxPageSize is the largest page SonarQube search endpoints accept.
	MaxPageSize = 500
)

// query collects upstream query parameters. Optional values are only
// recorded when they carry information, so an unset filter never
// reaches the wire.
type query map[string]string

func (q query) set(key, value string) query {
	q[key] = value
	return q
}

// str records value only when it is non-empty.
func (q query) str(key, value string) query {
	if value != "" {
		q[key] = value
	}
	return q
}

// list records values comma-joined in input order, only when non-empty.
func (q query) list(key string, values []string) query {
	if len(values) > 0 {
		q[key] = strings.Join(values, ",")
	}
	return q
}

// flag records "true" only when value is set.
func (q query) flag(key string, value bool) query {
	if value {
		q[key] = "true"
	}
	return q
}

// positive records n only when it is greater than zero.
func (q query) positive(key string, n int) query {
	if n > 0 {
		q[key] = strconv.Itoa(n)
	}
	return q
}

// page records p and ps, substituting the defaults for zero values.
func (q query) page(page, pageSize int) query {
	if page <= 0 {
		page = DefaultPage
	}
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	q["p"] = strconv.Itoa(page)
	q["ps"] = strconv.Itoa(pageSize)
	return q
}
