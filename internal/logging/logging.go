// Package logging builds the hclog loggers used across the server.
//
// Everything is written to stderr: stdout carries the MCP stdio
// transport and must stay clean.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/hashicorp/go-hclog"
)

// Levels lists the accepted level names, lowest first.
var Levels = []string{"trace", "debug", "info", "warn", "error"}

// New returns a named logger at the given level. A nil writer means stderr.
func New(name, level string, w io.Writer) hclog.Logger {
	if w == nil {
		w = os.Stderr
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:   name,
		Output: w,
		Level:  ParseLevel(level),
	})
}

// ParseLevel maps a level name to an hclog.Level, defaulting to Info.
func ParseLevel(level string) hclog.Level {
	switch strings.ToUpper(strings.TrimSpace(level)) {
	case "TRACE":
		return hclog.Trace
	case "DEBUG":
		return hclog.Debug
	case "INFO":
		return hclog.Info
	case "WARN", "WARNING":
		return hclog.Warn
	case "ERROR":
		return hclog.Error
	default:
		return hclog.Info
	}
}

// restyAdapter forwards resty's printf-style logging to an hclog.Logger.
type restyAdapter struct {
	logger hclog.Logger
}

// NewRestyLogger wraps logger so it satisfies resty.Logger.
func NewRestyLogger(logger hclog.Logger) resty.Logger {
	return &restyAdapter{logger: logger}
}

func (a *restyAdapter) Errorf(format string, v ...interface{}) {
	a.logger.Error(fmt.Sprintf(format, v...))
}

func (a *restyAdapter) Warnf(format string, v ...interface{}) {
	a.logger.Warn(fmt.Sprintf(format, v...))
}

func (a *restyAdapter) Debugf(format string, v ...interface{}) {
	a.logger.Debug(fmt.Sprintf(format, v...))
}

// SetRestyLogger installs logger (named "http") on client.
func SetRestyLogger(client *resty.Client, logger hclog.Logger) {
	client.SetLogger(NewRestyLogger(logger.Named("http")))
}
