// Package logging builds the leveled logger used by transjson.
package logging

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"

	glog "github.com/goliatone/go-logger/glog"
)

// Config selects the logger level and output format.
type Config struct {
	Level  string   // trace, debug, info, warn, error
	Format string   // console, json, pretty
	Output *os.File // destination; nil means os.Stderr
}

// stdoutMu guards the temporary replacement of os.Stdout in New.
var stdoutMu sync.Mutex

// New constructs a go-logger instance for the given configuration.
func New(cfg Config) (glog.Logger, error) {
	options := []glog.Option{}

	if level := normalizeLevel(cfg.Level); level != "" {
		options = append(options, glog.WithLevel(level))
	} else if strings.TrimSpace(cfg.Level) != "" {
		return nil, fmt.Errorf("logging: unsupported level %q", cfg.Level)
	}

	switch strings.ToLower(strings.TrimSpace(cfg.Format)) {
	case "", "console":
		options = append(options, glog.WithLoggerTypeConsole())
	case "json":
		options = append(options, glog.WithLoggerTypeJSON())
	case "pretty":
		options = append(options, glog.WithLoggerTypePretty())
	default:
		return nil, fmt.Errorf("logging: unsupported format %q", cfg.Format)
	}

	output := cfg.Output
	if output == nil {
		output = os.Stderr
	}
	return newLogger(output, options), nil
}

// newLogger builds the logger with os.Stdout pointing at output. go-logger
// captures os.Stdout when its handler is configured.
func newLogger(output *os.File, options []glog.Option) glog.Logger {
	stdoutMu.Lock()
	defer stdoutMu.Unlock()

	stdout := os.Stdout
	os.Stdout = output
	defer func() { os.Stdout = stdout }()

	return glog.NewLogger(options...).GetLogger("transjson")
}

func normalizeLevel(level string) string {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return glog.Trace
	case "debug":
		return glog.Debug
	case "info":
		return glog.Info
	case "warn", "warning":
		return glog.Warn
	case "error":
		return glog.Error
	default:
		return ""
	}
}

// NoOp returns a logger that discards everything.
func NoOp() glog.Logger {
	return nopLogger{}
}

type nopLogger struct{}

func (nopLogger) Trace(string, ...any) {}
func (nopLogger) Debug(string, ...any) {}
func (nopLogger) Info(string, ...any)  {}
func (nopLogger) Warn(string, ...any)  {}
func (nopLogger) Error(string, ...any) {}
func (nopLogger) Fatal(string, ...any) {}

func (n nopLogger) WithContext(context.Context) glog.Logger { return n }

func (n nopLogger) WithFields(map[string]any) glog.Logger { return n }
