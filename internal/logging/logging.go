// Package logging builds the zap logger shared by the phonebook commands.
// Every logger carries a session field so the lines of one run can be grouped
// when several runs append to the same log file.
package logging

import (
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Options struct {
	Level  string // debug, info, warn or error
	Format string // console or json
	File   string // empty or "-" for stderr
}

var (
	sessionID     string
	sessionIDOnce sync.Once
)

// SessionID returns the identifier of the current process run.
func SessionID() string {
	sessionIDOnce.Do(func() {
		sessionID = uuid.New().String()
	})
	return sessionID
}

// New builds a logger from opts on top of zap's production defaults.
func New(opts Options) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(strings.ToLower(opts.Level))
	if err != nil {
		return nil, fmt.Errorf("logging: %w", err)
	}

	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(level)
	config.DisableStacktrace = level > zapcore.DebugLevel
	config.Sampling = nil

	switch strings.ToLower(opts.Format) {
	case "", "console":
		config.Encoding = "console"
		config.EncoderConfig = zap.NewDevelopmentEncoderConfig()
	case "json":
		config.Encoding = "json"
	default:
		return nil, fmt.Errorf("logging: unknown format %q", opts.Format)
	}

	switch opts.File {
	case "", "-":
		config.OutputPaths = []string{"stderr"}
	default:
		config.OutputPaths = []string{opts.File}
	}

	logger, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("logging: build: %w", err)
	}
	return logger.With(zap.String("session", SessionID())), nil
}
