// Package logging sets up the zap logger shared by the CLI and the catalog.
package logging

import (
	"fmt"
	"io"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// DefaultLevel keeps the shell quiet unless something goes wrong.
const DefaultLevel = "warn"

// syncWriter makes any io.Writer a zapcore.WriteSyncer. Sync is a no-op
// so flushing a logger on stdout or stderr does not fail with EINVAL.
type syncWriter struct {
	io.Writer
}

func (syncWriter) Sync() error {
	return nil
}

// Setup builds a console logger at the given level writing to w. Every entry
// carries the app version and a per-run id. The returned flusher syncs
// buffered entries and should be deferred by the caller.
func Setup(level string, w io.Writer, version string) (*zap.Logger, func() error, error) {
	if level == "" {
		level = DefaultLevel
	}
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, nil, fmt.Errorf("parse log level %q: %w", level, err)
	}

	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.TimeKey = "ts"
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encCfg.LevelKey = "lvl"
	encCfg.NameKey = "name"
	encCfg.MessageKey = "msg"
	encCfg.CallerKey = "caller"
	encCfg.StacktraceKey = "skt"

	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.Lock(syncWriter{w}), lvl)
	logger := zap.New(core, zap.AddCaller(), zap.AddStacktrace(zapcore.FatalLevel))
	logger = logger.With(zap.String("app.version", version), zap.String("run", runID()))

	flusher := func() error {
		if err := logger.Sync(); err != nil {
			return fmt.Errorf("flush logs: %w", err)
		}
		return nil
	}
	return logger, flusher, nil
}

// runID generates a UUID v7 so log lines from one invocation sort together.
func runID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}
