package gormtool

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
)

// Logger is the structured logger shared by the store and the web layer.
type Logger interface {
	Debug(ctx context.Context, msg string, fields map[string]interface{})
	Info(ctx context.Context, msg string, fields map[string]interface{})
	Warn(ctx context.Context, msg string, fields map[string]interface{})
	Error(ctx context.Context, msg string, fields map[string]interface{})
}

type ctxKey struct{}

// WithRequestID stores a request id that DefaultLogger adds to every line.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

// RequestID returns the id stored by WithRequestID, or "".
func RequestID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(ctxKey{}).(string)
	return id
}

// DefaultLogger writes "[LEVEL] msg {json fields}" lines.
type DefaultLogger struct {
	logger *log.Logger
	debug  bool
}

func NewDefaultLogger() *DefaultLogger {
	return NewLogger(os.Stdout, false)
}

// NewLogger builds a DefaultLogger on w. Debug lines are dropped unless
// debug is set.
func NewLogger(w io.Writer, debug bool) *DefaultLogger {
	return &DefaultLogger{
		logger: log.New(w, "[blogly] ", log.LstdFlags|log.Lshortfile),
		debug:  debug,
	}
}

func (l *DefaultLogger) Debug(ctx context.Context, msg string, fields map[string]interface{}) {
	if !l.debug {
		return
	}
	l.log(ctx, "DEBUG", msg, fields)
}

func (l *DefaultLogger) Info(ctx context.Context, msg string, fields map[string]interface{}) {
	l.log(ctx, "INFO", msg, fields)
}

func (l *DefaultLogger) Warn(ctx context.Context, msg string, fields map[string]interface{}) {
	l.log(ctx, "WARN", msg, fields)
}

func (l *DefaultLogger) Error(ctx context.Context, msg string, fields map[string]interface{}) {
	l.log(ctx, "ERROR", msg, fields)
}

func (l *DefaultLogger) log(ctx context.Context, level, msg string, fields map[string]interface{}) {
	if id := RequestID(ctx); id != "" {
		merged := make(map[string]interface{}, len(fields)+1)
		for k, v := range fields {
			merged[k] = v
		}
		merged["request_id"] = id
		fields = merged
	}
	logMsg := fmt.Sprintf("[%s] %s", level, msg)
	if len(fields) > 0 {
		jsonFields, _ := json.Marshal(fields)
		logMsg += " " + string(jsonFields)
	}
	l.logger.Output(3, logMsg)
}

// NopLogger discards everything. Tests use it to keep output quiet.
type NopLogger struct{}

func (NopLogger) Debug(context.Context, string, map[string]interface{}) {}
func (NopLogger) Info(context.Context, string, map[string]interface{})  {}
func (NopLogger) Warn(context.Context, string, map[string]interface{})  {}
func (NopLogger) Error(context.Context, string, map[string]interface{}) {}
