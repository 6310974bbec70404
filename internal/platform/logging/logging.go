// Package logging builds the structured zap logger shared by service commands.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	// FormatJSON emits one JSON object per entry.
	FormatJSON = "json"
	// FormatConsole emits human-readable lines.
	FormatConsole = "console"
)

const timeLayout = "2006-01-02T15:04:05.000Z07:00"

// Config controls logger level, encoding, and destination.
type Config struct {
	Level  string
	Format string
	// Output is stdout, stderr, or a file path.
	Output string
}

// New builds a logger from cfg. Unknown levels fall back to info.
func New(cfg Config) (*zap.Logger, error) {
	format := strings.ToLower(strings.TrimSpace(cfg.Format))
	if format == "" {
		format = FormatConsole
	}
	if format != FormatJSON && format != FormatConsole {
		return nil, fmt.Errorf("unsupported log format %q", cfg.Format)
	}
	writer, err := openWriter(cfg.Output)
	if err != nil {
		return nil, err
	}
	return newWithWriter(cfg.Level, format, writer), nil
}

// NewWithWriter builds a logger that writes to w. Intended for tests and
// callers that own the destination.
func NewWithWriter(level string, format string, w io.Writer) *zap.Logger {
	format = strings.ToLower(strings.TrimSpace(format))
	if format != FormatConsole {
		format = FormatJSON
	}
	return newWithWriter(level, format, zapcore.AddSync(w))
}

func newWithWriter(level string, format string, writer zapcore.WriteSyncer) *zap.Logger {
	core := zapcore.NewCore(newEncoder(format), writer, ParseLevel(level))
	return zap.New(core, zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel))
}

// ParseLevel converts a level name to a zap level.
func ParseLevel(level string) zapcore.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return zapcore.DebugLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

func newEncoder(format string) zapcore.Encoder {
	encoderConfig := zapcore.EncoderConfig{
		TimeKey:        "time",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		FunctionKey:    zapcore.OmitKey,
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     zapcore.TimeEncoderOfLayout(timeLayout),
		EncodeDuration: zapcore.MillisDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}
	if format == FormatConsole {
		encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
		return zapcore.NewConsoleEncoder(encoderConfig)
	}
	return zapcore.NewJSONEncoder(encoderConfig)
}

func openWriter(output string) (zapcore.WriteSyncer, error) {
	switch strings.ToLower(strings.TrimSpace(output)) {
	case "", "stderr":
		return zapcore.Lock(os.Stderr), nil
	case "stdout":
		return zapcore.Lock(os.Stdout), nil
	}
	file, err := os.OpenFile(strings.TrimSpace(output), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log output: %w", err)
	}
	return zapcore.AddSync(file), nil
}
