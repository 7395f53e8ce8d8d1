package log

import (
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Supported backends for NewLogger.
const (
	BackendZerolog = "zerolog"
	BackendZap     = "zap"
	BackendNone    = "none"
)

// Supported output formats for NewLogger.
const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// NewLogger builds a Logger for the named backend. Empty level means "info",
// empty format means "console".
func NewLogger(backend, level, format string, w io.Writer) (Logger, error) {
	if level == "" {
		level = "info"
	}
	if format == "" {
		format = FormatConsole
	}
	if format != FormatConsole && format != FormatJSON {
		return nil, fmt.Errorf("unknown log format %q", format)
	}

	switch strings.ToLower(backend) {
	case "", BackendZerolog:
		lvl, err := zerolog.ParseLevel(strings.ToLower(level))
		if err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", level, err)
		}
		if format == FormatJSON {
			return NewZerologAdapterWithLogger(zerolog.New(w).Level(lvl).With().Timestamp().Logger()), nil
		}
		a := NewZerologAdapter(w)
		a.logger = a.logger.Level(lvl)
		return a, nil

	case BackendZap:
		lvl, err := zapcore.ParseLevel(strings.ToLower(level))
		if err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", level, err)
		}
		var enc zapcore.Encoder
		if format == FormatJSON {
			enc = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
		} else {
			enc = zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
		}
		return NewZapAdapter(zap.New(zapcore.NewCore(enc, zapcore.AddSync(w), lvl))), nil

	case BackendNone:
		return NewNoopLogger(), nil
	}
	return nil, fmt.Errorf("unknown log backend %q", backend)
}
