package logger

import (
	"strings"
	"sync"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	EncodingConsole = "console"
	EncodingJSON    = "json"
)

var (
	Log      *zap.Logger
	onceInit sync.Once
)

// Init builds the process-wide logger once. Later calls keep the first logger.
func Init(level zapcore.Level, encoding string, meta ...zap.Field) error {
	var buildErr error
	onceInit.Do(func() {
		l, err := New(level, encoding)
		if err != nil {
			buildErr = err
			return
		}
		Log = l.With(meta...)
	})
	if buildErr != nil {
		return errors.Wrap(buildErr, "build logger")
	}
	if Log == nil {
		return errors.New("logger not initialized")
	}
	return nil
}

// New builds a standalone logger writing to stdout.
func New(level zapcore.Level, encoding string) (*zap.Logger, error) {
	return configure(level, encoding).Build(zap.AddCaller())
}

// ParseLevel maps LOG_LEVEL values to zap levels, defaulting to info.
func ParseLevel(level string) zapcore.Level {
	var l zapcore.Level
	if err := l.UnmarshalText([]byte(strings.ToLower(strings.TrimSpace(level)))); err != nil {
		return zapcore.InfoLevel
	}
	return l
}

func configure(level zapcore.Level, encoding string) zap.Config {
	encoder := zap.NewProductionEncoderConfig()
	encoder.TimeKey = "timestamp"
	encoder.CallerKey = "caller"
	encoder.EncodeTime = zapcore.ISO8601TimeEncoder
	encoder.EncodeCaller = zapcore.ShortCallerEncoder
	encoder.EncodeDuration = zapcore.MillisDurationEncoder

	// Colors only make sense for terminals.
	if encoding != EncodingJSON {
		encoding = EncodingConsole
		encoder.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		encoder.EncodeLevel = zapcore.LowercaseLevelEncoder
	}

	return zap.Config{
		Level:            zap.NewAtomicLevelAt(level),
		Encoding:         encoding,
		EncoderConfig:    encoder,
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
	}
}
