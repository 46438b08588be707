package logger

import (
	"strings"
	"sync/atomic"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	// ProdStage selects JSON output.
	ProdStage = "prod"
	// ServiceName is attached to every production log line.
	ServiceName = "circle-w3s"
)

// global holds the package logger. It starts as a no-op so library callers
// that never initialise logging get silence rather than a nil pointer.
var global atomic.Pointer[zap.Logger]

func init() {
	global.Store(zap.NewNop())
}

// LoggerConfig holds configuration for the logger
type LoggerConfig struct {
	Level       string `json:"level" yaml:"level"`
	Stage       string `json:"stage" yaml:"stage"`
	EnableJSON  bool   `json:"enable_json" yaml:"enable_json"`
	EnableColor bool   `json:"enable_color" yaml:"enable_color"`
}

// ConfigForStage returns the default configuration for a deployment stage.
func ConfigForStage(stage, level string) LoggerConfig {
	if level == "" {
		level = "info"
	}
	return LoggerConfig{
		Level:       level,
		Stage:       stage,
		EnableJSON:  stage == ProdStage,
		EnableColor: stage != ProdStage,
	}
}

// ParseLevel maps a level name to a zap level, defaulting to info.
func ParseLevel(name string) zapcore.Level {
	switch strings.ToLower(name) {
	case "debug":
		return zapcore.DebugLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	case "fatal":
		return zapcore.FatalLevel
	default:
		return zapcore.InfoLevel
	}
}

// New builds a logger without touching the package logger.
func New(config LoggerConfig) (*zap.Logger, error) {
	var zapConfig zap.Config
	level := ParseLevel(config.Level)

	if config.Stage == ProdStage || config.EnableJSON {
		// Production config - JSON structured logging
		zapConfig = zap.NewProductionConfig()
		zapConfig.Level = zap.NewAtomicLevelAt(level)
		zapConfig.EncoderConfig.TimeKey = "timestamp"
		zapConfig.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		zapConfig.EncoderConfig.MessageKey = "message"
		zapConfig.EncoderConfig.LevelKey = "level"
		zapConfig.EncoderConfig.CallerKey = "caller"
		zapConfig.EncoderConfig.StacktraceKey = "stacktrace"
		zapConfig.InitialFields = map[string]interface{}{
			"service": ServiceName,
			"stage":   config.Stage,
		}
	} else {
		// Development config - human-readable console logging
		zapConfig = zap.NewDevelopmentConfig()
		zapConfig.Level = zap.NewAtomicLevelAt(level)

		if config.EnableColor {
			zapConfig.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		} else {
			zapConfig.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
		}

		zapConfig.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		zapConfig.EncoderConfig.EncodeCaller = zapcore.ShortCallerEncoder
	}

	zapConfig.DisableCaller = false
	zapConfig.DisableStacktrace = config.Stage == ProdStage && level > zapcore.DebugLevel

	return zapConfig.Build()
}

// Init builds a logger from config and installs it as the package logger.
func Init(config LoggerConfig) (*zap.Logger, error) {
	log, err := New(config)
	if err != nil {
		return nil, err
	}
	SetLogger(log)
	return log, nil
}

// SetLogger replaces the package logger. A nil logger restores the no-op.
func SetLogger(log *zap.Logger) {
	if log == nil {
		log = zap.NewNop()
	}
	global.Store(log)
}

// L returns the package logger.
func L() *zap.Logger {
	return global.Load()
}

// Info logs a message at InfoLevel
func Info(msg string, fields ...zapcore.Field) {
	L().Info(msg, fields...)
}

// Error logs a message at ErrorLevel
func Error(msg string, fields ...zapcore.Field) {
	L().Error(msg, fields...)
}

// Debug logs a message at DebugLevel
func Debug(msg string, fields ...zapcore.Field) {
	L().Debug(msg, fields...)
}

// Warn logs a message at WarnLevel
func Warn(msg string, fields ...zapcore.Field) {
	L().Warn(msg, fields...)
}

// With creates a child logger and adds structured context to it
func With(fields ...zapcore.Field) *zap.Logger {
	return L().With(fields...)
}

// Sync flushes any buffered log entries
func Sync() error {
	return L().Sync()
}
