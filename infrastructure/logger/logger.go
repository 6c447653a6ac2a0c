package logger

import (
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	globalLogger *zap.Logger
	once         sync.Once
)

// Config defines logger configuration
type Config struct {
	Environment string // "development", "testing", "production"
	Level       string // "debug", "info", "warn", "error"
	Format      string // "json" or "console"; empty picks by environment
	// File output, production only. An empty Filename writes to stderr.
	Filename   string
	MaxSize    int // megabytes
	MaxBackups int
	MaxAge     int // days
	Compress   bool
}

// DefaultConfig returns default logger configuration based on environment
func DefaultConfig(env string) *Config {
	switch env {
	case "production", "prod":
		return &Config{
			Environment: "production",
			Level:       "info",
			Format:      "json",
			Filename:    "logs/weddingplanner.log",
			MaxSize:     100,
			MaxBackups:  5,
			MaxAge:      14,
			Compress:    true,
		}
	case "testing", "test":
		return &Config{
			Environment: "testing",
			Level:       "debug",
			Format:      "console",
		}
	default:
		return &Config{
			Environment: "development",
			Level:       "debug",
			Format:      "console",
		}
	}
}

// Init initializes the global logger once; later calls are no-ops
func Init(cfg *Config) error {
	var err error
	once.Do(func() {
		globalLogger, err = New(cfg)
	})
	return err
}

// InitFromEnv initializes the global logger from APP_ENV, LOG_LEVEL and LOG_FILE
func InitFromEnv() error {
	return Init(ConfigFromEnv())
}

// ConfigFromEnv builds a Config from APP_ENV (default "development"),
// overriding level and file from LOG_LEVEL and LOG_FILE when set
func ConfigFromEnv() *Config {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "development"
	}
	cfg := DefaultConfig(env)

	if logLevel := os.Getenv("LOG_LEVEL"); logLevel != "" {
		cfg.Level = logLevel
	}
	if logFile := os.Getenv("LOG_FILE"); logFile != "" {
		cfg.Filename = logFile
	}
	return cfg
}

// Override replaces level, format and filename with the given values when
// they are not empty
func (c *Config) Override(level, format, filename string) *Config {
	if level != "" {
		c.Level = level
	}
	if format != "" {
		c.Format = format
	}
	if filename != "" {
		c.Filename = filename
	}
	return c
}

// New builds a logger without touching the global one
func New(cfg *Config) (*zap.Logger, error) {
	level := parseLogLevel(cfg.Level)

	if cfg.Format == "json" || (cfg.Format == "" && cfg.Environment == "production") {
		return newJSONLogger(cfg, level), nil
	}
	return newConsoleLogger(level)
}

// newJSONLogger writes JSON lines, rotated with lumberjack when a file is set
func newJSONLogger(cfg *Config, level zapcore.Level) *zap.Logger {
	var sink zapcore.WriteSyncer = zapcore.Lock(os.Stderr)
	if cfg.Filename != "" {
		sink = zapcore.AddSync(&lumberjack.Logger{
			Filename:   cfg.Filename,
			MaxSize:    cfg.MaxSize,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAge,
			Compress:   cfg.Compress,
		})
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.EncodeLevel = zapcore.LowercaseLevelEncoder
	encoderConfig.EncodeCaller = zapcore.ShortCallerEncoder

	core := zapcore.NewCore(zapcore.NewJSONEncoder(encoderConfig), sink, level)

	return zap.New(core,
		zap.AddCaller(),
		zap.AddStacktrace(zapcore.ErrorLevel),
		zap.Fields(
			zap.String("environment", cfg.Environment),
			zap.String("service", "weddingplanner"),
		),
	)
}

func newConsoleLogger(level zapcore.Level) (*zap.Logger, error) {
	config := zap.NewDevelopmentConfig()
	config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.EncoderConfig.EncodeCaller = zapcore.ShortCallerEncoder
	config.Level = zap.NewAtomicLevelAt(level)

	return config.Build()
}

// parseLogLevel converts string log level to zapcore.Level
func parseLogLevel(level string) zapcore.Level {
	switch level {
	case "debug":
		return zapcore.DebugLevel
	case "info":
		return zapcore.InfoLevel
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

// Get returns the global logger, or a no-op logger before Init
func Get() *zap.Logger {
	if globalLogger != nil {
		return globalLogger
	}
	return zap.NewNop()
}

// Named returns a named logger from the global logger
func Named(name string) *zap.Logger {
	return Get().Named(name)
}

// With returns a logger with additional fields
func With(fields ...zap.Field) *zap.Logger {
	return Get().With(fields...)
}

// Sync flushes any buffered log entries
func Sync() error {
	if globalLogger != nil {
		return globalLogger.Sync()
	}
	return nil
}
