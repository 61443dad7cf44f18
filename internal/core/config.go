package core

import (
	"os"
	"sync"

	"go.uber.org/zap"
)

// Config holds the settings shared by mocks, sets and stores.
type Config struct {
	// Name prefixes diagnostics, e.g. "Calculator.Add".
	Name string
	// Logger receives debug records of dispatch decisions.
	Logger *zap.Logger
}

// Option configures a Config.
type Option func(*Config)

// WithLogger sends dispatch records to logger.
func WithLogger(logger *zap.Logger) Option {
	return func(cfg *Config) {
		cfg.Logger = logger
	}
}

// WithName sets the name used in diagnostics.
func WithName(name string) Option {
	return func(cfg *Config) {
		cfg.Name = name
	}
}

// DefaultLogger returns the logger used when no WithLogger option is given.
// It is a no-op logger unless the IMPMOCK_LOG environment variable names a
// zap level ("debug", "info", ...), in which case it is a development logger
// at that level.
func DefaultLogger() *zap.Logger {
	defaultLoggerOnce.Do(func() {
		defaultLogger = loggerFromEnv(os.Getenv(logLevelEnv))
	})

	return defaultLogger
}

// unexported constants.
const (
	logLevelEnv = "IMPMOCK_LOG"
)

// unexported variables.
var (
	//nolint:gochecknoglobals // process-wide default, resolved once
	defaultLogger *zap.Logger
	//nolint:gochecknoglobals // guards defaultLogger
	defaultLoggerOnce sync.Once
)

func loggerFromEnv(level string) *zap.Logger {
	if level == "" {
		return zap.NewNop()
	}

	atomicLevel, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return zap.NewNop()
	}

	cfg := zap.NewDevelopmentConfig()
	cfg.Level = atomicLevel

	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}

	return logger.Named("impmock")
}

func newConfig(opts []Option) Config {
	cfg := Config{}

	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	if cfg.Logger == nil {
		cfg.Logger = DefaultLogger()
	}

	return cfg
}

// child derives the config of a component nested under cfg.
func (cfg Config) child(name string) Config {
	if cfg.Name != "" && name != "" {
		name = cfg.Name + "." + name
	} else if name == "" {
		name = cfg.Name
	}

	return Config{Name: name, Logger: cfg.Logger}
}
