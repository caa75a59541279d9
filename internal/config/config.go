package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/dshills/fig"
	"github.com/dshills/fig/internal/logging"
)

// Config represents the settings of one fig invocation.
type Config struct {
	FigFile       string
	FigContent    string
	GitignorePath string
	GitignoreSkip bool
	LogLevel      string
	LogFormat     string
}

// Override keys accepted by Load.
const (
	KeyFigFile       = "figFile"
	KeyFigContent    = "figContent"
	KeyGitignorePath = "gitignorePath"
	KeyGitignoreSkip = "gitignoreSkip"
	KeyLogLevel      = "logLevel"
	KeyLogFormat     = "logFormat"
)

// Default returns a Config with all defaults applied.
func Default() Config {
	return Config{
		FigFile:       fig.DefaultFilePath,
		FigContent:    fig.DefaultContent,
		GitignorePath: fig.DefaultIgnorePath,
		LogLevel:      "info",
		LogFormat:     "text",
	}
}

// Load builds the effective config by merging: defaults <- env <- overrides.
// The overrides map comes from CLI flags; only flags the user set should be present.
func Load(overrides map[string]string) (Config, error) {
	cfg := Default()
	if err := mergeEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := mergeOverrides(&cfg, overrides); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the logging settings.
func (c Config) Validate() error {
	if !logging.ValidLevel(c.LogLevel) {
		return fmt.Errorf("unknown log level: %s", c.LogLevel)
	}
	switch strings.ToLower(c.LogFormat) {
	case "text", "json":
	default:
		return fmt.Errorf("unknown log format: %s", c.LogFormat)
	}
	return nil
}

func mergeEnv(cfg *Config) error {
	if v := os.Getenv("FIG_FILE"); v != "" {
		cfg.FigFile = v
	}
	if v := os.Getenv("FIG_CONTENT"); v != "" {
		cfg.FigContent = v
	}
	if v := os.Getenv("FIG_GITIGNORE_PATH"); v != "" {
		cfg.GitignorePath = v
	}
	if v := os.Getenv("FIG_GITIGNORE_SKIP"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("FIG_GITIGNORE_SKIP must be a boolean: %w", err)
		}
		cfg.GitignoreSkip = b
	}
	if v := os.Getenv("FIG_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("FIG_LOG_FORMAT"); v != "" {
		cfg.LogFormat = v
	}
	return nil
}

func mergeOverrides(cfg *Config, overrides map[string]string) error {
	if overrides == nil {
		return nil
	}
	if v, ok := overrides[KeyFigFile]; ok && v != "" {
		cfg.FigFile = v
	}
	if v, ok := overrides[KeyFigContent]; ok && v != "" {
		cfg.FigContent = v
	}
	if v, ok := overrides[KeyGitignorePath]; ok && v != "" {
		cfg.GitignorePath = v
	}
	if v, ok := overrides[KeyGitignoreSkip]; ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("gitignore-skip must be a boolean: %w", err)
		}
		cfg.GitignoreSkip = b
	}
	if v, ok := overrides[KeyLogLevel]; ok && v != "" {
		cfg.LogLevel = v
	}
	if v, ok := overrides[KeyLogFormat]; ok && v != "" {
		cfg.LogFormat = v
	}
	return nil
}
