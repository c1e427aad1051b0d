package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

// DefaultPath - looked up in the working directory when no path is given.
const DefaultPath = "config.yml"

var ErrInvalidLogLevel = errors.New("invalid log level")

type Config struct {
	LogLevel string  `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	Board    Board   `yaml:"board"`
	Console  Console `yaml:"console"`
}

type Board struct {
	Size int `yaml:"size" env:"BOARD_SIZE" env-default:"3"`
}

// Console - NoColor is negative so a zero value from the file is not replaced by a default.
type Console struct {
	NoColor bool   `yaml:"no-color" env:"CONSOLE_NO_COLOR"`
	Prompt  string `yaml:"prompt" env:"CONSOLE_PROMPT" env-default:"> "`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

// Load - reads the file at path. An empty path means DefaultPath, which may be missing, and
// then only the environment is read. An explicit path has to exist.
func Load(path string) (*Config, error) {
	config := &Config{}

	if path == "" {
		path = DefaultPath
		if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
			if err = cleanenv.ReadEnv(config); err != nil {
				return nil, fmt.Errorf("unable to load config from env: %w", err)
			}

			return validated(config)
		}
	}

	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("unable to find config file: %w", err)
	}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	return validated(config)
}

func validated(config *Config) (*Config, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return config, nil
}

func (that *Config) Validate() error {
	switch that.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: %q", ErrInvalidLogLevel, that.LogLevel)
	}

	if !entity.IsSupportedSize(that.Board.Size) {
		return fmt.Errorf("%w: board size %d", apperror.ErrInvalidSize, that.Board.Size)
	}

	return nil
}
