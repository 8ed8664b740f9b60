package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	UITerminal = "terminal"
	UIWindow   = "window"

	StorageMemory = "memory"
	StorageRedis  = "redis"
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	LogLevel   string  `yaml:"log-level" env:"TICTACTOE_LOG_LEVEL" env-default:"info"`
	LogFile    string  `yaml:"log-file" env:"TICTACTOE_LOG_FILE" env-default:"tictactoe.log"`
	UI         string  `yaml:"ui" env:"TICTACTOE_UI" env-default:"terminal"`
	RestartKey string  `yaml:"restart-key" env:"TICTACTOE_RESTART_KEY" env-default:"enter"`
	QuitKey    string  `yaml:"quit-key" env:"TICTACTOE_QUIT_KEY" env-default:"escape"`
	Window     Window  `yaml:"window" env-prefix:"TICTACTOE_WINDOW_"`
	Session    Session `yaml:"session" env-prefix:"TICTACTOE_SESSION_"`
	Redis      Redis   `yaml:"redis" env-prefix:"TICTACTOE_REDIS_"`
}

type Window struct {
	Width    int     `yaml:"width" env:"WIDTH" env-default:"800"`
	Height   int     `yaml:"height" env:"HEIGHT" env-default:"600"`
	MarkSize float64 `yaml:"mark-size" env:"MARK_SIZE" env-default:"64"`
	Spacing  float64 `yaml:"spacing" env:"SPACING" env-default:"30"`
}

type Session struct {
	ID      string        `yaml:"id" env:"ID"`
	Storage string        `yaml:"storage" env:"STORAGE" env-default:"memory"`
	TTL     time.Duration `yaml:"ttl" env:"TTL" env-default:"24h"`
}

type Redis struct {
	Host string `yaml:"host" env:"HOST" env-default:"localhost"`
	Port string `yaml:"port" env:"PORT" env-default:"6379"`
}

// MustLoad - loads the configuration and panics on failure.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

// Load - reads the yaml file at path with environment overrides.
// A missing file is not an error: defaults and environment are used.
func Load(path string) (*Config, error) {
	config := &Config{}

	var err error
	if _, statErr := os.Stat(path); errors.Is(statErr, os.ErrNotExist) {
		err = cleanenv.ReadEnv(config)
	} else {
		err = cleanenv.ReadConfig(path, config)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err = config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (that *Config) Validate() error {
	switch that.UI {
	case UITerminal, UIWindow:
	default:
		return fmt.Errorf("%w: ui %q", ErrInvalidConfig, that.UI)
	}

	switch that.Session.Storage {
	case StorageMemory, StorageRedis:
	default:
		return fmt.Errorf("%w: session storage %q", ErrInvalidConfig, that.Session.Storage)
	}

	if that.Window.Width <= 0 || that.Window.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalidConfig, that.Window.Width, that.Window.Height)
	}

	if that.Session.TTL < 0 {
		return fmt.Errorf("%w: negative session ttl", ErrInvalidConfig)
	}

	return nil
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
