package server

import (
	"os"
	"strconv"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/zucenko/antmaze/model"
)

type Config struct {
	Port     string
	LogLevel log.Level
	Defaults model.LevelConfig
	// Seed 0 seeds the generator from the clock.
	Seed    int64
	Timeout time.Duration
}

func DefaultConfig() Config {
	return Config{
		Port:     "8080",
		LogLevel: log.InfoLevel,
		Defaults: model.LevelConfig{Rows: 12, Cols: 12, MoreWalls: false, MoreFood: true},
		Timeout:  200 * time.Millisecond,
	}
}

func LoadConfig() (Config, error) {
	return LoadConfigFrom(os.Getenv)
}

// LoadConfigFrom reads the configuration through getenv, falling back to
// DefaultConfig for unset variables.
func LoadConfigFrom(getenv func(string) string) (Config, error) {
	cfg := DefaultConfig()
	var err error

	if v := getenv("PORT"); v != "" {
		cfg.Port = v
	}
	if v := getenv("LOG_LEVEL"); v != "" {
		if cfg.LogLevel, err = log.ParseLevel(v); err != nil {
			return cfg, errors.Wrapf(ErrBadConfig, "LOG_LEVEL %q", v)
		}
	}
	if cfg.Defaults.Rows, err = intVar(getenv, "ANTMAZE_ROWS", cfg.Defaults.Rows); err != nil {
		return cfg, err
	}
	if cfg.Defaults.Cols, err = intVar(getenv, "ANTMAZE_COLS", cfg.Defaults.Cols); err != nil {
		return cfg, err
	}
	if cfg.Defaults.MoreWalls, err = boolVar(getenv, "ANTMAZE_MORE_WALLS", cfg.Defaults.MoreWalls); err != nil {
		return cfg, err
	}
	if cfg.Defaults.MoreFood, err = boolVar(getenv, "ANTMAZE_MORE_FOOD", cfg.Defaults.MoreFood); err != nil {
		return cfg, err
	}
	seed, err := intVar(getenv, "ANTMAZE_SEED", 0)
	if err != nil {
		return cfg, err
	}
	cfg.Seed = int64(seed)
	ms, err := intVar(getenv, "ANTMAZE_TIMEOUT_MS", int(cfg.Timeout/time.Millisecond))
	if err != nil {
		return cfg, err
	}
	if ms <= 0 {
		return cfg, errors.Wrapf(ErrBadConfig, "ANTMAZE_TIMEOUT_MS %d", ms)
	}
	cfg.Timeout = time.Duration(ms) * time.Millisecond

	cfg.Defaults.Rows = model.Clamp(cfg.Defaults.Rows)
	cfg.Defaults.Cols = model.Clamp(cfg.Defaults.Cols)
	return cfg, nil
}

func intVar(getenv func(string) string, name string, def int) (int, error) {
	v := getenv(name)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def, errors.Wrapf(ErrBadConfig, "%s %q", name, v)
	}
	return n, nil
}

func boolVar(getenv func(string) string, name string, def bool) (bool, error) {
	v := getenv(name)
	if v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def, errors.Wrapf(ErrBadConfig, "%s %q", name, v)
	}
	return b, nil
}
