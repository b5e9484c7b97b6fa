package main

import (
	"github.com/joho/godotenv"
	"github.com/myrjola/detectivequest/internal/envstruct"
	"github.com/myrjola/detectivequest/internal/errors"
	"io/fs"
	"log/slog"
)

type config struct {
	Variant   string `env:"DETECTIVE_VARIANT" envDefault:"master"`
	LogLevel  string `env:"DETECTIVE_LOG_LEVEL" envDefault:"warn"`
	LogFormat string `env:"DETECTIVE_LOG_FORMAT" envDefault:"text"`
}

// loadConfig reads the optional .env files into the environment and populates the config from lookupEnv.
// Variables that are already set win over the .env files.
func loadConfig(lookupEnv func(string) (string, bool), dotenvFiles ...string) (config, error) {
	var cfg config
	if len(dotenvFiles) > 0 {
		if err := godotenv.Load(dotenvFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return cfg, errors.Wrap(err, "load dotenv", slog.Any("files", dotenvFiles))
		}
	}
	if err := envstruct.Populate(&cfg, lookupEnv); err != nil {
		return cfg, errors.Wrap(err, "populate config")
	}
	return cfg, nil
}
