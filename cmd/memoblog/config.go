package main

import (
	"github.com/caarlos0/env/v11"
	_ "github.com/joho/godotenv/autoload"
)

type config struct {
	Listen          string `env:"LISTEN" envDefault:":9000"`
	LogLevel        string `env:"LOG_LEVEL" envDefault:"debug"`
	LogFmt          string `env:"LOG_FMT" envDefault:"console"`
	GinMode         string `env:"GIN_MODE" envDefault:"release"`
	DefaultLanguage string `env:"DEFAULT_LANG" envDefault:"en"`
	ArchiveSize     int    `env:"ARCHIVE_SIZE" envDefault:"5000"`
	FillerSeed      uint64 `env:"FILLER_SEED" envDefault:"0"`
}

func initConfig() (*config, error) {
	cfg := &config{}

	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
