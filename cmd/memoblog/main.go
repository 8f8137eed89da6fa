package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/xlab/closer"

	"github.com/mi-raf/memo-blog/internal/api"
	"github.com/mi-raf/memo-blog/internal/filler"
	"github.com/mi-raf/memo-blog/internal/service"
	"github.com/mi-raf/memo-blog/internal/storage"
)

var (
	archiveSize int
)

func init() {
	flag.IntVar(&archiveSize, "archive", -1, "Number of filler articles (overrides ARCHIVE_SIZE)")
}

func main() {

	flag.Parse()

	defer closer.Close()

	closer.Bind(func() {
		log.Info().Msg("shutdown")
	})

	cfg, err := initConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Can't init config")
	}
	if archiveSize >= 0 {
		cfg.ArchiveSize = archiveSize
	}

	if err := initLogger(cfg); err != nil {
		log.Fatal().Err(err).Msg("Can't init logger")
	}

	a, err := initApp(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Can't init app")
	}
	closer.Bind(a.Close)
	if err := a.Start(); err != nil {
		log.Fatal().Err(err).Msg("Can't start app")
	}

}

func initLogger(c *config) error {
	log.Debug().Msg("init logger")
	logLvl, err := zerolog.ParseLevel(strings.ToLower(c.LogLevel))
	if err != nil {
		return err
	}
	zerolog.SetGlobalLevel(logLvl)
	switch c.LogFmt {
	case "console":
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout})
	case "json":
	default:
		return fmt.Errorf("unknown output format %s", c.LogFmt)

	}
	return nil
}

func initPostRepositoryConfig(cfg *config) *storage.PostConfig {
	return &storage.PostConfig{Capacity: storage.STARTCAP}
}

func initGeneratorConfig(cfg *config) *filler.Config {
	return &filler.Config{Seed: cfg.FillerSeed}
}

func initArchiveConfig(cfg *config) *filler.ArchiveConfig {
	return &filler.ArchiveConfig{Size: cfg.ArchiveSize}
}

func initServiceConfig(cfg *config) *service.Config {
	return &service.Config{DefaultLanguage: cfg.DefaultLanguage}
}

func initApiConfig(cfg *config) *api.Config {
	return &api.Config{Listen: cfg.Listen, GinMode: cfg.GinMode}
}
