//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"
	"github.com/mi-raf/memo-blog/internal/api"
	"github.com/mi-raf/memo-blog/internal/filler"
	"github.com/mi-raf/memo-blog/internal/i18n"
	"github.com/mi-raf/memo-blog/internal/service"
	"github.com/mi-raf/memo-blog/internal/storage"
)

func initApp(cfg *config) (*api.API, error) {
	wire.Build(
		initPostRepositoryConfig,
		initGeneratorConfig,
		initArchiveConfig,
		initServiceConfig,
		initApiConfig,
		storage.NewPostRepositoryProvider,
		filler.NewGenerator,
		filler.NewArchive,
		i18n.NewTranslator,
		service.NewPostService,
		api.NewHandler,
		api.NewApi,
	)
	return nil, nil
}
