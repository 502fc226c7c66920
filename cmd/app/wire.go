//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"

	"github.com/orbislinks/faq-chat/internal/bootstrap"
	"github.com/orbislinks/faq-chat/internal/domain/faq"
	"github.com/orbislinks/faq-chat/internal/infra/config"
	httpiface "github.com/orbislinks/faq-chat/internal/interface/http"
	"github.com/orbislinks/faq-chat/pkg/logger"
)

func initializeApp() (*bootstrap.App, error) {
	wire.Build(
		config.Load,
		logger.New,
		provideFAQConfig,
		provideCatalogRepository,
		provideCatalog,
		provideFAQStore,
		faq.NewService,
		httpiface.NewHandler,
		httpiface.NewRouter,
		bootstrap.NewApp,
	)
	return nil, nil
}
