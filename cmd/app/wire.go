//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"

	"github.com/nadira/tripstylist/internal/bootstrap"
	"github.com/nadira/tripstylist/internal/domain/climate"
	"github.com/nadira/tripstylist/internal/domain/culture"
	"github.com/nadira/tripstylist/internal/domain/intent"
	"github.com/nadira/tripstylist/internal/domain/narrative"
	"github.com/nadira/tripstylist/internal/domain/recommend"
	"github.com/nadira/tripstylist/internal/infra/config"
	httpiface "github.com/nadira/tripstylist/internal/interface/http"
	"github.com/nadira/tripstylist/pkg/logger"
)

func initializeApp() (*bootstrap.App, error) {
	wire.Build(
		config.Load,
		logger.New,
		intent.NewParser,
		culture.NewStore,
		provideClimateCache,
		provideTextSource,
		provideWeatherSource,
		climate.NewResolver,
		provideCatalogProvider,
		recommend.NewService,
		provideNarrativeConfig,
		provideChatClient,
		narrative.NewComposer,
		wire.Bind(new(recommend.ClimateResolver), new(*climate.Resolver)),
		wire.Bind(new(httpiface.NarrativeComposer), new(*narrative.Composer)),
		httpiface.NewHandler,
		httpiface.NewRouter,
		bootstrap.NewApp,
	)
	return nil, nil
}
