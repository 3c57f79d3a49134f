//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"

	"github.com/astrarium/natalchart/internal/bootstrap"
	"github.com/astrarium/natalchart/internal/domain/chart"
	"github.com/astrarium/natalchart/internal/infra/config"
	"github.com/astrarium/natalchart/internal/infra/ephemeris/meeus"
	"github.com/astrarium/natalchart/internal/infra/tzlookup"
	httpiface "github.com/astrarium/natalchart/internal/interface/http"
	"github.com/astrarium/natalchart/pkg/logger"
)

func initializeApp() (*bootstrap.App, error) {
	wire.Build(
		config.Load,
		logger.New,
		provideChartConfig,
		provideZoneFinder,
		provideGeocoder,
		provideHistoryRepository,
		meeus.New,
		chart.NewService,
		wire.Bind(new(chart.ZoneFinder), new(*tzlookup.Finder)),
		wire.Bind(new(chart.Ephemeris), new(*meeus.Ephemeris)),
		httpiface.NewHandler,
		httpiface.NewRouter,
		bootstrap.NewApp,
	)
	return nil, nil
}
