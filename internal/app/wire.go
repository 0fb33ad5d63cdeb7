//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"
	"github.com/memedao/memedao-cli/internal/adapters"
	"github.com/memedao/memedao-cli/internal/config"
	"github.com/memedao/memedao-cli/internal/logging"
	"github.com/memedao/memedao-cli/internal/usecase"
	"github.com/spf13/viper"
)

// InitApp creates a fully wired App instance
func InitApp(v *viper.Viper, sink usecase.ProgressSink) (*App, func(), error) {
	wire.Build(
		config.Provider,
		logging.LoggingSet,

		// Adapters
		adapters.AllAdapters,

		// Use cases
		usecase.NewAggregator,
		wire.Bind(new(usecase.Refresher), new(*usecase.Aggregator)),
		usecase.NewActions,
		usecase.NewListProposals,
		usecase.NewShowProposal,
		usecase.NewShowTokenomics,

		// App
		NewApp,
	)
	return nil, nil, nil
}
