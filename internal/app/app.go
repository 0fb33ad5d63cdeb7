package app

import (
	"github.com/memedao/memedao-cli/internal/adapters/blockchain"
	"github.com/memedao/memedao-cli/internal/adapters/fs"
	"github.com/memedao/memedao-cli/internal/domain/config"
	"github.com/memedao/memedao-cli/internal/usecase"
)

// App is the main application container that holds all use cases
type App struct {
	Config *config.RuntimeConfig

	// Shared dependencies
	Session    usecase.Session
	Selector   usecase.ProposalSelector
	Chain      *blockchain.Client
	Tokenomics *fs.TokenomicsStore
	Progress   usecase.ProgressSink

	// Use cases
	Aggregator     *usecase.Aggregator
	Actions        *usecase.Actions
	ListProposals  *usecase.ListProposals
	ShowProposal   *usecase.ShowProposal
	ShowTokenomics *usecase.ShowTokenomics
}

// NewApp creates a new application instance with all use cases
func NewApp(
	cfg *config.RuntimeConfig,
	session usecase.Session,
	selector usecase.ProposalSelector,
	chain *blockchain.Client,
	tokenomics *fs.TokenomicsStore,
	sink usecase.ProgressSink,
	aggregator *usecase.Aggregator,
	actions *usecase.Actions,
	listProposals *usecase.ListProposals,
	showProposal *usecase.ShowProposal,
	showTokenomics *usecase.ShowTokenomics,
) *App {
	return &App{
		Config:         cfg,
		Session:        session,
		Selector:       selector,
		Chain:          chain,
		Tokenomics:     tokenomics,
		Progress:       sink,
		Aggregator:     aggregator,
		Actions:        actions,
		ListProposals:  listProposals,
		ShowProposal:   showProposal,
		ShowTokenomics: showTokenomics,
	}
}
