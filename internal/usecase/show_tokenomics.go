package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/memedao/memedao-cli/internal/domain"
	"golang.org/x/sync/errgroup"
)

// ShowTokenomics is the use case for the token distribution view. Live
// supply figures are best effort; the allocation table is always shown.
type ShowTokenomics struct {
	source  TokenomicsSource
	token   TokenReader
	staking StakingReader
	log     *slog.Logger
}

// NewShowTokenomics creates a new ShowTokenomics use case
func NewShowTokenomics(source TokenomicsSource, token TokenReader, staking StakingReader, log *slog.Logger) *ShowTokenomics {
	return &ShowTokenomics{source: source, token: token, staking: staking, log: log}
}

// Run loads the allocations and decorates them with on-chain supply.
func (uc *ShowTokenomics) Run(ctx context.Context) (*domain.Tokenomics, error) {
	t, err := uc.source.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load tokenomics: %w", err)
	}
	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("invalid tokenomics: %w", err)
	}

	var g errgroup.Group
	g.Go(func() error {
		supply, err := uc.token.TotalSupply(ctx)
		if err != nil {
			uc.log.Warn("total supply unavailable", "error", err)
			return nil
		}
		t.TotalSupply = supply
		return nil
	})
	g.Go(func() error {
		staked, err := uc.staking.TotalStaked(ctx)
		if err != nil {
			uc.log.Warn("total staked unavailable", "error", err)
			return nil
		}
		t.TotalStaked = staked
		return nil
	})
	g.Go(func() error {
		symbol, err := uc.token.Symbol(ctx)
		if err != nil || symbol == "" {
			return nil
		}
		t.Symbol = symbol
		return nil
	})
	_ = g.Wait()

	return t, nil
}
