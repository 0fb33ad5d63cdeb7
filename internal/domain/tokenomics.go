package domain

import (
	"fmt"
	"math/big"
)

// Allocation is one slice of the token distribution, in whole percent.
type Allocation struct {
	Name    string `toml:"name" json:"name" yaml:"name"`
	Percent int64  `toml:"percent" json:"percent" yaml:"percent"`
	Color   string `toml:"color" json:"color,omitempty" yaml:"color,omitempty"`
}

// Tokenomics is the published token distribution plus live supply figures.
type Tokenomics struct {
	Symbol      string       `toml:"symbol" json:"symbol" yaml:"symbol"`
	Allocations []Allocation `toml:"allocation" json:"allocations" yaml:"allocations"`
	TotalSupply *big.Int     `toml:"-" json:"totalSupply" yaml:"totalSupply"`
	TotalStaked *big.Int     `toml:"-" json:"totalStaked" yaml:"totalStaked"`
}

// DefaultTokenomics is the $MEME distribution used when no allocation file
// is configured.
func DefaultTokenomics() *Tokenomics {
	return &Tokenomics{
		Symbol: "MEME",
		Allocations: []Allocation{
			{Name: "DAO Treasury", Percent: 30, Color: "#8B5CF6"},
			{Name: "Community Rewards", Percent: 25, Color: "#06B6D4"},
			{Name: "Team & Advisors", Percent: 15, Color: "#10B981"},
			{Name: "Liquidity", Percent: 15, Color: "#F59E0B"},
			{Name: "Marketing & Growth", Percent: 10, Color: "#EF4444"},
			{Name: "Reserve", Percent: 5, Color: "#6B7280"},
		},
	}
}

// Validate checks that allocations are positive and sum to 100.
func (t *Tokenomics) Validate() error {
	var sum int64
	for _, a := range t.Allocations {
		if a.Percent <= 0 {
			return fmt.Errorf("allocation %q must be positive, got %d", a.Name, a.Percent)
		}
		sum += a.Percent
	}
	if sum != 100 {
		return fmt.Errorf("allocations must sum to 100, got %d", sum)
	}
	return nil
}

// Amount returns the share of supply held by allocation a.
func (t *Tokenomics) Amount(a Allocation) *big.Int {
	if t.TotalSupply == nil {
		return nil
	}
	v := new(big.Int).Mul(t.TotalSupply, big.NewInt(a.Percent))
	return v.Quo(v, big.NewInt(100))
}

// StakedShare returns total staked as a percentage of supply, scaled by 1e18.
func (t *Tokenomics) StakedShare() *big.Int {
	if t.TotalSupply == nil || t.TotalSupply.Sign() == 0 || t.TotalStaked == nil {
		return new(big.Int)
	}
	v := new(big.Int).Mul(t.TotalStaked, big.NewInt(100))
	v.Mul(v, fixedPointUnit.ToBig())
	return v.Quo(v, t.TotalSupply)
}
