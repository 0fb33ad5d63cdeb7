package domain

import (
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// StatisticsSnapshot is the read model behind every view. A snapshot is
// built in one refresh cycle and never mutated afterwards; a refresh
// produces a new snapshot that replaces the old one.
type StatisticsSnapshot struct {
	CurrentAPY      *big.Int       `json:"currentApy" yaml:"currentApy"`
	StakedAmount    *big.Int       `json:"stakedAmount" yaml:"stakedAmount"`
	PendingRewards  *big.Int       `json:"pendingRewards" yaml:"pendingRewards"`
	UnlockTimestamp uint64         `json:"unlockTimestamp" yaml:"unlockTimestamp"`
	VotingPower     *big.Int       `json:"votingPower" yaml:"votingPower"`
	TotalStaked     *big.Int       `json:"totalStaked" yaml:"totalStaked"`
	RewardRate      *big.Int       `json:"rewardRate" yaml:"rewardRate"`
	Proposals       []*Proposal    `json:"proposals" yaml:"proposals"`
	Quorum          *big.Int       `json:"quorum" yaml:"quorum"`
	Connected       bool           `json:"connected" yaml:"connected"`
	Account         common.Address `json:"account" yaml:"account"`
	FetchedAt       time.Time      `json:"fetchedAt" yaml:"fetchedAt"`
}

// EmptySnapshot is the snapshot published before the first refresh, and
// the zeroed staking view of a disconnected wallet.
func EmptySnapshot() *StatisticsSnapshot {
	return &StatisticsSnapshot{
		CurrentAPY:     new(big.Int),
		StakedAmount:   new(big.Int),
		PendingRewards: new(big.Int),
		VotingPower:    new(big.Int),
		TotalStaked:    new(big.Int),
		RewardRate:     new(big.Int),
		Quorum:         new(big.Int),
		Proposals:      []*Proposal{},
	}
}

// UnlockTime returns the unlock timestamp as a time, zero if unset.
func (s *StatisticsSnapshot) UnlockTime() time.Time {
	if s.UnlockTimestamp == 0 {
		return time.Time{}
	}
	return time.Unix(int64(s.UnlockTimestamp), 0)
}

// Unlocked reports whether staked tokens can be withdrawn at now.
func (s *StatisticsSnapshot) Unlocked(now time.Time) bool {
	return s.UnlockTimestamp == 0 || !now.Before(s.UnlockTime())
}

// Proposal looks up a proposal by its on-chain index.
func (s *StatisticsSnapshot) Proposal(index uint64) (*Proposal, bool) {
	for _, p := range s.Proposals {
		if p.Index == index {
			return p, true
		}
	}
	return nil, false
}

// CountByState tallies proposals per lifecycle state.
func (s *StatisticsSnapshot) CountByState() map[ProposalState]int {
	counts := make(map[ProposalState]int)
	for _, p := range s.Proposals {
		counts[p.State()]++
	}
	return counts
}
