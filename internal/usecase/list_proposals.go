package usecase

import (
	"context"
	"fmt"
	"math/big"
	"slices"
	"sort"

	"github.com/memedao/memedao-cli/internal/domain"
	"github.com/sahilm/fuzzy"
	"github.com/samber/lo"
)

// ListProposalsParams contains parameters for listing proposals
type ListProposalsParams struct {
	// Search is matched fuzzily against title, category and proposer
	Search string
	// State limits the result to one lifecycle state when set
	State domain.ProposalState
	// Votable keeps only proposals the connected account can still vote on
	Votable bool
}

// ProposalListResult contains the filtered proposals and context for rendering
type ProposalListResult struct {
	Proposals []*domain.Proposal
	Quorum    *big.Int
	Connected bool
	Summary   map[domain.ProposalState]int
	Total     int
}

// ListProposals is the use case for listing proposals
type ListProposals struct {
	refresher Refresher
	sink      ProgressSink
}

// NewListProposals creates a new ListProposals use case
func NewListProposals(refresher Refresher, sink ProgressSink) *ListProposals {
	return &ListProposals{refresher: refresher, sink: sink}
}

// Run executes the list proposals use case
func (uc *ListProposals) Run(ctx context.Context, params ListProposalsParams) (*ProposalListResult, error) {
	uc.sink.OnProgress(ctx, ProgressEvent{
		Stage:   "loading",
		Message: "Loading proposals",
		Spinner: true,
	})

	snap, err := uc.refresher.Refresh(ctx)
	if err != nil {
		return nil, err
	}

	// the snapshot is shared, sort a copy
	proposals := slices.Clone(snap.Proposals)
	if params.State != "" {
		proposals = lo.Filter(proposals, func(p *domain.Proposal, _ int) bool {
			return p.State() == params.State
		})
	}
	if params.Votable {
		proposals = lo.Filter(proposals, func(p *domain.Proposal, _ int) bool {
			return p.State().AcceptsVotes() && !p.HasCurrentUserVoted
		})
	}

	if params.Search != "" {
		proposals = searchProposals(proposals, params.Search)
	} else {
		// newest first
		sort.SliceStable(proposals, func(i, j int) bool {
			return proposals[i].Index > proposals[j].Index
		})
	}

	uc.sink.OnProgress(ctx, ProgressEvent{
		Stage:   "complete",
		Current: len(proposals),
		Total:   len(snap.Proposals),
		Message: "Proposals loaded",
	})

	return &ProposalListResult{
		Proposals: proposals,
		Quorum:    snap.Quorum,
		Connected: snap.Connected,
		Summary:   snap.CountByState(),
		Total:     len(snap.Proposals),
	}, nil
}

// proposalSource adapts proposals to fuzzy.Source
type proposalSource []*domain.Proposal

func (s proposalSource) String(i int) string {
	p := s[i]
	text := fmt.Sprintf("#%d %s %s", p.Index, p.Title(), p.Proposer.Hex())
	if p.Metadata != nil {
		text += " " + p.Metadata.Category
	}
	return text
}

func (s proposalSource) Len() int { return len(s) }

// searchProposals returns the matching proposals ordered by match score.
func searchProposals(proposals []*domain.Proposal, pattern string) []*domain.Proposal {
	matches := fuzzy.FindFrom(pattern, proposalSource(proposals))
	return lo.Map(matches, func(m fuzzy.Match, _ int) *domain.Proposal {
		return proposals[m.Index]
	})
}

// ShowProposal is the use case for looking up a single proposal
type ShowProposal struct {
	refresher Refresher
}

// NewShowProposal creates a new ShowProposal use case
func NewShowProposal(refresher Refresher) *ShowProposal {
	return &ShowProposal{refresher: refresher}
}

// ProposalDetail is a proposal with the quorum it is measured against
type ProposalDetail struct {
	Proposal  *domain.Proposal
	Quorum    *big.Int
	Connected bool
}

// Run returns the proposal with the given on-chain index.
func (uc *ShowProposal) Run(ctx context.Context, index uint64) (*ProposalDetail, error) {
	if index == 0 {
		return nil, fmt.Errorf("%w: 0", domain.ErrInvalidProposalIndex)
	}

	snap, err := uc.refresher.Refresh(ctx)
	if err != nil {
		return nil, err
	}

	p, ok := snap.Proposal(index)
	if !ok {
		return nil, fmt.Errorf("proposal #%d: %w", index, domain.ErrNotFound)
	}
	return &ProposalDetail{Proposal: p, Quorum: snap.Quorum, Connected: snap.Connected}, nil
}
