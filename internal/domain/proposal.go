package domain

import (
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// StatusCode is the raw proposal status stored by the DAO contract.
type StatusCode uint8

const (
	StatusNotStarted StatusCode = iota
	StatusActive
	StatusEnded
	StatusResolved
	StatusCanceled
	StatusQuorumFailed
)

// ProposalState is the lifecycle state shown to users.
type ProposalState string

const (
	StateNotStarted   ProposalState = "not_started"
	StateActive       ProposalState = "active"
	StatePassed       ProposalState = "passed"
	StateFailed       ProposalState = "failed"
	StateResolved     ProposalState = "resolved"
	StateCanceled     ProposalState = "canceled"
	StateQuorumFailed ProposalState = "quorum_failed"
	StateUnknown      ProposalState = "unknown"
)

// AllProposalStates lists every state ResolveStatus can return.
var AllProposalStates = []ProposalState{
	StateNotStarted,
	StateActive,
	StatePassed,
	StateFailed,
	StateResolved,
	StateCanceled,
	StateQuorumFailed,
	StateUnknown,
}

var titleCaser = cases.Title(language.English)

// Label returns the state as display text ("quorum_failed" -> "Quorum Failed").
func (s ProposalState) Label() string {
	return titleCaser.String(strings.ReplaceAll(string(s), "_", " "))
}

// IsTerminal reports whether the contract will never move the proposal again.
func (s ProposalState) IsTerminal() bool {
	switch s {
	case StateResolved, StateCanceled, StateQuorumFailed:
		return true
	}
	return false
}

// AcceptsVotes reports whether a vote can be cast in this state.
func (s ProposalState) AcceptsVotes() bool {
	return s == StateActive
}

// ParseProposalState parses a state name as accepted on the command line.
func ParseProposalState(s string) (ProposalState, error) {
	norm := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_")
	for _, st := range AllProposalStates {
		if string(st) == norm {
			return st, nil
		}
	}
	return "", fmt.Errorf("unknown proposal state %q", s)
}

// ResolveStatus maps a contract status code and vote tallies to a
// lifecycle state. An ended proposal passes when votes for are at least
// votes against; a tie passes. Codes the contract doesn't define resolve
// to StateUnknown. The mapping is stateless.
func ResolveStatus(code StatusCode, votesFor, votesAgainst *big.Int) ProposalState {
	switch code {
	case StatusNotStarted:
		return StateNotStarted
	case StatusActive:
		return StateActive
	case StatusEnded:
		if orZero(votesFor).Cmp(orZero(votesAgainst)) >= 0 {
			return StatePassed
		}
		return StateFailed
	case StatusResolved:
		return StateResolved
	case StatusCanceled:
		return StateCanceled
	case StatusQuorumFailed:
		return StateQuorumFailed
	default:
		return StateUnknown
	}
}

// ProposalMetadata is the JSON document pinned for each proposal.
type ProposalMetadata struct {
	Title            string `json:"title" yaml:"title"`
	Description      string `json:"description" yaml:"description"`
	RequestedFunding string `json:"requestedFunding" yaml:"requestedFunding"`
	Category         string `json:"category" yaml:"category"`
	EndDate          string `json:"endDate" yaml:"endDate"`
}

// Validate checks that every field is populated.
func (m *ProposalMetadata) Validate() error {
	if m == nil {
		return ErrIncompleteMetadata
	}
	var missing []string
	fields := []struct {
		name  string
		value string
	}{
		{"title", m.Title},
		{"description", m.Description},
		{"requestedFunding", m.RequestedFunding},
		{"category", m.Category},
		{"endDate", m.EndDate},
	}
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: missing %s", ErrIncompleteMetadata, strings.Join(missing, ", "))
	}
	return nil
}

// endDateLayouts are tried in order by EndTime.
var endDateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04",
	"2006-01-02",
	"January 2, 2006",
}

// EndTime parses EndDate. Date-only values end at midnight UTC of that day.
func (m *ProposalMetadata) EndTime() (time.Time, error) {
	raw := strings.TrimSpace(m.EndDate)
	for _, layout := range endDateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidEndDate, m.EndDate)
}

// Proposal is one DAO proposal as read from chain plus its pinned metadata.
type Proposal struct {
	Index               uint64            `json:"index" yaml:"index"`
	ContentID           string            `json:"contentId" yaml:"contentId"`
	Metadata            *ProposalMetadata `json:"metadata" yaml:"metadata"`
	VotesFor            *big.Int          `json:"votesFor" yaml:"votesFor"`
	VotesAgainst        *big.Int          `json:"votesAgainst" yaml:"votesAgainst"`
	VotersCount         *big.Int          `json:"votersCount" yaml:"votersCount"`
	StartTime           uint64            `json:"startTime" yaml:"startTime"`
	EndTime             uint64            `json:"endTime" yaml:"endTime"`
	Status              StatusCode        `json:"status" yaml:"status"`
	Proposer            common.Address    `json:"proposer" yaml:"proposer"`
	HasCurrentUserVoted bool              `json:"hasCurrentUserVoted" yaml:"hasCurrentUserVoted"`
}

// State resolves the proposal's lifecycle state.
func (p *Proposal) State() ProposalState {
	return ResolveStatus(p.Status, p.VotesFor, p.VotesAgainst)
}

// Title returns the metadata title, or a placeholder naming the proposal.
func (p *Proposal) Title() string {
	if p.Metadata != nil && p.Metadata.Title != "" {
		return p.Metadata.Title
	}
	return fmt.Sprintf("Proposal #%d", p.Index)
}

// TotalVotes is the vote weight cast either way.
func (p *Proposal) TotalVotes() *big.Int {
	return new(big.Int).Add(orZero(p.VotesFor), orZero(p.VotesAgainst))
}

// QuorumProgress returns total votes as a percentage of quorum, scaled by
// 1e18 like CalculateAPY. A zero quorum counts as reached.
func (p *Proposal) QuorumProgress(quorum *big.Int) *big.Int {
	if quorum == nil || quorum.Sign() == 0 {
		return new(big.Int).Mul(big.NewInt(100), fixedPointUnit.ToBig())
	}
	v := new(big.Int).Mul(p.TotalVotes(), big.NewInt(100))
	v.Mul(v, fixedPointUnit.ToBig())
	return v.Quo(v, quorum)
}

// QuorumReached reports whether total votes meet the quorum.
func (p *Proposal) QuorumReached(quorum *big.Int) bool {
	return p.TotalVotes().Cmp(orZero(quorum)) >= 0
}

func orZero(v *big.Int) *big.Int {
	if v == nil {
		return new(big.Int)
	}
	return v
}
