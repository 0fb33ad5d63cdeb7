package domain

import (
	"math/big"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveStatus(t *testing.T) {
	t.Run("ended proposals compare tallies", func(t *testing.T) {
		tests := []struct {
			name     string
			votesFor int64
			against  int64
			expected ProposalState
		}{
			{"tie passes", 100, 100, StatePassed},
			{"majority for passes", 101, 100, StatePassed},
			{"minority for fails", 99, 100, StateFailed},
			{"no votes passes", 0, 0, StatePassed},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				got := ResolveStatus(StatusEnded, big.NewInt(tt.votesFor), big.NewInt(tt.against))
				assert.Equal(t, tt.expected, got)
			})
		}
	})

	t.Run("other codes ignore tallies", func(t *testing.T) {
		fixed := map[StatusCode]ProposalState{
			StatusNotStarted:   StateNotStarted,
			StatusActive:       StateActive,
			StatusResolved:     StateResolved,
			StatusCanceled:     StateCanceled,
			StatusQuorumFailed: StateQuorumFailed,
		}
		tallies := [][2]int64{{0, 0}, {100, 1}, {1, 100}, {100, 100}}

		for code, want := range fixed {
			for _, tally := range tallies {
				got := ResolveStatus(code, big.NewInt(tally[0]), big.NewInt(tally[1]))
				assert.Equal(t, want, got, "code %d tally %v", code, tally)
			}
		}
	})

	t.Run("nil tallies count as zero", func(t *testing.T) {
		assert.Equal(t, StatePassed, ResolveStatus(StatusEnded, nil, nil))
		assert.Equal(t, StateFailed, ResolveStatus(StatusEnded, nil, big.NewInt(1)))
	})

	t.Run("undefined codes are unknown", func(t *testing.T) {
		assert.Equal(t, StateUnknown, ResolveStatus(6, nil, nil))
		assert.Equal(t, StateUnknown, ResolveStatus(255, nil, nil))
	})
}

func TestProposalState(t *testing.T) {
	assert.Equal(t, "Quorum Failed", StateQuorumFailed.Label())
	assert.Equal(t, "Not Started", StateNotStarted.Label())
	assert.True(t, StateCanceled.IsTerminal())
	assert.False(t, StatePassed.IsTerminal())
	assert.True(t, StateActive.AcceptsVotes())

	st, err := ParseProposalState("Quorum-Failed")
	require.NoError(t, err)
	assert.Equal(t, StateQuorumFailed, st)

	_, err = ParseProposalState("pending")
	assert.Error(t, err)
}

func TestProposalMetadata(t *testing.T) {
	valid := ProposalMetadata{
		Title:            "PepeCoin 2.0 Launch",
		Description:      "Deflationary meme token",
		RequestedFunding: "$500K",
		Category:         "Launchpad",
		EndDate:          "2025-03-25",
	}

	t.Run("complete metadata validates", func(t *testing.T) {
		assert.NoError(t, valid.Validate())
	})

	t.Run("blank fields are reported", func(t *testing.T) {
		m := valid
		m.Category = "  "
		m.Title = ""
		err := m.Validate()
		require.ErrorIs(t, err, ErrIncompleteMetadata)
		assert.Contains(t, err.Error(), "title, category")
	})

	t.Run("end date layouts", func(t *testing.T) {
		for _, raw := range []string{"2025-03-25", "2025-03-25T00:00:00Z", "March 25, 2025"} {
			m := valid
			m.EndDate = raw
			got, err := m.EndTime()
			require.NoError(t, err, raw)
			assert.True(t, got.Equal(time.Date(2025, 3, 25, 0, 0, 0, 0, time.UTC)), raw)
		}

		m := valid
		m.EndDate = "next tuesday"
		_, err := m.EndTime()
		assert.ErrorIs(t, err, ErrInvalidEndDate)
	})
}

func TestProposalQuorum(t *testing.T) {
	p := &Proposal{Index: 3, VotesFor: big.NewInt(1250), VotesAgainst: big.NewInt(340)}

	assert.Equal(t, "1590", p.TotalVotes().String())
	assert.False(t, p.QuorumReached(big.NewInt(2000)))
	assert.True(t, p.QuorumReached(big.NewInt(1590)))
	assert.Equal(t, "79.50%", FormatPercent(p.QuorumProgress(big.NewInt(2000)), 2))
	assert.Equal(t, "100.00%", FormatPercent(p.QuorumProgress(nil), 2))
	assert.Equal(t, "Proposal #3", p.Title())
}
