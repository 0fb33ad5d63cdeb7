package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"math/big"
	"sync"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/memedao/memedao-cli/internal/domain"
	"github.com/memedao/memedao-cli/internal/domain/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	testAccount  = common.HexToAddress("0x1111111111111111111111111111111111111111")
	otherAccount = common.HexToAddress("0x2222222222222222222222222222222222222222")
	ether        = new(big.Int).Exp(big.NewInt(10), big.NewInt(18), nil)
)

func tokens(n int64) *big.Int {
	return new(big.Int).Mul(big.NewInt(n), ether)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type aggregatorFixture struct {
	session  *MockSession
	dao      *MockDAOReader
	staking  *MockStakingReader
	metadata *MockMetadataStore
	agg      *Aggregator
}

func newAggregatorFixture() *aggregatorFixture {
	f := &aggregatorFixture{
		session:  &MockSession{events: make(chan domain.SessionEvent, 4)},
		dao:      &MockDAOReader{},
		staking:  &MockStakingReader{},
		metadata: &MockMetadataStore{},
	}
	cfg := &config.RuntimeConfig{MetadataConcurrency: 2}
	f.agg = NewAggregator(cfg, f.dao, f.staking, f.metadata, f.session, discardLogger())
	f.agg.now = func() time.Time { return time.Unix(1_700_000_000, 0) }
	return f
}

// liveSession is a session whose identity tests can change mid-refresh
type liveSession struct {
	*MockSession
	mu sync.Mutex
	id domain.Identity
}

func (s *liveSession) Identity() domain.Identity {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.id
}

func (s *liveSession) set(id domain.Identity) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.id = id
}

// withLiveSession rebuilds the aggregator around a session starting at id
func (f *aggregatorFixture) withLiveSession(id domain.Identity) *liveSession {
	live := &liveSession{MockSession: f.session, id: id}
	now := f.agg.now
	f.agg = NewAggregator(f.agg.config, f.dao, f.staking, f.metadata, live, discardLogger())
	f.agg.now = now
	return live
}

func (f *aggregatorFixture) withProposals() {
	f.dao.On("Quorum", mock.Anything).Return(tokens(2000), nil)
	f.dao.On("ProposalCount", mock.Anything).Return(uint64(2), nil)
	f.dao.On("Proposal", mock.Anything, uint64(1)).Return(&domain.Proposal{
		Index: 1, ContentID: "cid-one", VotesFor: tokens(1250), VotesAgainst: tokens(340), Status: domain.StatusActive,
	}, nil)
	f.dao.On("Proposal", mock.Anything, uint64(2)).Return(&domain.Proposal{
		Index: 2, ContentID: "cid-two", VotesFor: tokens(5), VotesAgainst: tokens(9), Status: domain.StatusEnded,
	}, nil)
	f.metadata.On("Fetch", mock.Anything, "cid-one").Return(&domain.ProposalMetadata{Title: "PepeCoin 2.0 Launch"}, nil)
	f.metadata.On("Fetch", mock.Anything, "cid-two").Return(nil, domain.ErrMetadataUnavailable)
}

func (f *aggregatorFixture) withStaking(account common.Address) {
	f.staking.On("StakedBalance", mock.Anything, account).Return(tokens(100), nil)
	f.staking.On("Earned", mock.Anything, account).Return(tokens(3), nil)
	f.staking.On("UnlockTime", mock.Anything, account).Return(uint64(1_700_086_400), nil)
	f.staking.On("RewardRate", mock.Anything).Return(big.NewInt(10_000_000_000_000_000), nil)
	f.staking.On("TotalStaked", mock.Anything).Return(ether, nil)
	f.staking.On("VotingPower", mock.Anything, account).Return(tokens(100), nil)
}

func TestAggregatorRefresh(t *testing.T) {
	ctx := context.Background()

	t.Run("disconnected wallet gets zeroed staking fields", func(t *testing.T) {
		f := newAggregatorFixture()
		f.session.On("Identity").Return(domain.Identity{State: domain.Disconnected})
		f.withProposals()

		snap, err := f.agg.Refresh(ctx)
		require.NoError(t, err)

		assert.False(t, snap.Connected)
		assert.Equal(t, 0, snap.StakedAmount.Sign())
		assert.Equal(t, 0, snap.PendingRewards.Sign())
		assert.Equal(t, 0, snap.VotingPower.Sign())
		assert.Equal(t, 0, snap.CurrentAPY.Sign())
		assert.Equal(t, tokens(2000), snap.Quorum)
		require.Len(t, snap.Proposals, 2)
		assert.Same(t, snap, f.agg.Snapshot())

		f.staking.AssertNotCalled(t, "StakedBalance", mock.Anything, mock.Anything)
		f.dao.AssertNotCalled(t, "HasVoted", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("metadata failure only affects its proposal", func(t *testing.T) {
		f := newAggregatorFixture()
		f.session.On("Identity").Return(domain.Identity{State: domain.Disconnected})
		f.withProposals()

		snap, err := f.agg.Refresh(ctx)
		require.NoError(t, err)

		p1, ok := snap.Proposal(1)
		require.True(t, ok)
		require.NotNil(t, p1.Metadata)
		assert.Equal(t, "PepeCoin 2.0 Launch", p1.Title())

		p2, ok := snap.Proposal(2)
		require.True(t, ok)
		assert.Nil(t, p2.Metadata)
		assert.Equal(t, "Proposal #2", p2.Title())
		assert.Equal(t, domain.StateFailed, p2.State())
	})

	t.Run("connected wallet gets account figures", func(t *testing.T) {
		f := newAggregatorFixture()
		f.session.On("Identity").Return(domain.Identity{State: domain.Connected, Account: testAccount})
		f.withProposals()
		f.withStaking(testAccount)
		f.dao.On("HasVoted", mock.Anything, uint64(1), testAccount).Return(true, nil)
		f.dao.On("HasVoted", mock.Anything, uint64(2), testAccount).Return(false, nil)

		snap, err := f.agg.Refresh(ctx)
		require.NoError(t, err)

		assert.True(t, snap.Connected)
		assert.Equal(t, testAccount, snap.Account)
		assert.Equal(t, tokens(100), snap.StakedAmount)
		assert.Equal(t, tokens(3), snap.PendingRewards)
		assert.Equal(t, uint64(1_700_086_400), snap.UnlockTimestamp)
		assert.Equal(t, "31,536,000.00%", domain.FormatPercent(snap.CurrentAPY, 2))
		assert.Equal(t, time.Unix(1_700_000_000, 0), snap.FetchedAt)

		p1, _ := snap.Proposal(1)
		p2, _ := snap.Proposal(2)
		assert.True(t, p1.HasCurrentUserVoted)
		assert.False(t, p2.HasCurrentUserVoted)
	})

	t.Run("quorum failure aborts without publishing", func(t *testing.T) {
		f := newAggregatorFixture()
		f.session.On("Identity").Return(domain.Identity{State: domain.Disconnected})
		f.dao.On("Quorum", mock.Anything).Return(nil, errors.New("rpc down"))

		snap, err := f.agg.Refresh(ctx)
		require.Error(t, err)
		assert.Nil(t, snap)
		assert.Contains(t, err.Error(), "quorum")
		assert.Empty(t, f.agg.Snapshot().Proposals)
	})

	t.Run("proposal read failure aborts", func(t *testing.T) {
		f := newAggregatorFixture()
		f.session.On("Identity").Return(domain.Identity{State: domain.Disconnected})
		f.dao.On("Quorum", mock.Anything).Return(tokens(2000), nil)
		f.dao.On("ProposalCount", mock.Anything).Return(uint64(1), nil)
		f.dao.On("Proposal", mock.Anything, uint64(1)).Return(nil, errors.New("execution reverted"))

		_, err := f.agg.Refresh(ctx)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "proposal 1")
	})

	t.Run("account read failure aborts", func(t *testing.T) {
		f := newAggregatorFixture()
		f.session.On("Identity").Return(domain.Identity{State: domain.Connected, Account: testAccount})
		f.dao.On("Quorum", mock.Anything).Return(tokens(2000), nil)
		f.dao.On("ProposalCount", mock.Anything).Return(uint64(0), nil)
		f.staking.On("StakedBalance", mock.Anything, testAccount).Return(nil, errors.New("timeout"))

		_, err := f.agg.Refresh(ctx)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "staked balance")
	})

	t.Run("identity change during refresh drops the snapshot", func(t *testing.T) {
		f := newAggregatorFixture()
		f.session.On("Identity").Return(domain.Identity{State: domain.Disconnected}).Once()
		f.session.On("Identity").Return(domain.Identity{State: domain.Connected, Account: otherAccount})
		f.withProposals()

		_, err := f.agg.Refresh(ctx)
		assert.ErrorIs(t, err, domain.ErrStaleSnapshot)
		assert.Empty(t, f.agg.Snapshot().Proposals)
	})

	t.Run("session event before publish drops the snapshot", func(t *testing.T) {
		f := newAggregatorFixture()
		live := f.withLiveSession(domain.Identity{State: domain.Connected, Account: testAccount})
		f.withProposals()
		f.withStaking(testAccount)
		f.dao.On("HasVoted", mock.Anything, mock.Anything, testAccount).Return(true, nil)

		disconnected := domain.Identity{State: domain.Disconnected}
		f.agg.now = func() time.Time {
			// the wallet disconnects after every read has completed
			live.set(disconnected)
			f.agg.clearAccount(disconnected)
			return time.Unix(1_700_000_000, 0)
		}

		_, err := f.agg.Refresh(ctx)
		require.ErrorIs(t, err, domain.ErrStaleSnapshot)

		snap := f.agg.Snapshot()
		assert.False(t, snap.Connected)
		assert.Equal(t, common.Address{}, snap.Account)
		assert.Equal(t, 0, snap.StakedAmount.Sign())
	})

	t.Run("session event alone drops an in-flight refresh", func(t *testing.T) {
		f := newAggregatorFixture()
		f.withLiveSession(domain.Identity{State: domain.Disconnected})
		f.withProposals()

		f.agg.now = func() time.Time {
			f.agg.clearAccount(domain.Identity{State: domain.Disconnected})
			return time.Unix(1_700_000_000, 0)
		}

		_, err := f.agg.Refresh(ctx)
		assert.ErrorIs(t, err, domain.ErrStaleSnapshot)
		assert.True(t, f.agg.Snapshot().FetchedAt.IsZero())
	})

	t.Run("older refresh does not overwrite a newer one", func(t *testing.T) {
		f := newAggregatorFixture()
		f.session.On("Identity").Return(domain.Identity{State: domain.Disconnected})

		entered := make(chan struct{})
		release := make(chan struct{})
		f.dao.On("Quorum", mock.Anything).Return(tokens(1000), nil).Once().Run(func(mock.Arguments) {
			close(entered)
			<-release
		})
		f.dao.On("Quorum", mock.Anything).Return(tokens(2000), nil).Once()
		f.withProposals()

		type outcome struct {
			snap *domain.StatisticsSnapshot
			err  error
		}
		older := make(chan outcome, 1)
		go func() {
			snap, err := f.agg.Refresh(ctx)
			older <- outcome{snap, err}
		}()
		<-entered

		newer, err := f.agg.Refresh(ctx)
		require.NoError(t, err)
		assert.Equal(t, tokens(2000), newer.Quorum)

		close(release)
		got := <-older
		require.NoError(t, got.err)
		assert.Same(t, newer, got.snap)
		assert.Same(t, newer, f.agg.Snapshot())
	})

	t.Run("apy overflow keeps the snapshot", func(t *testing.T) {
		f := newAggregatorFixture()
		f.session.On("Identity").Return(domain.Identity{State: domain.Connected, Account: testAccount})
		f.withProposals()
		f.staking.On("RewardRate", mock.Anything).Return(new(big.Int).Lsh(big.NewInt(1), 200), nil).Once()
		f.staking.On("TotalStaked", mock.Anything).Return(big.NewInt(1), nil).Once()
		f.withStaking(testAccount)
		f.dao.On("HasVoted", mock.Anything, mock.Anything, testAccount).Return(false, nil)

		snap, err := f.agg.Refresh(ctx)
		require.NoError(t, err)
		assert.Equal(t, 0, snap.CurrentAPY.Sign())
		assert.Equal(t, tokens(100), snap.StakedAmount)
		assert.Len(t, snap.Proposals, 2)
	})

	t.Run("no proposals", func(t *testing.T) {
		f := newAggregatorFixture()
		f.session.On("Identity").Return(domain.Identity{State: domain.Disconnected})
		f.dao.On("Quorum", mock.Anything).Return(tokens(2000), nil)
		f.dao.On("ProposalCount", mock.Anything).Return(uint64(0), nil)

		snap, err := f.agg.Refresh(ctx)
		require.NoError(t, err)
		assert.Empty(t, snap.Proposals)
	})
}

func TestAggregatorSnapshotBeforeRefresh(t *testing.T) {
	f := newAggregatorFixture()
	snap := f.agg.Snapshot()
	require.NotNil(t, snap)
	assert.False(t, snap.Connected)
	assert.Equal(t, 0, snap.StakedAmount.Sign())
}

func TestAggregatorClearAccount(t *testing.T) {
	f := newAggregatorFixture()
	f.session.On("Identity").Return(domain.Identity{State: domain.Connected, Account: testAccount})
	f.withProposals()
	f.withStaking(testAccount)
	f.dao.On("HasVoted", mock.Anything, mock.Anything, testAccount).Return(true, nil)

	connected, err := f.agg.Refresh(context.Background())
	require.NoError(t, err)

	f.agg.clearAccount(domain.Identity{State: domain.Disconnected})

	cleared := f.agg.Snapshot()
	assert.False(t, cleared.Connected)
	assert.Equal(t, common.Address{}, cleared.Account)
	assert.Equal(t, 0, cleared.StakedAmount.Sign())
	assert.Equal(t, 0, cleared.PendingRewards.Sign())
	assert.Equal(t, 0, cleared.VotingPower.Sign())
	require.Len(t, cleared.Proposals, 2)
	for _, p := range cleared.Proposals {
		assert.False(t, p.HasCurrentUserVoted)
	}

	// the earlier snapshot is untouched
	assert.Equal(t, tokens(100), connected.StakedAmount)
	assert.True(t, connected.Proposals[0].HasCurrentUserVoted)
}

func TestAggregatorRun(t *testing.T) {
	f := newAggregatorFixture()
	f.session.On("Identity").Return(domain.Identity{State: domain.Disconnected})
	f.withProposals()

	updates, unsubscribe := f.agg.Subscribe()
	defer unsubscribe()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- f.agg.Run(ctx) }()

	select {
	case snap := <-updates:
		assert.Len(t, snap.Proposals, 2)
	case <-time.After(2 * time.Second):
		t.Fatal("no snapshot published on startup")
	}

	f.session.events <- domain.SessionEvent{Kind: domain.SessionDisconnected}

	select {
	case snap := <-updates:
		assert.False(t, snap.Connected)
	case <-time.After(2 * time.Second):
		t.Fatal("no snapshot published after session change")
	}

	cancel()
	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not stop after cancel")
	}
}

func TestAggregatorRunAccountChanged(t *testing.T) {
	f := newAggregatorFixture()
	live := f.withLiveSession(domain.Identity{State: domain.Connected, Account: testAccount})
	f.withProposals()
	f.withStaking(testAccount)
	f.staking.On("StakedBalance", mock.Anything, otherAccount).Return(tokens(7), nil)
	f.staking.On("Earned", mock.Anything, otherAccount).Return(tokens(0), nil)
	f.staking.On("UnlockTime", mock.Anything, otherAccount).Return(uint64(0), nil)
	f.staking.On("VotingPower", mock.Anything, otherAccount).Return(tokens(7), nil)
	f.dao.On("HasVoted", mock.Anything, mock.Anything, testAccount).Return(true, nil)
	f.dao.On("HasVoted", mock.Anything, mock.Anything, otherAccount).Return(false, nil)

	updates, unsubscribe := f.agg.Subscribe()
	defer unsubscribe()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- f.agg.Run(ctx) }()

	select {
	case snap := <-updates:
		assert.Equal(t, testAccount, snap.Account)
		assert.Equal(t, tokens(100), snap.StakedAmount)
	case <-time.After(2 * time.Second):
		t.Fatal("no snapshot published on startup")
	}

	other := domain.Identity{State: domain.Connected, Account: otherAccount}
	live.set(other)
	f.session.events <- domain.SessionEvent{Kind: domain.SessionAccountChanged, Identity: other}

	deadline := time.After(2 * time.Second)
	for refreshed := false; !refreshed; {
		select {
		case snap := <-updates:
			require.Equal(t, otherAccount, snap.Account)
			// the previous account's figures are never shown for the new one
			assert.NotEqual(t, tokens(100), snap.StakedAmount)
			for _, p := range snap.Proposals {
				assert.False(t, p.HasCurrentUserVoted)
			}
			refreshed = snap.StakedAmount.Cmp(tokens(7)) == 0
		case <-deadline:
			t.Fatal("no snapshot published for the new account")
		}
	}

	cancel()
	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not stop after cancel")
	}
}
