package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/big"
	"sync"
	"sync/atomic"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/memedao/memedao-cli/internal/domain"
	"github.com/memedao/memedao-cli/internal/domain/config"
	"golang.org/x/sync/errgroup"
)

// Aggregator builds the StatisticsSnapshot read model from the DAO and
// staking contracts and the metadata store, and republishes it whenever the
// wallet session changes.
type Aggregator struct {
	config   *config.RuntimeConfig
	dao      DAOReader
	staking  StakingReader
	metadata MetadataStore
	session  Session
	log      *slog.Logger

	current atomic.Pointer[domain.StatisticsSnapshot]

	// publishMu orders publication. generation counts session events seen,
	// started and published sequence refreshes by start order.
	publishMu  sync.Mutex
	generation uint64
	started    uint64
	published  uint64

	mu          sync.Mutex
	subscribers map[int]chan *domain.StatisticsSnapshot
	nextSubID   int

	now func() time.Time
}

// NewAggregator creates a new Aggregator
func NewAggregator(
	cfg *config.RuntimeConfig,
	dao DAOReader,
	staking StakingReader,
	metadata MetadataStore,
	session Session,
	log *slog.Logger,
) *Aggregator {
	return &Aggregator{
		config:      cfg,
		dao:         dao,
		staking:     staking,
		metadata:    metadata,
		session:     session,
		log:         log,
		subscribers: make(map[int]chan *domain.StatisticsSnapshot),
		now:         time.Now,
	}
}

// Snapshot returns the latest published snapshot.
func (a *Aggregator) Snapshot() *domain.StatisticsSnapshot {
	if snap := a.current.Load(); snap != nil {
		return snap
	}
	return domain.EmptySnapshot()
}

// Subscribe returns a channel receiving every published snapshot. Slow
// readers miss intermediate snapshots rather than blocking the aggregator.
func (a *Aggregator) Subscribe() (<-chan *domain.StatisticsSnapshot, func()) {
	a.mu.Lock()
	defer a.mu.Unlock()

	id := a.nextSubID
	a.nextSubID++
	ch := make(chan *domain.StatisticsSnapshot, 1)
	a.subscribers[id] = ch

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			a.mu.Lock()
			defer a.mu.Unlock()
			delete(a.subscribers, id)
			close(ch)
		})
	}
}

// Refresh builds and publishes a new snapshot. Quorum, proposal count and
// proposal reads are required; a missing metadata document only degrades
// its own proposal. When a wallet is connected the account-scoped figures
// are read too, and any failure there fails the refresh.
func (a *Aggregator) Refresh(ctx context.Context) (*domain.StatisticsSnapshot, error) {
	a.publishMu.Lock()
	generation := a.generation
	a.started++
	seq := a.started
	a.publishMu.Unlock()

	identity := a.session.Identity()
	connected := identity.State == domain.Connected

	snap := domain.EmptySnapshot()
	snap.Connected = connected
	if connected {
		snap.Account = identity.Account
	}

	quorum, err := a.dao.Quorum(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read quorum: %w", err)
	}
	snap.Quorum = quorum

	count, err := a.dao.ProposalCount(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read proposal count: %w", err)
	}

	proposals, err := a.fetchProposals(ctx, count, identity)
	if err != nil {
		return nil, err
	}
	snap.Proposals = proposals

	if connected {
		if err := a.fetchAccount(ctx, snap, identity.Account); err != nil {
			return nil, err
		}
	}

	snap.FetchedAt = a.now()

	a.publishMu.Lock()
	if a.generation != generation || a.session.Identity() != identity {
		a.publishMu.Unlock()
		return nil, domain.ErrStaleSnapshot
	}
	if seq < a.published {
		// a refresh started later already published
		a.publishMu.Unlock()
		return a.Snapshot(), nil
	}
	a.published = seq
	a.publish(snap)
	a.publishMu.Unlock()

	a.log.Debug("statistics refreshed",
		"proposals", len(snap.Proposals),
		"connected", snap.Connected,
		"account", snap.Account.Hex())

	return snap, nil
}

// fetchProposals reads proposals 1..count concurrently.
func (a *Aggregator) fetchProposals(ctx context.Context, count uint64, identity domain.Identity) ([]*domain.Proposal, error) {
	proposals := make([]*domain.Proposal, count)

	g, gctx := errgroup.WithContext(ctx)
	if limit := a.config.MetadataConcurrency; limit > 0 {
		g.SetLimit(limit)
	}

	for i := uint64(1); i <= count; i++ {
		g.Go(func() error {
			p, err := a.dao.Proposal(gctx, i)
			if err != nil {
				return fmt.Errorf("failed to read proposal %d: %w", i, err)
			}

			p.Metadata = a.fetchMetadata(gctx, p)

			if identity.State == domain.Connected {
				voted, err := a.dao.HasVoted(gctx, i, identity.Account)
				if err != nil {
					return fmt.Errorf("failed to read vote flag for proposal %d: %w", i, err)
				}
				p.HasCurrentUserVoted = voted
			}

			proposals[i-1] = p
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return proposals, nil
}

// fetchMetadata returns nil when the document can't be fetched.
func (a *Aggregator) fetchMetadata(ctx context.Context, p *domain.Proposal) *domain.ProposalMetadata {
	meta, err := a.metadata.Fetch(ctx, p.ContentID)
	if err != nil {
		a.log.Warn("proposal metadata unavailable", "index", p.Index, "cid", p.ContentID, "error", err)
		return nil
	}
	return meta
}

// fetchAccount fills the signer-scoped staking figures.
func (a *Aggregator) fetchAccount(ctx context.Context, snap *domain.StatisticsSnapshot, account common.Address) error {
	var err error
	if snap.StakedAmount, err = a.staking.StakedBalance(ctx, account); err != nil {
		return fmt.Errorf("failed to read staked balance: %w", err)
	}
	if snap.PendingRewards, err = a.staking.Earned(ctx, account); err != nil {
		return fmt.Errorf("failed to read pending rewards: %w", err)
	}
	if snap.UnlockTimestamp, err = a.staking.UnlockTime(ctx, account); err != nil {
		return fmt.Errorf("failed to read unlock time: %w", err)
	}
	if snap.RewardRate, err = a.staking.RewardRate(ctx); err != nil {
		return fmt.Errorf("failed to read reward rate: %w", err)
	}
	if snap.TotalStaked, err = a.staking.TotalStaked(ctx); err != nil {
		return fmt.Errorf("failed to read total staked: %w", err)
	}
	if snap.VotingPower, err = a.staking.VotingPower(ctx, account); err != nil {
		return fmt.Errorf("failed to read voting power: %w", err)
	}

	apy, err := domain.CalculateAPY(snap.RewardRate, snap.TotalStaked)
	if err != nil {
		a.log.Warn("apy unavailable", "reward_rate", snap.RewardRate, "total_staked", snap.TotalStaked, "error", err)
		apy = new(big.Int)
	}
	snap.CurrentAPY = apy
	return nil
}

// Run refreshes immediately, then on every session change and poll tick,
// until ctx is done. Failed refreshes keep the previous snapshot.
func (a *Aggregator) Run(ctx context.Context) error {
	events, unsubscribe := a.session.Subscribe()
	defer unsubscribe()

	var tick <-chan time.Time
	if a.config.PollInterval > 0 {
		ticker := time.NewTicker(a.config.PollInterval)
		defer ticker.Stop()
		tick = ticker.C
	}

	a.refreshLogged(ctx, "startup")

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				events = nil
				continue
			}
			// drop the previous identity's figures before refetching
			a.clearAccount(ev.Identity)
			a.refreshLogged(ctx, string(ev.Kind))
		case <-tick:
			a.refreshLogged(ctx, "poll")
		}
	}
}

func (a *Aggregator) refreshLogged(ctx context.Context, trigger string) {
	if _, err := a.Refresh(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			return
		}
		a.log.Warn("statistics refresh failed", "trigger", trigger, "error", err)
	}
}

// clearAccount republishes the current snapshot with every account-scoped
// field zeroed and attributed to identity. Refreshes started before the call
// are discarded.
func (a *Aggregator) clearAccount(identity domain.Identity) {
	a.publishMu.Lock()
	defer a.publishMu.Unlock()
	a.generation++

	prev := a.Snapshot()

	next := domain.EmptySnapshot()
	next.Quorum = prev.Quorum
	next.FetchedAt = prev.FetchedAt
	next.Connected = identity.State == domain.Connected
	if next.Connected {
		next.Account = identity.Account
	}

	next.Proposals = make([]*domain.Proposal, len(prev.Proposals))
	for i, p := range prev.Proposals {
		cp := *p
		cp.HasCurrentUserVoted = false
		next.Proposals[i] = &cp
	}

	a.publish(next)
}

func (a *Aggregator) publish(snap *domain.StatisticsSnapshot) {
	a.current.Store(snap)

	a.mu.Lock()
	defer a.mu.Unlock()
	for _, ch := range a.subscribers {
		select {
		case ch <- snap:
		default:
			// replace the unread snapshot with the newer one
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- snap:
			default:
			}
		}
	}
}
