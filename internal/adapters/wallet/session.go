package wallet

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"log/slog"
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/memedao/memedao-cli/internal/domain"
	"github.com/memedao/memedao-cli/internal/domain/config"
	"github.com/memedao/memedao-cli/internal/usecase"
)

// Session holds the connected signing key, if any, and notifies subscribers
// whenever the identity changes.
type Session struct {
	cfg     *config.RuntimeConfig
	backend Transactor
	log     *slog.Logger

	mu      sync.RWMutex
	signer  *KeySigner
	queue   *QueuedSigner
	queues  map[common.Address]*QueuedSigner
	subs    map[int]chan domain.SessionEvent
	nextSub int
}

// NewSession creates a disconnected session
func NewSession(cfg *config.RuntimeConfig, backend Transactor, log *slog.Logger) *Session {
	return &Session{
		cfg:     cfg,
		backend: backend,
		log:     log,
		queues:  make(map[common.Address]*QueuedSigner),
		subs:    make(map[int]chan domain.SessionEvent),
	}
}

// Connect loads the configured private key.
func (s *Session) Connect(ctx context.Context) error {
	if !s.cfg.CanSign() {
		return fmt.Errorf("%w: no private key configured (set MEMEDAO_PRIVATE_KEY)", domain.ErrNotConnected)
	}
	key, err := ParsePrivateKey(s.cfg.PrivateKey)
	if err != nil {
		return err
	}
	s.use(key)
	return nil
}

// SwitchAccount replaces the signing key, emitting account_changed when a
// different account was connected before.
func (s *Session) SwitchAccount(hexKey string) error {
	key, err := ParsePrivateKey(hexKey)
	if err != nil {
		return err
	}
	s.use(key)
	return nil
}

// NextAccount switches to the configured key following the connected one,
// wrapping around. Keys come from private_key followed by accounts.
func (s *Session) NextAccount(ctx context.Context) error {
	current, err := s.Address(ctx)
	if err != nil {
		return err
	}

	keys := append([]string{s.cfg.PrivateKey}, s.cfg.AccountKeys...)
	addrs := make([]common.Address, len(keys))
	pos := -1
	for i, hexKey := range keys {
		key, err := ParsePrivateKey(hexKey)
		if err != nil {
			return fmt.Errorf("account %d: %w", i, err)
		}
		addrs[i] = crypto.PubkeyToAddress(key.PublicKey)
		if pos < 0 && addrs[i] == current {
			pos = i
		}
	}

	for step := 1; step <= len(keys); step++ {
		i := (pos + step) % len(keys)
		if addrs[i] != current {
			return s.SwitchAccount(keys[i])
		}
	}
	return fmt.Errorf("no other account configured (set MEMEDAO_ACCOUNTS)")
}

func (s *Session) use(key *ecdsa.PrivateKey) {
	var chainID *big.Int
	if s.cfg.Network != nil {
		chainID = new(big.Int).SetUint64(s.cfg.Network.ChainID)
	}
	signer := NewKeySigner(key, chainID, s.backend, s.log)
	addr := signer.Address()

	s.mu.Lock()
	prev := s.signer
	if prev != nil && prev.Address() == addr {
		s.mu.Unlock()
		return
	}
	// one queue per account survives reconnects and switches
	queue, ok := s.queues[addr]
	if !ok {
		queue = NewQueuedSigner(signer)
		s.queues[addr] = queue
	}
	s.signer = signer
	s.queue = queue
	s.mu.Unlock()

	kind := domain.SessionConnected
	if prev != nil {
		kind = domain.SessionAccountChanged
	}

	s.log.Debug("wallet session changed", "event", kind, "account", signer.Address().Hex())
	s.emit(domain.SessionEvent{Kind: kind, Identity: s.Identity()})
}

// Disconnect drops the signing key
func (s *Session) Disconnect() {
	s.mu.Lock()
	wasConnected := s.signer != nil
	s.signer = nil
	s.queue = nil
	s.mu.Unlock()

	if wasConnected {
		s.emit(domain.SessionEvent{Kind: domain.SessionDisconnected, Identity: domain.Identity{State: domain.Disconnected}})
	}
}

// Identity returns the current connection state and account
func (s *Session) Identity() domain.Identity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.signer == nil {
		return domain.Identity{State: domain.Disconnected}
	}
	return domain.Identity{State: domain.Connected, Account: s.signer.Address()}
}

func (s *Session) ConnectionState() domain.ConnectionState {
	return s.Identity().State
}

func (s *Session) Address(ctx context.Context) (common.Address, error) {
	id := s.Identity()
	if id.State != domain.Connected {
		return common.Address{}, domain.ErrNotConnected
	}
	return id.Account, nil
}

// SignAndSend sends through the per-account queue
func (s *Session) SignAndSend(ctx context.Context, req domain.TxRequest) (common.Hash, error) {
	s.mu.RLock()
	queue := s.queue
	s.mu.RUnlock()

	if queue == nil {
		return common.Hash{}, domain.ErrNotConnected
	}
	return queue.SignAndSend(ctx, req)
}

// Subscribe returns a channel of session events and its cancel function
func (s *Session) Subscribe() (<-chan domain.SessionEvent, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextSub
	s.nextSub++
	ch := make(chan domain.SessionEvent, 8)
	s.subs[id] = ch

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			delete(s.subs, id)
			close(ch)
		})
	}
}

func (s *Session) emit(ev domain.SessionEvent) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, ch := range s.subs {
		select {
		case ch <- ev:
		default:
			s.log.Warn("dropping session event for slow subscriber", "event", ev.Kind)
		}
	}
}

var _ usecase.Session = (*Session)(nil)
