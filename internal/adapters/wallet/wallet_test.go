package wallet

import (
	"context"
	"encoding/hex"
	"errors"
	"io"
	"log/slog"
	"math/big"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/memedao/memedao-cli/internal/domain"
	"github.com/memedao/memedao-cli/internal/domain/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newKeyHex(t *testing.T) string {
	t.Helper()
	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	return "0x" + hex.EncodeToString(crypto.FromECDSA(key))
}

// fakeTransactor records sent transactions
type fakeTransactor struct {
	mu      sync.Mutex
	baseFee *big.Int
	nonce   uint64
	sent    []*types.Transaction
	sendErr error
}

func (f *fakeTransactor) HeaderByNumber(ctx context.Context, number *big.Int) (*types.Header, error) {
	return &types.Header{Number: big.NewInt(1), BaseFee: f.baseFee}, nil
}

func (f *fakeTransactor) PendingNonceAt(ctx context.Context, account common.Address) (uint64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.nonce, nil
}

func (f *fakeTransactor) SuggestGasPrice(ctx context.Context) (*big.Int, error) {
	return big.NewInt(25_000_000_000), nil
}

func (f *fakeTransactor) SuggestGasTipCap(ctx context.Context) (*big.Int, error) {
	return big.NewInt(1_000_000_000), nil
}

func (f *fakeTransactor) EstimateGas(ctx context.Context, call ethereum.CallMsg) (uint64, error) {
	return 100_000, nil
}

func (f *fakeTransactor) SendTransaction(ctx context.Context, tx *types.Transaction) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.sendErr != nil {
		return f.sendErr
	}
	f.sent = append(f.sent, tx)
	f.nonce++
	return nil
}

func TestKeySigner(t *testing.T) {
	ctx := context.Background()
	chainID := big.NewInt(43113)
	to := common.HexToAddress("0x00000000000000000000000000000000000000a2")
	req := domain.TxRequest{To: to, Data: []byte{0x3d, 0x18, 0xb9, 0x12}, Method: "claimReward"}

	t.Run("dynamic fee transaction", func(t *testing.T) {
		key, err := ParsePrivateKey(newKeyHex(t))
		require.NoError(t, err)
		backend := &fakeTransactor{baseFee: big.NewInt(25_000_000_000), nonce: 7}
		signer := NewKeySigner(key, chainID, backend, discard())

		hash, err := signer.SignAndSend(ctx, req)
		require.NoError(t, err)
		require.Len(t, backend.sent, 1)

		tx := backend.sent[0]
		assert.Equal(t, hash, tx.Hash())
		assert.Equal(t, uint8(types.DynamicFeeTxType), tx.Type())
		assert.Equal(t, uint64(7), tx.Nonce())
		assert.Equal(t, uint64(120_000), tx.Gas())
		assert.Equal(t, to, *tx.To())
		assert.Equal(t, "51000000000", tx.GasFeeCap().String())

		from, err := types.Sender(types.LatestSignerForChainID(chainID), tx)
		require.NoError(t, err)
		assert.Equal(t, signer.Address(), from)
	})

	t.Run("legacy transaction without base fee", func(t *testing.T) {
		key, err := ParsePrivateKey(newKeyHex(t))
		require.NoError(t, err)
		backend := &fakeTransactor{}
		signer := NewKeySigner(key, chainID, backend, discard())

		_, err = signer.SignAndSend(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, uint8(types.LegacyTxType), backend.sent[0].Type())
		assert.Equal(t, "25000000000", backend.sent[0].GasPrice().String())
	})

	t.Run("broadcast failure", func(t *testing.T) {
		key, err := ParsePrivateKey(newKeyHex(t))
		require.NoError(t, err)
		backend := &fakeTransactor{sendErr: errors.New("insufficient funds for gas")}
		signer := NewKeySigner(key, chainID, backend, discard())

		_, err = signer.SignAndSend(ctx, req)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "insufficient funds")
	})

	t.Run("invalid key", func(t *testing.T) {
		_, err := ParsePrivateKey("0xnothex")
		assert.Error(t, err)
	})
}

// slowSender tracks how many calls are in flight at once
type slowSender struct {
	inFlight atomic.Int32
	maxSeen  atomic.Int32
	calls    atomic.Int32
}

func (s *slowSender) SignAndSend(ctx context.Context, req domain.TxRequest) (common.Hash, error) {
	n := s.inFlight.Add(1)
	defer s.inFlight.Add(-1)
	for {
		seen := s.maxSeen.Load()
		if n <= seen || s.maxSeen.CompareAndSwap(seen, n) {
			break
		}
	}
	time.Sleep(2 * time.Millisecond)
	s.calls.Add(1)
	return common.BigToHash(big.NewInt(int64(s.calls.Load()))), nil
}

func TestQueuedSigner(t *testing.T) {
	t.Run("serializes concurrent sends", func(t *testing.T) {
		inner := &slowSender{}
		q := NewQueuedSigner(inner)

		var wg sync.WaitGroup
		for i := 0; i < 16; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := q.SignAndSend(context.Background(), domain.TxRequest{Method: "stake"})
				assert.NoError(t, err)
			}()
		}
		wg.Wait()

		assert.Equal(t, int32(16), inner.calls.Load())
		assert.Equal(t, int32(1), inner.maxSeen.Load())
	})

	t.Run("waiting honours context", func(t *testing.T) {
		q := NewQueuedSigner(&slowSender{})
		q.slot <- struct{}{} // occupy the queue

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
		defer cancel()
		_, err := q.SignAndSend(ctx, domain.TxRequest{})
		assert.ErrorIs(t, err, context.DeadlineExceeded)
	})
}

func TestSession(t *testing.T) {
	ctx := context.Background()

	newSession := func(privateKey string) *Session {
		cfg := &config.RuntimeConfig{
			Network:    &config.Network{ChainID: 43113},
			PrivateKey: privateKey,
		}
		return NewSession(cfg, &fakeTransactor{}, discard())
	}

	t.Run("starts disconnected", func(t *testing.T) {
		s := newSession("")
		assert.Equal(t, domain.Disconnected, s.ConnectionState())

		_, err := s.Address(ctx)
		assert.ErrorIs(t, err, domain.ErrNotConnected)

		_, err = s.SignAndSend(ctx, domain.TxRequest{})
		assert.ErrorIs(t, err, domain.ErrNotConnected)

		assert.ErrorIs(t, s.Connect(ctx), domain.ErrNotConnected)
	})

	t.Run("lifecycle events", func(t *testing.T) {
		s := newSession(newKeyHex(t))
		events, unsubscribe := s.Subscribe()
		defer unsubscribe()

		require.NoError(t, s.Connect(ctx))
		ev := <-events
		assert.Equal(t, domain.SessionConnected, ev.Kind)
		assert.Equal(t, domain.Connected, ev.Identity.State)
		first := ev.Identity.Account

		addr, err := s.Address(ctx)
		require.NoError(t, err)
		assert.Equal(t, first, addr)

		// reconnecting the same key is not a change
		require.NoError(t, s.Connect(ctx))

		require.NoError(t, s.SwitchAccount(newKeyHex(t)))
		ev = <-events
		assert.Equal(t, domain.SessionAccountChanged, ev.Kind)
		assert.NotEqual(t, first, ev.Identity.Account)

		s.Disconnect()
		ev = <-events
		assert.Equal(t, domain.SessionDisconnected, ev.Kind)
		assert.Equal(t, domain.Disconnected, s.ConnectionState())

		select {
		case extra := <-events:
			t.Fatalf("unexpected event %v", extra.Kind)
		default:
		}
	})

	t.Run("queue is kept per account", func(t *testing.T) {
		first, second := newKeyHex(t), newKeyHex(t)
		s := newSession(first)
		require.NoError(t, s.Connect(ctx))
		queue := s.queue

		require.NoError(t, s.Connect(ctx))
		assert.Same(t, queue, s.queue)

		s.Disconnect()
		require.NoError(t, s.Connect(ctx))
		assert.Same(t, queue, s.queue)

		require.NoError(t, s.SwitchAccount(second))
		assert.NotSame(t, queue, s.queue)
		require.NoError(t, s.SwitchAccount(first))
		assert.Same(t, queue, s.queue)
	})

	t.Run("next account cycles configured keys", func(t *testing.T) {
		first, second := newKeyHex(t), newKeyHex(t)
		cfg := &config.RuntimeConfig{
			Network:     &config.Network{ChainID: 43113},
			PrivateKey:  first,
			AccountKeys: []string{first, second},
		}
		s := NewSession(cfg, &fakeTransactor{}, discard())
		events, unsubscribe := s.Subscribe()
		defer unsubscribe()

		assert.ErrorIs(t, s.NextAccount(ctx), domain.ErrNotConnected)

		require.NoError(t, s.Connect(ctx))
		start := (<-events).Identity.Account

		require.NoError(t, s.NextAccount(ctx))
		ev := <-events
		assert.Equal(t, domain.SessionAccountChanged, ev.Kind)
		assert.NotEqual(t, start, ev.Identity.Account)

		require.NoError(t, s.NextAccount(ctx))
		ev = <-events
		assert.Equal(t, start, ev.Identity.Account)
	})

	t.Run("next account without another key", func(t *testing.T) {
		s := newSession(newKeyHex(t))
		require.NoError(t, s.Connect(ctx))

		err := s.NextAccount(ctx)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "MEMEDAO_ACCOUNTS")
	})

	t.Run("unsubscribe closes the channel", func(t *testing.T) {
		s := newSession(newKeyHex(t))
		events, unsubscribe := s.Subscribe()
		unsubscribe()
		unsubscribe()

		_, ok := <-events
		assert.False(t, ok)
		require.NoError(t, s.Connect(ctx))
	})
}
