package wallet

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	"github.com/memedao/memedao-cli/internal/domain"
)

// QueuedSigner lets one transaction at a time through to the wrapped sender,
// so nonce lookup, signing and broadcast never interleave for one account.
type QueuedSigner struct {
	next Sender
	slot chan struct{}
}

// NewQueuedSigner wraps next
func NewQueuedSigner(next Sender) *QueuedSigner {
	return &QueuedSigner{
		next: next,
		slot: make(chan struct{}, 1),
	}
}

// SignAndSend waits for its turn, or returns ctx.Err() if ctx ends first.
func (q *QueuedSigner) SignAndSend(ctx context.Context, req domain.TxRequest) (common.Hash, error) {
	select {
	case q.slot <- struct{}{}:
	case <-ctx.Done():
		return common.Hash{}, ctx.Err()
	}
	defer func() { <-q.slot }()

	return q.next.SignAndSend(ctx, req)
}
