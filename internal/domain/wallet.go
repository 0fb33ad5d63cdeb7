package domain

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// ConnectionState is the wallet session state.
type ConnectionState int

const (
	Disconnected ConnectionState = iota
	Connected
)

func (s ConnectionState) String() string {
	if s == Connected {
		return "connected"
	}
	return "disconnected"
}

// Identity is who a session currently signs as. Two identities are equal
// when both the connection state and the account match.
type Identity struct {
	State   ConnectionState
	Account common.Address
}

// SessionEventKind describes what changed in the wallet session.
type SessionEventKind string

const (
	SessionConnected      SessionEventKind = "connected"
	SessionDisconnected   SessionEventKind = "disconnected"
	SessionAccountChanged SessionEventKind = "account_changed"
)

// SessionEvent is emitted on every connect, disconnect or account switch.
type SessionEvent struct {
	Kind     SessionEventKind
	Identity Identity
}

// TxRequest is an unsigned contract call the signer turns into a transaction.
type TxRequest struct {
	To    common.Address
	Data  []byte
	Value *big.Int
	// Method is the contract method name, used for logging only.
	Method string
}

// Receipt is the confirmation of a mined transaction.
type Receipt struct {
	TxHash      common.Hash
	BlockNumber uint64
	GasUsed     uint64
	Success     bool
}
