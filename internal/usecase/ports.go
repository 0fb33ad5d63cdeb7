package usecase

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/memedao/memedao-cli/internal/domain"
)

// SignerProvider is the wallet capability: who is signing and a way to get
// a transaction signed and broadcast.
type SignerProvider interface {
	// Address returns the connected account or domain.ErrNotConnected.
	Address(ctx context.Context) (common.Address, error)
	ConnectionState() domain.ConnectionState
	SignAndSend(ctx context.Context, req domain.TxRequest) (common.Hash, error)
}

// Session is a SignerProvider whose identity can change over time.
type Session interface {
	SignerProvider
	Identity() domain.Identity
	Connect(ctx context.Context) error
	// NextAccount switches to the next configured account.
	NextAccount(ctx context.Context) error
	Disconnect()
	// Subscribe returns a channel of session events and a function that
	// unsubscribes and closes it.
	Subscribe() (<-chan domain.SessionEvent, func())
}

// TransactionWaiter blocks until a submitted transaction is mined.
type TransactionWaiter interface {
	WaitForConfirmation(ctx context.Context, hash common.Hash) (*domain.Receipt, error)
}

// DAOReader reads governance state from the DAO contract.
type DAOReader interface {
	Quorum(ctx context.Context) (*big.Int, error)
	ProposalCount(ctx context.Context) (uint64, error)
	// Proposal returns the on-chain fields of a proposal; Metadata is left nil.
	Proposal(ctx context.Context, index uint64) (*domain.Proposal, error)
	HasVoted(ctx context.Context, index uint64, account common.Address) (bool, error)
}

// StakingReader reads account and pool state from the staking contract.
type StakingReader interface {
	StakedBalance(ctx context.Context, account common.Address) (*big.Int, error)
	Earned(ctx context.Context, account common.Address) (*big.Int, error)
	UnlockTime(ctx context.Context, account common.Address) (uint64, error)
	RewardRate(ctx context.Context) (*big.Int, error)
	TotalStaked(ctx context.Context) (*big.Int, error)
	VotingPower(ctx context.Context, account common.Address) (*big.Int, error)
}

// TokenReader reads the ERC-20 token.
type TokenReader interface {
	BalanceOf(ctx context.Context, account common.Address) (*big.Int, error)
	Allowance(ctx context.Context, owner, spender common.Address) (*big.Int, error)
	TotalSupply(ctx context.Context) (*big.Int, error)
	Symbol(ctx context.Context) (string, error)
}

// TxBuilder encodes write calls against the three contracts.
type TxBuilder interface {
	StakingAddress() common.Address
	Approve(spender common.Address, amount *big.Int) (domain.TxRequest, error)
	Stake(amount *big.Int) (domain.TxRequest, error)
	Withdraw(amount *big.Int) (domain.TxRequest, error)
	ClaimReward() (domain.TxRequest, error)
	CreateProposal(contentID string, delay, duration *big.Int) (domain.TxRequest, error)
	Vote(index uint64, support bool) (domain.TxRequest, error)
}

// MetadataStore pins and retrieves proposal metadata by content id.
type MetadataStore interface {
	// Publish returns the content id of the pinned document.
	Publish(ctx context.Context, metadata *domain.ProposalMetadata) (string, error)
	// Fetch returns domain.ErrMetadataUnavailable (wrapped) on any failure.
	Fetch(ctx context.Context, contentID string) (*domain.ProposalMetadata, error)
}

// Refresher rebuilds the statistics read model.
type Refresher interface {
	Refresh(ctx context.Context) (*domain.StatisticsSnapshot, error)
}

// TokenomicsSource loads the published token distribution.
type TokenomicsSource interface {
	Load(ctx context.Context) (*domain.Tokenomics, error)
}

// ProposalSelector lets a user pick a proposal interactively.
type ProposalSelector interface {
	SelectProposal(ctx context.Context, proposals []*domain.Proposal, prompt string) (*domain.Proposal, error)
	Confirm(ctx context.Context, prompt string) (bool, error)
}

// Progress tracking interfaces

// ProgressEvent represents a progress update
type ProgressEvent struct {
	Stage    string
	Current  int
	Total    int
	Message  string
	Spinner  bool
	Metadata interface{}
}

// ProgressSink receives progress events
type ProgressSink interface {
	OnProgress(ctx context.Context, event ProgressEvent)
	Info(message string)
	Error(message string)
}

// NopProgress is a no-op implementation of ProgressSink
type NopProgress struct{}

func (NopProgress) OnProgress(context.Context, ProgressEvent) {}
func (NopProgress) Info(string)                               {}
func (NopProgress) Error(string)                              {}

// Action stages reported through ProgressSink
const (
	StageValidating = "validating"
	StageApproving  = "approving"
	StagePublishing = "publishing"
	StageSubmitting = "submitting"
	StageConfirming = "confirming"
	StageRefreshing = "refreshing"
	StageCompleted  = "completed"
)
