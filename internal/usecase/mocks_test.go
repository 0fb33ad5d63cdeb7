package usecase

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/memedao/memedao-cli/internal/domain"
	"github.com/stretchr/testify/mock"
)

func bigArg(args mock.Arguments, i int) *big.Int {
	if v := args.Get(i); v != nil {
		return v.(*big.Int)
	}
	return nil
}

// MockSession is a mock implementation of Session
type MockSession struct {
	mock.Mock
	events chan domain.SessionEvent
}

func (m *MockSession) Address(ctx context.Context) (common.Address, error) {
	args := m.Called(ctx)
	return args.Get(0).(common.Address), args.Error(1)
}

func (m *MockSession) ConnectionState() domain.ConnectionState {
	args := m.Called()
	return args.Get(0).(domain.ConnectionState)
}

func (m *MockSession) SignAndSend(ctx context.Context, req domain.TxRequest) (common.Hash, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(common.Hash), args.Error(1)
}

func (m *MockSession) Identity() domain.Identity {
	args := m.Called()
	return args.Get(0).(domain.Identity)
}

func (m *MockSession) Connect(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockSession) NextAccount(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockSession) Disconnect() {
	m.Called()
}

func (m *MockSession) Subscribe() (<-chan domain.SessionEvent, func()) {
	return m.events, func() {}
}

// MockDAOReader is a mock implementation of DAOReader
type MockDAOReader struct {
	mock.Mock
}

func (m *MockDAOReader) Quorum(ctx context.Context) (*big.Int, error) {
	args := m.Called(ctx)
	return bigArg(args, 0), args.Error(1)
}

func (m *MockDAOReader) ProposalCount(ctx context.Context) (uint64, error) {
	args := m.Called(ctx)
	return args.Get(0).(uint64), args.Error(1)
}

func (m *MockDAOReader) Proposal(ctx context.Context, index uint64) (*domain.Proposal, error) {
	args := m.Called(ctx, index)
	if p := args.Get(0); p != nil {
		// hand out a copy so concurrent refreshes never share a proposal
		cp := *p.(*domain.Proposal)
		return &cp, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockDAOReader) HasVoted(ctx context.Context, index uint64, account common.Address) (bool, error) {
	args := m.Called(ctx, index, account)
	return args.Bool(0), args.Error(1)
}

// MockStakingReader is a mock implementation of StakingReader
type MockStakingReader struct {
	mock.Mock
}

func (m *MockStakingReader) StakedBalance(ctx context.Context, account common.Address) (*big.Int, error) {
	args := m.Called(ctx, account)
	return bigArg(args, 0), args.Error(1)
}

func (m *MockStakingReader) Earned(ctx context.Context, account common.Address) (*big.Int, error) {
	args := m.Called(ctx, account)
	return bigArg(args, 0), args.Error(1)
}

func (m *MockStakingReader) UnlockTime(ctx context.Context, account common.Address) (uint64, error) {
	args := m.Called(ctx, account)
	return args.Get(0).(uint64), args.Error(1)
}

func (m *MockStakingReader) RewardRate(ctx context.Context) (*big.Int, error) {
	args := m.Called(ctx)
	return bigArg(args, 0), args.Error(1)
}

func (m *MockStakingReader) TotalStaked(ctx context.Context) (*big.Int, error) {
	args := m.Called(ctx)
	return bigArg(args, 0), args.Error(1)
}

func (m *MockStakingReader) VotingPower(ctx context.Context, account common.Address) (*big.Int, error) {
	args := m.Called(ctx, account)
	return bigArg(args, 0), args.Error(1)
}

// MockTokenReader is a mock implementation of TokenReader
type MockTokenReader struct {
	mock.Mock
}

func (m *MockTokenReader) BalanceOf(ctx context.Context, account common.Address) (*big.Int, error) {
	args := m.Called(ctx, account)
	return bigArg(args, 0), args.Error(1)
}

func (m *MockTokenReader) Allowance(ctx context.Context, owner, spender common.Address) (*big.Int, error) {
	args := m.Called(ctx, owner, spender)
	return bigArg(args, 0), args.Error(1)
}

func (m *MockTokenReader) TotalSupply(ctx context.Context) (*big.Int, error) {
	args := m.Called(ctx)
	return bigArg(args, 0), args.Error(1)
}

func (m *MockTokenReader) Symbol(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

// MockTxBuilder is a mock implementation of TxBuilder
type MockTxBuilder struct {
	mock.Mock
}

func (m *MockTxBuilder) StakingAddress() common.Address {
	return m.Called().Get(0).(common.Address)
}

func (m *MockTxBuilder) Approve(spender common.Address, amount *big.Int) (domain.TxRequest, error) {
	args := m.Called(spender, amount)
	return args.Get(0).(domain.TxRequest), args.Error(1)
}

func (m *MockTxBuilder) Stake(amount *big.Int) (domain.TxRequest, error) {
	args := m.Called(amount)
	return args.Get(0).(domain.TxRequest), args.Error(1)
}

func (m *MockTxBuilder) Withdraw(amount *big.Int) (domain.TxRequest, error) {
	args := m.Called(amount)
	return args.Get(0).(domain.TxRequest), args.Error(1)
}

func (m *MockTxBuilder) ClaimReward() (domain.TxRequest, error) {
	args := m.Called()
	return args.Get(0).(domain.TxRequest), args.Error(1)
}

func (m *MockTxBuilder) CreateProposal(contentID string, delay, duration *big.Int) (domain.TxRequest, error) {
	args := m.Called(contentID, delay, duration)
	return args.Get(0).(domain.TxRequest), args.Error(1)
}

func (m *MockTxBuilder) Vote(index uint64, support bool) (domain.TxRequest, error) {
	args := m.Called(index, support)
	return args.Get(0).(domain.TxRequest), args.Error(1)
}

// MockMetadataStore is a mock implementation of MetadataStore
type MockMetadataStore struct {
	mock.Mock
}

func (m *MockMetadataStore) Publish(ctx context.Context, metadata *domain.ProposalMetadata) (string, error) {
	args := m.Called(ctx, metadata)
	return args.String(0), args.Error(1)
}

func (m *MockMetadataStore) Fetch(ctx context.Context, contentID string) (*domain.ProposalMetadata, error) {
	args := m.Called(ctx, contentID)
	if v := args.Get(0); v != nil {
		return v.(*domain.ProposalMetadata), args.Error(1)
	}
	return nil, args.Error(1)
}

// MockTransactionWaiter is a mock implementation of TransactionWaiter
type MockTransactionWaiter struct {
	mock.Mock
}

func (m *MockTransactionWaiter) WaitForConfirmation(ctx context.Context, hash common.Hash) (*domain.Receipt, error) {
	args := m.Called(ctx, hash)
	if v := args.Get(0); v != nil {
		return v.(*domain.Receipt), args.Error(1)
	}
	return nil, args.Error(1)
}

// MockRefresher is a mock implementation of Refresher
type MockRefresher struct {
	mock.Mock
}

func (m *MockRefresher) Refresh(ctx context.Context) (*domain.StatisticsSnapshot, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.(*domain.StatisticsSnapshot), args.Error(1)
	}
	return nil, args.Error(1)
}

// MockTokenomicsSource is a mock implementation of TokenomicsSource
type MockTokenomicsSource struct {
	mock.Mock
}

func (m *MockTokenomicsSource) Load(ctx context.Context) (*domain.Tokenomics, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.(*domain.Tokenomics), args.Error(1)
	}
	return nil, args.Error(1)
}
