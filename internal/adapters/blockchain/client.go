package blockchain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi/bind/v2"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/memedao/memedao-cli/internal/adapters/bindings"
	"github.com/memedao/memedao-cli/internal/domain"
	"github.com/memedao/memedao-cli/internal/domain/config"
	"github.com/memedao/memedao-cli/internal/usecase"
)

// Backend is the subset of ethclient the adapters need
type Backend interface {
	bind.ContractBackend
	bind.DeployBackend
	ChainID(ctx context.Context) (*big.Int, error)
}

// Client reads the token, staking and DAO contracts and encodes calls to them
type Client struct {
	cfg     *config.RuntimeConfig
	backend Backend
	log     *slog.Logger

	tokenABI   *bindings.MEMEToken
	stakingABI *bindings.MEMEStaking
	daoABI     *bindings.MEMEDAO

	token   *bind.BoundContract
	staking *bind.BoundContract
	dao     *bind.BoundContract

	// receiptPollInterval is how often WaitForConfirmation polls
	receiptPollInterval time.Duration
}

// Dial connects to the configured RPC endpoint
func Dial(ctx context.Context, cfg *config.RuntimeConfig) (*ethclient.Client, error) {
	if cfg.Network == nil || cfg.Network.RPCURL == "" {
		return nil, fmt.Errorf("no RPC URL configured")
	}
	client, err := ethclient.DialContext(ctx, cfg.Network.RPCURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RPC: %w", err)
	}
	return client, nil
}

// NewClient creates a contract client on top of backend
func NewClient(cfg *config.RuntimeConfig, backend Backend, log *slog.Logger) *Client {
	c := &Client{
		cfg:                 cfg,
		backend:             backend,
		log:                 log,
		tokenABI:            bindings.NewMEMEToken(),
		stakingABI:          bindings.NewMEMEStaking(),
		daoABI:              bindings.NewMEMEDAO(),
		receiptPollInterval: 2 * time.Second,
	}
	c.token = c.tokenABI.Instance(backend, cfg.TokenAddress)
	c.staking = c.stakingABI.Instance(backend, cfg.StakingAddress)
	c.dao = c.daoABI.Instance(backend, cfg.DAOAddress)
	return c
}

// VerifyChain checks the endpoint serves the configured chain
func (c *Client) VerifyChain(ctx context.Context) error {
	ctx, cancel := c.callContext(ctx)
	defer cancel()

	networkChainID, err := c.backend.ChainID(ctx)
	if err != nil {
		return fmt.Errorf("failed to get chain ID: %w", err)
	}

	expected := c.cfg.Network.ChainID
	if expected != 0 && networkChainID.Uint64() != expected {
		return fmt.Errorf("chain ID mismatch: expected %d, got %d", expected, networkChainID.Uint64())
	}
	return nil
}

// VerifyContracts checks there is code at every configured contract address
func (c *Client) VerifyContracts(ctx context.Context) error {
	contracts := []struct {
		name string
		addr common.Address
	}{
		{"token", c.cfg.TokenAddress},
		{"staking", c.cfg.StakingAddress},
		{"dao", c.cfg.DAOAddress},
	}

	for _, contract := range contracts {
		callCtx, cancel := c.callContext(ctx)
		code, err := c.backend.CodeAt(callCtx, contract.addr, nil)
		cancel()
		if err != nil {
			return fmt.Errorf("failed to check %s contract code: %w", contract.name, err)
		}
		if len(code) == 0 {
			return fmt.Errorf("no code at %s contract address %s", contract.name, contract.addr.Hex())
		}
	}
	return nil
}

func (c *Client) callContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.cfg.CallTimeout > 0 {
		return context.WithTimeout(ctx, c.cfg.CallTimeout)
	}
	return context.WithCancel(ctx)
}

func call[T any](ctx context.Context, c *Client, contract *bind.BoundContract, from common.Address, data []byte, unpack func([]byte) (T, error)) (T, error) {
	ctx, cancel := c.callContext(ctx)
	defer cancel()
	return bind.Call(contract, &bind.CallOpts{Context: ctx, From: from}, data, unpack)
}

// DAO reads

func (c *Client) Quorum(ctx context.Context) (*big.Int, error) {
	return call(ctx, c, c.dao, common.Address{}, c.daoABI.PackMinVotesNeeded(), c.daoABI.UnpackMinVotesNeeded)
}

func (c *Client) ProposalCount(ctx context.Context) (uint64, error) {
	count, err := call(ctx, c, c.dao, common.Address{}, c.daoABI.PackProposalCount(), c.daoABI.UnpackProposalCount)
	if err != nil {
		return 0, err
	}
	if !count.IsUint64() {
		return 0, fmt.Errorf("proposal count %s out of range", count)
	}
	return count.Uint64(), nil
}

func (c *Client) Proposal(ctx context.Context, index uint64) (*domain.Proposal, error) {
	data, err := c.daoABI.TryPackGetProposalData(new(big.Int).SetUint64(index))
	if err != nil {
		return nil, err
	}
	out, err := call(ctx, c, c.dao, common.Address{}, data, c.daoABI.UnpackGetProposalData)
	if err != nil {
		return nil, err
	}

	return &domain.Proposal{
		Index:        index,
		ContentID:    out.IpfsHash,
		VotesFor:     out.VotesFor,
		VotesAgainst: out.VotesAgainst,
		VotersCount:  out.VotersCount,
		StartTime:    out.StartTime.Uint64(),
		EndTime:      out.EndTime.Uint64(),
		Status:       domain.StatusCode(out.Status),
		Proposer:     out.Proposer,
	}, nil
}

// HasVoted calls getDidVote as account, since the contract scopes it to msg.sender.
func (c *Client) HasVoted(ctx context.Context, index uint64, account common.Address) (bool, error) {
	data, err := c.daoABI.TryPackGetDidVote(new(big.Int).SetUint64(index))
	if err != nil {
		return false, err
	}
	return call(ctx, c, c.dao, account, data, c.daoABI.UnpackGetDidVote)
}

// Staking reads

func (c *Client) StakedBalance(ctx context.Context, account common.Address) (*big.Int, error) {
	return call(ctx, c, c.staking, account, c.stakingABI.PackGetStakedBalance(account), c.stakingABI.UnpackGetStakedBalance)
}

func (c *Client) Earned(ctx context.Context, account common.Address) (*big.Int, error) {
	return call(ctx, c, c.staking, account, c.stakingABI.PackEarned(account), c.stakingABI.UnpackEarned)
}

func (c *Client) UnlockTime(ctx context.Context, account common.Address) (uint64, error) {
	t, err := call(ctx, c, c.staking, account, c.stakingABI.PackGetUnlockTime(account), c.stakingABI.UnpackGetUnlockTime)
	if err != nil {
		return 0, err
	}
	if !t.IsUint64() {
		return 0, fmt.Errorf("unlock time %s out of range", t)
	}
	return t.Uint64(), nil
}

func (c *Client) RewardRate(ctx context.Context) (*big.Int, error) {
	return call(ctx, c, c.staking, common.Address{}, c.stakingABI.PackRewardRate(), c.stakingABI.UnpackRewardRate)
}

func (c *Client) TotalStaked(ctx context.Context) (*big.Int, error) {
	return call(ctx, c, c.staking, common.Address{}, c.stakingABI.PackTotalStaked(), c.stakingABI.UnpackTotalStaked)
}

func (c *Client) VotingPower(ctx context.Context, account common.Address) (*big.Int, error) {
	return call(ctx, c, c.staking, account, c.stakingABI.PackGetVotingPower(account), c.stakingABI.UnpackGetVotingPower)
}

// Token reads

func (c *Client) BalanceOf(ctx context.Context, account common.Address) (*big.Int, error) {
	return call(ctx, c, c.token, account, c.tokenABI.PackBalanceOf(account), c.tokenABI.UnpackBalanceOf)
}

func (c *Client) Allowance(ctx context.Context, owner, spender common.Address) (*big.Int, error) {
	return call(ctx, c, c.token, owner, c.tokenABI.PackAllowance(owner, spender), c.tokenABI.UnpackAllowance)
}

func (c *Client) TotalSupply(ctx context.Context) (*big.Int, error) {
	return call(ctx, c, c.token, common.Address{}, c.tokenABI.PackTotalSupply(), c.tokenABI.UnpackTotalSupply)
}

func (c *Client) Symbol(ctx context.Context) (string, error) {
	return call(ctx, c, c.token, common.Address{}, c.tokenABI.PackSymbol(), c.tokenABI.UnpackSymbol)
}

// Decimals reads the token's decimals
func (c *Client) Decimals(ctx context.Context) (uint8, error) {
	return call(ctx, c, c.token, common.Address{}, c.tokenABI.PackDecimals(), c.tokenABI.UnpackDecimals)
}

// Transaction encoding

func (c *Client) StakingAddress() common.Address {
	return c.cfg.StakingAddress
}

func (c *Client) Approve(spender common.Address, amount *big.Int) (domain.TxRequest, error) {
	data, err := c.tokenABI.TryPackApprove(spender, amount)
	return request(c.cfg.TokenAddress, "approve", data, err)
}

func (c *Client) Stake(amount *big.Int) (domain.TxRequest, error) {
	data, err := c.stakingABI.TryPackStake(amount)
	return request(c.cfg.StakingAddress, "stake", data, err)
}

func (c *Client) Withdraw(amount *big.Int) (domain.TxRequest, error) {
	data, err := c.stakingABI.TryPackWithdraw(amount)
	return request(c.cfg.StakingAddress, "withdraw", data, err)
}

func (c *Client) ClaimReward() (domain.TxRequest, error) {
	data, err := c.stakingABI.TryPackClaimReward()
	return request(c.cfg.StakingAddress, "claimReward", data, err)
}

func (c *Client) CreateProposal(contentID string, delay, duration *big.Int) (domain.TxRequest, error) {
	data, err := c.daoABI.TryPackCreateProposal(contentID, delay, duration)
	return request(c.cfg.DAOAddress, "createProposal", data, err)
}

func (c *Client) Vote(index uint64, support bool) (domain.TxRequest, error) {
	data, err := c.daoABI.TryPackVote(new(big.Int).SetUint64(index), support)
	return request(c.cfg.DAOAddress, "vote", data, err)
}

func request(to common.Address, method string, data []byte, err error) (domain.TxRequest, error) {
	if err != nil {
		return domain.TxRequest{}, fmt.Errorf("failed to encode %s: %w", method, err)
	}
	return domain.TxRequest{To: to, Data: data, Method: method}, nil
}

// WaitForConfirmation polls for the receipt of hash until it is mined, ctx
// ends, or the configured timeout elapses.
func (c *Client) WaitForConfirmation(ctx context.Context, hash common.Hash) (*domain.Receipt, error) {
	if c.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.cfg.Timeout)
		defer cancel()
	}

	ticker := time.NewTicker(c.receiptPollInterval)
	defer ticker.Stop()

	for {
		receipt, err := c.backend.TransactionReceipt(ctx, hash)
		switch {
		case err == nil:
			return toReceipt(receipt), nil
		case errors.Is(err, ethereum.NotFound):
			c.log.Debug("transaction not yet mined", "tx", hash.Hex())
		default:
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			c.log.Warn("failed to get transaction receipt", "tx", hash.Hex(), "error", err)
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-ticker.C:
		}
	}
}

func toReceipt(r *types.Receipt) *domain.Receipt {
	out := &domain.Receipt{
		TxHash:  r.TxHash,
		GasUsed: r.GasUsed,
		Success: r.Status == types.ReceiptStatusSuccessful,
	}
	if r.BlockNumber != nil {
		out.BlockNumber = r.BlockNumber.Uint64()
	}
	return out
}

// Ensure the adapter implements the interfaces
var (
	_ usecase.DAOReader         = (*Client)(nil)
	_ usecase.StakingReader     = (*Client)(nil)
	_ usecase.TokenReader       = (*Client)(nil)
	_ usecase.TxBuilder         = (*Client)(nil)
	_ usecase.TransactionWaiter = (*Client)(nil)
)
