package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/memedao/memedao-cli/internal/domain"
	"github.com/memedao/memedao-cli/internal/domain/config"
)

// Actions dispatches the user-initiated write operations. Each action checks
// its preconditions before any transaction is submitted, waits for every
// transaction it sends, and refreshes the statistics after success.
type Actions struct {
	config    *config.RuntimeConfig
	signer    SignerProvider
	waiter    TransactionWaiter
	token     TokenReader
	staking   StakingReader
	builder   TxBuilder
	metadata  MetadataStore
	refresher Refresher
	progress  ProgressSink
	log       *slog.Logger

	now func() time.Time
}

// NewActions creates a new Actions dispatcher
func NewActions(
	cfg *config.RuntimeConfig,
	signer SignerProvider,
	waiter TransactionWaiter,
	token TokenReader,
	staking StakingReader,
	builder TxBuilder,
	metadata MetadataStore,
	refresher Refresher,
	progress ProgressSink,
	log *slog.Logger,
) *Actions {
	if progress == nil {
		progress = NopProgress{}
	}
	return &Actions{
		config:    cfg,
		signer:    signer,
		waiter:    waiter,
		token:     token,
		staking:   staking,
		builder:   builder,
		metadata:  metadata,
		refresher: refresher,
		progress:  progress,
		log:       log,
		now:       time.Now,
	}
}

// Stake approves the staking contract when the current allowance does not
// cover amount, then stakes. An approval confirmed by an earlier attempt is
// reused.
func (a *Actions) Stake(ctx context.Context, amount *big.Int) (*domain.ActionResult, error) {
	const action = domain.ActionStake

	account, err := a.requireAccount(ctx, action)
	if err != nil {
		return domain.Failed(action, "Please connect wallet first."), err
	}
	if err := requireAmount(amount); err != nil {
		return domain.Failed(action, "Enter an amount greater than zero."), err
	}

	a.stage(ctx, StageValidating, "Checking balance")
	balance, err := a.token.BalanceOf(ctx, account)
	if err != nil {
		return a.fail(action, nil, fmt.Errorf("failed to read token balance: %w", err))
	}
	if balance.Cmp(amount) < 0 {
		insufficient := domain.InsufficientBalanceError{Kind: "token", Available: balance, Requested: amount, Decimals: a.config.TokenDecimals}
		return domain.Failed(action, "Insufficient $MEME balance."), insufficient
	}

	spender := a.builder.StakingAddress()
	allowance, err := a.token.Allowance(ctx, account, spender)
	if err != nil {
		return a.fail(action, nil, fmt.Errorf("failed to read allowance: %w", err))
	}

	result := &domain.ActionResult{Action: action}

	if allowance.Cmp(amount) >= 0 {
		result.ApprovalSkipped = true
		a.log.Debug("allowance covers stake, skipping approval",
			"allowance", allowance.String(), "amount", amount.String())
	} else {
		req, err := a.builder.Approve(spender, amount)
		if err != nil {
			return a.fail(action, result, err)
		}
		hash, err := a.submit(ctx, StageApproving, "Approving $MEME", req)
		result.Transactions = appendHash(result.Transactions, hash)
		if err != nil {
			return a.fail(action, result, fmt.Errorf("approval: %w", err))
		}
	}

	req, err := a.builder.Stake(amount)
	if err != nil {
		return a.fail(action, result, err)
	}
	hash, err := a.submit(ctx, StageSubmitting, "Staking $MEME", req)
	result.Transactions = appendHash(result.Transactions, hash)
	if err != nil {
		return a.fail(action, result, err)
	}

	return a.succeed(ctx, result, fmt.Sprintf("Successfully staked %s $MEME tokens", a.tokens(amount))), nil
}

// Unstake withdraws amount from the staked balance.
func (a *Actions) Unstake(ctx context.Context, amount *big.Int) (*domain.ActionResult, error) {
	const action = domain.ActionUnstake

	account, err := a.requireAccount(ctx, action)
	if err != nil {
		return domain.Failed(action, "Please connect wallet first."), err
	}
	if err := requireAmount(amount); err != nil {
		return domain.Failed(action, "Enter an amount greater than zero."), err
	}

	a.stage(ctx, StageValidating, "Checking staked balance")
	staked, err := a.staking.StakedBalance(ctx, account)
	if err != nil {
		return a.fail(action, nil, fmt.Errorf("failed to read staked balance: %w", err))
	}
	if staked.Cmp(amount) < 0 {
		insufficient := domain.InsufficientBalanceError{Kind: "staked", Available: staked, Requested: amount, Decimals: a.config.TokenDecimals}
		return domain.Failed(action, "Insufficient staked balance."), insufficient
	}

	result := &domain.ActionResult{Action: action}
	req, err := a.builder.Withdraw(amount)
	if err != nil {
		return a.fail(action, result, err)
	}
	hash, err := a.submit(ctx, StageSubmitting, "Withdrawing $MEME", req)
	result.Transactions = appendHash(result.Transactions, hash)
	if err != nil {
		return a.fail(action, result, err)
	}

	return a.succeed(ctx, result, fmt.Sprintf("Successfully unstaked %s $MEME tokens", a.tokens(amount))), nil
}

// ClaimRewards claims all pending staking rewards.
func (a *Actions) ClaimRewards(ctx context.Context) (*domain.ActionResult, error) {
	const action = domain.ActionClaimRewards

	if _, err := a.requireAccount(ctx, action); err != nil {
		return domain.Failed(action, "Please connect wallet first."), err
	}

	result := &domain.ActionResult{Action: action}
	req, err := a.builder.ClaimReward()
	if err != nil {
		return a.fail(action, result, err)
	}
	hash, err := a.submit(ctx, StageSubmitting, "Claiming rewards", req)
	result.Transactions = appendHash(result.Transactions, hash)
	if err != nil {
		return a.fail(action, result, err)
	}

	return a.succeed(ctx, result, "Rewards claimed successfully"), nil
}

// CreateProposal pins the metadata document and registers its content id
// with the DAO. Nothing is sent to the chain unless publishing succeeded.
func (a *Actions) CreateProposal(ctx context.Context, meta *domain.ProposalMetadata) (*domain.ActionResult, error) {
	const action = domain.ActionCreateProposal

	if _, err := a.requireAccount(ctx, action); err != nil {
		return domain.Failed(action, "Please connect wallet first."), err
	}

	a.stage(ctx, StageValidating, "Validating proposal")
	if meta == nil {
		meta = &domain.ProposalMetadata{}
	}
	if err := meta.Validate(); err != nil {
		return domain.Failed(action, "Please fill in all fields."), err
	}
	delay, duration, err := a.votingWindow(meta)
	if err != nil {
		return domain.Failed(action, "End date must be after the voting start."), err
	}

	result := &domain.ActionResult{Action: action}

	a.stage(ctx, StagePublishing, "Publishing metadata")
	cid, err := a.metadata.Publish(ctx, meta)
	if err != nil {
		return a.fail(action, result, err)
	}
	result.ContentID = cid
	a.log.Info("proposal metadata published", "cid", cid)

	req, err := a.builder.CreateProposal(cid, big.NewInt(delay), big.NewInt(duration))
	if err != nil {
		return a.fail(action, result, err)
	}
	hash, err := a.submit(ctx, StageSubmitting, "Creating proposal", req)
	result.Transactions = appendHash(result.Transactions, hash)
	if err != nil {
		return a.fail(action, result, err)
	}

	return a.succeed(ctx, result, "Proposal created successfully"), nil
}

// CastVote records a vote on the proposal with the given 1-based index.
func (a *Actions) CastVote(ctx context.Context, index uint64, support bool) (*domain.ActionResult, error) {
	const action = domain.ActionCastVote

	if _, err := a.requireAccount(ctx, action); err != nil {
		return domain.Failed(action, "Please connect wallet first."), err
	}
	if index == 0 {
		return domain.Failed(action, "Proposal indices start at 1."),
			fmt.Errorf("%w: 0", domain.ErrInvalidProposalIndex)
	}

	result := &domain.ActionResult{Action: action}
	req, err := a.builder.Vote(index, support)
	if err != nil {
		return a.fail(action, result, err)
	}
	hash, err := a.submit(ctx, StageSubmitting, fmt.Sprintf("Voting on proposal #%d", index), req)
	result.Transactions = appendHash(result.Transactions, hash)
	if err != nil {
		return a.fail(action, result, err)
	}

	side := "against"
	if support {
		side = "for"
	}
	return a.succeed(ctx, result, fmt.Sprintf("Voted %s proposal #%d", side, index)), nil
}

// votingWindow returns the start delay and voting duration in seconds.
func (a *Actions) votingWindow(meta *domain.ProposalMetadata) (delay, duration int64, err error) {
	end, err := meta.EndTime()
	if err != nil {
		return 0, 0, err
	}

	start := a.now().Add(a.config.ProposalStartDelay)
	if !end.After(start) {
		return 0, 0, fmt.Errorf("%w: %s is not after voting start %s",
			domain.ErrInvalidEndDate, end.Format(time.RFC3339), start.UTC().Format(time.RFC3339))
	}

	delay = int64(a.config.ProposalStartDelay / time.Second)
	duration = int64(end.Sub(start) / time.Second)
	if duration <= 0 {
		return 0, 0, fmt.Errorf("%w: voting window shorter than one second", domain.ErrInvalidEndDate)
	}
	return delay, duration, nil
}

func (a *Actions) requireAccount(ctx context.Context, action domain.ActionKind) (common.Address, error) {
	if a.signer.ConnectionState() != domain.Connected {
		a.log.Warn("action requires a connected wallet", "action", action)
		return common.Address{}, domain.ErrNotConnected
	}
	account, err := a.signer.Address(ctx)
	if err != nil {
		return common.Address{}, fmt.Errorf("%w: %v", domain.ErrNotConnected, err)
	}
	return account, nil
}

func requireAmount(amount *big.Int) error {
	if amount == nil || amount.Sign() <= 0 {
		return fmt.Errorf("%w: amount must be greater than zero", domain.ErrInvalidAmount)
	}
	return nil
}

// submit signs and sends req, then blocks until it is mined. A hash is
// returned whenever the transaction reached the network.
func (a *Actions) submit(ctx context.Context, stage, message string, req domain.TxRequest) (common.Hash, error) {
	a.stage(ctx, stage, message)

	hash, err := a.signer.SignAndSend(ctx, req)
	if err != nil {
		return common.Hash{}, fmt.Errorf("failed to send %s: %w", req.Method, err)
	}
	a.log.Info("transaction sent", "method", req.Method, "tx", hash.Hex())

	a.stage(ctx, StageConfirming, fmt.Sprintf("Waiting for %s", shortHash(hash)))
	receipt, err := a.waiter.WaitForConfirmation(ctx, hash)
	if err != nil {
		return hash, fmt.Errorf("failed waiting for %s: %w", req.Method, err)
	}
	if !receipt.Success {
		return hash, fmt.Errorf("%s %s: %w", req.Method, hash.Hex(), domain.ErrTransactionReverted)
	}
	return hash, nil
}

func (a *Actions) succeed(ctx context.Context, result *domain.ActionResult, notice string) *domain.ActionResult {
	result.Success = true
	result.Notice = notice

	a.stage(ctx, StageRefreshing, "Refreshing statistics")
	if _, err := a.refresher.Refresh(ctx); err != nil {
		a.log.Warn("refresh after action failed", "action", result.Action, "error", err)
	}

	a.progress.OnProgress(ctx, ProgressEvent{Stage: StageCompleted, Message: notice})
	return result
}

func (a *Actions) fail(action domain.ActionKind, result *domain.ActionResult, err error) (*domain.ActionResult, error) {
	if result == nil {
		result = &domain.ActionResult{Action: action}
	}
	result.Success = false
	result.Notice = failureNotice(action, err)

	a.log.Error("action failed", "action", action, "error", err)
	a.progress.Error(result.Notice)
	return result, &domain.ActionError{Action: action, Err: err}
}

func failureNotice(action domain.ActionKind, err error) string {
	switch {
	case errors.Is(err, domain.ErrMetadataPublish):
		return "Failed to publish proposal metadata. Please try again later."
	case errors.Is(err, domain.ErrTransactionReverted):
		return fmt.Sprintf("The %s transaction was reverted.", action)
	case errors.Is(err, context.DeadlineExceeded):
		return fmt.Sprintf("Timed out during %s.", action)
	default:
		return fmt.Sprintf("Failed to %s. Please try again later.", action)
	}
}

func (a *Actions) stage(ctx context.Context, stage, message string) {
	a.progress.OnProgress(ctx, ProgressEvent{Stage: stage, Message: message, Spinner: true})
}

func (a *Actions) tokens(v *big.Int) string {
	return domain.FormatAmount(v, a.config.TokenDecimals, a.config.DisplayPlaces)
}

func appendHash(hashes []common.Hash, h common.Hash) []common.Hash {
	if h == (common.Hash{}) {
		return hashes
	}
	return append(hashes, h)
}

func shortHash(h common.Hash) string {
	return domain.FormatAddress(h.Hex())
}
