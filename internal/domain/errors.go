package domain

import (
	"errors"
	"fmt"
	"math/big"
)

// Sentinel errors for domain operations
var (
	// ErrNotFound is returned when a requested resource doesn't exist
	ErrNotFound = errors.New("not found")

	// ErrInvalidAddress is returned when an Ethereum address is invalid
	ErrInvalidAddress = errors.New("invalid address")

	// ErrNotConnected is returned when a signer-scoped operation runs without a wallet session
	ErrNotConnected = errors.New("wallet not connected")

	// ErrInvalidAmount is returned for empty, zero, negative or over-precise amounts
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrIncompleteMetadata is returned when a proposal is missing one of its metadata fields
	ErrIncompleteMetadata = errors.New("incomplete proposal metadata")

	// ErrInvalidEndDate is returned when a proposal end date can't be parsed or is in the past
	ErrInvalidEndDate = errors.New("invalid proposal end date")

	// ErrInvalidProposalIndex is returned for proposal indexes outside 1..count
	ErrInvalidProposalIndex = errors.New("invalid proposal index")

	// ErrMetadataUnavailable is returned when proposal metadata can't be fetched
	ErrMetadataUnavailable = errors.New("proposal metadata unavailable")

	// ErrMetadataPublish is returned when proposal metadata can't be pinned
	ErrMetadataPublish = errors.New("failed to publish proposal metadata")

	// ErrActionFailed marks a rejected, reverted or undeliverable transaction
	ErrActionFailed = errors.New("action failed")

	// ErrTransactionReverted is returned when a mined transaction has a failed status
	ErrTransactionReverted = errors.New("transaction reverted")

	// ErrAPYOverflow is returned when the APY computation exceeds 256 bits
	ErrAPYOverflow = errors.New("apy computation overflows uint256")

	// ErrStaleSnapshot is returned when the wallet identity changed while a refresh was in flight
	ErrStaleSnapshot = errors.New("wallet changed during refresh")
)

// InsufficientBalanceError is returned when a stake or unstake amount exceeds
// what the account holds. No transaction is submitted in that case.
type InsufficientBalanceError struct {
	Kind      string // "token" or "staked"
	Available *big.Int
	Requested *big.Int
	Decimals  int32
}

func (e InsufficientBalanceError) Error() string {
	return fmt.Sprintf("insufficient %s balance: have %s, need %s",
		e.Kind,
		FormatAmount(e.Available, e.Decimals, 4),
		FormatAmount(e.Requested, e.Decimals, 4))
}

// ActionError wraps a chain or transport failure raised while running a write action.
type ActionError struct {
	Action ActionKind
	Err    error
}

func (e *ActionError) Error() string {
	return fmt.Sprintf("%s failed: %v", e.Action, e.Err)
}

func (e *ActionError) Unwrap() []error {
	return []error{ErrActionFailed, e.Err}
}

// IsValidationError reports whether err is a locally detected precondition failure.
func IsValidationError(err error) bool {
	var insufficient InsufficientBalanceError
	switch {
	case errors.As(err, &insufficient):
		return true
	case errors.Is(err, ErrNotConnected),
		errors.Is(err, ErrInvalidAmount),
		errors.Is(err, ErrIncompleteMetadata),
		errors.Is(err, ErrInvalidEndDate),
		errors.Is(err, ErrInvalidProposalIndex):
		return true
	}
	return false
}
