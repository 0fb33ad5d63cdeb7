package domain

import (
	"github.com/ethereum/go-ethereum/common"
)

// ActionKind names a state-changing action.
type ActionKind string

const (
	ActionStake          ActionKind = "stake"
	ActionUnstake        ActionKind = "unstake"
	ActionClaimRewards   ActionKind = "claim rewards"
	ActionCreateProposal ActionKind = "create proposal"
	ActionCastVote       ActionKind = "vote"
)

// ActionResult is the outcome of a write action. Success drives whether
// the caller shows success feedback and resets its input.
type ActionResult struct {
	Action       ActionKind    `json:"action" yaml:"action"`
	Success      bool          `json:"success" yaml:"success"`
	Notice       string        `json:"notice" yaml:"notice"`
	Transactions []common.Hash `json:"transactions,omitempty" yaml:"transactions,omitempty"`
	// ApprovalSkipped is set when Stake reused an existing allowance.
	ApprovalSkipped bool   `json:"approvalSkipped,omitempty" yaml:"approvalSkipped,omitempty"`
	ContentID       string `json:"contentId,omitempty" yaml:"contentId,omitempty"`
}

// Failed builds an unsuccessful result carrying a user-facing notice.
func Failed(action ActionKind, notice string) *ActionResult {
	return &ActionResult{Action: action, Notice: notice}
}
