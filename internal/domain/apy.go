package domain

import (
	"math/big"

	"github.com/holiman/uint256"
)

// SecondsPerYear is 365 days; leap years are ignored.
const SecondsPerYear = 365 * 24 * 60 * 60

var (
	fixedPointUnit = uint256.NewInt(1_000_000_000_000_000_000)
	secondsPerYear = uint256.NewInt(SecondsPerYear)
	hundred        = uint256.NewInt(100)
)

// CalculateAPY derives the annual percentage yield from the staking
// contract's per-second reward rate and the total amount staked.
//
// The result is a percentage scaled by 1e18: divide by 1e18 (FormatPercent)
// to display it. All arithmetic is unsigned 256-bit; the per-token rate is
// truncated before the year extrapolation, matching the contract's own
// rewardPerToken rounding.
func CalculateAPY(rewardRate, totalStaked *big.Int) (*big.Int, error) {
	if totalStaked == nil || totalStaked.Sign() == 0 {
		return new(big.Int), nil
	}
	if rewardRate == nil || rewardRate.Sign() == 0 {
		return new(big.Int), nil
	}

	rate, overflow := uint256.FromBig(rewardRate)
	if overflow || rewardRate.Sign() < 0 {
		return nil, ErrAPYOverflow
	}
	total, overflow := uint256.FromBig(totalStaked)
	if overflow || totalStaked.Sign() < 0 {
		return nil, ErrAPYOverflow
	}

	scaled, overflow := new(uint256.Int).MulOverflow(rate, fixedPointUnit)
	if overflow {
		return nil, ErrAPYOverflow
	}
	perTokenPerSecond := new(uint256.Int).Div(scaled, total)

	annual, overflow := new(uint256.Int).MulOverflow(perTokenPerSecond, secondsPerYear)
	if overflow {
		return nil, ErrAPYOverflow
	}
	apy, overflow := new(uint256.Int).MulOverflow(annual, hundred)
	if overflow {
		return nil, ErrAPYOverflow
	}

	return apy.ToBig(), nil
}
