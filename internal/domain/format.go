package domain

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

// TokenDecimals is the fixed-point precision of $MEME and of every
// amount-like value the contracts return.
const TokenDecimals int32 = 18

// minAddressLen is the shortest input FormatAddress will truncate.
const minAddressLen = 10

// FormatAddress shortens an address to its first 6 and last 4 characters.
// Inputs shorter than 10 characters are returned unmodified.
func FormatAddress(addr string) string {
	if len(addr) < minAddressLen {
		return addr
	}
	return addr[:6] + "..." + addr[len(addr)-4:]
}

// FormatAmount converts a base-unit integer into a grouped decimal string
// with exactly places fractional digits. Extra digits are truncated, never
// rounded up, so a displayed balance is never larger than the real one.
func FormatAmount(v *big.Int, decimals, places int32) string {
	if v == nil {
		v = new(big.Int)
	}
	if places < 0 {
		places = 0
	}

	d := decimal.NewFromBigInt(new(big.Int).Abs(v), -decimals).Truncate(places)
	intPart, frac, _ := strings.Cut(d.StringFixed(places), ".")

	whole, ok := new(big.Int).SetString(intPart, 10)
	if !ok {
		whole = new(big.Int)
	}

	out := humanize.BigComma(whole)
	if frac != "" {
		out += "." + frac
	}
	if v.Sign() < 0 && !d.IsZero() {
		out = "-" + out
	}
	return out
}

// FormatTokens formats an 18-decimal token amount.
func FormatTokens(v *big.Int, places int32) string {
	return FormatAmount(v, TokenDecimals, places)
}

// FormatPercent renders a fixed-point percentage as returned by CalculateAPY.
func FormatPercent(v *big.Int, places int32) string {
	return FormatAmount(v, TokenDecimals, places) + "%"
}

// ParseAmount converts a human decimal string ("12.5") into base units.
func ParseAmount(s string, decimals int32) (*big.Int, error) {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", ""))
	if s == "" {
		return nil, fmt.Errorf("%w: empty", ErrInvalidAmount)
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %q is not a number", ErrInvalidAmount, s)
	}
	if d.IsNegative() {
		return nil, fmt.Errorf("%w: %q is negative", ErrInvalidAmount, s)
	}

	shifted := d.Shift(decimals)
	if !shifted.Equal(shifted.Truncate(0)) {
		return nil, fmt.Errorf("%w: %q has more than %d decimal places", ErrInvalidAmount, s, decimals)
	}

	return shifted.BigInt(), nil
}

// ParseTokens parses an 18-decimal token amount and rejects zero.
func ParseTokens(s string) (*big.Int, error) {
	v, err := ParseAmount(s, TokenDecimals)
	if err != nil {
		return nil, err
	}
	if v.Sign() == 0 {
		return nil, fmt.Errorf("%w: amount must be greater than zero", ErrInvalidAmount)
	}
	return v, nil
}
