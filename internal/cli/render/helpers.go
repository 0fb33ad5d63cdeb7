package render

import (
	"math/big"
	"regexp"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/memedao/memedao-cli/internal/domain"
)

var (
	labelStyle     = color.New(color.Faint)
	valueStyle     = color.New(color.FgHiWhite, color.Bold)
	addressStyle   = color.New(color.FgWhite)
	timestampStyle = color.New(color.Faint)
	sectionStyle   = color.New(color.Bold, color.FgHiWhite)
	votedStyle     = color.New(color.FgGreen)
	forStyle       = color.New(color.FgGreen)
	againstStyle   = color.New(color.FgRed)
)

// FormatWarning formats a warning message with the warning icon
func FormatWarning(message string) string {
	return color.New(color.FgYellow).Sprintf("⚠️  %s", capitalize(message))
}

// FormatError formats an error message with the error icon
func FormatError(message string) string {
	return color.New(color.FgRed).Sprintf("❌ %s", capitalize(message))
}

// FormatSuccess formats a success message with the success icon
func FormatSuccess(message string) string {
	return color.New(color.FgGreen).Sprintf("✅ %s", message)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// stateStyle colors a proposal state
func stateStyle(state domain.ProposalState) *color.Color {
	switch state {
	case domain.StateActive:
		return color.New(color.FgCyan, color.Bold)
	case domain.StatePassed, domain.StateResolved:
		return color.New(color.FgGreen)
	case domain.StateFailed, domain.StateQuorumFailed:
		return color.New(color.FgRed)
	case domain.StateNotStarted:
		return color.New(color.FgYellow)
	default:
		return color.New(color.Faint)
	}
}

// relativeTime renders t relative to now, "3 days from now" or "2 hours ago"
func relativeTime(t, now time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return humanize.RelTime(t, now, "ago", "from now")
}

func unixTime(ts uint64) time.Time {
	if ts == 0 {
		return time.Time{}
	}
	return time.Unix(int64(ts), 0).UTC()
}

// tokens formats a base-unit amount with the configured places
func tokens(v *big.Int, decimals, places int32) string {
	return domain.FormatAmount(v, decimals, places) + " $MEME"
}

var ansiRegex = regexp.MustCompile(`\x1b\[[0-9;]*[mGKHF]`)

// stripAnsiCodes removes ANSI escape sequences from a string
func stripAnsiCodes(s string) string {
	return ansiRegex.ReplaceAllString(s, "")
}

// newPlainTable returns a borderless go-pretty table
func newPlainTable() table.Writer {
	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.Style().Options.SeparateRows = false
	t.Style().Options.DrawBorder = false
	t.Style().Options.SeparateHeader = false
	t.Style().Options.SeparateColumns = false
	t.Style().Box = table.BoxStyle{
		PaddingRight: "   ",
	}
	return t
}

// keyValueTable renders label/value pairs with aligned labels
func keyValueTable(rows [][2]string) string {
	t := newPlainTable()
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignLeft},
		{Number: 2, Align: text.AlignLeft},
	})
	for _, r := range rows {
		t.AppendRow(table.Row{labelStyle.Sprint(r[0]), r[1]})
	}
	return t.Render()
}
