package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/memedao/memedao-cli/internal/domain"
)

const barWidth = 30

// TokenomicsRenderer renders the token distribution
type TokenomicsRenderer struct {
	out      io.Writer
	decimals int32
	places   int32
}

// NewTokenomicsRenderer creates a new tokenomics renderer
func NewTokenomicsRenderer(out io.Writer, decimals, places int32) *TokenomicsRenderer {
	return &TokenomicsRenderer{out: out, decimals: decimals, places: places}
}

// Render prints one row per allocation with a share bar
func (r *TokenomicsRenderer) Render(t *domain.Tokenomics) error {
	fmt.Fprintln(r.out, sectionStyle.Sprintf("📊 $%s Tokenomics", t.Symbol))
	fmt.Fprintln(r.out)

	tw := newPlainTable()
	header := table.Row{"ALLOCATION", "SHARE", ""}
	if t.TotalSupply != nil {
		header = append(header, "TOKENS")
	}
	tw.AppendHeader(header)
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight},
		{Number: 4, Align: text.AlignRight},
	})

	for _, a := range t.Allocations {
		row := table.Row{a.Name, fmt.Sprintf("%d%%", a.Percent), bar(a)}
		if t.TotalSupply != nil {
			row = append(row, domain.FormatAmount(t.Amount(a), r.decimals, 0))
		}
		tw.AppendRow(row)
	}
	fmt.Fprintln(r.out, tw.Render())

	if t.TotalSupply != nil {
		fmt.Fprintln(r.out)
		fmt.Fprintln(r.out, keyValueTable([][2]string{
			{"Total supply", tokens(t.TotalSupply, r.decimals, 0)},
			{"Total staked", fmt.Sprintf("%s (%s of supply)", tokens(t.TotalStaked, r.decimals, 0), domain.FormatPercent(t.StakedShare(), 2))},
		}))
	}
	return nil
}

// bar draws a proportional block bar in the allocation's color
func bar(a domain.Allocation) string {
	n := int(a.Percent) * barWidth / 100
	if n < 1 {
		n = 1
	}
	return allocationColor(a.Color).Sprint(strings.Repeat("█", n))
}

// allocationColor maps the palette used by the default distribution to
// terminal colors; unknown values fall back to white.
func allocationColor(hex string) *color.Color {
	switch strings.ToUpper(hex) {
	case "#8B5CF6":
		return color.New(color.FgMagenta)
	case "#06B6D4":
		return color.New(color.FgCyan)
	case "#10B981":
		return color.New(color.FgGreen)
	case "#F59E0B":
		return color.New(color.FgYellow)
	case "#EF4444":
		return color.New(color.FgRed)
	case "#6B7280":
		return color.New(color.FgHiBlack)
	}
	return color.New(color.FgWhite)
}

var _ Renderer[*domain.Tokenomics] = (*TokenomicsRenderer)(nil)
