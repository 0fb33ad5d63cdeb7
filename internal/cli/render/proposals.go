package render

import (
	"fmt"
	"io"
	"math/big"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/memedao/memedao-cli/internal/domain"
	"github.com/memedao/memedao-cli/internal/usecase"
)

const maxTitleWidth = 40

// ProposalsRenderer renders proposal lists and details
type ProposalsRenderer struct {
	out      io.Writer
	decimals int32
	places   int32
	now      func() time.Time
}

// NewProposalsRenderer creates a new proposals renderer
func NewProposalsRenderer(out io.Writer, decimals, places int32) *ProposalsRenderer {
	return &ProposalsRenderer{out: out, decimals: decimals, places: places, now: time.Now}
}

// RenderList renders proposals as a table
func (r *ProposalsRenderer) RenderList(result *usecase.ProposalListResult) error {
	fmt.Fprint(r.out, r.String(result))
	return nil
}

// String renders the proposal table and footer without writing them
func (r *ProposalsRenderer) String(result *usecase.ProposalListResult) string {
	if len(result.Proposals) == 0 {
		if result.Total == 0 {
			return "No proposals yet\n"
		}
		return fmt.Sprintf("No proposals match (%d total)\n", result.Total)
	}

	footer := fmt.Sprintf("%d of %d proposals · quorum %s votes", len(result.Proposals), result.Total, domain.FormatAmount(result.Quorum, r.decimals, 0))
	if summary := stateSummary(result.Summary); summary != "" {
		footer += " · " + summary
	}
	return r.table(result) + "\n\n" + timestampStyle.Sprint(footer) + "\n"
}

func (r *ProposalsRenderer) table(result *usecase.ProposalListResult) string {
	now := r.now()
	t := newPlainTable()

	header := table.Row{"#", "TITLE", "STATE", "FOR", "AGAINST", "QUORUM", "ENDS"}
	if result.Connected {
		header = append(header, "VOTED")
	}
	t.AppendHeader(header)
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight},
		{Number: 2, WidthMax: maxTitleWidth},
		{Number: 4, Align: text.AlignRight},
		{Number: 5, Align: text.AlignRight},
		{Number: 6, Align: text.AlignRight},
	})

	for _, p := range result.Proposals {
		state := p.State()
		row := table.Row{
			p.Index,
			truncate(p.Title(), maxTitleWidth),
			stateStyle(state).Sprint(state.Label()),
			forStyle.Sprint(domain.FormatAmount(p.VotesFor, r.decimals, 0)),
			againstStyle.Sprint(domain.FormatAmount(p.VotesAgainst, r.decimals, 0)),
			quorumCell(p, result.Quorum),
			relativeTime(unixTime(p.EndTime), now),
		}
		if result.Connected {
			voted := ""
			if p.HasCurrentUserVoted {
				voted = votedStyle.Sprint("✓")
			}
			row = append(row, voted)
		}
		t.AppendRow(row)
	}
	return t.Render()
}

// RenderDetail renders one proposal with its metadata
func (r *ProposalsRenderer) RenderDetail(detail *usecase.ProposalDetail) error {
	p := detail.Proposal
	now := r.now()
	state := p.State()

	fmt.Fprintf(r.out, "%s %s\n", sectionStyle.Sprintf("Proposal #%d:", p.Index), valueStyle.Sprint(p.Title()))
	fmt.Fprintln(r.out, strings.Repeat("─", 60))

	rows := [][2]string{
		{"State", stateStyle(state).Sprint(state.Label())},
		{"Proposer", addressStyle.Sprint(p.Proposer.Hex())},
		{"Content ID", p.ContentID},
		{"Starts", r.when(p.StartTime, now)},
		{"Ends", r.when(p.EndTime, now)},
		{"Votes for", forStyle.Sprint(domain.FormatAmount(p.VotesFor, r.decimals, r.places))},
		{"Votes against", againstStyle.Sprint(domain.FormatAmount(p.VotesAgainst, r.decimals, r.places))},
		{"Voters", domain.FormatAmount(p.VotersCount, 0, 0)},
		{"Quorum", fmt.Sprintf("%s of %s", quorumCell(p, detail.Quorum), domain.FormatAmount(detail.Quorum, r.decimals, 0))},
	}
	if detail.Connected {
		voted := "no"
		if p.HasCurrentUserVoted {
			voted = votedStyle.Sprint("yes")
		}
		rows = append(rows, [2]string{"You voted", voted})
	}

	if p.Metadata == nil {
		fmt.Fprintln(r.out, keyValueTable(rows))
		fmt.Fprintln(r.out)
		fmt.Fprintln(r.out, FormatWarning("Proposal metadata unavailable"))
		return nil
	}

	rows = append(rows,
		[2]string{"Category", p.Metadata.Category},
		[2]string{"Requested", p.Metadata.RequestedFunding},
		[2]string{"End date", p.Metadata.EndDate},
	)
	fmt.Fprintln(r.out, keyValueTable(rows))
	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out, sectionStyle.Sprint("Description"))
	fmt.Fprintln(r.out, p.Metadata.Description)
	return nil
}

func (r *ProposalsRenderer) when(ts uint64, now time.Time) string {
	t := unixTime(ts)
	if t.IsZero() {
		return "-"
	}
	return fmt.Sprintf("%s (%s)", t.Format("2006-01-02 15:04 UTC"), relativeTime(t, now))
}

// quorumCell renders quorum progress as a percentage, green once reached
func quorumCell(p *domain.Proposal, quorum *big.Int) string {
	pct := domain.FormatPercent(p.QuorumProgress(quorum), 0)
	if p.QuorumReached(quorum) {
		return color.New(color.FgGreen).Sprint(pct)
	}
	return pct
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-1]) + "…"
}
