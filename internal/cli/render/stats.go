package render

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/memedao/memedao-cli/internal/domain"
)

// StatsRenderer renders the staking and governance overview
type StatsRenderer struct {
	out      io.Writer
	decimals int32
	places   int32
	now      func() time.Time
}

// NewStatsRenderer creates a new stats renderer
func NewStatsRenderer(out io.Writer, decimals, places int32) *StatsRenderer {
	return &StatsRenderer{out: out, decimals: decimals, places: places, now: time.Now}
}

// RenderStats prints the wallet and governance sections of snap
func (r *StatsRenderer) RenderStats(snap *domain.StatisticsSnapshot) error {
	fmt.Fprint(r.out, r.String(snap))
	return nil
}

// String renders snap without writing it
func (r *StatsRenderer) String(snap *domain.StatisticsSnapshot) string {
	var b strings.Builder
	now := r.now()

	b.WriteString(sectionStyle.Sprint("💰 Staking") + "\n")
	if !snap.Connected {
		b.WriteString(labelStyle.Sprint("   No wallet connected, set MEMEDAO_PRIVATE_KEY to see balances") + "\n")
	}

	rows := [][2]string{}
	if snap.Connected {
		rows = append(rows, [2]string{"Account", addressStyle.Sprint(domain.FormatAddress(snap.Account.Hex()))})
	}
	rows = append(rows,
		[2]string{"APY", valueStyle.Sprint(domain.FormatPercent(snap.CurrentAPY, 2))},
		[2]string{"Staked", tokens(snap.StakedAmount, r.decimals, r.places)},
		[2]string{"Pending rewards", tokens(snap.PendingRewards, r.decimals, r.places)},
		[2]string{"Unlock", r.unlock(snap, now)},
		[2]string{"Voting power", domain.FormatAmount(snap.VotingPower, r.decimals, r.places)},
		[2]string{"Total staked", tokens(snap.TotalStaked, r.decimals, r.places)},
	)
	b.WriteString(indent(keyValueTable(rows)) + "\n\n")

	b.WriteString(sectionStyle.Sprint("🏛  Governance") + "\n")
	gov := [][2]string{
		{"Quorum", domain.FormatAmount(snap.Quorum, r.decimals, r.places) + " votes"},
		{"Proposals", fmt.Sprintf("%d", len(snap.Proposals))},
	}
	if summary := stateSummary(snap.CountByState()); summary != "" {
		gov = append(gov, [2]string{"By state", summary})
	}
	b.WriteString(indent(keyValueTable(gov)) + "\n")

	if !snap.FetchedAt.IsZero() {
		b.WriteString("\n" + timestampStyle.Sprintf("Updated %s", relativeTime(snap.FetchedAt, now)) + "\n")
	}
	return b.String()
}

func (r *StatsRenderer) unlock(snap *domain.StatisticsSnapshot, now time.Time) string {
	if !snap.Connected || snap.UnlockTimestamp == 0 {
		return "-"
	}
	at := snap.UnlockTime()
	when := at.UTC().Format("2006-01-02 15:04 UTC")
	if snap.Unlocked(now) {
		return color.New(color.FgGreen).Sprintf("unlocked (%s)", when)
	}
	return color.New(color.FgYellow).Sprintf("locked until %s (%s)", when, relativeTime(at, now))
}

// stateSummary renders "2 active · 1 passed" in lifecycle order
func stateSummary(counts map[domain.ProposalState]int) string {
	order := make(map[domain.ProposalState]int, len(domain.AllProposalStates))
	for i, s := range domain.AllProposalStates {
		order[s] = i
	}
	states := make([]domain.ProposalState, 0, len(counts))
	for s := range counts {
		states = append(states, s)
	}
	sort.Slice(states, func(i, j int) bool { return order[states[i]] < order[states[j]] })

	parts := make([]string, 0, len(states))
	for _, s := range states {
		parts = append(parts, stateStyle(s).Sprintf("%d %s", counts[s], strings.ToLower(s.Label())))
	}
	return strings.Join(parts, " · ")
}

func indent(s string) string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = "   " + l
	}
	return strings.Join(lines, "\n")
}
