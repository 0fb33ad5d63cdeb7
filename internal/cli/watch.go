package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fatih/color"
	"github.com/memedao/memedao-cli/internal/cli/render"
	"github.com/memedao/memedao-cli/internal/domain"
	"github.com/memedao/memedao-cli/internal/usecase"
	"github.com/spf13/cobra"
)

// snapshotMsg carries a snapshot published by the aggregator
type snapshotMsg struct {
	snap *domain.StatisticsSnapshot
}

// refreshDoneMsg reports the outcome of a manual refresh
type refreshDoneMsg struct {
	err error
}

// watchControls are the session and refresh hooks behind the dashboard keys.
// A nil hook disables its key.
type watchControls struct {
	refresh     func() error
	toggle      func()
	nextAccount func() error
}

// watchModel is the bubbletea model for the live dashboard
type watchModel struct {
	snapshots <-chan *domain.StatisticsSnapshot
	controls  watchControls
	stats     *render.StatsRenderer
	proposals *render.ProposalsRenderer

	snap       *domain.StatisticsSnapshot
	refreshing bool
	lastErr    error
	done       bool
}

func newWatchModel(snapshots <-chan *domain.StatisticsSnapshot, initial *domain.StatisticsSnapshot, controls watchControls, decimals, places int32) watchModel {
	return watchModel{
		snapshots: snapshots,
		controls:  controls,
		stats:     render.NewStatsRenderer(nil, decimals, places),
		proposals: render.NewProposalsRenderer(nil, decimals, places),
		snap:      initial,
	}
}

// waitForSnapshot blocks until the aggregator publishes again
func waitForSnapshot(ch <-chan *domain.StatisticsSnapshot) tea.Cmd {
	return func() tea.Msg {
		snap, ok := <-ch
		if !ok {
			return tea.Quit()
		}
		return snapshotMsg{snap: snap}
	}
}

// Init is the initial command for bubbletea
func (m watchModel) Init() tea.Cmd {
	return waitForSnapshot(m.snapshots)
}

// Update handles messages and updates the model
func (m watchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case snapshotMsg:
		m.snap = msg.snap
		return m, waitForSnapshot(m.snapshots)
	case refreshDoneMsg:
		m.refreshing = false
		m.lastErr = nil
		if msg.err != nil {
			m.lastErr = fmt.Errorf("refresh failed: %w", msg.err)
		}
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			m.done = true
			return m, tea.Quit
		case "r":
			if m.refreshing || m.controls.refresh == nil {
				return m, nil
			}
			m.refreshing = true
			refresh := m.controls.refresh
			return m, func() tea.Msg { return refreshDoneMsg{err: refresh()} }
		case "d":
			if m.controls.toggle != nil {
				m.controls.toggle()
			}
		case "a":
			if m.controls.nextAccount != nil {
				m.lastErr = nil
				if err := m.controls.nextAccount(); err != nil {
					m.lastErr = fmt.Errorf("account switch failed: %w", err)
				}
			}
		}
	}
	return m, nil
}

// View renders the UI
func (m watchModel) View() string {
	if m.done {
		return ""
	}

	var b strings.Builder
	b.WriteString(color.New(color.FgCyan, color.Bold).Sprint("$MEME DAO station") + "\n\n")
	b.WriteString(m.stats.String(m.snap))
	b.WriteString("\n")
	b.WriteString(m.proposals.String(&usecase.ProposalListResult{
		Proposals: m.snap.Proposals,
		Quorum:    m.snap.Quorum,
		Connected: m.snap.Connected,
		Summary:   m.snap.CountByState(),
		Total:     len(m.snap.Proposals),
	}))

	b.WriteString("\n")
	if m.refreshing {
		b.WriteString(color.New(color.Faint).Sprint("Refreshing...") + "\n")
	}
	if m.lastErr != nil {
		b.WriteString(render.FormatError(m.lastErr.Error()) + "\n")
	}
	help := "r: refresh  d: connect/disconnect wallet  "
	if m.controls.nextAccount != nil {
		help += "a: next account  "
	}
	b.WriteString(color.New(color.FgYellow).Sprint(help+"q: quit") + "\n")
	return b.String()
}

// NewWatchCmd creates the live dashboard command
func NewWatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Live staking and governance dashboard",
		Long: `Show statistics and proposals, refreshed on every poll interval and whenever
the wallet connects, disconnects or switches account. With extra keys in
MEMEDAO_ACCOUNTS, the a key switches to the next account.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}
			if app.Config.NonInteractive {
				return fmt.Errorf("watch needs an interactive terminal")
			}

			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()

			snapshots, unsubscribe := app.Aggregator.Subscribe()
			defer unsubscribe()

			runErr := make(chan error, 1)
			go func() { runErr <- app.Aggregator.Run(ctx) }()

			refresh := func() error {
				rctx, rcancel := context.WithTimeout(ctx, time.Minute)
				defer rcancel()
				_, err := app.Aggregator.Refresh(rctx)
				return err
			}

			controls := watchControls{refresh: refresh}
			if app.Config.CanSign() {
				controls.toggle = func() {
					if app.Session.ConnectionState() == domain.Connected {
						app.Session.Disconnect()
						return
					}
					if err := app.Session.Connect(ctx); err != nil {
						app.Progress.Error(err.Error())
					}
				}
			}
			if len(app.Config.AccountKeys) > 0 {
				controls.nextAccount = func() error {
					return app.Session.NextAccount(ctx)
				}
			}

			model := newWatchModel(snapshots, app.Aggregator.Snapshot(), controls, app.Config.TokenDecimals, app.Config.DisplayPlaces)
			if _, err := tea.NewProgram(model, tea.WithContext(ctx), tea.WithAltScreen()).Run(); err != nil && ctx.Err() == nil {
				return fmt.Errorf("dashboard failed: %w", err)
			}

			cancel()
			<-runErr
			return nil
		},
	}
}
