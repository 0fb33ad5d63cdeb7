package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fatih/color"
	"github.com/memedao/memedao-cli/internal/adapters/progress"
	"github.com/memedao/memedao-cli/internal/app"
	appconfig "github.com/memedao/memedao-cli/internal/config"
	"github.com/memedao/memedao-cli/internal/domain"
	"github.com/memedao/memedao-cli/internal/domain/config"
	"github.com/memedao/memedao-cli/internal/usecase"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	color.NoColor = true
}

func runRoot(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	root := NewRootCmd()
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func TestRootCommands(t *testing.T) {
	root := NewRootCmd()
	names := map[string]bool{}
	for _, c := range root.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"stats", "proposals", "proposal", "stake", "unstake", "claim", "propose", "vote", "tokenomics", "watch", "wallet", "version"} {
		assert.True(t, names[want], "missing command %s", want)
	}
	for _, flag := range []string{"debug", "non-interactive", "json", "output", "yes", "network", "rpc-url", "tokenomics-file"} {
		assert.NotNil(t, root.PersistentFlags().Lookup(flag), "missing flag %s", flag)
	}
}

func TestVersionCmd(t *testing.T) {
	appconfig.SetBuildFlags("1.2.3", "abc123", "2025-06-01")
	t.Cleanup(func() { appconfig.SetBuildFlags("dev", "unknown", "unknown") })

	out, _, err := runRoot(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "memedao version 1.2.3 (commit abc123, built 2025-06-01)\n", out)
}

func TestTokenomicsInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "tokenomics.toml")

	out, _, err := runRoot(t, "tokenomics", "init", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote "+path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "DAO Treasury")
	assert.Contains(t, string(data), "[[allocation]]")

	_, _, err = runRoot(t, "tokenomics", "init", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestParseIndex(t *testing.T) {
	tests := []struct {
		raw     string
		want    uint64
		wantErr bool
	}{
		{"3", 3, false},
		{"#12", 12, false},
		{" 7 ", 7, false},
		{"0", 0, true},
		{"-1", 0, true},
		{"abc", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := parseIndex(tt.raw)
			if tt.wantErr {
				require.ErrorIs(t, err, domain.ErrInvalidProposalIndex)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewSink(t *testing.T) {
	v := viper.New()
	v.Set("output", "json")
	assert.IsType(t, &progress.NopSink{}, newSink(v))

	v = viper.New()
	v.Set("output", "table")
	v.Set("non_interactive", true)
	assert.IsType(t, &progress.NopSink{}, newSink(v))
}

func TestReportActionError(t *testing.T) {
	newApp := func(output string) *app.App {
		return &app.App{
			Config:   &config.RuntimeConfig{Output: output},
			Progress: usecase.NopProgress{},
		}
	}

	t.Run("validation is a warning", func(t *testing.T) {
		var stderr bytes.Buffer
		cmd := NewStakeCmd()
		cmd.SetErr(&stderr)

		err := reportActionError(cmd, newApp("table"), domain.Failed(domain.ActionStake, "Please connect wallet first."), domain.ErrNotConnected)

		var reported *ReportedError
		require.True(t, errors.As(err, &reported))
		assert.ErrorIs(t, err, domain.ErrNotConnected)
		assert.Contains(t, stderr.String(), "⚠️  Please connect wallet first.")
	})

	t.Run("action failure is an error", func(t *testing.T) {
		var stderr bytes.Buffer
		cmd := NewClaimCmd()
		cmd.SetErr(&stderr)

		actionErr := &domain.ActionError{Action: domain.ActionClaimRewards, Err: domain.ErrTransactionReverted}
		result := domain.Failed(domain.ActionClaimRewards, "The claim rewards transaction was reverted.")
		err := reportActionError(cmd, newApp("table"), result, actionErr)

		assert.ErrorIs(t, err, domain.ErrActionFailed)
		assert.Contains(t, stderr.String(), "❌ The claim rewards transaction was reverted.")
	})

	t.Run("structured output writes the result", func(t *testing.T) {
		var stdout bytes.Buffer
		cmd := NewClaimCmd()
		cmd.SetOut(&stdout)

		err := reportActionError(cmd, newApp("json"), domain.Failed(domain.ActionClaimRewards, "nope"), domain.ErrNotConnected)
		require.Error(t, err)
		assert.Contains(t, stdout.String(), `"action": "claim rewards"`)
		assert.Contains(t, stdout.String(), `"success": false`)
	})
}

func TestWatchModel(t *testing.T) {
	snapshots := make(chan *domain.StatisticsSnapshot, 1)
	refreshed := 0
	toggled := 0
	switched := 0
	m := newWatchModel(snapshots, domain.EmptySnapshot(), watchControls{
		refresh:     func() error { refreshed++; return errors.New("rpc down") },
		toggle:      func() { toggled++ },
		nextAccount: func() error { switched++; return nil },
	}, domain.TokenDecimals, 2)

	assert.Contains(t, m.View(), "No wallet connected")
	assert.Contains(t, m.View(), "No proposals yet")

	next := domain.EmptySnapshot()
	next.Proposals = []*domain.Proposal{{Index: 1, Status: domain.StatusActive}}
	model, cmd := m.Update(snapshotMsg{snap: next})
	m = model.(watchModel)
	assert.NotNil(t, cmd)
	assert.Contains(t, m.View(), "Proposal #1")

	model, cmd = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")})
	m = model.(watchModel)
	require.NotNil(t, cmd)
	assert.True(t, m.refreshing)
	assert.Contains(t, m.View(), "Refreshing")

	model, _ = m.Update(cmd())
	m = model.(watchModel)
	assert.Equal(t, 1, refreshed)
	assert.False(t, m.refreshing)
	assert.Contains(t, m.View(), "Refresh failed: rpc down")

	model, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("d")})
	m = model.(watchModel)
	assert.Equal(t, 1, toggled)

	assert.Contains(t, m.View(), "a: next account")
	model, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("a")})
	m = model.(watchModel)
	assert.Equal(t, 1, switched)
	assert.NotContains(t, m.View(), "Refresh failed")

	model, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	m = model.(watchModel)
	assert.True(t, m.done)
	assert.Empty(t, m.View())
}
