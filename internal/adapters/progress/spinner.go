package progress

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/memedao/memedao-cli/internal/usecase"
)

// SpinnerProgress shows the stages of a write action behind a spinner:
// approve, publish, submit, confirm and refresh.
type SpinnerProgress struct {
	mu      sync.Mutex
	spinner *spinner.Spinner
	out     io.Writer
	stages  []stageInfo
}

type stageInfo struct {
	Stage     string
	StartTime time.Time
	EndTime   time.Time
	Message   string
}

// NewSpinnerProgress creates a spinner writing to stderr
func NewSpinnerProgress() *SpinnerProgress {
	return newSpinnerProgress(os.Stderr)
}

func newSpinnerProgress(out io.Writer) *SpinnerProgress {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(out))
	s.HideCursor = false
	return &SpinnerProgress{spinner: s, out: out}
}

// OnProgress records the stage and updates the spinner suffix
func (p *SpinnerProgress) OnProgress(ctx context.Context, event usecase.ProgressEvent) {
	p.mu.Lock()
	defer p.mu.Unlock()

	now := time.Now()
	if n := len(p.stages); n > 0 && p.stages[n-1].Stage != event.Stage && p.stages[n-1].EndTime.IsZero() {
		p.stages[n-1].EndTime = now
	}
	if n := len(p.stages); n == 0 || p.stages[n-1].Stage != event.Stage {
		p.stages = append(p.stages, stageInfo{Stage: event.Stage, StartTime: now})
	}
	p.stages[len(p.stages)-1].Message = event.Message

	if event.Stage == usecase.StageCompleted || !event.Spinner {
		if p.spinner.Active() {
			p.spinner.Stop()
		}
		return
	}

	p.spinner.Suffix = " " + p.display()
	if !p.spinner.Active() {
		p.spinner.Start()
	}
}

// Info prints a message above the spinner
func (p *SpinnerProgress) Info(message string) {
	p.println(color.New(color.FgCyan), message)
}

// Error prints an error above the spinner
func (p *SpinnerProgress) Error(message string) {
	p.println(color.New(color.FgRed), message)
}

func (p *SpinnerProgress) println(c *color.Color, message string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	wasActive := p.spinner.Active()
	if wasActive {
		p.spinner.Stop()
	}
	c.Fprintln(p.out, message)
	if wasActive {
		p.spinner.Start()
	}
}

// Stages returns the recorded stage names in order
func (p *SpinnerProgress) Stages() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	names := make([]string, len(p.stages))
	for i, s := range p.stages {
		names[i] = s.Stage
	}
	return names
}

// display renders "✓ Approving (1.2s) → ● Confirming (3s) waiting for 0xab…"
func (p *SpinnerProgress) display() string {
	var parts []string
	for i, stage := range p.stages {
		name := stageLabel(stage.Stage)
		if name == "" {
			continue
		}
		running := i == len(p.stages)-1 && stage.EndTime.IsZero()
		if running {
			part := fmt.Sprintf("● %s (%s)", color.New(color.FgYellow).Sprint(name), time.Since(stage.StartTime).Round(time.Second))
			if stage.Message != "" {
				part += " " + stage.Message
			}
			parts = append(parts, part)
			continue
		}
		parts = append(parts, fmt.Sprintf("✓ %s (%s)", color.New(color.FgGreen).Sprint(name), stage.EndTime.Sub(stage.StartTime).Round(time.Millisecond)))
	}
	return strings.Join(parts, " → ")
}

func stageLabel(stage string) string {
	switch stage {
	case usecase.StageApproving:
		return "Approving"
	case usecase.StagePublishing:
		return "Publishing"
	case usecase.StageSubmitting:
		return "Submitting"
	case usecase.StageConfirming:
		return "Confirming"
	case usecase.StageRefreshing:
		return "Refreshing"
	}
	return ""
}

var _ usecase.ProgressSink = (*SpinnerProgress)(nil)
