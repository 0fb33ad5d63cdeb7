package interactive

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/manifoldco/promptui"
	"github.com/memedao/memedao-cli/internal/domain"
	"github.com/memedao/memedao-cli/internal/domain/config"
	"github.com/memedao/memedao-cli/internal/usecase"
	"github.com/sahilm/fuzzy"
)

// ErrNonInteractive is returned when a prompt is needed in non-interactive mode
var ErrNonInteractive = errors.New("interactive selection not available in non-interactive mode")

// SelectorAdapter prompts on the terminal
type SelectorAdapter struct {
	config *config.RuntimeConfig
}

// NewSelectorAdapter creates a new selector adapter
func NewSelectorAdapter(cfg *config.RuntimeConfig) *SelectorAdapter {
	return &SelectorAdapter{config: cfg}
}

// SelectProposal picks one proposal with a searchable list
func (s *SelectorAdapter) SelectProposal(ctx context.Context, proposals []*domain.Proposal, prompt string) (*domain.Proposal, error) {
	if len(proposals) == 0 {
		return nil, fmt.Errorf("no proposals to choose from")
	}
	if len(proposals) == 1 {
		return proposals[0], nil
	}
	if s.config.NonInteractive {
		return nil, ErrNonInteractive
	}

	options := formatProposalOptions(proposals)

	templates := &promptui.SelectTemplates{
		Label:    "{{ . }}",
		Active:   "▸ {{ . | cyan }}",
		Inactive: "  {{ . | faint }}",
		Selected: "✓ {{ . | green }}",
		Help:     color.New(color.FgYellow).Sprint("Use arrow keys to navigate, / to search, Enter to select"),
	}

	promptSelect := promptui.Select{
		Label:     prompt,
		Items:     options,
		Templates: templates,
		Size:      10,
		Searcher:  createFuzzySearchFunc(searchKeys(proposals)),
	}

	index, _, err := promptSelect.Run()
	if err != nil {
		return nil, fmt.Errorf("selection cancelled: %w", err)
	}
	return proposals[index], nil
}

// Confirm asks a yes/no question; --yes answers it up front
func (s *SelectorAdapter) Confirm(ctx context.Context, prompt string) (bool, error) {
	if s.config.AssumeYes {
		return true, nil
	}
	if s.config.NonInteractive {
		return false, fmt.Errorf("%w: pass --yes to confirm", ErrNonInteractive)
	}

	confirm := promptui.Prompt{
		Label:     prompt,
		IsConfirm: true,
	}
	if _, err := confirm.Run(); err != nil {
		if errors.Is(err, promptui.ErrAbort) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// formatProposalOptions renders "#3 Fund meme contest [Active] (community)"
func formatProposalOptions(proposals []*domain.Proposal) []string {
	options := make([]string, len(proposals))
	for i, p := range proposals {
		title := color.New(color.FgWhite, color.Bold).Sprint(p.Title())
		state := color.New(color.FgYellow).Sprintf("[%s]", p.State().Label())
		option := fmt.Sprintf("#%d %s %s", p.Index, title, state)
		if p.Metadata != nil && p.Metadata.Category != "" {
			option += " " + color.New(color.FgBlue).Sprintf("(%s)", p.Metadata.Category)
		}
		if p.HasCurrentUserVoted {
			option += " " + color.New(color.Faint).Sprint("voted")
		}
		options[i] = option
	}
	return options
}

// searchKeys are the uncolored strings matched against search input
func searchKeys(proposals []*domain.Proposal) []string {
	keys := make([]string, len(proposals))
	for i, p := range proposals {
		keys[i] = fmt.Sprintf("#%d %s %s", p.Index, p.Title(), p.State().Label())
		if p.Metadata != nil {
			keys[i] += " " + p.Metadata.Category
		}
	}
	return keys
}

// createFuzzySearchFunc creates a fuzzy search function for promptui
func createFuzzySearchFunc(items []string) func(input string, index int) bool {
	return func(input string, index int) bool {
		if input == "" {
			return true
		}

		input = strings.ToLower(input)
		item := strings.ToLower(items[index])

		if strings.Contains(item, input) {
			return true
		}

		return len(fuzzy.Find(input, []string{item})) > 0
	}
}

var _ usecase.ProposalSelector = (*SelectorAdapter)(nil)
