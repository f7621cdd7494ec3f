package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/la0167453260-glitch/AI-Json-EDITOR/pkg/generation"
	"github.com/la0167453260-glitch/AI-Json-EDITOR/pkg/models"
)

// RootGenerator produces a replacement document from a description.
type RootGenerator interface {
	GenerateRoot(ctx context.Context, description string) (models.Root, error)
}

// generationDoneMsg carries the reply to one generation request.
type generationDoneMsg struct {
	ticket generation.Ticket
	root   models.Root
	err    error
}

// GenerationState tracks AI generation requests. SetupErr explains why
// Generator is nil, e.g. a missing API key.
type GenerationState struct {
	Generator  RootGenerator
	SetupErr   error
	Timeout    time.Duration
	Spinner    spinner.Model
	LastPrompt string
	LastError  error
	LastCount  int
	sequencer  generation.Sequencer
}

// NewGenerationState creates a generation state around gen.
func NewGenerationState(gen RootGenerator, setupErr error, timeout time.Duration) *GenerationState {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorActive))

	return &GenerationState{
		Generator: gen,
		SetupErr:  setupErr,
		Timeout:   timeout,
		Spinner:   s,
	}
}

// Available reports whether a generator is configured.
func (gs *GenerationState) Available() bool {
	return gs.Generator != nil
}

// IsGenerating returns whether a request is outstanding
func (gs *GenerationState) IsGenerating() bool {
	return gs.sequencer.InFlight()
}

// StartGeneration issues a request for description. It returns nil when a
// request is already outstanding.
func (gs *GenerationState) StartGeneration(description string) tea.Cmd {
	ticket, ok := gs.sequencer.Begin()
	if !ok {
		return nil
	}
	gs.LastPrompt = description
	gs.LastError = nil

	gen := gs.Generator
	timeout := gs.Timeout
	request := func() tea.Msg {
		ctx := context.Background()
		if timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, timeout)
			defer cancel()
		}
		root, err := gen.GenerateRoot(ctx, description)
		return generationDoneMsg{ticket: ticket, root: root, err: err}
	}
	return tea.Batch(gs.Spinner.Tick, request)
}

// CompleteGeneration settles a reply. It reports false when the reply
// belongs to an abandoned request and must be dropped.
func (gs *GenerationState) CompleteGeneration(msg generationDoneMsg) bool {
	if !gs.sequencer.Settle(msg.ticket) {
		return false
	}
	if msg.err != nil {
		gs.LastError = msg.err
		return true
	}
	gs.LastCount = len(msg.root)
	return true
}

// CancelGeneration abandons the outstanding request.
func (gs *GenerationState) CancelGeneration() {
	gs.sequencer.Abandon()
}

// UpdateSpinner advances the spinner while a request is outstanding.
func (gs *GenerationState) UpdateSpinner(msg spinner.TickMsg) tea.Cmd {
	if !gs.IsGenerating() {
		return nil
	}
	var cmd tea.Cmd
	gs.Spinner, cmd = gs.Spinner.Update(msg)
	return cmd
}
