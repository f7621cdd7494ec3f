package tui

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/la0167453260-glitch/AI-Json-EDITOR/pkg/models"
)

type deadlineGenerator struct {
	hadDeadline bool
}

func (g *deadlineGenerator) GenerateRoot(ctx context.Context, description string) (models.Root, error) {
	_, g.hadDeadline = ctx.Deadline()
	return models.Root{}, nil
}

func TestGenerationStateLifecycle(t *testing.T) {
	gen := &fakeGenerator{root: mustRoot(t, `[{},{}]`)}
	gs := NewGenerationState(gen, nil, 0)

	if !gs.Available() || gs.IsGenerating() {
		t.Fatal("new state should be available and idle")
	}

	cmd := gs.StartGeneration("two objects")
	if cmd == nil || !gs.IsGenerating() {
		t.Fatal("StartGeneration should issue a request")
	}
	if gs.StartGeneration("again") != nil {
		t.Error("a second request must be refused while one is outstanding")
	}

	msg := doneMsg(t, cmd)
	if !gs.CompleteGeneration(msg) {
		t.Fatal("current reply should be accepted")
	}
	if gs.IsGenerating() || gs.LastCount != 2 || gs.LastPrompt != "two objects" {
		t.Errorf("state after reply: generating=%v count=%d prompt=%q", gs.IsGenerating(), gs.LastCount, gs.LastPrompt)
	}
	if gs.CompleteGeneration(msg) {
		t.Error("a reply must only settle once")
	}
}

func TestGenerationStateCancel(t *testing.T) {
	gs := NewGenerationState(&fakeGenerator{err: errors.New("late")}, nil, 0)

	cmd := gs.StartGeneration("x")
	gs.CancelGeneration()
	if gs.IsGenerating() {
		t.Error("cancel should clear the in-flight request")
	}
	if gs.CompleteGeneration(doneMsg(t, cmd)) {
		t.Error("reply to an abandoned request should be dropped")
	}
	if gs.LastError != nil {
		t.Error("dropped replies should not record errors")
	}

	if gs.StartGeneration("y") == nil {
		t.Error("a new request should be allowed after cancel")
	}
}

func TestGenerationStateError(t *testing.T) {
	gs := NewGenerationState(&fakeGenerator{err: errors.New("boom")}, nil, 0)
	if !gs.CompleteGeneration(doneMsg(t, gs.StartGeneration("x"))) {
		t.Fatal("reply should be accepted")
	}
	if gs.LastError == nil || gs.LastError.Error() != "boom" {
		t.Errorf("LastError = %v", gs.LastError)
	}
}

func TestGenerationStateTimeout(t *testing.T) {
	gen := &deadlineGenerator{}
	gs := NewGenerationState(gen, nil, time.Minute)
	doneMsg(t, gs.StartGeneration("x"))
	if !gen.hadDeadline {
		t.Error("a timeout should bound the request context")
	}

	gen = &deadlineGenerator{}
	gs = NewGenerationState(gen, nil, 0)
	doneMsg(t, gs.StartGeneration("x"))
	if gen.hadDeadline {
		t.Error("no timeout means no deadline")
	}
}

func TestGenerationStateUnavailable(t *testing.T) {
	gs := NewGenerationState(nil, models.ErrConfiguration, 0)
	if gs.Available() {
		t.Error("state without a generator is unavailable")
	}
	if !errors.Is(gs.SetupErr, models.ErrConfiguration) {
		t.Errorf("SetupErr = %v", gs.SetupErr)
	}
}
