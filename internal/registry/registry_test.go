package registry

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

type stubGame struct{ id string }

func (g stubGame) ID() string                      { return g.id }
func (g stubGame) Title() string                   { return "Stub " + g.id }
func (g stubGame) Reset(core.RuntimeConfig)        {}
func (g stubGame) Step(core.Input) core.StepResult { return core.StepResult{} }
func (g stubGame) Render(*core.Screen)             {}
func (g stubGame) State() core.GameState           { return core.GameState{} }

func TestRegisterAndCreate(t *testing.T) {
	Register("stub_b", func() Game { return stubGame{id: "stub_b"} })
	Register("stub_a", func() Game { return stubGame{id: "stub_a"} })

	if !Exists("stub_a") {
		t.Fatal("stub_a should exist after Register")
	}

	g, err := Create("stub_b")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if g.ID() != "stub_b" {
		t.Errorf("Create() returned %q, expected stub_b", g.ID())
	}

	// List is sorted by ID
	var seen []string
	for _, info := range List() {
		if info.ID == "stub_a" || info.ID == "stub_b" {
			seen = append(seen, info.ID)
			if info.Title != "Stub "+info.ID {
				t.Errorf("title for %s = %q", info.ID, info.Title)
			}
		}
	}
	if len(seen) != 2 || seen[0] != "stub_a" || seen[1] != "stub_b" {
		t.Errorf("List() order = %v, expected [stub_a stub_b]", seen)
	}
}

func TestCreateUnknown(t *testing.T) {
	_, err := Create("no-such-mode")
	if !errors.Is(err, ErrUnknownMode) {
		t.Errorf("Create() error = %v, expected ErrUnknownMode", err)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("stub_dup", func() Game { return stubGame{id: "stub_dup"} })

	defer func() {
		if recover() == nil {
			t.Error("registering a duplicate id should panic")
		}
	}()
	Register("stub_dup", func() Game { return stubGame{id: "stub_dup"} })
}
