package registry

import (
	"testing"

	"github.com/vovakirdan/mazequest/internal/core"
)

// stubGame is a minimal Game implementation for registry tests.
type stubGame struct {
	id    string
	title string
}

func (g *stubGame) ID() string                           { return g.id }
func (g *stubGame) Title() string                        { return g.title }
func (g *stubGame) Reset(core.RuntimeConfig)             {}
func (g *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *stubGame) Render(*core.Screen)                  {}
func (g *stubGame) State() core.GameState                { return core.GameState{} }

func TestRegisterAndCreate(t *testing.T) {
	Register("stub_a", func() Game { return &stubGame{id: "stub_a", title: "Stub A"} })

	if !Exists("stub_a") {
		t.Error("Exists() should report registered game")
	}

	g, err := Create("stub_a")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if g.ID() != "stub_a" {
		t.Errorf("Created game has wrong ID: %q", g.ID())
	}

	// Each Create returns a fresh instance
	g2, _ := Create("stub_a")
	if g == g2 {
		t.Error("Create() should return a new instance each call")
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("no_such_game"); err == nil {
		t.Error("Create() with unknown ID should fail")
	}
	if Exists("no_such_game") {
		t.Error("Exists() should be false for unknown ID")
	}
}

func TestListSortedWithTitles(t *testing.T) {
	Register("stub_z", func() Game { return &stubGame{id: "stub_z", title: "Stub Z"} })
	Register("stub_b", func() Game { return &stubGame{id: "stub_b", title: "Stub B"} })

	games := List()
	if len(games) < 2 {
		t.Fatalf("Expected at least 2 games, got %d", len(games))
	}

	for i := 1; i < len(games); i++ {
		if games[i-1].ID > games[i].ID {
			t.Errorf("List() not sorted: %q before %q", games[i-1].ID, games[i].ID)
		}
	}

	found := false
	for _, g := range games {
		if g.ID == "stub_b" && g.Title == "Stub B" {
			found = true
		}
	}
	if !found {
		t.Error("List() missing registered game with its title")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Register() with duplicate ID should panic")
		}
	}()

	Register("stub_dup", func() Game { return &stubGame{id: "stub_dup", title: "Dup"} })
	Register("stub_dup", func() Game { return &stubGame{id: "stub_dup", title: "Dup"} })
}
