package registry

import (
	"testing"

	"github.com/vovakirdan/beast-arcade/internal/core"
)

type stubGame struct{ id string }

func (g stubGame) ID() string                           { return g.id }
func (g stubGame) Title() string                        { return "Stub " + g.id }
func (g stubGame) Reset(core.RuntimeConfig)             {}
func (g stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g stubGame) Render(*core.Screen)                  {}
func (g stubGame) State() core.GameState                { return core.GameState{} }

func TestRegisterAndCreate(t *testing.T) {
	Register("zz_stub", func() Game { return stubGame{id: "zz_stub"} })
	Register("aa_stub", func() Game { return stubGame{id: "aa_stub"} })

	tests := []struct {
		id     string
		exists bool
		title  string
	}{
		{"zz_stub", true, "Stub zz_stub"},
		{"aa_stub", true, "Stub aa_stub"},
		{"missing", false, "missing"},
	}
	for _, tt := range tests {
		if got := Exists(tt.id); got != tt.exists {
			t.Errorf("Exists(%q) = %v, want %v", tt.id, got, tt.exists)
		}
		if got := Title(tt.id); got != tt.title {
			t.Errorf("Title(%q) = %q, want %q", tt.id, got, tt.title)
		}
		g, err := Create(tt.id)
		if tt.exists && (err != nil || g.ID() != tt.id) {
			t.Errorf("Create(%q) = %v, %v", tt.id, g, err)
		}
		if !tt.exists && err == nil {
			t.Errorf("Create(%q) succeeded for an unknown game", tt.id)
		}
	}

	list := List()
	for i := 1; i < len(list); i++ {
		if list[i-1].ID >= list[i].ID {
			t.Fatalf("List not sorted: %v", list)
		}
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("dup_stub", func() Game { return stubGame{id: "dup_stub"} })
	defer func() {
		if recover() == nil {
			t.Error("expected panic on duplicate registration")
		}
	}()
	Register("dup_stub", func() Game { return stubGame{id: "dup_stub"} })
}
