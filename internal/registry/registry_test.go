package registry

import (
	"testing"

	"github.com/vovakirdan/leob-arcade/internal/core"
)

type stubGame struct{ id string }

func (g stubGame) ID() string                           { return g.id }
func (g stubGame) Title() string                        { return "Stub " + g.id }
func (g stubGame) Reset(core.RuntimeConfig)             {}
func (g stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g stubGame) Render(*core.Screen)                  {}
func (g stubGame) State() core.GameState                { return core.GameState{} }

func TestRegisterAndCreate(t *testing.T) {
	Register("stub-b", func() Game { return stubGame{id: "stub-b"} })
	Register("stub-a", func() Game { return stubGame{id: "stub-a"} })

	if !Exists("stub-a") {
		t.Fatal("Exists(stub-a) = false")
	}

	g, err := Create("stub-a")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if g.ID() != "stub-a" {
		t.Errorf("Create(stub-a).ID() = %q", g.ID())
	}

	var ids []string
	for _, info := range List() {
		ids = append(ids, info.ID)
		if info.ID == "stub-b" && info.Title != "Stub stub-b" {
			t.Errorf("title = %q, want %q", info.Title, "Stub stub-b")
		}
	}
	ia, ib := indexOf(ids, "stub-a"), indexOf(ids, "stub-b")
	if ia < 0 || ib < 0 || ia > ib {
		t.Errorf("List() ids = %v, want stub-a before stub-b", ids)
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("no-such-game"); err == nil {
		t.Error("Create(unknown) error = nil")
	}
	if Exists("no-such-game") {
		t.Error("Exists(unknown) = true")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("stub-dup", func() Game { return stubGame{id: "stub-dup"} })
	defer func() {
		if recover() == nil {
			t.Error("duplicate Register did not panic")
		}
	}()
	Register("stub-dup", func() Game { return stubGame{id: "stub-dup"} })
}

func indexOf(ids []string, id string) int {
	for i, v := range ids {
		if v == id {
			return i
		}
	}
	return -1
}
