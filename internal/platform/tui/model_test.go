package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/ghostmaze/internal/core"
)

// recordingGame remembers every frame it was stepped with.
type recordingGame struct {
	resets int
	frames []core.InputFrame
	over   bool
}

func (g *recordingGame) ID() string    { return "recording" }
func (g *recordingGame) Title() string { return "Recording" }
func (g *recordingGame) Reset(core.RuntimeConfig) {
	g.resets++
}
func (g *recordingGame) Step(in core.InputFrame) core.StepResult {
	cp := core.NewInputFrame()
	for _, a := range in.Actions {
		cp.Set(a)
	}
	g.frames = append(g.frames, cp)
	return core.StepResult{State: core.GameState{Score: len(g.frames), GameOver: g.over}}
}
func (g *recordingGame) Render(dst *core.Screen) {
	dst.DrawText(0, 0, "HELLO")
}
func (g *recordingGame) State() core.GameState { return core.GameState{} }

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newTestModel(g *recordingGame) Model {
	return NewModel(g, core.RuntimeConfig{ScreenW: 40, ScreenH: 10, Seed: 1, TickInterval: time.Millisecond}, nil)
}

func TestNewModelResetsGame(t *testing.T) {
	g := &recordingGame{}
	newTestModel(g)
	if g.resets != 1 {
		t.Errorf("Reset called %d times, expected 1", g.resets)
	}
}

func TestKeysReachGameOnTick(t *testing.T) {
	g := &recordingGame{}
	var m tea.Model = newTestModel(g)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	m, _ = m.Update(runes("w"))
	if len(g.frames) != 0 {
		t.Fatal("keys alone should not step the game")
	}

	m, cmd := m.Update(TickMsg(time.Now()))
	if cmd == nil {
		t.Error("a tick should schedule the next tick")
	}
	if len(g.frames) != 1 {
		t.Fatalf("game stepped %d times, expected 1", len(g.frames))
	}
	if got := g.frames[0].LastDirection(); got != core.DirUp {
		t.Errorf("LastDirection() = %v, expected Up", got)
	}
	if !g.frames[0].Has(core.ActionLeft) {
		t.Error("earlier key presses should stay in the frame")
	}

	m, _ = m.Update(TickMsg(time.Now()))
	if len(g.frames[1].Actions) != 0 {
		t.Errorf("frame should be cleared after a tick, got %v", g.frames[1].Actions)
	}
	if m.(Model).State().Score != 2 {
		t.Errorf("model should track the game state, score %d", m.(Model).State().Score)
	}
}

func TestQuitKey(t *testing.T) {
	for _, msg := range []tea.KeyMsg{runes("q"), {Type: tea.KeyCtrlC}} {
		m, cmd := newTestModel(&recordingGame{}).Update(msg)
		if cmd == nil {
			t.Fatalf("%s should return a command", msg)
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Errorf("%s should quit", msg)
		}
		if m.View() != "" {
			t.Errorf("%s: quitting model should render nothing", msg)
		}
	}
}

func TestResizeKeepsGame(t *testing.T) {
	g := &recordingGame{}
	m, _ := newTestModel(g).Update(tea.WindowSizeMsg{Width: 100, Height: 30})

	if g.resets != 1 {
		t.Error("resizing should not restart the game")
	}
	if w := m.(Model).screen.Width(); w != 100 {
		t.Errorf("screen width = %d, expected 100", w)
	}
	if h := m.(Model).screen.Height(); h != 30-helpHeight {
		t.Errorf("screen height = %d, expected %d", h, 30-helpHeight)
	}
}

func TestViewShowsGameAndHelp(t *testing.T) {
	view := newTestModel(&recordingGame{}).View()
	if !strings.Contains(view, "HELLO") {
		t.Error("view should contain the rendered game")
	}
	if !strings.Contains(view, "pause") {
		t.Error("view should contain the key help")
	}
}
