package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/gulati8/SharkShark/internal/core"
)

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestKeyMapperMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name   string
		msg    tea.KeyMsg
		action core.Action
		quit   bool
	}{
		{"w", runeKey("w"), core.ActionUp, false},
		{"arrow down", tea.KeyMsg{Type: tea.KeyDown}, core.ActionDown, false},
		{"a", runeKey("a"), core.ActionLeft, false},
		{"arrow right", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight, false},
		{"p", runeKey("p"), core.ActionPause, false},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionPause, false},
		{"r", runeKey("r"), core.ActionRestart, false},
		{"b", runeKey("b"), core.ActionBack, false},
		{"q", runeKey("q"), core.ActionQuit, true},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"unbound", runeKey("x"), core.ActionNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, quit := km.MapKey(tt.msg)
			if action != tt.action || quit != tt.quit {
				t.Errorf("MapKey(%q) = (%v, %v), expected (%v, %v)", tt.msg.String(), action, quit, tt.action, tt.quit)
			}
		})
	}
}

func TestHeldKeysDecay(t *testing.T) {
	h := NewHeldKeys(200 * time.Millisecond)
	t0 := time.Unix(1000, 0)

	h.Press(core.ActionRight, t0)

	if f := h.Frame(t0.Add(100 * time.Millisecond)); !f.Has(core.ActionRight) {
		t.Error("direction should still be held inside the hold window")
	}
	if f := h.Frame(t0.Add(100 * time.Millisecond)); f.Vector() != (core.Vec2{X: 1}) {
		t.Errorf("Vector() = %+v, expected (1, 0)", f.Vector())
	}
	if f := h.Frame(t0.Add(250 * time.Millisecond)); f.Has(core.ActionRight) {
		t.Error("direction should be released after the hold window")
	}

	// A repeat press extends the hold
	h.Press(core.ActionUp, t0)
	h.Press(core.ActionUp, t0.Add(150*time.Millisecond))
	if f := h.Frame(t0.Add(300 * time.Millisecond)); !f.Has(core.ActionUp) {
		t.Error("repeat press should extend the hold")
	}
}

func TestHeldKeysOppositeCancels(t *testing.T) {
	h := NewHeldKeys(0)
	t0 := time.Unix(1000, 0)

	h.Press(core.ActionLeft, t0)
	h.Press(core.ActionUp, t0)
	h.Press(core.ActionRight, t0)

	f := h.Frame(t0)
	if f.Has(core.ActionLeft) {
		t.Error("pressing right should release left")
	}
	if !f.Has(core.ActionRight) || !f.Has(core.ActionUp) {
		t.Errorf("expected right and up held, got %v", f.Actions)
	}
}

func TestHeldKeysOneShot(t *testing.T) {
	h := NewHeldKeys(0)
	t0 := time.Unix(1000, 0)

	h.Press(core.ActionPause, t0)
	h.Press(core.ActionNone, t0)

	if f := h.Frame(t0); !f.Has(core.ActionPause) || len(f.Actions) != 1 {
		t.Errorf("first frame actions = %v, expected only Pause", f.Actions)
	}
	if f := h.Frame(t0); f.Has(core.ActionPause) {
		t.Error("pause should fire only once")
	}

	h.Press(core.ActionDown, t0)
	h.Press(core.ActionRestart, t0)
	h.Release()
	if f := h.Frame(t0); len(f.Actions) != 0 {
		t.Errorf("Release() should drop everything, got %v", f.Actions)
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	keys := DefaultMenuKeyMap()

	tests := []struct {
		msg  tea.KeyMsg
		want MenuAction
	}{
		{runeKey("k"), MenuActionUp},
		{tea.KeyMsg{Type: tea.KeyDown}, MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyTab}, MenuActionScoreboard},
		{tea.KeyMsg{Type: tea.KeyEsc}, MenuActionBack},
		{runeKey("q"), MenuActionQuit},
		{runeKey("z"), MenuActionNone},
	}

	for _, tt := range tests {
		if got := MapKeyToMenuAction(keys, tt.msg); got != tt.want {
			t.Errorf("MapKeyToMenuAction(%q) = %v, expected %v", tt.msg.String(), got, tt.want)
		}
	}
}

func TestFrameClock(t *testing.T) {
	c := newFrameClock(30)
	t0 := time.Unix(1000, 0)

	if dt := c.Advance(t0); dt != 1.0/30 {
		t.Errorf("first tick dt = %v, expected nominal 1/30", dt)
	}
	if dt := c.Advance(t0.Add(50 * time.Millisecond)); dt != 0.05 {
		t.Errorf("dt = %v, expected 0.05", dt)
	}
	if dt := c.Advance(t0); dt != 1.0/30 {
		t.Errorf("backwards clock dt = %v, expected nominal 1/30", dt)
	}
}
