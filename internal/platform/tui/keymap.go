package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/sol-defense/internal/core"
)

// DefaultHoldTicks is how long a movement or fire key stays down after the
// last key event. Terminals report no key-up, so key repeats keep it alive.
const DefaultHoldTicks = 9

// GameKeyMap defines the in-game key bindings.
type GameKeyMap struct {
	Up           key.Binding
	Down         key.Binding
	Left         key.Binding
	Right        key.Binding
	Fire         key.Binding
	Shield       key.Binding
	ToggleScroll key.Binding
	Confirm      key.Binding
	Back         key.Binding
	Pause        key.Binding
	Quit         key.Binding
	SpawnSaucer  key.Binding
	SpawnSpider  key.Binding
	SpawnWalker  key.Binding
}

// DefaultGameKeyMap returns the default bindings.
func DefaultGameKeyMap() GameKeyMap {
	return GameKeyMap{
		Up:           key.NewBinding(key.WithKeys("up", "w"), key.WithHelp("↑/w", "up")),
		Down:         key.NewBinding(key.WithKeys("down", "s"), key.WithHelp("↓/s", "down")),
		Left:         key.NewBinding(key.WithKeys("left", "a"), key.WithHelp("←/a", "left")),
		Right:        key.NewBinding(key.WithKeys("right", "d"), key.WithHelp("→/d", "right")),
		Fire:         key.NewBinding(key.WithKeys(" ", "j"), key.WithHelp("space/j", "fire")),
		Shield:       key.NewBinding(key.WithKeys("x", "k"), key.WithHelp("x/k", "shield")),
		ToggleScroll: key.NewBinding(key.WithKeys("f9"), key.WithHelp("f9", "scroll")),
		Confirm:      key.NewBinding(key.WithKeys("enter")),
		Back:         key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		Pause:        key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "pause")),
		Quit:         key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		SpawnSaucer:  key.NewBinding(key.WithKeys("b")),
		SpawnSpider:  key.NewBinding(key.WithKeys("n")),
		SpawnWalker:  key.NewBinding(key.WithKeys("m")),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k GameKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Fire, k.Shield, k.Pause, k.ToggleScroll, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k GameKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Fire, k.Shield},
		{k.Pause, k.ToggleScroll, k.Back, k.Quit},
	}
}

// Action translates a key message to a game action.
func (k GameKeyMap) Action(msg tea.KeyMsg) core.Action {
	bindings := []struct {
		b key.Binding
		a core.Action
	}{
		{k.Quit, core.ActionQuit},
		{k.Up, core.ActionUp},
		{k.Down, core.ActionDown},
		{k.Left, core.ActionLeft},
		{k.Right, core.ActionRight},
		{k.Fire, core.ActionFire},
		{k.Shield, core.ActionShield},
		{k.ToggleScroll, core.ActionToggleScroll},
		{k.Confirm, core.ActionConfirm},
		{k.Back, core.ActionBack},
		{k.Pause, core.ActionPause},
		{k.SpawnSaucer, core.ActionSpawnSaucer},
		{k.SpawnSpider, core.ActionSpawnSpider},
		{k.SpawnWalker, core.ActionSpawnWalker},
	}
	for _, kb := range bindings {
		if key.Matches(msg, kb.b) {
			return kb.a
		}
	}
	return core.ActionNone
}

// continuous reports whether an action is meant to be held down.
func continuous(a core.Action) bool {
	switch a {
	case core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight,
		core.ActionFire, core.ActionShield:
		return true
	}
	return false
}

func opposite(a core.Action) core.Action {
	switch a {
	case core.ActionUp:
		return core.ActionDown
	case core.ActionDown:
		return core.ActionUp
	case core.ActionLeft:
		return core.ActionRight
	case core.ActionRight:
		return core.ActionLeft
	}
	return core.ActionNone
}

// HeldKeys latches key presses into per-tick input frames. Continuous
// actions stay down for a window of ticks after each press; everything else
// is down for exactly one tick.
type HeldKeys struct {
	until  map[core.Action]uint64
	window uint64
}

// NewHeldKeys creates a latch with the given hold window in ticks.
func NewHeldKeys(window uint64) *HeldKeys {
	if window == 0 {
		window = DefaultHoldTicks
	}
	return &HeldKeys{until: make(map[core.Action]uint64), window: window}
}

// Press records a key event that arrived before tick runs.
func (h *HeldKeys) Press(a core.Action, tick uint64) {
	if a == core.ActionNone {
		return
	}
	if !continuous(a) {
		h.until[a] = tick + 1
		return
	}
	// Reversing direction must not wait for the old latch to lapse.
	delete(h.until, opposite(a))
	h.until[a] = tick + h.window
}

// Frame returns the actions down during tick and forgets expired ones.
func (h *HeldKeys) Frame(tick uint64) core.InputFrame {
	frame := core.NewInputFrame()
	for a, until := range h.until {
		if until <= tick {
			delete(h.until, a)
			continue
		}
		frame.Set(a)
	}
	return frame
}

// Reset releases every key.
func (h *HeldKeys) Reset() {
	for a := range h.until {
		delete(h.until, a)
	}
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionScoreboard
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k":
		return MenuActionUp
	case "s", "down", "j":
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}
	return MenuActionNone
}

// ScoreboardKeyMap defines the scoreboard key bindings.
type ScoreboardKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Next key.Binding
	Prev key.Binding
	Back key.Binding
	Quit key.Binding
}

// DefaultScoreboardKeyMap returns the default scoreboard bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up:   key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "scroll")),
		Down: key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "scroll")),
		Next: key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("tab/→", "next variant")),
		Prev: key.NewBinding(key.WithKeys("shift+tab", "left", "h"), key.WithHelp("←", "prev variant")),
		Back: key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc", "back")),
		Quit: key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Prev, k.Up, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.Next, k.Prev}, {k.Back, k.Quit}}
}
