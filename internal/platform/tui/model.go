package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/sol-defense/internal/core"
	"github.com/vovakirdan/sol-defense/internal/platform"
	"github.com/vovakirdan/sol-defense/internal/registry"
	"github.com/vovakirdan/sol-defense/internal/settings"
	"github.com/vovakirdan/sol-defense/internal/storage"
)

// Model is the Bubble Tea model for running a game in the terminal.
type Model struct {
	game      registry.Game
	screen    *core.Screen
	recorder  *platform.Recorder
	config    core.RuntimeConfig
	keys      GameKeyMap
	held      *HeldKeys
	help      help.Model
	tick      uint64
	gameState core.GameState
	quitting  bool // ctrl+c: leave everything
	done      bool // the game asked to exit
}

// NewModel creates a new Bubble Tea model for the given game. store and
// prefs may be nil.
func NewModel(game registry.Game, store *storage.Store, prefs *settings.Manager, cfg core.RuntimeConfig, player string) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		game:     game,
		screen:   core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-1, 1)),
		recorder: platform.NewRecorder(game, store, prefs, player),
		config:   cfg,
		keys:     DefaultGameKeyMap(),
		held:     NewHeldKeys(DefaultHoldTicks),
		help:     h,
	}
}

// Init resets the game and starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, max(msg.Height-1, 1))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	case "ctrl+s":
		m.saveScreenshot()
		return m, nil
	}

	m.held.Press(m.keys.Action(msg), m.tick)
	return m, nil
}

func (m Model) handleTick() (tea.Model, tea.Cmd) {
	frame := m.held.Frame(m.tick)
	m.tick++

	result := m.game.Step(frame)
	m.gameState = result.State

	m.recorder.Observe(m.gameState)

	if m.gameState.Exit {
		m.done = true
		return m, tea.Quit
	}
	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot saves the current screen to a text file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".arcade", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.done {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Done reports whether the game asked to exit.
func (m Model) Done() bool { return m.done }

// IsQuitting reports whether the user pressed ctrl+c.
func (m Model) IsQuitting() bool { return m.quitting }

// State returns the last reported game state.
func (m Model) State() core.GameState { return m.gameState }

// Run starts the Bubble Tea program with the given game.
func Run(game registry.Game, store *storage.Store, prefs *settings.Manager, cfg core.RuntimeConfig, player string) error {
	model := NewModel(game, store, prefs, cfg, player)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
