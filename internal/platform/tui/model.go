package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/gulati8/SharkShark/internal/config"
	"github.com/gulati8/SharkShark/internal/core"
	"github.com/gulati8/SharkShark/internal/registry"
	"github.com/gulati8/SharkShark/internal/replay"
	"github.com/gulati8/SharkShark/internal/storage"
)

// statusDuration is how long a status message replaces the bottom row.
const statusDuration = 3 * time.Second

// replayer is implemented by games that can record their runs.
type replayer interface {
	EnableRecording()
	Replay() (replay.Replay, bool)
}

// presetSwitcher is implemented by games whose difficulty can change
// between runs.
type presetSwitcher interface {
	Preset() string
	SetPreset(preset string) bool
}

// GameModel is the Bubble Tea model that runs one game.
type GameModel struct {
	game      registry.Game
	screen    *core.Screen
	store     *storage.Store
	config    core.RuntimeConfig
	keys      *KeyMapper
	held      *HeldKeys
	clock     frameClock
	help      help.Model
	gameState core.GameState
	replayDir string

	gen         int  // tag of this model's tick chain
	inSession   bool // b returns to the session menu
	status      string
	statusUntil time.Time

	quitting   bool
	backToMenu bool
}

// NewGameModel creates a new Bubble Tea model for the given game.
func NewGameModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) GameModel {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	return GameModel{
		game:   game,
		screen: core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:  store,
		config: cfg,
		keys:   NewKeyMapper(),
		held:   NewHeldKeys(DefaultHoldWindow),
		clock:  newFrameClock(cfg.TickRate),
		help:   help.New(),
	}
}

// WithReplayDir saves a replay of every finished run into dir.
// Games that cannot record ignore it.
func (m GameModel) WithReplayDir(dir string) GameModel {
	if r, ok := m.game.(replayer); ok && dir != "" {
		r.EnableRecording()
		m.replayDir = dir
	}
	return m
}

// Init initializes the model and starts the game.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate, m.gen)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		// The arena is scaled to the screen, so a resize keeps the run.
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		if msg.Gen != m.gen {
			return m, nil
		}
		return m.handleTick(msg.Time)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Keys().Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	if key.Matches(msg, m.keys.Keys().Difficulty) {
		m.cycleDifficulty()
		return m, nil
	}

	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	if action == core.ActionBack {
		if m.inSession && (m.gameState.GameOver || m.gameState.Paused || m.gameState.Idle) {
			m.backToMenu = true
		}
		return m, nil
	}

	m.held.Press(action, time.Now())
	return m, nil
}

// handleTick advances the game by the time since the previous tick.
func (m GameModel) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := m.clock.Advance(now)
	frame := m.held.Frame(now)

	result := m.game.Step(frame, dt)
	m.gameState = result.State

	if result.Finished != nil {
		m.saveRun(*result.Finished)
	}

	return m, tickCmd(m.config.TickRate, m.gen)
}

// cycleDifficulty moves to the next built-in preset. Only games that are
// between runs accept the change.
func (m *GameModel) cycleDifficulty() {
	sw, ok := m.game.(presetSwitcher)
	if !ok || !(m.gameState.GameOver || m.gameState.Idle) {
		return
	}
	names := config.DefaultProfiles().Names()
	next := names[0]
	for i, name := range names {
		if name == sw.Preset() {
			next = names[(i+1)%len(names)]
			break
		}
	}
	if !sw.SetPreset(next) {
		m.setStatus("difficulty not changed: " + next)
		return
	}
	m.gameState = m.game.State()
}

// saveRun stores a finished run and its replay. Failures only show a status.
func (m *GameModel) saveRun(sum core.RunSummary) {
	if m.store != nil && sum.Score > 0 {
		if _, err := m.store.SaveRun(m.game.ID(), sum); err != nil {
			m.setStatus(fmt.Sprintf("score not saved: %v", err))
		}
	}

	if m.replayDir == "" {
		return
	}
	r, ok := m.game.(replayer)
	if !ok {
		return
	}
	rec, ok := r.Replay()
	if !ok {
		return
	}
	if err := os.MkdirAll(m.replayDir, 0o755); err != nil {
		m.setStatus(fmt.Sprintf("replay not saved: %v", err))
		return
	}
	path := filepath.Join(m.replayDir, fmt.Sprintf("%s_%s.yaml", m.game.ID(), time.Now().Format("20060102_150405")))
	if err := replay.Save(path, rec); err != nil {
		m.setStatus(fmt.Sprintf("replay not saved: %v", err))
		return
	}
	m.setStatus("replay saved: " + path)
}

// saveScreenshot saves the current screen to a text file.
func (m *GameModel) saveScreenshot() {
	m.screen.Clear()
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.setStatus("screenshot failed: no home directory")
		return
	}
	dir := filepath.Join(home, ".sharkshark", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.setStatus(fmt.Sprintf("screenshot failed: %v", err))
		return
	}

	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.setStatus(fmt.Sprintf("screenshot failed: %v", err))
		return
	}
	m.setStatus("screenshot saved: " + path)
}

func (m *GameModel) setStatus(msg string) {
	m.status = msg
	m.statusUntil = time.Now().Add(statusDuration)
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	m.game.Render(m.screen)
	view := RenderScreen(m.screen)

	var bottom string
	switch {
	case m.status != "" && time.Now().Before(m.statusUntil):
		bottom = lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Render(m.status)
	case m.gameState.Paused:
		bottom = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Render(m.help.ShortHelpView(m.keys.Keys().ShortHelp()))
	default:
		return view
	}
	return replaceLastLine(view, bottom)
}

// replaceLastLine swaps the bottom row of a rendered screen.
func replaceLastLine(view, line string) string {
	i := strings.LastIndexByte(view, '\n')
	if i < 0 {
		return line
	}
	return view[:i+1] + line
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// State returns the last reported game state.
func (m GameModel) State() core.GameState {
	return m.gameState
}

// Run starts the Bubble Tea program for a single game.
// A non-empty replayDir saves a replay of every finished run.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, replayDir string) error {
	model := NewGameModel(game, store, cfg).WithReplayDir(replayDir)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
