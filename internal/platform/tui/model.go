package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/beast-arcade/internal/core"
	"github.com/vovakirdan/beast-arcade/internal/games/beast"
	"github.com/vovakirdan/beast-arcade/internal/games/beast/replay"
	"github.com/vovakirdan/beast-arcade/internal/registry"
	"github.com/vovakirdan/beast-arcade/internal/spectate"
	"github.com/vovakirdan/beast-arcade/internal/storage"
)

// statusLines is the row below the game used for prompts and messages.
const statusLines = 1

// copyToClipboard is replaced in tests.
var copyToClipboard = clipboard.WriteAll

var (
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)

// confirmation is a question on the death screen awaiting Y or N.
type confirmation int

const (
	confirmNone confirmation = iota
	confirmRestart
	confirmQuit
)

func (c confirmation) prompt() string {
	switch c {
	case confirmRestart:
		return "Are you sure you want to restart the game?"
	case confirmQuit:
		return "Are you sure you want to quit?"
	}
	return ""
}

// engineGame is implemented by games backed by a beast engine.
type engineGame interface {
	Engine() *beast.Engine
}

// Options wires a game model to the rest of the platform. Every field is
// optional.
type Options struct {
	Store *storage.Store
	Hub   *spectate.Hub
	// User names the player in spectator lists and saved replays.
	User string
	// ReplayPath, when set, receives the replay JSON at the end of every run.
	ReplayPath string
	// Remote disables the clipboard, which lives on the server.
	Remote bool
}

// Model is the Bubble Tea model for playing one game mode.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	opts       Options
	keyMapper  *KeyMapper
	inputFrame core.InputFrame
	gameState  core.GameState
	session    spectate.SessionID

	nameInput  textinput.Model
	naming     bool
	confirm    confirmation
	scoreSaved bool
	record     *replay.Record
	status     string
	statusErr  bool

	standalone bool
	quitting   bool
	backToMenu bool
}

// NewModel creates a game model. The game is reset by Init.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if opts.User == "" {
		opts.User = storage.DefaultName
	}

	ti := textinput.New()
	ti.Placeholder = opts.User
	ti.CharLimit = storage.MaxNameLen
	ti.Width = 30
	ti.Prompt = "Name: "

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-statusLines, 1)),
		config:     cfg,
		opts:       opts,
		keyMapper:  NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
		session:    spectate.SessionID(fmt.Sprintf("%s-%d", opts.User, time.Now().UnixNano())),
		nameInput:  ti,
	}
}

// Init resets the game and starts the poll loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	if m.opts.Hub != nil {
		m.opts.Hub.Open(m.session, m.opts.User, m.game.ID())
	}
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case m.naming:
			return m.handleNameKey(msg)
		case m.confirm != confirmNone:
			return m.handleConfirmKey(msg)
		}
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, max(msg.Height-statusLines, 1))
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	if m.naming {
		var cmd tea.Cmd
		m.nameInput, cmd = m.nameInput.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, isQuit := m.keyMapper.MapKey(msg)
	died := m.gameState.GameOver && !m.gameState.Won
	if isQuit {
		if died && msg.String() != "ctrl+c" {
			m.confirm = confirmQuit
			return m, nil
		}
		return m.quit()
	}

	switch action {
	case core.ActionConfirm:
		if died {
			m.confirm = confirmRestart
			return m, nil
		}
	case core.ActionBack:
		if m.gameState.GameOver || m.gameState.Paused {
			m.backToMenu = true
			m.closeSession()
			if m.standalone {
				return m, tea.Quit
			}
			return m, nil
		}
	case core.ActionEnterName:
		if m.gameState.GameOver && !m.scoreSaved && m.opts.Store != nil {
			m.naming = true
			m.nameInput.SetValue("")
			return m, m.nameInput.Focus()
		}
	case core.ActionCopy:
		if m.gameState.GameOver {
			m.copyReplay()
		}
	}

	m.inputFrame.Set(action)
	return m, nil
}

func (m Model) handleNameKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m.quit()
	case "esc":
		m.naming = false
		m.nameInput.Blur()
		return m, nil
	case "enter":
		m.naming = false
		m.nameInput.Blur()
		m.saveScore(m.nameInput.Value())
		return m, nil
	}

	var cmd tea.Cmd
	m.nameInput, cmd = m.nameInput.Update(msg)
	return m, cmd
}

func (m Model) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m.quit()
	case "y", "Y":
		c := m.confirm
		m.confirm = confirmNone
		if c == confirmQuit {
			return m.quit()
		}
		m.inputFrame.Set(core.ActionConfirm)
	case "n", "N", "esc":
		m.confirm = confirmNone
	}
	return m, nil
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	m.closeSession()
	return m, tea.Quit
}

func (m Model) handleTick() (tea.Model, tea.Cmd) {
	wasOver := m.gameState.GameOver

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()

	if m.gameState.Quit {
		return m.quit()
	}

	// help opened from an end screen returns to it; only a restart starts a
	// new run
	switch {
	case !wasOver && m.gameState.GameOver && m.record == nil:
		m.finishRun()
	case wasOver && !m.gameState.GameOver && !m.gameState.Paused:
		m.scoreSaved = false
		m.record = nil
		m.setStatus("", false)
	}

	m.publish()
	return m, tickCmd(m.config.TickRate)
}

// finishRun builds the replay record of a finished run, verifies ranked
// runs and persists the replay.
func (m *Model) finishRun() {
	eg, ok := m.game.(engineGame)
	if !ok {
		return
	}
	e := eg.Engine()
	rec := replay.NewRecord(m.game.ID(), e.Seed(), e.Deterministic(), m.gameState.Score, e.Logs())
	rec.Name = m.opts.User
	m.record = &rec

	verified := false
	if rec.Deterministic {
		_, err := rec.Verify(beast.Levels())
		verified = err == nil
		if err != nil {
			m.setStatus("Replay failed verification: "+err.Error(), true)
		}
	}

	if m.opts.ReplayPath != "" {
		if err := rec.Save(m.opts.ReplayPath); err != nil {
			m.setStatus(err.Error(), true)
		}
	}

	if m.opts.Store == nil {
		return
	}
	data, err := rec.Encode()
	if err == nil {
		err = m.opts.Store.SaveReplay(storage.ReplayEntry{
			ID:       rec.ID,
			GameID:   rec.Mode,
			Name:     rec.Name,
			Score:    rec.Score,
			Verified: verified,
			Data:     data,
		})
	}
	if err != nil {
		m.setStatus(err.Error(), true)
	}
}

func (m *Model) saveScore(name string) {
	name = storage.CleanName(name)
	if name == storage.DefaultName && m.opts.User != "" {
		name = storage.CleanName(m.opts.User)
	}
	if _, err := m.opts.Store.SaveScore(m.game.ID(), name, m.gameState.Score, m.gameState.Level); err != nil {
		m.setStatus(err.Error(), true)
		return
	}
	m.scoreSaved = true
	m.setStatus(fmt.Sprintf("Saved %d points for %s", m.gameState.Score, name), false)
}

func (m *Model) copyReplay() {
	switch {
	case m.opts.Remote:
		m.setStatus("The clipboard is not available over SSH", true)
		return
	case m.record == nil:
		m.setStatus("No replay for this game", true)
		return
	}
	data, err := m.record.Encode()
	if err == nil {
		err = copyToClipboard(string(data))
	}
	if err != nil {
		m.setStatus("Copy failed: "+err.Error(), true)
		return
	}
	m.setStatus("Replay copied to the clipboard", false)
}

func (m *Model) setStatus(text string, isErr bool) {
	m.status = text
	m.statusErr = isErr
}

func (m *Model) publish() {
	if m.opts.Hub == nil {
		return
	}
	eg, ok := m.game.(engineGame)
	if !ok {
		return
	}
	//nolint:errcheck // Spectators are best effort
	m.opts.Hub.Publish(spectate.NewFrame(m.session, m.opts.User, eg.Engine()))
}

func (m *Model) closeSession() {
	if m.opts.Hub != nil {
		m.opts.Hub.Close(m.session)
	}
}

// View renders the game and the status line.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	var b strings.Builder
	b.WriteString(RenderScreen(m.screen))
	b.WriteString("\n")
	switch {
	case m.naming:
		b.WriteString(m.nameInput.View())
		b.WriteString(statusStyle.Render("  [ENTER] Save  [ESC] Cancel"))
	case m.confirm != confirmNone:
		b.WriteString(m.confirm.prompt())
		b.WriteString(statusStyle.Render("  [Y] Yes  [N] No"))
	case m.status != "" && m.statusErr:
		b.WriteString(errorStyle.Render(m.status))
	case m.status != "":
		b.WriteString(statusStyle.Render(m.status))
	}
	return b.String()
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Record returns the replay of the last finished run, if any.
func (m Model) Record() (replay.Record, bool) {
	if m.record == nil {
		return replay.Record{}, false
	}
	return *m.record, true
}

// Run plays one game in the local terminal until the player quits or
// leaves.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	_, err := RunGame(game, cfg, opts)
	return err
}

// RunGame is Run for menu loops: it reports whether the player went back to
// the menu rather than quitting.
func RunGame(game registry.Game, cfg core.RuntimeConfig, opts Options) (backToMenu bool, err error) {
	model := NewModel(game, cfg, opts)
	model.standalone = true

	p := tea.NewProgram(model, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(Model)
	return ok && m.BackToMenu(), nil
}
