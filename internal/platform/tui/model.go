package tui

import (
	"io"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/rom100main/pac-minator/internal/round"
	"github.com/rom100main/pac-minator/internal/storage"
)

// Model is the Bubble Tea model for one game session.
type Model struct {
	round  *round.Round
	store  *storage.Store
	logger *log.Logger
	name   string

	keys     KeyMap
	help     help.Model
	tickRate int

	width    int
	height   int
	quitting bool
	// recordedLevel is the last level whose result was saved.
	recordedLevel int
}

// NewModel wraps r. store may be nil to disable persistence.
func NewModel(r *round.Round, store *storage.Store, logger *log.Logger, name string) Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if name == "" {
		name = "Player"
	}
	return Model{
		round:    r,
		store:    store,
		logger:   logger,
		name:     name,
		keys:     DefaultKeyMap(),
		help:     help.New(),
		tickRate: r.Config().Loop.TickRate,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.tickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		a := m.keys.Action(msg)
		if a == round.ActionQuit {
			m.recordRound()
			m.quitting = true
			return m, tea.Quit
		}
		m.round.Apply(a)
		return m, nil

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		m.round.Step()
		if !m.round.Running() && m.recordedLevel != m.round.Level() {
			m.recordRound()
		}
		return m, tickCmd(m.tickRate)
	}
	return m, nil
}

// recordRound saves the current round once per level.
func (m *Model) recordRound() {
	level := m.round.Level()
	if m.recordedLevel == level {
		return
	}
	m.recordedLevel = level
	score := m.round.Score()
	if m.store == nil || score == 0 {
		return
	}
	rec := storage.Record{
		Name:  m.name,
		Score: score,
		Level: level,
		Won:   m.round.Status() == round.StatusWon,
	}
	if _, err := m.store.SaveScore(rec); err != nil {
		m.logger.Warn("could not save score", "error", err)
	}
}

// Run starts the Bubble Tea program and blocks until the player quits.
func Run(r *round.Round, store *storage.Store, logger *log.Logger, name string) error {
	p := tea.NewProgram(NewModel(r, store, logger, name), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
