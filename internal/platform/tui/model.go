package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/purple-shift/internal/config"
	"github.com/vovakirdan/purple-shift/internal/core"
	"github.com/vovakirdan/purple-shift/internal/game"
	"github.com/vovakirdan/purple-shift/internal/save"
	"github.com/vovakirdan/purple-shift/internal/storage"
)

// maxFrameDelta caps the elapsed time handed to one engine frame. A laptop
// resuming from sleep should not grant hours of offline income.
const maxFrameDelta = 5 * time.Second

// Model is the Bubble Tea model running the idle game.
type Model struct {
	ctrl     *game.Controller
	bal      config.Balance
	cfg      core.RuntimeConfig
	keys     *KeyMapper
	savePath string
	store    *storage.Store // nil when history recording is unavailable
	logger   *log.Logger

	pending  []core.Command // queued commands, one consumed per frame
	lastTick time.Time
	lastSave time.Time
	started  bool
	quitting bool
}

// NewModel creates a Bubble Tea model around a restored engine.
func NewModel(ctrl *game.Controller, bal config.Balance, cfg core.RuntimeConfig, savePath string, store *storage.Store, logger *log.Logger) Model {
	return Model{
		ctrl:     ctrl,
		bal:      bal,
		cfg:      cfg,
		keys:     NewKeyMapper(),
		savePath: savePath,
		store:    store,
		logger:   logger,
	}
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.cfg.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.cfg.ScreenW = msg.Width
		m.cfg.ScreenH = msg.Height
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey queues the command mapped from a key press. Commands apply one
// per frame so a burst of input cannot skip the per-frame ordering contract.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	cmd, isQuit := m.keys.MapKey(msg, m.ctrl.MetaOpen())
	if isQuit {
		m.finalSave()
		m.quitting = true
		return m, tea.Quit
	}
	if cmd.Kind != core.CmdNone {
		m.pending = append(m.pending, cmd)
	}
	return m, nil
}

// handleTick advances the engine by the elapsed wall time since the previous
// frame and runs the autosave cadence.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if !m.started {
		m.started = true
		m.lastTick = now
		m.lastSave = now
	}

	elapsed := now.Sub(m.lastTick)
	if elapsed < 0 {
		elapsed = 0
	}
	if elapsed > maxFrameDelta {
		elapsed = maxFrameDelta
	}
	m.lastTick = now

	var cmd core.Command
	if len(m.pending) > 0 {
		cmd = m.pending[0]
		m.pending = m.pending[1:]
	}

	m.ctrl.Advance(now, elapsed.Seconds(), cmd)
	m.recordJournal()

	if now.Sub(m.lastSave).Seconds() >= m.bal.Autosave.IntervalSec {
		if err := save.Write(m.savePath, m.ctrl.Economy().Durable()); err != nil {
			// Non-fatal: the next autosave cycle retries.
			m.logger.Warn("autosave failed", "path", m.savePath, "err", err)
		}
		m.lastSave = now
	}

	return m, tickCmd(m.cfg.TickRate)
}

// recordJournal drains engine records into the history store, best-effort.
func (m *Model) recordJournal() {
	records := m.ctrl.DrainJournal()
	if m.store == nil || len(records) == 0 {
		return
	}
	for _, r := range records {
		var err error
		switch r.Kind {
		case game.RecordBossResolved:
			_, err = m.store.RecordBoss(storage.BossResult{
				Goal:     r.Goal,
				Progress: r.Progress,
				Won:      r.Won,
				Amount:   r.Amount,
			})
		case game.RecordPrestige:
			_, err = m.store.RecordRun(storage.Run{
				Tokens:   r.Tokens,
				Salary:   r.Salary,
				KPI:      r.KPI,
				BossWins: m.ctrl.Economy().BossWins(),
				Clicks:   m.ctrl.Economy().Clicks(),
			})
		}
		if err != nil {
			m.logger.Warn("history record failed", "err", err)
		}
	}
}

// finalSave runs the shutdown save synchronously.
func (m *Model) finalSave() {
	if err := save.Write(m.savePath, m.ctrl.Economy().Durable()); err != nil {
		m.logger.Error("final save failed", "path", m.savePath, "err", err)
	}
}

// View renders the current frame.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return renderGame(m.ctrl.Snapshot(), m.cfg.ScreenW, m.cfg.ScreenH)
}

// Run starts the Bubble Tea program with the given model.
func Run(m Model) error {
	p := tea.NewProgram(
		m,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
