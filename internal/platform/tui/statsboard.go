package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/purple-shift/internal/storage"
)

// maxRows caps how much history the board loads.
const maxRows = 100

// Stats board tabs.
const (
	tabRuns = iota
	tabInspections
	tabCount
)

var tabTitles = [tabCount]string{"Prestige runs", "Inspections"}

// StatsKeyMap defines the key bindings for the stats board.
type StatsKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	NextTab key.Binding
	PrevTab key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k StatsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextTab, k.PrevTab, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k StatsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.NextTab, k.PrevTab, k.Quit},
	}
}

// DefaultStatsKeyMap returns default key bindings.
func DefaultStatsKeyMap() StatsKeyMap {
	return StatsKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextTab: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next tab"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev tab"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// StatsModel is the Bubble Tea model for the stats screen.
type StatsModel struct {
	store    *storage.Store
	totals   storage.Totals
	runs     []storage.Run
	bosses   []storage.BossResult
	tab      int
	table    table.Model
	help     help.Model
	keys     StatsKeyMap
	width    int
	height   int
	quitting bool
}

// NewStatsModel creates a new stats model. History and totals are loaded
// eagerly; a read failure just leaves the corresponding tab empty.
func NewStatsModel(store *storage.Store, width, height int) StatsModel {
	h := help.New()
	h.ShowAll = false

	m := StatsModel{
		store:  store,
		keys:   DefaultStatsKeyMap(),
		help:   h,
		width:  width,
		height: height,
	}

	if store != nil {
		if t, err := store.GetTotals(); err == nil {
			m.totals = *t
		}
		m.runs, _ = store.RecentRuns(maxRows)
		m.bosses, _ = store.RecentBossResults(maxRows)
	}

	m.table = m.createTable()
	m.updateTableRows()

	return m
}

// createTable creates a new table for the active tab.
func (m *StatsModel) createTable() table.Model {
	var columns []table.Column
	switch m.tab {
	case tabRuns:
		columns = []table.Column{
			{Title: "#", Width: 4},
			{Title: "Tokens", Width: 8},
			{Title: "Salary", Width: 12},
			{Title: "KPI", Width: 5},
			{Title: "Won", Width: 5},
			{Title: "Clicks", Width: 8},
			{Title: "Date", Width: 14},
		}
	case tabInspections:
		columns = []table.Column{
			{Title: "#", Width: 4},
			{Title: "Result", Width: 8},
			{Title: "Goal", Width: 8},
			{Title: "Packed", Width: 8},
			{Title: "Amount", Width: 8},
			{Title: "Date", Width: 14},
		}
	}

	height := m.height - 10 // header, totals, tabs, help
	if height < 3 {
		height = 3
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// updateTableRows fills the table for the active tab.
func (m *StatsModel) updateTableRows() {
	var rows []table.Row
	switch m.tab {
	case tabRuns:
		rows = make([]table.Row, len(m.runs))
		for i, r := range m.runs {
			rows[i] = table.Row{
				fmt.Sprintf("%d", i+1),
				fmt.Sprintf("%d", r.Tokens),
				fmtFloat(r.Salary),
				fmt.Sprintf("%d", r.KPI),
				fmt.Sprintf("%d", r.BossWins),
				fmt.Sprintf("%d", r.Clicks),
				r.CreatedAt.Format("Jan 02 15:04"),
			}
		}
	case tabInspections:
		rows = make([]table.Row, len(m.bosses))
		for i, r := range m.bosses {
			result := "failed"
			if r.Won {
				result = "passed"
			}
			rows[i] = table.Row{
				fmt.Sprintf("%d", i+1),
				result,
				fmt.Sprintf("%.0f", r.Goal),
				fmt.Sprintf("%.0f", r.Progress),
				fmt.Sprintf("%.0f", r.Amount),
				r.CreatedAt.Format("Jan 02 15:04"),
			}
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the stats model.
func (m StatsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the stats board.
func (m StatsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextTab):
			m.tab = (m.tab + 1) % tabCount
			m.table = m.createTable()
			m.updateTableRows()
			return m, nil

		case key.Matches(msg, m.keys.PrevTab):
			m.tab--
			if m.tab < 0 {
				m.tab = tabCount - 1
			}
			m.table = m.createTable()
			m.updateTableRows()
			return m, nil

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the stats board.
func (m StatsModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)
	b.WriteString(titleStyle.Render("SHIFT HISTORY"))
	b.WriteString("\n\n")

	b.WriteString(m.renderTotals())
	b.WriteString("\n\n")

	b.WriteString(m.renderTabs())
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(tableStyle.Render(m.renderTableContent()))

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderTotals renders the aggregate line above the tabs.
func (m StatsModel) renderTotals() string {
	style := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	return style.Render(fmt.Sprintf(
		"Runs: %d | Tokens earned: %d | Best run: %d | Inspections passed: %d/%d",
		m.totals.Runs, m.totals.TokensEarned, m.totals.BestTokens,
		m.totals.BossWon, m.totals.BossAttempts,
	))
}

// renderTabs renders the tab bar.
func (m StatsModel) renderTabs() string {
	tabStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Padding(0, 1)
	activeTabStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Padding(0, 1)

	tabs := make([]string, tabCount)
	for i, title := range tabTitles {
		if i == m.tab {
			tabs[i] = activeTabStyle.Render(title)
		} else {
			tabs[i] = tabStyle.Render(title)
		}
	}
	return strings.Join(tabs, " ")
}

// renderTableContent renders the table or an empty message.
func (m StatsModel) renderTableContent() string {
	empty := len(m.runs) == 0
	if m.tab == tabInspections {
		empty = len(m.bosses) == 0
	}
	if empty {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		return emptyStyle.Render("Nothing recorded yet.\nFinish a shift to fill the history!")
	}
	return m.table.View()
}

// RunStats runs the stats screen until the user quits.
func RunStats(store *storage.Store, width, height int) error {
	p := tea.NewProgram(
		NewStatsModel(store, width, height),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
