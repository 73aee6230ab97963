package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/sol-defense/internal/registry"
	"github.com/vovakirdan/sol-defense/internal/storage"
)

// maxScores caps the flights listed per variant.
const maxScores = 50

const dateLayout = "Jan 02 15:04"

// scoreboardPage is the leaderboard of one variant.
type scoreboardPage struct {
	info   registry.GameInfo
	stats  storage.GameStats
	scores []storage.ScoreEntry
}

// ScoreboardModel is the Bubble Tea model for the high score screen. It
// shows one variant at a time with its flight record above the table.
type ScoreboardModel struct {
	pages     []scoreboardPage
	current   int
	table     table.Model
	help      help.Model
	keys      ScoreboardKeyMap
	width     int
	height    int
	quitting  bool
	goingBack bool
}

// NewScoreboardModel loads every variant's scores from store, which may be
// nil.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		pages:  loadPages(store),
		keys:   DefaultScoreboardKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.help.Width = width
	m.table = newScoreTable(width, height)
	m.showPage()
	return m
}

func loadPages(store *storage.Store) []scoreboardPage {
	games := registry.List()
	pages := make([]scoreboardPage, len(games))

	// The screen is in alt mode, so load errors just leave a page empty.
	var stats map[string]*storage.GameStats
	if store != nil {
		stats, _ = store.GetAllGamesStats()
	}

	for i, g := range games {
		pages[i] = scoreboardPage{info: g, stats: storage.GameStats{GameID: g.ID}}
		if s, ok := stats[g.ID]; ok {
			pages[i].stats = *s
		}
		if store == nil || pages[i].stats.GamesCount == 0 {
			continue
		}
		if scores, err := store.TopScores(g.ID, maxScores); err == nil {
			pages[i].scores = scores
		}
	}
	return pages
}

func newScoreTable(width, height int) table.Model {
	pilot := 12
	if spare := width - 44; spare > pilot {
		pilot = min(spare, 24)
	}
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "#", Width: 4},
			{Title: "Pilot", Width: pilot},
			{Title: "Score", Width: 8},
			{Title: "Level", Width: 5},
			{Title: "Flown", Width: len(dateLayout)},
		}),
		table.WithFocused(true),
		table.WithHeight(max(height-10, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))
	t.SetStyles(s)
	return t
}

// showPage fills the table from the current page. A flight that reached
// the variant's best level is starred.
func (m *ScoreboardModel) showPage() {
	var rows []table.Row
	if page, ok := m.page(); ok {
		rows = make([]table.Row, len(page.scores))
		for i, s := range page.scores {
			level := fmt.Sprintf("%d", s.Level)
			if s.Level == page.stats.BestLevel {
				level += "*"
			}
			rows[i] = table.Row{
				fmt.Sprintf("%d", i+1),
				s.Player,
				fmt.Sprintf("%d", s.Score),
				level,
				s.CreatedAt.Format(dateLayout),
			}
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

func (m ScoreboardModel) page() (scoreboardPage, bool) {
	if len(m.pages) == 0 {
		return scoreboardPage{}, false
	}
	return m.pages[m.current], true
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Next):
			m.turn(1)
			return m, nil
		case key.Matches(msg, m.keys.Prev):
			m.turn(-1)
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.table = newScoreTable(msg.Width, msg.Height)
		m.showPage()
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m *ScoreboardModel) turn(step int) {
	if len(m.pages) == 0 {
		return
	}
	m.current = (m.current + step + len(m.pages)) % len(m.pages)
	m.showPage()
}

var (
	boardTabStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1)
	boardActiveStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57")).Padding(0, 1)
	boardFrameStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
)

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder
	b.WriteString(centerText(menuTitleStyle.Render("H I G H   S C O R E S"), m.width))
	b.WriteString("\n\n")

	tabs := make([]string, len(m.pages))
	for i, p := range m.pages {
		style := boardTabStyle
		if i == m.current {
			style = boardActiveStyle
		}
		tabs[i] = style.Render(p.info.Title)
	}
	b.WriteString(centerText(strings.Join(tabs, " "), m.width))
	b.WriteString("\n\n")

	page, _ := m.page()
	b.WriteString(centerText(menuDimStyle.Render(flightRecord(page.stats)), m.width))
	b.WriteString("\n\n")

	body := m.table.View()
	if len(page.scores) == 0 {
		body = menuDimStyle.Italic(true).Padding(1, 4).Render("No flights logged yet.\nHold the line to set a high score!")
	}
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, boardFrameStyle.Render(body)))
	b.WriteString("\n")
	b.WriteString(menuDimStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// flightRecord summarizes a variant's history on one line.
func flightRecord(s storage.GameStats) string {
	if s.GamesCount == 0 {
		return "Flights 0"
	}
	return fmt.Sprintf("Flights %d   Best %d   Best level %d   Average %.0f   Last %s",
		s.GamesCount, s.HighScore, s.BestLevel, s.AvgScore, s.LastPlayed.Format(dateLayout))
}

// IsGoingBack reports whether the player asked to return to the menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting reports whether the player asked to quit.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the scoreboard screen. It reports whether the player
// wants to go back to the menu rather than quit.
func RunScoreboard(store *storage.Store, width, height int) (goBack bool, err error) {
	final, err := tea.NewProgram(NewScoreboardModel(store, width, height), tea.WithAltScreen()).Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(ScoreboardModel)
	return ok && m.IsGoingBack(), nil
}
