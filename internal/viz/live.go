package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/bonsai/internal/checkpoint"
	"github.com/san-kum/bonsai/internal/config"
	"github.com/san-kum/bonsai/internal/tree"
)

// Ticks a finished tree lingers before the screensaver replants.
const dwellTicks = 90

var (
	canvasStyle = lipgloss.NewStyle().Padding(1, 2)
	statsStyle  = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(lipgloss.Color("240")).
			Padding(1, 2).
			Width(34)
)

type TickMsg time.Time

// Model drives the live growth animation: one engine step per tick, with
// the stats panel and key handling around it.
type Model struct {
	engine *tree.Engine
	cfg    *config.Config
	store  *checkpoint.Store

	theme    Theme
	running  bool
	saved    bool
	showHelp bool
	dwell    int
	warning  string
}

// NewModel builds the live view. store may be nil when checkpointing is
// disabled.
func NewModel(cfg *config.Config, store *checkpoint.Store) (Model, error) {
	engine, err := tree.New(cfg.TreeOptions())
	if err != nil {
		return Model{}, err
	}
	return Model{
		engine:  engine,
		cfg:     cfg,
		store:   store,
		theme:   GetTheme(cfg.Theme),
		running: true,
	}, nil
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.cfg.FPS), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

// Update handles input and paces growth.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r":
			m.replant()
		case "t":
			m.theme = NextTheme(m.theme.Name)
		case "s":
			m.saveCheckpoint()
		case "?":
			m.showHelp = !m.showHelp
		}

	case TickMsg:
		if m.running && !m.engine.Done() {
			m.engine.Grow()
		}
		if m.engine.Done() {
			if !m.saved {
				m.saveCheckpoint()
				m.saved = true
			}
			if m.cfg.Screensaver {
				m.dwell++
				if m.dwell >= dwellTicks {
					m.replant()
				}
			}
		}
		return m, m.tick()
	}
	return m, nil
}

// replant starts a fresh tree with a new time-based seed.
func (m *Model) replant() {
	opts := m.cfg.TreeOptions()
	opts.Seed = 0
	engine, err := tree.New(opts)
	if err != nil {
		// Options were already validated at startup.
		m.warning = err.Error()
		return
	}
	m.engine = engine
	m.saved = false
	m.dwell = 0
	m.running = true
}

func (m *Model) saveCheckpoint() {
	if m.store == nil {
		return
	}
	if err := m.store.Save(m.engine.Seed(), m.engine.Branches()); err != nil {
		m.warning = fmt.Sprintf("warning: checkpoint not saved: %v", err)
	}
}

// View renders the tree alongside the stats panel.
func (m Model) View() string {
	treeView := canvasStyle.Render(Render(
		m.engine.Cells(), m.cfg.Width, m.cfg.Height, m.cfg.Leaves, m.theme))

	label := lipgloss.NewStyle().Foreground(m.theme.Muted).Width(10)
	value := lipgloss.NewStyle().Foreground(m.theme.Text)
	header := lipgloss.NewStyle().Foreground(m.theme.Accent).Bold(true).MarginBottom(1)

	status := "GROWING"
	switch {
	case m.engine.Done():
		status = "DONE"
	case !m.running:
		status = "PAUSED"
	}

	var s strings.Builder
	s.WriteString(header.Render("BONSAI") + "\n")
	s.WriteString(status + "\n\n")
	s.WriteString(label.Render("Seed") + value.Render(fmt.Sprintf("%d", m.engine.Seed())) + "\n")
	s.WriteString(label.Render("Steps") + value.Render(fmt.Sprintf("%d", m.engine.Steps())) + "\n")
	s.WriteString(label.Render("Branches") + value.Render(fmt.Sprintf("%d", m.engine.Branches())) + "\n")
	s.WriteString(label.Render("Alive") + value.Render(fmt.Sprintf("%d", m.engine.Alive())) + "\n")
	s.WriteString(label.Render("Theme") + value.Render(m.theme.Name) + "\n")
	if m.warning != "" {
		s.WriteString("\n" + lipgloss.NewStyle().Foreground(lipgloss.Color("178")).Render(m.warning) + "\n")
	}
	help := lipgloss.NewStyle().Foreground(m.theme.Muted).MarginTop(2)
	s.WriteString(help.Render("SP:Pause R:Replant T:Theme\nS:Save ?:Help Q:Quit"))

	statsView := statsStyle.Render(s.String())
	mainView := lipgloss.JoinHorizontal(lipgloss.Top, treeView, statsView)

	if m.showHelp {
		return helpBox(m.theme) + "\n" + mainView
	}
	return mainView
}

func helpBox(th Theme) string {
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(th.Muted).
		Padding(0, 2)
	return box.Render(strings.Join([]string{
		"Space  - Pause/resume growth",
		"R      - Replant with a fresh seed",
		"T      - Cycle themes",
		"S      - Save seed checkpoint",
		"?      - Toggle this help",
		"Q      - Quit",
	}, "\n"))
}
