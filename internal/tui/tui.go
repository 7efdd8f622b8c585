// Package tui is the interactive shell around the engine: a scrolling
// transcript, a command input, and a state sidebar.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jsredmond/zork1-sub000/internal/engine"
)

type sessionState int

const (
	statePlaying sessionState = iota
	stateError
)

type model struct {
	state     sessionState
	session   *engine.Session
	saveDir   string
	textInput textinput.Model
	viewport  viewport.Model
	err       error
	gameLog   string
	width     int
	height    int
}

var (
	userStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#EEEEEE")).
			Background(lipgloss.Color("#5F5F87")).
			Bold(true).
			PaddingLeft(1)

	gameStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			Italic(true)

	stateStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(lipgloss.Color("#3C3C3C")).
			PaddingLeft(2).
			Foreground(lipgloss.Color("#AAAAAA"))

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFA500")).
			Bold(true).
			Underline(true)
)

// NewModel builds the TUI over an already-wired session.
func NewModel(sess *engine.Session, saveDir string) model {
	ti := textinput.New()
	ti.Placeholder = "What do you do?"
	ti.Focus()
	ti.CharLimit = 156
	ti.Width = 40

	return model{
		state:     statePlaying,
		session:   sess,
		saveDir:   saveDir,
		textInput: ti,
		gameLog:   sess.Execute("look") + "\n\n",
	}
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit

		case tea.KeyEnter:
			if m.state != statePlaying {
				return m, nil
			}
			line := m.textInput.Value()
			if line == "" {
				return m, nil
			}
			m.textInput.Reset()

			if outcome, quit, handled := m.slashCommand(line); handled {
				if quit {
					return m, tea.Quit
				}
				m.appendTurn(line, outcome)
				return m, nil
			}

			outcome := m.session.Execute(line)
			m.appendTurn(line, outcome)
			if m.session.Quit {
				return m, tea.Quit
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		logWidth := int(float64(msg.Width) * 0.75)
		if m.viewport.Width == 0 {
			m.viewport = viewport.New(logWidth, msg.Height-6)
		} else {
			m.viewport.Width = logWidth
			m.viewport.Height = msg.Height - 6
		}
		m.viewport.SetContent(m.gameLog)
	}

	if m.state == statePlaying {
		m.textInput, cmd = m.textInput.Update(msg)
		return m, cmd
	}

	return m, nil
}

// slashCommand handles the out-of-game commands: /quit, /save, /restore.
func (m *model) slashCommand(line string) (outcome string, quit, handled bool) {
	if !strings.HasPrefix(line, "/") {
		return "", false, false
	}
	fields := strings.Fields(line)
	name := "current"
	if len(fields) > 1 {
		name = fields[1]
	}
	switch fields[0] {
	case "/quit":
		return "", true, true
	case "/save":
		if err := m.session.Save(m.saveDir, name); err != nil {
			return fmt.Sprintf("Save failed: %v", err), false, true
		}
		return fmt.Sprintf("Saved as %q.", name), false, true
	case "/restore":
		if err := m.session.Restore(m.saveDir, name); err != nil {
			return fmt.Sprintf("Restore failed: %v", err), false, true
		}
		return fmt.Sprintf("Restored %q.", name), false, true
	default:
		return fmt.Sprintf("Unknown command %s.", fields[0]), false, true
	}
}

func (m *model) appendTurn(line, outcome string) {
	logWidth := m.viewport.Width
	if logWidth == 0 {
		logWidth = 80
	}
	styledLine := userStyle.Width(logWidth).Render("> " + line)
	styledOutcome := gameStyle.Width(logWidth).Render(outcome)
	m.gameLog += styledLine + "\n" + styledOutcome + "\n\n"
	m.viewport.SetContent(m.gameLog)
	m.viewport.GotoBottom()
}

func (m model) View() string {
	var s string

	switch m.state {
	case statePlaying:
		logView := m.viewport.View()
		stateView := m.renderState()

		mainView := lipgloss.JoinHorizontal(lipgloss.Top,
			logView,
			stateView,
		)

		help := helpStyle.Render("Commands: /save, /restore, /quit, or just type what you want to do.")

		s = lipgloss.JoinVertical(lipgloss.Left,
			mainView,
			"\n"+m.textInput.View(),
			"\n"+help,
		)

	case stateError:
		s = fmt.Sprintf("\n  Error: %v\n\nPress Esc to quit.", m.err)
	}

	return "\n" + s + "\n"
}

func (m model) renderState() string {
	if m.session == nil {
		return ""
	}

	room := m.session.World.CurrentRoom()
	location := titleStyle.Render("LOCATION") + "\n"
	if room != nil {
		location += room.Name
	}
	location += "\n\n"

	turns := titleStyle.Render("TURNS") + "\n" + fmt.Sprintf("%d", m.session.Turns) + "\n\n"

	invTitle := titleStyle.Render("INVENTORY") + "\n"
	inventory := ""
	held := m.session.World.Held()
	if len(held) == 0 {
		inventory = "(empty)"
	} else {
		for _, o := range held {
			inventory += "- " + o.Name + "\n"
		}
	}

	content := location + turns + invTitle + inventory

	stateWidth := int(float64(m.width) * 0.23)
	return stateStyle.Width(stateWidth).Height(m.viewport.Height).Render(content)
}

// Run starts the interactive shell and blocks until the player quits.
func Run(sess *engine.Session, saveDir string) error {
	p := tea.NewProgram(NewModel(sess, saveDir), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
