package shell

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/DimaEnotoff/friendlyclp/internal/config"
)

// Styles groups the lipgloss styles of the interactive shell.
type Styles struct {
	Banner lipgloss.Style
	Prompt lipgloss.Style
	Hint   lipgloss.Style
}

// DefaultStyles returns the shell's standard look.
func DefaultStyles() Styles {
	return Styles{
		Banner: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		Prompt: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10")),
		Hint:   lipgloss.NewStyle().Faint(true),
	}
}

// Model is the bubbletea state of the interactive shell: a scrolling
// transcript viewport above a single-line input.
type Model struct {
	dispatcher *Dispatcher
	styles     Styles

	input    textinput.Model
	viewport viewport.Model

	transcript []string
	limit      int
	prompt     string
	ready      bool
}

// NewModel builds the interactive shell over d.
func NewModel(d *Dispatcher, cfg config.ShellConfig) Model {
	input := textinput.New()
	input.Placeholder = "type a command, or 'help'"
	input.Prompt = cfg.Prompt
	input.Focus()

	return Model{
		dispatcher: d,
		styles:     DefaultStyles(),
		input:      input,
		limit:      cfg.TranscriptLimit,
		prompt:     cfg.Prompt,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		headerHeight := 2 // banner + blank line
		footerHeight := 2 // blank line + input
		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-headerHeight-footerHeight)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - headerHeight - footerHeight
		}
		m.refreshViewport()
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			line := m.input.Value()
			m.input.Reset()
			if strings.TrimSpace(line) == "" {
				return m, nil
			}
			if isExit(line) {
				return m, tea.Quit
			}
			m.append(m.prompt + line)
			m.append(m.dispatcher.Dispatch(line))
			m.refreshViewport()
			return m, nil
		}
	}

	var inputCmd, viewportCmd tea.Cmd
	m.input, inputCmd = m.input.Update(msg)
	m.viewport, viewportCmd = m.viewport.Update(msg)
	return m, tea.Batch(inputCmd, viewportCmd)
}

func (m *Model) append(text string) {
	m.transcript = append(m.transcript, text)
	if len(m.transcript) > m.limit {
		m.transcript = m.transcript[len(m.transcript)-m.limit:]
	}
}

func (m *Model) refreshViewport() {
	if !m.ready {
		return
	}
	m.viewport.SetContent(strings.Join(m.transcript, "\n"))
	m.viewport.GotoBottom()
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "loading..."
	}
	banner := m.styles.Banner.Render("FriendlyCLP shell") + "  " +
		m.styles.Hint.Render("'help' for commands, 'exit' to leave")
	return fmt.Sprintf("%s\n\n%s\n\n%s", banner, m.viewport.View(), m.input.View())
}

// Run starts the interactive shell and blocks until the user leaves.
func Run(d *Dispatcher, cfg config.ShellConfig) error {
	program := tea.NewProgram(NewModel(d, cfg), tea.WithAltScreen())
	_, err := program.Run()
	return err
}
