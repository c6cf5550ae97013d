package localtest

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/preston-bernstein/team-roster-bot/internal/interactions"
	"github.com/preston-bernstein/team-roster-bot/internal/screens"
	"github.com/preston-bernstein/team-roster-bot/internal/views"
)

const (
	promptText  = "local> "
	welcomeText = "Local test mode. Type a message (try /teams). Press Ctrl+C to exit."
	menuHint    = "Use ↑/↓ to move, Enter to select, Esc to cancel."
	maxLog      = 40
)

type mode int

const (
	modePrompt mode = iota
	modeMenu
	modeModal
)

var (
	cursorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true)
	hintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	noticeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
)

// Model is the interactive terminal session.
type Model struct {
	ctx      context.Context
	commands Commands
	router   Router

	mode   mode
	input  textinput.Model
	log    []string
	view   views.View
	items  []item
	cursor int
	modal  views.Modal
}

// NewModel builds a prompt-mode session.
func NewModel(ctx context.Context, c Commands, r Router) Model {
	in := textinput.New()
	in.Prompt = promptText
	in.Focus()
	return Model{
		ctx:      ctx,
		commands: c,
		router:   r,
		input:    in,
		log:      []string{welcomeText},
	}
}

// Run starts the interactive session on in/out and blocks until the user quits.
func Run(ctx context.Context, c Commands, r Router, in io.Reader, out io.Writer) error {
	p := tea.NewProgram(NewModel(ctx, c, r), tea.WithContext(ctx), tea.WithInput(in), tea.WithOutput(out))
	_, err := p.Run()
	if err != nil && ctx.Err() != nil {
		return nil
	}
	return err
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	if key.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	switch m.mode {
	case modeMenu:
		return m.updateMenu(key)
	case modeModal:
		return m.updateModal(key)
	}
	return m.updatePrompt(key)
}

func (m Model) updatePrompt(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Type != tea.KeyEnter {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(key)
		return m, cmd
	}
	line := strings.TrimSpace(m.input.Value())
	m.input.Reset()
	if line == "" {
		return m, nil
	}
	m.print(promptText + line)

	if slash, ok := manageCommand(line); ok {
		m.open(m.commands.Slash(m.ctx, slash))
		return m, nil
	}
	reply, ok := m.commands.Text(m.ctx, line)
	if !ok || reply == "" {
		reply = NoResponse
	}
	m.print(reply)
	return m, nil
}

func (m Model) updateMenu(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.Type {
	case tea.KeyUp:
		m.cursor = (m.cursor - 1 + len(m.items)) % len(m.items)
	case tea.KeyDown:
		m.cursor = (m.cursor + 1) % len(m.items)
	case tea.KeyEsc:
		m.toPrompt()
	case tea.KeyEnter:
		ev, err := m.items[m.cursor].event()
		if err != nil {
			m.print(views.GenericError)
			return m, nil
		}
		m.dispatch(ev)
	}
	return m, nil
}

func (m Model) updateModal(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.Type {
	case tea.KeyEsc:
		m.mode = modeMenu
		m.resetInput()
		return m, nil
	case tea.KeyEnter:
		ev, err := screens.Parse(m.modal.ID)
		if err != nil {
			m.print(views.GenericError)
			m.mode = modeMenu
			return m, nil
		}
		ev.Fields = map[string]string{m.modal.Input.ID: m.input.Value()}
		ev.MessageID = localMessageID
		m.mode = modeMenu
		m.resetInput()
		m.dispatch(ev)
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(key)
	return m, cmd
}

// dispatch sends ev through the router and applies the response to the menu.
func (m *Model) dispatch(ev screens.Event) {
	resp, err := m.router.Handle(m.ctx, ev)
	if err != nil {
		m.print(views.GenericError)
	}
	switch resp.Kind {
	case interactions.Update, interactions.Patch:
		if resp.Notice != "" {
			m.print(noticeStyle.Render(resp.Notice))
		}
		m.open(resp.View)
	case interactions.Close:
		m.print("(closed)")
		m.toPrompt()
	case interactions.ShowModal:
		m.modal = resp.Modal
		m.mode = modeModal
		m.input.Prompt = resp.Modal.Input.Label + ": "
		m.input.SetValue(resp.Modal.Input.Value)
		m.input.CursorEnd()
	case interactions.Ephemeral:
		m.print(noticeStyle.Render(plain(resp.View)))
	}
}

// open shows v as a menu, or prints it when it has nothing to select.
func (m *Model) open(v views.View) {
	items := menuItems(v)
	if len(items) == 0 {
		m.print(plain(v))
		m.toPrompt()
		return
	}
	m.view = v
	m.items = items
	m.cursor = 0
	m.mode = modeMenu
}

func (m *Model) toPrompt() {
	m.mode = modePrompt
	m.view = views.View{}
	m.items = nil
	m.cursor = 0
	m.resetInput()
}

func (m *Model) resetInput() {
	m.input.Prompt = promptText
	m.input.Reset()
}

func (m *Model) print(s string) {
	m.log = append(m.log, s)
	if len(m.log) > maxLog {
		m.log = m.log[len(m.log)-maxLog:]
	}
}

func (m Model) View() string {
	var b strings.Builder
	for _, line := range m.log {
		b.WriteString(line)
		b.WriteByte('\n')
	}

	switch m.mode {
	case modeMenu:
		b.WriteByte('\n')
		b.WriteString(titleStyle(m.view.Color).Render(m.view.Title))
		b.WriteByte('\n')
		if m.view.Description != "" {
			b.WriteString(m.view.Description)
			b.WriteByte('\n')
		}
		b.WriteByte('\n')
		for i, it := range m.items {
			if i == m.cursor {
				b.WriteString(cursorStyle.Render("> " + it.label))
			} else {
				b.WriteString("  " + it.label)
			}
			b.WriteByte('\n')
		}
		b.WriteByte('\n')
		b.WriteString(hintStyle.Render(menuHint))
	case modeModal:
		b.WriteByte('\n')
		b.WriteString(titleStyle(views.ColorTeam).Render(m.modal.Title))
		b.WriteByte('\n')
		b.WriteString(m.input.View())
		b.WriteByte('\n')
		b.WriteString(hintStyle.Render("Enter to submit, Esc to cancel."))
	default:
		b.WriteString(m.input.View())
	}
	return b.String()
}

func titleStyle(c views.Color) lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(fmt.Sprintf("#%06x", int(c))))
}
