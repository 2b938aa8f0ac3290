package interactive

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"stash-client/internal/shared/config"
	"stash-client/internal/shared/stash"
	"stash-client/internal/shared/ui"
)

type state int

const (
	stateMenu state = iota
	statePrompt
	stateBusy
	stateResult
)

var quitOption = len(operations) // menu index of the quit entry

type model struct {
	store *config.Store

	state  state
	cursor int
	errMsg string

	op        *operation
	promptIdx int
	answers   []string
	input     textinput.Model

	result string

	spinner spinner.Model
	help    help.Model
	keys    keyMap
	width   int
	height  int
}

type keyMap struct {
	Up     key.Binding
	Down   key.Binding
	Enter  key.Binding
	Cancel key.Binding
	Quit   key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Enter, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Enter},
		{k.Cancel, k.Quit},
	}
}

var keys = keyMap{
	Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("k", "up")),
	Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("j", "down")),
	Enter:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
	Cancel: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

func initialModel(store *config.Store) model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = spinnerStyle

	in := textinput.New()
	in.CharLimit = 512

	return model{
		store:   store,
		spinner: s,
		input:   in,
		help:    help.New(),
		keys:    keys,
	}
}

func (m model) Init() tea.Cmd {
	return m.spinner.Tick
}

type resultMsg struct {
	body string
	err  error
}

// execute runs the selected operation off the UI loop.
func (m model) execute() tea.Cmd {
	op := m.op
	answers := append([]string(nil), m.answers...)

	token := ""
	if op.needsAuth {
		var err error
		token, err = m.store.Resolve("")
		if err != nil {
			return func() tea.Msg {
				return resultMsg{err: fmt.Errorf("%w (run \"stash-client set-token\" first)", err)}
			}
		}
	}

	return func() tea.Msg {
		client := stash.NewDefault(token)
		resp, err := op.invoke(context.Background(), client, answers)
		if err != nil {
			return resultMsg{err: err}
		}
		return resultMsg{body: stash.Render(resp.Body)}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case resultMsg:
		m.state = stateResult
		if msg.err != nil {
			m.result = ui.Failure("%v", msg.err)
		} else if msg.body == "" {
			m.result = ui.Success("done")
		} else {
			m.result = msg.body
		}
		return m, nil

	case tea.KeyMsg:
		switch m.state {
		case stateMenu:
			return m.updateMenu(msg)
		case statePrompt:
			return m.updatePrompt(msg)
		case stateBusy:
			if key.Matches(msg, m.keys.Quit) {
				return m, tea.Quit
			}
			return m, nil
		case stateResult:
			// any key returns to the menu
			m.state = stateMenu
			m.result = ""
			return m, nil
		}
	}

	return m, nil
}

func (m model) updateMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.errMsg = ""

	// direct numeric selection, 1-11
	if n, err := strconv.Atoi(msg.String()); err == nil {
		if n < 1 || n > quitOption+1 {
			m.errMsg = fmt.Sprintf("no such option: %d", n)
			return m, nil
		}
		m.cursor = n - 1
		return m.selectCurrent()
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < quitOption {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Enter):
		return m.selectCurrent()
	}

	return m, nil
}

func (m model) selectCurrent() (tea.Model, tea.Cmd) {
	if m.cursor == quitOption {
		return m, tea.Quit
	}

	m.op = &operations[m.cursor]
	m.answers = nil

	if len(m.op.prompts) == 0 {
		m.state = stateBusy
		return m, tea.Batch(m.spinner.Tick, m.execute())
	}

	m.promptIdx = 0
	m.input.SetValue("")
	m.input.Placeholder = m.op.prompts[0]
	m.input.Focus()
	m.state = statePrompt
	return m, textinput.Blink
}

func (m model) updatePrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.state = stateMenu
		m.input.Blur()
		return m, nil

	case key.Matches(msg, m.keys.Enter):
		m.answers = append(m.answers, m.input.Value())
		m.promptIdx++

		if m.promptIdx >= len(m.op.prompts) {
			m.input.Blur()
			m.state = stateBusy
			return m, tea.Batch(m.spinner.Tick, m.execute())
		}

		m.input.SetValue("")
		m.input.Placeholder = m.op.prompts[m.promptIdx]
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("stash-client"))
	b.WriteString("\n\n")

	switch m.state {
	case stateMenu:
		for i, op := range operations {
			b.WriteString(m.menuLine(i, op.title))
		}
		b.WriteString(m.menuLine(quitOption, "Quit"))
		if m.errMsg != "" {
			b.WriteString("\n" + ui.StatusErrorStyle.Render(m.errMsg) + "\n")
		}
		b.WriteString(ui.HelpStyle.Render(m.help.View(m.keys)))

	case statePrompt:
		b.WriteString(ui.HeaderStyle.Render(m.op.title))
		b.WriteString("\n")
		b.WriteString(promptStyle.Render(m.op.prompts[m.promptIdx]))
		b.WriteString("\n")
		b.WriteString(m.input.View())
		b.WriteString("\n")
		b.WriteString(ui.HelpStyle.Render("enter confirm · esc cancel"))

	case stateBusy:
		b.WriteString(m.spinner.View())
		b.WriteString(" ")
		b.WriteString(m.op.title)
		b.WriteString(" ...")

	case stateResult:
		b.WriteString(ui.ResultStyle.Render(m.result))
		b.WriteString("\n")
		b.WriteString(ui.HelpStyle.Render("press any key to return to the menu"))
	}

	return b.String()
}

func (m model) menuLine(i int, title string) string {
	line := fmt.Sprintf("%2d. %s", i+1, title)
	if i == m.cursor {
		return ui.SelectedItemStyle.Render("> "+line) + "\n"
	}
	return ui.ItemStyle.Render(line) + "\n"
}
