package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ErrCanceled is returned when the user backs out of a screen without
// submitting. Callers suppress it; any other error is a real failure.
var ErrCanceled = errors.New("canceled")

// LoginData holds the credentials collected from the login form.
type LoginData struct {
	Username string
	Password string
}

type loginModel struct {
	shopName string
	inputs   []textinput.Model
	focused  int
	errMsg   string
	result   *LoginData
	canceled bool
}

const (
	loginFieldUsername = iota
	loginFieldPassword
)

func newLoginForm(shopName string) loginModel {
	m := loginModel{
		shopName: shopName,
		inputs:   make([]textinput.Model, 2),
	}

	const fieldWidth = 28

	m.inputs[loginFieldUsername] = textinput.New()
	m.inputs[loginFieldUsername].Placeholder = "username"
	m.inputs[loginFieldUsername].Focus()
	m.inputs[loginFieldUsername].CharLimit = 64
	m.inputs[loginFieldUsername].Width = fieldWidth
	m.inputs[loginFieldUsername].Prompt = "│ "

	m.inputs[loginFieldPassword] = textinput.New()
	m.inputs[loginFieldPassword].Placeholder = "password"
	m.inputs[loginFieldPassword].CharLimit = 64
	m.inputs[loginFieldPassword].Width = fieldWidth
	m.inputs[loginFieldPassword].Prompt = "│ "
	m.inputs[loginFieldPassword].EchoMode = textinput.EchoPassword
	m.inputs[loginFieldPassword].EchoCharacter = '•'

	return m
}

func (m loginModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m loginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.canceled = true
			return m, tea.Quit

		case "enter":
			if m.focused == loginFieldUsername {
				return m.focusField(loginFieldPassword)
			}
			username := strings.TrimSpace(m.inputs[loginFieldUsername].Value())
			password := m.inputs[loginFieldPassword].Value()
			if username == "" || password == "" {
				m.errMsg = "enter both username and password"
				return m, nil
			}
			m.result = &LoginData{Username: username, Password: password}
			return m, tea.Quit

		case "tab", "down":
			return m.focusField((m.focused + 1) % len(m.inputs))

		case "shift+tab", "up":
			return m.focusField((m.focused + len(m.inputs) - 1) % len(m.inputs))
		}
	}

	cmds := make([]tea.Cmd, len(m.inputs))
	for i := range m.inputs {
		m.inputs[i], cmds[i] = m.inputs[i].Update(msg)
	}
	return m, tea.Batch(cmds...)
}

func (m loginModel) focusField(i int) (tea.Model, tea.Cmd) {
	m.focused = i
	cmds := make([]tea.Cmd, len(m.inputs))
	for j := range m.inputs {
		if j == i {
			cmds[j] = m.inputs[j].Focus()
		} else {
			m.inputs[j].Blur()
		}
	}
	return m, tea.Batch(cmds...)
}

func (m loginModel) View() string {
	outerStyle := lipgloss.NewStyle().Padding(1, 3)
	formLabel := lipgloss.NewStyle().
		Foreground(ColorGray).
		Width(10).
		Align(lipgloss.Right).
		PaddingRight(1)
	formLabelActive := lipgloss.NewStyle().
		Foreground(ColorYellow).
		Bold(true).
		Width(10).
		Align(lipgloss.Right).
		PaddingRight(1)

	var b strings.Builder
	b.WriteString(StyleHeader.Render(m.shopName))
	b.WriteString("\n")
	b.WriteString(StyleHelp.Render("Sign in to continue"))
	b.WriteString("\n\n")

	if m.errMsg != "" {
		errStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
		b.WriteString(errStyle.Render(m.errMsg))
		b.WriteString("\n\n")
	}

	labels := []string{"Username", "Password"}
	for i, label := range labels {
		if i == m.focused {
			b.WriteString(formLabelActive.Render("› " + label))
		} else {
			b.WriteString(formLabel.Render(label))
		}
		b.WriteString(m.inputs[i].View())
		b.WriteString("\n\n")
	}

	b.WriteString(StyleHelp.Render("enter submit · tab next · esc cancel"))
	b.WriteString("\n")

	return outerStyle.Render(StyleBorder.Render(lipgloss.NewStyle().Padding(0, 2).Render(b.String())))
}

// RunLoginForm launches the interactive sign-in form. Returns the
// collected credentials, or an error if the user canceled.
func RunLoginForm(shopName string) (*LoginData, error) {
	p := tea.NewProgram(newLoginForm(shopName))

	finalModel, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("running login form: %w", err)
	}

	fm, ok := finalModel.(loginModel)
	if !ok {
		return nil, fmt.Errorf("unexpected model type")
	}
	if fm.canceled || fm.result == nil {
		return nil, ErrCanceled
	}
	return fm.result, nil
}
