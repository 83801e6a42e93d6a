package tui

import (
	"context"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/warriorfoot/warriorfoot/pkg/client"
	"github.com/warriorfoot/warriorfoot/pkg/domain"
)

type loginField int

const (
	loginEmail loginField = iota
	loginPassword
	numLoginFields
)

type loginDoneMsg struct {
	bundle *domain.Session
	err    error
}

type loginModel struct {
	client     *client.Client
	fields     [numLoginFields]string
	focus      loginField
	err        string
	submitting bool
}

func newLoginModel(c *client.Client) loginModel {
	return loginModel{client: c}
}

func (m loginModel) Init() tea.Cmd {
	return nil
}

func (m loginModel) Update(msg tea.Msg) (loginModel, tea.Cmd) {
	switch msg := msg.(type) {
	case loginDoneMsg:
		m.submitting = false
		if msg.err != nil {
			m.err = loginErrorMessage(msg.err)
			return m, nil
		}
		bundle := *msg.bundle
		return m, func() tea.Msg { return authSuccessMsg{bundle: bundle} }

	case tea.KeyMsg:
		if m.submitting {
			return m, nil
		}
		return m.updateKeys(msg)
	}
	return m, nil
}

func (m loginModel) updateKeys(msg tea.KeyMsg) (loginModel, tea.Cmd) {
	switch msg.String() {
	case "tab", "down":
		m.focus = (m.focus + 1) % numLoginFields
	case "shift+tab", "up":
		m.focus = (m.focus - 1 + numLoginFields) % numLoginFields
	case "enter":
		if m.focus == loginPassword {
			return m.submit()
		}
		m.focus++
	case "backspace":
		m.err = ""
		m.fields[m.focus] = editRune(m.fields[m.focus], "backspace")
	default:
		if key := msg.String(); len([]rune(key)) == 1 {
			m.err = ""
			m.fields[m.focus] = editRune(m.fields[m.focus], key)
		}
	}
	return m, nil
}

func (m loginModel) submit() (loginModel, tea.Cmd) {
	email := strings.TrimSpace(m.fields[loginEmail])
	password := m.fields[loginPassword]
	if err := domain.ValidateLogin(email, password); err != nil {
		m.err = err.Error()
		return m, nil
	}

	m.err = ""
	m.submitting = true
	c := m.client
	return m, func() tea.Msg {
		bundle, err := c.Login(context.Background(), client.LoginRequest{
			Email:    email,
			Password: password,
		})
		return loginDoneMsg{bundle: bundle, err: err}
	}
}

func (m loginModel) View() string {
	var sb strings.Builder
	sb.WriteString("\n " + selectedStyle.Render("Welcome Back") + "\n")
	sb.WriteString(" " + dimStyle.Render("Log in to manage your club") + "\n\n")

	sb.WriteString(renderFormField("Email", m.fields[loginEmail], "your.email@example.com", m.focus == loginEmail, false))
	sb.WriteString(renderFormField("Password", m.fields[loginPassword], "Enter your password", m.focus == loginPassword, true))

	if m.err != "" {
		sb.WriteString("\n " + errorStyle.Render(m.err) + "\n")
	}
	if m.submitting {
		sb.WriteString("\n " + dimStyle.Render("Logging in...") + "\n")
	}

	sb.WriteString("\n " + metaStyle.Render("No account? ctrl+n to register · got an invite? ctrl+t to redeem") + "\n")
	return sb.String()
}

// renderFormField draws one labeled input line shared by all forms.
func renderFormField(label, value, placeholder string, focused, secret bool) string {
	prompt := "  "
	if focused {
		prompt = inputPromptStyle.Render("> ")
	}
	shown := value
	if secret {
		shown = maskPassword(value)
	}
	if shown == "" && !focused {
		shown = inputPlaceholderStyle.Render(placeholder)
	} else if focused {
		shown = normalStyle.Render(shown) + accentStyle.Render("█")
	} else {
		shown = normalStyle.Render(shown)
	}
	return " " + prompt + labelStyle.Render(padLabel(label)) + " " + shown + "\n"
}

func padLabel(label string) string {
	const w = 18
	if len(label) >= w {
		return label
	}
	return label + strings.Repeat(" ", w-len(label))
}
