package tui

import (
	"context"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/warriorfoot/warriorfoot/pkg/client"
	"github.com/warriorfoot/warriorfoot/pkg/domain"
)

type registerField int

const (
	regFullName registerField = iota
	regEmail
	regPassword
	regConfirmation
	numRegisterFields
)

type registerDoneMsg struct {
	bundle *domain.Session
	err    error
}

type registerModel struct {
	client     *client.Client
	fields     [numRegisterFields]string
	focus      registerField
	err        string
	submitting bool
}

func newRegisterModel(c *client.Client) registerModel {
	return registerModel{client: c}
}

func (m registerModel) Init() tea.Cmd {
	return nil
}

func (m registerModel) Update(msg tea.Msg) (registerModel, tea.Cmd) {
	switch msg := msg.(type) {
	case registerDoneMsg:
		m.submitting = false
		if msg.err != nil {
			m.err = registerErrorMessage(msg.err)
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

func (m registerModel) updateKeys(msg tea.KeyMsg) (registerModel, tea.Cmd) {
	switch msg.String() {
	case "tab", "down":
		m.focus = (m.focus + 1) % numRegisterFields
	case "shift+tab", "up":
		m.focus = (m.focus - 1 + numRegisterFields) % numRegisterFields
	case "enter":
		if m.focus == regConfirmation {
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

func (m registerModel) submit() (registerModel, tea.Cmd) {
	fullName := strings.TrimSpace(m.fields[regFullName])
	email := strings.TrimSpace(m.fields[regEmail])
	password := m.fields[regPassword]
	confirmation := m.fields[regConfirmation]

	if err := domain.ValidateRegistration(fullName, email, password, confirmation); err != nil {
		m.err = err.Error()
		return m, nil
	}

	m.err = ""
	m.submitting = true
	c := m.client
	return m, func() tea.Msg {
		bundle, err := c.Register(context.Background(), client.RegisterRequest{
			FullName:             fullName,
			Email:                email,
			Password:             password,
			PasswordConfirmation: confirmation,
		})
		return registerDoneMsg{bundle: bundle, err: err}
	}
}

func (m registerModel) View() string {
	var sb strings.Builder
	sb.WriteString("\n " + selectedStyle.Render("Create Account") + "\n")
	sb.WriteString(" " + dimStyle.Render("A new league with 32 teams across 4 divisions awaits") + "\n\n")

	sb.WriteString(renderFormField("Full Name", m.fields[regFullName], "Enter your full name", m.focus == regFullName, false))
	sb.WriteString(renderFormField("Email", m.fields[regEmail], "your.email@example.com", m.focus == regEmail, false))
	sb.WriteString(renderFormField("Password", m.fields[regPassword], "Minimum 6 characters", m.focus == regPassword, true))
	sb.WriteString(renderFormField("Confirm Password", m.fields[regConfirmation], "Re-enter your password", m.focus == regConfirmation, true))

	if m.err != "" {
		sb.WriteString("\n " + errorStyle.Render(m.err) + "\n")
	}
	if m.submitting {
		sb.WriteString("\n " + dimStyle.Render("Creating account...") + "\n")
	}

	sb.WriteString("\n " + metaStyle.Render("Already have an account? ctrl+l to log in") + "\n")
	return sb.String()
}
