package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/warriorfoot/warriorfoot/pkg/client"
	"github.com/warriorfoot/warriorfoot/pkg/domain"
)

type inviteField int

const (
	inviteName inviteField = iota
	inviteEmail
	numInviteFields
)

type inviteSentMsg struct {
	email string
	err   error
}

// inviteModel is the send-invite overlay. Invites go to the sender's
// active league; the server works that out from the session.
type inviteModel struct {
	client           *client.Client
	currentUserEmail string
	fields           [numInviteFields]string
	focus            inviteField
	err              string
	sent             string
	submitting       bool
	closed           bool
}

func newInviteModel(c *client.Client) inviteModel {
	return inviteModel{client: c}
}

func (m inviteModel) Update(msg tea.Msg) (inviteModel, tea.Cmd) {
	switch msg := msg.(type) {
	case inviteSentMsg:
		m.submitting = false
		if msg.err != nil {
			m.err = sendInviteErrorMessage(msg.err)
			return m, nil
		}
		m.err = ""
		m.sent = "Invite sent to " + msg.email
		m.fields = [numInviteFields]string{}
		m.focus = inviteName
		return m, nil

	case tea.KeyMsg:
		if m.submitting {
			return m, nil
		}
		switch msg.String() {
		case "esc":
			m.closed = true
		case "tab", "down":
			m.focus = (m.focus + 1) % numInviteFields
		case "shift+tab", "up":
			m.focus = (m.focus - 1 + numInviteFields) % numInviteFields
		case "enter":
			if m.focus == inviteEmail {
				return m.submit()
			}
			m.focus++
		case "backspace":
			m.err = ""
			m.sent = ""
			m.fields[m.focus] = editRune(m.fields[m.focus], "backspace")
		default:
			if key := msg.String(); len([]rune(key)) == 1 {
				m.err = ""
				m.sent = ""
				m.fields[m.focus] = editRune(m.fields[m.focus], key)
			}
		}
	}
	return m, nil
}

func (m inviteModel) submit() (inviteModel, tea.Cmd) {
	name := strings.TrimSpace(m.fields[inviteName])
	email := strings.TrimSpace(m.fields[inviteEmail])

	if err := domain.ValidateInviteForm(name, email, m.currentUserEmail); err != nil {
		m.err = err.Error()
		return m, nil
	}

	m.err = ""
	m.submitting = true
	c := m.client
	return m, func() tea.Msg {
		err := c.SendInvite(context.Background(), client.InviteRequest{
			InviteeName:  name,
			InviteeEmail: email,
		})
		return inviteSentMsg{email: email, err: err}
	}
}

func (m inviteModel) View() string {
	var sb strings.Builder
	sb.WriteString("\n " + selectedStyle.Render("Invite a Manager") + "\n")
	sb.WriteString(" " + dimStyle.Render(fmt.Sprintf("They get an email link, valid for %d days", domain.InviteExpirationDays)) + "\n\n")

	sb.WriteString(renderFormField("Name", m.fields[inviteName], "Their name", m.focus == inviteName, false))
	sb.WriteString(renderFormField("Email", m.fields[inviteEmail], "their.email@example.com", m.focus == inviteEmail, false))

	if m.err != "" {
		sb.WriteString("\n " + errorStyle.Render(m.err) + "\n")
	}
	if m.sent != "" {
		sb.WriteString("\n " + successStyle.Render(m.sent) + "\n")
	}
	if m.submitting {
		sb.WriteString("\n " + dimStyle.Render("Sending invite...") + "\n")
	}
	return sb.String()
}
