package tui

import (
	"context"
	"strings"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/warriorfoot/warriorfoot/pkg/client"
	"github.com/warriorfoot/warriorfoot/pkg/domain"
)

// acceptStage walks token -> validation -> team pick -> account form.
type acceptStage int

const (
	stageToken acceptStage = iota
	stageValidating
	stageTeamPick
	stageForm
)

type acceptField int

const (
	acceptFullName acceptField = iota
	acceptEmail
	acceptPassword
	acceptConfirmation
	numAcceptFields
)

// inviteValidatedMsg carries ValidateInvite + AvailableTeams together.
type inviteValidatedMsg struct {
	validation *domain.InviteValidation
	teams      []domain.AvailableTeam
	err        error
}

type acceptDoneMsg struct {
	bundle *domain.Session
	err    error
}

type acceptModel struct {
	client     *client.Client
	stage      acceptStage
	token      string
	validation *domain.InviteValidation
	teams      []domain.AvailableTeam
	teamCursor int
	fields     [numAcceptFields]string
	focus      acceptField
	err        string
	submitting bool
}

func newAcceptModel(c *client.Client) acceptModel {
	return acceptModel{client: c}
}

func (m acceptModel) Init() tea.Cmd {
	return nil
}

// editing reports whether the view is consuming plain keystrokes.
func (m acceptModel) editing() bool {
	return m.stage == stageToken || m.stage == stageForm
}

func (m acceptModel) helpKeys() string {
	switch m.stage {
	case stageToken:
		return helpEntry("enter", "validate") + "  " + helpEntry("ctrl+v", "paste") + "  " + helpEntry("esc", "back") + "  " + helpEntry("ctrl+c", "quit")
	case stageTeamPick:
		return helpEntry("j/k", "nav") + "  " + helpEntry("enter", "choose") + "  " + helpEntry("esc", "back") + "  " + helpEntry("q", "quit")
	case stageForm:
		return helpEntry("enter", "join") + "  " + helpEntry("tab", "next field") + "  " + helpEntry("esc", "back") + "  " + helpEntry("ctrl+c", "quit")
	}
	return helpEntry("esc", "back")
}

func (m acceptModel) Update(msg tea.Msg) (acceptModel, tea.Cmd) {
	switch msg := msg.(type) {
	case inviteValidatedMsg:
		if msg.err != nil {
			m.stage = stageToken
			m.err = "Invalid invite"
			return m, nil
		}
		if !msg.validation.Valid {
			m.stage = stageToken
			m.err = msg.validation.ErrorMessage
			if m.err == "" {
				m.err = "Invalid invite"
			}
			return m, nil
		}
		if len(msg.teams) == 0 {
			m.stage = stageToken
			m.err = "No available teams in this league. All teams are taken."
			return m, nil
		}
		m.validation = msg.validation
		m.teams = msg.teams
		m.teamCursor = 0
		m.err = ""
		m.stage = stageTeamPick
		return m, nil

	case acceptDoneMsg:
		m.submitting = false
		if msg.err != nil {
			m.err = acceptInviteErrorMessage(msg.err)
			return m, nil
		}
		bundle := *msg.bundle
		return m, func() tea.Msg { return authSuccessMsg{bundle: bundle} }

	case tea.KeyMsg:
		if m.submitting || m.stage == stageValidating {
			return m, nil
		}
		switch m.stage {
		case stageToken:
			return m.updateTokenKeys(msg)
		case stageTeamPick:
			return m.updateTeamKeys(msg)
		case stageForm:
			return m.updateFormKeys(msg)
		}
	}
	return m, nil
}

func (m acceptModel) updateTokenKeys(msg tea.KeyMsg) (acceptModel, tea.Cmd) {
	switch msg.String() {
	case "ctrl+v":
		if pasted, err := clipboard.ReadAll(); err == nil {
			m.token = strings.TrimSpace(pasted)
			m.err = ""
		}
	case "enter":
		token := strings.TrimSpace(m.token)
		if token == "" {
			m.err = domain.ErrInviteTokenNeeded.Error()
			return m, nil
		}
		m.err = ""
		m.stage = stageValidating
		return m, m.validate(token)
	case "backspace":
		m.err = ""
		m.token = editRune(m.token, "backspace")
	default:
		if key := msg.String(); len([]rune(key)) == 1 {
			m.err = ""
			m.token = editRune(m.token, key)
		}
	}
	return m, nil
}

// validate runs token validation and the team list in one round trip
// from the caller's point of view.
func (m acceptModel) validate(token string) tea.Cmd {
	c := m.client
	return func() tea.Msg {
		v, err := c.ValidateInvite(context.Background(), token)
		if err != nil {
			return inviteValidatedMsg{err: err}
		}
		if !v.Valid {
			return inviteValidatedMsg{validation: v}
		}
		teams, err := c.AvailableTeams(context.Background(), v.LeagueID)
		if err != nil {
			return inviteValidatedMsg{err: err}
		}
		return inviteValidatedMsg{validation: v, teams: teams}
	}
}

func (m acceptModel) updateTeamKeys(msg tea.KeyMsg) (acceptModel, tea.Cmd) {
	switch msg.String() {
	case "j", "down":
		if m.teamCursor < len(m.teams)-1 {
			m.teamCursor++
		}
	case "k", "up":
		if m.teamCursor > 0 {
			m.teamCursor--
		}
	case "enter":
		m.stage = stageForm
		m.focus = acceptFullName
		// The invite addresses a person by name; start the form there.
		if m.fields[acceptFullName] == "" {
			m.fields[acceptFullName] = m.validation.InviteeName
		}
	case "esc":
		m.stage = stageToken
	}
	return m, nil
}

func (m acceptModel) updateFormKeys(msg tea.KeyMsg) (acceptModel, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.stage = stageTeamPick
		m.err = ""
	case "tab", "down":
		m.focus = (m.focus + 1) % numAcceptFields
	case "shift+tab", "up":
		m.focus = (m.focus - 1 + numAcceptFields) % numAcceptFields
	case "enter":
		if m.focus == acceptConfirmation {
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

func (m acceptModel) submit() (acceptModel, tea.Cmd) {
	fullName := strings.TrimSpace(m.fields[acceptFullName])
	email := strings.TrimSpace(m.fields[acceptEmail])
	password := m.fields[acceptPassword]
	confirmation := m.fields[acceptConfirmation]

	if err := domain.ValidateRegistration(fullName, email, password, confirmation); err != nil {
		m.err = err.Error()
		return m, nil
	}
	if m.teamCursor >= len(m.teams) {
		m.err = domain.ErrTeamNotSelected.Error()
		return m, nil
	}

	m.err = ""
	m.submitting = true
	c := m.client
	req := client.AcceptInviteRequest{
		Token:                strings.TrimSpace(m.token),
		FullName:             fullName,
		Email:                email,
		Password:             password,
		PasswordConfirmation: confirmation,
		SelectedTeamID:       m.teams[m.teamCursor].ID.String(),
	}
	return m, func() tea.Msg {
		bundle, err := c.AcceptInvite(context.Background(), req)
		return acceptDoneMsg{bundle: bundle, err: err}
	}
}

func (m acceptModel) View() string {
	var sb strings.Builder
	sb.WriteString("\n " + selectedStyle.Render("Join a League") + "\n")

	switch m.stage {
	case stageToken:
		sb.WriteString(" " + dimStyle.Render("Paste the invite token from your email") + "\n\n")
		shown := normalStyle.Render(m.token) + accentStyle.Render("█")
		if m.token == "" {
			shown = inputPlaceholderStyle.Render("invite token") + accentStyle.Render("█")
		}
		sb.WriteString(" " + inputPromptStyle.Render("> ") + shown + "\n")

	case stageValidating:
		sb.WriteString("\n " + dimStyle.Render("Checking invite...") + "\n")

	case stageTeamPick:
		sb.WriteString(" " + dimStyle.Render(m.validation.InviterName+" invited you to their league. Pick your club:") + "\n\n")
		for i, t := range m.teams {
			cursor := "  "
			nameStyle := normalStyle
			if i == m.teamCursor {
				cursor = inputPromptStyle.Render("> ")
				nameStyle = selectedStyle
			}
			sb.WriteString(" " + cursor + nameStyle.Render(truncStr(t.Name, 40)) + "\n")
		}

	case stageForm:
		sb.WriteString(" " + dimStyle.Render("Managing "+m.teams[m.teamCursor].Name+" — set up your account") + "\n\n")
		sb.WriteString(renderFormField("Full Name", m.fields[acceptFullName], "Enter your full name", m.focus == acceptFullName, false))
		sb.WriteString(renderFormField("Email", m.fields[acceptEmail], "your.email@example.com", m.focus == acceptEmail, false))
		sb.WriteString(renderFormField("Password", m.fields[acceptPassword], "Minimum 6 characters", m.focus == acceptPassword, true))
		sb.WriteString(renderFormField("Confirm Password", m.fields[acceptConfirmation], "Re-enter your password", m.focus == acceptConfirmation, true))
	}

	if m.err != "" {
		sb.WriteString("\n " + errorStyle.Render(m.err) + "\n")
	}
	if m.submitting {
		sb.WriteString("\n " + dimStyle.Render("Joining league...") + "\n")
	}
	return sb.String()
}
