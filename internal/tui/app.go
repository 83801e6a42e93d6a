package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/warriorfoot/warriorfoot/internal/browser"
	"github.com/warriorfoot/warriorfoot/internal/session"
	"github.com/warriorfoot/warriorfoot/pkg/client"
	"github.com/warriorfoot/warriorfoot/pkg/domain"
)

type view int

const (
	viewLogin view = iota
	viewRegister
	viewAccept
	viewLeagues
	viewDashboard
	viewTeam
	viewPlayer
)

// protected reports whether a view requires an authenticated session.
func (v view) protected() bool {
	return v >= viewLeagues
}

// authSuccessMsg carries the session bundle after login, registration,
// or invite acceptance.
type authSuccessMsg struct {
	bundle domain.Session
}

// logoutRequestMsg asks the app to end the session.
type logoutRequestMsg struct{}

// openDashboardMsg selects a league and navigates to its dashboard.
type openDashboardMsg struct {
	leagueID string
	teamID   string
}

// openTeamMsg navigates to a team's roster.
type openTeamMsg struct {
	teamID uuid.UUID
}

// openPlayerMsg navigates to a player's attribute sheet.
type openPlayerMsg struct {
	playerID uuid.UUID
}

// leagueRemovedMsg reports a league the user deleted or left.
type leagueRemovedMsg struct {
	leagueID string
}

// openInviteMsg opens the send-invite overlay.
type openInviteMsg struct{}

// App is the root Bubbletea model.
type App struct {
	client     *client.Client
	store      *session.Store
	version    string
	view       view
	login      loginModel
	register   registerModel
	accept     acceptModel
	leagues    leaguesModel
	dashboard  dashboardModel
	team       teamModel
	player     playerModel
	invite     inviteModel
	inviteOpen bool
	helpOpen   bool
	helpCursor int
	width      int
	height     int
}

// NewApp creates the TUI application. The starting view depends on the
// persisted session: an authenticated user with an active league lands
// on its dashboard, an authenticated user without one on the league
// list, and everyone else on the login form.
func NewApp(c *client.Client, store *session.Store, version string) App {
	a := App{
		client:    c,
		store:     store,
		version:   version,
		login:     newLoginModel(c),
		register:  newRegisterModel(c),
		accept:    newAcceptModel(c),
		leagues:   newLeaguesModel(c),
		dashboard: newDashboardModel(c),
		team:      newTeamModel(c),
		player:    newPlayerModel(c),
		invite:    newInviteModel(c),
	}
	switch {
	case store.IsAuthenticated() && store.Current().HasActiveLeague():
		a.view = viewDashboard
	case store.IsAuthenticated():
		a.view = viewLeagues
	default:
		a.view = viewLogin
	}
	return a
}

func (a App) Init() tea.Cmd {
	switch a.view {
	case viewDashboard:
		if id, err := uuid.Parse(a.store.Current().ActiveLeagueID); err == nil {
			return a.dashboard.load(id)
		}
		return nil
	case viewLeagues:
		return a.leagues.load()
	}
	return nil
}

// navigate applies the auth guard and switches views. A protected
// target with no credential falls back to a fresh login form.
func (a App) navigate(target view, cmd tea.Cmd) (App, tea.Cmd) {
	if target.protected() && !a.store.IsAuthenticated() {
		a.view = viewLogin
		a.login = newLoginModel(a.client)
		return a, nil
	}
	a.view = target
	return a, cmd
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case authSuccessMsg:
		a.store.SetAuth(msg.bundle)
		a.login = newLoginModel(a.client)
		a.register = newRegisterModel(a.client)
		a.accept = newAcceptModel(a.client)
		if msg.bundle.HasActiveLeague() {
			if id, err := uuid.Parse(msg.bundle.ActiveLeagueID); err == nil {
				a.dashboard = newDashboardModel(a.client)
				return a.navigate(viewDashboard, a.dashboard.load(id))
			}
		}
		a.leagues = newLeaguesModel(a.client)
		return a.navigate(viewLeagues, a.leagues.load())

	case logoutRequestMsg:
		// Pin the credential before local state clears; the request must
		// still carry the session being ended.
		c := a.client.UsingToken(a.store.Token())
		// Best-effort server invalidation; local state clears regardless.
		logout := func() tea.Msg {
			c.Logout(context.Background()) //nolint:errcheck // fire-and-forget
			return nil
		}
		a.store.ClearAuth()
		a.view = viewLogin
		a.login = newLoginModel(a.client)
		a.inviteOpen = false
		a.helpOpen = false
		return a, logout

	case openDashboardMsg:
		a.store.SetActiveContext(msg.leagueID, msg.teamID)
		if id, err := uuid.Parse(msg.leagueID); err == nil {
			a.dashboard = newDashboardModel(a.client)
			return a.navigate(viewDashboard, a.dashboard.load(id))
		}
		return a, nil

	case openTeamMsg:
		a.team = newTeamModel(a.client)
		return a.navigate(viewTeam, a.team.load(msg.teamID))

	case openPlayerMsg:
		a.player = newPlayerModel(a.client)
		return a.navigate(viewPlayer, a.player.load(msg.playerID))

	case leagueRemovedMsg:
		if a.store.Current().ActiveLeagueID == msg.leagueID {
			a.store.ClearActiveContext()
		}
		return a, nil

	case openInviteMsg:
		a.inviteOpen = true
		a.invite = newInviteModel(a.client)
		a.invite.currentUserEmail = a.store.Current().Email
		return a, nil

	case tea.KeyMsg:
		return a.updateKeys(msg)
	}

	return a.routeToView(msg)
}

func (a App) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return a, tea.Quit
	}

	// Help overlay captures all keys when open
	if a.helpOpen {
		switch msg.String() {
		case "h", "esc":
			a.helpOpen = false
		case "q":
			return a, tea.Quit
		case "j", "down":
			if a.helpCursor < len(helpItems)-1 {
				a.helpCursor++
			}
		case "k", "up":
			if a.helpCursor > 0 {
				a.helpCursor--
			}
		case "enter":
			item := helpItems[a.helpCursor]
			if item.url != "" {
				browser.Open(item.url) //nolint:errcheck // best-effort browser open
			}
		}
		return a, nil
	}

	// Invite overlay captures all keys when open
	if a.inviteOpen {
		var cmd tea.Cmd
		a.invite, cmd = a.invite.Update(msg)
		if a.invite.closed {
			a.inviteOpen = false
		}
		return a, cmd
	}

	// View switching among the auth forms works even while typing.
	switch msg.String() {
	case "ctrl+l":
		if a.view != viewLogin && !a.view.protected() {
			a.view = viewLogin
			a.login = newLoginModel(a.client)
			return a, nil
		}
	case "ctrl+n":
		if a.view != viewRegister && !a.view.protected() {
			a.view = viewRegister
			a.register = newRegisterModel(a.client)
			return a, nil
		}
	case "ctrl+t":
		if a.view != viewAccept && !a.view.protected() {
			a.view = viewAccept
			a.accept = newAcceptModel(a.client)
			return a, nil
		}
	case "ctrl+o":
		if a.view.protected() {
			return a.Update(logoutRequestMsg{})
		}
	}

	if !a.isEditing() {
		switch msg.String() {
		case "q":
			return a, tea.Quit
		case "h":
			a.helpOpen = true
			a.helpCursor = 0
			return a, nil
		case "i":
			if a.view == viewLeagues || a.view == viewDashboard {
				return a.Update(openInviteMsg{})
			}
		case "esc":
			return a.back()
		}
	}

	return a.routeToView(msg)
}

// back walks one step up the navigation chain.
func (a App) back() (tea.Model, tea.Cmd) {
	switch a.view {
	case viewPlayer:
		app, cmd := a.navigate(viewTeam, nil)
		return app, cmd
	case viewTeam:
		app, cmd := a.navigate(viewDashboard, nil)
		return app, cmd
	case viewDashboard:
		a.leagues = newLeaguesModel(a.client)
		app, cmd := a.navigate(viewLeagues, a.leagues.load())
		return app, cmd
	case viewRegister, viewAccept:
		a.view = viewLogin
		a.login = newLoginModel(a.client)
		return a, nil
	}
	return a, nil
}

func (a App) isEditing() bool {
	switch a.view {
	case viewLogin, viewRegister:
		return true
	case viewAccept:
		return a.accept.editing()
	case viewLeagues:
		return a.leagues.creating
	}
	return false
}

func (a App) routeToView(msg tea.Msg) (tea.Model, tea.Cmd) {
	if a.inviteOpen {
		var cmd tea.Cmd
		a.invite, cmd = a.invite.Update(msg)
		if a.invite.closed {
			a.inviteOpen = false
		}
		return a, cmd
	}

	var cmd tea.Cmd
	switch a.view {
	case viewLogin:
		a.login, cmd = a.login.Update(msg)
	case viewRegister:
		a.register, cmd = a.register.Update(msg)
	case viewAccept:
		a.accept, cmd = a.accept.Update(msg)
	case viewLeagues:
		a.leagues, cmd = a.leagues.Update(msg)
	case viewDashboard:
		a.dashboard, cmd = a.dashboard.Update(msg)
	case viewTeam:
		a.team, cmd = a.team.Update(msg)
	case viewPlayer:
		a.player, cmd = a.player.Update(msg)
	}
	return a, cmd
}

func (a App) View() string {
	logo := renderLogo()
	header := centerLine(logo, lipgloss.Width(logo), a.width)

	// Identity line under the logo
	identity := ""
	if cur := a.store.Current(); cur.IsAuthenticated() {
		identity = metaStyle.Render(cur.FullName + " · " + cur.Email)
	}
	if identity != "" {
		header += "\n" + centerLine(identity, lipgloss.Width(identity), a.width)
	} else {
		header += "\n"
	}

	var body, help string
	switch a.view {
	case viewLogin:
		body = a.login.View()
		help = " " + helpEntry("enter", "log in") + "  " + helpEntry("tab", "next field") + "  " + helpEntry("ctrl+n", "register") + "  " + helpEntry("ctrl+t", "invite") + "  " + helpEntry("ctrl+c", "quit")
	case viewRegister:
		body = a.register.View()
		help = " " + helpEntry("enter", "create") + "  " + helpEntry("tab", "next field") + "  " + helpEntry("ctrl+l", "log in") + "  " + helpEntry("esc", "back") + "  " + helpEntry("ctrl+c", "quit")
	case viewAccept:
		body = a.accept.View()
		help = " " + a.accept.helpKeys()
	case viewLeagues:
		body = a.leagues.View()
		if a.leagues.creating {
			help = " " + helpEntry("enter", "create") + "  " + helpEntry("esc", "cancel")
		} else {
			help = " " + helpEntry("j/k", "nav") + "  " + helpEntry("enter", "open") + "  " + helpEntry("n", "new") + "  " + helpEntry("i", "invite") + "  " + helpEntry("d", "delete") + "  " + helpEntry("x", "leave") + "  " + helpEntry("r", "refresh") + "  " + helpEntry("ctrl+o", "logout") + "  " + helpEntry("q", "quit")
		}
	case viewDashboard:
		body = a.dashboard.View()
		help = " " + helpEntry("j/k", "nav") + "  " + helpEntry("enter", "team") + "  " + helpEntry("i", "invite") + "  " + helpEntry("esc", "leagues") + "  " + helpEntry("h", "help") + "  " + helpEntry("q", "quit")
	case viewTeam:
		body = a.team.View()
		help = " " + helpEntry("j/k", "nav") + "  " + helpEntry("enter", "player") + "  " + helpEntry("esc", "back") + "  " + helpEntry("q", "quit")
	case viewPlayer:
		body = a.player.View()
		help = " " + helpEntry("esc", "back") + "  " + helpEntry("q", "quit")
	}

	if a.inviteOpen {
		body = a.invite.View()
		help = " " + helpEntry("enter", "send") + "  " + helpEntry("tab", "next field") + "  " + helpEntry("esc", "close")
	}
	if a.helpOpen {
		body = helpView(a.helpCursor, a.version)
		help = " " + helpEntry("j/k", "nav") + "  " + helpEntry("enter", "open") + "  " + helpEntry("esc", "close")
	}

	// Chrome: header(2) + help(1) = 3 lines
	body = strings.TrimRight(truncateToHeight(body, a.height-3), "\n")

	return fmt.Sprintf("%s\n%s\n%s", header, body, help)
}

// helpItem is a selectable link in the help overlay.
type helpItem struct {
	label string
	desc  string
	url   string
}

var helpItems = []helpItem{
	{"Website", "warriorfoot.app", "https://warriorfoot.app"},
	{"How to Play", "warriorfoot.app/guide", "https://warriorfoot.app/guide"},
	{"Terms of Service", "warriorfoot.app/terms", "https://warriorfoot.app/terms"},
	{"Privacy Policy", "warriorfoot.app/privacy", "https://warriorfoot.app/privacy"},
}

// helpView renders the interactive help overlay with a cursor.
func helpView(cursor int, version string) string {
	cmdStyle := lipgloss.NewStyle().Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	sectionStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true)
	cursorStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#22d3ee"))
	linkDescStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Italic(true)

	commands := []struct{ cmd, desc string }{
		{"warriorfoot", "Open the manager console"},
		{"warriorfoot whoami", "Show the logged-in account"},
		{"warriorfoot logout", "Clear your session"},
		{"warriorfoot version", "Show version"},
	}

	var b strings.Builder
	fmt.Fprintf(&b, "\n  %s  %s\n\n", titleStyle.Render("WARRIORFOOT"), metaStyle.Render(version))

	fmt.Fprintf(&b, "  %s\n", sectionStyle.Render("Commands"))
	for _, c := range commands {
		fmt.Fprintf(&b, "    %s  %s\n", cmdStyle.Render(fmt.Sprintf("%-22s", c.cmd)), descStyle.Render(c.desc))
	}

	fmt.Fprintf(&b, "\n  %s\n", sectionStyle.Render("Links (enter to open)"))
	for i, item := range helpItems {
		label := cmdStyle.Render(fmt.Sprintf("%-22s", item.label))
		prefix := "    "
		if i == cursor {
			label = cursorStyle.Render(fmt.Sprintf("%-22s", item.label))
			prefix = "  > "
		}
		fmt.Fprintf(&b, "%s%s  %s\n", prefix, label, linkDescStyle.Render(item.desc))
	}
	return b.String()
}
