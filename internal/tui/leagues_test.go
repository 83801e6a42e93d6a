package tui

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/warriorfoot/warriorfoot/pkg/client"
	"github.com/warriorfoot/warriorfoot/pkg/domain"
)

func testLeagues() []domain.UserLeague {
	return []domain.UserLeague{
		{
			LeagueID:      uuid.New(),
			LeagueName:    "Sunday League",
			TeamID:        uuid.New(),
			TeamName:      "Red Star Dockside",
			DivisionLevel: 4,
			CreatedAt:     time.Now().Add(-48 * time.Hour),
			IsCreator:     true,
		},
		{
			LeagueID:      uuid.New(),
			TeamID:        uuid.New(),
			TeamName:      "Harbour Athletic",
			DivisionLevel: 2,
			CreatedAt:     time.Now().Add(-time.Hour),
		},
	}
}

func TestLeaguesLoadedPopulatesList(t *testing.T) {
	m := newLeaguesModel(nil)
	m.cursor = 5

	m, _ = m.Update(leaguesLoadedMsg{leagues: testLeagues()})
	if len(m.leagues) != 2 {
		t.Fatalf("len(leagues) = %d, want 2", len(m.leagues))
	}
	if m.cursor != 1 {
		t.Errorf("cursor not clamped, got %d", m.cursor)
	}

	view := m.View()
	if !strings.Contains(view, "Sunday League") {
		t.Error("expected league name in view")
	}
	if !strings.Contains(view, "Harbour Athletic") {
		t.Error("expected team-name fallback for unnamed league")
	}
	if !strings.Contains(view, "owner") {
		t.Error("expected owner badge for created league")
	}
}

func TestLeaguesCursorNavigation(t *testing.T) {
	m := newLeaguesModel(nil)
	m, _ = m.Update(leaguesLoadedMsg{leagues: testLeagues()})
	m.cursor = 0

	m, _ = m.Update(keyRunes("j"))
	if m.cursor != 1 {
		t.Errorf("cursor after j = %d, want 1", m.cursor)
	}
	m, _ = m.Update(keyRunes("j"))
	if m.cursor != 1 {
		t.Errorf("cursor ran past end, got %d", m.cursor)
	}
	m, _ = m.Update(keyRunes("k"))
	if m.cursor != 0 {
		t.Errorf("cursor after k = %d, want 0", m.cursor)
	}
}

func TestLeaguesEnterOpensDashboard(t *testing.T) {
	leagues := testLeagues()
	m := newLeaguesModel(nil)
	m, _ = m.Update(leaguesLoadedMsg{leagues: leagues})
	m.cursor = 1

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command on enter")
	}
	msg, ok := cmd().(openDashboardMsg)
	if !ok {
		t.Fatalf("cmd produced %T, want openDashboardMsg", cmd())
	}
	if msg.leagueID != leagues[1].LeagueID.String() {
		t.Errorf("leagueID = %q, want %q", msg.leagueID, leagues[1].LeagueID)
	}
	if msg.teamID != leagues[1].TeamID.String() {
		t.Errorf("teamID = %q, want %q", msg.teamID, leagues[1].TeamID)
	}
}

func TestLeaguesCreateFlow(t *testing.T) {
	var gotBody string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/leagues/create" {
			t.Errorf("path = %s", r.URL.Path)
		}
		body, _ := io.ReadAll(r.Body)
		gotBody = string(body)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"leagueId":"` + uuid.NewString() + `","teamId":"` + uuid.NewString() + `","teamName":"FC Test","divisionLevel":4}`)) //nolint:errcheck
	}))
	defer srv.Close()

	m := newLeaguesModel(client.New(srv.URL, nil))
	m, _ = m.Update(keyRunes("n"))
	if !m.creating {
		t.Fatal("expected creating mode after 'n'")
	}
	for _, r := range "Elite Cup" {
		m, _ = m.Update(keyRunes(string(r)))
	}
	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected create command")
	}
	if !m.busy {
		t.Error("expected busy while creating")
	}

	msg := cmd()
	created, ok := msg.(leagueCreatedMsg)
	if !ok {
		t.Fatalf("cmd produced %T, want leagueCreatedMsg", msg)
	}
	if created.err != nil {
		t.Fatalf("create err = %v", created.err)
	}
	if !strings.Contains(gotBody, "Elite Cup") {
		t.Errorf("request body %q missing league name", gotBody)
	}

	m, next := m.Update(created)
	if m.busy {
		t.Error("still busy after leagueCreatedMsg")
	}
	if next == nil {
		t.Fatal("expected navigation command after create")
	}
	if _, ok := next().(openDashboardMsg); !ok {
		t.Errorf("expected openDashboardMsg after create, got %T", next())
	}
}

func TestLeaguesDeleteNeedsConfirmation(t *testing.T) {
	m := newLeaguesModel(nil)
	m, _ = m.Update(leaguesLoadedMsg{leagues: testLeagues()})

	m, _ = m.Update(keyRunes("d"))
	if m.confirm != confirmDelete {
		t.Fatal("expected pending delete confirmation")
	}

	// Anything but y cancels.
	m, cmd := m.Update(keyRunes("n"))
	if m.confirm != confirmNone {
		t.Error("confirmation not cleared")
	}
	if cmd != nil {
		t.Error("no request should fire on cancel")
	}
}

func TestLeaguesDeleteNotCreatorMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":"only the creator can delete a league"}`)) //nolint:errcheck
	}))
	defer srv.Close()

	m := newLeaguesModel(client.New(srv.URL, nil))
	m, _ = m.Update(leaguesLoadedMsg{leagues: testLeagues()})
	m, _ = m.Update(keyRunes("d"))
	m, cmd := m.Update(keyRunes("y"))
	if cmd == nil {
		t.Fatal("expected delete command after confirm")
	}

	m, _ = m.Update(cmd().(leagueDeletedMsg))
	if m.err != "Only league creator can delete the league" {
		t.Errorf("err = %q", m.err)
	}
}

func TestLeaguesLeaveAsCreatorMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
	}))
	defer srv.Close()

	m := newLeaguesModel(client.New(srv.URL, nil))
	m, _ = m.Update(leaguesLoadedMsg{leagues: testLeagues()})
	m, _ = m.Update(keyRunes("x"))
	if m.confirm != confirmLeave {
		t.Fatal("expected pending leave confirmation")
	}
	m, cmd := m.Update(keyRunes("y"))
	if cmd == nil {
		t.Fatal("expected leave command after confirm")
	}

	m, _ = m.Update(cmd().(leagueLeftMsg))
	if m.err != "League creator cannot leave. Delete the league instead." {
		t.Errorf("err = %q", m.err)
	}
}

func TestLeaguesDeleteSuccessEmitsRemoval(t *testing.T) {
	m := newLeaguesModel(nil)
	leagues := testLeagues()
	m, _ = m.Update(leaguesLoadedMsg{leagues: leagues})

	id := leagues[0].LeagueID.String()
	m, cmd := m.Update(leagueDeletedMsg{leagueID: id})
	if m.err != "" {
		t.Errorf("unexpected err %q", m.err)
	}
	if m.notice != "League deleted" {
		t.Errorf("notice = %q", m.notice)
	}
	if cmd == nil {
		t.Fatal("expected removal notification + reload batch")
	}
}

func TestLeaguesEmptyState(t *testing.T) {
	m := newLeaguesModel(nil)
	m, _ = m.Update(leaguesLoadedMsg{leagues: nil})
	if !strings.Contains(m.View(), "No leagues yet") {
		t.Error("expected empty-state hint")
	}
}
