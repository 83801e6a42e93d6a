package domain

import "testing"

func TestIsAuthenticated(t *testing.T) {
	tests := []struct {
		name string
		s    Session
		want bool
	}{
		{"empty session", Session{}, false},
		{"token present", Session{SessionToken: "tok-123"}, true},
		{"identity without token", Session{UserID: "u1", FullName: "Ana", Email: "a@x.com"}, false},
		{"context without token", Session{ActiveLeagueID: "l1", ActiveTeamID: "t1"}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.s.IsAuthenticated(); got != tc.want {
				t.Errorf("IsAuthenticated() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestWithActiveContextPreservesIdentity(t *testing.T) {
	s := Session{
		SessionToken: "tok",
		UserID:       "u1",
		FullName:     "Ana",
		Email:        "a@x.com",
	}

	got := s.WithActiveContext("league-1", "team-1")
	if got.ActiveLeagueID != "league-1" || got.ActiveTeamID != "team-1" {
		t.Errorf("context = (%q, %q), want (league-1, team-1)", got.ActiveLeagueID, got.ActiveTeamID)
	}
	if got.SessionToken != "tok" || got.UserID != "u1" || got.FullName != "Ana" || got.Email != "a@x.com" {
		t.Errorf("identity fields changed: %+v", got)
	}
}

func TestWithoutActiveContext(t *testing.T) {
	s := Session{
		SessionToken:   "tok",
		UserID:         "u1",
		FullName:       "Ana",
		Email:          "a@x.com",
		ActiveLeagueID: "league-1",
		ActiveTeamID:   "team-1",
	}

	got := s.WithoutActiveContext()
	if got.ActiveLeagueID != "" || got.ActiveTeamID != "" {
		t.Errorf("context not cleared: (%q, %q)", got.ActiveLeagueID, got.ActiveTeamID)
	}
	if !got.IsAuthenticated() {
		t.Error("clearing context must not log the user out")
	}
	if got.FullName != "Ana" || got.Email != "a@x.com" {
		t.Errorf("identity fields changed: %+v", got)
	}
}
