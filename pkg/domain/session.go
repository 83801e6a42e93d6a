package domain

// Session is the client-held record of the authenticated user's identity
// and the league/team context they are currently operating in. A session
// is authenticated iff SessionToken is non-empty; the active-context
// fields are meaningful only while authenticated and may be empty even
// then (the user has not picked a league yet).
type Session struct {
	SessionToken   string `json:"sessionToken"`
	UserID         string `json:"userId"`
	FullName       string `json:"fullName"`
	Email          string `json:"email"`
	ActiveLeagueID string `json:"activeLeagueId,omitempty"`
	ActiveTeamID   string `json:"activeTeamId,omitempty"`
}

// IsAuthenticated reports whether the session holds a credential.
func (s Session) IsAuthenticated() bool {
	return s.SessionToken != ""
}

// HasActiveLeague reports whether a league context is selected.
func (s Session) HasActiveLeague() bool {
	return s.ActiveLeagueID != ""
}

// WithActiveContext returns a copy with the active league/team replaced.
// Identity fields carry over untouched.
func (s Session) WithActiveContext(leagueID, teamID string) Session {
	s.ActiveLeagueID = leagueID
	s.ActiveTeamID = teamID
	return s
}

// WithoutActiveContext returns a copy with the active league/team cleared,
// identity fields preserved. Used when the active league is deleted or left.
func (s Session) WithoutActiveContext() Session {
	return s.WithActiveContext("", "")
}
