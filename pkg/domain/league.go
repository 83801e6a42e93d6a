package domain

import (
	"time"

	"github.com/google/uuid"
)

// League shape — every league is generated with the same pyramid.
const (
	TotalTeamsPerLeague = 32
	TotalDivisions      = 4
	TeamsPerDivision    = 8
	StartingDivision    = 4 // new managers start at the bottom
)

// DefaultLeagueName is used when a league is created without a name.
const DefaultLeagueName = "My First League"

// UserLeague is one entry in the authenticated user's league list.
// LeagueName and IsCreator are absent in older API revisions, so both
// decode as optional.
type UserLeague struct {
	LeagueID      uuid.UUID `json:"leagueId"`
	LeagueName    string    `json:"leagueName,omitempty"`
	TeamID        uuid.UUID `json:"teamId"`
	TeamName      string    `json:"teamName"`
	DivisionLevel int       `json:"divisionLevel"`
	CreatedAt     time.Time `json:"createdAt"`
	IsCreator     bool      `json:"isCreator,omitempty"`
}

// DisplayName returns the league name, falling back to the user's team
// name for payloads that predate league naming.
func (l UserLeague) DisplayName() string {
	if l.LeagueName != "" {
		return l.LeagueName
	}
	return l.TeamName
}

// CreatedLeague is the response to creating a new league.
type CreatedLeague struct {
	LeagueID      uuid.UUID `json:"leagueId"`
	LeagueName    string    `json:"leagueName,omitempty"`
	TeamID        uuid.UUID `json:"teamId"`
	TeamName      string    `json:"teamName"`
	DivisionLevel int       `json:"divisionLevel"`
}

// LeagueInfo is the league dashboard: teams grouped by division level.
type LeagueInfo struct {
	Divisions map[int][]TeamSummary `json:"divisions"`
}

// DivisionLevels returns the division levels present, ascending
// (division 1 is the top flight).
func (l LeagueInfo) DivisionLevels() []int {
	levels := make([]int, 0, len(l.Divisions))
	for lv := range l.Divisions {
		levels = append(levels, lv)
	}
	for i := 1; i < len(levels); i++ {
		for j := i; j > 0 && levels[j] < levels[j-1]; j-- {
			levels[j], levels[j-1] = levels[j-1], levels[j]
		}
	}
	return levels
}
