package domain

import "github.com/google/uuid"

// Squad composition — every generated squad has the same spread.
const (
	PlayersPerTeam     = 22
	GoalkeepersPerTeam = 2
	DefendersPerTeam   = 6
	MidfieldersPerTeam = 8
	ForwardsPerTeam    = 6
)

// Position codes as the API reports them.
const (
	PositionGoalkeeper = "GK"
	PositionDefender   = "DEF"
	PositionMidfielder = "MID"
	PositionForward    = "FWD"
)

// PlayerSummary is the roster-row view of a player.
type PlayerSummary struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Age         int       `json:"age"`
	Position    string    `json:"position"`
	Overall     int       `json:"overall"`
	MarketValue int64     `json:"marketValue"`
}

// IsGoalkeeper reports whether the player plays in goal. Goalkeepers
// carry the GK attribute block instead of the outfield categories.
func (p PlayerSummary) IsGoalkeeper() bool {
	return p.Position == PositionGoalkeeper
}

// PlayerDetails is the full attribute sheet. Outfield players populate
// the six category blocks; goalkeepers populate the GK block. Attributes
// outside a player's blocks come back as null, hence the pointers.
type PlayerDetails struct {
	PlayerSummary

	Pace         *int `json:"pace"`
	Acceleration *int `json:"acceleration"`
	SprintSpeed  *int `json:"sprintSpeed"`

	Shooting    *int `json:"shooting"`
	AttPosition *int `json:"attPosition"`
	Finishing   *int `json:"finishing"`
	ShotPower   *int `json:"shotPower"`
	LongShots   *int `json:"longShots"`
	Volleys     *int `json:"volleys"`
	Penalties   *int `json:"penalties"`

	Passing   *int `json:"passing"`
	Vision    *int `json:"vision"`
	Crossing  *int `json:"crossing"`
	FKAcc     *int `json:"fkAcc"`
	ShortPass *int `json:"shortPass"`
	LongPass  *int `json:"longPass"`
	Curve     *int `json:"curve"`

	Dribbling      *int `json:"dribbling"`
	Agility        *int `json:"agility"`
	Balance        *int `json:"balance"`
	Reactions      *int `json:"reactions"`
	BallControl    *int `json:"ballControl"`
	DribblingSkill *int `json:"dribblingSkill"`
	Composure      *int `json:"composure"`

	Defending     *int `json:"defending"`
	Interceptions *int `json:"interceptions"`
	HeadingAcc    *int `json:"headingAcc"`
	DefAware      *int `json:"defAware"`
	StandTackle   *int `json:"standTackle"`
	SlideTackle   *int `json:"slideTackle"`

	Physical   *int `json:"physical"`
	Jumping    *int `json:"jumping"`
	Stamina    *int `json:"stamina"`
	Strength   *int `json:"strength"`
	Aggression *int `json:"aggression"`

	Diving      *int `json:"diving"`
	Handling    *int `json:"handling"`
	Kicking     *int `json:"kicking"`
	Reflexes    *int `json:"reflexes"`
	Speed       *int `json:"speed"`
	Positioning *int `json:"positioning"`
}

// SquadAverage returns the mean overall rating of a squad, 0 for an
// empty roster.
func SquadAverage(players []PlayerSummary) float64 {
	if len(players) == 0 {
		return 0
	}
	sum := 0
	for _, p := range players {
		sum += p.Overall
	}
	return float64(sum) / float64(len(players))
}
