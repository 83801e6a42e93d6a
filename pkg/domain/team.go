package domain

import "github.com/google/uuid"

// TeamSummary is the basic team info shown on the league dashboard.
type TeamSummary struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	ColorPrimary   string    `json:"colorPrimary"`
	ColorSecondary string    `json:"colorSecondary"`
	DivisionLevel  int       `json:"divisionLevel"`
}

// TeamInfo is the full team detail, including who manages it.
type TeamInfo struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	ColorPrimary   string    `json:"colorPrimary"`
	ColorSecondary string    `json:"colorSecondary"`
	DivisionLevel  int       `json:"divisionLevel"`
	ManagerName    string    `json:"managerName"`
}
