package domain

import "github.com/google/uuid"

// InviteExpirationDays is how long an invite token stays redeemable.
const InviteExpirationDays = 7

// InviteValidation is the server's verdict on an invite token. When
// Valid is false, ErrorMessage says why (expired, already used, unknown).
type InviteValidation struct {
	Valid        bool      `json:"valid"`
	InviterName  string    `json:"inviterName"`
	InviteeName  string    `json:"inviteeName"`
	LeagueID     uuid.UUID `json:"leagueId"`
	ErrorMessage string    `json:"errorMessage,omitempty"`
}

// AvailableTeam is an unmanaged team the invitee can claim.
type AvailableTeam struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	ColorPrimary   string    `json:"colorPrimary"`
	ColorSecondary string    `json:"colorSecondary"`
}
