package domain

import (
	"errors"
	"regexp"
	"strings"
)

// MinPasswordLen is the minimum accepted password length.
const MinPasswordLen = 6

var emailRx = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Form validation errors, surfaced verbatim next to the offending form.
var (
	ErrNameRequired      = errors.New("Please enter your full name")
	ErrInvalidEmail      = errors.New("Please enter a valid email address")
	ErrPasswordTooShort  = errors.New("Password must be at least 6 characters")
	ErrPasswordMismatch  = errors.New("Passwords do not match")
	ErrPasswordRequired  = errors.New("Please enter your password")
	ErrInviteeName       = errors.New("Please enter a name")
	ErrSelfInvite        = errors.New("You cannot invite yourself")
	ErrTeamNotSelected   = errors.New("Please select a team")
	ErrInviteTokenNeeded = errors.New("Please enter an invite token")
)

// ValidEmail reports whether s looks like an email address. Real
// validation is the server's job; this just catches obvious typos
// before a request is made.
func ValidEmail(s string) bool {
	return emailRx.MatchString(s)
}

// ValidateRegistration checks a registration form. Returns the first
// violation found, nil when the form can be submitted.
func ValidateRegistration(fullName, email, password, confirmation string) error {
	if strings.TrimSpace(fullName) == "" {
		return ErrNameRequired
	}
	if !ValidEmail(strings.TrimSpace(email)) {
		return ErrInvalidEmail
	}
	if len(password) < MinPasswordLen {
		return ErrPasswordTooShort
	}
	if password != confirmation {
		return ErrPasswordMismatch
	}
	return nil
}

// ValidateLogin checks a login form.
func ValidateLogin(email, password string) error {
	if !ValidEmail(strings.TrimSpace(email)) {
		return ErrInvalidEmail
	}
	if password == "" {
		return ErrPasswordRequired
	}
	return nil
}

// ValidateInviteForm checks the send-invite dialog. currentUserEmail is
// the sender's address; inviting yourself is rejected locally.
func ValidateInviteForm(inviteeName, inviteeEmail, currentUserEmail string) error {
	if strings.TrimSpace(inviteeName) == "" {
		return ErrInviteeName
	}
	if !ValidEmail(strings.TrimSpace(inviteeEmail)) {
		return ErrInvalidEmail
	}
	if strings.EqualFold(strings.TrimSpace(inviteeEmail), strings.TrimSpace(currentUserEmail)) {
		return ErrSelfInvite
	}
	return nil
}
