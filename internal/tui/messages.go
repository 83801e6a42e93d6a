package tui

import (
	"github.com/warriorfoot/warriorfoot/pkg/client"
)

// Per-endpoint failure wording lives here, at the edge that renders it.
// The client layer only reports status kinds; the strings below match
// what each form shows for each case.

func loginErrorMessage(err error) string {
	if msg := client.Message(err); msg != "" {
		return msg
	}
	return "Login failed"
}

func registerErrorMessage(err error) string {
	if msg := client.Message(err); msg != "" {
		return msg
	}
	return "Registration failed"
}

func deleteLeagueErrorMessage(err error) string {
	if client.IsKind(err, client.KindInvalidInput) {
		return "Only league creator can delete the league"
	}
	return "Failed to delete league"
}

func leaveLeagueErrorMessage(err error) string {
	if client.IsKind(err, client.KindConflict) {
		return "League creator cannot leave. Delete the league instead."
	}
	return "Failed to leave league"
}

func sendInviteErrorMessage(err error) string {
	if client.IsKind(err, client.KindInvalidInput) {
		return "Invalid invite data. Please check the email address."
	}
	return "Failed to send invite"
}

func acceptInviteErrorMessage(err error) string {
	if client.IsKind(err, client.KindInvalidInput) {
		return "Invalid registration data"
	}
	if client.IsKind(err, client.KindUnauthorized) {
		return "Invalid password for existing account"
	}
	return "Failed to accept invite"
}
