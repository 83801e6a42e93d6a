package client

import (
	"fmt"
	"net/http"
	"testing"
)

func TestKindFromStatus(t *testing.T) {
	tests := []struct {
		code int
		want Kind
	}{
		{http.StatusBadRequest, KindInvalidInput},
		{http.StatusUnauthorized, KindUnauthorized},
		{http.StatusForbidden, KindUnauthorized},
		{http.StatusNotFound, KindNotFound},
		{http.StatusConflict, KindConflict},
		{http.StatusInternalServerError, KindUnknown},
		{http.StatusBadGateway, KindUnknown},
	}

	for _, tc := range tests {
		t.Run(fmt.Sprintf("%d", tc.code), func(t *testing.T) {
			if got := kindFromStatus(tc.code); got != tc.want {
				t.Errorf("kindFromStatus(%d) = %v, want %v", tc.code, got, tc.want)
			}
		})
	}
}

func TestIsKindThroughWrapping(t *testing.T) {
	base := &APIError{StatusCode: 409, Kind: KindConflict, Message: "creator cannot leave"}
	wrapped := fmt.Errorf("client.LeaveLeague: %w", base)

	if !IsKind(wrapped, KindConflict) {
		t.Error("IsKind should see through fmt.Errorf wrapping")
	}
	if IsKind(wrapped, KindInvalidInput) {
		t.Error("IsKind matched the wrong kind")
	}
	if !IsStatus(wrapped, 409) {
		t.Error("IsStatus should see through fmt.Errorf wrapping")
	}
	if got := Message(wrapped); got != "creator cannot leave" {
		t.Errorf("Message() = %q, want server message", got)
	}
}

func TestMessageNonAPIError(t *testing.T) {
	if got := Message(fmt.Errorf("plain error")); got != "" {
		t.Errorf("Message(plain error) = %q, want empty", got)
	}
}

func TestAPIErrorString(t *testing.T) {
	e := &APIError{StatusCode: 400, Kind: KindInvalidInput, Message: "bad input"}
	if got := e.Error(); got != "HTTP 400: bad input" {
		t.Errorf("Error() = %q, want %q", got, "HTTP 400: bad input")
	}
}
