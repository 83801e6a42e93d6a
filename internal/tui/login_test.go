package tui

import (
	"net/http"
	"net/http/httptest"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/warriorfoot/warriorfoot/pkg/client"
)

func TestLoginLocalValidation(t *testing.T) {
	m := newLoginModel(nil)
	m.fields = [numLoginFields]string{"nope", "secret"}
	m.focus = loginPassword

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd != nil {
		t.Error("invalid email must not reach the server")
	}
	if m.err != "Please enter a valid email address" {
		t.Errorf("err = %q", m.err)
	}

	m.fields = [numLoginFields]string{"avery@example.com", ""}
	m, cmd = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd != nil {
		t.Error("empty password must not reach the server")
	}
	if m.err != "Please enter your password" {
		t.Errorf("err = %q", m.err)
	}
}

func TestLoginSuccessEmitsAuthSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/login" {
			t.Errorf("path = %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"sessionToken":"tok-1","userId":"u-1","fullName":"Avery Cole","email":"avery@example.com"}`)) //nolint:errcheck
	}))
	defer srv.Close()

	m := newLoginModel(client.New(srv.URL, nil))
	m.fields = [numLoginFields]string{"avery@example.com", "secret1"}
	m.focus = loginPassword

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected login command")
	}
	if !m.submitting {
		t.Error("expected submitting flag")
	}

	m, next := m.Update(cmd().(loginDoneMsg))
	if m.submitting {
		t.Error("submitting flag not cleared")
	}
	if next == nil {
		t.Fatal("expected authSuccessMsg command")
	}
	auth, ok := next().(authSuccessMsg)
	if !ok {
		t.Fatalf("got %T, want authSuccessMsg", next())
	}
	if auth.bundle.SessionToken != "tok-1" || auth.bundle.FullName != "Avery Cole" {
		t.Errorf("bundle = %+v", auth.bundle)
	}
}

func TestLoginFailureShowsServerMessage(t *testing.T) {
	m := newLoginModel(nil)
	m.submitting = true
	m, _ = m.Update(loginDoneMsg{err: apiErr(401, client.KindUnauthorized, "Invalid email or password")})
	if m.err != "Invalid email or password" {
		t.Errorf("err = %q", m.err)
	}
}

func TestLoginKeysIgnoredWhileSubmitting(t *testing.T) {
	m := newLoginModel(nil)
	m.submitting = true
	m, _ = m.Update(keyRunes("x"))
	if m.fields[loginEmail] != "" {
		t.Error("keystroke accepted while submitting")
	}
}

func TestLoginTabCyclesFocus(t *testing.T) {
	m := newLoginModel(nil)
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if m.focus != loginPassword {
		t.Errorf("focus = %d, want loginPassword", m.focus)
	}
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if m.focus != loginEmail {
		t.Errorf("focus = %d, want loginEmail (wrap)", m.focus)
	}
}

func TestRegisterLocalValidation(t *testing.T) {
	m := newRegisterModel(nil)
	m.fields = [numRegisterFields]string{"", "avery@example.com", "secret1", "secret1"}
	m.focus = regConfirmation

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd != nil {
		t.Error("empty name must not reach the server")
	}
	if m.err != "Please enter your full name" {
		t.Errorf("err = %q", m.err)
	}

	m.fields = [numRegisterFields]string{"Avery Cole", "avery@example.com", "short", "short"}
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if m.err != "Password must be at least 6 characters" {
		t.Errorf("err = %q", m.err)
	}
}

func TestRegisterSuccessEmitsAuthSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/register" {
			t.Errorf("path = %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"sessionToken":"tok-2","userId":"u-2","fullName":"Avery Cole","email":"avery@example.com"}`)) //nolint:errcheck
	}))
	defer srv.Close()

	m := newRegisterModel(client.New(srv.URL, nil))
	m.fields = [numRegisterFields]string{"Avery Cole", "avery@example.com", "secret1", "secret1"}
	m.focus = regConfirmation

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected register command")
	}
	m, next := m.Update(cmd().(registerDoneMsg))
	if next == nil {
		t.Fatal("expected authSuccessMsg command")
	}
	if _, ok := next().(authSuccessMsg); !ok {
		t.Fatalf("got %T, want authSuccessMsg", next())
	}
}
