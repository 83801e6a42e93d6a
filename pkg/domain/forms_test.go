package domain

import "testing"

func TestValidateRegistration(t *testing.T) {
	tests := []struct {
		name                               string
		fullName, email, password, confirm string
		wantErr                            error
	}{
		{"valid", "Ana Silva", "a@x.com", "secret1", "secret1", nil},
		{"empty name", "", "a@x.com", "secret1", "secret1", ErrNameRequired},
		{"whitespace name", "   ", "a@x.com", "secret1", "secret1", ErrNameRequired},
		{"bad email", "Ana", "not-an-email", "secret1", "secret1", ErrInvalidEmail},
		{"email without domain dot", "Ana", "a@x", "secret1", "secret1", ErrInvalidEmail},
		{"short password", "Ana", "a@x.com", "abc", "abc", ErrPasswordTooShort},
		{"mismatch", "Ana", "a@x.com", "secret1", "secret2", ErrPasswordMismatch},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateRegistration(tc.fullName, tc.email, tc.password, tc.confirm)
			if err != tc.wantErr {
				t.Errorf("ValidateRegistration() = %v, want %v", err, tc.wantErr)
			}
		})
	}
}

func TestValidateLogin(t *testing.T) {
	if err := ValidateLogin("a@x.com", "pw"); err != nil {
		t.Errorf("valid login rejected: %v", err)
	}
	if err := ValidateLogin("nope", "pw"); err != ErrInvalidEmail {
		t.Errorf("bad email: got %v, want ErrInvalidEmail", err)
	}
	if err := ValidateLogin("a@x.com", ""); err != ErrPasswordRequired {
		t.Errorf("empty password: got %v, want ErrPasswordRequired", err)
	}
}

func TestValidateInviteForm(t *testing.T) {
	tests := []struct {
		name                     string
		invitee, email, selfMail string
		wantErr                  error
	}{
		{"valid", "John", "john@x.com", "me@x.com", nil},
		{"empty name", "", "john@x.com", "me@x.com", ErrInviteeName},
		{"bad email", "John", "john", "me@x.com", ErrInvalidEmail},
		{"self invite", "Me", "me@x.com", "me@x.com", ErrSelfInvite},
		{"self invite different case", "Me", "ME@X.COM", "me@x.com", ErrSelfInvite},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateInviteForm(tc.invitee, tc.email, tc.selfMail)
			if err != tc.wantErr {
				t.Errorf("ValidateInviteForm() = %v, want %v", err, tc.wantErr)
			}
		})
	}
}

func TestValidEmail(t *testing.T) {
	valid := []string{"a@b.co", "first.last@sub.domain.org", "x+tag@y.io"}
	invalid := []string{"", "plain", "a@b", "a b@c.com", "@x.com", "a@.com "}
	for _, s := range valid {
		if !ValidEmail(s) {
			t.Errorf("ValidEmail(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if ValidEmail(s) {
			t.Errorf("ValidEmail(%q) = true, want false", s)
		}
	}
}
