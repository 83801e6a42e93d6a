package main

import (
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"

	"github.com/warriorfoot/warriorfoot/pkg/client"
)

func TestAuthModeFromEnv(t *testing.T) {
	tests := []struct {
		value string
		want  client.AuthMode
	}{
		{"", client.AuthBearer},
		{"bearer", client.AuthBearer},
		{"cookie", client.AuthCookie},
		{"COOKIE", client.AuthBearer}, // exact match only
		{"nonsense", client.AuthBearer},
	}
	for _, tc := range tests {
		t.Run("value="+tc.value, func(t *testing.T) {
			t.Setenv("WARRIORFOOT_AUTH_MODE", tc.value)
			if got := authModeFromEnv(); got != tc.want {
				t.Errorf("authModeFromEnv() = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestLogLevelFromEnv(t *testing.T) {
	tests := []struct {
		value string
		want  zerolog.Level
	}{
		{"", zerolog.InfoLevel},
		{"debug", zerolog.DebugLevel},
		{"warn", zerolog.WarnLevel},
		{"bogus", zerolog.InfoLevel},
	}
	for _, tc := range tests {
		t.Run("value="+tc.value, func(t *testing.T) {
			t.Setenv("WARRIORFOOT_LOG_LEVEL", tc.value)
			if got := logLevelFromEnv(); got != tc.want {
				t.Errorf("logLevelFromEnv() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestConfigDirOverride(t *testing.T) {
	t.Setenv("WARRIORFOOT_CONFIG_DIR", "/tmp/wf-test")
	dir, err := configDir()
	if err != nil {
		t.Fatalf("configDir: %v", err)
	}
	if dir != "/tmp/wf-test" {
		t.Errorf("configDir = %q, want override", dir)
	}
}

func TestConfigDirDefault(t *testing.T) {
	t.Setenv("WARRIORFOOT_CONFIG_DIR", "")
	t.Setenv("HOME", t.TempDir())
	dir, err := configDir()
	if err != nil {
		t.Fatalf("configDir: %v", err)
	}
	if filepath.Base(dir) != ".warriorfoot" {
		t.Errorf("configDir = %q, want ~/.warriorfoot", dir)
	}
}
