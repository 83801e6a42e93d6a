package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/warriorfoot/warriorfoot/internal/logging"
	"github.com/warriorfoot/warriorfoot/internal/session"
	"github.com/warriorfoot/warriorfoot/internal/tui"
	"github.com/warriorfoot/warriorfoot/pkg/client"
)

// version is set at build time via -ldflags "-X main.version=..."
var version = "dev"

const defaultAPIURL = "http://localhost:8080"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// configDir returns the state directory, WARRIORFOOT_CONFIG_DIR or
// ~/.warriorfoot.
func configDir() (string, error) {
	if dir := os.Getenv("WARRIORFOOT_CONFIG_DIR"); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home dir: %w", err)
	}
	return filepath.Join(home, ".warriorfoot"), nil
}

// authModeFromEnv maps WARRIORFOOT_AUTH_MODE to a client transport.
// Anything but "cookie" means the default bearer header.
func authModeFromEnv() client.AuthMode {
	if os.Getenv("WARRIORFOOT_AUTH_MODE") == "cookie" {
		return client.AuthCookie
	}
	return client.AuthBearer
}

// logLevelFromEnv parses WARRIORFOOT_LOG_LEVEL, defaulting to info.
func logLevelFromEnv() zerolog.Level {
	lvl, err := zerolog.ParseLevel(os.Getenv("WARRIORFOOT_LOG_LEVEL"))
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return lvl
}

func run() error {
	godotenv.Load() //nolint:errcheck // a .env file is optional

	apiURL := os.Getenv("WARRIORFOOT_API_URL")
	if apiURL == "" {
		apiURL = defaultAPIURL
	}

	dir, err := configDir()
	if err != nil {
		return err
	}
	log := logging.NewFileLogger(filepath.Join(dir, "debug.log"), logLevelFromEnv())

	store := session.NewStore(session.NewFileAdapter(filepath.Join(dir, "session.json")), log)
	c := client.New(apiURL, store,
		client.WithAuthMode(authModeFromEnv()),
		client.WithLogger(log),
	)

	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "version", "-v":
			fmt.Println("warriorfoot " + version)
			return nil
		case "help", "--help", "-h":
			printHelp()
			return nil
		case "whoami":
			return runWhoami(store)
		case "logout":
			return runLogout(c, store)
		default:
			fmt.Fprintf(os.Stderr, "unknown command %q\n\n", os.Args[1])
			printHelp()
			return nil
		}
	}

	app := tui.NewApp(c, store, version)
	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui error: %w", err)
	}
	return nil
}

func runWhoami(store *session.Store) error {
	cur := store.Current()
	if !cur.IsAuthenticated() {
		fmt.Println("Not logged in.")
		return nil
	}
	fmt.Printf("%s <%s>\n", cur.FullName, cur.Email)
	if cur.HasActiveLeague() {
		fmt.Printf("active league: %s\n", cur.ActiveLeagueID)
	}
	return nil
}

func runLogout(c *client.Client, store *session.Store) error {
	if !store.IsAuthenticated() {
		fmt.Println("Already logged out.")
		return nil
	}
	// Best-effort server invalidation; the local session clears either way.
	c.Logout(context.Background()) //nolint:errcheck
	store.ClearAuth()
	fmt.Println("Logged out.")
	return nil
}
