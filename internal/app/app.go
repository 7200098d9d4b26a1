package app

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/kontigo/kontigo/internal/banking"
	"github.com/kontigo/kontigo/internal/config"
	"github.com/kontigo/kontigo/internal/notify"
	"github.com/kontigo/kontigo/internal/store"
)

// App is the explicit run context: config, store handle and
// notification channels, built once at startup and passed to each
// command.
type App struct {
	Config   *config.Config
	Store    store.Repository
	Channels []notify.Channel
	Dial     banking.Dialer
}

// NewApp initializes the database and notification channels, then
// returns the App and a cleanup func.
func NewApp(cfg *config.Config, migrationsFS fs.FS) (*App, func(), error) {
	dbPath := cfg.Database.Path
	if dbPath == "" {
		appDir, err := DataDir()
		if err != nil {
			return nil, nil, err
		}
		dbPath = filepath.Join(appDir, "kontigo.db")
	}

	dbStore, err := store.NewStore(dbPath, migrationsFS)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	var channels []notify.Channel
	if cfg.Notify.Stdout {
		channels = append(channels, notify.NewConsole())
	}
	if t := cfg.Notify.Telegram; t != nil {
		channels = append(channels, notify.NewTelegram(t.BotToken, t.ChatID))
	}

	cleanup := func() {
		if err := dbStore.Close(); err != nil {
			fmt.Printf("Error closing DB: %v\n", err)
		}
	}

	return &App{
		Config:   cfg,
		Store:    dbStore,
		Channels: channels,
		Dial:     banking.Dial,
	}, cleanup, nil
}

// DataDir is where the config file and database live by default.
func DataDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("unable to determine user home directory: %w", err)
		}
		return filepath.Join(home, ".kontigo"), nil
	}

	return filepath.Join(configDir, "kontigo"), nil
}
