package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds the default Lutris locations used when flags leave them unset.
type Config struct {
	DatabasePath string
	YMLDir       string
	GameDir      string
}

// Load reads .env (if present) and resolves the Lutris paths. Each of
// LUTRIS_DATABASE, LUTRIS_YML_DIR and LUTRIS_GAME_DIR overrides the per-user
// default under the home directory.
func Load() (Config, error) {
	_ = godotenv.Load()

	home, err := os.UserHomeDir()
	if err != nil {
		return Config{}, fmt.Errorf("resolve home directory: %w", err)
	}

	return Config{
		DatabasePath: fromEnv("LUTRIS_DATABASE", filepath.Join(home, ".local", "share", "lutris", "pga.db"), home),
		YMLDir:       fromEnv("LUTRIS_YML_DIR", filepath.Join(home, ".config", "lutris", "games"), home),
		GameDir:      fromEnv("LUTRIS_GAME_DIR", filepath.Join(home, "Games"), home),
	}, nil
}

func fromEnv(key, fallback, home string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	return ExpandHome(v, home)
}

// ExpandHome replaces a leading "~" with home.
func ExpandHome(path, home string) string {
	if path == "~" {
		return home
	}
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(home, path[2:])
	}
	return path
}
