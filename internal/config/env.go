package config

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"git.home.luguber.info/inful/pagesmith/internal/logfields"
)

// Environment variables read by pagesmith.
const (
	EnvLogLevel       = "PAGESMITH_LOG_LEVEL"
	EnvPackageRunner  = "PAGESMITH_PACKAGE_RUNNER"
	EnvPackageManager = "PAGESMITH_PACKAGE_MANAGER"
)

// envFiles are tried in order; variables already set in the process win.
var envFiles = []string{".env", ".env.local"}

// LoadEnvFiles loads .env style files from dir. Missing files are skipped and
// the names of the loaded files are returned.
func LoadEnvFiles(dir string) []string {
	var loaded []string
	for _, name := range envFiles {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			slog.Warn("Failed to load env file", logfields.Path(path), logfields.Error(err))
			continue
		}
		slog.Debug("Loaded environment file", logfields.Path(path))
		loaded = append(loaded, path)
	}
	return loaded
}

// ApplyEnvOverrides replaces toolchain settings with values from the environment.
func (t Toolchain) ApplyEnvOverrides() Toolchain {
	out := t
	if v := os.Getenv(EnvPackageRunner); v != "" {
		out.PackageRunner = v
	}
	if v := os.Getenv(EnvPackageManager); v != "" {
		out.PackageManager = v
	}
	return out
}
