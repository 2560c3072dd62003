package util

import (
	"os"
	"path/filepath"
	"strings"
)

// Dirs resolves per-user directories for one application using the XDG
// layout. Getenv and Home default to the process environment.
type Dirs struct {
	App    string
	Getenv func(string) string
	Home   func() (string, error)
}

// UserDirs returns the directories of app for the current user.
func UserDirs(app string) Dirs {
	return Dirs{App: app, Getenv: os.Getenv, Home: os.UserHomeDir}
}

func (d Dirs) home() string {
	if d.Home == nil {
		return ""
	}
	home, err := d.Home()
	if err != nil {
		return ""
	}
	return home
}

func (d Dirs) env(key string) string {
	if d.Getenv == nil {
		return ""
	}
	return strings.TrimSpace(d.Getenv(key))
}

// base returns $key or ~/<fallback>, or "." when no home is known.
func (d Dirs) base(key string, fallback ...string) string {
	if v := d.env(key); v != "" {
		return v
	}
	home := d.home()
	if home == "" {
		return "."
	}
	return filepath.Join(append([]string{home}, fallback...)...)
}

// Data is where the log file lives: $XDG_DATA_HOME/<app>.
func (d Dirs) Data() string {
	return filepath.Join(d.base("XDG_DATA_HOME", ".local", "share"), d.App)
}

// Config is $XDG_CONFIG_HOME/<app>.
func (d Dirs) Config() string {
	return filepath.Join(d.base("XDG_CONFIG_HOME", ".config"), d.App)
}

// Reports is where PDF exports go: <documents>/<APP>.
func (d Dirs) Reports() string {
	return filepath.Join(d.Documents(), strings.ToUpper(d.App))
}

// Documents honors XDG_DOCUMENTS_DIR from the environment or from
// ~/.config/user-dirs.dirs before falling back to ~/Documents.
func (d Dirs) Documents() string {
	if v := d.env("XDG_DOCUMENTS_DIR"); v != "" {
		return d.expandHome(v)
	}
	home := d.home()
	if home == "" {
		return "."
	}
	if data, err := os.ReadFile(filepath.Join(home, ".config", "user-dirs.dirs")); err == nil {
		if dir := parseUserDir(string(data), "XDG_DOCUMENTS_DIR"); dir != "" {
			return d.expandHome(dir)
		}
	}
	return filepath.Join(home, "Documents")
}

func parseUserDir(data, key string) string {
	for _, line := range strings.Split(data, "\n") {
		line = strings.TrimSpace(line)
		if value, ok := strings.CutPrefix(line, key+"="); ok {
			return strings.Trim(value, "\"")
		}
	}
	return ""
}

func (d Dirs) expandHome(path string) string {
	if !strings.Contains(path, "$HOME") {
		return path
	}
	return strings.ReplaceAll(path, "$HOME", d.home())
}
