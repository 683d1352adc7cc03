package util

import (
	"os"
	"path/filepath"
	"strings"
)

// xdgDir resolves env, falling back to $HOME joined with rest.
func xdgDir(env string, rest ...string) string {
	if base := strings.TrimSpace(os.Getenv(env)); base != "" {
		return expandHome(base)
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "."
	}
	return filepath.Join(append([]string{home}, rest...)...)
}

// DataDir holds the store and the log file.
func DataDir(app string) string {
	return filepath.Join(xdgDir("XDG_DATA_HOME", ".local", "share"), app)
}

func ConfigDir(app string) string {
	return filepath.Join(xdgDir("XDG_CONFIG_HOME", ".config"), app)
}

// ReportsDir is where exports and PDF reports land by default.
func ReportsDir(app string) string {
	return filepath.Join(DocumentsDir(), strings.ToUpper(app))
}

// DocumentsDir honours XDG_DOCUMENTS_DIR and ~/.config/user-dirs.dirs.
func DocumentsDir() string {
	if os.Getenv("XDG_DOCUMENTS_DIR") == "" {
		if dir := userDirsEntry("XDG_DOCUMENTS_DIR"); dir != "" {
			return expandHome(dir)
		}
	}
	return xdgDir("XDG_DOCUMENTS_DIR", "Documents")
}

// LatestFile returns the newest file in dir whose name starts with prefix.
func LatestFile(dir, prefix string) (string, bool) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", false
	}
	var best string
	var bestMod int64
	for _, e := range entries {
		if e.IsDir() || !strings.HasPrefix(e.Name(), prefix) {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		if mod := info.ModTime().UnixNano(); best == "" || mod > bestMod {
			best, bestMod = filepath.Join(dir, e.Name()), mod
		}
	}
	return best, best != ""
}

func userDirsEntry(key string) string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return ""
	}
	data, err := os.ReadFile(filepath.Join(home, ".config", "user-dirs.dirs"))
	if err != nil {
		return ""
	}
	for _, line := range strings.Split(string(data), "\n") {
		name, value, ok := strings.Cut(strings.TrimSpace(line), "=")
		if ok && name == key {
			return strings.Trim(value, `"`)
		}
	}
	return ""
}

func expandHome(path string) string {
	if !strings.Contains(path, "$HOME") {
		return path
	}
	home, _ := os.UserHomeDir()
	return strings.ReplaceAll(path, "$HOME", home)
}
