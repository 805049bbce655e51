// ABOUTME: Standard filesystem paths for termsim configuration
// ABOUTME: Resolves ~/.termsim/ for global and .termsim/ for project-local files

package config

import (
	"os"
	"path/filepath"
)

const (
	dirName  = ".termsim"
	fileName = "config.yaml"
)

// GlobalDir returns the user-global config directory (~/.termsim/).
func GlobalDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", dirName)
	}
	return filepath.Join(home, dirName)
}

// ProjectDir returns the project-local config directory (.termsim/ in root).
func ProjectDir(projectRoot string) string {
	return filepath.Join(projectRoot, dirName)
}

// GlobalConfigFile returns the path to the global config file.
func GlobalConfigFile() string {
	return filepath.Join(GlobalDir(), fileName)
}

// ProjectConfigFile returns the path to the project-local config file.
func ProjectConfigFile(projectRoot string) string {
	return filepath.Join(ProjectDir(projectRoot), fileName)
}

// LogFile returns where the interactive mode writes its log.
func LogFile() string {
	return filepath.Join(GlobalDir(), "termsim.log")
}

// WatchPaths lists every file whose change should reload s: the config
// layers plus the text and theme files it points at.
func WatchPaths(projectRoot, explicit string, s *Settings) []string {
	paths := []string{GlobalConfigFile(), ProjectConfigFile(projectRoot)}
	for _, p := range []string{explicit, s.TextFile, s.ThemeFile} {
		if p != "" && p != "-" {
			paths = append(paths, p)
		}
	}
	return paths
}

// EnsureDir creates a directory and all parents if they don't exist.
func EnsureDir(path string) error {
	return os.MkdirAll(path, 0o755)
}
