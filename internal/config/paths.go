package config

import (
	"os"
	"path/filepath"
)

// Paths contains standard filesystem paths for the CLI.
type Paths struct {
	// HomeDir is the CLI home directory (~/.blueprint).
	HomeDir string

	// ConfigFile is the path to the config file (~/.blueprint/config.yaml).
	ConfigFile string
}

// DefaultPaths returns the default paths.
func DefaultPaths() (*Paths, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	cliHome := filepath.Join(homeDir, ".blueprint")

	return &Paths{
		HomeDir:    cliHome,
		ConfigFile: filepath.Join(cliHome, "config.yaml"),
	}, nil
}

// GetConfigFile returns the config file path.
// If BLUEPRINT_CONFIG is set, it takes precedence.
func GetConfigFile() (string, error) {
	if envPath := os.Getenv("BLUEPRINT_CONFIG"); envPath != "" {
		return envPath, nil
	}

	paths, err := DefaultPaths()
	if err != nil {
		return "", err
	}

	return paths.ConfigFile, nil
}

// ExpandPath expands ~ to the user's home directory.
func ExpandPath(path string) (string, error) {
	if len(path) == 0 {
		return path, nil
	}

	if path[0] != '~' {
		return path, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	if len(path) == 1 {
		return homeDir, nil
	}

	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(homeDir, path[2:]), nil
	}

	// ~username is not supported and returned as-is.
	return path, nil
}

// FindProjectRoot walks up from start looking for a directory named dirName.
// It returns the path of the first match, skipping exclude (typically the
// global root, which may share the same name). When nothing is found it
// returns filepath.Join(start, dirName) and false.
func FindProjectRoot(start, dirName, exclude string) (string, bool) {
	dir, err := filepath.Abs(start)
	if err != nil {
		dir = start
	}
	if exclude != "" {
		if abs, err := filepath.Abs(exclude); err == nil {
			exclude = abs
		}
	}

	for current := dir; ; {
		candidate := filepath.Join(current, dirName)
		if candidate != exclude {
			if info, err := os.Stat(candidate); err == nil && info.IsDir() {
				return candidate, true
			}
		}

		parent := filepath.Dir(current)
		if parent == current {
			break
		}
		current = parent
	}

	return filepath.Join(dir, dirName), false
}
