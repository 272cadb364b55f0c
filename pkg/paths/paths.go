// Package paths provides centralized path handling for depot.
// It implements XDG Base Directory specification compliance and
// provides a consistent API for all path operations in the codebase.
package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/depot/pkg/errors"
)

// Environment variable names
const (
	// EnvDepotConfigDir overrides the XDG config directory for depot
	EnvDepotConfigDir = "DEPOT_CONFIG_DIR"

	// EnvDepotDataDir overrides the XDG data directory for depot
	EnvDepotDataDir = "DEPOT_DATA_DIR"

	// EnvDepotCacheDir overrides the XDG cache directory for depot
	EnvDepotCacheDir = "DEPOT_CACHE_DIR"

	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

// Default directories and files
const (
	// DepotDirName is the directory name for depot-specific files
	DepotDirName = "depot"

	// AppConfigFile is the name of the application config file under
	// the XDG config directory
	AppConfigFile = "depot.toml"

	// LogFileName is the name of the log file
	LogFileName = "depot.log"
)

// ManifestNames are the project manifest filenames, in search order.
var ManifestNames = []string{
	"depot.toml",
	".depot.toml",
	"depot.yaml",
	".depot.yaml",
}

// Paths provides centralized path management for depot
type Paths interface {
	WorkingDir() string
	ConfigDir() string
	DataDir() string
	CacheDir() string
	StateDir() string
	LogFilePath() string
	AppConfigPath() string
	ManifestCandidates() []string
	FindManifest() (string, error)
}

type paths struct {
	// workingDir anchors project manifest discovery
	workingDir string

	// xdgConfig is the XDG config directory
	xdgConfig string

	// xdgData is the XDG data directory
	xdgData string

	// xdgCache is the XDG cache directory
	xdgCache string

	// xdgState is the XDG state directory
	xdgState string
}

// New creates a new Paths instance anchored at the given working
// directory. An empty workingDir uses the current directory.
func New(workingDir string) (Paths, error) {
	p := &paths{}

	if workingDir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrInternal, "failed to get current directory")
		}
		p.workingDir = cwd
	} else {
		abs, err := filepath.Abs(expandHome(workingDir))
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrInternal, "failed to get absolute path for working directory")
		}
		p.workingDir = abs
	}

	p.setupXDGDirs()

	return p, nil
}

// setupXDGDirs initializes XDG directories, respecting environment overrides
func (p *paths) setupXDGDirs() {
	if configDir := os.Getenv(EnvDepotConfigDir); configDir != "" {
		p.xdgConfig = expandHome(configDir)
	} else {
		p.xdgConfig = filepath.Join(xdg.ConfigHome, DepotDirName)
	}

	if dataDir := os.Getenv(EnvDepotDataDir); dataDir != "" {
		p.xdgData = expandHome(dataDir)
	} else {
		p.xdgData = filepath.Join(xdg.DataHome, DepotDirName)
	}

	if cacheDir := os.Getenv(EnvDepotCacheDir); cacheDir != "" {
		p.xdgCache = expandHome(cacheDir)
	} else {
		p.xdgCache = filepath.Join(xdg.CacheHome, DepotDirName)
	}

	// XDG state home has no env override of its own
	if stateDir := os.Getenv("XDG_STATE_HOME"); stateDir != "" {
		p.xdgState = filepath.Join(stateDir, DepotDirName)
	} else {
		homeDir, _ := os.UserHomeDir()
		p.xdgState = filepath.Join(homeDir, ".local", "state", DepotDirName)
	}
}

// WorkingDir returns the directory manifest discovery is anchored at
func (p *paths) WorkingDir() string {
	return p.workingDir
}

// ConfigDir returns the XDG config directory for depot
func (p *paths) ConfigDir() string {
	return p.xdgConfig
}

// DataDir returns the XDG data directory for depot
func (p *paths) DataDir() string {
	return p.xdgData
}

// CacheDir returns the XDG cache directory for depot
func (p *paths) CacheDir() string {
	return p.xdgCache
}

// StateDir returns the XDG state directory for depot
func (p *paths) StateDir() string {
	return p.xdgState
}

// LogFilePath returns the path to the depot log file.
// Respects XDG_STATE_HOME if set
func (p *paths) LogFilePath() string {
	return filepath.Join(p.xdgState, LogFileName)
}

// AppConfigPath returns the path to the application-level config file
func (p *paths) AppConfigPath() string {
	return filepath.Join(p.xdgConfig, AppConfigFile)
}

// ManifestCandidates returns the manifest paths probed under the
// working directory, in priority order.
func (p *paths) ManifestCandidates() []string {
	candidates := make([]string, len(ManifestNames))
	for i, name := range ManifestNames {
		candidates[i] = filepath.Join(p.workingDir, name)
	}
	return candidates
}

// FindManifest returns the first existing manifest candidate.
func (p *paths) FindManifest() (string, error) {
	for _, candidate := range p.ManifestCandidates() {
		if stat, err := os.Stat(candidate); err == nil && !stat.IsDir() {
			return candidate, nil
		}
	}
	return "", errors.Newf(errors.ErrManifestNotFound, "no manifest found in %s (looked for %v)", p.workingDir, ManifestNames).
		WithDetail("dir", p.workingDir)
}

// ExpandHome expands ~ in paths
func ExpandHome(path string) string {
	return expandHome(path)
}

// expandHome expands ~ to the home directory
func expandHome(path string) string {
	if path == "" {
		return path
	}

	if path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			// Fallback to HOME env var
			homeDir = os.Getenv(EnvHome)
			if homeDir == "" {
				// Can't expand, return as-is
				return path
			}
		}

		if len(path) == 1 {
			return homeDir
		}

		// Handle both ~/ and ~
		if path[1] == '/' || path[1] == filepath.Separator {
			return filepath.Join(homeDir, path[2:])
		}

		// ~something (not the user's home)
		return path
	}

	return path
}
