package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"sync"

	"gopkg.in/yaml.v3"
)

// Config file structure
type configFile struct {
	Tools       []string `yaml:"tools"`
	LogPath     string   `yaml:"log_path"`
	AugmentPath *bool    `yaml:"augment_path"`
}

// DefaultTools is checked when neither the command line nor the config file
// names any tools.
var DefaultTools = []string{"cargo", "rustc", "rustup"}

var (
	loadedConfig configFile
	loadErr      error
	configMu     sync.RWMutex
)

func init() {
	loadConfig()
}

// loadConfig loads configuration from file
func loadConfig() {
	configMu.Lock()
	defer configMu.Unlock()

	// Reset to empty
	loadedConfig = configFile{}
	loadErr = nil

	configPath := Path()
	if configPath == "" {
		return
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return // Config file doesn't exist, use defaults
	}

	if err := yaml.Unmarshal(data, &loadedConfig); err != nil {
		loadedConfig = configFile{}
		loadErr = err
	}
}

// Reload re-reads the config file, e.g. after TOOLPATH_CONFIG_PATH changed.
func Reload() error {
	loadConfig()
	return Err()
}

// Err returns the parse error of the last load, if any. A missing file is
// not an error.
func Err() error {
	configMu.RLock()
	defer configMu.RUnlock()
	return loadErr
}

// Path returns the config file location
// Priority: TOOLPATH_CONFIG_PATH env var > ~/.toolpath/config.yaml
func Path() string {
	if envPath := os.Getenv("TOOLPATH_CONFIG_PATH"); envPath != "" {
		return envPath
	}
	dir := toolpathDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "config.yaml")
}

// toolpathDir returns the base directory for toolpath files
func toolpathDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".toolpath")
}

// Tools returns the tools to check when none are given explicitly
// Priority: config file > DefaultTools
func Tools() []string {
	configMu.RLock()
	tools := loadedConfig.Tools
	configMu.RUnlock()
	if len(tools) > 0 {
		return append([]string(nil), tools...)
	}
	return append([]string(nil), DefaultTools...)
}

// LogPath returns the log file path
// Priority: TOOLPATH_LOG_PATH env var > config file > default
func LogPath() string {
	// 1. Environment variable (highest priority)
	if envPath := os.Getenv("TOOLPATH_LOG_PATH"); envPath != "" {
		return envPath
	}

	// 2. Config file
	configMu.RLock()
	configPath := loadedConfig.LogPath
	configMu.RUnlock()
	if configPath != "" {
		return configPath
	}

	// 3. Default
	dir := toolpathDir()
	if dir == "" {
		return filepath.Join(os.TempDir(), "toolpath.log")
	}
	return filepath.Join(dir, "toolpath.log")
}

// AugmentPath reports whether common tool directories should be merged into
// PATH before resolving.
// Priority: TOOLPATH_AUGMENT_PATH env var > config file > false
//
// An unparsable env value is reported as an error and skipped, so the config
// file value still applies.
func AugmentPath() (bool, error) {
	var envErr error
	if v := os.Getenv("TOOLPATH_AUGMENT_PATH"); v != "" {
		on, err := strconv.ParseBool(v)
		if err == nil {
			return on, nil
		}
		envErr = fmt.Errorf("TOOLPATH_AUGMENT_PATH=%q is not a boolean", v)
	}

	configMu.RLock()
	defer configMu.RUnlock()
	if loadedConfig.AugmentPath != nil {
		return *loadedConfig.AugmentPath, envErr
	}
	return false, envErr
}
