// Package config handles loading rem configuration files.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/remsh/rem/internal/paths"
)

// Config represents the rem config file.
type Config struct {
	Storage Storage `toml:"storage"`
	Editor  Editor  `toml:"editor"`
}

// Storage contains storage-related configuration.
type Storage struct {
	// Root overrides the default task storage root.
	Root string `toml:"root"`
}

// Editor contains editor-related configuration.
type Editor struct {
	// Command overrides $EDITOR when opening task files.
	Command string `toml:"command"`
}

// Load loads configuration from the global config file and an optional
// rem.toml in workDir, with workDir values taking precedence. Returns an
// empty config if no config files exist.
func Load(workDir string) (*Config, error) {
	globalPath, err := paths.DefaultConfigPath()
	if err != nil {
		return nil, err
	}

	globalCfg, globalMeta, err := loadConfigFile(globalPath)
	if err != nil {
		return nil, err
	}

	localCfg, localMeta, err := loadConfigFile(filepath.Join(workDir, "rem.toml"))
	if err != nil {
		return nil, err
	}

	return mergeConfigs(globalCfg, localCfg, globalMeta, localMeta), nil
}

// TasksRoot returns the configured storage root, falling back to the
// default location under the user's home.
func (c *Config) TasksRoot() (string, error) {
	if c != nil && c.Storage.Root != "" {
		return c.Storage.Root, nil
	}
	return paths.DefaultTasksDir()
}

func loadConfigFile(path string) (*Config, toml.MetaData, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &Config{}, toml.MetaData{}, nil
	}
	if err != nil {
		return nil, toml.MetaData{}, fmt.Errorf("read config file %s: %w", path, err)
	}

	var cfg Config
	meta, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return nil, toml.MetaData{}, fmt.Errorf("parse config file %s: %w", path, err)
	}

	return &cfg, meta, nil
}

func mergeConfigs(globalCfg, localCfg *Config, globalMeta, localMeta toml.MetaData) *Config {
	if globalCfg == nil {
		globalCfg = &Config{}
	}
	if localCfg == nil {
		localCfg = &Config{}
	}

	merged := Config{}
	merged.Storage.Root = mergeString(localMeta.IsDefined("storage", "root"), localCfg.Storage.Root, globalCfg.Storage.Root)
	merged.Editor.Command = mergeString(localMeta.IsDefined("editor", "command"), localCfg.Editor.Command, globalCfg.Editor.Command)
	return &merged
}

func mergeString(localDefined bool, localValue, globalValue string) string {
	value := globalValue
	if localDefined {
		value = localValue
	}
	return strings.TrimSpace(value)
}
