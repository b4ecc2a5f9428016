// Config loading for the wiggle CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/AntiVntiAnti/Lil-Wiggle-Toe-Tracker-Dog-Tracking/internal/paths"
	"github.com/AntiVntiAnti/Lil-Wiggle-Toe-Tracker-Dog-Tracking/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"

	cfgKeyDataDir      = "data_dir"
	cfgKeyTemplatePath = "template_path"
)

// defaultConfigYAML is written to config.yaml on first run.
const defaultConfigYAML = `# Wiggle CLI configuration

# Data directory (optional; overridable by --data-dir flag)
# data_dir:

# Template database copied to seed a fresh store (optional; defaults to a
# wiggle_tracker.db shipped next to the executable)
# template_path:
`

// loadConfig reads config.yaml from the resolved config directory using
// Viper, creating the directory and a default file on first run. A missing
// config.yaml is not an error.
func loadConfig(configDir string) (*viper.Viper, error) {
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return nil, fmt.Errorf("ensure config dir: %w", err)
	}
	if err := ensureDefaultConfigFile(configDir); err != nil {
		return nil, fmt.Errorf("ensure default config: %w", err)
	}

	v := viper.New()
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	return v, nil
}

// ensureDefaultConfigFile creates a default config.yaml if the file does not
// exist in the config directory.
func ensureDefaultConfigFile(configDir string) error {
	path := filepath.Join(configDir, configFileExt)

	_, err := os.Stat(path)
	if err == nil {
		return nil
	}
	if !os.IsNotExist(err) {
		return fmt.Errorf("stat config file: %w", err)
	}
	return os.WriteFile(path, []byte(defaultConfigYAML), 0o644)
}

// storeConfig assembles the record store configuration from config.yaml and
// the resolved data directory.
func storeConfig(cfg *viper.Viper, dataDir string) types.Config {
	templatePath := cfg.GetString(cfgKeyTemplatePath)
	if templatePath == "" {
		templatePath = paths.TemplateDBPath()
	}
	return types.Config{
		DBPath:       filepath.Join(dataDir, paths.DBFileName),
		TemplatePath: templatePath,
	}
}
