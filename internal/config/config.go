package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

const (
	// AppName is the settings namespace: config directory name and env prefix.
	AppName = "pullfile"

	configFileName = "config"
	configFileType = "toml"
)

// Settings are the persisted options, read once at startup and passed into
// the workflow explicitly.
type Settings struct {
	// UseQuickPick selects files with the in-terminal list instead of the
	// file-open dialog.
	UseQuickPick bool
	// IncludeOpenDialogOptionInQuickPick prepends the "Use Open Dialog..."
	// entry to the quick pick.
	IncludeOpenDialogOptionInQuickPick bool
	// UseStatusBarButton installs the "Pull File" menu button during --setup.
	UseStatusBarButton bool
}

// Defaults returns the documented fallback for every setting.
func Defaults() Settings {
	return Settings{
		UseQuickPick:                       true,
		IncludeOpenDialogOptionInQuickPick: true,
		UseStatusBarButton:                 true,
	}
}

// configDirOverride lets tests redirect the config directory.
var configDirOverride string

// ConfigDir returns the pullfile configuration directory, following
// $XDG_CONFIG_HOME with a ~/.config fallback.
func ConfigDir() (string, error) {
	if configDirOverride != "" {
		return configDirOverride, nil
	}

	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, AppName), nil
}

// Load reads the persisted settings. A missing config file is not an error;
// absent keys fall back to the documented defaults.
func Load() (Settings, error) {
	defaults := Defaults()

	v := viper.New()
	v.SetDefault("useQuickPick", defaults.UseQuickPick)
	v.SetDefault("includeOpenDialogOptionInQuickPick", defaults.IncludeOpenDialogOptionInQuickPick)
	v.SetDefault("useStatusBarButton", defaults.UseStatusBarButton)

	dir, err := ConfigDir()
	if err != nil {
		return defaults, err
	}
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(dir)
	v.SetEnvPrefix(AppName)
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return defaults, fmt.Errorf("failed to read config in %s: %w", dir, err)
		}
	}

	return Settings{
		UseQuickPick:                       v.GetBool("useQuickPick"),
		IncludeOpenDialogOptionInQuickPick: v.GetBool("includeOpenDialogOptionInQuickPick"),
		UseStatusBarButton:                 v.GetBool("useStatusBarButton"),
	}, nil
}
