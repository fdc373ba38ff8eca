// Package config provides the locking settings loader for pin.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/pin/internal/core/domain"
	"go.trai.ch/pin/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.SettingsLoader = (*Loader)(nil)

// Loader implements ports.SettingsLoader using a YAML file.
type Loader struct {
	Filename string
}

// NewLoader creates a loader for the canonical settings file name.
func NewLoader() *Loader {
	return &Loader{Filename: domain.SettingsFileName}
}

// settingsFile represents the structure of the pin.yaml settings file.
type settingsFile struct {
	LockFile    string `yaml:"lockFile"`
	Mode        string `yaml:"mode"`
	BuildScript bool   `yaml:"buildscript"`
}

// Load reads the settings from the given working directory. An absent
// settings file yields the defaults.
func (l *Loader) Load(cwd string) (domain.Settings, error) {
	path := filepath.Join(cwd, l.Filename)
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domain.Settings{Mode: domain.LockModeDefault}, nil
		}
		return domain.Settings{}, zerr.With(zerr.Wrap(err, "failed to read settings file"), "path", path)
	}

	var file settingsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return domain.Settings{}, zerr.With(zerr.Wrap(err, "failed to parse settings file"), "path", path)
	}

	mode, err := domain.ParseLockMode(file.Mode)
	if err != nil {
		return domain.Settings{}, err
	}

	return domain.Settings{
		LockFileOverride: file.LockFile,
		Mode:             mode,
		BuildScript:      file.BuildScript,
	}, nil
}
