package ports

import "go.trai.ch/pin/internal/core/domain"

// SettingsLoader defines the interface for loading the locking settings.
//
//go:generate go run go.uber.org/mock/mockgen -source=settings_loader.go -destination=mocks/mock_settings_loader.go -package=mocks
type SettingsLoader interface {
	// Load reads the settings from the given working directory. An absent
	// settings file yields the defaults.
	Load(cwd string) (domain.Settings, error)
}
