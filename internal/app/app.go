// Package app implements the application layer for pin.
package app

import (
	"context"
	"fmt"

	"go.trai.ch/pin/internal/core/domain"
	"go.trai.ch/pin/internal/core/ports"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	persister ports.LockPersister
	settings  domain.Settings
	logger    ports.Logger
}

// New creates a new App instance.
func New(persister ports.LockPersister, settings domain.Settings, logger ports.Logger) *App {
	return &App{
		persister: persister,
		settings:  settings,
		logger:    logger,
	}
}

// Show returns the configuration-centric view of the unified lock state.
func (a *App) Show() (domain.ConfigurationLocks, error) {
	locks, err := a.persister.ReadUniqueLockfile()
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load lock state")
	}
	return locks, nil
}

// Format re-writes the unified lock file in canonical form and returns the
// fingerprint of the persisted state. A missing lock file is left missing.
func (a *App) Format() (uint64, error) {
	if !a.persister.UniqueLockfileExists() {
		a.logger.Info("no unified lock file present, nothing to format")
		return 0, nil
	}
	locks, err := a.persister.ReadUniqueLockfile()
	if err != nil {
		return 0, zerr.Wrap(err, "failed to load lock state")
	}
	if err := a.persister.WriteUniqueLockfile(locks); err != nil {
		return 0, zerr.Wrap(err, "failed to persist lock state")
	}
	return locks.Fingerprint(), nil
}

// Migrate folds the per-configuration legacy lock files into the unified
// lock file and reports whether the persisted state changed.
func (a *App) Migrate(ctx context.Context) error {
	before, err := a.persister.ReadUniqueLockfile()
	if err != nil {
		return zerr.Wrap(err, "failed to load lock state")
	}

	locks, err := a.persister.MigrateLegacyLockfiles(ctx)
	if err != nil {
		return zerr.Wrap(err, "failed to migrate legacy lock files")
	}

	if locks.Fingerprint() == before.Fingerprint() {
		a.logger.Info("lock state unchanged")
	} else {
		a.logger.Info(fmt.Sprintf("lock state updated for %d configurations", len(locks)))
	}
	return nil
}

// Verify checks that lock state is present, honoring the configured lock
// mode: strict mode fails on missing state, default and lenient modes only
// report it.
func (a *App) Verify() error {
	if a.persister.UniqueLockfileExists() {
		locks, err := a.persister.ReadUniqueLockfile()
		if err != nil {
			return zerr.Wrap(err, "failed to load lock state")
		}
		a.logger.Info(fmt.Sprintf("lock state present for %d configurations", len(locks)))
		return nil
	}

	if a.settings.Mode == domain.LockModeStrict {
		return zerr.With(domain.ErrLockStateMissing, "mode", string(a.settings.Mode))
	}
	a.logger.Warn("lock state is missing")
	return nil
}
