package ports

import (
	"context"

	"go.trai.ch/pin/internal/core/domain"
)

// LockPersister defines the interface for reading and writing dependency lock
// state in both on-disk formats.
//
//go:generate go run go.uber.org/mock/mockgen -source=locks.go -destination=mocks/mock_locks.go -package=mocks
type LockPersister interface {
	// WriteUniqueLockfile persists the given lock state to the unified lock
	// file, overwriting it unconditionally.
	WriteUniqueLockfile(locks domain.ConfigurationLocks) error

	// ReadUniqueLockfile reads the unified lock file. An absent file yields
	// an empty mapping, not an error.
	ReadUniqueLockfile() (domain.ConfigurationLocks, error)

	// WriteLegacyLockfile persists the given lines, verbatim and in order,
	// to the named configuration's lock file in the locking directory.
	WriteLegacyLockfile(configuration string, lines []string) error

	// ReadLegacyLockfile reads the named configuration's lock file,
	// preserving line order. An absent file yields an empty sequence.
	ReadLegacyLockfile(configuration string) ([]string, error)

	// MigrateLegacyLockfiles folds every per-configuration lock file found in
	// the locking directory into the unified lock file and returns the
	// migrated state.
	MigrateLegacyLockfiles(ctx context.Context) (domain.ConfigurationLocks, error)

	// UniqueLockfileExists reports whether the unified lock file is present.
	UniqueLockfileExists() bool
}
