package domain

import "go.trai.ch/zerr"

var (
	// ErrLockingNotUsable is returned when dependency locking is requested in
	// a context that cannot resolve relative file paths.
	ErrLockingNotUsable = zerr.New("dependency locking cannot be used")

	// ErrLockReadFailed is returned when a lock file exists but cannot be read.
	ErrLockReadFailed = zerr.New("failed to read lock file")

	// ErrLockWriteFailed is returned when a lock file cannot be written.
	ErrLockWriteFailed = zerr.New("failed to write lock file")

	// ErrLockDirCreateFailed is returned when the locking directory cannot be created.
	ErrLockDirCreateFailed = zerr.New("failed to create locking directory")

	// ErrLockStateMissing is returned by strict-mode verification when no lock
	// state has been recorded.
	ErrLockStateMissing = zerr.New("lock state is missing")

	// ErrInvalidLockMode is returned when the settings file names an unknown lock mode.
	ErrInvalidLockMode = zerr.New("invalid lock mode, expected 'default', 'strict' or 'lenient'")

	// ErrSettingsReadFailed is returned when the settings file cannot be read.
	ErrSettingsReadFailed = zerr.New("failed to read settings file")

	// ErrSettingsParseFailed is returned when the settings file cannot be parsed.
	ErrSettingsParseFailed = zerr.New("failed to parse settings file")
)
