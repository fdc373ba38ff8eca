package domain

// Settings holds the locking configuration read from the optional settings
// file. The zero value is a valid default: no override location, default lock
// mode, project scope.
type Settings struct {
	// LockFileOverride, when non-empty, supersedes the resolver-computed
	// location of the unified lock file entirely.
	LockFileOverride string

	// Mode controls how strictly missing lock state is treated.
	Mode LockMode

	// BuildScript selects build-script scope: lock file names gain the
	// build-script prefix and failures report script identities.
	BuildScript bool
}
