package domain

// OwnerKind discriminates the entity on whose behalf a locking operation runs.
type OwnerKind int

const (
	// OwnerProject marks operations on the unified, project-wide lock file.
	OwnerProject OwnerKind = iota

	// OwnerConfiguration marks operations on a single configuration's legacy
	// lock file.
	OwnerConfiguration
)

// LockOwner identifies who a locking operation belongs to. The Root Guard
// uses it to report the correct identity when locking cannot be used:
// the project path for project-owned operations, the configuration's identity
// path otherwise.
type LockOwner struct {
	Kind          OwnerKind
	Configuration string
}

// ProjectOwner returns the owner for unified lock file operations.
func ProjectOwner() LockOwner {
	return LockOwner{Kind: OwnerProject}
}

// ConfigurationOwner returns the owner for legacy lock file operations on the
// named configuration.
func ConfigurationOwner(configuration string) LockOwner {
	return LockOwner{Kind: OwnerConfiguration, Configuration: configuration}
}
