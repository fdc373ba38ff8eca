package domain

const (
	// UniqueLockFileName is the name of the unified lock file covering all
	// configurations of a project.
	UniqueLockFileName = "pin.lockfile"

	// LockDirName is the name of the directory holding per-configuration
	// legacy lock files.
	LockDirName = "dependency-locks"

	// BuildScriptPrefix is prepended to lock file names when locking applies
	// to a build's own script dependencies rather than its project
	// dependencies.
	BuildScriptPrefix = "buildscript-"

	// LockFileSuffix is the extension shared by all lock files.
	LockFileSuffix = ".lockfile"

	// SettingsFileName is the name of the optional locking settings file.
	SettingsFileName = "pin.yaml"

	// CommentPrefix marks non-semantic lines in every lock file format.
	CommentPrefix = "#"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// LockFileHeaderLines is written at the top of every produced lock file.
// Readers skip these lines; they carry no semantic meaning.
var LockFileHeaderLines = []string{
	"# This file is generated by the dependency locking feature.",
	"# Manual edits can break the build and are not advised.",
	"# This file is expected to be part of source control.",
}
