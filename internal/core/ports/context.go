package ports

// BuildContext supplies scope and identity information about the enclosing
// project or build script.
//
//go:generate go run go.uber.org/mock/mockgen -source=context.go -destination=mocks/mock_context.go -package=mocks
type BuildContext interface {
	// IdentityPath returns the identity path of the named configuration
	// within this context, used in failure messages for per-configuration
	// operations.
	IdentityPath(name string) string

	// ProjectPath returns the path of the owning project, used in failure
	// messages for project-wide operations.
	ProjectPath() string

	// IsScript reports whether locking applies to the build script's own
	// dependencies rather than the project's.
	IsScript() bool
}
