package ports

// PathResolver defines the interface for turning logical lock file names into
// physical locations.
//
//go:generate go run go.uber.org/mock/mockgen -source=resolver.go -destination=mocks/mock_resolver.go -package=mocks
type PathResolver interface {
	// CanResolveRelativePath reports whether relative file paths can be
	// resolved in the current context. Dependency locking is unusable when
	// this returns false.
	CanResolveRelativePath() bool

	// Resolve returns the physical location for the given logical name
	// (a lock file name or the locking directory name).
	Resolve(name string) string
}
