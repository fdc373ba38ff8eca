// Package fs implements file system path resolution for lock files.
package fs

import (
	"path/filepath"

	"go.trai.ch/pin/internal/core/ports"
)

var _ ports.PathResolver = (*DirResolver)(nil)

// DirResolver implements ports.PathResolver by resolving logical names
// against a base directory. A resolver with no base directory cannot resolve
// relative paths, which is exactly the condition the Root Guard checks for.
type DirResolver struct {
	base string
}

// NewDirResolver creates a resolver rooted at the given directory. An empty
// base yields a resolver that reports relative paths as unresolvable.
func NewDirResolver(base string) *DirResolver {
	return &DirResolver{base: filepath.Clean(base)}
}

// CanResolveRelativePath reports whether a base directory is configured.
func (r *DirResolver) CanResolveRelativePath() bool {
	return r.base != "" && r.base != "."
}

// Resolve returns the physical location of the given logical name.
func (r *DirResolver) Resolve(name string) string {
	return filepath.Join(r.base, name)
}
