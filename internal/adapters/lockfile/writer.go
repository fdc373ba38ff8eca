// Package lockfile persists dependency lock state in the two on-disk formats:
// the unified project-wide lock file and the per-configuration legacy files.
package lockfile

import (
	"fmt"
	"os"

	"go.trai.ch/pin/internal/core/domain"
	"go.trai.ch/pin/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.LockPersister = (*ReaderWriter)(nil)

// ReaderWriter implements ports.LockPersister on top of a path resolver and a
// build context. One instance serves a single project or build script scope.
type ReaderWriter struct {
	resolver ports.PathResolver
	context  ports.BuildContext
	// override, when non-empty, supersedes the resolver-computed location of
	// the unified lock file entirely. The legacy files are unaffected.
	override string
	logger   ports.Logger
}

// NewReaderWriter creates a ReaderWriter. An empty override selects the
// canonical unified lock file location.
func NewReaderWriter(resolver ports.PathResolver, context ports.BuildContext, override string, logger ports.Logger) *ReaderWriter {
	return &ReaderWriter{
		resolver: resolver,
		context:  context,
		override: override,
		logger:   logger,
	}
}

// ensureResolvable is the first step of every read and write. It performs no
// I/O; it only checks that the current context can resolve relative paths,
// and reports the owner's identity when it cannot.
func (w *ReaderWriter) ensureResolvable(owner domain.LockOwner) error {
	if w.resolver.CanResolveRelativePath() {
		return nil
	}
	if owner.Kind == domain.OwnerConfiguration {
		identity := w.context.IdentityPath(owner.Configuration)
		err := zerr.Wrap(domain.ErrLockingNotUsable,
			fmt.Sprintf("configuration %s must be able to resolve relative file paths", identity))
		return zerr.With(err, "configuration", identity)
	}
	path := w.context.ProjectPath()
	err := zerr.Wrap(domain.ErrLockingNotUsable,
		fmt.Sprintf("project %s must be able to resolve relative file paths", path))
	return zerr.With(err, "project_path", path)
}

// prefix returns the file name prefix for the current scope.
func (w *ReaderWriter) prefix() string {
	if w.context.IsScript() {
		return domain.BuildScriptPrefix
	}
	return ""
}

// uniqueLockFilePath returns the physical location of the unified lock file.
// An explicit override wins over the resolver-computed default.
func (w *ReaderWriter) uniqueLockFilePath() string {
	if w.override != "" {
		return w.override
	}
	return w.resolver.Resolve(w.prefix() + domain.UniqueLockFileName)
}

// UniqueLockfileExists reports whether the unified lock file is present.
func (w *ReaderWriter) UniqueLockfileExists() bool {
	_, err := os.Stat(w.uniqueLockFilePath())
	return err == nil
}
