package lockfile

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/pin/internal/core/domain"
	"go.trai.ch/zerr"
)

// legacyFileName derives the per-configuration lock file name, applying the
// build-script prefix under build-script scope.
func (w *ReaderWriter) legacyFileName(configuration string) string {
	return w.prefix() + configuration + domain.LockFileSuffix
}

// legacyLockFilePath returns the physical location of the named
// configuration's lock file inside the locking directory.
func (w *ReaderWriter) legacyLockFilePath(configuration string) string {
	return filepath.Join(w.resolver.Resolve(domain.LockDirName), w.legacyFileName(configuration))
}

// WriteLegacyLockfile persists the given lines to the named configuration's
// lock file, creating the locking directory if needed. Lines are written
// verbatim and in the supplied order: no sorting, no deduplication.
func (w *ReaderWriter) WriteLegacyLockfile(configuration string, lines []string) error {
	if err := w.ensureResolvable(domain.ConfigurationOwner(configuration)); err != nil {
		return err
	}

	dir := w.resolver.Resolve(domain.LockDirName)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create locking directory"), "path", dir)
	}

	var b strings.Builder
	for _, line := range domain.LockFileHeaderLines {
		b.WriteString(line)
		b.WriteString("\n")
	}
	for _, line := range lines {
		b.WriteString(line)
		b.WriteString("\n")
	}

	path := filepath.Join(dir, w.legacyFileName(configuration))
	if err := os.WriteFile(path, []byte(b.String()), domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write lock file"), "path", path)
	}
	return nil
}

// ReadLegacyLockfile reads the named configuration's lock file, skipping
// comment and blank lines and preserving the order of the rest. An absent
// file yields an empty sequence, not an error.
func (w *ReaderWriter) ReadLegacyLockfile(configuration string) ([]string, error) {
	if err := w.ensureResolvable(domain.ConfigurationOwner(configuration)); err != nil {
		return nil, err
	}

	path := w.legacyLockFilePath(configuration)
	data, err := os.ReadFile(path) //nolint:gosec // path is resolver-computed
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(err, "failed to read lock file"), "path", path)
	}

	var lines []string
	for _, raw := range strings.Split(string(data), "\n") {
		line := strings.TrimSuffix(raw, "\r")
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, domain.CommentPrefix) {
			continue
		}
		lines = append(lines, line)
	}
	return lines, nil
}
