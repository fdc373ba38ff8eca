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

// WriteUniqueLockfile persists the given lock state to the unified lock file.
// The file is overwritten unconditionally; the legacy locking directory is
// neither touched nor required to exist. Output is deterministic: identical
// lock states produce byte-identical files regardless of map iteration order.
func (w *ReaderWriter) WriteUniqueLockfile(locks domain.ConfigurationLocks) error {
	if err := w.ensureResolvable(domain.ProjectOwner()); err != nil {
		return err
	}

	path := w.uniqueLockFilePath()
	if err := os.MkdirAll(filepath.Dir(path), domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create directory for lock file"), "path", path)
	}
	if err := os.WriteFile(path, renderUnique(locks.ToUsage()), domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write lock file"), "path", path)
	}
	return nil
}

// ReadUniqueLockfile reads the unified lock file back into the
// configuration-centric view. An absent file yields an empty mapping, not an
// error. Each configuration's coordinate list comes back sorted, independent
// of the physical line order on disk.
func (w *ReaderWriter) ReadUniqueLockfile() (domain.ConfigurationLocks, error) {
	if err := w.ensureResolvable(domain.ProjectOwner()); err != nil {
		return nil, err
	}

	path := w.uniqueLockFilePath()
	data, err := os.ReadFile(path) //nolint:gosec // path is resolver-computed or caller-configured
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domain.ConfigurationLocks{}, nil
		}
		return nil, zerr.With(zerr.Wrap(err, "failed to read lock file"), "path", path)
	}
	return parseUnique(data).ToLocks(), nil
}

// renderUnique produces the unified file content: the fixed header, then one
// line per coordinate in lexicographic order with the empty placeholder
// forced last, each configuration set comma-joined with no spaces.
func renderUnique(usage domain.CoordinateUsage) []byte {
	var b strings.Builder
	for _, line := range domain.LockFileHeaderLines {
		b.WriteString(line)
		b.WriteString("\n")
	}
	for _, key := range usage.SortedKeys() {
		b.WriteString(key)
		b.WriteString("=")
		b.WriteString(domain.JoinConfigurations(usage[key]))
		b.WriteString("\n")
	}
	return []byte(b.String())
}

// parseUnique parses unified file content into the coordinate-centric view.
// Comment and blank lines carry no meaning. A line without '=' or with an
// empty right-hand side is treated permissively as a key with no dependent
// configurations and contributes nothing.
func parseUnique(data []byte) domain.CoordinateUsage {
	usage := make(domain.CoordinateUsage)
	for _, raw := range strings.Split(string(data), "\n") {
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, domain.CommentPrefix) {
			continue
		}
		key, value, _ := strings.Cut(line, "=")
		for _, configuration := range strings.Split(value, ",") {
			if configuration = strings.TrimSpace(configuration); configuration != "" {
				usage[key] = append(usage[key], configuration)
			}
		}
	}
	return usage
}
