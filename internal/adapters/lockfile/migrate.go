package lockfile

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"runtime"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"go.trai.ch/pin/internal/core/domain"
	"go.trai.ch/zerr"
)

// MigrateLegacyLockfiles folds every per-configuration lock file found in the
// locking directory into the unified lock file and returns the migrated
// state. Configuration names are recovered from the file names, honoring the
// current scope's prefix. Legacy files are left in place; an absent locking
// directory migrates to an empty state.
func (w *ReaderWriter) MigrateLegacyLockfiles(ctx context.Context) (domain.ConfigurationLocks, error) {
	if err := w.ensureResolvable(domain.ProjectOwner()); err != nil {
		return nil, err
	}

	configurations, err := w.listLegacyConfigurations()
	if err != nil {
		return nil, err
	}

	locks := make(domain.ConfigurationLocks, len(configurations))
	var mu sync.Mutex

	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for _, configuration := range configurations {
		g.Go(func() error {
			lines, err := w.ReadLegacyLockfile(configuration)
			if err != nil {
				return err
			}
			if lines == nil {
				lines = []string{}
			}
			mu.Lock()
			locks[configuration] = lines
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if err := w.WriteUniqueLockfile(locks); err != nil {
		return nil, err
	}
	if w.logger != nil {
		w.logger.Info("migrated legacy lock files to the unified lock file")
	}
	return locks, nil
}

// listLegacyConfigurations scans the locking directory for lock files
// belonging to the current scope and returns their configuration names.
func (w *ReaderWriter) listLegacyConfigurations() ([]string, error) {
	dir := w.resolver.Resolve(domain.LockDirName)
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(err, "failed to read locking directory"), "path", dir)
	}

	prefix := w.prefix()
	var configurations []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !strings.HasSuffix(name, domain.LockFileSuffix) {
			continue
		}
		name = strings.TrimSuffix(name, domain.LockFileSuffix)
		if prefix == "" && strings.HasPrefix(name, domain.BuildScriptPrefix) {
			// build-script locks belong to the other scope
			continue
		}
		if prefix != "" {
			if !strings.HasPrefix(name, prefix) {
				continue
			}
			name = strings.TrimPrefix(name, prefix)
		}
		if name != "" {
			configurations = append(configurations, name)
		}
	}
	return configurations, nil
}
