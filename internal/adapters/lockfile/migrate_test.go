package lockfile_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/pin/internal/core/domain"
)

func TestMigrateLegacyLockfiles(t *testing.T) {
	dir := t.TempDir()
	w := newWriter(t, dir, false, "")

	require.NoError(t, w.WriteLegacyLockfile("compileClasspath", []string{
		"org.example:lib:1.0",
		"org.example:core:2.1",
	}))
	require.NoError(t, w.WriteLegacyLockfile("runtimeClasspath", []string{
		"org.example:core:2.1",
	}))
	require.NoError(t, w.WriteLegacyLockfile("annotationProcessor", nil))

	// Files of the other scope and unrelated files must be ignored.
	lockDir := filepath.Join(dir, domain.LockDirName)
	require.NoError(t, os.WriteFile(filepath.Join(lockDir, domain.BuildScriptPrefix+"classpath"+domain.LockFileSuffix), []byte("x\n"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(lockDir, "README.md"), []byte("docs\n"), 0o600))

	locks, err := w.MigrateLegacyLockfiles(context.Background())
	require.NoError(t, err)

	require.Len(t, locks, 3)
	assert.Equal(t, []string{"org.example:lib:1.0", "org.example:core:2.1"}, locks["compileClasspath"])
	assert.Equal(t, []string{"org.example:core:2.1"}, locks["runtimeClasspath"])
	assert.Empty(t, locks["annotationProcessor"])

	back, err := w.ReadUniqueLockfile()
	require.NoError(t, err)
	require.Len(t, back, 3)
	assert.Equal(t, []string{"org.example:core:2.1", "org.example:lib:1.0"}, back["compileClasspath"])
	assert.Empty(t, back["annotationProcessor"])

	// Legacy files are left in place.
	_, err = os.Stat(filepath.Join(lockDir, "compileClasspath"+domain.LockFileSuffix))
	require.NoError(t, err)
}

func TestMigrateLegacyLockfiles_NoLockingDir(t *testing.T) {
	dir := t.TempDir()
	w := newWriter(t, dir, false, "")

	locks, err := w.MigrateLegacyLockfiles(context.Background())

	require.NoError(t, err)
	assert.Empty(t, locks)

	// An empty unified file is still written, header only.
	data, err := os.ReadFile(filepath.Join(dir, domain.UniqueLockFileName))
	require.NoError(t, err)
	for _, header := range domain.LockFileHeaderLines {
		assert.Contains(t, string(data), header)
	}
}

func TestMigrateLegacyLockfiles_BuildScriptScope(t *testing.T) {
	dir := t.TempDir()
	scriptWriter := newWriter(t, dir, true, "")
	projectWriter := newWriter(t, dir, false, "")

	require.NoError(t, scriptWriter.WriteLegacyLockfile("classpath", []string{"org.example:plugin:1.0"}))
	require.NoError(t, projectWriter.WriteLegacyLockfile("compile", []string{"org.example:lib:1.0"}))

	locks, err := scriptWriter.MigrateLegacyLockfiles(context.Background())
	require.NoError(t, err)

	require.Len(t, locks, 1)
	assert.Equal(t, []string{"org.example:plugin:1.0"}, locks["classpath"])

	// The migrated state lands in the prefixed unified file.
	_, err = os.Stat(filepath.Join(dir, domain.BuildScriptPrefix+domain.UniqueLockFileName))
	require.NoError(t, err)
}
