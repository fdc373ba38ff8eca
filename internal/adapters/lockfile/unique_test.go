package lockfile_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/pin/internal/adapters/fs"
	"go.trai.ch/pin/internal/adapters/lockfile"
	"go.trai.ch/pin/internal/adapters/project"
	"go.trai.ch/pin/internal/core/domain"
)

func newWriter(t *testing.T, dir string, script bool, override string) *lockfile.ReaderWriter {
	t.Helper()
	return lockfile.NewReaderWriter(fs.NewDirResolver(dir), project.NewContext("", script), override, nil)
}

func TestWriteUniqueLockfile_Golden(t *testing.T) {
	tests := []struct {
		name       string
		locks      domain.ConfigurationLocks
		goldenName string
	}{
		{
			name: "empty configuration last",
			locks: domain.ConfigurationLocks{
				"a": {"foo", "bar"},
				"b": {"foo"},
				"c": {},
			},
			goldenName: "unique_basic",
		},
		{
			name: "multiple empty configurations",
			locks: domain.ConfigurationLocks{
				"b": {"foo", "bar"},
				"d": {"bar", "foobar"},
				"a": {"foo"},
				"e": {},
				"f": {},
				"c": {},
			},
			goldenName: "unique_multi",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			w := newWriter(t, dir, false, "")

			require.NoError(t, w.WriteUniqueLockfile(tt.locks))

			data, err := os.ReadFile(filepath.Join(dir, domain.UniqueLockFileName))
			require.NoError(t, err)

			g := goldie.New(t)
			g.Assert(t, tt.goldenName, data)
		})
	}
}

func TestWriteUniqueLockfile_Deterministic(t *testing.T) {
	// Same lock state assembled with different insertion orders must produce
	// byte-identical files.
	first := domain.ConfigurationLocks{}
	first["a"] = []string{"foo", "bar"}
	first["b"] = []string{"foo"}
	first["c"] = []string{}

	second := domain.ConfigurationLocks{}
	second["c"] = []string{}
	second["b"] = []string{"foo"}
	second["a"] = []string{"bar", "foo"}

	dirA := t.TempDir()
	dirB := t.TempDir()
	require.NoError(t, newWriter(t, dirA, false, "").WriteUniqueLockfile(first))
	require.NoError(t, newWriter(t, dirB, false, "").WriteUniqueLockfile(second))

	dataA, err := os.ReadFile(filepath.Join(dirA, domain.UniqueLockFileName))
	require.NoError(t, err)
	dataB, err := os.ReadFile(filepath.Join(dirB, domain.UniqueLockFileName))
	require.NoError(t, err)

	assert.Equal(t, dataA, dataB)
}

func TestReadUniqueLockfile_Absent(t *testing.T) {
	w := newWriter(t, t.TempDir(), false, "")

	locks, err := w.ReadUniqueLockfile()

	require.NoError(t, err)
	assert.Empty(t, locks)
}

func TestReadUniqueLockfile_Body(t *testing.T) {
	dir := t.TempDir()
	content := "# generated file\n" +
		"\n" +
		"bar=a,c\n" +
		"foo=a,b,c\n" +
		"empty=d\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, domain.UniqueLockFileName), []byte(content), 0o600))

	locks, err := newWriter(t, dir, false, "").ReadUniqueLockfile()

	require.NoError(t, err)
	require.Len(t, locks, 4)
	assert.Equal(t, []string{"bar", "foo"}, locks["a"])
	assert.Equal(t, []string{"foo"}, locks["b"])
	assert.Equal(t, []string{"bar", "foo"}, locks["c"])
	assert.Empty(t, locks["d"])
}

func TestReadUniqueLockfile_MalformedLines(t *testing.T) {
	dir := t.TempDir()
	// A key with no separator and a key with an empty value are both treated
	// as zero-dependency keys and contribute nothing.
	content := "stray-key\n" +
		"orphan=\n" +
		"foo=a\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, domain.UniqueLockFileName), []byte(content), 0o600))

	locks, err := newWriter(t, dir, false, "").ReadUniqueLockfile()

	require.NoError(t, err)
	require.Len(t, locks, 1)
	assert.Equal(t, []string{"foo"}, locks["a"])
}

func TestUnique_RoundTrip(t *testing.T) {
	locks := domain.ConfigurationLocks{
		"compileClasspath":    {"org.example:lib:1.0", "org.example:core:2.1"},
		"runtimeClasspath":    {"org.example:core:2.1"},
		"annotationProcessor": {},
	}

	w := newWriter(t, t.TempDir(), false, "")
	require.NoError(t, w.WriteUniqueLockfile(locks))

	back, err := w.ReadUniqueLockfile()
	require.NoError(t, err)

	require.Len(t, back, 3)
	assert.Equal(t, []string{"org.example:core:2.1", "org.example:lib:1.0"}, back["compileClasspath"])
	assert.Equal(t, []string{"org.example:core:2.1"}, back["runtimeClasspath"])
	assert.Empty(t, back["annotationProcessor"])
}

func TestUnique_OverrideLocation(t *testing.T) {
	dir := t.TempDir()
	override := filepath.Join(t.TempDir(), "custom", "locks.lockfile")
	w := newWriter(t, dir, false, override)

	locks := domain.ConfigurationLocks{"a": {"foo"}}
	require.NoError(t, w.WriteUniqueLockfile(locks))

	// The override wins entirely: nothing appears at the default location.
	_, err := os.Stat(filepath.Join(dir, domain.UniqueLockFileName))
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(override)
	require.NoError(t, err)

	back, err := w.ReadUniqueLockfile()
	require.NoError(t, err)
	assert.Equal(t, domain.ConfigurationLocks{"a": {"foo"}}, back)
}

func TestUnique_BuildScriptPrefix(t *testing.T) {
	dir := t.TempDir()
	w := newWriter(t, dir, true, "")

	require.NoError(t, w.WriteUniqueLockfile(domain.ConfigurationLocks{"classpath": {"foo"}}))

	_, err := os.Stat(filepath.Join(dir, domain.BuildScriptPrefix+domain.UniqueLockFileName))
	require.NoError(t, err)
	_, err = os.Stat(filepath.Join(dir, domain.UniqueLockFileName))
	assert.True(t, os.IsNotExist(err))
}

func TestUniqueLockfileExists(t *testing.T) {
	dir := t.TempDir()
	w := newWriter(t, dir, false, "")

	assert.False(t, w.UniqueLockfileExists())
	require.NoError(t, w.WriteUniqueLockfile(domain.ConfigurationLocks{"a": {"foo"}}))
	assert.True(t, w.UniqueLockfileExists())
}
