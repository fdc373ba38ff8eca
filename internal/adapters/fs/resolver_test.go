package fs_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/pin/internal/adapters/fs"
)

func TestDirResolver_Resolve(t *testing.T) {
	dir := t.TempDir()
	r := fs.NewDirResolver(dir)

	assert.True(t, r.CanResolveRelativePath())
	assert.Equal(t, filepath.Join(dir, "pin.lockfile"), r.Resolve("pin.lockfile"))
}

func TestDirResolver_NoBase(t *testing.T) {
	r := fs.NewDirResolver("")
	assert.False(t, r.CanResolveRelativePath())
}
