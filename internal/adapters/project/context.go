// Package project implements the build context adapter carrying project
// identity and locking scope.
package project

import (
	"strings"

	"go.trai.ch/pin/internal/core/ports"
)

var _ ports.BuildContext = (*Context)(nil)

// RootProjectPath is the identity path of the root project.
const RootProjectPath = ":"

// Context implements ports.BuildContext for a single project or build script.
type Context struct {
	path   string
	script bool
}

// NewContext creates a build context for the project at the given identity
// path. An empty path means the root project. script selects build-script
// scope.
func NewContext(path string, script bool) *Context {
	if path == "" {
		path = RootProjectPath
	}
	return &Context{path: path, script: script}
}

// ProjectPath returns the identity path of the owning project.
func (c *Context) ProjectPath() string {
	return c.path
}

// IdentityPath returns the identity path of the named configuration within
// this project, e.g. ":app:compileClasspath" or ":runtime" for the root
// project.
func (c *Context) IdentityPath(name string) string {
	if strings.HasSuffix(c.path, ":") {
		return c.path + name
	}
	return c.path + ":" + name
}

// IsScript reports whether locking applies to the build script's own
// dependencies.
func (c *Context) IsScript() bool {
	return c.script
}
