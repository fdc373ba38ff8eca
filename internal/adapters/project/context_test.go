package project_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/pin/internal/adapters/project"
)

func TestContext_IdentityPath(t *testing.T) {
	tests := []struct {
		name          string
		projectPath   string
		configuration string
		want          string
	}{
		{
			name:          "root project",
			projectPath:   "",
			configuration: "compileClasspath",
			want:          ":compileClasspath",
		},
		{
			name:          "subproject",
			projectPath:   ":app",
			configuration: "runtimeClasspath",
			want:          ":app:runtimeClasspath",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := project.NewContext(tt.projectPath, false)
			assert.Equal(t, tt.want, c.IdentityPath(tt.configuration))
		})
	}
}

func TestContext_ProjectPath_DefaultsToRoot(t *testing.T) {
	c := project.NewContext("", false)
	assert.Equal(t, project.RootProjectPath, c.ProjectPath())
}

func TestContext_IsScript(t *testing.T) {
	assert.False(t, project.NewContext(":app", false).IsScript())
	assert.True(t, project.NewContext(":app", true).IsScript())
}
