package commands_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/pin/cmd/pin/commands"
	"go.trai.ch/pin/internal/app"
	"go.trai.ch/pin/internal/build"
	"go.trai.ch/pin/internal/core/domain"
	"go.trai.ch/pin/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func newCLI(t *testing.T, persister *mocks.MockLockPersister, settings domain.Settings) (*commands.CLI, *bytes.Buffer) {
	t.Helper()
	ctrl := gomock.NewController(t)
	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Info(gomock.Any()).AnyTimes()
	logger.EXPECT().Warn(gomock.Any()).AnyTimes()

	cli := commands.New(app.New(persister, settings, logger))
	var buf bytes.Buffer
	cli.SetOutput(&buf)
	return cli, &buf
}

func TestVersionCmd(t *testing.T) {
	ctrl := gomock.NewController(t)
	persister := mocks.NewMockLockPersister(ctrl)

	cli, buf := newCLI(t, persister, domain.Settings{})
	cli.SetArgs([]string{"version"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.Contains(t, buf.String(), build.Version)
}

func TestShowCmd(t *testing.T) {
	ctrl := gomock.NewController(t)
	persister := mocks.NewMockLockPersister(ctrl)
	persister.EXPECT().ReadUniqueLockfile().Return(domain.ConfigurationLocks{
		"runtimeClasspath": {"org.example:core:2.1"},
		"compileClasspath": {},
	}, nil)

	cli, buf := newCLI(t, persister, domain.Settings{})
	cli.SetArgs([]string{"show"})

	require.NoError(t, cli.Execute(context.Background()))

	out := buf.String()
	assert.Contains(t, out, "compileClasspath:")
	assert.Contains(t, out, "(no locked coordinates)")
	assert.Contains(t, out, "runtimeClasspath:")
	assert.Contains(t, out, "org.example:core:2.1")
}

func TestMigrateCmd(t *testing.T) {
	ctrl := gomock.NewController(t)
	persister := mocks.NewMockLockPersister(ctrl)
	persister.EXPECT().ReadUniqueLockfile().Return(domain.ConfigurationLocks{}, nil)
	persister.EXPECT().MigrateLegacyLockfiles(gomock.Any()).Return(domain.ConfigurationLocks{}, nil)

	cli, _ := newCLI(t, persister, domain.Settings{})
	cli.SetArgs([]string{"migrate"})

	require.NoError(t, cli.Execute(context.Background()))
}

func TestVerifyCmd_StrictMissing(t *testing.T) {
	ctrl := gomock.NewController(t)
	persister := mocks.NewMockLockPersister(ctrl)
	persister.EXPECT().UniqueLockfileExists().Return(false)

	cli, _ := newCLI(t, persister, domain.Settings{Mode: domain.LockModeStrict})
	cli.SetArgs([]string{"verify"})

	err := cli.Execute(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "lock state is missing")
}
