package cmd_test

import (
	"bytes"
	"os"
	"testing"

	"github.com/devantler-tech/jnl/pkg/cli/cmd"
	configmanager "github.com/devantler-tech/jnl/pkg/io/config-manager"
	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	exitCode := m.Run()

	_, err := snaps.Clean(m, snaps.CleanOpts{Sort: true})
	if err != nil {
		_, _ = os.Stderr.WriteString("failed to clean snapshots: " + err.Error() + "\n")

		os.Exit(1)
	}

	os.Exit(exitCode)
}

func TestNewRootCmdVersionFormatting(t *testing.T) {
	t.Parallel()

	version := "1.2.3"
	commit := "abc123"
	date := "2025-08-17"
	root := cmd.NewRootCmd(version, commit, date)

	expectedVersion := version + " (Built on " + date + " from Git SHA " + commit + ")"
	assert.Equal(t, expectedVersion, root.Version)
}

func TestExecuteShowsVersion(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer

	root := cmd.NewRootCmd("1.2.3", "abc123", "2025-08-17")
	root.SetOut(&out)
	root.SetArgs([]string{"--version"})

	require.NoError(t, root.Execute())

	snaps.MatchSnapshot(t, out.String())
}

func TestExecuteWithoutActionShowsHelp(t *testing.T) {
	t.Parallel()

	var out, errOut bytes.Buffer

	root := cmd.NewRootCmd("", "", "")
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs([]string{})

	require.NoError(t, root.Execute())

	assert.Contains(t, out.String(), "Usage:")
	assert.Contains(t, out.String(), "list")
	assert.Contains(t, out.String(), "add")
	assert.Contains(t, out.String(), "delete")
	assert.Empty(t, errOut.String())
}

func TestExecuteUnknownActionShowsHelp(t *testing.T) {
	t.Parallel()

	var out, errOut bytes.Buffer

	root := cmd.NewRootCmd("", "", "")
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs([]string{"frobnicate"})

	require.NoError(t, cmd.Execute(root))

	assert.Contains(t, out.String(), "Usage:")
	assert.Contains(t, errOut.String(), `unknown action "frobnicate"`)
}

func TestNewRootCmdPersistentFlags(t *testing.T) {
	t.Parallel()

	root := cmd.NewRootCmd("test", "test", "test")

	userConfig := root.PersistentFlags().Lookup(configmanager.KeyUserConfig)
	require.NotNil(t, userConfig)
	assert.Equal(t, configmanager.DefaultUserConfig, userConfig.DefValue)

	verbose, err := root.PersistentFlags().GetBool(configmanager.KeyVerbose)
	require.NoError(t, err)
	assert.False(t, verbose)
}

func TestNewRootCmdRegistersActions(t *testing.T) {
	t.Parallel()

	root := cmd.NewRootCmd("test", "test", "test")

	for _, name := range []string{"list", "add", "delete"} {
		sub, _, err := root.Find([]string{name})
		require.NoError(t, err, name)
		assert.Equal(t, name, sub.Name())
	}
}
