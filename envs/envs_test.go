package envs

import (
	"os"
	"testing"

	"cmdlog/internal/cmdlog/types"

	"github.com/stretchr/testify/require"
)

var cmdlogVariables = []string{
	"CMDLOG_COMMANDS_FILE",
	"CMDLOG_ROOT_DIR_PATH",
	"CMDLOG_ERROR_POLICY",
	"CMDLOG_LOG_LEVEL",
	"CMDLOG_LOG_FORMAT",
}

// Removes the variables for the duration of the test; t.Setenv restores them afterwards
func unsetCmdlogVariables(t *testing.T) {
	t.Helper()

	for _, name := range cmdlogVariables {
		t.Setenv(name, "")
		require.NoError(t, os.Unsetenv(name))
	}
}

func TestParse_Defaults(t *testing.T) {
	t.Setenv("CMDLOG_ERROR_POLICY", "continue")
	t.Setenv("CMDLOG_LOG_LEVEL", "trace")
	unsetCmdlogVariables(t)

	envs, err := Parse()
	require.NoError(t, err)

	require.Equal(t, "commands.log", envs.CommandsFile)
	require.Equal(t, "", envs.CmdlogRootDirPath)
	require.Equal(t, types.HALT_ON_ERROR, envs.ErrorPolicy)
	require.Equal(t, "warn", envs.LogLevel)
	require.Equal(t, "text", envs.LogFormat)
}

func TestParse_Overrides(t *testing.T) {
	t.Setenv("CMDLOG_COMMANDS_FILE", "other.log")
	t.Setenv("CMDLOG_ROOT_DIR_PATH", "/var/lib/cmdlog")
	t.Setenv("CMDLOG_ERROR_POLICY", "Continue")
	t.Setenv("CMDLOG_LOG_LEVEL", "debug")
	t.Setenv("CMDLOG_LOG_FORMAT", "json")

	envs, err := Parse()
	require.NoError(t, err)

	require.Equal(t, Envs{
		CommandsFile:      "other.log",
		CmdlogRootDirPath: "/var/lib/cmdlog",
		ErrorPolicy:       types.CONTINUE_ON_ERROR,
		LogLevel:          "debug",
		LogFormat:         "json",
	}, envs)
}

func TestParse_InvalidErrorPolicy(t *testing.T) {
	t.Setenv("CMDLOG_ERROR_POLICY", "retry")

	_, err := Parse()
	require.ErrorContains(t, err, "unknown error policy")
}
