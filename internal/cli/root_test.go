package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// executeCommand runs the root command with args and captures output.
func executeCommand(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	cmd := NewRootCommand()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

// decodeResponse parses a JSON CLI response.
func decodeResponse(t *testing.T, out string) CLIResponse {
	t.Helper()
	var resp CLIResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp), "output: %s", out)
	return resp
}

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand()
	require.NotNil(t, cmd)
	assert.Equal(t, "wrapkit", cmd.Use)
}

func TestCommandPresence(t *testing.T) {
	cmd := NewRootCommand()

	for _, name := range []string{"date", "list", "run", "validate"} {
		t.Run(name, func(t *testing.T) {
			sub, _, err := cmd.Find([]string{name})
			require.NoError(t, err)
			assert.Equal(t, name, sub.Name())
		})
	}
}

func TestGlobalFlags(t *testing.T) {
	cmd := NewRootCommand()

	verbose := cmd.PersistentFlags().Lookup("verbose")
	require.NotNil(t, verbose)
	assert.Equal(t, "v", verbose.Shorthand)
	assert.Equal(t, "false", verbose.DefValue)

	format := cmd.PersistentFlags().Lookup("format")
	require.NotNil(t, format)
	assert.Equal(t, "text", format.DefValue)

	require.NotNil(t, cmd.PersistentFlags().Lookup("config"))
}

func TestInvalidFormat(t *testing.T) {
	_, _, err := executeCommand(t, "date", "1000", "--format", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid format "xml"`)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestFormatFromEnv(t *testing.T) {
	t.Setenv("WRAPKIT_FORMAT", "json")

	out, _, err := executeCommand(t, "date", "1000")
	require.NoError(t, err)
	assert.Equal(t, "ok", decodeResponse(t, out).Status)
}

func TestFlagOverridesEnv(t *testing.T) {
	t.Setenv("WRAPKIT_FORMAT", "json")

	out, _, err := executeCommand(t, "date", "1000", "--format", "text")
	require.NoError(t, err)
	assert.NotContains(t, out, `"status"`)
	assert.Contains(t, out, "timestamp")
}

func TestFormatFromConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wrapkit.yaml")
	require.NoError(t, os.WriteFile(path, []byte("format: json\n"), 0644))

	out, _, err := executeCommand(t, "date", "1000", "--config", path)
	require.NoError(t, err)
	assert.Equal(t, "ok", decodeResponse(t, out).Status)
}

func TestMissingConfigFile(t *testing.T) {
	_, _, err := executeCommand(t, "date", "1000", "--config", filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestVerboseLogsToStderr(t *testing.T) {
	out, errOut, err := executeCommand(t, "date", "1000", "--format", "json", "-v")
	require.NoError(t, err)

	decodeResponse(t, out)
	assert.Contains(t, errOut, "date inspected")
}
