package cli

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateCommand_Valid(t *testing.T) {
	path := writeFile(t, t.TempDir(), "sums.yaml", passingScenario)

	out, _, err := executeCommand(t, "validate", path)
	require.NoError(t, err)
	assert.Contains(t, out, "sums is valid")
}

func TestValidateCommand_JSON(t *testing.T) {
	path := writeFile(t, t.TempDir(), "sums.yaml", passingScenario)

	out, _, err := executeCommand(t, "validate", path, "--format", "json")
	require.NoError(t, err)

	resp := decodeResponse(t, out)
	assert.Equal(t, "ok", resp.Status)
	data, ok := resp.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, true, data["valid"])
	assert.Equal(t, float64(2), data["steps"])
}

func TestValidateCommand_SchemaError(t *testing.T) {
	path := writeFile(t, t.TempDir(), "bad.yaml", "name: bad\ndescription: d\nsteps:\n  - op: fly\n    expect: 1\n")

	out, _, err := executeCommand(t, "validate", path, "--format", "json")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))

	resp := decodeResponse(t, out)
	assert.Equal(t, ErrCodeInvalidInput, resp.Error.Code)
}

func TestValidateCommand_NotFound(t *testing.T) {
	out, _, err := executeCommand(t, "validate", filepath.Join(t.TempDir(), "nope.yaml"), "--format", "json")
	require.Error(t, err)

	resp := decodeResponse(t, out)
	assert.Equal(t, ErrCodeNotFound, resp.Error.Code)
}
