package harness

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeScenario(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadScenario_Valid(t *testing.T) {
	s, err := LoadScenario("testdata/scenarios/list_basics.yaml")
	require.NoError(t, err)

	assert.Equal(t, "list_basics", s.Name)
	require.Len(t, s.Steps, 8)

	first := s.Steps[0]
	assert.Equal(t, "foldLeft", first.Op)
	require.NotNil(t, first.List)
	assert.Equal(t, []int64{1, 2, 3}, *first.List)
	assert.Equal(t, "sum", first.Fn)

	want, err := first.Expected()
	require.NoError(t, err)
	assert.Equal(t, int64(6), want)
}

func TestLoadScenario_NullExpectAndAbsentList(t *testing.T) {
	s, err := LoadScenario("testdata/scenarios/list_basics.yaml")
	require.NoError(t, err)

	head := s.Steps[4]
	require.NotNil(t, head.List, "list: [] is present and empty")
	assert.Empty(t, *head.List)
	assert.True(t, head.HasExpect())
	want, err := head.Expected()
	require.NoError(t, err)
	assert.Nil(t, want)

	isEmpty := s.Steps[5]
	assert.Nil(t, isEmpty.List, "omitted list is absent")
}

func TestLoadScenario_NotFound(t *testing.T) {
	_, err := LoadScenario(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	var loadErr *LoadError
	require.True(t, errors.As(err, &loadErr))
	assert.Equal(t, ErrCodeNotFound, loadErr.Code)
}

func TestLoadScenario_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		content string
		code    string
	}{
		{
			name: "unknown top-level field",
			content: `name: x
description: d
stepz: []
steps:
  - op: len
    expect: 0
`,
			code: ErrCodeSchema,
		},
		{
			name: "unknown op",
			content: `name: x
description: d
steps:
  - op: shuffle
    expect: 0
`,
			code: ErrCodeSchema,
		},
		{
			name: "empty steps",
			content: `name: x
description: d
steps: []
`,
			code: ErrCodeSchema,
		},
		{
			name: "unquoted date",
			content: `name: x
description: d
steps:
  - op: day
    date: 1000
    expect: 1
`,
			code: ErrCodeSchema,
		},
		{
			name: "missing expect and error",
			content: `name: x
description: d
steps:
  - op: len
    list: [1]
`,
			code: ErrCodeInvalid,
		},
		{
			name: "both expect and error",
			content: `name: x
description: d
steps:
  - op: get
    list: [1]
    expect: 1
    error: boom
`,
			code: ErrCodeInvalid,
		},
		{
			name: "unknown function",
			content: `name: x
description: d
steps:
  - op: forall
    list: [1]
    fn: prime
    expect: true
`,
			code: ErrCodeInvalid,
		},
		{
			name: "bad date",
			content: `name: x
description: d
steps:
  - op: lower
    date: "yesterday"
    other: "1000"
    expect: true
`,
			code: ErrCodeInvalid,
		},
		{
			name: "binary date op missing other",
			content: `name: x
description: d
steps:
  - op: equals
    date: "1000"
    expect: true
`,
			code: ErrCodeInvalid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadScenario(writeScenario(t, tt.content))
			require.Error(t, err)

			var loadErr *LoadError
			require.True(t, errors.As(err, &loadErr), "expected LoadError, got %T", err)
			assert.Equal(t, tt.code, loadErr.Code, "error: %v", err)
		})
	}
}

func TestParseScenario_MinimalDateStep(t *testing.T) {
	s, err := ParseScenario("inline.yaml", []byte(`name: inline
description: d
steps:
  - op: timestamp
    date: "42"
    expect: 42
`))
	require.NoError(t, err)
	require.Len(t, s.Steps, 1)
	assert.Equal(t, "42", s.Steps[0].Date)
}

func TestLoadErrorFormatting(t *testing.T) {
	inner := errors.New("boom")
	err := &LoadError{Code: ErrCodeDecode, Message: "failed to parse YAML", Err: inner}

	assert.Equal(t, "E004: failed to parse YAML: boom", err.Error())
	assert.ErrorIs(t, err, inner)
	assert.Equal(t, "E001: x", (&LoadError{Code: ErrCodeGeneric, Message: "x"}).Error())
}
