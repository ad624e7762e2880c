package harness

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRunWithGolden_Scenarios(t *testing.T) {
	for _, name := range []string{"list_basics", "date_basics", "failing"} {
		t.Run(name, func(t *testing.T) {
			s, err := LoadScenario("testdata/scenarios/" + name + ".yaml")
			require.NoError(t, err)
			require.NoError(t, RunWithGolden(t, s))
		})
	}
}

func TestSnapshotJSON_ExcludesRunID(t *testing.T) {
	s, err := LoadScenario("testdata/scenarios/date_basics.yaml")
	require.NoError(t, err)

	a, err := New(WithRunIDGenerator(NewFixedGenerator("one"))).Run(context.Background(), s)
	require.NoError(t, err)
	b, err := New(WithRunIDGenerator(NewFixedGenerator("two"))).Run(context.Background(), s)
	require.NoError(t, err)

	snapA, err := SnapshotJSON(a)
	require.NoError(t, err)
	snapB, err := SnapshotJSON(b)
	require.NoError(t, err)
	require.Equal(t, string(snapA), string(snapB))
	require.NotContains(t, string(snapA), "one")
}
