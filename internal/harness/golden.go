package harness

import (
	"testing"

	"github.com/sebdah/goldie/v2"
)

// TraceSnapshot is the golden-file view of a run. The run ID is left out so
// that snapshots are stable.
type TraceSnapshot struct {
	ScenarioName string
	Pass         bool
	Trace        []TraceEvent
}

func (s *TraceSnapshot) toCanonicalMap() map[string]any {
	trace := make([]any, len(s.Trace))
	for i, event := range s.Trace {
		m := map[string]any{
			"seq":    event.Seq,
			"op":     event.Op,
			"result": event.Result,
			"pass":   event.Pass,
		}
		if event.Error != "" {
			m["error"] = event.Error
		}
		trace[i] = m
	}
	return map[string]any{
		"scenario_name": s.ScenarioName,
		"pass":          s.Pass,
		"trace":         trace,
	}
}

// SnapshotJSON renders result as canonical JSON for golden comparison.
func SnapshotJSON(result *Result) ([]byte, error) {
	snapshot := TraceSnapshot{
		ScenarioName: result.Name,
		Pass:         result.Pass,
		Trace:        result.Trace,
	}
	return MarshalCanonical(snapshot.toCanonicalMap())
}

// RunWithGolden runs scenario and compares its trace with
// testdata/golden/{scenario.Name}.golden.
//
// To regenerate golden files, run:
//
//	go test ./internal/harness -update
func RunWithGolden(t *testing.T, scenario *Scenario) error {
	t.Helper()

	result, err := Run(scenario)
	if err != nil {
		return err
	}
	return AssertGolden(t, scenario.Name, result)
}

// AssertGolden compares an existing result against the golden file for name.
func AssertGolden(t *testing.T, name string, result *Result) error {
	t.Helper()

	data, err := SnapshotJSON(result)
	if err != nil {
		return err
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, name, data)
	return nil
}
