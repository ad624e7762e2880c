package harness

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// TraceEvent records the evaluation of one step.
type TraceEvent struct {
	Seq    int64  `json:"seq"`
	Op     string `json:"op"`
	Result any    `json:"result"`
	Error  string `json:"error,omitempty"`
	Pass   bool   `json:"pass"`
}

// Result is the outcome of running a scenario.
type Result struct {
	RunID  string       `json:"run_id"`
	Name   string       `json:"name"`
	Pass   bool         `json:"pass"`
	Trace  []TraceEvent `json:"trace"`
	Errors []string     `json:"errors,omitempty"`
}

// Harness evaluates scenarios. The zero value is not usable; call New.
type Harness struct {
	runIDs RunIDGenerator
	logger *slog.Logger
}

// Option configures a Harness.
type Option func(*Harness)

// WithLogger sets the logger. The default discards all records.
func WithLogger(l *slog.Logger) Option {
	return func(h *Harness) {
		h.logger = l
	}
}

// WithRunIDGenerator overrides the UUIDv7 run ID source.
func WithRunIDGenerator(g RunIDGenerator) Option {
	return func(h *Harness) {
		h.runIDs = g
	}
}

// New creates a Harness.
func New(opts ...Option) *Harness {
	h := &Harness{
		runIDs: UUIDv7Generator{},
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Run evaluates every step of scenario in order. A step failure marks the
// result as failed but does not stop the run; only context cancellation or
// a nil scenario returns an error.
func (h *Harness) Run(ctx context.Context, scenario *Scenario) (*Result, error) {
	if scenario == nil {
		return nil, fmt.Errorf("nil scenario")
	}

	clock := NewClock()
	result := &Result{
		RunID: h.runIDs.Generate(),
		Name:  scenario.Name,
		Pass:  true,
		Trace: make([]TraceEvent, 0, len(scenario.Steps)),
	}
	logger := h.logger.With("scenario", scenario.Name, "run_id", result.RunID)
	logger.Info("scenario starting", "steps", len(scenario.Steps))

	for i, step := range scenario.Steps {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("scenario %s cancelled at step %d: %w", scenario.Name, i, err)
		}

		event := evaluate(clock.Next(), step)
		result.Trace = append(result.Trace, event)

		logger.Debug("step evaluated",
			"seq", event.Seq,
			"op", event.Op,
			"result", formatValue(event.Result),
			"pass", event.Pass,
		)

		if !event.Pass {
			result.Pass = false
			result.Errors = append(result.Errors, stepFailure(i, step, event))
		}
	}

	logger.Info("scenario finished", "pass", result.Pass, "failures", len(result.Errors))
	return result, nil
}

// Run evaluates scenario with a default Harness.
func Run(scenario *Scenario) (*Result, error) {
	return New().Run(context.Background(), scenario)
}

// evaluate runs one step and decides whether it passed.
func evaluate(seq int64, step Step) TraceEvent {
	event := TraceEvent{Seq: seq, Op: step.Op}

	got, err := evalStep(step)
	if err != nil {
		event.Error = err.Error()
		event.Pass = step.Error != "" && strings.Contains(err.Error(), step.Error)
		return event
	}
	event.Result = got

	if step.Error != "" {
		// expected a failure that did not happen
		return event
	}

	want, err := step.Expected()
	if err != nil {
		event.Error = err.Error()
		return event
	}
	if err := compareResult(got, want); err != nil {
		event.Error = err.Error()
		return event
	}
	event.Pass = true
	return event
}

func stepFailure(i int, step Step, event TraceEvent) string {
	switch {
	case step.Error != "" && event.Error == "":
		return fmt.Sprintf("steps[%d] %s: expected error containing %q, got result %s",
			i, step.Op, step.Error, formatValue(event.Result))
	case step.Error != "":
		return fmt.Sprintf("steps[%d] %s: expected error containing %q, got %q",
			i, step.Op, step.Error, event.Error)
	default:
		return fmt.Sprintf("steps[%d] %s: %s", i, step.Op, event.Error)
	}
}
