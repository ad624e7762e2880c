package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/roach88/wrapkit/internal/harness"
)

// ValidationResult holds validation results.
type ValidationResult struct {
	File  string `json:"file"`
	Name  string `json:"name,omitempty"`
	Steps int    `json:"steps,omitempty"`
	Valid bool   `json:"valid"`
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <scenario-file>",
		Short: "Validate a scenario file without running it",
		Long: `Check a scenario file against the scenario schema, decode it strictly
and resolve its named functions and dates.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(rootOpts, args[0], cmd)
		},
	}
}

func runValidate(opts *RootOptions, file string, cmd *cobra.Command) error {
	f := newFormatter(opts, cmd.OutOrStdout())

	scenario, err := harness.LoadScenario(file)
	if err != nil {
		code := ErrCodeInvalidInput
		var loadErr *harness.LoadError
		if errors.As(err, &loadErr) && loadErr.Code == harness.ErrCodeNotFound {
			code = ErrCodeNotFound
		}
		return failCommand(f, code, "invalid scenario", err)
	}

	opts.logger().Debug("scenario valid", "file", file, "steps", len(scenario.Steps))

	result := ValidationResult{File: file, Name: scenario.Name, Steps: len(scenario.Steps), Valid: true}
	if f.IsJSON() {
		return f.Success(result)
	}
	return f.Success("✓ " + scenario.Name + " is valid")
}
