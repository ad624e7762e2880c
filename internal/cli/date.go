package cli

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/roach88/wrapkit/internal/wrap"
)

// DateReport is the output of the date command.
type DateReport struct {
	Date       string          `json:"date"`
	Timestamp  int64           `json:"timestamp"`
	Day        int64           `json:"day"`
	Month      int64           `json:"month"`
	Comparison *DateComparison `json:"comparison,omitempty"`
}

// DateComparison holds every predicate of Date against Other.
type DateComparison struct {
	Other         string `json:"other"`
	Equals        bool   `json:"equals"`
	NotEquals     bool   `json:"not_equals"`
	Upper         bool   `json:"upper"`
	Lower         bool   `json:"lower"`
	UpperOrEquals bool   `json:"upper_or_equals"`
	LowerOrEquals bool   `json:"lower_or_equals"`
	Compare       int    `json:"compare"`
}

// NewDateCommand creates the date command.
func NewDateCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "date <date> [other]",
		Short: "Show date projections and comparisons",
		Long: `Show the timestamp, day and month projections of a date.

With a second date, also show equals, notEquals, upper, lower,
upperOrEquals, lowerOrEquals and compare of the first against the second.

Dates are epoch milliseconds or RFC 3339 timestamps.

Examples:
  wrapkit date 1000 2000
  wrapkit date 2024-03-17T10:30:00Z --format json`,
		Args:          cobra.RangeArgs(1, 2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDate(rootOpts, args, cmd)
		},
	}
}

func runDate(opts *RootOptions, args []string, cmd *cobra.Command) error {
	f := newFormatter(opts, cmd.OutOrStdout())

	d, err := wrap.ParseDate(args[0])
	if err != nil {
		return failCommand(f, ErrCodeInvalidArg, "invalid date", err)
	}
	report := BuildDateReport(d)

	if len(args) == 2 {
		o, err := wrap.ParseDate(args[1])
		if err != nil {
			return failCommand(f, ErrCodeInvalidArg, "invalid other date", err)
		}
		report.Comparison = BuildDateComparison(d, o)
	}

	opts.logger().Debug("date inspected", "date", report.Date, "compared", report.Comparison != nil)

	if f.IsJSON() {
		return f.Success(report)
	}
	return f.Table([]string{"Property", "Value"}, report.rows())
}

// BuildDateReport projects d.
func BuildDateReport(d wrap.Date) DateReport {
	return DateReport{
		Date:      d.String(),
		Timestamp: d.Timestamp().Int64(),
		Day:       d.Day().Int64(),
		Month:     d.Month().Int64(),
	}
}

// BuildDateComparison evaluates every predicate of d against o.
func BuildDateComparison(d, o wrap.Date) *DateComparison {
	return &DateComparison{
		Other:         o.String(),
		Equals:        d.Equals(o),
		NotEquals:     d.NotEquals(o),
		Upper:         d.Upper(o),
		Lower:         d.Lower(o),
		UpperOrEquals: d.UpperOrEquals(o),
		LowerOrEquals: d.LowerOrEquals(o),
		Compare:       d.Compare(o),
	}
}

func (r DateReport) rows() [][]string {
	rows := [][]string{
		{"date", r.Date},
		{"timestamp", strconv.FormatInt(r.Timestamp, 10)},
		{"day", strconv.FormatInt(r.Day, 10)},
		{"month", strconv.FormatInt(r.Month, 10)},
	}
	if c := r.Comparison; c != nil {
		rows = append(rows,
			[]string{"other", c.Other},
			[]string{"equals", strconv.FormatBool(c.Equals)},
			[]string{"notEquals", strconv.FormatBool(c.NotEquals)},
			[]string{"upper", strconv.FormatBool(c.Upper)},
			[]string{"lower", strconv.FormatBool(c.Lower)},
			[]string{"upperOrEquals", strconv.FormatBool(c.UpperOrEquals)},
			[]string{"lowerOrEquals", strconv.FormatBool(c.LowerOrEquals)},
			[]string{"compare", strconv.Itoa(c.Compare)},
		)
	}
	return rows
}
