package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/wrapkit/internal/harness"
	"github.com/roach88/wrapkit/internal/wrap"
)

// ListOptions holds flags for the list command.
type ListOptions struct {
	*RootOptions
	Absent    bool
	Predicate string
	Transform string
	Combiner  string
	Init      int64
}

// ListReport is the output of the list command.
type ListReport struct {
	Defined       bool    `json:"defined"`
	NonEmpty      bool    `json:"non_empty"`
	IsEmpty       bool    `json:"is_empty"`
	Len           int     `json:"len"`
	Head          *int64  `json:"head"`
	RandomElement *int64  `json:"random_element"`
	Predicate     string  `json:"predicate"`
	Forall        bool    `json:"forall"`
	Exists        bool    `json:"exists"`
	Transform     string  `json:"transform"`
	Mapped        []int64 `json:"mapped"`
	Combiner      string  `json:"combiner"`
	Init          int64   `json:"init"`
	Folded        int64   `json:"folded"`
}

// NewListCommand creates the list command.
func NewListCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ListOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "list [ints...]",
		Short: "Show list wrapper results for a sequence of integers",
		Long: `Wrap a sequence of integers and show emptiness, head, forall/exists,
map and foldLeft results.

With no integers the list is present but empty; --absent wraps no
sequence at all. Use -- before negative numbers.

Named functions:
  predicates: positive, negative, even, odd, gt:N, lt:N, eq:N
  transforms: double, square, negate, inc, add:N, mul:N
  combiners:  sum, product, max, min, count

Examples:
  wrapkit list 1 2 3
  wrapkit list 1 2 3 --pred gt:5 --map square --fold product --init 1
  wrapkit list -- -4 5`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(opts, args, cmd)
		},
	}

	cmd.Flags().BoolVar(&opts.Absent, "absent", false, "wrap no sequence at all")
	cmd.Flags().StringVar(&opts.Predicate, "pred", "positive", "predicate for forall/exists")
	cmd.Flags().StringVar(&opts.Transform, "map", "double", "transform for map")
	cmd.Flags().StringVar(&opts.Combiner, "fold", "sum", "combiner for foldLeft")
	cmd.Flags().Int64Var(&opts.Init, "init", 0, "foldLeft start value")

	return cmd
}

func runList(opts *ListOptions, args []string, cmd *cobra.Command) error {
	f := newFormatter(opts.RootOptions, cmd.OutOrStdout())

	if opts.Absent && len(args) > 0 {
		return failCommand(f, ErrCodeInvalidArg, "invalid arguments",
			fmt.Errorf("--absent takes no integers, got %d", len(args)))
	}

	l := wrap.Absent[int64]()
	if !opts.Absent {
		items, err := parseInts(args)
		if err != nil {
			return failCommand(f, ErrCodeInvalidArg, "invalid list", err)
		}
		l = wrap.NewList(items)
	}

	report, err := BuildListReport(l, opts.Predicate, opts.Transform, opts.Combiner, opts.Init)
	if err != nil {
		return failCommand(f, ErrCodeInvalidArg, "invalid function", err)
	}

	opts.logger().Debug("list inspected", "len", report.Len, "defined", report.Defined)

	if f.IsJSON() {
		return f.Success(report)
	}
	return f.Table([]string{"Property", "Value"}, report.rows())
}

// BuildListReport evaluates every list operation on l with the named
// functions.
func BuildListReport(l wrap.List[int64], pred, transform, combiner string, init int64) (*ListReport, error) {
	p, err := harness.LookupPredicate(pred)
	if err != nil {
		return nil, err
	}
	t, err := harness.LookupTransform(transform)
	if err != nil {
		return nil, err
	}
	c, err := harness.LookupCombiner(combiner)
	if err != nil {
		return nil, err
	}

	report := &ListReport{
		Defined:   l.IsDefined(),
		NonEmpty:  l.NonEmpty(),
		IsEmpty:   l.IsEmpty(),
		Len:       l.Len(),
		Predicate: pred,
		Forall:    l.Forall(p),
		Exists:    l.Exists(p),
		Transform: transform,
		Combiner:  combiner,
		Init:      init,
		Folded:    wrap.FoldLeft(l, init, c),
	}
	if h, ok := l.Head(); ok {
		report.Head = &h
	}
	if r, ok := l.RandomElement(); ok {
		report.RandomElement = &r
	}
	if mapped := wrap.Map(l, t); mapped.IsDefined() {
		report.Mapped = mapped.Slice()
		if report.Mapped == nil {
			report.Mapped = []int64{}
		}
	}
	return report, nil
}

func parseInts(args []string) ([]int64, error) {
	items := make([]int64, 0, len(args))
	for _, a := range args {
		n, err := strconv.ParseInt(a, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%q is not an integer", a)
		}
		items = append(items, n)
	}
	return items, nil
}

func (r *ListReport) rows() [][]string {
	return [][]string{
		{"defined", strconv.FormatBool(r.Defined)},
		{"nonEmpty", strconv.FormatBool(r.NonEmpty)},
		{"isEmpty", strconv.FormatBool(r.IsEmpty)},
		{"len", strconv.Itoa(r.Len)},
		{"head", optionalInt(r.Head)},
		{"randomElement", optionalInt(r.RandomElement)},
		{"forall " + r.Predicate, strconv.FormatBool(r.Forall)},
		{"exists " + r.Predicate, strconv.FormatBool(r.Exists)},
		{"map " + r.Transform, formatInts(r.Mapped)},
		{fmt.Sprintf("foldLeft %s from %d", r.Combiner, r.Init), strconv.FormatInt(r.Folded, 10)},
	}
}

func optionalInt(p *int64) string {
	if p == nil {
		return "none"
	}
	return strconv.FormatInt(*p, 10)
}

func formatInts(xs []int64) string {
	if xs == nil {
		return "absent"
	}
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = strconv.FormatInt(x, 10)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
