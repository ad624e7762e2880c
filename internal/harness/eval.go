package harness

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"github.com/roach88/wrapkit/internal/wrap"
)

// ListOps and DateOps are the operation names a step may use.
var (
	ListOps = []string{
		"nonEmpty", "isEmpty", "len", "head", "randomElement",
		"forall", "exists", "foldLeft", "map", "get", "set",
	}
	DateOps = []string{
		"timestamp", "day", "month", "equals", "notEquals",
		"upper", "lower", "upperOrEquals", "lowerOrEquals", "compare",
	}
)

func isListOp(op string) bool { return slices.Contains(ListOps, op) }
func isDateOp(op string) bool { return slices.Contains(DateOps, op) }

// binaryDateOp reports whether op compares two dates.
func binaryDateOp(op string) bool {
	switch op {
	case "timestamp", "day", "month":
		return false
	}
	return true
}

// checkOperands verifies that a step's named function and dates resolve,
// so that evaluation failures are attributable to the wrappers.
func checkOperands(step Step) error {
	switch {
	case isListOp(step.Op):
		switch step.Op {
		case "forall", "exists":
			_, err := LookupPredicate(step.Fn)
			return err
		case "map":
			_, err := LookupTransform(step.Fn)
			return err
		case "foldLeft":
			_, err := LookupCombiner(step.Fn)
			return err
		}
		return nil

	case isDateOp(step.Op):
		if _, err := wrap.ParseDate(step.Date); err != nil {
			return fmt.Errorf("date: %w", err)
		}
		if binaryDateOp(step.Op) {
			if _, err := wrap.ParseDate(step.Other); err != nil {
				return fmt.Errorf("other: %w", err)
			}
		}
		return nil
	}
	return fmt.Errorf("unknown op %q", step.Op)
}

// stepList builds the wrapped list for a step. The scenario's slice is
// copied so that set steps never leak into later steps.
func stepList(step Step) wrap.List[int64] {
	if step.List == nil {
		return wrap.Absent[int64]()
	}
	return wrap.NewList(slices.Clone(*step.List))
}

// evalStep runs a step's operation. Results are nil, bool, int64 or
// []int64.
func evalStep(step Step) (any, error) {
	switch {
	case isListOp(step.Op):
		return evalListOp(step)
	case isDateOp(step.Op):
		return evalDateOp(step)
	}
	return nil, fmt.Errorf("unknown op %q", step.Op)
}

func evalListOp(step Step) (any, error) {
	l := stepList(step)

	switch step.Op {
	case "nonEmpty":
		return l.NonEmpty(), nil
	case "isEmpty":
		return l.IsEmpty(), nil
	case "len":
		return int64(l.Len()), nil
	case "head":
		return optional(l.Head())
	case "randomElement":
		return optional(l.RandomElement())
	case "forall":
		p, err := LookupPredicate(step.Fn)
		if err != nil {
			return nil, err
		}
		return l.Forall(p), nil
	case "exists":
		p, err := LookupPredicate(step.Fn)
		if err != nil {
			return nil, err
		}
		return l.Exists(p), nil
	case "foldLeft":
		f, err := LookupCombiner(step.Fn)
		if err != nil {
			return nil, err
		}
		return wrap.FoldLeft(l, step.Init, f), nil
	case "map":
		f, err := LookupTransform(step.Fn)
		if err != nil {
			return nil, err
		}
		return listValue(wrap.Map(l, f)), nil
	case "get":
		return l.Get(step.Index)
	case "set":
		if err := l.Set(step.Index, step.Value); err != nil {
			return nil, err
		}
		return listValue(l), nil
	}
	return nil, fmt.Errorf("unknown list op %q", step.Op)
}

func evalDateOp(step Step) (any, error) {
	d, err := wrap.ParseDate(step.Date)
	if err != nil {
		return nil, err
	}

	switch step.Op {
	case "timestamp":
		return d.Timestamp().Int64(), nil
	case "day":
		return d.Day().Int64(), nil
	case "month":
		return d.Month().Int64(), nil
	}

	o, err := wrap.ParseDate(step.Other)
	if err != nil {
		return nil, err
	}

	switch step.Op {
	case "equals":
		return d.Equals(o), nil
	case "notEquals":
		return d.NotEquals(o), nil
	case "upper":
		return d.Upper(o), nil
	case "lower":
		return d.Lower(o), nil
	case "upperOrEquals":
		return d.UpperOrEquals(o), nil
	case "lowerOrEquals":
		return d.LowerOrEquals(o), nil
	case "compare":
		return int64(d.Compare(o)), nil
	}
	return nil, fmt.Errorf("unknown date op %q", step.Op)
}

// optional maps the "no value" sentinel to nil.
func optional(v int64, ok bool) (any, error) {
	if !ok {
		return nil, nil
	}
	return v, nil
}

// listValue maps an absent list to nil and a present one to a non-nil
// slice.
func listValue(l wrap.List[int64]) any {
	if !l.IsDefined() {
		return nil
	}
	if l.Slice() == nil {
		return []int64{}
	}
	return l.Slice()
}

// normalizeValue converts a decoded YAML value into the result domain.
func normalizeValue(v any) (any, error) {
	switch val := v.(type) {
	case nil:
		return nil, nil
	case bool:
		return val, nil
	case int:
		return int64(val), nil
	case int64:
		return val, nil
	case uint64:
		if val > math.MaxInt64 {
			return nil, fmt.Errorf("integer %d out of int64 range", val)
		}
		return int64(val), nil
	case []any:
		out := make([]int64, len(val))
		for i, elem := range val {
			n, err := normalizeValue(elem)
			if err != nil {
				return nil, fmt.Errorf("[%d]: %w", i, err)
			}
			x, ok := n.(int64)
			if !ok {
				return nil, fmt.Errorf("[%d]: expected integer, got %T", i, elem)
			}
			out[i] = x
		}
		return out, nil
	case []int64:
		return val, nil
	default:
		return nil, fmt.Errorf("unsupported value type %T", v)
	}
}

var errMismatch = errors.New("result mismatch")

// compareResult returns nil when got matches want.
func compareResult(got, want any) error {
	equal := false
	switch w := want.(type) {
	case nil:
		equal = got == nil
	case bool:
		g, ok := got.(bool)
		equal = ok && g == w
	case int64:
		g, ok := got.(int64)
		equal = ok && g == w
	case []int64:
		g, ok := got.([]int64)
		equal = ok && slices.Equal(g, w)
	}
	if !equal {
		return fmt.Errorf("%w: got %s, want %s", errMismatch, formatValue(got), formatValue(want))
	}
	return nil
}

// formatValue renders a result value using its canonical JSON form.
func formatValue(v any) string {
	b, err := MarshalCanonical(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(b)
}
