package harness

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/roach88/wrapkit/internal/wrap"
)

// splitFn splits "gt:5" into ("gt", 5, true). Names without an argument
// return hasArg false.
func splitFn(name string) (base string, arg int64, hasArg bool, err error) {
	base, rest, found := strings.Cut(name, ":")
	if !found {
		return base, 0, false, nil
	}
	arg, err = strconv.ParseInt(rest, 10, 64)
	if err != nil {
		return "", 0, false, fmt.Errorf("function %q: invalid argument %q", name, rest)
	}
	return base, arg, true, nil
}

// LookupPredicate resolves a named predicate over int64 elements.
func LookupPredicate(name string) (wrap.Predicate[int64], error) {
	base, n, hasArg, err := splitFn(name)
	if err != nil {
		return nil, err
	}

	if hasArg {
		switch base {
		case "gt":
			return func(x int64) bool { return x > n }, nil
		case "lt":
			return func(x int64) bool { return x < n }, nil
		case "eq":
			return func(x int64) bool { return x == n }, nil
		}
		return nil, fmt.Errorf("unknown predicate %q", name)
	}

	switch base {
	case "positive":
		return func(x int64) bool { return x > 0 }, nil
	case "negative":
		return func(x int64) bool { return x < 0 }, nil
	case "even":
		return func(x int64) bool { return x%2 == 0 }, nil
	case "odd":
		return func(x int64) bool { return x%2 != 0 }, nil
	}
	return nil, fmt.Errorf("unknown predicate %q", name)
}

// LookupTransform resolves a named element transform.
func LookupTransform(name string) (func(int64) int64, error) {
	base, n, hasArg, err := splitFn(name)
	if err != nil {
		return nil, err
	}

	if hasArg {
		switch base {
		case "add":
			return func(x int64) int64 { return x + n }, nil
		case "mul":
			return func(x int64) int64 { return x * n }, nil
		}
		return nil, fmt.Errorf("unknown transform %q", name)
	}

	switch base {
	case "double":
		return func(x int64) int64 { return x * 2 }, nil
	case "square":
		return func(x int64) int64 { return x * x }, nil
	case "negate":
		return func(x int64) int64 { return -x }, nil
	case "inc":
		return func(x int64) int64 { return x + 1 }, nil
	}
	return nil, fmt.Errorf("unknown transform %q", name)
}

// LookupCombiner resolves a named foldLeft combiner.
func LookupCombiner(name string) (func(acc, x int64) int64, error) {
	switch name {
	case "sum":
		return func(acc, x int64) int64 { return acc + x }, nil
	case "product":
		return func(acc, x int64) int64 { return acc * x }, nil
	case "max":
		return func(acc, x int64) int64 { return max(acc, x) }, nil
	case "min":
		return func(acc, x int64) int64 { return min(acc, x) }, nil
	case "count":
		return func(acc, _ int64) int64 { return acc + 1 }, nil
	}
	return nil, fmt.Errorf("unknown combiner %q", name)
}
