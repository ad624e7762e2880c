// Package harness runs declarative conformance scenarios against the
// wrappers in package wrap.
//
// # Scenario Format
//
// Scenarios are YAML documents:
//
//	name: list_basics
//	description: "Fold, map and predicates over [1,2,3]"
//	steps:
//	  - op: foldLeft
//	    list: [1, 2, 3]
//	    fn: sum
//	    init: 0
//	    expect: 6
//	  - op: head
//	    list: []
//	    expect: null        # the "no value" sentinel
//	  - op: get
//	    list: [1]
//	    index: 4
//	    error: "out of range"
//	  - op: lower
//	    date: "1000"
//	    other: "1970-01-01T00:00:02Z"
//	    expect: true
//
// Omitting list (or writing list: null) runs the step against an absent
// list. Dates are strings holding either epoch milliseconds or RFC 3339.
// Every step needs either expect or error.
//
// # Named Functions
//
// Predicates: positive, negative, even, odd, gt:N, lt:N, eq:N.
// Transforms: double, square, negate, inc, add:N, mul:N.
// Combiners: sum, product, max, min, count.
//
// # Deterministic Testing
//
// Each run stamps trace events from a fresh logical Clock starting at 1.
// Golden snapshots (RunWithGolden) exclude the run ID so that traces are
// byte-identical across runs.
//
// # Usage
//
//	scenario, err := harness.LoadScenario("testdata/scenarios/list_basics.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	result, err := harness.New().Run(ctx, scenario)
package harness
