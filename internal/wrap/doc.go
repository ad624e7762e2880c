// Package wrap provides thin value wrappers over native Go values.
//
// Date wraps a time.Time and exposes millisecond timestamps, calendar
// projections and ordering predicates. List wraps an optional slice and
// exposes null-safe emptiness checks plus functional traversal helpers.
//
// Key design constraints:
//   - Every Date predicate compares Timestamp values, never calendar fields
//   - An absent List is distinct from an empty one but behaves as empty
//   - Head and RandomElement report "no value" with a false second return
//   - Panics from caller-supplied functions propagate unchanged
//
// Generic operations that introduce a second type parameter (FoldLeft, Map)
// are package-level functions since Go methods cannot declare type
// parameters.
package wrap
