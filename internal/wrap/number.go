package wrap

import "strconv"

// Number is an integer projection with named comparison predicates.
// Date projections (Timestamp, Day, Month) return Number.
type Number int64

// Int64 returns the raw value.
func (n Number) Int64() int64 {
	return int64(n)
}

// Equals reports n == o.
func (n Number) Equals(o Number) bool {
	return n == o
}

// NotEquals reports n != o.
func (n Number) NotEquals(o Number) bool {
	return n != o
}

// Upper reports n > o.
func (n Number) Upper(o Number) bool {
	return n > o
}

// Lower reports n < o.
func (n Number) Lower(o Number) bool {
	return n < o
}

// UpperOrEquals reports n >= o.
func (n Number) UpperOrEquals(o Number) bool {
	return n >= o
}

// LowerOrEquals reports n <= o.
func (n Number) LowerOrEquals(o Number) bool {
	return n <= o
}

func (n Number) String() string {
	return strconv.FormatInt(int64(n), 10)
}
