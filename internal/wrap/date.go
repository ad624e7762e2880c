package wrap

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Date wraps a single instant.
//
// All six predicates compare Timestamp values, so two instants that differ
// only below millisecond precision are Equal.
type Date struct {
	t time.Time
}

// NewDate wraps t without transforming it.
func NewDate(t time.Time) Date {
	return Date{t: t}
}

// DateFromMillis wraps the UTC instant ms milliseconds after the Unix epoch.
func DateFromMillis(ms int64) Date {
	return Date{t: time.UnixMilli(ms).UTC()}
}

// ParseDate accepts either an integer count of epoch milliseconds or an
// RFC 3339 timestamp. Epoch input yields a UTC instant; RFC 3339 input keeps
// its offset, which Day and Month then observe.
func ParseDate(s string) (Date, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Date{}, fmt.Errorf("empty input: %w", ErrInvalidDate)
	}
	if ms, err := strconv.ParseInt(s, 10, 64); err == nil {
		return DateFromMillis(ms), nil
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return Date{}, fmt.Errorf("%q: %w", s, ErrInvalidDate)
	}
	return NewDate(t), nil
}

// Timestamp returns milliseconds since the Unix epoch.
func (d Date) Timestamp() Number {
	return Number(d.t.UnixMilli())
}

// Day returns the day of month (1-31) in the instant's location.
func (d Date) Day() Number {
	return Number(d.t.Day())
}

// Month returns the 0-based month index (January = 0) in the instant's
// location.
func (d Date) Month() Number {
	return Number(d.t.Month() - time.January)
}

// Time returns the wrapped instant.
func (d Date) Time() time.Time {
	return d.t
}

func (d Date) Equals(o Date) bool {
	return d.Timestamp().Equals(o.Timestamp())
}

func (d Date) NotEquals(o Date) bool {
	return d.Timestamp().NotEquals(o.Timestamp())
}

// Upper reports whether d is strictly later than o.
func (d Date) Upper(o Date) bool {
	return d.Timestamp().Upper(o.Timestamp())
}

// Lower reports whether d is strictly earlier than o.
func (d Date) Lower(o Date) bool {
	return d.Timestamp().Lower(o.Timestamp())
}

func (d Date) UpperOrEquals(o Date) bool {
	return d.Timestamp().UpperOrEquals(o.Timestamp())
}

func (d Date) LowerOrEquals(o Date) bool {
	return d.Timestamp().LowerOrEquals(o.Timestamp())
}

// Compare returns -1 if d is earlier than o, 0 if their timestamps are
// equal, and +1 if d is later.
func (d Date) Compare(o Date) int {
	switch {
	case d.Lower(o):
		return -1
	case d.Upper(o):
		return 1
	default:
		return 0
	}
}

func (d Date) String() string {
	return d.t.Format(time.RFC3339Nano)
}
