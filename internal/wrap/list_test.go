package wrap

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListExamples(t *testing.T) {
	l := Of(1, 2, 3)

	sum := FoldLeft(l, 0, func(acc, x int) int { return acc + x })
	assert.Equal(t, 6, sum)
	assert.True(t, l.Forall(func(x int) bool { return x > 0 }))
	assert.False(t, l.Exists(func(x int) bool { return x > 5 }))
	assert.Equal(t, []int{2, 4, 6}, Map(l, func(x int) int { return x * 2 }).Slice())
}

func TestListEmptiness(t *testing.T) {
	tests := []struct {
		name     string
		list     List[int]
		nonEmpty bool
		defined  bool
	}{
		{"absent", Absent[int](), false, false},
		{"zero value", List[int]{}, false, false},
		{"nil slice", NewList[int](nil), false, true},
		{"empty", Of[int](), false, true},
		{"one", Of(7), true, true},
		{"many", Of(1, 2, 3), true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.nonEmpty, tt.list.NonEmpty())
			assert.Equal(t, !tt.list.NonEmpty(), tt.list.IsEmpty())
			assert.Equal(t, tt.defined, tt.list.IsDefined())
		})
	}
}

func TestListEmptyVacuity(t *testing.T) {
	always := func(int) bool { return true }
	never := func(int) bool { return false }

	for name, l := range map[string]List[int]{"absent": Absent[int](), "empty": Of[int]()} {
		t.Run(name, func(t *testing.T) {
			assert.True(t, l.Forall(never))
			assert.False(t, l.Exists(always))
			assert.Equal(t, "init", FoldLeft(l, "init", func(acc string, x int) string { return acc + "!" }))

			_, ok := l.Head()
			assert.False(t, ok)
			_, ok = l.RandomElement()
			assert.False(t, ok)
			assert.Equal(t, 0, l.Len())
		})
	}
}

func TestListHeadAndRandomElement(t *testing.T) {
	l := Of("a", "b", "c")

	h, ok := l.Head()
	require.True(t, ok)
	assert.Equal(t, "a", h)

	// RandomElement is a deterministic placeholder.
	for i := 0; i < 10; i++ {
		r, ok := l.RandomElement()
		require.True(t, ok)
		assert.Equal(t, "a", r)
	}
}

func TestListForallShortCircuits(t *testing.T) {
	var seen []int
	ok := Of(1, -1, 2, 3).Forall(func(x int) bool {
		seen = append(seen, x)
		return x > 0
	})

	assert.False(t, ok)
	assert.Equal(t, []int{1, -1}, seen)
}

func TestListExistsShortCircuits(t *testing.T) {
	var seen []int
	ok := Of(1, 6, 7).Exists(func(x int) bool {
		seen = append(seen, x)
		return x > 5
	})

	assert.True(t, ok)
	assert.Equal(t, []int{1, 6}, seen)
}

func TestFoldLeftOrder(t *testing.T) {
	got := FoldLeft(Of(1, 2, 3), "", func(acc string, x int) string {
		return acc + strconv.Itoa(x)
	})
	assert.Equal(t, "123", got)

	// non-commutative combine: ((10-1)-2)-3
	assert.Equal(t, 4, FoldLeft(Of(1, 2, 3), 10, func(acc, x int) int { return acc - x }))
}

func TestMapPreservesSource(t *testing.T) {
	src := []int{1, 2, 3}
	l := NewList(src)

	mapped := Map(l, func(x int) string { return strconv.Itoa(x * x) })

	assert.Equal(t, []string{"1", "4", "9"}, mapped.Slice())
	assert.Equal(t, []int{1, 2, 3}, src)
	assert.Equal(t, []int{1, 2, 3}, l.Slice())

	require.NoError(t, mapped.Set(0, "x"))
	assert.Equal(t, []int{1, 2, 3}, src, "mapped list must not share storage")
}

func TestMapAbsentAndEmpty(t *testing.T) {
	double := func(x int) int { return x * 2 }

	absent := Map(Absent[int](), double)
	assert.False(t, absent.IsDefined())

	empty := Map(Of[int](), double)
	assert.True(t, empty.IsDefined())
	assert.Equal(t, 0, empty.Len())
}

func TestListGetSet(t *testing.T) {
	src := []int{10, 20, 30}
	l := NewList(src)

	v, err := l.Get(1)
	require.NoError(t, err)
	assert.Equal(t, 20, v)

	require.NoError(t, l.Set(2, 99))
	assert.Equal(t, []int{10, 20, 99}, src, "Set writes through to the wrapped slice")

	got, err := l.Get(2)
	require.NoError(t, err)
	assert.Equal(t, 99, got)
}

func TestListGetSetOutOfRange(t *testing.T) {
	l := Of(1, 2)

	for _, i := range []int{-1, 2, 100} {
		_, err := l.Get(i)
		assert.ErrorIs(t, err, ErrIndexOutOfRange)
		assert.ErrorIs(t, l.Set(i, 0), ErrIndexOutOfRange)
	}
	assert.Equal(t, []int{1, 2}, l.Slice())
}

func TestListGetSetAbsent(t *testing.T) {
	l := Absent[int]()

	_, err := l.Get(0)
	assert.ErrorIs(t, err, ErrAbsent)
	assert.ErrorIs(t, l.Set(0, 1), ErrAbsent)
}

func TestListPredicatePanicPropagates(t *testing.T) {
	assert.PanicsWithValue(t, "boom", func() {
		Of(1).Forall(func(int) bool { panic("boom") })
	})
}
