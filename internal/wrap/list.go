package wrap

import "fmt"

// Predicate is a boolean test over a single element.
type Predicate[A any] func(A) bool

// List wraps an optional ordered sequence.
//
// The zero value is absent. An absent List answers every query as an empty
// one does; only IsDefined, Slice and positional access tell them apart.
//
// Copies of a List share the wrapped slice, so Set is visible through every
// copy and through the caller's original slice.
type List[A any] struct {
	items   []A
	present bool
}

// NewList wraps items. The result is present even when items is nil.
func NewList[A any](items []A) List[A] {
	return List[A]{items: items, present: true}
}

// Of wraps the given elements.
func Of[A any](items ...A) List[A] {
	return NewList(items)
}

// Absent returns a List holding no sequence.
func Absent[A any]() List[A] {
	return List[A]{}
}

// IsDefined reports whether a sequence is present.
func (l List[A]) IsDefined() bool {
	return l.present
}

func (l List[A]) Len() int {
	return len(l.items)
}

// NonEmpty reports whether the sequence is present and has at least one
// element.
func (l List[A]) NonEmpty() bool {
	return l.present && len(l.items) > 0
}

func (l List[A]) IsEmpty() bool {
	return !l.NonEmpty()
}

// Head returns the first element. The second result is false when the list
// is absent or empty.
func (l List[A]) Head() (A, bool) {
	if !l.NonEmpty() {
		var zero A
		return zero, false
	}
	return l.items[0], true
}

// RandomElement is not random: it returns the first element, exactly like
// Head.
func (l List[A]) RandomElement() (A, bool) {
	return l.Head()
}

// Forall reports whether every element satisfies p. It stops at the first
// element that does not.
func (l List[A]) Forall(p Predicate[A]) bool {
	for _, a := range l.items {
		if !p(a) {
			return false
		}
	}
	return true
}

// Exists reports whether some element satisfies p. It stops at the first
// element that does.
func (l List[A]) Exists(p Predicate[A]) bool {
	for _, a := range l.items {
		if p(a) {
			return true
		}
	}
	return false
}

// Get returns the element at index i.
func (l List[A]) Get(i int) (A, error) {
	var zero A
	if err := l.checkIndex(i); err != nil {
		return zero, err
	}
	return l.items[i], nil
}

// Set overwrites the element at index i in the wrapped slice.
func (l List[A]) Set(i int, v A) error {
	if err := l.checkIndex(i); err != nil {
		return err
	}
	l.items[i] = v
	return nil
}

func (l List[A]) checkIndex(i int) error {
	if !l.present {
		return fmt.Errorf("index %d: %w", i, ErrAbsent)
	}
	if i < 0 || i >= len(l.items) {
		return fmt.Errorf("index %d with length %d: %w", i, len(l.items), ErrIndexOutOfRange)
	}
	return nil
}

// Slice returns the wrapped slice itself, or nil when absent.
func (l List[A]) Slice() []A {
	return l.items
}

// FoldLeft combines elements left to right starting from init. It returns
// init unchanged for an empty or absent list.
func FoldLeft[A, B any](l List[A], init B, f func(B, A) B) B {
	acc := init
	for _, a := range l.items {
		acc = f(acc, a)
	}
	return acc
}

// Map returns a new List holding f applied to each element in order. The
// source list and its slice are not modified. Mapping an absent list yields
// an absent list.
func Map[A, B any](l List[A], f func(A) B) List[B] {
	if !l.present {
		return Absent[B]()
	}
	out := make([]B, len(l.items))
	for i, a := range l.items {
		out[i] = f(a)
	}
	return NewList(out)
}
