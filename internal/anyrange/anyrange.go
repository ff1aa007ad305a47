// Package anyrange unifies the four range shapes (lo..hi, lo.., ..hi and ..)
// behind one interface so generic code can accept any of them and resolve
// concrete bounds from caller-supplied defaults.
package anyrange

import "fmt"

// Bounds reports the explicit bounds of a range-like value. The bool result
// is false when the bound is absent, in which case the index is the zero
// value and must not be used.
type Bounds[I any] interface {
	Start() (I, bool)
	End() (I, bool)
}

// Range is a range-like value that can be resolved into a Concrete range.
type Range[I any] interface {
	Bounds[I]

	// Resolve returns the range with every absent bound replaced by the
	// matching default. Explicit bounds always win.
	Resolve(defaultStart, defaultEnd I) Concrete[I]
}

// Concrete is a fully specified range. Neither bound is ever absent.
type Concrete[I any] struct {
	Start I
	End   I
}

func (c Concrete[I]) String() string {
	return fmt.Sprintf("[%v, %v)", c.Start, c.End)
}

// ResolveBounds is the default resolution: each bound is looked up on its
// own and replaced by its default when absent.
func ResolveBounds[I any](b Bounds[I], defaultStart, defaultEnd I) Concrete[I] {
	c := Concrete[I]{Start: defaultStart, End: defaultEnd}
	if s, ok := b.Start(); ok {
		c.Start = s
	}
	if e, ok := b.End(); ok {
		c.End = e
	}
	return c
}

// Resolve resolves any range against the given defaults.
func Resolve[I any](r Range[I], defaultStart, defaultEnd I) Concrete[I] {
	return r.Resolve(defaultStart, defaultEnd)
}

var (
	_ Range[int] = BoundedRange[int]{}
	_ Range[int] = FromRange[int]{}
	_ Range[int] = ToRange[int]{}
	_ Range[int] = FullRange[int]{}
)

// BoundedRange has both a start and an end.
type BoundedRange[I any] struct {
	start I
	end   I
}

func Between[I any](start, end I) BoundedRange[I] {
	return BoundedRange[I]{start: start, end: end}
}

func (r BoundedRange[I]) Start() (I, bool) { return r.start, true }
func (r BoundedRange[I]) End() (I, bool)   { return r.end, true }

// Resolve ignores the defaults entirely, even when they disagree with the
// range's own bounds.
func (r BoundedRange[I]) Resolve(_, _ I) Concrete[I] {
	return Concrete[I]{Start: r.start, End: r.end}
}

// FromRange has a start and runs to whatever end the caller supplies.
type FromRange[I any] struct {
	start I
}

func From[I any](start I) FromRange[I] {
	return FromRange[I]{start: start}
}

func (r FromRange[I]) Start() (I, bool) { return r.start, true }

func (r FromRange[I]) End() (I, bool) {
	var zero I
	return zero, false
}

func (r FromRange[I]) Resolve(defaultStart, defaultEnd I) Concrete[I] {
	return ResolveBounds[I](r, defaultStart, defaultEnd)
}

// ToRange has an end and starts wherever the caller says.
type ToRange[I any] struct {
	end I
}

func To[I any](end I) ToRange[I] {
	return ToRange[I]{end: end}
}

func (r ToRange[I]) Start() (I, bool) {
	var zero I
	return zero, false
}

func (r ToRange[I]) End() (I, bool) { return r.end, true }

func (r ToRange[I]) Resolve(defaultStart, defaultEnd I) Concrete[I] {
	return ResolveBounds[I](r, defaultStart, defaultEnd)
}

// FullRange has no bounds at all.
type FullRange[I any] struct{}

func Full[I any]() FullRange[I] {
	return FullRange[I]{}
}

func (FullRange[I]) Start() (I, bool) {
	var zero I
	return zero, false
}

func (FullRange[I]) End() (I, bool) {
	var zero I
	return zero, false
}

// Resolve returns the defaults unchanged.
func (FullRange[I]) Resolve(defaultStart, defaultEnd I) Concrete[I] {
	return Concrete[I]{Start: defaultStart, End: defaultEnd}
}
