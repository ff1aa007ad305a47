package sliceutil

import "github.com/garethgeorge/anyrange/internal/anyrange"

// Sub returns the part of s selected by r, with absent bounds defaulting to
// 0 and len(s). Out of range bounds panic the same way slicing does.
func Sub[S ~[]T, T any](s S, r anyrange.Range[int]) S {
	c := r.Resolve(0, len(s))
	return s[c.Start:c.End]
}

// SubString is Sub for the bytes of a string.
func SubString(s string, r anyrange.Range[int]) string {
	c := r.Resolve(0, len(s))
	return s[c.Start:c.End]
}
