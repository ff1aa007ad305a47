package anyrange

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Notation:
//
//	Range = [ Index ] ( '..' | '..=' ) [ Index ]
//	Index = [ '-' ] Digit { Digit }
//
// '..' excludes the end and '..=' includes it. An inclusive end is stored
// as the exclusive end hi+1.

func (r BoundedRange[I]) String() string { return fmt.Sprintf("%v..%v", r.start, r.end) }
func (r FromRange[I]) String() string    { return fmt.Sprintf("%v..", r.start) }
func (r ToRange[I]) String() string      { return fmt.Sprintf("..%v", r.end) }
func (FullRange[I]) String() string      { return ".." }

// Parse reads a range in lo..hi notation. Either side may be omitted.
// Parse does not check that lo <= hi.
func Parse[I constraints.Integer](s string) (Range[I], error) {
	low, sep, high := splitNotation(strings.TrimSpace(s))
	if sep == "" {
		return nil, &ParseError{Input: s, Err: fmt.Errorf("%w: missing \"..\"", ErrSyntax)}
	}

	var start, end I
	hasStart := low != ""
	hasEnd := high != ""
	if hasStart {
		v, err := parseIndex[I](low)
		if err != nil {
			return nil, &ParseError{Input: s, Err: fmt.Errorf("start: %w", err)}
		}
		start = v
	}
	if hasEnd {
		v, err := parseIndex[I](high)
		if err != nil {
			return nil, &ParseError{Input: s, Err: fmt.Errorf("end: %w", err)}
		}
		if sep == "..=" {
			if v+1 < v {
				return nil, &ParseError{Input: s, Err: fmt.Errorf("end: %w: %s is the largest value, cannot include it", ErrOverflow, high)}
			}
			v++
		}
		end = v
	}
	return New(start, hasStart, end, hasEnd), nil
}

// MustParse is like Parse but panics on error.
func MustParse[I constraints.Integer](s string) Range[I] {
	r, err := Parse[I](s)
	if err != nil {
		panic(err)
	}
	return r
}

func splitNotation(s string) (low, sep, high string) {
	if i := strings.Index(s, "..="); i >= 0 {
		return strings.TrimSpace(s[:i]), "..=", strings.TrimSpace(s[i+3:])
	}
	if i := strings.Index(s, ".."); i >= 0 {
		return strings.TrimSpace(s[:i]), "..", strings.TrimSpace(s[i+2:])
	}
	return s, "", ""
}

func parseIndex[I constraints.Integer](s string) (I, error) {
	var zero I
	if strings.HasPrefix(s, "+") {
		return zero, fmt.Errorf("%w: %q has a sign prefix", ErrSyntax, s)
	}
	bits := int(unsafe.Sizeof(zero)) * 8
	if isSigned[I]() {
		v, err := strconv.ParseInt(s, 10, bits)
		if err != nil {
			return zero, indexError(s, err)
		}
		return I(v), nil
	}
	v, err := strconv.ParseUint(s, 10, bits)
	if err != nil {
		return zero, indexError(s, err)
	}
	return I(v), nil
}

func isSigned[I constraints.Integer]() bool {
	var zero I
	return zero-1 < 0
}

func indexError(s string, err error) error {
	if errors.Is(err, strconv.ErrRange) {
		return fmt.Errorf("%w: %s", ErrOverflow, s)
	}
	return fmt.Errorf("%w: %q is not an integer", ErrSyntax, s)
}
