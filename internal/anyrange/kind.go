package anyrange

// Kind identifies which bounds a range carries.
type Kind uint8

const (
	KindFull    Kind = iota // ..
	KindFrom                // lo..
	KindTo                  // ..hi
	KindBounded             // lo..hi
)

func (k Kind) String() string {
	switch k {
	case KindFull:
		return "full"
	case KindFrom:
		return "from"
	case KindTo:
		return "to"
	case KindBounded:
		return "bounded"
	default:
		return "unknown"
	}
}

// HasStart reports whether ranges of this kind carry an explicit start.
func (k Kind) HasStart() bool {
	return k == KindFrom || k == KindBounded
}

// HasEnd reports whether ranges of this kind carry an explicit end.
func (k Kind) HasEnd() bool {
	return k == KindTo || k == KindBounded
}

// KindOf classifies b by the bounds it reports, so it works for any Bounds
// implementation and not only the types in this package.
func KindOf[I any](b Bounds[I]) Kind {
	_, hasStart := b.Start()
	_, hasEnd := b.End()
	switch {
	case hasStart && hasEnd:
		return KindBounded
	case hasStart:
		return KindFrom
	case hasEnd:
		return KindTo
	default:
		return KindFull
	}
}

// New returns the range variant matching the given optional bounds. Indexes
// whose flag is false are ignored.
func New[I any](start I, hasStart bool, end I, hasEnd bool) Range[I] {
	switch {
	case hasStart && hasEnd:
		return Between(start, end)
	case hasStart:
		return From(start)
	case hasEnd:
		return To(end)
	default:
		return Full[I]()
	}
}

// Normalize rebuilds any Bounds value as one of this package's variants.
func Normalize[I any](b Bounds[I]) Range[I] {
	s, hasStart := b.Start()
	e, hasEnd := b.End()
	return New(s, hasStart, e, hasEnd)
}
