package accessor

// AddressorSelector keys an addressor-variant handler by ownership
// convention and mutability. The selector (AddressorOwning, Immutable)
// matches only addressWithOwner, never mutableAddressWithOwner.
type AddressorSelector struct {
	Addressor  AddressorKind
	Mutability Mutability
}

// HandlerSet configures one expansion over the taxonomy. A consumer fills
// in handlers for the categories it cares about; unhandled rows fall back
// along the category chains and are silently dropped when nothing resolves.
//
// Fallback chains:
//
//	ObjC      -> Opaque -> Singleton
//	Opaque    -> Singleton
//	Observing -> Singleton
//	Coroutine -> Singleton
//
// Addressor rows never reach Singleton. Variant rows try AddressorFor
// keyed by their (AddressorKind, Mutability) pair, then the general
// Addressor handler. The two marker rows (Address, MutableAddress) are
// consumed only by Marker.
type HandlerSet[T any] struct {
	// Singleton is the base handler every non-addressor chain ends in.
	Singleton func(Entry) T
	// Observing handles willSet/didSet.
	Observing func(Entry) T
	// Opaque handles opaque-entry-point rows and, by inheritance, ObjC rows.
	Opaque func(Entry) T
	// ObjC handles rows with an ObjC entry point.
	ObjC func(Entry) T
	// Coroutine handles _read/_modify.
	Coroutine func(Entry) T

	// Marker handles the abstract Address/MutableAddress rows.
	Marker func(Entry) T
	// Addressor handles any addressor variant not matched by AddressorFor.
	Addressor func(Entry) T
	// AddressorFor handles specific (AddressorKind, Mutability) pairs.
	AddressorFor map[AddressorSelector]func(Entry) T

	// IncludeSuppressed opts into artificial rows (MaterializeForSet).
	// Suppressed rows are filtered before handler dispatch otherwise.
	IncludeSuppressed bool

	// Terminal, if set, fires exactly once after the last row has been
	// visited. Consumers use it for end-of-list actions such as closing a
	// generated switch statement. It fires even if every row was dropped.
	Terminal func()
}

// Resolved pairs a taxonomy row with the artifact its handler produced.
type Resolved[T any] struct {
	Entry    Entry
	Artifact T
}

// Expand walks the taxonomy once in declaration order, dispatching each
// row to the most specific handler and collecting the produced artifacts.
// Rows with no resolving handler are dropped, not an error: a consumer
// that wants full coverage must check the result itself.
func Expand[T any](h HandlerSet[T]) []Resolved[T] {
	var out []Resolved[T]
	for _, e := range entries {
		if e.Suppressed && !h.IncludeSuppressed {
			continue
		}
		fn, ok := h.resolve(e)
		if !ok {
			continue
		}
		out = append(out, Resolved[T]{Entry: e, Artifact: fn(e)})
	}
	if h.Terminal != nil {
		h.Terminal()
	}
	return out
}

// ExpandByKind is the id-keyed projection of Expand.
func ExpandByKind[T any](h HandlerSet[T]) map[Kind]T {
	out := make(map[Kind]T)
	for _, r := range Expand(h) {
		out[r.Entry.Kind] = r.Artifact
	}
	return out
}

// ExpandByKeyword is the keyword-keyed projection of Expand. Rows without
// a keyword (the two addressor markers) never appear, whatever handlers
// are supplied.
func ExpandByKeyword[T any](h HandlerSet[T]) map[string]T {
	out := make(map[string]T)
	for _, r := range Expand(h) {
		if r.Entry.Keyword == "" {
			continue
		}
		out[r.Entry.Keyword] = r.Artifact
	}
	return out
}

// resolve returns the handler for a row, walking the category fallback
// chain. The bool is false when the row should be dropped.
func (h HandlerSet[T]) resolve(e Entry) (func(Entry) T, bool) {
	switch e.Category {
	case CategorySingleton:
		return firstHandler(h.Singleton)
	case CategoryObserving:
		return firstHandler(h.Observing, h.Singleton)
	case CategoryOpaque:
		return firstHandler(h.Opaque, h.Singleton)
	case CategoryObjC:
		return firstHandler(h.ObjC, h.Opaque, h.Singleton)
	case CategoryCoroutine:
		return firstHandler(h.Coroutine, h.Singleton)
	case CategoryAddressor:
		if e.IsMarker() {
			return firstHandler(h.Marker)
		}
		if fn, ok := h.AddressorFor[AddressorSelector{e.Addressor, e.Mutability}]; ok && fn != nil {
			return fn, true
		}
		return firstHandler(h.Addressor)
	}
	return nil, false
}

func firstHandler[T any](fns ...func(Entry) T) (func(Entry) T, bool) {
	for _, fn := range fns {
		if fn != nil {
			return fn, true
		}
	}
	return nil, false
}
