package accessor

// Kind identifies one accessor kind in the taxonomy.
//
// The numeric values follow declaration order, so Kind is usable as a
// dense array index. KindMutableAddress is always last and doubles as the
// terminator for consumers that scan the table sequentially.
type Kind uint8

const (
	// KindGet is a plain getter.
	KindGet Kind = iota
	// KindSet is a plain setter.
	KindSet
	// KindMaterializeForSet is the internal writeback entry point used by
	// lowering passes. It cannot be written in source (see Suppressed).
	KindMaterializeForSet
	// KindWillSet is the pre-write observing hook.
	KindWillSet
	// KindDidSet is the post-write observing hook.
	KindDidSet
	// KindRead is the yield-once read coroutine.
	KindRead
	// KindModify is the yield-once modify coroutine.
	KindModify
	// KindAddress is the category marker for immutable addressors.
	// It has no keyword of its own; the four immutable variants do.
	KindAddress
	// KindUnsafeAddress returns a raw pointer with no ownership transfer.
	KindUnsafeAddress
	// KindOwningAddress returns a pointer plus an owner reference.
	KindOwningAddress
	// KindNativeOwningAddress returns a pointer plus a native owner reference.
	KindNativeOwningAddress
	// KindNativePinningAddress returns a pointer plus a pinning handle.
	KindNativePinningAddress
	// KindUnsafeMutableAddress is the mutable counterpart of KindUnsafeAddress.
	KindUnsafeMutableAddress
	// KindOwningMutableAddress is the mutable counterpart of KindOwningAddress.
	KindOwningMutableAddress
	// KindNativeOwningMutableAddress is the mutable counterpart of
	// KindNativeOwningAddress.
	KindNativeOwningMutableAddress
	// KindNativePinningMutableAddress is the mutable counterpart of
	// KindNativePinningAddress.
	KindNativePinningMutableAddress
	// KindMutableAddress is the category marker for mutable addressors and
	// the terminator of the taxonomy.
	KindMutableAddress

	numKinds = iota
)

// KindLast is the terminator entry, always last in declaration order.
const KindLast = KindMutableAddress

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindGet:
		return "Get"
	case KindSet:
		return "Set"
	case KindMaterializeForSet:
		return "MaterializeForSet"
	case KindWillSet:
		return "WillSet"
	case KindDidSet:
		return "DidSet"
	case KindRead:
		return "Read"
	case KindModify:
		return "Modify"
	case KindAddress:
		return "Address"
	case KindUnsafeAddress:
		return "UnsafeAddress"
	case KindOwningAddress:
		return "OwningAddress"
	case KindNativeOwningAddress:
		return "NativeOwningAddress"
	case KindNativePinningAddress:
		return "NativePinningAddress"
	case KindUnsafeMutableAddress:
		return "UnsafeMutableAddress"
	case KindOwningMutableAddress:
		return "OwningMutableAddress"
	case KindNativeOwningMutableAddress:
		return "NativeOwningMutableAddress"
	case KindNativePinningMutableAddress:
		return "NativePinningMutableAddress"
	case KindMutableAddress:
		return "MutableAddress"
	default:
		return "UNKNOWN"
	}
}

// Category classifies an accessor kind. Every kind belongs to exactly one
// category; the category determines which fallback chain the kind follows
// during expansion (see HandlerSet).
type Category uint8

const (
	// CategorySingleton is the base category with no parent.
	CategorySingleton Category = iota
	// CategoryObserving covers the willSet/didSet hooks. Falls back to Singleton.
	CategoryObserving
	// CategoryOpaque covers accessors callable through an opaque entry point.
	// Falls back to Singleton.
	CategoryOpaque
	// CategoryObjC covers accessors that also have an ObjC entry point.
	// Every ObjC kind is valid wherever an Opaque kind is expected, so the
	// chain is ObjC -> Opaque -> Singleton.
	CategoryObjC
	// CategoryCoroutine covers the _read/_modify coroutines. Falls back to
	// Singleton.
	CategoryCoroutine
	// CategoryAddressor covers pointer-producing accessors. Addressor kinds
	// never fall back to Singleton; variants resolve by their
	// (AddressorKind, Mutability) pair and the two markers by a dedicated
	// handler.
	CategoryAddressor
)

// String returns the category name.
func (c Category) String() string {
	switch c {
	case CategorySingleton:
		return "Singleton"
	case CategoryObserving:
		return "Observing"
	case CategoryOpaque:
		return "Opaque"
	case CategoryObjC:
		return "ObjC"
	case CategoryCoroutine:
		return "Coroutine"
	case CategoryAddressor:
		return "Addressor"
	default:
		return "UNKNOWN"
	}
}

// AddressorKind distinguishes the addressor variants by ownership convention.
type AddressorKind uint8

const (
	// AddressorNone marks the two category marker rows (Address and
	// MutableAddress), which carry no ownership convention of their own.
	AddressorNone AddressorKind = iota
	// AddressorUnsafe returns a raw pointer with no ownership.
	AddressorUnsafe
	// AddressorOwning returns a pointer plus an AnyObject owner.
	AddressorOwning
	// AddressorNativeOwning returns a pointer plus a native-object owner.
	AddressorNativeOwning
	// AddressorNativePinning returns a pointer plus a pinning handle.
	AddressorNativePinning
)

// String returns the addressor kind name.
func (a AddressorKind) String() string {
	switch a {
	case AddressorNone:
		return "None"
	case AddressorUnsafe:
		return "Unsafe"
	case AddressorOwning:
		return "Owning"
	case AddressorNativeOwning:
		return "NativeOwning"
	case AddressorNativePinning:
		return "NativePinning"
	default:
		return "UNKNOWN"
	}
}

// Mutability distinguishes read-only addressors from mutating ones.
type Mutability uint8

const (
	// Immutable addressors yield a read-only pointer.
	Immutable Mutability = iota
	// Mutable addressors yield a writable pointer.
	Mutable
)

// String returns the mutability name.
func (m Mutability) String() string {
	switch m {
	case Immutable:
		return "Immutable"
	case Mutable:
		return "Mutable"
	default:
		return "UNKNOWN"
	}
}

// IsObserving reports whether the kind is a willSet/didSet observing hook.
func (k Kind) IsObserving() bool {
	return EntryFor(k).Category == CategoryObserving
}

// IsCoroutine reports whether the kind is a _read/_modify coroutine.
func (k Kind) IsCoroutine() bool {
	return EntryFor(k).Category == CategoryCoroutine
}

// IsAddressor reports whether the kind is addressor-flavored, including the
// two category markers.
func (k Kind) IsAddressor() bool {
	return EntryFor(k).Category == CategoryAddressor
}

// IsObjC reports whether the kind has an ObjC entry point.
func (k Kind) IsObjC() bool {
	return EntryFor(k).Category == CategoryObjC
}

// IsOpaque reports whether the kind is callable through an opaque entry
// point. True for ObjC kinds as well: every ObjC kind is representable
// wherever an Opaque kind is expected.
func (k Kind) IsOpaque() bool {
	c := EntryFor(k).Category
	return c == CategoryOpaque || c == CategoryObjC
}

// IsMarker reports whether the kind is one of the two abstract addressor
// category markers (Address, MutableAddress), which carry no keyword.
func (k Kind) IsMarker() bool {
	e := EntryFor(k)
	return e.Category == CategoryAddressor && e.Addressor == AddressorNone
}

// IsSuppressed reports whether the kind exists only for internal lowering
// and must be rejected when written in source. True only for
// KindMaterializeForSet.
func (k Kind) IsSuppressed() bool {
	return EntryFor(k).Suppressed
}
