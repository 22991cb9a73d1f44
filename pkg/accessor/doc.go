// Package accessor defines the closed taxonomy of accessor kinds the Sable
// front end uses to describe how a storage declaration (a property or
// subscript) is read and written.
//
// # Taxonomy
//
// The table is a fixed, ordered list of rows. Each row carries the kind
// identifier, the optional source keyword, and its single category:
//
//	Get                 get                  ObjC
//	Set                 set                  ObjC
//	MaterializeForSet   materializeForSet    Singleton  (suppressed)
//	WillSet             willSet              Observing
//	DidSet              didSet               Observing
//	Read                _read                Coroutine
//	Modify              _modify              Coroutine
//	Address             -                    Addressor  (marker)
//	  unsafeAddress, addressWithOwner,
//	  addressWithNativeOwner, addressWithPinnedNativeOwner
//	  unsafeMutableAddress, mutableAddressWithOwner,
//	  mutableAddressWithNativeOwner, mutableAddressWithPinnedNativeOwner
//	MutableAddress      -                    Addressor  (marker, terminator)
//
// The eight addressor variants are classified along two further axes:
// AddressorKind (Unsafe, Owning, NativeOwning, NativePinning) and
// Mutability. The Address and MutableAddress rows are abstract category
// markers with no keyword.
//
// # Expansion
//
// Consumers derive artifacts (enum tables, keyword maps, lowering tables)
// by expanding the taxonomy with a HandlerSet. A handler set covers only
// the categories the consumer cares about; unhandled categories inherit
// through fixed fallback chains ending in Singleton, and rows nothing
// resolves for are silently dropped. Addressor rows resolve separately,
// keyed by (AddressorKind, Mutability).
//
// Everything in this package is immutable after initialization and safe
// for concurrent use. Schema violations in the table itself (duplicate
// keywords, missing classification tags) panic at init.
package accessor
