package accessor

import "fmt"

// Entry is one row of the accessor taxonomy. Rows are immutable once
// defined; the table is fixed at build time and never mutated.
type Entry struct {
	// Kind is the unique identifier of the row.
	Kind Kind

	// Keyword is the source-level spelling, or "" for the two abstract
	// category markers (Address, MutableAddress).
	Keyword string

	// Category is the single classification axis of the row.
	Category Category

	// Addressor is the ownership convention. Only meaningful for
	// CategoryAddressor rows; AddressorNone on the two markers.
	Addressor AddressorKind

	// Mutability is only meaningful for CategoryAddressor rows.
	Mutability Mutability

	// Suppressed rows exist for internal lowering only and are excluded
	// from consumers that disallow artificial accessors.
	Suppressed bool
}

// IsMarker reports whether the entry is an abstract addressor category
// marker rather than a keyworded variant.
func (e Entry) IsMarker() bool {
	return e.Category == CategoryAddressor && e.Addressor == AddressorNone
}

// entries is the authoritative taxonomy in declaration order. The
// MutableAddress marker is last and serves as the terminator.
var entries = []Entry{
	{Kind: KindGet, Keyword: "get", Category: CategoryObjC},
	{Kind: KindSet, Keyword: "set", Category: CategoryObjC},
	{Kind: KindMaterializeForSet, Keyword: "materializeForSet", Category: CategorySingleton, Suppressed: true},
	{Kind: KindWillSet, Keyword: "willSet", Category: CategoryObserving},
	{Kind: KindDidSet, Keyword: "didSet", Category: CategoryObserving},
	{Kind: KindRead, Keyword: "_read", Category: CategoryCoroutine},
	{Kind: KindModify, Keyword: "_modify", Category: CategoryCoroutine},

	{Kind: KindAddress, Category: CategoryAddressor, Addressor: AddressorNone, Mutability: Immutable},
	{Kind: KindUnsafeAddress, Keyword: "unsafeAddress", Category: CategoryAddressor, Addressor: AddressorUnsafe, Mutability: Immutable},
	{Kind: KindOwningAddress, Keyword: "addressWithOwner", Category: CategoryAddressor, Addressor: AddressorOwning, Mutability: Immutable},
	{Kind: KindNativeOwningAddress, Keyword: "addressWithNativeOwner", Category: CategoryAddressor, Addressor: AddressorNativeOwning, Mutability: Immutable},
	{Kind: KindNativePinningAddress, Keyword: "addressWithPinnedNativeOwner", Category: CategoryAddressor, Addressor: AddressorNativePinning, Mutability: Immutable},

	{Kind: KindUnsafeMutableAddress, Keyword: "unsafeMutableAddress", Category: CategoryAddressor, Addressor: AddressorUnsafe, Mutability: Mutable},
	{Kind: KindOwningMutableAddress, Keyword: "mutableAddressWithOwner", Category: CategoryAddressor, Addressor: AddressorOwning, Mutability: Mutable},
	{Kind: KindNativeOwningMutableAddress, Keyword: "mutableAddressWithNativeOwner", Category: CategoryAddressor, Addressor: AddressorNativeOwning, Mutability: Mutable},
	{Kind: KindNativePinningMutableAddress, Keyword: "mutableAddressWithPinnedNativeOwner", Category: CategoryAddressor, Addressor: AddressorNativePinning, Mutability: Mutable},
	{Kind: KindMutableAddress, Category: CategoryAddressor, Addressor: AddressorNone, Mutability: Mutable},
}

var (
	byKind    [numKinds]Entry
	byKeyword = make(map[string]Entry)
)

func init() {
	if err := verifyTable(); err != nil {
		panic(fmt.Sprintf("accessor: invalid taxonomy table: %v", err))
	}
	for _, e := range entries {
		byKind[e.Kind] = e
		if e.Keyword != "" {
			byKeyword[e.Keyword] = e
		}
	}
}

// verifyTable checks the schema invariants. Violations are programming
// errors in the table itself and fail at package initialization.
func verifyTable() error {
	if len(entries) != numKinds {
		return fmt.Errorf("table has %d rows, want %d", len(entries), numKinds)
	}
	if entries[len(entries)-1].Kind != KindMutableAddress {
		return fmt.Errorf("terminator is %s, want MutableAddress", entries[len(entries)-1].Kind)
	}

	seenKeywords := make(map[string]Kind)
	for i, e := range entries {
		if e.Kind != Kind(i) {
			return fmt.Errorf("row %d declares kind %s out of order", i, e.Kind)
		}
		if e.Keyword != "" {
			if prev, dup := seenKeywords[e.Keyword]; dup {
				return fmt.Errorf("keyword %q used by both %s and %s", e.Keyword, prev, e.Kind)
			}
			seenKeywords[e.Keyword] = e.Kind
		}
		if e.Category == CategoryAddressor {
			if e.Addressor == AddressorNone && e.Keyword != "" {
				return fmt.Errorf("%s is a category marker but has keyword %q", e.Kind, e.Keyword)
			}
			if e.Addressor != AddressorNone && e.Keyword == "" {
				return fmt.Errorf("%s is an addressor variant without a keyword", e.Kind)
			}
		} else {
			if e.Addressor != AddressorNone {
				return fmt.Errorf("%s carries addressor kind %s outside CategoryAddressor", e.Kind, e.Addressor)
			}
			if e.Keyword == "" {
				return fmt.Errorf("%s has no keyword", e.Kind)
			}
		}
		if e.Suppressed && e.Kind != KindMaterializeForSet {
			return fmt.Errorf("%s is suppressed; only MaterializeForSet may be", e.Kind)
		}
	}
	if !entries[KindMaterializeForSet].Suppressed {
		return fmt.Errorf("MaterializeForSet must be suppressed")
	}
	return nil
}

// Entries returns the taxonomy rows in declaration order. The returned
// slice is a copy; callers may not affect the table.
func Entries() []Entry {
	out := make([]Entry, len(entries))
	copy(out, entries)
	return out
}

// EntryFor returns the row for the given kind. Unknown kinds return the
// zero Entry, which callers can detect via Entry.Kind != k on out-of-range
// input; all declared kinds are present.
func EntryFor(k Kind) Entry {
	if int(k) >= len(byKind) {
		return Entry{}
	}
	return byKind[k]
}

// LookupKeyword maps a source-level accessor keyword to its row. The match
// is exact. The second result is false if no row carries the keyword.
//
// Suppressed rows are returned too: the parser recognizes
// materializeForSet through this lookup and rejects it via
// Kind.IsSuppressed.
func LookupKeyword(keyword string) (Entry, bool) {
	e, ok := byKeyword[keyword]
	return e, ok
}

// Keywords returns every source-level keyword in declaration order,
// excluding suppressed rows unless artificial is true.
func Keywords(artificial bool) []string {
	var out []string
	for _, e := range entries {
		if e.Keyword == "" {
			continue
		}
		if e.Suppressed && !artificial {
			continue
		}
		out = append(out, e.Keyword)
	}
	return out
}
