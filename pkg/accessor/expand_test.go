package accessor_test

import (
	"testing"

	"github.com/sable-lang/sable-go/pkg/accessor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpand_SingletonFallback(t *testing.T) {
	// A handler set covering only Singleton must still resolve every
	// non-addressor, non-suppressed row through category inheritance.
	tags := accessor.ExpandByKind(accessor.HandlerSet[string]{
		Singleton: func(e accessor.Entry) string { return "base:" + e.Keyword },
	})

	want := map[accessor.Kind]string{
		accessor.KindGet:     "base:get",
		accessor.KindSet:     "base:set",
		accessor.KindWillSet: "base:willSet",
		accessor.KindDidSet:  "base:didSet",
		accessor.KindRead:    "base:_read",
		accessor.KindModify:  "base:_modify",
	}
	assert.Equal(t, want, tags)
}

func TestExpand_ObjCChain(t *testing.T) {
	// ObjC falls back to Opaque before Singleton, so with both supplied
	// the Opaque handler must win for Get/Set.
	tags := accessor.ExpandByKind(accessor.HandlerSet[string]{
		Singleton: func(e accessor.Entry) string { return "singleton" },
		Opaque:    func(e accessor.Entry) string { return "opaque" },
	})

	assert.Equal(t, "opaque", tags[accessor.KindGet])
	assert.Equal(t, "opaque", tags[accessor.KindSet])
	assert.Equal(t, "singleton", tags[accessor.KindWillSet])
	assert.Equal(t, "singleton", tags[accessor.KindRead])

	// A direct ObjC handler is more specific than Opaque.
	tags = accessor.ExpandByKind(accessor.HandlerSet[string]{
		Singleton: func(e accessor.Entry) string { return "singleton" },
		Opaque:    func(e accessor.Entry) string { return "opaque" },
		ObjC:      func(e accessor.Entry) string { return "objc" },
	})
	assert.Equal(t, "objc", tags[accessor.KindGet])
	assert.Equal(t, "objc", tags[accessor.KindSet])
}

func TestExpand_AddressorAxisIndependence(t *testing.T) {
	// A handler keyed on (Owning, Immutable) matches only addressWithOwner.
	sel := accessor.AddressorSelector{
		Addressor:  accessor.AddressorOwning,
		Mutability: accessor.Immutable,
	}
	resolved := accessor.Expand(accessor.HandlerSet[string]{
		AddressorFor: map[accessor.AddressorSelector]func(accessor.Entry) string{
			sel: func(e accessor.Entry) string { return e.Keyword },
		},
	})

	require.Len(t, resolved, 1)
	assert.Equal(t, accessor.KindOwningAddress, resolved[0].Entry.Kind)
	assert.Equal(t, "addressWithOwner", resolved[0].Artifact)
}

func TestExpand_AddressorVariantFallback(t *testing.T) {
	// Variants not matched by AddressorFor fall back to the general
	// Addressor handler; the specific handler still wins for its pair.
	unsafeMutable := accessor.AddressorSelector{
		Addressor:  accessor.AddressorUnsafe,
		Mutability: accessor.Mutable,
	}
	tags := accessor.ExpandByKind(accessor.HandlerSet[string]{
		Addressor: func(e accessor.Entry) string { return "general" },
		AddressorFor: map[accessor.AddressorSelector]func(accessor.Entry) string{
			unsafeMutable: func(e accessor.Entry) string { return "specific" },
		},
	})

	assert.Len(t, tags, 8, "markers must not reach the Addressor handler")
	assert.Equal(t, "specific", tags[accessor.KindUnsafeMutableAddress])
	assert.Equal(t, "general", tags[accessor.KindUnsafeAddress])
	assert.Equal(t, "general", tags[accessor.KindNativePinningMutableAddress])
	assert.NotContains(t, tags, accessor.KindAddress)
	assert.NotContains(t, tags, accessor.KindMutableAddress)
}

func TestExpand_AddressorsNeverReachSingleton(t *testing.T) {
	resolved := accessor.Expand(accessor.HandlerSet[string]{
		Singleton: func(e accessor.Entry) string { return "base" },
	})
	for _, r := range resolved {
		assert.NotEqual(t, accessor.CategoryAddressor, r.Entry.Category,
			"%s resolved through Singleton", r.Entry.Kind)
	}
}

func TestExpand_SuppressionPreFilter(t *testing.T) {
	handler := func(e accessor.Entry) accessor.Kind { return e.Kind }

	tags := accessor.ExpandByKind(accessor.HandlerSet[accessor.Kind]{Singleton: handler})
	assert.NotContains(t, tags, accessor.KindMaterializeForSet)

	tags = accessor.ExpandByKind(accessor.HandlerSet[accessor.Kind]{
		Singleton:         handler,
		IncludeSuppressed: true,
	})
	assert.Contains(t, tags, accessor.KindMaterializeForSet)
}

func TestExpand_TerminalFiresOnceAfterLastRow(t *testing.T) {
	var order []string
	fired := 0

	accessor.Expand(accessor.HandlerSet[struct{}]{
		Singleton: func(e accessor.Entry) struct{} {
			order = append(order, e.Kind.String())
			return struct{}{}
		},
		Marker: func(e accessor.Entry) struct{} {
			order = append(order, e.Kind.String())
			return struct{}{}
		},
		Addressor: func(e accessor.Entry) struct{} {
			order = append(order, e.Kind.String())
			return struct{}{}
		},
		Terminal: func() {
			fired++
			order = append(order, "terminal")
		},
	})

	require.Equal(t, 1, fired)
	require.GreaterOrEqual(t, len(order), 2)
	assert.Equal(t, "terminal", order[len(order)-1])
	assert.Equal(t, "MutableAddress", order[len(order)-2],
		"terminal must fire immediately after the terminator row")
}

func TestExpand_TerminalFiresWithNoHandlers(t *testing.T) {
	fired := 0
	resolved := accessor.Expand(accessor.HandlerSet[struct{}]{
		Terminal: func() { fired++ },
	})
	assert.Empty(t, resolved)
	assert.Equal(t, 1, fired)
}

func TestExpand_FullScenario(t *testing.T) {
	// Handler set {Singleton, Addressor}: six keyworded rows resolve
	// through Singleton fallback, all eight addressor variants through the
	// general Addressor handler, and Address, MutableAddress and
	// MaterializeForSet drop.
	type tag struct {
		keyword    string
		addressor  accessor.AddressorKind
		mutability accessor.Mutability
	}

	resolved := accessor.Expand(accessor.HandlerSet[tag]{
		Singleton: func(e accessor.Entry) tag {
			return tag{keyword: e.Keyword}
		},
		Addressor: func(e accessor.Entry) tag {
			return tag{keyword: e.Keyword, addressor: e.Addressor, mutability: e.Mutability}
		},
	})

	byKind := make(map[accessor.Kind]tag, len(resolved))
	for _, r := range resolved {
		byKind[r.Entry.Kind] = r.Artifact
	}

	want := map[accessor.Kind]tag{
		accessor.KindGet:     {keyword: "get"},
		accessor.KindSet:     {keyword: "set"},
		accessor.KindWillSet: {keyword: "willSet"},
		accessor.KindDidSet:  {keyword: "didSet"},
		accessor.KindRead:    {keyword: "_read"},
		accessor.KindModify:  {keyword: "_modify"},

		accessor.KindUnsafeAddress:       {"unsafeAddress", accessor.AddressorUnsafe, accessor.Immutable},
		accessor.KindOwningAddress:       {"addressWithOwner", accessor.AddressorOwning, accessor.Immutable},
		accessor.KindNativeOwningAddress: {"addressWithNativeOwner", accessor.AddressorNativeOwning, accessor.Immutable},
		accessor.KindNativePinningAddress: {
			"addressWithPinnedNativeOwner", accessor.AddressorNativePinning, accessor.Immutable,
		},
		accessor.KindUnsafeMutableAddress: {"unsafeMutableAddress", accessor.AddressorUnsafe, accessor.Mutable},
		accessor.KindOwningMutableAddress: {"mutableAddressWithOwner", accessor.AddressorOwning, accessor.Mutable},
		accessor.KindNativeOwningMutableAddress: {
			"mutableAddressWithNativeOwner", accessor.AddressorNativeOwning, accessor.Mutable,
		},
		accessor.KindNativePinningMutableAddress: {
			"mutableAddressWithPinnedNativeOwner", accessor.AddressorNativePinning, accessor.Mutable,
		},
	}
	assert.Equal(t, want, byKind)
}

func TestExpandByKeyword_SkipsMarkers(t *testing.T) {
	tag := func(e accessor.Entry) accessor.Kind { return e.Kind }
	byKeyword := accessor.ExpandByKeyword(accessor.HandlerSet[accessor.Kind]{
		Singleton: tag,
		Marker:    tag,
		Addressor: tag,
	})

	assert.Len(t, byKeyword, 14)
	assert.Equal(t, accessor.KindGet, byKeyword["get"])
	assert.Equal(t, accessor.KindUnsafeMutableAddress, byKeyword["unsafeMutableAddress"])
	assert.NotContains(t, byKeyword, "")
	assert.NotContains(t, byKeyword, "materializeForSet")
}

func TestExpand_DeclarationOrder(t *testing.T) {
	tag := func(e accessor.Entry) accessor.Kind { return e.Kind }
	resolved := accessor.Expand(accessor.HandlerSet[accessor.Kind]{
		Singleton:         tag,
		Marker:            tag,
		Addressor:         tag,
		IncludeSuppressed: true,
	})

	require.Len(t, resolved, 17)
	entries := accessor.Entries()
	for i, r := range resolved {
		assert.Equal(t, entries[i].Kind, r.Entry.Kind, "row %d out of order", i)
	}
}
