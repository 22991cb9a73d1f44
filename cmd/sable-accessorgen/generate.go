package main

import (
	"fmt"
	"strings"

	"github.com/sable-lang/sable-go/pkg/accessor"
	"gopkg.in/yaml.v3"
)

// constName returns the generated constant for a kind, e.g. AccessorGet.
func constName(k accessor.Kind) string {
	return "Accessor" + k.String()
}

// GenerateKinds produces the AccessorKind enum file. The enum is total:
// every taxonomy row appears, markers and suppressed kinds included, so the
// type is usable as an AST discriminant and by lowering passes.
func GenerateKinds(pkgName string) (string, error) {
	var b strings.Builder
	renderTemplate(&b, "header", headerData{Package: pkgName})

	var consts []kindConst
	add := func(e accessor.Entry) struct{} {
		consts = append(consts, kindConst{Name: constName(e.Kind), Value: int(e.Kind)})
		return struct{}{}
	}
	accessor.Expand(accessor.HandlerSet[struct{}]{
		Singleton:         add,
		Marker:            add,
		Addressor:         add,
		IncludeSuppressed: true,
	})

	renderTemplate(&b, "kinds", kindsData{Consts: consts, Last: constName(accessor.KindLast)})
	generateStringMethod(&b)
	return b.String(), nil
}

// generateStringMethod streams the String switch row by row; the expansion
// terminal hook closes the switch after the terminator entry.
func generateStringMethod(b *strings.Builder) {
	b.WriteString("// String returns the accessor kind name.\n")
	b.WriteString("func (k AccessorKind) String() string {\nswitch k {\n")
	emit := func(e accessor.Entry) struct{} {
		fmt.Fprintf(b, "case %s:\nreturn %q\n", constName(e.Kind), e.Kind.String())
		return struct{}{}
	}
	accessor.Expand(accessor.HandlerSet[struct{}]{
		Singleton:         emit,
		Marker:            emit,
		Addressor:         emit,
		IncludeSuppressed: true,
		Terminal: func() {
			b.WriteString("default:\nreturn \"UNKNOWN\"\n}\n}\n")
		},
	})
}

// GenerateKeywords produces the parser-facing keyword lookup table.
// Suppressed kinds are excluded unless artificial is set: the parser
// recognizes materializeForSet only when a build explicitly opts into
// artificial accessors.
func GenerateKeywords(pkgName string, artificial bool) (string, error) {
	var b strings.Builder
	renderTemplate(&b, "header", headerData{Package: pkgName})

	var rows []keywordRow
	tag := func(e accessor.Entry) struct{} {
		rows = append(rows, keywordRow{Keyword: e.Keyword, Const: constName(e.Kind)})
		return struct{}{}
	}
	accessor.Expand(accessor.HandlerSet[struct{}]{
		Singleton:         tag,
		Addressor:         tag,
		IncludeSuppressed: artificial,
	})

	renderTemplate(&b, "keywords", keywordsData{Rows: rows})
	return b.String(), nil
}

// GeneratePredicates produces the category predicate methods. Each
// predicate is derived from a dedicated category handler, so adding a row
// to the table regenerates the predicate without hand-editing.
func GeneratePredicates(pkgName string) (string, error) {
	var b strings.Builder
	renderTemplate(&b, "header", headerData{Package: pkgName})

	var observing, coroutine, objc, opaque, addressors, suppressed []string
	add := func(dst *[]string) func(accessor.Entry) struct{} {
		return func(e accessor.Entry) struct{} {
			*dst = append(*dst, constName(e.Kind))
			if e.Suppressed {
				suppressed = append(suppressed, constName(e.Kind))
			}
			return struct{}{}
		}
	}

	accessor.Expand(accessor.HandlerSet[struct{}]{
		Singleton:         add(new([]string)),
		Observing:         add(&observing),
		Coroutine:         add(&coroutine),
		ObjC:              add(&objc),
		Opaque:            add(&opaque),
		Marker:            add(&addressors),
		Addressor:         add(&addressors),
		IncludeSuppressed: true,
	})

	// Every ObjC kind is valid wherever an Opaque kind is expected.
	opaque = append(append([]string{}, objc...), opaque...)

	predicates := []predicateDef{
		{Name: "IsObserving", Doc: "reports whether the kind is a willSet/didSet observing hook", Cases: observing},
		{Name: "IsCoroutine", Doc: "reports whether the kind is a _read/_modify coroutine", Cases: coroutine},
		{Name: "IsObjC", Doc: "reports whether the kind has an ObjC entry point", Cases: objc},
		{Name: "IsOpaque", Doc: "reports whether the kind is callable through an opaque entry point", Cases: opaque},
		{Name: "IsAddressor", Doc: "reports whether the kind is addressor-flavored, markers included", Cases: addressors},
		{Name: "IsSuppressed", Doc: "reports whether the kind cannot be written in source", Cases: suppressed},
	}
	renderTemplate(&b, "predicates", predicatesData{Predicates: predicates})
	return b.String(), nil
}

// DeriveManifestYAML produces the human-readable taxonomy manifest.
func DeriveManifestYAML() (string, error) {
	data, err := yaml.Marshal(accessor.BuildManifest())
	if err != nil {
		return "", err
	}
	var b strings.Builder
	b.WriteString("# Accessor taxonomy manifest. Generated by sable-accessorgen; do not edit.\n")
	b.Write(data)
	return b.String(), nil
}

// DeriveSnapshot produces the CBOR snapshot used for drift detection.
func DeriveSnapshot() ([]byte, error) {
	return accessor.EncodeManifest(accessor.BuildManifest())
}
