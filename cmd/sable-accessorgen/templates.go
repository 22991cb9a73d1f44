package main

import (
	"fmt"
	"strings"
	"text/template"
)

// funcMap provides helper functions available to all templates.
var funcMap = template.FuncMap{
	"quote": func(s string) string { return fmt.Sprintf("%q", s) },
	"join":  func(cases []string) string { return strings.Join(cases, ", ") },
}

// templates holds all parsed code generation templates.
var templates = template.Must(template.New("").Funcs(funcMap).Parse(
	headerTmpl +
		kindsTmpl +
		keywordsTmpl +
		predicatesTmpl,
))

// renderTemplate executes a named template into the builder.
func renderTemplate(b *strings.Builder, name string, data any) {
	if err := templates.ExecuteTemplate(b, name, data); err != nil {
		panic(fmt.Sprintf("template %s: %v", name, err))
	}
}

// --- Template data types ---

// headerData holds data for the generated file header.
type headerData struct {
	Package string
}

// kindConst is one generated AccessorKind constant.
type kindConst struct {
	Name  string
	Value int
}

// kindsData holds data for the kinds template.
type kindsData struct {
	Consts []kindConst
	Last   string
}

// keywordRow is one keyword table row.
type keywordRow struct {
	Keyword string
	Const   string
}

// keywordsData holds data for the keywords template.
type keywordsData struct {
	Rows []keywordRow
}

// predicateDef is one generated category predicate.
type predicateDef struct {
	Name  string
	Doc   string
	Cases []string
}

// predicatesData holds data for the predicates template.
type predicatesData struct {
	Predicates []predicateDef
}

// --- Template definitions ---

const headerTmpl = `{{define "header"}}// Code generated by sable-accessorgen. DO NOT EDIT.

package {{.Package}}

{{end}}`

const kindsTmpl = `{{define "kinds"}}// AccessorKind identifies how a storage declaration is read or written.
// Values follow taxonomy declaration order; {{.Last}} is always last.
type AccessorKind uint8

const (
{{- range .Consts}}
{{.Name}} AccessorKind = {{.Value}}
{{- end}}
)

// AccessorLast is the terminator kind, last in declaration order.
const AccessorLast = {{.Last}}

// NumAccessorKinds is the number of accessor kinds.
const NumAccessorKinds = {{len .Consts}}

{{end}}`

const keywordsTmpl = `{{define "keywords"}}// accessorKeywords maps source-level spellings to accessor kinds.
var accessorKeywords = map[string]AccessorKind{
{{- range .Rows}}
{{quote .Keyword}}: {{.Const}},
{{- end}}
}

// LookupAccessorKeyword maps a written accessor keyword to its kind.
// The match is exact; the second result is false for unknown keywords.
func LookupAccessorKeyword(keyword string) (AccessorKind, bool) {
	k, ok := accessorKeywords[keyword]
	return k, ok
}

{{end}}`

const predicatesTmpl = `{{define "predicates"}}
{{- range .Predicates}}
// {{.Name}} {{.Doc}}.
func (k AccessorKind) {{.Name}}() bool {
switch k {
{{- if .Cases}}
case {{join .Cases}}:
return true
{{- end}}
default:
return false
}
}

{{end -}}
{{end}}`
