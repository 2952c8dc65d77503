package domain

// TypeKind distinguishes the declaration forms rules care about.
type TypeKind string

const (
	TypeKindInterface TypeKind = "interface"
	TypeKindStruct    TypeKind = "struct"
	TypeKindAlias     TypeKind = "alias"
)

// TypeDecl is one named type declaration in a parsed file. Bases holds the
// declared base/embedded type references resolved to simple or dotted names
// ("Closer", "io.Closer"); generic subscripts are stripped down to the
// underlying reference. Aliased imports are not resolved further.
type TypeDecl struct {
	Name  string
	Line  int
	Kind  TypeKind
	Bases []string
}

// CallSite is one call expression in a parsed file. Receiver is empty for
// bare calls ("println(x)") and holds the qualifier for selector calls
// ("log" in "log.New(...)").
type CallSite struct {
	Line     int
	Receiver string
	Name     string
}

// ParsedFile is the analyzer's view of one source file: just the constructs
// the rule set walks, detached from any parser internals.
type ParsedFile struct {
	Path    string
	Package string
	Types   []TypeDecl
	Calls   []CallSite
}
