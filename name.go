// name.go — namespaces, qualified names, and multinames
//
// Three layers of naming, from exact to fuzzy:
//
//   - Namespace: a (kind, URI) pair. Equality is exact; two package
//     namespaces with the same URI are the same namespace.
//   - QName: one namespace + one local name. Identifies exactly one
//     definition and is usable as a map key.
//   - Multiname: a name *reference* as it appears in bytecode: a local name
//     plus a set of candidate namespaces (the open `use namespace` set at the
//     reference site), and an optional type parameter for generic
//     applications such as `Vector.<int>`. A Multiname with an empty local
//     name cannot be resolved; passing one to a resolver is caller misuse.
//
// This file also hosts the textual `Vector.<T>` desugaring used by
// reflection-style lookups (getQualifiedClassName, getDefinition). It is a
// pure text transform, deliberately independent of the chain-walking
// resolver so it can be tested in isolation.
package avm2

import "strings"

// NamespaceKind distinguishes the AS3 namespace flavors. Resolution only
// cares about exact equality, but keeping the kind around lets export tables
// distinguish e.g. a package namespace from a private one with the same URI.
type NamespaceKind uint8

const (
	NSPackage NamespaceKind = iota
	NSPackageInternal
	NSPrivate
	NSProtected
	NSStaticProtected
	NSExplicit
	NSNamespace
)

// Namespace is a value type; equality and map-key behavior are exact.
type Namespace struct {
	Kind NamespaceKind
	URI  string
}

// PackageNamespace returns the package namespace for uri ("" is the
// top-level public package).
func PackageNamespace(uri string) Namespace {
	return Namespace{Kind: NSPackage, URI: uri}
}

// PublicNamespace is the unnamed public package namespace.
func PublicNamespace() Namespace { return PackageNamespace("") }

// QName is a fully-qualified name: one namespace, one local name.
type QName struct {
	NS    Namespace
	Local string
}

func NewQName(ns Namespace, local string) QName {
	return QName{NS: ns, Local: local}
}

// ParseQName parses qualified-name text of the form "uri::Local" or plain
// "Local" (public package). The last "::" wins, so "a::b::C" is namespace
// "a::b" with local name "C". Malformed generic syntax that survives
// desugaring simply produces a name that resolves to nothing.
func ParseQName(text string) QName {
	if i := strings.LastIndex(text, "::"); i >= 0 {
		return QName{NS: PackageNamespace(text[:i]), Local: text[i+2:]}
	}
	return QName{NS: PublicNamespace(), Local: text}
}

func (q QName) String() string {
	if q.NS.URI == "" {
		return q.Local
	}
	return q.NS.URI + "::" + q.Local
}

// Multiname converts an exact name into a reference with a one-element
// namespace set, for feeding QNames through the multiname resolvers.
func (q QName) Multiname() *Multiname {
	return &Multiname{NsSet: []Namespace{q.NS}, Local: q.Local}
}

// Multiname is a possibly-ambiguous name reference. NsSet holds the
// candidate namespaces; Local is the local name ("" means none). Param, when
// non-nil, encodes a generic application; the any-name (see AnyName) as a
// param means the wildcard `Vector.<*>`.
type Multiname struct {
	NsSet []Namespace
	Local string
	Param *Multiname
}

// AnyName returns the wildcard name `*`: no local name, no namespace set.
func AnyName() *Multiname { return &Multiname{} }

// IsAny reports whether m is the wildcard `*`.
func (m *Multiname) IsAny() bool {
	return m.Local == "" && len(m.NsSet) == 0 && m.Param == nil
}

// HasLocalName reports whether m carries a local name at all. Resolving a
// multiname without one is a programming error, not a runtime condition.
func (m *Multiname) HasLocalName() bool { return m.Local != "" }

// ContainsNamespace reports whether ns is in m's candidate set.
func (m *Multiname) ContainsNamespace(ns Namespace) bool {
	for _, cand := range m.NsSet {
		if cand == ns {
			return true
		}
	}
	return false
}

func (m *Multiname) String() string {
	if m.Local == "" {
		return "*"
	}
	return m.Local
}

// vectorQualifiedBase is the canonical qualified name of the unparameterized
// Vector class.
const vectorQualifiedBase = "__AS3__.vec::Vector"

// desugarVectorName rewrites textual generic syntax ahead of qualified-name
// parsing. `Vector.<Inner>` and `__AS3__.vec::Vector.<Inner>` become the
// canonical Vector base name plus the inner text between the first ".<" and
// the trailing ">". Exactly one level of brackets is supported; anything
// else passes through unchanged and fails (or not) at the subsequent
// qualified-name lookup, matching the permissive upstream behavior.
func desugarVectorName(text string) (base, param string, ok bool) {
	if (strings.HasPrefix(text, vectorQualifiedBase+".<") || strings.HasPrefix(text, "Vector.<")) &&
		strings.HasSuffix(text, ">") {
		start := strings.Index(text, ".<")
		return vectorQualifiedBase, text[start+2 : len(text)-1], true
	}
	return text, "", false
}
