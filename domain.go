// domain.go — application domains and the name-resolution chain
//
// OVERVIEW
// --------
// A Domain is a scope for definitions exported by loaded content. Each
// domain owns two export tables (scripts by name, classes by name), an
// optional parent domain, and its domain memory. Domains form a chain
// (practically: playerglobals -> stage -> per-movie), acyclic by
// construction because the parent is only ever set when a domain is built.
//
// Resolution semantics:
//
//   - Lookups probe the local export tables with namespace-set matching and
//     fall back to the parent chain. The nearest definition wins; absence
//     everywhere is a non-error "not found".
//   - Exports are first-definition-wins: exporting a name already defined in
//     this domain *or any ancestor* is a silent no-op. Later exporters are
//     ignored, never overwritten and never errored.
//   - Generic applications (`Vector.<T>`) resolve the base class, then the
//     parameter class through the same chain, then specialize via
//     Class.ApplyType. An unresolvable parameter makes the whole lookup
//     "not found".
//
// A *Domain is a shared handle: many scripts and child domains may hold the
// same pointer, identity is pointer identity, and the garbage collector
// reclaims a domain when nothing reachable refers to it.
//
// Memory: MovieDomain eagerly allocates the default 1024-byte buffer.
// UninitializedDomain exists only for the bootstrap window in which the
// globals domain must be created before the byte-buffer machinery itself;
// such a domain must have InitDefaultDomainMemory called on it before user
// code runs. Memory() panics if that discipline was violated.
package avm2

import "fmt"

// Domain state is interior-mutable through the shared *Domain handle.
// Mutation is additive only: exports insert, memory writes store. The host
// VM's single execution cursor serializes all access; there is no locking
// here.
type Domain struct {
	// Exported scripts, keyed by the definitions they provide.
	defs propertyMap[*Script]

	// Exported (unspecialized) classes. Used for early interface
	// resolution and for generic instantiation.
	classes propertyMap[*Class]

	// Parent domain; nil only on the root. Never reassigned.
	parent *Domain

	// Domain memory; nil only during root bootstrap.
	memory *ByteArray
}

// UninitializedDomain creates a domain with no domain memory. This exists
// exclusively for the globals and stage domains, which are created before
// the ByteArray machinery is available. Callers must initialize memory
// later, before any user code runs.
func UninitializedDomain(parent *Domain) *Domain {
	return &Domain{parent: parent}
}

// MovieDomain creates a fully-initialized domain under parent, with default
// domain memory already in place. This is the standard constructor once
// bootstrap is over; it must not be called before the globals domain is
// fully allocated.
func MovieDomain(parent *Domain) *Domain {
	d := &Domain{parent: parent}
	d.InitDefaultDomainMemory()
	return d
}

// Parent returns the parent domain, or nil on the root.
func (d *Domain) Parent() *Domain { return d.parent }

// HasDefinition reports whether name has been exported in this domain or
// any ancestor.
func (d *Domain) HasDefinition(name QName) bool {
	if d.defs.containsKey(name) {
		return true
	}
	if d.parent != nil {
		return d.parent.HasDefinition(name)
	}
	return false
}

// HasClass reports whether a class named name has been exported in this
// domain or any ancestor.
func (d *Domain) HasClass(name QName) bool {
	if d.classes.containsKey(name) {
		return true
	}
	if d.parent != nil {
		return d.parent.HasClass(name)
	}
	return false
}

// GetDefiningScript resolves a multiname to the script that provided it,
// along with the fully-qualified name that matched. Absence anywhere on the
// chain returns ok=false; it is not an error.
func (d *Domain) GetDefiningScript(m *Multiname) (QName, *Script, bool) {
	if m.HasLocalName() {
		if ns, script, ok := d.defs.getWithNSForMultiname(m); ok {
			return QName{NS: ns, Local: m.Local}, script, true
		}
	}
	if d.parent != nil {
		return d.parent.GetDefiningScript(m)
	}
	return QName{}, nil, false
}

// FindDefiningScript is the throwing variant of GetDefiningScript: a failed
// lookup yields a ReferenceError (#1065) for the interpreter to surface,
// and a multiname with no local name yields ErrUninitiatedName, which is
// caller misuse rather than a script-visible condition.
func (d *Domain) FindDefiningScript(m *Multiname) (QName, *Script, error) {
	if name, script, ok := d.GetDefiningScript(m); ok {
		return name, script, nil
	}
	if !m.HasLocalName() {
		return QName{}, nil, ErrUninitiatedName
	}
	return QName{}, nil, referenceError(m.Local)
}

func (d *Domain) getClassInner(m *Multiname) (*Class, bool) {
	if class, ok := d.classes.getForMultiname(m); ok {
		return class, true
	}
	if d.parent != nil {
		return d.parent.getClassInner(m)
	}
	return nil, false
}

// GetClass resolves a multiname to a class. When the multiname carries a
// type parameter other than the any-name, the parameter is resolved through
// the same chain and the base class specializes itself with it; a parameter
// that resolves to nothing makes the whole lookup miss.
func (d *Domain) GetClass(m *Multiname) (*Class, bool) {
	class, ok := d.getClassInner(m)
	if !ok {
		return nil, false
	}
	if param := m.Param; param != nil && !param.IsAny() {
		resolved, ok := d.GetClass(param)
		if !ok {
			return nil, false
		}
		return class.ApplyType(resolved), true
	}
	return class, true
}

// GetDefinedValue reads the value name denotes off the globals of its
// defining script.
func (d *Domain) GetDefinedValue(name QName) (Value, error) {
	qname, script, err := d.FindDefiningScript(name.Multiname())
	if err != nil {
		return nil, err
	}
	v, ok := script.Globals().GetProperty(qname)
	if !ok {
		return nil, referenceError(qname.Local)
	}
	return v, nil
}

// GetDefinedValueHandlingVector is GetDefinedValue over qualified-name
// text, with the `Vector.<SomeType>` special case used by
// getQualifiedClassName, ApplicationDomain.getDefinition and hasDefinition:
// the text is desugared into a lookup of the Vector base, a lookup of the
// parameter, and an ApplyType of the two.
func (d *Domain) GetDefinedValueHandlingVector(text string) (Value, error) {
	base, paramText, desugared := desugarVectorName(text)

	res, err := d.GetDefinedValue(ParseQName(base))
	if !desugared {
		return res, err
	}

	paramVal, perr := d.GetDefinedValue(ParseQName(paramText))
	if perr != nil {
		return nil, perr
	}
	if err != nil {
		return nil, err
	}
	baseClass, ok := res.(*Class)
	if !ok {
		return nil, fmt.Errorf("vector type %v is not a class", res)
	}
	paramClass, ok := paramVal.(*Class)
	if !ok {
		return nil, fmt.Errorf("vector parameter %v is not a class", paramVal)
	}
	return baseClass.ApplyType(paramClass), nil
}

// DefinedNames returns this domain's locally exported definition names in
// insertion order. Ancestors are not merged; reflection callers walk the
// chain themselves if they want the full picture.
func (d *Domain) DefinedNames() []QName {
	return d.defs.qnames()
}

// ExportDefinition publishes a definition from script under name. If the
// name is already defined in this domain or any ancestor, this does
// nothing: the first exporter wins. Only the local table is ever mutated.
func (d *Domain) ExportDefinition(name QName, script *Script) {
	if d.HasDefinition(name) {
		return
	}
	d.defs.insert(name, script)
}

// ExportClass publishes class under its own name, with the same first-wins
// rule as ExportDefinition.
func (d *Domain) ExportClass(class *Class) {
	if d.HasClass(class.Name()) {
		return
	}
	d.classes.insert(class.Name(), class)
}

// Memory returns the domain's memory buffer. A fully-initialized domain
// always has one; hitting the panic means a constructor skipped
// InitDefaultDomainMemory during bootstrap.
func (d *Domain) Memory() *ByteArray {
	if d.memory == nil {
		panic("Domain must have valid memory at all times")
	}
	return d.memory
}

// SetMemory replaces the domain's memory buffer (ApplicationDomain
// .domainMemory assignment).
func (d *Domain) SetMemory(m *ByteArray) {
	d.memory = m
}

// InitDefaultDomainMemory allocates the default 1024-byte buffer if the
// domain has none yet. It never replaces existing memory, so it is safe to
// call on already-initialized domains; only bootstrap domains actually need
// it.
func (d *Domain) InitDefaultDomainMemory() {
	if d.memory != nil {
		return
	}
	m := NewByteArray()
	m.SetLength(DefaultDomainMemoryLength)
	d.memory = m
}
