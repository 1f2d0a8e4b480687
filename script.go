// script.go — script units and their globals objects
//
// A Script is an executable unit supplied by the loader. Running it (not
// this package's job) populates its Globals object with the top-level
// definitions it declares. Export tables store *Script references, not the
// scripts themselves, so one script can be visible from several domains.
package avm2

// Value is whatever the host VM traffics in at this subsystem's boundary.
// Globals hold Values; defined-value lookups return them. Classes exported
// through a domain appear on globals as *Class.
type Value = any

// Globals is the ordered property bag a script's toplevel definitions land
// in. Order is definition order and only matters for enumeration.
type Globals struct {
	entries map[QName]Value
	order   []QName
}

func NewGlobals() *Globals {
	return &Globals{entries: make(map[QName]Value)}
}

func (g *Globals) GetProperty(name QName) (Value, bool) {
	v, ok := g.entries[name]
	return v, ok
}

func (g *Globals) SetProperty(name QName, v Value) {
	if _, ok := g.entries[name]; !ok {
		g.order = append(g.order, name)
	}
	g.entries[name] = v
}

// Names returns the defined property names in definition order.
func (g *Globals) Names() []QName {
	out := make([]QName, len(g.order))
	copy(out, g.order)
	return out
}

// Script pairs a globals object with the domain that owns the script. The
// domain back-reference mirrors how loaders associate a content unit with
// the application domain it was loaded into.
type Script struct {
	globals *Globals
	domain  *Domain
}

// NewScript creates a script bound to domain with an empty globals object.
func NewScript(domain *Domain) *Script {
	return &Script{globals: NewGlobals(), domain: domain}
}

func (s *Script) Globals() *Globals { return s.globals }
func (s *Script) Domain() *Domain   { return s.domain }

// DefineValue records a toplevel definition on the script's globals. The
// loader calls this while "running" the script; tests use it directly.
func (s *Script) DefineValue(name QName, v Value) {
	s.globals.SetProperty(name, v)
}
