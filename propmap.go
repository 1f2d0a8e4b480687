// propmap.go — namespace-aware ordered export table
//
// A propertyMap buckets values by local name; each bucket holds (namespace,
// value) entries. Multiname lookup scans the bucket for the first entry
// whose namespace is in the multiname's candidate set and returns the
// matched namespace alongside the value, so callers can reconstruct the
// fully-qualified name that actually resolved. Insertion order of QNames is
// preserved for enumeration; it carries no resolution semantics.
package avm2

type nsEntry[V any] struct {
	ns    Namespace
	value V
}

type propertyMap[V any] struct {
	buckets map[string][]nsEntry[V]
	order   []QName
}

func (p *propertyMap[V]) containsKey(name QName) bool {
	for _, e := range p.buckets[name.Local] {
		if e.ns == name.NS {
			return true
		}
	}
	return false
}

func (p *propertyMap[V]) get(name QName) (V, bool) {
	for _, e := range p.buckets[name.Local] {
		if e.ns == name.NS {
			return e.value, true
		}
	}
	var zero V
	return zero, false
}

// getWithNSForMultiname probes the local-name bucket and returns the first
// entry whose namespace is a member of m's candidate set, together with the
// namespace that matched.
func (p *propertyMap[V]) getWithNSForMultiname(m *Multiname) (Namespace, V, bool) {
	for _, e := range p.buckets[m.Local] {
		if m.ContainsNamespace(e.ns) {
			return e.ns, e.value, true
		}
	}
	var zero V
	return Namespace{}, zero, false
}

func (p *propertyMap[V]) getForMultiname(m *Multiname) (V, bool) {
	_, v, ok := p.getWithNSForMultiname(m)
	return v, ok
}

// insert binds name to value. An exact re-insert replaces the value in
// place without disturbing enumeration order; domains never actually do
// that, since export is first-wins.
func (p *propertyMap[V]) insert(name QName, value V) {
	if p.buckets == nil {
		p.buckets = make(map[string][]nsEntry[V])
	}
	bucket := p.buckets[name.Local]
	for i, e := range bucket {
		if e.ns == name.NS {
			bucket[i].value = value
			return
		}
	}
	p.buckets[name.Local] = append(bucket, nsEntry[V]{ns: name.NS, value: value})
	p.order = append(p.order, name)
}

// qnames returns a snapshot of the keys in insertion order.
func (p *propertyMap[V]) qnames() []QName {
	out := make([]QName, len(p.order))
	copy(out, p.order)
	return out
}
