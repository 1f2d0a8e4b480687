// class.go — class descriptors and on-demand generic specialization
//
// A Class is a named type descriptor. Domains only ever store the
// *unspecialized* base class; specializations (`Vector.<int>`) live in an
// interior cache on the generic base itself, keyed by parameter-class
// identity, so repeated application of the same pair yields the identical
// *Class and the domain stays parameter-free.
package avm2

// Class identity is pointer identity; two handles are the same class iff
// they point at the same record.
type Class struct {
	name    QName
	generic bool

	// Set on specializations only.
	base  *Class
	param *Class

	// Specialization cache, lazily allocated on the generic base.
	applications map[*Class]*Class
}

// NewClass creates a plain (non-generic) class descriptor.
func NewClass(name QName) *Class {
	return &Class{name: name}
}

// NewGenericClass creates a class that accepts one type parameter, such as
// the unparameterized Vector base class.
func NewGenericClass(name QName) *Class {
	return &Class{name: name, generic: true}
}

func (c *Class) Name() QName { return c.name }

// IsGeneric reports whether c accepts a type parameter. Specializations are
// not themselves generic.
func (c *Class) IsGeneric() bool { return c.generic }

// Base returns the generic base class c specializes, or nil if c is not a
// specialization.
func (c *Class) Base() *Class { return c.base }

// TypeParam returns the concrete type argument of a specialization, or nil.
func (c *Class) TypeParam() *Class { return c.param }

// ApplyType specializes c with the given parameter class. A nil param is
// the wildcard any-type and returns c unchanged. Applying the same param
// twice returns the same *Class: the specialization is memoized on c.
func (c *Class) ApplyType(param *Class) *Class {
	if param == nil {
		return c
	}
	if spec, ok := c.applications[param]; ok {
		return spec
	}
	spec := &Class{
		name:  QName{NS: c.name.NS, Local: c.name.Local + ".<" + param.name.String() + ">"},
		base:  c,
		param: param,
	}
	if c.applications == nil {
		c.applications = make(map[*Class]*Class)
	}
	c.applications[param] = spec
	return spec
}
