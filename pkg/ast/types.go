// Package ast defines the data model for parsed Java declarations.
// Declarations are built once per generator invocation and never mutated;
// the resolver and emitter only derive lookup structures from them.
package ast

import "strings"

// Name is a qualified Java name: an ordered, non-empty sequence of
// identifier segments (e.g. a.b.Foo). Equality and map keys go through the
// canonical dotted form returned by String.
type Name struct {
	segments []string
}

// NewName builds a Name from its segments. The segments slice is copied so
// callers cannot mutate the name afterwards.
func NewName(segments ...string) Name {
	copied := make([]string, len(segments))
	copy(copied, segments)
	return Name{segments: copied}
}

// ParseName builds a Name from a dotted string such as "java.lang.Object".
func ParseName(dotted string) Name {
	return Name{segments: strings.Split(dotted, ".")}
}

// Segments returns a copy of the name's identifier segments.
func (n Name) Segments() []string {
	copied := make([]string, len(n.segments))
	copy(copied, n.segments)
	return copied
}

// String returns the canonical dotted form.
func (n Name) String() string {
	return strings.Join(n.segments, ".")
}

// Last returns the final segment, which names the generated wrapper type.
func (n Name) Last() string {
	return n.segments[len(n.segments)-1]
}

// IsZero reports whether the name has no segments. A zero Name in a class's
// Extends slot means the class implicitly extends the root object type.
func (n Name) IsZero() bool {
	return len(n.segments) == 0
}

// Equal reports canonical-form equality.
func (n Name) Equal(other Name) bool {
	return n.String() == other.String()
}

// Primitive Java type names. Every other name denotes a generated wrapper
// type.
var primitives = map[string]bool{
	"int":     true,
	"long":    true,
	"char":    true,
	"byte":    true,
	"boolean": true,
	"float":   true,
	"double":  true,
}

// IsPrimitive reports whether the name is a single-segment primitive type.
func (n Name) IsPrimitive() bool {
	return len(n.segments) == 1 && primitives[n.segments[0]]
}

// Argument is a method or constructor argument: a local binding name paired
// with a qualified type name.
type Argument struct {
	Name string
	Type Name
}

// Method is a declared Java method.
type Method struct {
	Name       string
	ReturnType Name
	Arguments  []Argument
	Public     bool
	Static     bool
}

// Constructor is a declared Java constructor.
type Constructor struct {
	Arguments []Argument
	Public    bool
}

// Class is a parsed class declaration. A zero Extends means the class
// implicitly extends the root object type.
type Class struct {
	Name         Name
	Public       bool
	Extends      Name
	Implements   []Name
	Methods      []Method
	Constructors []Constructor
}

// Interface is a parsed interface declaration.
type Interface struct {
	Name    Name
	Public  bool
	Extends []Name
}

// ClassStub is a header-only class declaration from the metadata block,
// describing a class generated by a different unit.
type ClassStub struct {
	Name       Name
	Extends    Name
	Implements []Name
}

// InterfaceStub is a header-only interface declaration from the metadata
// block.
type InterfaceStub struct {
	Name    Name
	Extends []Name
}

// Metadata holds the forward-declared types of other generation units.
type Metadata struct {
	Classes    []ClassStub
	Interfaces []InterfaceStub
}

// Definition is a single top-level declaration. Exactly one of Class or
// Interface is set.
type Definition struct {
	Class     *Class
	Interface *Interface
}

// Definitions is the parse result for one generation unit: the declarations
// in input order plus the metadata stubs.
type Definitions struct {
	Definitions []Definition
	Metadata    Metadata
}
