// Package resolver turns parsed declarations into the resolved model the
// code emitter consumes. It sits between the parser and codegen: everything
// name-shaped is looked up here so emission can be a pure walk.
//
// Resolution computes, per class: the immediate superclass (the implicit
// root object type when extends is omitted), the root-ward transitive
// ancestor chain, the deduplicated and sorted resolved implements set, the
// foreign signature strings, and the enumerable cast pairs. Per interface it
// validates the extends references. All lookup tables live for a single
// invocation; declarations are never mutated.
package resolver

import (
	"sort"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/chazu/tanuki/pkg/ast"
)

// Root returns the implicit root object type substituted whenever a class
// omits its extends clause.
func Root() ast.Name {
	return ast.NewName("java", "lang", "Object")
}

// Model is the resolved form of one generation unit, in input declaration
// order.
type Model struct {
	Definitions []Definition
}

// Definition is one resolved declaration. Exactly one field is set.
type Definition struct {
	Class     *Class
	Interface *Interface
}

// Class carries the fully resolved inheritance facts for a class
// declaration.
type Class struct {
	Decl          *ast.Class
	SuperClass    ast.Name   // immediate superclass (root when extends omitted)
	Ancestors     []ast.Name // transitive chain, immediate super first, root last
	Implements    []ast.Name // resolved set, deduplicated, sorted by canonical form
	Signature     string     // e.g. a/b/Foo
	FullSignature string     // e.g. La/b/Foo;
	Casts         []CastPair // reflexive pair first, then one per ancestor in chain order
}

// CastPair is an enumerable (type, ancestor) cast relation handed to the
// emitter.
type CastPair struct {
	Type     ast.Name
	Ancestor ast.Name
}

// Interface is a resolved interface declaration.
type Interface struct {
	Decl *ast.Interface
}

// ClassPath renders a name in the foreign path form, e.g. a.b.Foo ->
// "a/b/Foo".
func ClassPath(name ast.Name) string {
	return strings.Join(name.Segments(), "/")
}

// Scalar signature codes for primitive type names.
var primitiveSignatures = map[string]string{
	"int":     "I",
	"long":    "J",
	"char":    "C",
	"byte":    "B",
	"boolean": "Z",
	"float":   "F",
	"double":  "D",
}

// TypeSignature renders the foreign type signature for a name: the scalar
// code for primitives, the L-wrapped path form for everything else.
func TypeSignature(name ast.Name) string {
	if name.IsPrimitive() {
		return primitiveSignatures[name.Last()]
	}
	return "L" + ClassPath(name) + ";"
}

const (
	unvisited = iota
	visiting
	visited
)

type resolver struct {
	// interfaceExtends maps interface name -> directly extended interfaces,
	// from local declarations and metadata stubs alike.
	interfaceExtends map[string][]ast.Name
	// classExtends maps class name -> declared superclass (root when the
	// extends clause is omitted). The root itself has no entry.
	classExtends map[string]ast.Name
	// closure memoizes the transitive interface closure per interface.
	closure map[string][]ast.Name
	state   map[string]int
	root    ast.Name
}

// Resolve validates all extends/implements references and computes the
// resolved model for the given declarations.
func Resolve(defs *ast.Definitions) (*Model, error) {
	r := &resolver{
		interfaceExtends: map[string][]ast.Name{},
		classExtends:     map[string]ast.Name{},
		closure:          map[string][]ast.Name{},
		state:            map[string]int{},
		root:             Root(),
	}
	r.populate(defs)
	if err := r.validate(defs); err != nil {
		return nil, err
	}
	return r.resolve(defs)
}

// populate fills the direct-extends lookup tables from local declarations
// and metadata stubs.
func (r *resolver) populate(defs *ast.Definitions) {
	for _, def := range defs.Definitions {
		switch {
		case def.Interface != nil:
			iface := def.Interface
			r.interfaceExtends[iface.Name.String()] = append(r.interfaceExtends[iface.Name.String()], iface.Extends...)
		case def.Class != nil:
			class := def.Class
			r.classExtends[class.Name.String()] = r.superOf(class.Extends)
		}
	}
	for _, stub := range defs.Metadata.Interfaces {
		r.interfaceExtends[stub.Name.String()] = append(r.interfaceExtends[stub.Name.String()], stub.Extends...)
	}
	for _, stub := range defs.Metadata.Classes {
		r.classExtends[stub.Name.String()] = r.superOf(stub.Extends)
	}
}

func (r *resolver) superOf(extends ast.Name) ast.Name {
	if extends.IsZero() {
		return r.root
	}
	return extends
}

// validate checks that every extends/implements reference names a local
// declaration, a metadata stub, or the root.
func (r *resolver) validate(defs *ast.Definitions) error {
	for _, def := range defs.Definitions {
		switch {
		case def.Interface != nil:
			if err := r.checkInterfaceRefs(def.Interface.Name, def.Interface.Extends); err != nil {
				return err
			}
		case def.Class != nil:
			if err := r.checkClassRefs(def.Class.Name, def.Class.Extends, def.Class.Implements); err != nil {
				return err
			}
		}
	}
	for _, stub := range defs.Metadata.Interfaces {
		if err := r.checkInterfaceRefs(stub.Name, stub.Extends); err != nil {
			return err
		}
	}
	for _, stub := range defs.Metadata.Classes {
		if err := r.checkClassRefs(stub.Name, stub.Extends, stub.Implements); err != nil {
			return err
		}
	}
	return nil
}

func (r *resolver) checkInterfaceRefs(name ast.Name, extends []ast.Name) error {
	for _, ext := range extends {
		if _, ok := r.interfaceExtends[ext.String()]; !ok {
			return errors.Newf("unresolved name %s in extends clause of interface %s", ext, name)
		}
	}
	return nil
}

func (r *resolver) checkClassRefs(name ast.Name, extends ast.Name, implements []ast.Name) error {
	if !extends.IsZero() && !extends.Equal(r.root) {
		if _, ok := r.classExtends[extends.String()]; !ok {
			return errors.Newf("unresolved name %s in extends clause of class %s", extends, name)
		}
	}
	for _, impl := range implements {
		if _, ok := r.interfaceExtends[impl.String()]; !ok {
			return errors.Newf("unresolved name %s in implements clause of class %s", impl, name)
		}
	}
	return nil
}

func (r *resolver) resolve(defs *ast.Definitions) (*Model, error) {
	model := &Model{Definitions: []Definition{}}
	for _, def := range defs.Definitions {
		switch {
		case def.Interface != nil:
			model.Definitions = append(model.Definitions, Definition{Interface: &Interface{Decl: def.Interface}})
		case def.Class != nil:
			resolved, err := r.resolveClass(def.Class)
			if err != nil {
				return nil, err
			}
			model.Definitions = append(model.Definitions, Definition{Class: resolved})
		}
	}
	return model, nil
}

func (r *resolver) resolveClass(class *ast.Class) (*Class, error) {
	ancestors, err := r.ancestorsOf(class.Name)
	if err != nil {
		return nil, err
	}
	implements, err := r.implementsOf(class)
	if err != nil {
		return nil, err
	}
	casts := []CastPair{{Type: class.Name, Ancestor: class.Name}}
	for _, ancestor := range ancestors {
		casts = append(casts, CastPair{Type: class.Name, Ancestor: ancestor})
	}
	signature := ClassPath(class.Name)
	return &Class{
		Decl:          class,
		SuperClass:    r.superOf(class.Extends),
		Ancestors:     ancestors,
		Implements:    implements,
		Signature:     signature,
		FullSignature: "L" + signature + ";",
		Casts:         casts,
	}, nil
}

// ancestorsOf walks the superclass mapping root-ward, collecting each
// superclass in order. The walk ends when a name has no further mapping
// entry, which is always the root.
func (r *resolver) ancestorsOf(name ast.Name) ([]ast.Name, error) {
	var chain []ast.Name
	seen := map[string]bool{name.String(): true}
	current := name
	for {
		super, ok := r.classExtends[current.String()]
		if !ok {
			return chain, nil
		}
		if seen[super.String()] {
			return nil, errors.Newf("class extension cycle involving %s", super)
		}
		seen[super.String()] = true
		chain = append(chain, super)
		current = super
	}
}

// implementsOf unions the class's declared interfaces with each one's
// transitive closure, deduplicated and sorted for deterministic output.
func (r *resolver) implementsOf(class *ast.Class) ([]ast.Name, error) {
	set := map[string]ast.Name{}
	for _, iface := range class.Implements {
		set[iface.String()] = iface
		closure, err := r.closureOf(iface)
		if err != nil {
			return nil, err
		}
		for _, ancestor := range closure {
			set[ancestor.String()] = ancestor
		}
	}
	return sortedNames(set), nil
}

// closureOf computes the transitive closure of an interface's extends
// relation, memoized per interface. A genuine extension cycle is rejected
// with a diagnostic rather than recursing forever.
func (r *resolver) closureOf(name ast.Name) ([]ast.Name, error) {
	key := name.String()
	if closure, ok := r.closure[key]; ok {
		return closure, nil
	}
	if r.state[key] == visiting {
		return nil, errors.Newf("interface extension cycle involving %s", name)
	}
	r.state[key] = visiting
	set := map[string]ast.Name{}
	for _, direct := range r.interfaceExtends[key] {
		set[direct.String()] = direct
		transitive, err := r.closureOf(direct)
		if err != nil {
			return nil, err
		}
		for _, ancestor := range transitive {
			set[ancestor.String()] = ancestor
		}
	}
	r.state[key] = visited
	r.closure[key] = sortedNames(set)
	return r.closure[key], nil
}

func sortedNames(set map[string]ast.Name) []ast.Name {
	keys := make([]string, 0, len(set))
	for key := range set {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	names := make([]ast.Name, 0, len(keys))
	for _, key := range keys {
		names = append(names, set[key])
	}
	return names
}
