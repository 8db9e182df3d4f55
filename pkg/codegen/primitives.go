package codegen

// Primitive type tables. Java primitive names map to fixed Go scalar types
// and bridge value/result helpers; every other name maps to a generated
// wrapper type.

import (
	"github.com/dave/jennifer/jen"

	"github.com/chazu/tanuki/pkg/ast"
)

// primitiveGoTypes maps Java primitive names to emitted Go scalar types.
var primitiveGoTypes = map[string]func() *jen.Statement{
	"int":     jen.Int32,
	"long":    jen.Int64,
	"char":    jen.Rune,
	"byte":    jen.Uint8,
	"boolean": jen.Bool,
	"float":   jen.Float32,
	"double":  jen.Float64,
}

// primitiveValueCtors maps Java primitive names to the bridge value
// constructor used to pass an argument of that type.
var primitiveValueCtors = map[string]string{
	"int":     "Int",
	"long":    "Long",
	"char":    "Char",
	"byte":    "Byte",
	"boolean": "Bool",
	"float":   "Float",
	"double":  "Double",
}

// primitiveResultAccessors maps Java primitive names to the bridge result
// accessor that extracts a returned value of that type.
var primitiveResultAccessors = map[string]string{
	"int":     "Int",
	"long":    "Long",
	"char":    "Char",
	"byte":    "Byte",
	"boolean": "Bool",
	"float":   "Float",
	"double":  "Double",
}

// goType renders the Go type for a Java type name: a scalar for primitives,
// the wrapper type otherwise.
func (g *generator) goType(name ast.Name) *jen.Statement {
	if name.IsPrimitive() {
		return primitiveGoTypes[name.Last()]()
	}
	return g.wrapperType(name)
}

// paramType renders the Go parameter type: primitives by value, objects by
// reference.
func (g *generator) paramType(name ast.Name) *jen.Statement {
	if name.IsPrimitive() {
		return primitiveGoTypes[name.Last()]()
	}
	return jen.Op("*").Add(g.wrapperType(name))
}

// zeroValue renders the zero expression returned alongside an error.
func (g *generator) zeroValue(name ast.Name) *jen.Statement {
	if name.IsPrimitive() {
		if name.Last() == "boolean" {
			return jen.False()
		}
		return jen.Lit(0)
	}
	return g.wrapperType(name).Values()
}
