// Package codegen generates Go wrapper source from the resolved model.
//
// Each invocation renders one file. Emission order follows input
// declaration order; within a class the order is wrapper struct, handle
// conversions, signature accessor, cast relations, delegated object
// operations, constructors, instance methods, static methods, and interface
// markers. Identical input yields byte-identical output.
package codegen

import (
	"bytes"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/cockroachdb/errors"
	"github.com/dave/jennifer/jen"

	"github.com/chazu/tanuki/pkg/ast"
	"github.com/chazu/tanuki/pkg/resolver"
)

// DefaultBridgePath is the import path of the runtime bridge the generated
// code calls into.
const DefaultBridgePath = "github.com/chazu/tanuki/pkg/bridge"

// DefaultPackage is the package name used when Options leaves it empty.
const DefaultPackage = "javawrap"

// Options configures a generation run.
type Options struct {
	// Package is the package name of the emitted file.
	Package string
	// Bridge is the import path of the runtime bridge package.
	Bridge string
}

// Generate renders the resolved model as Go source.
func Generate(model *resolver.Model, opts Options) (string, error) {
	if opts.Package == "" {
		opts.Package = DefaultPackage
	}
	if opts.Bridge == "" {
		opts.Bridge = DefaultBridgePath
	}
	g := &generator{opts: opts, root: resolver.Root()}

	f := jen.NewFile(opts.Package)
	f.HeaderComment("Code generated by tanuki. DO NOT EDIT.")
	for _, def := range model.Definitions {
		switch {
		case def.Class != nil:
			g.generateClass(f, def.Class)
		case def.Interface != nil:
			g.generateInterface(f, def.Interface)
		}
	}

	buf := &bytes.Buffer{}
	if err := f.Render(buf); err != nil {
		return "", errors.Wrap(err, "failed to render generated code")
	}
	return buf.String(), nil
}

type generator struct {
	opts Options
	root ast.Name
}

// wrapperType renders the wrapper type for a non-primitive Java name: the
// bridge's root object for java.lang.Object, the final name segment for
// everything else (cross-unit types are assumed to share the output
// package).
func (g *generator) wrapperType(name ast.Name) *jen.Statement {
	if name.Equal(g.root) {
		return jen.Qual(g.opts.Bridge, "Object")
	}
	return jen.Id(name.Last())
}

// fromHandleCall renders the from-handle conversion call for a wrapper type.
func (g *generator) fromHandleCall(name ast.Name, env, handle jen.Code) *jen.Statement {
	if name.Equal(g.root) {
		return jen.Qual(g.opts.Bridge, "ObjectFromHandle").Call(env, handle)
	}
	return jen.Id(name.Last() + "FromHandle").Call(env, handle)
}

func (g *generator) generateClass(f *jen.File, class *resolver.Class) {
	name := class.Decl.Name
	typeName := name.Last()
	superType := g.wrapperType(class.SuperClass)

	f.Commentf("%s is a typed wrapper for the Java class %s.", typeName, name)
	f.Type().Id(typeName).Struct(
		jen.Id("object").Add(superType),
	)
	f.Line()

	g.generateConversions(f, class)
	g.generateCasts(f, class)
	g.generateObjectOps(f, class)

	for _, constructor := range class.Decl.Constructors {
		g.generateConstructor(f, class, constructor)
	}
	for _, method := range class.Decl.Methods {
		if method.Static {
			continue
		}
		g.generateMethod(f, class, method)
	}
	for _, method := range class.Decl.Methods {
		if !method.Static {
			continue
		}
		g.generateStaticMethod(f, class, method)
	}

	if len(class.Implements) > 0 {
		for _, iface := range class.Implements {
			f.Func().Params(jen.Id("c").Id(typeName)).Id(markerName(iface)).Params().Block()
		}
		f.Line()
		for _, iface := range class.Implements {
			f.Var().Id("_").Id(iface.Last()).Op("=").Parens(jen.Op("*").Id(typeName)).Call(jen.Nil())
		}
		f.Line()
	}
}

// generateConversions emits the bidirectional handle conversions, the env
// accessor and the signature accessor.
func (g *generator) generateConversions(f *jen.File, class *resolver.Class) {
	name := class.Decl.Name
	typeName := name.Last()

	f.Commentf("%sFromHandle wraps a raw object handle as a %s.", typeName, typeName)
	f.Func().Id(typeName+"FromHandle").Params(
		jen.Id("env").Op("*").Qual(g.opts.Bridge, "Env"),
		jen.Id("handle").Qual(g.opts.Bridge, "Handle"),
	).Id(typeName).Block(
		jen.Return(jen.Id(typeName).Values(
			jen.Id("object").Op(":").Add(g.fromHandleCall(class.SuperClass, jen.Id("env"), jen.Id("handle"))),
		)),
	)
	f.Line()

	f.Comment("ToHandle returns the raw foreign handle backing the wrapper.")
	f.Func().Params(jen.Id("c").Id(typeName)).Id("ToHandle").Params().Qual(g.opts.Bridge, "Handle").Block(
		jen.Return(jen.Id("c").Dot("object").Dot("ToHandle").Call()),
	)
	f.Line()

	f.Comment("Env returns the environment the wrapped object belongs to.")
	f.Func().Params(jen.Id("c").Id(typeName)).Id("Env").Params().Op("*").Qual(g.opts.Bridge, "Env").Block(
		jen.Return(jen.Id("c").Dot("object").Dot("Env").Call()),
	)
	f.Line()

	f.Commentf("Signature returns the foreign type signature of %s.", name)
	f.Func().Params(jen.Id("c").Id(typeName)).Id("Signature").Params().String().Block(
		jen.Return(jen.Lit(class.FullSignature)),
	)
	f.Line()
}

// generateCasts emits the reflexive cast plus one cast per transitive
// ancestor in root-ward order. Casts reinterpret the wrapped chain without
// copying.
func (g *generator) generateCasts(f *jen.File, class *resolver.Class) {
	typeName := class.Decl.Name.Last()
	for i, pair := range class.Casts {
		target := g.wrapperType(pair.Ancestor)
		castFunc := f.Func().Params(jen.Id("c").Op("*").Id(typeName)).
			Id("As" + pair.Ancestor.Last()).Params().Op("*").Add(target)
		switch i {
		case 0: // reflexive
			castFunc.Block(jen.Return(jen.Id("c")))
		case 1: // immediate superclass
			castFunc.Block(jen.Return(jen.Op("&").Id("c").Dot("object")))
		default: // deeper ancestors delegate through the immediate superclass
			castFunc.Block(jen.Return(jen.Id("c").Dot("object").Dot("As" + pair.Ancestor.Last()).Call()))
		}
		f.Line()
	}
}

// generateObjectOps emits the class lookup and the clone/to-string/equality
// delegates every wrapper carries.
func (g *generator) generateObjectOps(f *jen.File, class *resolver.Class) {
	name := class.Decl.Name
	typeName := name.Last()

	f.Commentf("%sClass looks up the runtime class object for %s.", typeName, name)
	f.Func().Id(typeName+"Class").Params(
		jen.Id("env").Op("*").Qual(g.opts.Bridge, "Env"),
		jen.Id("token").Op("*").Qual(g.opts.Bridge, "NoException"),
	).Params(jen.Qual(g.opts.Bridge, "Class"), jen.Error()).Block(
		jen.Return(jen.Qual(g.opts.Bridge, "FindClass").Call(jen.Id("env"), jen.Lit(class.Signature), jen.Id("token"))),
	)
	f.Line()

	f.Comment("CloneObject creates a new reference to the wrapped object.")
	f.Func().Params(jen.Id("c").Id(typeName)).Id("CloneObject").Params(
		jen.Id("token").Op("*").Qual(g.opts.Bridge, "NoException"),
	).Params(jen.Id(typeName), jen.Error()).Block(
		jen.List(jen.Id("object"), jen.Err()).Op(":=").Id("c").Dot("object").Dot("CloneObject").Call(jen.Id("token")),
		jen.If(jen.Err().Op("!=").Nil()).Block(
			jen.Return(jen.Id(typeName).Values(), jen.Err()),
		),
		jen.Return(jen.Id(typeName).Values(jen.Id("object").Op(":").Id("object")), jen.Nil()),
	)
	f.Line()

	f.Comment("ToString calls the Java toString method.")
	f.Func().Params(jen.Id("c").Id(typeName)).Id("ToString").Params(
		jen.Id("token").Op("*").Qual(g.opts.Bridge, "NoException"),
	).Params(jen.Qual(g.opts.Bridge, "String"), jen.Error()).Block(
		jen.Return(jen.Id("c").Dot("object").Dot("ToString").Call(jen.Id("token"))),
	)
	f.Line()

	f.Comment("Equals calls the Java equals method.")
	f.Func().Params(jen.Id("c").Id(typeName)).Id("Equals").Params(
		jen.Id("other").Qual(g.opts.Bridge, "JavaValue"),
		jen.Id("token").Op("*").Qual(g.opts.Bridge, "NoException"),
	).Params(jen.Bool(), jen.Error()).Block(
		jen.Return(jen.Id("c").Dot("object").Dot("Equals").Call(jen.Id("other"), jen.Id("token"))),
	)
	f.Line()
}

func (g *generator) generateConstructor(f *jen.File, class *resolver.Class, constructor ast.Constructor) {
	name := class.Decl.Name
	typeName := name.Last()
	funcName := visibleName("New"+typeName, constructor.Public)

	params := []jen.Code{jen.Id("env").Op("*").Qual(g.opts.Bridge, "Env")}
	params = append(params, g.argumentParams(constructor.Arguments)...)
	params = append(params, jen.Id("token").Op("*").Qual(g.opts.Bridge, "NoException"))

	f.Commentf("%s invokes a Java constructor of %s.", funcName, name)
	f.Func().Id(funcName).Params(params...).Params(jen.Id(typeName), jen.Error()).Block(
		jen.List(jen.Id("handle"), jen.Err()).Op(":=").Qual(g.opts.Bridge, "CallConstructor").Call(
			jen.Id("env"),
			jen.Lit(class.Signature),
			g.argumentValues(constructor.Arguments),
			jen.Id("token"),
		),
		jen.If(jen.Err().Op("!=").Nil()).Block(
			jen.Return(jen.Id(typeName).Values(), jen.Err()),
		),
		jen.Return(jen.Id(typeName+"FromHandle").Call(jen.Id("env"), jen.Id("handle")), jen.Nil()),
	)
	f.Line()
}

func (g *generator) generateMethod(f *jen.File, class *resolver.Class, method ast.Method) {
	typeName := class.Decl.Name.Last()
	funcName := visibleName(method.Name, method.Public)

	params := g.argumentParams(method.Arguments)
	params = append(params, jen.Id("token").Op("*").Qual(g.opts.Bridge, "NoException"))

	f.Commentf("%s calls the Java method %s.", funcName, method.Name)
	f.Func().Params(jen.Id("c").Id(typeName)).Id(funcName).Params(params...).
		Params(g.goType(method.ReturnType), jen.Error()).Block(
		jen.List(jen.Id("result"), jen.Err()).Op(":=").Qual(g.opts.Bridge, "CallMethod").Call(
			jen.Id("c"),
			jen.Lit(method.Name),
			g.argumentValues(method.Arguments),
			jen.Lit(resolver.TypeSignature(method.ReturnType)),
			jen.Id("token"),
		),
		jen.If(jen.Err().Op("!=").Nil()).Block(
			jen.Return(g.zeroValue(method.ReturnType), jen.Err()),
		),
		jen.Return(g.resultValue(method.ReturnType, jen.Id("c").Dot("Env").Call()), jen.Nil()),
	)
	f.Line()
}

func (g *generator) generateStaticMethod(f *jen.File, class *resolver.Class, method ast.Method) {
	typeName := class.Decl.Name.Last()
	funcName := visibleName(typeName+upperFirst(method.Name), method.Public)

	params := []jen.Code{jen.Id("env").Op("*").Qual(g.opts.Bridge, "Env")}
	params = append(params, g.argumentParams(method.Arguments)...)
	params = append(params, jen.Id("token").Op("*").Qual(g.opts.Bridge, "NoException"))

	f.Commentf("%s calls the static Java method %s.", funcName, method.Name)
	f.Func().Id(funcName).Params(params...).
		Params(g.goType(method.ReturnType), jen.Error()).Block(
		jen.List(jen.Id("result"), jen.Err()).Op(":=").Qual(g.opts.Bridge, "CallStaticMethod").Call(
			jen.Id("env"),
			jen.Lit(class.Signature),
			jen.Lit(method.Name),
			g.argumentValues(method.Arguments),
			jen.Lit(resolver.TypeSignature(method.ReturnType)),
			jen.Id("token"),
		),
		jen.If(jen.Err().Op("!=").Nil()).Block(
			jen.Return(g.zeroValue(method.ReturnType), jen.Err()),
		),
		jen.Return(g.resultValue(method.ReturnType, jen.Id("env")), jen.Nil()),
	)
	f.Line()
}

func (g *generator) generateInterface(f *jen.File, iface *resolver.Interface) {
	name := iface.Decl.Name
	typeName := name.Last()

	var members []jen.Code
	for _, extended := range iface.Decl.Extends {
		members = append(members, jen.Id(extended.Last()))
	}
	members = append(members, jen.Id(markerName(name)).Params())

	f.Commentf("%s mirrors the Java interface %s.", typeName, name)
	f.Type().Id(typeName).Interface(members...)
	f.Line()
}

// argumentParams renders the Go parameters for a declared argument list.
func (g *generator) argumentParams(arguments []ast.Argument) []jen.Code {
	params := make([]jen.Code, 0, len(arguments))
	for _, arg := range arguments {
		params = append(params, jen.Id(arg.Name).Add(g.paramType(arg.Type)))
	}
	return params
}

// argumentValues renders the bridge argument tuple for a call site.
func (g *generator) argumentValues(arguments []ast.Argument) *jen.Statement {
	values := make([]jen.Code, 0, len(arguments))
	for _, arg := range arguments {
		if arg.Type.IsPrimitive() {
			values = append(values, jen.Qual(g.opts.Bridge, primitiveValueCtors[arg.Type.Last()]).Call(jen.Id(arg.Name)))
		} else {
			values = append(values, jen.Qual(g.opts.Bridge, "Ref").Call(jen.Id(arg.Name)))
		}
	}
	return jen.Qual(g.opts.Bridge, "Args").Call(values...)
}

// resultValue renders the expression converting a bridge result into the
// declared return type. Object results are rewrapped by value.
func (g *generator) resultValue(returnType ast.Name, env jen.Code) *jen.Statement {
	if returnType.IsPrimitive() {
		return jen.Id("result").Dot(primitiveResultAccessors[returnType.Last()]).Call()
	}
	return g.fromHandleCall(returnType, env, jen.Id("result").Dot("Handle").Call())
}

// markerName derives the interface marker method name from the qualified
// name, e.g. x.y.Comparable -> IsXYComparable.
func markerName(name ast.Name) string {
	var b strings.Builder
	b.WriteString("Is")
	for _, segment := range name.Segments() {
		b.WriteString(upperFirst(segment))
	}
	return b.String()
}

// visibleName maps the declaration's visibility flag onto Go exportedness.
func visibleName(name string, public bool) string {
	if public {
		return upperFirst(name)
	}
	return lowerFirst(name)
}

func upperFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}

func lowerFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToLower(r)) + s[size:]
}
