// The MIT License (MIT)
//
// Copyright (c) 2019 West Damron
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package construct

import (
	"github.com/wdamron/uniq/ast"
)

// Expressions:

// Integer literal: `42`
func Int(value int64) *ast.Int { return &ast.Int{Value: value} }

// Float literal: `0.5`
func Float(value float64) *ast.Float { return &ast.Float{Value: value} }

// String literal: `"foo"`
func Str(value string) *ast.Str { return &ast.Str{Value: value} }

// Empty record: `{}`
func EmptyRecord() *ast.EmptyRecord { return &ast.EmptyRecord{} }

// List literal: `[ a, b ]`
func List(elems ...ast.Expr) *ast.List { return &ast.List{Elems: elems} }

// Variable
func Var(name string) *ast.Var { return &ast.Var{Name: name} }

// Application: `f x y`
func Call(f ast.Expr, args ...ast.Expr) *ast.Call { return &ast.Call{Func: f, Args: args} }

// Abstraction: `\x, y -> x`
func Closure(args []ast.Pattern, body ast.Expr) *ast.Closure {
	return &ast.Closure{Args: args, Body: body}
}

// Abstraction: `\x -> x`
func Closure1(arg ast.Pattern, body ast.Expr) *ast.Closure {
	return &ast.Closure{Args: []ast.Pattern{arg}, Body: body}
}

// Abstraction: `\x, y -> x`
func Closure2(arg1, arg2 ast.Pattern, body ast.Expr) *ast.Closure {
	return &ast.Closure{Args: []ast.Pattern{arg1, arg2}, Body: body}
}

// Abstraction over identifiers: `\x, y -> x`
func Lambda(args []string, body ast.Expr) *ast.Closure {
	patterns := make([]ast.Pattern, len(args))
	for i, arg := range args {
		patterns[i] = Ident(arg)
	}
	return &ast.Closure{Args: patterns, Body: body}
}

// Group of definitions followed by a body
func Defs(defs []ast.Def, body ast.Expr) *ast.Defs { return &ast.Defs{Defs: defs, Body: body} }

// Definition of a single symbol: `x = e`
func Def(name string, expr ast.Expr) ast.Def {
	return ast.Def{Pattern: Ident(name), Expr: expr}
}

// Definition with a type annotation: `x : t; x = e`
func AnnotatedDef(name string, annotation ast.Annotation, expr ast.Expr) ast.Def {
	return ast.Def{Pattern: Ident(name), Expr: expr, Annotation: annotation}
}

// Definition of the symbols bound by a pattern: `{ x, y } = e`
func DefPattern(p ast.Pattern, expr ast.Expr) ast.Def {
	return ast.Def{Pattern: p, Expr: expr}
}

// Pattern-matching expression: `when x is ...`
func When(cond ast.Expr, branches ...ast.WhenBranch) *ast.When {
	return &ast.When{Cond: cond, Branches: branches}
}

// Branch within When: `p -> e`
func Branch(p ast.Pattern, body ast.Expr) ast.WhenBranch {
	return ast.WhenBranch{Pattern: p, Body: body}
}

// Guarded branch within When: `p if guard -> e`
func GuardedBranch(p ast.Pattern, guard, body ast.Expr) ast.WhenBranch {
	return ast.WhenBranch{Pattern: p, Guard: guard, Body: body}
}

// Conditional: `if c then a else b`
func If(cond, then, otherwise ast.Expr) *ast.If {
	return &ast.If{Branches: []ast.IfBranch{{Cond: cond, Then: then}}, Else: otherwise}
}

// Record literal: `{ a: 1, b: 2 }`
func Record(fields ...ast.Field) *ast.Record { return &ast.Record{Fields: fields} }

// Paired field name and value
func Field(name string, value ast.Expr) ast.Field { return ast.Field{Name: name, Value: value} }

// Nested field access: `r.a.b`
func Access(record ast.Expr, fields ...string) ast.Expr {
	for _, field := range fields {
		record = &ast.Access{Record: record, Field: field}
	}
	return record
}

// Field accessor function: `.a`
func Accessor(field string) *ast.Accessor { return &ast.Accessor{Field: field} }

// Record update: `{ r & a: 1 }`
func Update(symbol string, updates ...ast.Field) *ast.Update {
	return &ast.Update{Symbol: symbol, Updates: updates}
}

// Tag application: `Foo a b`
func Tag(name string, args ...ast.Expr) *ast.Tag { return &ast.Tag{Name: name, Args: args} }

// Patterns:

// Identifier pattern: `x`
func Ident(symbol string) *ast.Identifier { return &ast.Identifier{Symbol: symbol} }

// Underscore pattern: `_`
func Underscore() *ast.Underscore { return &ast.Underscore{} }

// Integer pattern: `1`
func PInt(value int64) *ast.IntPattern { return &ast.IntPattern{Value: value} }

// Float pattern: `0.5`
func PFloat(value float64) *ast.FloatPattern { return &ast.FloatPattern{Value: value} }

// String pattern: `"foo"`
func PStr(value string) *ast.StrPattern { return &ast.StrPattern{Value: value} }

// Tag pattern: `Foo x _`
func PTag(name string, args ...ast.Pattern) *ast.AppliedTag {
	return &ast.AppliedTag{Name: name, Args: args}
}

// Record destructure: `{ x, y }`, binding each field to a symbol of the same name.
func PRecord(labels ...string) *ast.RecordDestructure {
	fields := make([]ast.DestructField, len(labels))
	for i, label := range labels {
		fields[i] = ast.DestructField{Label: label, Symbol: label}
	}
	return &ast.RecordDestructure{Fields: fields}
}

// Record destructure with explicit fields: `{ x, y: Foo z }`
func PRecordFields(fields ...ast.DestructField) *ast.RecordDestructure {
	return &ast.RecordDestructure{Fields: fields}
}

// Destructured field with an optional guard pattern
func DestructField(label, symbol string, guard ast.Pattern) ast.DestructField {
	return ast.DestructField{Label: label, Symbol: symbol, Guard: guard}
}

// Annotations:

// Type variable: `a`
func TVar(name string) *ast.TypeVar { return &ast.TypeVar{Name: name} }

// Applied type: `Num.Num a`
func TApply(name string, args ...ast.Annotation) *ast.TypeApply {
	return &ast.TypeApply{Name: name, Args: args}
}

// Function type: `a, b -> c`
func TFunc(args []ast.Annotation, ret ast.Annotation) *ast.FuncType {
	return &ast.FuncType{Args: args, Ret: ret}
}

// Function type: `a -> b`
func TFunc1(arg, ret ast.Annotation) *ast.FuncType {
	return &ast.FuncType{Args: []ast.Annotation{arg}, Ret: ret}
}

// Record type: `{ a : x }ext`. A nil ext closes the record.
func TRecord(ext ast.Annotation, fields ...ast.FieldType) *ast.RecordType {
	return &ast.RecordType{Fields: fields, Ext: ext}
}

// Labeled field within a record type
func TField(name string, t ast.Annotation) ast.FieldType { return ast.FieldType{Name: name, Type: t} }

// Tag union type: `[ Foo a ]ext`. A nil ext closes the union.
func TTagUnion(ext ast.Annotation, tags ...ast.TagType) *ast.TagUnionType {
	return &ast.TagUnionType{Tags: tags, Ext: ext}
}

// Tag within a tag union type
func TTag(name string, args ...ast.Annotation) ast.TagType { return ast.TagType{Name: name, Args: args} }

// Alias type: `Int : Num.Num Int.Integer`
func TAlias(name string, actual ast.Annotation) *ast.AliasType {
	return &ast.AliasType{Name: name, Actual: actual}
}
