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

package ast

// Expr is the base for all expressions. Expressions are canonical: every variable
// is already resolved to a unique, fully-qualified symbol.
type Expr interface {
	// Name of the syntax-type of the expression.
	ExprName() string
	isExpr()
}

var (
	_ Expr = (*Int)(nil)
	_ Expr = (*Float)(nil)
	_ Expr = (*Str)(nil)
	_ Expr = (*EmptyRecord)(nil)
	_ Expr = (*List)(nil)
	_ Expr = (*Var)(nil)
	_ Expr = (*Call)(nil)
	_ Expr = (*Closure)(nil)
	_ Expr = (*Defs)(nil)
	_ Expr = (*When)(nil)
	_ Expr = (*If)(nil)
	_ Expr = (*Record)(nil)
	_ Expr = (*Access)(nil)
	_ Expr = (*Accessor)(nil)
	_ Expr = (*Update)(nil)
	_ Expr = (*Tag)(nil)
)

// Integer literal: `42`
type Int struct {
	Value int64
}

// "Int"
func (e *Int) ExprName() string { return "Int" }

// Float literal: `0.5`
type Float struct {
	Value float64
}

// "Float"
func (e *Float) ExprName() string { return "Float" }

// String literal: `"foo"`
type Str struct {
	Value string
}

// "Str"
func (e *Str) ExprName() string { return "Str" }

// Empty record: `{}`
type EmptyRecord struct{}

// "EmptyRecord"
func (e *EmptyRecord) ExprName() string { return "EmptyRecord" }

// List literal: `[ a, b ]`
type List struct {
	Elems []Expr
}

// "List"
func (e *List) ExprName() string { return "List" }

// Variable
type Var struct {
	Name string
}

// "Var"
func (e *Var) ExprName() string { return "Var" }

// Application: `f x y`
type Call struct {
	Func Expr
	Args []Expr
}

// "Call"
func (e *Call) ExprName() string { return "Call" }

// Abstraction: `\x, y -> x`
type Closure struct {
	Args []Pattern
	Body Expr
}

// "Closure"
func (e *Closure) ExprName() string { return "Closure" }

// Group of definitions followed by a body:
//
//	a = 1
//	b = a
//	b
//
// Definitions may appear out of dependency order and may be recursive.
type Defs struct {
	Defs []Def
	Body Expr
}

// "Defs"
func (e *Defs) ExprName() string { return "Defs" }

// Definition of the symbols bound by Pattern, with an optional type annotation.
type Def struct {
	Pattern    Pattern
	Expr       Expr
	Annotation Annotation
}

// Pattern-matching expression:
//
//	when x is
//	    Foo a -> a
//	    _ if guard -> b
type When struct {
	Cond     Expr
	Branches []WhenBranch
}

// "When"
func (e *When) ExprName() string { return "When" }

// Branch within When. Guard is optional.
type WhenBranch struct {
	Pattern Pattern
	Guard   Expr
	Body    Expr
}

// Conditional: `if a then b else if c then d else e`
type If struct {
	Branches []IfBranch
	Else     Expr
}

// "If"
func (e *If) ExprName() string { return "If" }

// Condition and body within If
type IfBranch struct {
	Cond Expr
	Then Expr
}

// Record literal: `{ a: 1, b: 2 }`
type Record struct {
	Fields []Field
}

// "Record"
func (e *Record) ExprName() string { return "Record" }

// Paired field name and value
type Field struct {
	Name  string
	Value Expr
}

// Field access: `r.a`
type Access struct {
	Record Expr
	Field  string
}

// "Access"
func (e *Access) ExprName() string { return "Access" }

// Chain returns the symbol and the field names of a nested access such as `r.a.b`.
// If the innermost record is not a variable, ok will be false.
func (e *Access) Chain() (symbol string, fields []string, ok bool) {
	var rev []string
	var rec Expr = e
	for {
		access, isAccess := rec.(*Access)
		if !isAccess {
			break
		}
		rev = append(rev, access.Field)
		rec = access.Record
	}
	v, ok := rec.(*Var)
	if !ok {
		return "", nil, false
	}
	fields = make([]string, len(rev))
	for i, field := range rev {
		fields[len(rev)-1-i] = field
	}
	return v.Name, fields, true
}

// Field accessor function: `.a`
type Accessor struct {
	Field string
}

// "Accessor"
func (e *Accessor) ExprName() string { return "Accessor" }

// Record update: `{ r & a: 1 }`
type Update struct {
	Symbol  string
	Updates []Field
}

// "Update"
func (e *Update) ExprName() string { return "Update" }

// Tag application: `Foo a b`. Private tags are qualified by their module: `Test.@Foo`.
type Tag struct {
	Name string
	Args []Expr
}

// "Tag"
func (e *Tag) ExprName() string { return "Tag" }

func (*Int) isExpr()         {}
func (*Float) isExpr()       {}
func (*Str) isExpr()         {}
func (*EmptyRecord) isExpr() {}
func (*List) isExpr()        {}
func (*Var) isExpr()         {}
func (*Call) isExpr()        {}
func (*Closure) isExpr()     {}
func (*Defs) isExpr()        {}
func (*When) isExpr()        {}
func (*If) isExpr()          {}
func (*Record) isExpr()      {}
func (*Access) isExpr()      {}
func (*Accessor) isExpr()    {}
func (*Update) isExpr()      {}
func (*Tag) isExpr()         {}
