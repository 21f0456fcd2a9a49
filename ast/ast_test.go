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

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExprString(t *testing.T) {
	flip := &Closure{
		Args: []Pattern{&Identifier{Symbol: "f"}},
		Body: &Closure{
			Args: []Pattern{&Identifier{Symbol: "a"}, &Identifier{Symbol: "b"}},
			Body: &Call{Func: &Var{Name: "f"}, Args: []Expr{&Var{Name: "b"}, &Var{Name: "a"}}},
		},
	}
	assert.Equal(t, `\f -> \a, b -> f b a`, ExprString(flip))

	defs := &Defs{
		Defs: []Def{
			{Pattern: &Identifier{Symbol: "x"}, Expr: &Int{Value: 4}, Annotation: &TypeApply{Name: "Num.Num", Args: []Annotation{&TypeApply{Name: "Int.Integer"}}}},
		},
		Body: &List{Elems: []Expr{&Var{Name: "x"}, &Float{Value: 1}, &Str{Value: "s"}}},
	}
	assert.Equal(t, `x : Num.Num Int.Integer; x = 4; [ x, 1.0, "s" ]`, ExprString(defs))

	when := &When{
		Cond: &Var{Name: "x"},
		Branches: []WhenBranch{
			{Pattern: &AppliedTag{Name: "Foo", Args: []Pattern{&Underscore{}}}, Body: &Tag{Name: "Bar", Args: []Expr{&EmptyRecord{}}}},
			{Pattern: &RecordDestructure{Fields: []DestructField{{Label: "a", Symbol: "a"}}}, Guard: &Var{Name: "a"}, Body: &Accessor{Field: "b"}},
		},
	}
	assert.Equal(t, `when x is Foo _ -> Bar {} | { a } if a -> .b`, ExprString(when))

	update := &Update{Symbol: "r", Updates: []Field{{Name: "x", Value: &Access{Record: &Var{Name: "r"}, Field: "y"}}}}
	assert.Equal(t, `{ r & x: r.y }`, ExprString(update))
	assert.Equal(t, `if c then {} else { a: 1 }`, ExprString(&If{
		Branches: []IfBranch{{Cond: &Var{Name: "c"}, Then: &Record{}}},
		Else:     &Record{Fields: []Field{{Name: "a", Value: &Int{Value: 1}}}},
	}))
}

func TestAccessChain(t *testing.T) {
	e := &Access{Record: &Access{Record: &Var{Name: "r"}, Field: "foo"}, Field: "bar"}
	symbol, fields, ok := e.Chain()
	require.True(t, ok)
	assert.Equal(t, "r", symbol)
	assert.Equal(t, []string{"foo", "bar"}, fields)

	_, _, ok = (&Access{Record: &Record{}, Field: "x"}).Chain()
	assert.False(t, ok)
}

func TestSymbols(t *testing.T) {
	p := &AppliedTag{Name: "Foo", Args: []Pattern{
		&Identifier{Symbol: "x"},
		&RecordDestructure{Fields: []DestructField{
			{Label: "a", Symbol: "a"},
			{Label: "b", Symbol: "b", Guard: &AppliedTag{Name: "Bar", Args: []Pattern{&Identifier{Symbol: "z"}}}},
		}},
		&Underscore{},
	}}
	assert.Equal(t, []string{"x", "a", "b", "z"}, Symbols(p))
}

func TestWalkExpr(t *testing.T) {
	e := &Defs{
		Defs: []Def{{Pattern: &Identifier{Symbol: "f"}, Expr: &Closure{Args: []Pattern{&Underscore{}}, Body: &Int{Value: 1}}}},
		Body: &Call{Func: &Var{Name: "f"}, Args: []Expr{&Update{Symbol: "r", Updates: []Field{{Name: "x", Value: &Str{}}}}}},
	}
	var names []string
	WalkExpr(e, func(e Expr) { names = append(names, e.ExprName()) })
	assert.Equal(t, []string{"Defs", "Closure", "Int", "Call", "Var", "Update", "Str"}, names)
}
