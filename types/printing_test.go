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

package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func attr(subs *Subs, u Variable, t Type) Variable {
	return subs.ToVar(TopLevel, Attributed(TVar{u}, t))
}

func TestContentString(t *testing.T) {
	subs := NewSubs()
	star := func() Type { return TVar{subs.FreshFlex()} }

	cases := []struct {
		typ      Type
		expected string
	}{
		{Attributed(star(), TEmptyRecord{}), "Attr.Attr * {}"},
		{Attributed(star(), Int()), "Attr.Attr * Int"},
		{Attributed(star(), Float()), "Attr.Attr * Float"},
		{Attributed(SharedAttr(), Str()), "Attr.Attr Attr.Shared Str"},
		{Attributed(UniqueAttr(), List(star())), "Attr.Attr Attr.Unique (List *)"},
		{Attributed(star(), List(Attributed(star(), List(star())))), "Attr.Attr * (List (Attr.Attr * (List *)))"},
		{Attributed(star(), TFunc{Args: []Type{star(), star()}, Ret: Attributed(star(), Int())}), "Attr.Attr * (*, * -> Attr.Attr * Int)"},
		{Attributed(star(), TFunc{
			Args: []Type{Attributed(star(), TFunc{Args: []Type{star()}, Ret: star()})},
			Ret:  star(),
		}), "Attr.Attr * (Attr.Attr * (* -> *) -> *)"},
		{Attributed(star(), TRecord{Fields: []Field{{Name: "foo", Type: Attributed(star(), Int())}}, Ext: TEmptyRecord{}}),
			"Attr.Attr * { foo : (Attr.Attr * Int) }"},
		{Attributed(star(), TRecord{Fields: []Field{{Name: "left", Type: star()}}, Ext: star()}), "Attr.Attr * { left : * }*"},
		{Attributed(star(), TTagUnion{Tags: []Tag{{Name: "Foo", Args: []Type{Attributed(star(), Str())}}, {Name: "Bar"}}, Ext: star()}),
			"Attr.Attr * [ Bar, Foo (Attr.Attr * Str) ]*"},
		{Attributed(star(), Bool()), "Attr.Attr * [ False, True ]"},
		{Attributed(star(), TApply{Name: NumName, Args: []Type{star()}}), "Attr.Attr * (Num *)"},
		{TVar{subs.Fresh(Error{})}, "<type mismatch>"},
		{Attributed(star(), List(TVar{subs.Fresh(Error{})})), "Attr.Attr * (List <type mismatch>)"},
	}
	for _, c := range cases {
		assert.Equal(t, c.expected, ContentString(subs, subs.ToVar(TopLevel, c.typ)))
	}
}

func TestContentStringRecordChain(t *testing.T) {
	subs := NewSubs()
	ext := subs.ToVar(TopLevel, TRecord{Fields: []Field{{Name: "b", Type: Str()}}, Ext: TVar{subs.FreshFlex()}})
	v := attr(subs, subs.FreshFlex(), TRecord{Fields: []Field{{Name: "a", Type: Int()}}, Ext: TVar{ext}})
	assert.Equal(t, "Attr.Attr * { a : Int, b : Str }*", ContentString(subs, v))
}

func TestNameAllTypeVars(t *testing.T) {
	subs := NewSubs()
	a, b, u := subs.FreshFlex(), subs.FreshFlex(), subs.FreshFlex()
	fn := subs.ToVar(TopLevel, Attributed(TVar{u}, TFunc{
		Args: []Type{Attributed(TVar{subs.FreshFlex()}, TFunc{Args: []Type{TVar{a}}, Ret: TVar{b}}), TVar{a}},
		Ret:  TVar{b},
	}))
	NameAllTypeVars(subs, fn)
	assert.Equal(t, "Attr.Attr * (Attr.Attr * (a -> b), a -> b)", ContentString(subs, fn))
}

func TestNameAllTypeVarsSkipsTakenNames(t *testing.T) {
	subs := NewSubs()
	a := subs.FreshFlex()
	rigid := subs.Fresh(RigidVar{Name: "a"})
	fn := subs.ToVar(TopLevel, TFunc{Args: []Type{TVar{a}, TVar{rigid}}, Ret: TVar{a}})
	NameAllTypeVars(subs, fn)
	assert.Equal(t, "b, a -> b", ContentString(subs, fn))
}

func TestNameAllTypeVarsIgnoresAliasBody(t *testing.T) {
	subs := NewSubs()
	u := subs.FreshFlex()
	id := TAlias{
		Name:   "Id",
		Args:   []TAliasArg{{Name: "x", Type: TVar{u}}},
		Actual: TFunc{Args: []Type{TVar{u}}, Ret: TVar{u}},
	}
	v := subs.ToVar(TopLevel, id)
	NameAllTypeVars(subs, v)
	assert.Equal(t, "Id *", ContentString(subs, v))

	w := subs.FreshFlex()
	fn := subs.ToVar(TopLevel, TFunc{
		Args: []Type{TAlias{Name: "Id", Args: []TAliasArg{{Name: "x", Type: TVar{w}}}, Actual: TVar{w}}},
		Ret:  TVar{w},
	})
	NameAllTypeVars(subs, fn)
	assert.Equal(t, "Id a -> a", ContentString(subs, fn))
}

func TestVarNames(t *testing.T) {
	assert.Equal(t, "a", getVarName(0))
	assert.Equal(t, "z", getVarName(25))
	assert.Equal(t, "a1", getVarName(26))
	assert.Equal(t, "b1", getVarName(27))
	assert.Equal(t, "c10", getVarName(262))
}
