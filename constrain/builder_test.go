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

package constrain

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/require"

	"github.com/wdamron/uniq/ast"
	. "github.com/wdamron/uniq/construct"
	"github.com/wdamron/uniq/sharing"
	"github.com/wdamron/uniq/types"
)

func wellScoped(t *testing.T, e ast.Expr) (types.Constraint, types.Variable) {
	t.Helper()
	subs := types.NewSubs()
	c, root := Constrain(subs, e)
	require.Empty(t, CheckVariableUsage(c), "undeclared variables in:\n%s", spew.Sdump(c))
	return c, root
}

func TestConstraintsAreWellScoped(t *testing.T) {
	exprs := []ast.Expr{
		Int(1),
		List(List(), List(List())),
		Lambda([]string{"f", "x"}, Call(Var("f"), Var("x"))),
		Defs([]ast.Def{
			Def("identity", Lambda([]string{"a"}, Var("a"))),
			Def("x", Call(Var("identity"), Int(1))),
			Def("y", Call(Var("identity"), Str("y"))),
		}, Var("identity")),
		Lambda([]string{"r"}, Update("r", Field("x", Access(Var("r"), "x")), Field("y", Access(Var("r"), "x")))),
		Closure1(PRecord("left", "right"), Record(Field("left", Var("left")), Field("right", Var("right")))),
		Lambda([]string{"x"}, When(Var("x"),
			Branch(PTag("True"), Int(1)),
			GuardedBranch(PTag("Foo", Ident("y")), Tag("True"), Var("y")),
			Branch(Underscore(), Int(0)))),
		If(Tag("True"), Accessor("left"), Accessor("right")),
		Defs([]ast.Def{
			AnnotatedDef("numIdentity", TFunc1(TApply(types.NumName, TVar("a")), TApply(types.NumName, TVar("a"))),
				Lambda([]string{"x"}, Var("x"))),
		}, Var("numIdentity")),
	}
	for _, e := range exprs {
		wellScoped(t, e)
	}
}

func TestCheckVariableUsageReportsUndeclared(t *testing.T) {
	subs := types.NewSubs()
	a, b := subs.FreshFlex(), subs.FreshFlex()
	c := types.And{
		types.Eq{Type: types.TVar{Var: a}, Expected: types.Int()},
		&types.Let{Flex: []types.Variable{b}, Defs: types.True{}, Body: types.Lookup{Symbol: "x", Expected: types.TVar{Var: b}}},
		types.Eq{Type: types.TVar{Var: b}, Expected: types.TVar{Var: a}},
	}
	require.Equal(t, []types.Variable{a, b}, CheckVariableUsage(c))
	require.Equal(t, []types.Variable{b}, CheckVariableUsage(c, a))
}

func TestRootIsIntroducedByOutermostLet(t *testing.T) {
	c, root := wellScoped(t, Int(4))
	let, ok := c.(*types.Let)
	require.True(t, ok)
	require.Contains(t, let.Flex, root)
	require.False(t, let.Generalize)
}

func TestSharedLookupFixesAttribute(t *testing.T) {
	subs := types.NewSubs()
	usage := sharing.NewVarUsage()
	usage.RegisterShared("f")
	b := NewBuilder(subs, usage)
	b.push()
	expected := types.TVar{Var: b.fresh()}

	c := b.Expr(Var("f"), expected)
	and, ok := c.(types.And)
	require.True(t, ok, spew.Sdump(c))
	require.Len(t, and, 2)
	require.Equal(t, types.Lookup{Symbol: "f", Expected: expected}, and[0])
	eq := and[1].(types.Eq)
	attr := eq.Type.(types.TApply)
	require.Equal(t, types.AttrName, attr.Name)
	require.Equal(t, types.SharedAttr(), attr.Args[0])
}

func TestUniqueLookupIsUnconstrained(t *testing.T) {
	subs := types.NewSubs()
	usage := sharing.NewVarUsage()
	usage.RegisterUnique("f")
	b := NewBuilder(subs, usage)
	expected := types.TVar{Var: b.fresh()}
	require.Equal(t, types.Lookup{Symbol: "f", Expected: expected}, b.Expr(Var("f"), expected))
}

func TestAccessLookupDescribesFields(t *testing.T) {
	subs := types.NewSubs()
	usage := sharing.NewVarUsage()
	usage.Sequential("r", []string{"x"})
	usage.Sequential("r", []string{"x"})
	usage.Sequential("r", []string{"y", "z"})
	b := NewBuilder(subs, usage)
	expected := types.TVar{Var: b.fresh()}

	and := b.Expr(Var("r"), expected).(types.And)
	record := and[1].(types.Eq).Type.(types.TApply).Args[1].(types.TRecord)
	require.Len(t, record.Fields, 2)
	require.Equal(t, "x", record.Fields[0].Name)
	require.Equal(t, types.SharedAttr(), record.Fields[0].Type.(types.TApply).Args[0])

	y := record.Fields[1].Type.(types.TApply)
	_, flexible := y.Args[0].(types.TVar)
	require.True(t, flexible)
	nested := y.Args[1].(types.TRecord)
	require.Equal(t, "z", nested.Fields[0].Name)
	_, open := nested.Ext.(types.TVar)
	require.True(t, open)
}

func TestDefsNestInDependencyOrder(t *testing.T) {
	c, _ := wellScoped(t, Defs([]ast.Def{
		Def("a", Var("b")),
		Def("b", Int(1)),
	}, Var("a")))

	outer := c.(*types.Let)
	first, ok := outer.Body.(*types.Let)
	require.True(t, ok, spew.Sdump(outer.Body))
	require.True(t, first.Generalize)
	require.Equal(t, "b", first.Headers[0].Symbol)
	second := first.Body.(*types.Let)
	require.Equal(t, "a", second.Headers[0].Symbol)
	require.False(t, second.Recursive)
}

func TestRecursiveDefs(t *testing.T) {
	c, _ := wellScoped(t, Defs([]ast.Def{
		Def("f", Lambda([]string{"n"}, Call(Var("f"), Var("n")))),
	}, Var("f")))
	let := c.(*types.Let).Body.(*types.Let)
	require.True(t, let.Recursive)
	require.True(t, let.Generalize)
}

func TestAnnotationRigidVars(t *testing.T) {
	subs := types.NewSubs()
	c, _ := Constrain(subs, Defs([]ast.Def{
		AnnotatedDef("pair", TFunc([]ast.Annotation{TVar("a"), TVar("b")}, TVar("a")),
			Lambda([]string{"x", "y"}, Var("x"))),
	}, Var("pair")))
	let := c.(*types.Let).Body.(*types.Let)
	require.Len(t, let.Rigid, 2)
	require.Equal(t, types.RigidVar{Name: "a"}, subs.Content(let.Rigid[0]))
	require.Equal(t, types.RigidVar{Name: "b"}, subs.Content(let.Rigid[1]))
	require.Empty(t, CheckVariableUsage(c))
}
