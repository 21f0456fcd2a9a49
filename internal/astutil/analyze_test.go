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

package astutil

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wdamron/uniq/ast"
	. "github.com/wdamron/uniq/construct"
)

func TestFreeVars(t *testing.T) {
	var e ast.Expr = Lambda([]string{"x"}, Call(Var("f"), Var("x"), Var("y")))
	require.Equal(t, []string{"f", "y"}, FreeVars(e))

	e = When(Var("c"),
		Branch(PTag("Foo", Ident("a")), Call(Var("a"), Var("b"))),
		Branch(Underscore(), Var("a")))
	require.Equal(t, []string{"a", "b", "c"}, FreeVars(e))

	e = Defs([]ast.Def{Def("g", Lambda([]string{"n"}, Call(Var("g"), Var("n"))))}, Update("r", Field("x", Var("g"))))
	require.Equal(t, []string{"r"}, FreeVars(e))
}

func TestGroupDefsOrder(t *testing.T) {
	defs := []ast.Def{
		Def("a", Var("b")),
		Def("b", Var("c")),
		Def("c", Int(1)),
	}
	groups := GroupDefs(defs)
	require.Equal(t, []DefGroup{
		{Defs: []int{2}},
		{Defs: []int{1}},
		{Defs: []int{0}},
	}, groups)
}

func TestGroupDefsRecursive(t *testing.T) {
	defs := []ast.Def{
		Def("isEven", Lambda([]string{"n"}, Call(Var("isOdd"), Var("n")))),
		Def("isOdd", Lambda([]string{"n"}, Call(Var("isEven"), Var("n")))),
		Def("fact", Lambda([]string{"n"}, Call(Var("fact"), Var("n")))),
		Def("x", Call(Var("isEven"), Int(0))),
	}
	groups := GroupDefs(defs)
	require.Len(t, groups, 3)

	pos := make(map[int]int)
	for i, g := range groups {
		for _, d := range g.Defs {
			pos[d] = i
		}
	}
	require.Equal(t, pos[0], pos[1])
	require.Less(t, pos[0], pos[3])
	require.Equal(t, []int{0, 1}, groups[pos[0]].Defs)
	require.True(t, groups[pos[0]].Recursive)
	require.True(t, groups[pos[2]].Recursive)
	require.False(t, groups[pos[3]].Recursive)
}

func TestGroupDefsShadowing(t *testing.T) {
	// b's closure argument shadows a
	defs := []ast.Def{
		Def("b", Lambda([]string{"a"}, Var("a"))),
		Def("a", Int(1)),
	}
	groups := GroupDefs(defs)
	require.Equal(t, []DefGroup{{Defs: []int{0}}, {Defs: []int{1}}}, groups)
}
