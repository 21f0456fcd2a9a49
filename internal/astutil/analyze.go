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
	"slices"

	"github.com/hashicorp/go-set/v2"

	"github.com/wdamron/uniq/ast"
	"github.com/wdamron/uniq/internal/util"
)

// Dependency analysis for the definitions of one Defs expression, borrowed from Haskell.
// https://prime.haskell.org/wiki/RelaxedDependencyAnalysis
//
//   In Haskell 98, a group of bindings is sorted into strongly-connected components, and then type-checked
//   in dependency order (H98 s4.5.1).
//
// DefGroup is one strongly-connected group of definitions.
type DefGroup struct {
	Defs      []int // indices into the definitions, in source order
	Recursive bool
}

// GroupDefs sorts defs into groups of mutually-recursive definitions, with every group
// following the groups it depends on.
func GroupDefs(defs []ast.Def) []DefGroup {
	owner := make(map[string]int, len(defs))
	for i, def := range defs {
		for _, symbol := range ast.Symbols(def.Pattern) {
			owner[symbol] = i
		}
	}
	g := util.NewGraph(len(defs))
	for i, def := range defs {
		for _, name := range FreeVars(def.Expr) {
			if dep, ok := owner[name]; ok {
				g.AddEdge(dep, i)
			}
		}
	}
	comps := g.Components()
	groups := make([]DefGroup, len(comps))
	for i, c := range comps {
		groups[i] = DefGroup{Defs: c.Verts, Recursive: c.Cyclic}
	}
	return groups
}

// FreeVars returns the sorted names referenced by e which are not bound within e.
func FreeVars(e ast.Expr) []string {
	a := freeVars{bound: make(map[string]int), free: set.New[string](8)}
	a.expr(e)
	names := a.free.Slice()
	slices.Sort(names)
	return names
}

type freeVars struct {
	bound map[string]int
	free  *set.Set[string]
}

func (a *freeVars) ref(name string) {
	if a.bound[name] == 0 {
		a.free.Insert(name)
	}
}

func (a *freeVars) bind(names []string) {
	for _, name := range names {
		a.bound[name]++
	}
}

func (a *freeVars) unbind(names []string) {
	for _, name := range names {
		a.bound[name]--
	}
}

func (a *freeVars) expr(e ast.Expr) {
	switch e := e.(type) {
	case *ast.Int, *ast.Float, *ast.Str, *ast.EmptyRecord, *ast.Accessor:

	case *ast.Var:
		a.ref(e.Name)

	case *ast.List:
		for _, elem := range e.Elems {
			a.expr(elem)
		}

	case *ast.Call:
		a.expr(e.Func)
		for _, arg := range e.Args {
			a.expr(arg)
		}

	case *ast.Closure:
		var names []string
		for _, arg := range e.Args {
			names = append(names, ast.Symbols(arg)...)
		}
		a.bind(names)
		a.expr(e.Body)
		a.unbind(names)

	case *ast.Defs:
		var names []string
		for _, def := range e.Defs {
			names = append(names, ast.Symbols(def.Pattern)...)
		}
		a.bind(names)
		for _, def := range e.Defs {
			a.expr(def.Expr)
		}
		a.expr(e.Body)
		a.unbind(names)

	case *ast.When:
		a.expr(e.Cond)
		for _, branch := range e.Branches {
			names := ast.Symbols(branch.Pattern)
			a.bind(names)
			if branch.Guard != nil {
				a.expr(branch.Guard)
			}
			a.expr(branch.Body)
			a.unbind(names)
		}

	case *ast.If:
		for _, branch := range e.Branches {
			a.expr(branch.Cond)
			a.expr(branch.Then)
		}
		a.expr(e.Else)

	case *ast.Record:
		for _, field := range e.Fields {
			a.expr(field.Value)
		}

	case *ast.Access:
		a.expr(e.Record)

	case *ast.Update:
		a.ref(e.Symbol)
		for _, field := range e.Updates {
			a.expr(field.Value)
		}

	case *ast.Tag:
		for _, arg := range e.Args {
			a.expr(arg)
		}

	default:
		panic("unexpected expression " + e.ExprName())
	}
}
