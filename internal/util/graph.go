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

package util

import "slices"

// Graph is a directed graph over vertices 0..n-1, stored as adjacency lists.
type Graph [][]int

func NewGraph(numVerts int) Graph { return Graph(make([][]int, numVerts)) }

func (g Graph) AddEdge(from, to int) {
	if !g.HasEdge(from, to) {
		g[from] = append(g[from], to)
	}
}

func (g Graph) HasEdge(from, to int) bool { return slices.Contains(g[from], to) }

// Component is a strongly-connected component. Cyclic is set when the component
// has more than one vertex or a vertex with an edge to itself.
type Component struct {
	Verts  []int
	Cyclic bool
}

// Components returns the strongly-connected components of g in topological order:
// for every edge u -> v between distinct components, u's component comes first.
// Vertices within a component are sorted.
func (g Graph) Components() []Component {
	sccs := g.SCC()
	comps := make([]Component, len(sccs))
	for i, verts := range sccs {
		slices.Sort(verts)
		comps[i] = Component{Verts: verts, Cyclic: len(verts) > 1 || g.HasEdge(verts[0], verts[0])}
	}
	return comps
}

// SCC returns the strongly-connected components of g in topological order.
func (g Graph) SCC() [][]int {
	t := tarjan{
		g:       g,
		index:   make([]int, len(g)),
		lowLink: make([]int, len(g)),
		onStack: make([]bool, len(g)),
	}
	// Roots are visited last-first so that independent components keep vertex order.
	for v := len(g) - 1; v >= 0; v-- {
		if t.index[v] == 0 {
			t.visit(v)
		}
	}
	// Tarjan emits sinks first:
	slices.Reverse(t.sccs)
	return t.sccs
}

// Tarjan's SCC algorithm, based on https://github.com/gonum/gonum/blob/master/graph/topo/tarjan.go
type tarjan struct {
	g       Graph
	next    int
	index   []int
	lowLink []int
	onStack []bool
	stack   []int
	sccs    [][]int
}

func (t *tarjan) visit(v int) {
	t.next++
	t.index[v], t.lowLink[v] = t.next, t.next
	t.stack = append(t.stack, v)
	t.onStack[v] = true

	for _, succ := range t.g[v] {
		switch {
		case t.index[succ] == 0:
			t.visit(succ)
			t.lowLink[v] = min(t.lowLink[v], t.lowLink[succ])
		case t.onStack[succ]:
			t.lowLink[v] = min(t.lowLink[v], t.index[succ])
		}
	}

	if t.lowLink[v] != t.index[v] {
		return
	}
	var c []int
	for {
		top := t.stack[len(t.stack)-1]
		t.stack = t.stack[:len(t.stack)-1]
		t.onStack[top] = false
		c = append(c, top)
		if top == v {
			break
		}
	}
	t.sccs = append(t.sccs, c)
}
