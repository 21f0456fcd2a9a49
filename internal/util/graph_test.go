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

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestComponentsTopologicalOrder(t *testing.T) {
	// 0 -> 1 -> 2 -> 1, 3 isolated, 3 -> 3
	g := NewGraph(4)
	g.AddEdge(0, 1)
	g.AddEdge(1, 2)
	g.AddEdge(2, 1)
	g.AddEdge(3, 3)
	g.AddEdge(0, 1)
	require.Len(t, g[0], 1)

	comps := g.Components()
	require.Len(t, comps, 3)

	pos := make(map[int]int)
	for i, c := range comps {
		for _, v := range c.Verts {
			pos[v] = i
		}
	}
	require.Less(t, pos[0], pos[1])
	require.Equal(t, pos[1], pos[2])

	require.Equal(t, []int{1, 2}, comps[pos[1]].Verts)
	require.True(t, comps[pos[1]].Cyclic)
	require.False(t, comps[pos[0]].Cyclic)
	require.True(t, comps[pos[3]].Cyclic)
}

func TestSCCChain(t *testing.T) {
	g := NewGraph(3)
	g.AddEdge(2, 1)
	g.AddEdge(1, 0)
	require.Equal(t, [][]int{{2}, {1}, {0}}, g.SCC())
}
