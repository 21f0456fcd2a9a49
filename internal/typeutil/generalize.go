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

package typeutil

import (
	"github.com/hashicorp/go-set/v2"

	"github.com/wdamron/uniq/types"
)

// See "Efficient Generalization with Levels" (Oleg Kiselyov)
// http://okmij.org/ftp/ML/generalization.html#levels
//
// Generalize marks each unbound variable reachable from v, whose binding-level is deeper
// than level, as generic. The number of generalized variables is returned.
func (ctx *CommonContext) Generalize(level int, v types.Variable) int {
	visited := set.New[types.Variable](16)
	return ctx.visitGeneralize(level, v, visited)
}

func (ctx *CommonContext) visitGeneralize(level int, v types.Variable, visited *set.Set[types.Variable]) int {
	root := ctx.Subs.Root(v)
	if !visited.Insert(root) {
		return 0
	}
	desc := ctx.Subs.Get(root)
	switch desc.Content.(type) {
	case types.FlexVar, types.RigidVar:
		if desc.Level > level && desc.Level != types.GenericLevel {
			ctx.Subs.SetLevel(root, types.GenericLevel)
			return 1
		}
		return 0
	}
	n := 0
	types.Children(desc.Content, func(child types.Variable) {
		n += ctx.visitGeneralize(level, child, visited)
	})
	return n
}
