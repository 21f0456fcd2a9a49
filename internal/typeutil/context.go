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
	"log/slog"

	"github.com/wdamron/uniq/types"
)

// Env is a scoped mapping from symbols to variables.
type Env interface {
	Lookup(name string) (types.Variable, bool)
	Assign(name string, v types.Variable)
	Remove(name string)
}

type StashedVar struct {
	Name  string
	Var   types.Variable
	Bound bool
}

// CommonContext holds the state shared by the solver and the unifier.
type CommonContext struct {
	Subs       *types.Subs
	EnvStash   []StashedVar                      // shadowed symbols
	InstLookup map[types.Variable]types.Variable // instantiation lookup for generic variables
	Problems   []types.Problem
	Logger     *slog.Logger

	// initial space:
	_envStash [32]StashedVar
}

func (ctx *CommonContext) Init(subs *types.Subs, logger *slog.Logger) {
	ctx.Subs, ctx.Logger = subs, logger
	ctx.EnvStash, ctx.InstLookup, ctx.Problems = ctx._envStash[:0], make(map[types.Variable]types.Variable, 16), nil
}

func (ctx *CommonContext) Reset() {
	for i := range ctx._envStash {
		ctx._envStash[i] = StashedVar{}
	}
	ctx.Subs, ctx.EnvStash, ctx.Problems = nil, ctx._envStash[:0], nil
	ctx.ClearInstantiationLookup()
}

func (ctx *CommonContext) ClearInstantiationLookup() {
	for k := range ctx.InstLookup {
		delete(ctx.InstLookup, k)
	}
}

// Stash records the current binding of name so it can be restored after a scope ends.
// Stash returns the number of stashed entries.
func (ctx *CommonContext) Stash(env Env, name string) int {
	existing, ok := env.Lookup(name)
	ctx.EnvStash = append(ctx.EnvStash, StashedVar{Name: name, Var: existing, Bound: ok})
	return 1
}

// Unstash restores the count most-recently stashed bindings.
func (ctx *CommonContext) Unstash(env Env, count int) {
	if count <= 0 {
		return
	}
	stash := ctx.EnvStash
	unstashed := 0
	for i := len(stash) - 1; unstashed < count && i >= 0; i, unstashed = i-1, unstashed+1 {
		if stash[i].Bound {
			env.Assign(stash[i].Name, stash[i].Var)
		} else {
			env.Remove(stash[i].Name)
		}
	}
	ctx.EnvStash = ctx.EnvStash[0 : len(stash)-unstashed]
}
