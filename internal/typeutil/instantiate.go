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
	"github.com/wdamron/uniq/types"
)

// Instantiate copies the generic parts of v's type, replacing each generic variable with a
// fresh flexible variable at level. Parts of the type without generic variables are shared.
func (ctx *CommonContext) Instantiate(level int, v types.Variable) types.Variable {
	v = ctx.visitInstantiate(level, v)
	ctx.ClearInstantiationLookup()
	return v
}

func (ctx *CommonContext) visitInstantiate(level int, v types.Variable) types.Variable {
	root := ctx.Subs.Root(v)
	if inst, ok := ctx.InstLookup[root]; ok {
		return inst
	}
	desc := ctx.Subs.Get(root)
	inst := root
	switch c := desc.Content.(type) {
	case types.FlexVar, types.RigidVar:
		if desc.Level == types.GenericLevel {
			inst = ctx.Subs.FreshAt(types.FlexVar{}, level)
		}

	case types.Structure:
		if flat, changed := ctx.instantiateFlat(level, c.Flat); changed {
			inst = ctx.Subs.FreshAt(types.Structure{Flat: flat}, level)
		}

	case types.Alias:
		changed := false
		args := make([]types.AliasArg, len(c.Args))
		for i, arg := range c.Args {
			args[i] = types.AliasArg{Name: arg.Name, Var: ctx.visitInstantiate(level, arg.Var)}
			changed = changed || args[i].Var != ctx.Subs.Root(arg.Var)
		}
		real := ctx.visitInstantiate(level, c.Real)
		if changed || real != ctx.Subs.Root(c.Real) {
			inst = ctx.Subs.FreshAt(types.Alias{Name: c.Name, Args: args, Real: real}, level)
		}

	case types.Error:
	}
	ctx.InstLookup[root] = inst
	return inst
}

func (ctx *CommonContext) instantiateVars(level int, vs []types.Variable) ([]types.Variable, bool) {
	changed := false
	out := make([]types.Variable, len(vs))
	for i, v := range vs {
		out[i] = ctx.visitInstantiate(level, v)
		changed = changed || out[i] != ctx.Subs.Root(v)
	}
	return out, changed
}

func (ctx *CommonContext) instantiateFlat(level int, flat types.FlatType) (types.FlatType, bool) {
	switch flat := flat.(type) {
	case types.Apply:
		args, changed := ctx.instantiateVars(level, flat.Args)
		return types.Apply{Name: flat.Name, Args: args}, changed

	case types.Func:
		args, changed := ctx.instantiateVars(level, flat.Args)
		ret := ctx.visitInstantiate(level, flat.Ret)
		return types.Func{Args: args, Ret: ret}, changed || ret != ctx.Subs.Root(flat.Ret)

	case types.Record:
		changed := false
		b := types.NewFieldMapBuilder()
		flat.Fields.Range(func(name string, v types.Variable) bool {
			inst := ctx.visitInstantiate(level, v)
			changed = changed || inst != ctx.Subs.Root(v)
			b.Set(name, inst)
			return true
		})
		ext := ctx.visitInstantiate(level, flat.Ext)
		return types.Record{Fields: b.Build(), Ext: ext}, changed || ext != ctx.Subs.Root(flat.Ext)

	case types.TagUnion:
		changed := false
		b := types.NewTagMapBuilder()
		flat.Tags.Range(func(name string, args []types.Variable) bool {
			insts, argsChanged := ctx.instantiateVars(level, args)
			changed = changed || argsChanged
			b.Set(name, insts)
			return true
		})
		ext := ctx.visitInstantiate(level, flat.Ext)
		return types.TagUnion{Tags: b.Build(), Ext: ext}, changed || ext != ctx.Subs.Root(flat.Ext)
	}
	// EmptyRecord, EmptyTagUnion
	return flat, false
}
