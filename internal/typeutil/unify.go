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

type mismatch struct {
	kind types.ProblemKind
}

// Unify a and b. A failed unification is recorded as a Problem describing both sides,
// and both sides are replaced with Error content. Unify reports whether unification succeeded.
func (ctx *CommonContext) Unify(a, b types.Variable) bool {
	mismatches := ctx.unify(a, b)
	if len(mismatches) == 0 {
		return true
	}
	kind := types.TypeMismatch
	for _, m := range mismatches {
		if m.kind == types.CircularType {
			kind = types.CircularType
			break
		}
	}
	problem := types.Problem{
		Kind:  kind,
		Left:  types.ContentString(ctx.Subs, a),
		Right: types.ContentString(ctx.Subs, b),
	}
	ctx.Problems = append(ctx.Problems, problem)
	if ctx.Logger != nil {
		ctx.Logger.Debug("unification failed", "kind", kind.String(), "left", problem.Left, "right", problem.Right)
	}
	ctx.merge(a, b, types.Error{})
	return false
}

// See "Efficient Generalization with Levels" (Oleg Kiselyov)
// http://okmij.org/ftp/ML/generalization.html#levels
//
// This implementation follows the sound_eager algorithm.
func (ctx *CommonContext) occursAdjustLevels(root types.Variable, level int, t types.Variable, visited *set.Set[types.Variable]) bool {
	t = ctx.Subs.Root(t)
	if t == root {
		return true
	}
	if !visited.Insert(t) {
		return false
	}
	desc := ctx.Subs.Get(t)
	if desc.Level > level && desc.Level != types.GenericLevel {
		ctx.Subs.SetLevel(t, level)
	}
	occurs := false
	types.Children(desc.Content, func(child types.Variable) {
		occurs = occurs || ctx.occursAdjustLevels(root, level, child, visited)
	})
	return occurs
}

func (ctx *CommonContext) occurs(v types.Variable, level int, in types.Variable) bool {
	return ctx.occursAdjustLevels(ctx.Subs.Root(v), level, in, set.New[types.Variable](8))
}

func minLevel(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func (ctx *CommonContext) merge(a, b types.Variable, content types.Content) {
	level := minLevel(ctx.Subs.Level(a), ctx.Subs.Level(b))
	ctx.Subs.Union(a, b, types.Descriptor{Content: content, Level: level})
}

func (ctx *CommonContext) fresh(level int, content types.Content) types.Variable {
	return ctx.Subs.FreshAt(content, level)
}

func (ctx *CommonContext) unify(a, b types.Variable) []mismatch {
	if ctx.Subs.Equivalent(a, b) {
		return nil
	}
	ca, cb := ctx.Subs.Content(a), ctx.Subs.Content(b)

	switch ca := ca.(type) {
	case types.FlexVar:
		return ctx.unifyFlex(a, b, ca, cb)

	case types.Error:
		ctx.merge(a, b, types.Error{})
		return nil

	case types.RigidVar:
		switch cb.(type) {
		case types.FlexVar:
			return ctx.unify(b, a)
		case types.Error:
			ctx.merge(a, b, types.Error{})
			return nil
		}
		return []mismatch{{types.TypeMismatch}}

	case types.Alias:
		switch cb := cb.(type) {
		case types.FlexVar, types.Error:
			return ctx.unify(b, a)
		case types.RigidVar:
			return []mismatch{{types.TypeMismatch}}
		case types.Alias:
			if ca.Name == cb.Name && len(ca.Args) == len(cb.Args) {
				var ms []mismatch
				for i := range ca.Args {
					ms = append(ms, ctx.unify(ca.Args[i].Var, cb.Args[i].Var)...)
				}
				if len(ms) == 0 {
					ctx.merge(a, b, ca)
				}
				return ms
			}
			return ctx.unify(ca.Real, cb.Real)
		}
		// the alias keeps its own variable; only its underlying type is unified
		return ctx.unify(ca.Real, b)

	case types.Structure:
		switch cb := cb.(type) {
		case types.FlexVar, types.Error, types.Alias:
			return ctx.unify(b, a)
		case types.RigidVar:
			return []mismatch{{types.TypeMismatch}}
		case types.Structure:
			return ctx.unifyFlat(a, b, ca.Flat, cb.Flat)
		}
	}
	return []mismatch{{types.TypeMismatch}}
}

func (ctx *CommonContext) unifyFlex(a, b types.Variable, ca types.FlexVar, cb types.Content) []mismatch {
	switch cb := cb.(type) {
	case types.FlexVar:
		if ca.Name == "" {
			ca = cb
		}
		ctx.merge(a, b, ca)
		return nil
	case types.Error:
		ctx.merge(a, b, cb)
		return nil
	}
	if ctx.occurs(a, ctx.Subs.Level(a), b) {
		return []mismatch{{types.CircularType}}
	}
	ctx.merge(a, b, cb)
	return nil
}

func (ctx *CommonContext) unifyVars(as, bs []types.Variable) []mismatch {
	if len(as) != len(bs) {
		return []mismatch{{types.TypeMismatch}}
	}
	var ms []mismatch
	for i := range as {
		ms = append(ms, ctx.unify(as[i], bs[i])...)
	}
	return ms
}

func (ctx *CommonContext) unifyFlat(a, b types.Variable, fa, fb types.FlatType) []mismatch {
	switch fa := fa.(type) {
	case types.Apply:
		if fb, ok := fb.(types.Apply); ok && fa.Name == fb.Name {
			ms := ctx.unifyVars(fa.Args, fb.Args)
			if len(ms) == 0 {
				ctx.merge(a, b, types.Structure{Flat: fa})
			}
			return ms
		}

	case types.Func:
		if fb, ok := fb.(types.Func); ok {
			ms := ctx.unifyVars(fa.Args, fb.Args)
			ms = append(ms, ctx.unify(fa.Ret, fb.Ret)...)
			if len(ms) == 0 {
				ctx.merge(a, b, types.Structure{Flat: fa})
			}
			return ms
		}

	case types.EmptyRecord:
		switch fb := fb.(type) {
		case types.EmptyRecord:
			ctx.merge(a, b, types.Structure{Flat: fa})
			return nil
		case types.Record:
			return ctx.unifyEmptyRecord(a, b, fb)
		}

	case types.Record:
		switch fb := fb.(type) {
		case types.EmptyRecord:
			return ctx.unifyEmptyRecord(b, a, fa)
		case types.Record:
			return ctx.unifyRecords(a, b, fa, fb)
		}

	case types.EmptyTagUnion:
		switch fb := fb.(type) {
		case types.EmptyTagUnion:
			ctx.merge(a, b, types.Structure{Flat: fa})
			return nil
		case types.TagUnion:
			return ctx.unifyEmptyTagUnion(a, b, fb)
		}

	case types.TagUnion:
		switch fb := fb.(type) {
		case types.EmptyTagUnion:
			return ctx.unifyEmptyTagUnion(b, a, fa)
		case types.TagUnion:
			return ctx.unifyTagUnions(a, b, fa, fb)
		}
	}
	return []mismatch{{types.TypeMismatch}}
}

func (ctx *CommonContext) unifyEmptyRecord(empty, b types.Variable, rec types.Record) []mismatch {
	fields, ext := types.GatherFields(ctx.Subs, rec)
	if fields.Len() > 0 {
		return []mismatch{{types.TypeMismatch}}
	}
	ms := ctx.unify(ext, empty)
	if len(ms) == 0 {
		ctx.merge(empty, b, types.Structure{Flat: types.EmptyRecord{}})
	}
	return ms
}

func (ctx *CommonContext) unifyEmptyTagUnion(empty, b types.Variable, union types.TagUnion) []mismatch {
	tags, ext := types.GatherTags(ctx.Subs, union)
	if tags.Len() > 0 {
		return []mismatch{{types.TypeMismatch}}
	}
	ms := ctx.unify(ext, empty)
	if len(ms) == 0 {
		ctx.merge(empty, b, types.Structure{Flat: types.EmptyTagUnion{}})
	}
	return ms
}

// Fields present on only one side are moved into the other side's extension:
//
//	{ a : x }r1 ~ { b : y }r2  ==>  r1 ~ { b : y }r, r2 ~ { a : x }r
func (ctx *CommonContext) unifyRecords(a, b types.Variable, ra, rb types.Record) []mismatch {
	fieldsA, extA := types.GatherFields(ctx.Subs, ra)
	fieldsB, extB := types.GatherFields(ctx.Subs, rb)

	var ms []mismatch
	onlyA, onlyB := types.NewFieldMapBuilder(), types.NewFieldMapBuilder()
	fieldsA.Range(func(name string, va types.Variable) bool {
		if vb, ok := fieldsB.Get(name); ok {
			ms = append(ms, ctx.unify(va, vb)...)
		} else {
			onlyA.Set(name, va)
		}
		return true
	})
	fieldsB.Range(func(name string, vb types.Variable) bool {
		if _, ok := fieldsA.Get(name); !ok {
			onlyB.Set(name, vb)
		}
		return true
	})

	level := minLevel(ctx.Subs.Level(a), ctx.Subs.Level(b))
	ext := extA
	switch za, zb := onlyA.Len() == 0, onlyB.Len() == 0; {
	case za && zb: // all fields match
		ms = append(ms, ctx.unify(extA, extB)...)
	case za: // fields missing in a
		sub := ctx.fresh(level, types.Structure{Flat: types.Record{Fields: onlyB.Build(), Ext: extB}})
		ms = append(ms, ctx.unify(extA, sub)...)
		ext = extB
	case zb: // fields missing in b
		sub := ctx.fresh(level, types.Structure{Flat: types.Record{Fields: onlyA.Build(), Ext: extA}})
		ms = append(ms, ctx.unify(extB, sub)...)
	default: // fields missing in both
		ext = ctx.fresh(level, types.FlexVar{})
		subA := ctx.fresh(level, types.Structure{Flat: types.Record{Fields: onlyA.Build(), Ext: ext}})
		subB := ctx.fresh(level, types.Structure{Flat: types.Record{Fields: onlyB.Build(), Ext: ext}})
		ms = append(ms, ctx.unify(extA, subB)...)
		ms = append(ms, ctx.unify(extB, subA)...)
	}
	if len(ms) == 0 {
		merged := fieldsA.Builder().Merge(fieldsB).Build()
		ctx.merge(a, b, types.Structure{Flat: types.Record{Fields: merged, Ext: ext}})
	}
	return ms
}

// Tags present on only one side are moved into the other side's extension.
func (ctx *CommonContext) unifyTagUnions(a, b types.Variable, ua, ub types.TagUnion) []mismatch {
	tagsA, extA := types.GatherTags(ctx.Subs, ua)
	tagsB, extB := types.GatherTags(ctx.Subs, ub)

	var ms []mismatch
	onlyA, onlyB := types.NewTagMapBuilder(), types.NewTagMapBuilder()
	tagsA.Range(func(name string, argsA []types.Variable) bool {
		if argsB, ok := tagsB.Get(name); ok {
			ms = append(ms, ctx.unifyVars(argsA, argsB)...)
		} else {
			onlyA.Set(name, argsA)
		}
		return true
	})
	tagsB.Range(func(name string, argsB []types.Variable) bool {
		if _, ok := tagsA.Get(name); !ok {
			onlyB.Set(name, argsB)
		}
		return true
	})

	level := minLevel(ctx.Subs.Level(a), ctx.Subs.Level(b))
	ext := extA
	switch za, zb := onlyA.Len() == 0, onlyB.Len() == 0; {
	case za && zb: // all tags match
		ms = append(ms, ctx.unify(extA, extB)...)
	case za: // tags missing in a
		sub := ctx.fresh(level, types.Structure{Flat: types.TagUnion{Tags: onlyB.Build(), Ext: extB}})
		ms = append(ms, ctx.unify(extA, sub)...)
		ext = extB
	case zb: // tags missing in b
		sub := ctx.fresh(level, types.Structure{Flat: types.TagUnion{Tags: onlyA.Build(), Ext: extA}})
		ms = append(ms, ctx.unify(extB, sub)...)
	default: // tags missing in both
		ext = ctx.fresh(level, types.FlexVar{})
		subA := ctx.fresh(level, types.Structure{Flat: types.TagUnion{Tags: onlyA.Build(), Ext: ext}})
		subB := ctx.fresh(level, types.Structure{Flat: types.TagUnion{Tags: onlyB.Build(), Ext: ext}})
		ms = append(ms, ctx.unify(extA, subB)...)
		ms = append(ms, ctx.unify(extB, subA)...)
	}
	if len(ms) == 0 {
		merged := tagsA.Builder().Merge(tagsB).Build()
		ctx.merge(a, b, types.Structure{Flat: types.TagUnion{Tags: merged, Ext: ext}})
	}
	return ms
}
