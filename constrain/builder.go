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

// Package constrain builds the type and attribute constraints of an expression.
//
// Every value type is wrapped as `Attr.Attr u t`. The attribute u of a variable
// occurrence is constrained by the usage of the variable:
// Shared usages fix the attribute to `Attr.Shared`; field reads and record updates
// describe the record through the fields which were used.
package constrain

import (
	"github.com/wdamron/uniq/ast"
	"github.com/wdamron/uniq/internal/astutil"
	"github.com/wdamron/uniq/sharing"
	"github.com/wdamron/uniq/types"
)

// Builder emits constraints over fresh variables in a substitution store.
type Builder struct {
	subs  *types.Subs
	usage *sharing.VarUsage
	// Variables allocated for each enclosing Let; the last entry collects new variables.
	scopes [][]types.Variable
}

// NewBuilder creates a builder which allocates variables in subs and constrains
// variable occurrences according to usage.
func NewBuilder(subs *types.Subs, usage *sharing.VarUsage) *Builder {
	return &Builder{subs: subs, usage: usage, scopes: make([][]types.Variable, 1, 8)}
}

// Constrain analyzes the usage of symbols in e and returns the constraint for e,
// along with the variable which holds the type of e once the constraint is solved.
// Every variable referenced by the constraint is introduced by a Let within it.
func Constrain(subs *types.Subs, e ast.Expr) (types.Constraint, types.Variable) {
	return NewBuilder(subs, sharing.Analyze(e)).Root(e)
}

// Root returns the constraint for e and the variable holding its type.
func (b *Builder) Root(e ast.Expr) (types.Constraint, types.Variable) {
	b.push()
	root := b.fresh()
	c := b.Expr(e, types.TVar{Var: root})
	return types.Exists(b.pop(), c), root
}

func (b *Builder) push() { b.scopes = append(b.scopes, nil) }

func (b *Builder) pop() []types.Variable {
	vars := b.scopes[len(b.scopes)-1]
	b.scopes = b.scopes[:len(b.scopes)-1]
	return vars
}

func (b *Builder) fresh() types.Variable {
	v := b.subs.FreshFlex()
	top := len(b.scopes) - 1
	b.scopes[top] = append(b.scopes[top], v)
	return v
}

func (b *Builder) freshType() types.Type { return types.TVar{Var: b.fresh()} }

// attributed wraps t with a fresh attribute.
func (b *Builder) attributed(t types.Type) types.Type { return types.Attributed(b.freshType(), t) }

// Expr returns the constraint that e has the expected type.
func (b *Builder) Expr(e ast.Expr, expected types.Type) types.Constraint {
	switch e := e.(type) {
	case *ast.Int:
		return types.Eq{Type: b.attributed(types.Int()), Expected: expected}

	case *ast.Float:
		return types.Eq{Type: b.attributed(types.Float()), Expected: expected}

	case *ast.Str:
		return types.Eq{Type: b.attributed(types.Str()), Expected: expected}

	case *ast.EmptyRecord:
		return types.Eq{Type: b.attributed(types.TEmptyRecord{}), Expected: expected}

	case *ast.List:
		elem := b.freshType()
		cs := make(types.And, 0, len(e.Elems)+1)
		for _, item := range e.Elems {
			cs = append(cs, b.Expr(item, elem))
		}
		return append(cs, types.Eq{Type: b.attributed(types.List(elem)), Expected: expected})

	case *ast.Var:
		return b.lookup(e.Name, expected)

	case *ast.Call:
		args := make([]types.Type, len(e.Args))
		for i := range e.Args {
			args[i] = b.freshType()
		}
		ret := b.freshType()
		cs := make(types.And, 0, len(e.Args)+2)
		cs = append(cs, b.Expr(e.Func, b.attributed(types.TFunc{Args: args, Ret: ret})))
		for i, arg := range e.Args {
			cs = append(cs, b.Expr(arg, args[i]))
		}
		return append(cs, types.Eq{Type: ret, Expected: expected})

	case *ast.Closure:
		return b.closure(e, expected)

	case *ast.Defs:
		return b.defs(e, expected)

	case *ast.When:
		return b.when(e, expected)

	case *ast.If:
		ret := b.freshType()
		cs := make(types.And, 0, 2*len(e.Branches)+2)
		for _, branch := range e.Branches {
			cs = append(cs, b.Expr(branch.Cond, b.attributed(types.Bool())))
			cs = append(cs, b.Expr(branch.Then, ret))
		}
		cs = append(cs, b.Expr(e.Else, ret))
		return append(cs, types.Eq{Type: ret, Expected: expected})

	case *ast.Record:
		fields := make([]types.Field, len(e.Fields))
		cs := make(types.And, 0, len(e.Fields)+1)
		for i, field := range e.Fields {
			fields[i] = types.Field{Name: field.Name, Type: b.freshType()}
			cs = append(cs, b.Expr(field.Value, fields[i].Type))
		}
		record := b.attributed(types.TRecord{Fields: fields, Ext: types.TEmptyRecord{}})
		return append(cs, types.Eq{Type: record, Expected: expected})

	case *ast.Access:
		field := types.Attributed(b.freshType(), b.freshType())
		record := b.attributed(types.TRecord{
			Fields: []types.Field{{Name: e.Field, Type: field}},
			Ext:    b.freshType(),
		})
		return types.And{
			b.Expr(e.Record, record),
			types.Eq{Type: field, Expected: expected},
		}

	case *ast.Accessor:
		field := types.Attributed(b.freshType(), b.freshType())
		record := b.attributed(types.TRecord{
			Fields: []types.Field{{Name: e.Field, Type: field}},
			Ext:    b.freshType(),
		})
		fn := b.attributed(types.TFunc{Args: []types.Type{record}, Ret: field})
		return types.Eq{Type: fn, Expected: expected}

	case *ast.Update:
		fields := make([]types.Field, len(e.Updates))
		cs := make(types.And, 0, len(e.Updates)+2)
		for i, field := range e.Updates {
			fields[i] = types.Field{Name: field.Name, Type: b.freshType()}
			cs = append(cs, b.Expr(field.Value, fields[i].Type))
		}
		record := b.attributed(types.TRecord{Fields: fields, Ext: b.freshType()})
		cs = append(cs, b.lookup(e.Symbol, record))
		return append(cs, types.Eq{Type: record, Expected: expected})

	case *ast.Tag:
		args := make([]types.Type, len(e.Args))
		cs := make(types.And, 0, len(e.Args)+1)
		for i, arg := range e.Args {
			args[i] = b.freshType()
			cs = append(cs, b.Expr(arg, args[i]))
		}
		union := b.attributed(types.TTagUnion{
			Tags: []types.Tag{{Name: e.Name, Args: args}},
			Ext:  b.freshType(),
		})
		return append(cs, types.Eq{Type: union, Expected: expected})
	}
	panic("unexpected expression " + e.ExprName())
}

// lookup constrains an occurrence of symbol by the usage recorded for it.
func (b *Builder) lookup(symbol string, expected types.Type) types.Constraint {
	lookup := types.Lookup{Symbol: symbol, Expected: expected}
	rc, ok := b.usage.Get(symbol)
	if !ok {
		return lookup
	}
	switch rc.Kind {
	case sharing.Shared:
		return types.And{lookup, types.Eq{Type: types.Attributed(types.SharedAttr(), b.freshType()), Expected: expected}}
	case sharing.Access, sharing.Update:
		return types.And{lookup, types.Eq{Type: b.attributed(b.usageRecord(rc.Fields)), Expected: expected}}
	}
	return lookup
}

// usageRecord returns an open record type holding the fields used in fa.
func (b *Builder) usageRecord(fa sharing.FieldAccess) types.Type {
	fields := make([]types.Field, 0, fa.Len())
	fa.Range(func(name string, fu sharing.FieldUsage) bool {
		var attr, inner types.Type
		if fu.Kind == sharing.Shared {
			attr = types.SharedAttr()
		} else {
			attr = b.freshType()
		}
		if fu.Nested.IsEmpty() {
			inner = b.freshType()
		} else {
			inner = b.usageRecord(fu.Nested)
		}
		fields = append(fields, types.Field{Name: name, Type: types.Attributed(attr, inner)})
		return true
	})
	return types.TRecord{Fields: fields, Ext: b.freshType()}
}

func (b *Builder) closure(e *ast.Closure, expected types.Type) types.Constraint {
	var pc patternState
	args := make([]types.Type, len(e.Args))
	for i, arg := range e.Args {
		args[i] = b.freshType()
		b.pattern(arg, args[i], &pc)
	}
	ret := b.freshType()
	fn := b.attributed(types.TFunc{Args: args, Ret: ret})
	return types.And{
		&types.Let{
			Headers: pc.headers,
			Defs:    pc.constraints,
			Body:    b.Expr(e.Body, ret),
		},
		types.Eq{Type: fn, Expected: expected},
	}
}

func (b *Builder) when(e *ast.When, expected types.Type) types.Constraint {
	cond := b.freshType()
	ret := b.freshType()
	cs := make(types.And, 0, len(e.Branches)+2)
	cs = append(cs, b.Expr(e.Cond, cond))
	for _, branch := range e.Branches {
		var pc patternState
		b.pattern(branch.Pattern, cond, &pc)
		body := b.Expr(branch.Body, ret)
		if branch.Guard != nil {
			body = types.And{b.Expr(branch.Guard, b.attributed(types.Bool())), body}
		}
		cs = append(cs, &types.Let{Headers: pc.headers, Defs: pc.constraints, Body: body})
	}
	return append(cs, types.Eq{Type: ret, Expected: expected})
}

// defs nests one generalizing Let per group of mutually-recursive definitions,
// in dependency order, around the body.
func (b *Builder) defs(e *ast.Defs, expected types.Type) types.Constraint {
	groups := astutil.GroupDefs(e.Defs)
	lets := make([]*types.Let, len(groups))
	for i, group := range groups {
		lets[i] = b.defGroup(e.Defs, group)
	}
	body := b.Expr(e.Body, expected)
	for i := len(lets) - 1; i >= 0; i-- {
		lets[i].Body = body
		body = lets[i]
	}
	return body
}

func (b *Builder) defGroup(defs []ast.Def, group astutil.DefGroup) *types.Let {
	b.push()
	rigids := newRigidScope()
	var pc patternState
	for _, i := range group.Defs {
		def := defs[i]
		t := b.freshType()
		b.pattern(def.Pattern, t, &pc)
		if def.Annotation != nil {
			pc.constraints = append(pc.constraints, types.Eq{Type: b.annotation(def.Annotation, rigids), Expected: t})
		}
		pc.constraints = append(pc.constraints, b.Expr(def.Expr, t))
	}
	return &types.Let{
		Rigid:      rigids.vars,
		Flex:       b.pop(),
		Headers:    pc.headers,
		Defs:       pc.constraints,
		Generalize: true,
		Recursive:  group.Recursive,
	}
}

// patternState accumulates the symbols bound by patterns and their constraints.
type patternState struct {
	headers     []types.Header
	constraints types.And
}

func (b *Builder) pattern(p ast.Pattern, expected types.Type, state *patternState) {
	switch p := p.(type) {
	case *ast.Identifier:
		state.headers = append(state.headers, types.Header{Symbol: p.Symbol, Type: expected})

	case *ast.Underscore:

	case *ast.IntPattern:
		state.constraints = append(state.constraints, types.Eq{Type: b.attributed(types.Int()), Expected: expected})

	case *ast.FloatPattern:
		state.constraints = append(state.constraints, types.Eq{Type: b.attributed(types.Float()), Expected: expected})

	case *ast.StrPattern:
		state.constraints = append(state.constraints, types.Eq{Type: b.attributed(types.Str()), Expected: expected})

	case *ast.AppliedTag:
		args := make([]types.Type, len(p.Args))
		for i, arg := range p.Args {
			args[i] = b.freshType()
			b.pattern(arg, args[i], state)
		}
		union := b.attributed(types.TTagUnion{
			Tags: []types.Tag{{Name: p.Name, Args: args}},
			Ext:  b.freshType(),
		})
		state.constraints = append(state.constraints, types.Eq{Type: union, Expected: expected})

	case *ast.RecordDestructure:
		fields := make([]types.Field, len(p.Fields))
		for i, field := range p.Fields {
			t := types.Attributed(b.freshType(), b.freshType())
			fields[i] = types.Field{Name: field.Label, Type: t}
			if field.Symbol != "" {
				state.headers = append(state.headers, types.Header{Symbol: field.Symbol, Type: t})
			}
			if field.Guard != nil {
				b.pattern(field.Guard, t, state)
			}
		}
		record := b.attributed(types.TRecord{Fields: fields, Ext: b.freshType()})
		state.constraints = append(state.constraints, types.Eq{Type: record, Expected: expected})

	default:
		panic("unexpected pattern " + p.PatternName())
	}
}
