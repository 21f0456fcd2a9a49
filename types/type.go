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

package types

// Type is a constraint-level type expression. Types are converted to variables
// in a substitution store when a constraint is solved.
type Type interface {
	TypeName() string
	isType()
}

var (
	_ Type = TVar{}
	_ Type = TApply{}
	_ Type = TFunc{}
	_ Type = TRecord{}
	_ Type = TEmptyRecord{}
	_ Type = TTagUnion{}
	_ Type = TEmptyTagUnion{}
	_ Type = TAlias{}
)

// Reference to a variable in the store.
type TVar struct {
	Var Variable
}

// Type application: `List.List a`
type TApply struct {
	Name string
	Args []Type
}

// Function type: `a, b -> c`
type TFunc struct {
	Args []Type
	Ret  Type
}

// Record type with an extension: `{ a : x }ext`
type TRecord struct {
	Fields []Field
	Ext    Type
}

// Labeled record field
type Field struct {
	Name string
	Type Type
}

// Closed empty record: `{}`
type TEmptyRecord struct{}

// Tag union type with an extension: `[ Foo x ]ext`
type TTagUnion struct {
	Tags []Tag
	Ext  Type
}

// Tag with its argument types
type Tag struct {
	Name string
	Args []Type
}

// Closed empty tag union: `[]`
type TEmptyTagUnion struct{}

// Alias with its underlying type: `Int : Num.Num Int.Integer`
type TAlias struct {
	Name   string
	Args   []TAliasArg
	Actual Type
}

// Named argument of an alias
type TAliasArg struct {
	Name string
	Type Type
}

func (TVar) TypeName() string           { return "Var" }
func (TApply) TypeName() string         { return "Apply" }
func (TFunc) TypeName() string          { return "Func" }
func (TRecord) TypeName() string        { return "Record" }
func (TEmptyRecord) TypeName() string   { return "EmptyRecord" }
func (TTagUnion) TypeName() string      { return "TagUnion" }
func (TEmptyTagUnion) TypeName() string { return "EmptyTagUnion" }
func (TAlias) TypeName() string         { return "Alias" }

func (TVar) isType()           {}
func (TApply) isType()         {}
func (TFunc) isType()          {}
func (TRecord) isType()        {}
func (TEmptyRecord) isType()   {}
func (TTagUnion) isType()      {}
func (TEmptyTagUnion) isType() {}
func (TAlias) isType()         {}

// Vars calls f for each variable referenced by t.
func Vars(t Type, f func(Variable)) {
	switch t := t.(type) {
	case TVar:
		f(t.Var)
	case TApply:
		for _, arg := range t.Args {
			Vars(arg, f)
		}
	case TFunc:
		for _, arg := range t.Args {
			Vars(arg, f)
		}
		Vars(t.Ret, f)
	case TRecord:
		for _, field := range t.Fields {
			Vars(field.Type, f)
		}
		Vars(t.Ext, f)
	case TTagUnion:
		for _, tag := range t.Tags {
			for _, arg := range tag.Args {
				Vars(arg, f)
			}
		}
		Vars(t.Ext, f)
	case TAlias:
		for _, arg := range t.Args {
			Vars(arg.Type, f)
		}
		Vars(t.Actual, f)
	case TEmptyRecord, TEmptyTagUnion, nil:
	}
}

// ToVar converts t to a variable at the given binding-level.
func (s *Subs) ToVar(level int, t Type) Variable {
	switch t := t.(type) {
	case TVar:
		return t.Var
	case TApply:
		args := make([]Variable, len(t.Args))
		for i, arg := range t.Args {
			args[i] = s.ToVar(level, arg)
		}
		return s.FreshAt(Structure{Apply{Name: t.Name, Args: args}}, level)
	case TFunc:
		args := make([]Variable, len(t.Args))
		for i, arg := range t.Args {
			args[i] = s.ToVar(level, arg)
		}
		ret := s.ToVar(level, t.Ret)
		return s.FreshAt(Structure{Func{Args: args, Ret: ret}}, level)
	case TRecord:
		b := NewFieldMapBuilder()
		for _, field := range t.Fields {
			b.Set(field.Name, s.ToVar(level, field.Type))
		}
		ext := s.ToVar(level, t.Ext)
		return s.FreshAt(Structure{Record{Fields: b.Build(), Ext: ext}}, level)
	case TEmptyRecord:
		return s.FreshAt(Structure{EmptyRecord{}}, level)
	case TTagUnion:
		b := NewTagMapBuilder()
		for _, tag := range t.Tags {
			args := make([]Variable, len(tag.Args))
			for i, arg := range tag.Args {
				args[i] = s.ToVar(level, arg)
			}
			b.Set(tag.Name, args)
		}
		ext := s.ToVar(level, t.Ext)
		return s.FreshAt(Structure{TagUnion{Tags: b.Build(), Ext: ext}}, level)
	case TEmptyTagUnion:
		return s.FreshAt(Structure{EmptyTagUnion{}}, level)
	case TAlias:
		args := make([]AliasArg, len(t.Args))
		for i, arg := range t.Args {
			args[i] = AliasArg{Name: arg.Name, Var: s.ToVar(level, arg.Type)}
		}
		real := s.ToVar(level, t.Actual)
		return s.FreshAt(Alias{Name: t.Name, Args: args, Real: real}, level)
	case nil:
		return s.FreshAt(Error{}, level)
	}
	panic("unexpected type " + t.TypeName())
}
