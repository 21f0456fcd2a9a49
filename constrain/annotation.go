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

package constrain

import (
	"github.com/wdamron/uniq/ast"
	"github.com/wdamron/uniq/types"
)

// rigidScope maps the type variables of the annotations in one definition group
// to rigid variables.
type rigidScope struct {
	names map[string]types.Variable
	vars  []types.Variable
}

func newRigidScope() *rigidScope { return &rigidScope{names: make(map[string]types.Variable)} }

func (b *Builder) rigid(scope *rigidScope, name string) types.Variable {
	if v, ok := scope.names[name]; ok {
		return v
	}
	v := b.subs.Fresh(types.RigidVar{Name: name})
	scope.names[name] = v
	scope.vars = append(scope.vars, v)
	return v
}

// annotation converts a value annotation, wrapping it with a fresh attribute.
func (b *Builder) annotation(a ast.Annotation, scope *rigidScope) types.Type {
	return b.attributed(b.bareAnnotation(a, scope))
}

// bareAnnotation converts an annotation without an attribute of its own.
// Record and tag union extensions, and the arguments of phantom builtins, are bare.
func (b *Builder) bareAnnotation(a ast.Annotation, scope *rigidScope) types.Type {
	switch a := a.(type) {
	case *ast.TypeVar:
		return types.TVar{Var: b.rigid(scope, a.Name)}

	case *ast.TypeApply:
		args := make([]types.Type, len(a.Args))
		for i, arg := range a.Args {
			if types.PhantomArgs(a.Name) {
				args[i] = b.bareAnnotation(arg, scope)
			} else {
				args[i] = b.annotation(arg, scope)
			}
		}
		return types.TApply{Name: a.Name, Args: args}

	case *ast.FuncType:
		args := make([]types.Type, len(a.Args))
		for i, arg := range a.Args {
			args[i] = b.annotation(arg, scope)
		}
		return types.TFunc{Args: args, Ret: b.annotation(a.Ret, scope)}

	case *ast.RecordType:
		fields := make([]types.Field, len(a.Fields))
		for i, field := range a.Fields {
			fields[i] = types.Field{Name: field.Name, Type: b.annotation(field.Type, scope)}
		}
		var ext types.Type = types.TEmptyRecord{}
		if a.Ext != nil {
			ext = b.bareAnnotation(a.Ext, scope)
		}
		return types.TRecord{Fields: fields, Ext: ext}

	case *ast.TagUnionType:
		tags := make([]types.Tag, len(a.Tags))
		for i, tag := range a.Tags {
			args := make([]types.Type, len(tag.Args))
			for j, arg := range tag.Args {
				args[j] = b.annotation(arg, scope)
			}
			tags[i] = types.Tag{Name: tag.Name, Args: args}
		}
		var ext types.Type = types.TEmptyTagUnion{}
		if a.Ext != nil {
			ext = b.bareAnnotation(a.Ext, scope)
		}
		return types.TTagUnion{Tags: tags, Ext: ext}

	case *ast.AliasType:
		return types.TAlias{Name: a.Name, Actual: b.bareAnnotation(a.Actual, scope)}
	}
	panic("unexpected annotation " + a.AnnotationName())
}

// Annotation converts a value annotation to a type over fresh variables, returning
// the rigid and flexible variables the type introduces.
func (b *Builder) Annotation(a ast.Annotation) (t types.Type, rigid, flex []types.Variable) {
	b.push()
	scope := newRigidScope()
	t = b.annotation(a, scope)
	return t, scope.vars, b.pop()
}
