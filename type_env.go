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

package uniq

import (
	"slices"

	"github.com/wdamron/uniq/ast"
)

// TypeEnv is a type-environment containing mappings from identifiers to declared types.
//
// Declared types are annotations; their type-variables are generalized, so each
// reference to a declared identifier is instantiated with fresh variables.
//
// A type-environment cannot be used concurrently for inference; to share a type-environment
// across threads, create a new type-environment for each thread which inherits from the
// shared environment.
type TypeEnv struct {
	// Predeclared types in the parent of the current type-environment
	Parent *TypeEnv
	// Mappings from identifiers to declared types in the current type-environment
	Types map[string]ast.Annotation
}

// Create a type-environment. The new environment will inherit bindings from the parent, if the parent is not nil.
func NewTypeEnv(parent *TypeEnv) *TypeEnv {
	return &TypeEnv{Parent: parent, Types: make(map[string]ast.Annotation)}
}

// Declare a type for an identifier within the type environment.
func (e *TypeEnv) Declare(name string, t ast.Annotation) { e.Types[name] = t }

// Remove the declared type for an identifier within the type environment. Parent environment(s) will not be affected,
// and the identifier's type will still be visible if declared in a parent environment.
func (e *TypeEnv) Remove(name string) { delete(e.Types, name) }

// Lookup the type for an identifier in the environment or its parent environment(s).
func (e *TypeEnv) Lookup(name string) ast.Annotation {
	if t, ok := e.Types[name]; ok {
		return t
	}
	if e.Parent == nil {
		return nil
	}
	return e.Parent.Lookup(name)
}

// Names returns the sorted identifiers declared in the environment or its parent environment(s).
func (e *TypeEnv) Names() []string {
	var names []string
	for env := e; env != nil; env = env.Parent {
		for name := range env.Types {
			if !slices.Contains(names, name) {
				names = append(names, name)
			}
		}
	}
	slices.Sort(names)
	return names
}
