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

package sharing

import (
	"github.com/wdamron/uniq/ast"
)

// Analyze returns the usage of every symbol referenced by e.
func Analyze(e ast.Expr) *VarUsage {
	usage := NewVarUsage()
	AnnotateUsage(e, usage)
	return usage
}

// AnnotateUsage records the usage of every symbol referenced by e into usage, in evaluation order.
// Branches of when and if expressions are mutually exclusive.
func AnnotateUsage(e ast.Expr, usage *VarUsage) {
	switch e := e.(type) {
	case *ast.Int, *ast.Float, *ast.Str, *ast.EmptyRecord, *ast.Accessor:

	case *ast.Var:
		usage.RegisterUnique(e.Name)

	case *ast.List:
		for _, elem := range e.Elems {
			AnnotateUsage(elem, usage)
		}

	case *ast.Call:
		AnnotateUsage(e.Func, usage)
		for _, arg := range e.Args {
			AnnotateUsage(arg, usage)
		}

	case *ast.Closure:
		AnnotateUsage(e.Body, usage)

	case *ast.Defs:
		for _, def := range e.Defs {
			AnnotateUsage(def.Expr, usage)
		}
		AnnotateUsage(e.Body, usage)

	case *ast.When:
		AnnotateUsage(e.Cond, usage)
		branches := NewVarUsage()
		for _, branch := range e.Branches {
			local := NewVarUsage()
			if branch.Guard != nil {
				AnnotateUsage(branch.Guard, local)
			}
			AnnotateUsage(branch.Body, local)
			branches.MergeParallel(local)
		}
		usage.MergeSequential(branches)

	case *ast.If:
		branches := NewVarUsage()
		for _, branch := range e.Branches {
			AnnotateUsage(branch.Cond, usage)
			local := NewVarUsage()
			AnnotateUsage(branch.Then, local)
			branches.MergeParallel(local)
		}
		local := NewVarUsage()
		AnnotateUsage(e.Else, local)
		branches.MergeParallel(local)
		usage.MergeSequential(branches)

	case *ast.Record:
		for _, field := range e.Fields {
			AnnotateUsage(field.Value, usage)
		}

	case *ast.Access:
		if symbol, chain, ok := e.Chain(); ok {
			usage.Sequential(symbol, chain)
			return
		}
		AnnotateUsage(e.Record, usage)

	case *ast.Update:
		overwritten := NewFieldSet()
		for _, field := range e.Updates {
			AnnotateUsage(field.Value, usage)
			overwritten.Insert(field.Name)
		}
		usage.Register(e.Symbol, UpdateOf(overwritten, FieldAccess{}))

	case *ast.Tag:
		for _, arg := range e.Args {
			AnnotateUsage(arg, usage)
		}

	case nil:

	default:
		panic("unknown expression type: " + e.ExprName())
	}
}
