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

package ast

// WalkExpr calls f for e and each nested expression, parents first.
func WalkExpr(e Expr, f func(Expr)) {
	switch e := e.(type) {
	case *Int, *Float, *Str, *EmptyRecord, *Var, *Accessor:
		f(e)

	case *Update:
		f(e)
		for _, field := range e.Updates {
			WalkExpr(field.Value, f)
		}

	case *List:
		f(e)
		for _, elem := range e.Elems {
			WalkExpr(elem, f)
		}

	case *Call:
		f(e)
		WalkExpr(e.Func, f)
		for _, arg := range e.Args {
			WalkExpr(arg, f)
		}

	case *Closure:
		f(e)
		WalkExpr(e.Body, f)

	case *Defs:
		f(e)
		for _, def := range e.Defs {
			WalkExpr(def.Expr, f)
		}
		WalkExpr(e.Body, f)

	case *When:
		f(e)
		WalkExpr(e.Cond, f)
		for _, branch := range e.Branches {
			if branch.Guard != nil {
				WalkExpr(branch.Guard, f)
			}
			WalkExpr(branch.Body, f)
		}

	case *If:
		f(e)
		for _, branch := range e.Branches {
			WalkExpr(branch.Cond, f)
			WalkExpr(branch.Then, f)
		}
		WalkExpr(e.Else, f)

	case *Record:
		f(e)
		for _, field := range e.Fields {
			WalkExpr(field.Value, f)
		}

	case *Access:
		f(e)
		WalkExpr(e.Record, f)

	case *Tag:
		f(e)
		for _, arg := range e.Args {
			WalkExpr(arg, f)
		}

	case nil:

	default:
		panic("unknown expression type: " + e.ExprName())
	}
}
