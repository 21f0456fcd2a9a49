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

package uniq_test

import (
	"testing"

	. "github.com/wdamron/uniq"
	. "github.com/wdamron/uniq/construct"

	"github.com/wdamron/uniq/ast"
	"github.com/wdamron/uniq/sharing"
	"github.com/wdamron/uniq/types"
)

func BenchmarkMutuallyRecursiveDefs(b *testing.B) {
	env := NewTypeEnv(nil)
	ctx := NewContext()

	env.Declare("add", TFunc([]ast.Annotation{num(TVar("a")), num(TVar("a"))}, num(TVar("a"))))
	env.Declare("somebool", TTagUnion(nil, TTag("False"), TTag("True")))

	x := Var("x")
	expr := Defs(
		[]ast.Def{
			Def("id", Lambda([]string{"x"}, x)),
			Def("f", Lambda([]string{"x"}, If(Call(Var("id"), Var("somebool")), Call(Var("id"), x), Call(Var("g"), Call(Var("add"), x, x))))),
			Def("g", Lambda([]string{"x"}, If(Var("somebool"), x, Call(Var("id"), Call(Var("f"), x))))),
		},
		Record(
			Field("f", Var("f")),
			Field("g", Var("g")),
			Field("id", Var("id"))))

	b.ResetTimer()

	for n := 0; n < b.N; n++ {
		sol, err := ctx.Infer(expr, env)
		if err != nil || sol == nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkRecordSharing(b *testing.B) {
	ctx := NewContext()

	expr := Lambda([]string{"r"}, Defs([]ast.Def{
		Def("s", Update("r", Field("y", Access(Var("r"), "x")))),
		Def("p", Access(Var("s"), "x", "a")),
		Def("q", Access(Var("s"), "y", "b")),
	}, Var("s")))

	b.ResetTimer()

	for n := 0; n < b.N; n++ {
		sol, err := ctx.Infer(expr, nil)
		if err != nil || sol == nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkUsageAnalysis(b *testing.B) {
	r := Var("r")
	expr := Lambda([]string{"r", "c"}, When(Var("c"),
		Branch(PTag("A"), Access(r, "a", "b")),
		Branch(PTag("B"), List(Access(r, "a"), Access(r, "b", "c"))),
		Branch(Underscore(), Update("r", Field("a", Access(r, "b"))))))

	b.ResetTimer()

	for n := 0; n < b.N; n++ {
		if usage := sharing.Analyze(expr); usage.Len() == 0 {
			b.Fatal("no usage recorded")
		}
	}
}

func BenchmarkPrinting(b *testing.B) {
	ctx := NewContext()
	subs := types.NewSubs()
	root, _, err := ctx.InferWithSubs(Closure1(PRecord("left", "right"), Record(Field("left", Var("left")), Field("right", Var("right")))), nil, subs)
	if err != nil {
		b.Fatal(err)
	}
	types.NameAllTypeVars(subs, root)

	b.ResetTimer()

	for n := 0; n < b.N; n++ {
		if s := types.ContentString(subs, root); s == "" {
			b.Fatal("empty type")
		}
	}
}
