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

package sharing_test

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wdamron/uniq/ast"
	. "github.com/wdamron/uniq/construct"
	"github.com/wdamron/uniq/sharing"
)

func usageOf(t *testing.T, e ast.Expr, expected map[string]string) {
	t.Helper()
	usage := sharing.Analyze(e)
	actual := make(map[string]string, usage.Len())
	for _, symbol := range usage.Symbols() {
		rc, _ := usage.Get(symbol)
		actual[symbol] = rc.String()
	}
	require.Equal(t, expected, actual, "%s\n%s", ast.ExprString(e), spew.Sdump(usage.Symbols()))
}

func TestUsageFactorial(t *testing.T) {
	factorial := Defs(
		[]ast.Def{Def("factorial", Lambda([]string{"n"}, When(Var("n"),
			Branch(PInt(0), Int(1)),
			Branch(PInt(1), Int(1)),
			Branch(Ident("m"), Call(Var("factorial"), Var("m"))),
		)))},
		Var("factorial"),
	)
	usageOf(t, factorial, map[string]string{
		"factorial": "Shared",
		"m":         "Unique",
		"n":         "Unique",
	})
}

func TestUsageRecordAccess(t *testing.T) {
	rec := Def("rec", Record(Field("foo", Int(42)), Field("bar", Str("baz"))))
	usageOf(t, Defs([]ast.Def{rec}, Access(Var("rec"), "foo")), map[string]string{
		"rec": "Access {foo: Unique}",
	})
}

func TestUsageRecordUpdate(t *testing.T) {
	rec := Def("rec", Record(Field("foo", Int(42)), Field("bar", Str("baz"))))
	usageOf(t, Defs([]ast.Def{rec}, Update("rec", Field("foo", Access(Var("rec"), "foo")))), map[string]string{
		"rec": "Update [foo] {foo: Unique}",
	})
}

func TestUsageUpdateThenUnique(t *testing.T) {
	rec := Def("rec", Record(Field("foo", Int(42))))
	v := Def("v", Update("rec", Field("foo", Int(53))))
	usageOf(t, Defs([]ast.Def{rec, v}, Var("rec")), map[string]string{
		"rec": "Shared",
	})
}

func TestUsageAccessThenUnique(t *testing.T) {
	rec := Def("rec", Record(Field("foo", Int(42))))
	v := Def("v", Access(Var("rec"), "foo"))
	usageOf(t, Defs([]ast.Def{rec, v}, Var("rec")), map[string]string{
		"rec": "Update [] {foo: Shared}",
	})
}

func TestUsageAccessThenAlias(t *testing.T) {
	// the alias consumes the whole record after both reads, so the read fields become shared
	e := Lambda([]string{"r"}, Defs([]ast.Def{
		Def("v", Access(Var("r"), "x")),
		Def("w", Access(Var("r"), "y")),
		Def("p", Var("r")),
	}, Var("p")))
	usageOf(t, e, map[string]string{
		"p": "Unique",
		"r": "Update [] {x: Shared, y: Shared}",
	})
}

func TestUsageAccessNestedThenUnique(t *testing.T) {
	e := Lambda([]string{"r"}, Defs([]ast.Def{
		Def("v", Access(Var("r"), "foo", "bar")),
		Def("w", Access(Var("r"), "foo", "baz")),
	}, Var("r")))
	usageOf(t, e, map[string]string{
		"r": "Update [] {foo: Seen {bar: Shared, baz: Shared}}",
	})
}

func TestUsageUpdateCopiesField(t *testing.T) {
	// { r & y: r.x } keeps x, so reading it counts twice
	usageOf(t, Lambda([]string{"r"}, Update("r", Field("y", Access(Var("r"), "x")))), map[string]string{
		"r": "Update [y] {x: Shared}",
	})
	usageOf(t, Lambda([]string{"r"}, Update("r", Field("x", Int(0)), Field("y", Access(Var("r"), "x")))), map[string]string{
		"r": "Update [x, y] {x: Unique}",
	})
}

func TestUsageUpdatedRecordFieldsAreIndependent(t *testing.T) {
	e := Lambda([]string{"r"}, Defs(
		[]ast.Def{Def("s", Update("r", Field("y", Access(Var("r"), "x"))))},
		Record(Field("a", Access(Var("s"), "x")), Field("b", Access(Var("s"), "y"))),
	))
	usageOf(t, e, map[string]string{
		"r": "Update [y] {x: Shared}",
		"s": "Access {x: Unique, y: Unique}",
	})
}

func TestUsageBranches(t *testing.T) {
	e := Lambda([]string{"r", "c"}, When(Var("c"),
		Branch(PInt(0), Var("r")),
		Branch(PInt(1), Access(Var("r"), "x")),
		Branch(Underscore(), Access(Var("r"), "y", "z")),
	))
	usageOf(t, e, map[string]string{
		"c": "Unique",
		"r": "Update [] {x: Unique, y: Seen {z: Unique}}",
	})

	twice := Lambda([]string{"r", "c"}, List(
		If(Var("c"), Var("r"), Access(Var("r"), "x")),
		Var("r"),
	))
	usageOf(t, twice, map[string]string{
		"c": "Unique",
		"r": "Shared",
	})
}

func TestUsageParallelFieldChains(t *testing.T) {
	usage := sharing.NewVarUsage()
	usage.Parallel("r", []string{"a", "b"})
	usage.Parallel("r", []string{"a"})
	usage.Sequential("q", []string{"a", "b"})
	usage.Sequential("q", []string{"a"})
	rc, ok := usage.Get("r")
	require.True(t, ok)
	assert.Equal(t, "Access {a: Unique {b: Unique}}", rc.String())
	rc, _ = usage.Get("q")
	assert.Equal(t, "Access {a: Unique {b: Shared}}", rc.String())

	_, ok = usage.Unregister("q")
	assert.True(t, ok)
	assert.Equal(t, "r: Access {a: Unique {b: Unique}}", usage.String())
}
