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

// Builtin type names. Attributes are zero-argument applications; every value
// type is wrapped as `Attr.Attr <attribute> <type>`.
const (
	AttrName   = "Attr.Attr"
	SharedName = "Attr.Shared"
	UniqueName = "Attr.Unique"

	NumName           = "Num.Num"
	IntegerName       = "Int.Integer"
	FloatingPointName = "Float.FloatingPoint"
	StrName           = "Str.Str"
	ListName          = "List.List"
)

var displayNames = map[string]string{
	NumName:           "Num",
	IntegerName:       "Integer",
	FloatingPointName: "FloatingPoint",
	StrName:           "Str",
	ListName:          "List",
}

// DisplayName returns the rendered name of an applied type.
func DisplayName(name string) string {
	if short, ok := displayNames[name]; ok {
		return short
	}
	return name
}

// PhantomArgs reports whether the arguments of an applied builtin are type-level
// markers rather than values, and therefore carry no attribute.
func PhantomArgs(name string) bool { return name == NumName }

// Int is `Num.Num Int.Integer`.
func Int() Type { return TApply{Name: NumName, Args: []Type{TApply{Name: IntegerName}}} }

// Float is `Num.Num Float.FloatingPoint`.
func Float() Type { return TApply{Name: NumName, Args: []Type{TApply{Name: FloatingPointName}}} }

// Str is `Str.Str`.
func Str() Type { return TApply{Name: StrName} }

// List is `List.List elem`.
func List(elem Type) Type { return TApply{Name: ListName, Args: []Type{elem}} }

// Bool is the closed tag union `[ False, True ]`.
func Bool() Type {
	return TTagUnion{Tags: []Tag{{Name: "False"}, {Name: "True"}}, Ext: TEmptyTagUnion{}}
}

// SharedAttr is the concrete `Attr.Shared` attribute.
func SharedAttr() Type { return TApply{Name: SharedName} }

// UniqueAttr is the concrete `Attr.Unique` attribute.
func UniqueAttr() Type { return TApply{Name: UniqueName} }

// Attributed wraps t with the attribute u.
func Attributed(u, t Type) Type { return TApply{Name: AttrName, Args: []Type{u, t}} }
