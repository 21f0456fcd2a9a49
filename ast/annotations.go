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

// Annotation is a type annotation on a definition: `Num.Num a -> Num.Num a`
type Annotation interface {
	AnnotationName() string
	isAnnotation()
}

var (
	_ Annotation = (*TypeVar)(nil)
	_ Annotation = (*TypeApply)(nil)
	_ Annotation = (*FuncType)(nil)
	_ Annotation = (*RecordType)(nil)
	_ Annotation = (*TagUnionType)(nil)
	_ Annotation = (*AliasType)(nil)
)

// Rigid type variable: `a`
type TypeVar struct {
	Name string
}

// Applied type: `List.List a`
type TypeApply struct {
	Name string
	Args []Annotation
}

// Function type: `a, b -> c`
type FuncType struct {
	Args []Annotation
	Ret  Annotation
}

// Record type: `{ a : x }ext`. Ext is nil for a closed record.
type RecordType struct {
	Fields []FieldType
	Ext    Annotation
}

// Labeled field within RecordType
type FieldType struct {
	Name string
	Type Annotation
}

// Tag union type: `[ Foo a, Bar ]ext`. Ext is nil for a closed union.
type TagUnionType struct {
	Tags []TagType
	Ext  Annotation
}

// Tag within TagUnionType
type TagType struct {
	Name string
	Args []Annotation
}

// Named alias for an underlying type: `Int : Num.Num Int.Integer`
type AliasType struct {
	Name   string
	Actual Annotation
}

func (*TypeVar) AnnotationName() string      { return "TypeVar" }
func (*TypeApply) AnnotationName() string    { return "TypeApply" }
func (*FuncType) AnnotationName() string     { return "FuncType" }
func (*RecordType) AnnotationName() string   { return "RecordType" }
func (*TagUnionType) AnnotationName() string { return "TagUnionType" }
func (*AliasType) AnnotationName() string    { return "AliasType" }

func (*TypeVar) isAnnotation()      {}
func (*TypeApply) isAnnotation()    {}
func (*FuncType) isAnnotation()     {}
func (*RecordType) isAnnotation()   {}
func (*TagUnionType) isAnnotation() {}
func (*AliasType) isAnnotation()    {}
