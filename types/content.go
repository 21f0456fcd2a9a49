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

// Content is the closed set of states a descriptor may hold:
// FlexVar, RigidVar, Structure, Alias, and Error.
type Content interface {
	ContentName() string
	isContent()
}

var (
	_ Content = FlexVar{}
	_ Content = RigidVar{}
	_ Content = Structure{}
	_ Content = Alias{}
	_ Content = Error{}
)

// Unconstrained variable, optionally named by the namer.
type FlexVar struct {
	Name string
}

// Variable introduced by an annotation.
type RigidVar struct {
	Name string
}

// Structural type.
type Structure struct {
	Flat FlatType
}

// Transparent type alias: `Int : Num.Num Int.Integer`
type Alias struct {
	Name string
	Args []AliasArg
	Real Variable
}

// Named argument of an alias.
type AliasArg struct {
	Name string
	Var  Variable
}

// Unification failed here.
type Error struct{}

func (FlexVar) ContentName() string   { return "FlexVar" }
func (RigidVar) ContentName() string  { return "RigidVar" }
func (Structure) ContentName() string { return "Structure" }
func (Alias) ContentName() string     { return "Alias" }
func (Error) ContentName() string     { return "Error" }

func (FlexVar) isContent()   {}
func (RigidVar) isContent()  {}
func (Structure) isContent() {}
func (Alias) isContent()     {}
func (Error) isContent()     {}

// FlatType is the closed set of structural shapes:
// Apply, Func, Record, EmptyRecord, TagUnion, and EmptyTagUnion.
type FlatType interface {
	FlatTypeName() string
	isFlatType()
}

var (
	_ FlatType = Apply{}
	_ FlatType = Func{}
	_ FlatType = Record{}
	_ FlatType = EmptyRecord{}
	_ FlatType = TagUnion{}
	_ FlatType = EmptyTagUnion{}
)

// Type application: `List.List a`, `Attr.Attr u a`, `Attr.Shared`
type Apply struct {
	Name string
	Args []Variable
}

// Function type: `a, b -> c`
type Func struct {
	Args []Variable
	Ret  Variable
}

// Record type: `{ a : x, b : y }ext`
type Record struct {
	Fields FieldMap
	Ext    Variable
}

// Closed empty record: `{}`
type EmptyRecord struct{}

// Tag union type: `[ Foo x y, Bar ]ext`
type TagUnion struct {
	Tags TagMap
	Ext  Variable
}

// Closed empty tag union: `[]`
type EmptyTagUnion struct{}

func (Apply) FlatTypeName() string         { return "Apply" }
func (Func) FlatTypeName() string          { return "Func" }
func (Record) FlatTypeName() string        { return "Record" }
func (EmptyRecord) FlatTypeName() string   { return "EmptyRecord" }
func (TagUnion) FlatTypeName() string      { return "TagUnion" }
func (EmptyTagUnion) FlatTypeName() string { return "EmptyTagUnion" }

func (Apply) isFlatType()         {}
func (Func) isFlatType()          {}
func (Record) isFlatType()        {}
func (EmptyRecord) isFlatType()   {}
func (TagUnion) isFlatType()      {}
func (EmptyTagUnion) isFlatType() {}

// Children calls f for each variable directly referenced by c, in printing order
// (arguments before results, fields and tags in sorted order, extensions last).
func Children(c Content, f func(Variable)) {
	switch c := c.(type) {
	case Structure:
		switch flat := c.Flat.(type) {
		case Apply:
			for _, arg := range flat.Args {
				f(arg)
			}
		case Func:
			for _, arg := range flat.Args {
				f(arg)
			}
			f(flat.Ret)
		case Record:
			flat.Fields.Range(func(_ string, v Variable) bool {
				f(v)
				return true
			})
			f(flat.Ext)
		case TagUnion:
			flat.Tags.Range(func(_ string, args []Variable) bool {
				for _, arg := range args {
					f(arg)
				}
				return true
			})
			f(flat.Ext)
		case EmptyRecord, EmptyTagUnion:
		}
	case Alias:
		for _, arg := range c.Args {
			f(arg.Var)
		}
		f(c.Real)
	case FlexVar, RigidVar, Error:
	}
}
