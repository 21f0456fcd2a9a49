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

// Constraint is the closed set of constraint nodes: True, Eq, Lookup, And, and Let.
type Constraint interface {
	ConstraintName() string
	isConstraint()
}

var (
	_ Constraint = True{}
	_ Constraint = Eq{}
	_ Constraint = Lookup{}
	_ Constraint = And{}
	_ Constraint = (*Let)(nil)
)

// Trivially satisfied constraint.
type True struct{}

// Equality between a type and its expected type.
type Eq struct {
	Type     Type
	Expected Type
}

// The instantiated type of a bound symbol equals the expected type.
type Lookup struct {
	Symbol   string
	Expected Type
}

// Conjunction, solved in order.
type And []Constraint

// Header binds a symbol to its type within the body of a Let.
type Header struct {
	Symbol string
	Type   Type
}

// Let introduces variables and symbols.
//
// Rigid and Flex variables are introduced at the binding-level of the definitions.
// When Generalize is set, definitions are solved one level deeper and the header
// types are generalized before the body is solved. When Recursive is set, the
// headers are visible (monomorphically) while the definitions are solved.
type Let struct {
	Rigid      []Variable
	Flex       []Variable
	Headers    []Header
	Defs       Constraint
	Body       Constraint
	Generalize bool
	Recursive  bool
}

func (True) ConstraintName() string   { return "True" }
func (Eq) ConstraintName() string     { return "Eq" }
func (Lookup) ConstraintName() string { return "Lookup" }
func (And) ConstraintName() string    { return "And" }
func (*Let) ConstraintName() string   { return "Let" }

func (True) isConstraint()   {}
func (Eq) isConstraint()     {}
func (Lookup) isConstraint() {}
func (And) isConstraint()    {}
func (*Let) isConstraint()   {}

// Exists introduces vars at the current binding-level for c.
func Exists(vars []Variable, c Constraint) Constraint {
	if len(vars) == 0 {
		return c
	}
	return &Let{Flex: vars, Defs: True{}, Body: c}
}
