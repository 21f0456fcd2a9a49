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

// Pattern is the base for all patterns.
type Pattern interface {
	PatternName() string
	isPattern()
}

var (
	_ Pattern = (*Identifier)(nil)
	_ Pattern = (*Underscore)(nil)
	_ Pattern = (*IntPattern)(nil)
	_ Pattern = (*FloatPattern)(nil)
	_ Pattern = (*StrPattern)(nil)
	_ Pattern = (*AppliedTag)(nil)
	_ Pattern = (*RecordDestructure)(nil)
)

// Binds a symbol: `x`
type Identifier struct {
	Symbol string
}

// Matches anything without binding: `_`
type Underscore struct{}

// Integer literal: `1`
type IntPattern struct {
	Value int64
}

// Float literal: `0.5`
type FloatPattern struct {
	Value float64
}

// String literal: `"foo"`
type StrPattern struct {
	Value string
}

// Tag with argument patterns: `Foo x _`
type AppliedTag struct {
	Name string
	Args []Pattern
}

// Record destructure: `{ x, y: Foo z }`
type RecordDestructure struct {
	Fields []DestructField
}

// Destructured field. The field's value is bound to Symbol; when Guard is set,
// the value must also match Guard.
type DestructField struct {
	Label  string
	Symbol string
	Guard  Pattern
}

func (*Identifier) PatternName() string        { return "Identifier" }
func (*Underscore) PatternName() string        { return "Underscore" }
func (*IntPattern) PatternName() string        { return "IntPattern" }
func (*FloatPattern) PatternName() string      { return "FloatPattern" }
func (*StrPattern) PatternName() string        { return "StrPattern" }
func (*AppliedTag) PatternName() string        { return "AppliedTag" }
func (*RecordDestructure) PatternName() string { return "RecordDestructure" }

func (*Identifier) isPattern()        {}
func (*Underscore) isPattern()        {}
func (*IntPattern) isPattern()        {}
func (*FloatPattern) isPattern()      {}
func (*StrPattern) isPattern()        {}
func (*AppliedTag) isPattern()        {}
func (*RecordDestructure) isPattern() {}

// Symbols returns the symbols bound by p, in order of appearance.
func Symbols(p Pattern) []string {
	var symbols []string
	WalkPattern(p, func(p Pattern) {
		switch p := p.(type) {
		case *Identifier:
			symbols = append(symbols, p.Symbol)
		case *RecordDestructure:
			for _, field := range p.Fields {
				symbols = append(symbols, field.Symbol)
			}
		}
	})
	return symbols
}

// WalkPattern calls f for p and each nested pattern, parents first.
func WalkPattern(p Pattern, f func(Pattern)) {
	switch p := p.(type) {
	case *AppliedTag:
		f(p)
		for _, arg := range p.Args {
			WalkPattern(arg, f)
		}
	case *RecordDestructure:
		f(p)
		for _, field := range p.Fields {
			if field.Guard != nil {
				WalkPattern(field.Guard, f)
			}
		}
	case nil:
	default:
		f(p)
	}
}
