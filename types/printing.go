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

import (
	"strings"
	"sync"
)

// Parens is the position a type is printed in, which decides whether it needs parentheses.
type Parens uint8

const (
	// Top-level or record-field position.
	Unnecessary Parens = iota
	// Argument or result of a function.
	InFn
	// Argument of an applied type.
	InTypeParam
)

// Rendering of Error contents and erroneous structures.
const mismatchString = "<type mismatch>"

var printerPool = sync.Pool{
	New: func() interface{} { return &contentPrinter{} },
}

type contentPrinter struct {
	subs *Subs
	sb   strings.Builder
}

func newContentPrinter(subs *Subs) *contentPrinter {
	p := printerPool.Get().(*contentPrinter)
	p.subs = subs
	return p
}

func (p *contentPrinter) release() {
	p.subs = nil
	p.sb.Reset()
	printerPool.Put(p)
}

// ContentString renders the type of v. Unnamed flexible variables are printed as `*`;
// call NameAllTypeVars first to name variables which occur more than once.
func ContentString(subs *Subs, v Variable) string {
	p := newContentPrinter(subs)
	p.write(v, Unnecessary)
	s := p.sb.String()
	p.release()
	return s
}

func (p *contentPrinter) write(v Variable, parens Parens) {
	switch c := p.subs.Content(v).(type) {
	case FlexVar:
		if c.Name == "" {
			p.sb.WriteByte('*')
		} else {
			p.sb.WriteString(c.Name)
		}
	case RigidVar:
		p.sb.WriteString(c.Name)
	case Error:
		p.sb.WriteString(mismatchString)
	case Alias:
		if len(c.Args) == 0 {
			p.sb.WriteString(c.Name)
			return
		}
		p.open(parens == InTypeParam)
		p.sb.WriteString(c.Name)
		for _, arg := range c.Args {
			p.sb.WriteByte(' ')
			p.write(arg.Var, InTypeParam)
		}
		p.close(parens == InTypeParam)
	case Structure:
		p.writeFlat(c.Flat, parens)
	}
}

func (p *contentPrinter) writeFlat(flat FlatType, parens Parens) {
	switch flat := flat.(type) {
	case Apply:
		p.writeApply(flat, parens)
	case Func:
		p.open(parens != Unnecessary)
		for i, arg := range flat.Args {
			if i > 0 {
				p.sb.WriteString(", ")
			}
			p.write(arg, InFn)
		}
		p.sb.WriteString(" -> ")
		p.write(flat.Ret, InFn)
		p.close(parens != Unnecessary)
	case EmptyRecord:
		p.sb.WriteString("{}")
	case Record:
		fields, ext := GatherFields(p.subs, flat)
		if fields.Len() == 0 {
			p.sb.WriteString("{}")
		} else {
			p.sb.WriteString("{ ")
			i := 0
			fields.Range(func(name string, v Variable) bool {
				if i > 0 {
					p.sb.WriteString(", ")
				}
				p.sb.WriteString(name)
				p.sb.WriteString(" : ")
				p.write(v, InTypeParam)
				i++
				return true
			})
			p.sb.WriteString(" }")
		}
		p.writeExt(ext)
	case EmptyTagUnion:
		p.sb.WriteString("[]")
	case TagUnion:
		tags, ext := GatherTags(p.subs, flat)
		if tags.Len() == 0 {
			p.sb.WriteString("[]")
			p.writeExt(ext)
			return
		}
		p.sb.WriteString("[ ")
		i := 0
		tags.Range(func(name string, args []Variable) bool {
			if i > 0 {
				p.sb.WriteString(", ")
			}
			p.sb.WriteString(name)
			for _, arg := range args {
				p.sb.WriteByte(' ')
				p.write(arg, InTypeParam)
			}
			i++
			return true
		})
		p.sb.WriteString(" ]")
		p.writeExt(ext)
	}
}

func (p *contentPrinter) writeApply(app Apply, parens Parens) {
	switch {
	case app.Name == AttrName && len(app.Args) == 2:
		p.open(parens == InTypeParam)
		p.sb.WriteString(AttrName)
		p.sb.WriteByte(' ')
		p.write(app.Args[0], InTypeParam)
		p.sb.WriteByte(' ')
		p.write(app.Args[1], InTypeParam)
		p.close(parens == InTypeParam)
		return
	case app.Name == NumName && len(app.Args) == 1:
		if arg, ok := p.subs.Content(app.Args[0]).(Structure); ok {
			if argApp, ok := arg.Flat.(Apply); ok && len(argApp.Args) == 0 {
				switch argApp.Name {
				case IntegerName:
					p.sb.WriteString("Int")
					return
				case FloatingPointName:
					p.sb.WriteString("Float")
					return
				}
			}
		}
	}
	if len(app.Args) == 0 {
		p.sb.WriteString(DisplayName(app.Name))
		return
	}
	p.open(parens == InTypeParam)
	p.sb.WriteString(DisplayName(app.Name))
	for _, arg := range app.Args {
		p.sb.WriteByte(' ')
		p.write(arg, InTypeParam)
	}
	p.close(parens == InTypeParam)
}

// Closed extensions print nothing.
func (p *contentPrinter) writeExt(ext Variable) {
	switch c := p.subs.Content(ext).(type) {
	case FlexVar, RigidVar:
		p.write(ext, Unnecessary)
	case Error:
		p.sb.WriteString(mismatchString)
	case Structure:
		switch c.Flat.(type) {
		case EmptyRecord, EmptyTagUnion:
		default:
			p.write(ext, Unnecessary)
		}
	default:
		p.write(ext, Unnecessary)
	}
}

func (p *contentPrinter) open(paren bool) {
	if paren {
		p.sb.WriteByte('(')
	}
}

func (p *contentPrinter) close(paren bool) {
	if paren {
		p.sb.WriteByte(')')
	}
}

// GatherFields flattens the fields of a record through its chain of record extensions.
// The returned extension is the first variable in the chain which is not a record.
// Fields nearer the head of the chain take precedence.
func GatherFields(subs *Subs, rec Record) (FieldMap, Variable) {
	b := rec.Fields.Builder()
	ext := rec.Ext
	for {
		s, ok := subs.Content(ext).(Structure)
		if !ok {
			break
		}
		next, ok := s.Flat.(Record)
		if !ok {
			break
		}
		b.Merge(next.Fields)
		ext = next.Ext
	}
	return b.Build(), ext
}

// GatherTags flattens the tags of a tag union through its chain of tag union extensions.
func GatherTags(subs *Subs, union TagUnion) (TagMap, Variable) {
	b := union.Tags.Builder()
	ext := union.Ext
	for {
		s, ok := subs.Content(ext).(Structure)
		if !ok {
			break
		}
		next, ok := s.Flat.(TagUnion)
		if !ok {
			break
		}
		b.Merge(next.Tags)
		ext = next.Ext
	}
	return b.Build(), ext
}
