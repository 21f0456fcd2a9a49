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

import (
	"strconv"
	"strings"
)

// ExprString returns a single-line string representation of an expression.
func ExprString(e Expr) string {
	var sb strings.Builder
	exprString(&sb, false, e)
	return sb.String()
}

// PatternString returns a string representation of a pattern.
func PatternString(p Pattern) string {
	var sb strings.Builder
	patternString(&sb, false, p)
	return sb.String()
}

func openParen(sb *strings.Builder, simple bool) {
	if simple {
		sb.WriteByte('(')
	}
}

func closeParen(sb *strings.Builder, simple bool) {
	if simple {
		sb.WriteByte(')')
	}
}

func exprString(sb *strings.Builder, simple bool, e Expr) {
	switch et := e.(type) {
	case *Int:
		sb.WriteString(strconv.FormatInt(et.Value, 10))

	case *Float:
		s := strconv.FormatFloat(et.Value, 'f', -1, 64)
		if !strings.ContainsAny(s, ".eE") {
			s += ".0"
		}
		sb.WriteString(s)

	case *Str:
		sb.WriteString(strconv.Quote(et.Value))

	case *EmptyRecord:
		sb.WriteString("{}")

	case *List:
		if len(et.Elems) == 0 {
			sb.WriteString("[]")
			return
		}
		sb.WriteString("[ ")
		for i, elem := range et.Elems {
			if i > 0 {
				sb.WriteString(", ")
			}
			exprString(sb, false, elem)
		}
		sb.WriteString(" ]")

	case *Var:
		sb.WriteString(et.Name)

	case *Call:
		openParen(sb, simple)
		exprString(sb, true, et.Func)
		for _, arg := range et.Args {
			sb.WriteByte(' ')
			exprString(sb, true, arg)
		}
		closeParen(sb, simple)

	case *Closure:
		openParen(sb, simple)
		sb.WriteByte('\\')
		for i, arg := range et.Args {
			if i > 0 {
				sb.WriteString(", ")
			}
			patternString(sb, false, arg)
		}
		sb.WriteString(" -> ")
		exprString(sb, false, et.Body)
		closeParen(sb, simple)

	case *Defs:
		openParen(sb, simple)
		for _, def := range et.Defs {
			if def.Annotation != nil {
				patternString(sb, false, def.Pattern)
				sb.WriteString(" : ")
				annotationString(sb, false, def.Annotation)
				sb.WriteString("; ")
			}
			patternString(sb, false, def.Pattern)
			sb.WriteString(" = ")
			exprString(sb, false, def.Expr)
			sb.WriteString("; ")
		}
		exprString(sb, false, et.Body)
		closeParen(sb, simple)

	case *When:
		openParen(sb, simple)
		sb.WriteString("when ")
		exprString(sb, false, et.Cond)
		sb.WriteString(" is")
		for i, branch := range et.Branches {
			if i > 0 {
				sb.WriteString(" |")
			}
			sb.WriteByte(' ')
			patternString(sb, false, branch.Pattern)
			if branch.Guard != nil {
				sb.WriteString(" if ")
				exprString(sb, false, branch.Guard)
			}
			sb.WriteString(" -> ")
			exprString(sb, false, branch.Body)
		}
		closeParen(sb, simple)

	case *If:
		openParen(sb, simple)
		for i, branch := range et.Branches {
			if i > 0 {
				sb.WriteString(" else ")
			}
			sb.WriteString("if ")
			exprString(sb, false, branch.Cond)
			sb.WriteString(" then ")
			exprString(sb, false, branch.Then)
		}
		sb.WriteString(" else ")
		exprString(sb, false, et.Else)
		closeParen(sb, simple)

	case *Record:
		if len(et.Fields) == 0 {
			sb.WriteString("{}")
			return
		}
		sb.WriteString("{ ")
		fieldsString(sb, et.Fields)
		sb.WriteString(" }")

	case *Access:
		exprString(sb, true, et.Record)
		sb.WriteByte('.')
		sb.WriteString(et.Field)

	case *Accessor:
		sb.WriteByte('.')
		sb.WriteString(et.Field)

	case *Update:
		sb.WriteString("{ ")
		sb.WriteString(et.Symbol)
		sb.WriteString(" & ")
		fieldsString(sb, et.Updates)
		sb.WriteString(" }")

	case *Tag:
		if len(et.Args) == 0 {
			sb.WriteString(et.Name)
			return
		}
		openParen(sb, simple)
		sb.WriteString(et.Name)
		for _, arg := range et.Args {
			sb.WriteByte(' ')
			exprString(sb, true, arg)
		}
		closeParen(sb, simple)
	}
}

func fieldsString(sb *strings.Builder, fields []Field) {
	for i, field := range fields {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(field.Name)
		sb.WriteString(": ")
		exprString(sb, false, field.Value)
	}
}

func patternString(sb *strings.Builder, simple bool, p Pattern) {
	switch pt := p.(type) {
	case *Identifier:
		sb.WriteString(pt.Symbol)

	case *Underscore:
		sb.WriteByte('_')

	case *IntPattern:
		sb.WriteString(strconv.FormatInt(pt.Value, 10))

	case *FloatPattern:
		sb.WriteString(strconv.FormatFloat(pt.Value, 'f', -1, 64))

	case *StrPattern:
		sb.WriteString(strconv.Quote(pt.Value))

	case *AppliedTag:
		if len(pt.Args) == 0 {
			sb.WriteString(pt.Name)
			return
		}
		openParen(sb, simple)
		sb.WriteString(pt.Name)
		for _, arg := range pt.Args {
			sb.WriteByte(' ')
			patternString(sb, true, arg)
		}
		closeParen(sb, simple)

	case *RecordDestructure:
		sb.WriteString("{ ")
		for i, field := range pt.Fields {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(field.Label)
			if field.Guard != nil {
				sb.WriteString(": ")
				patternString(sb, false, field.Guard)
			}
		}
		sb.WriteString(" }")
	}
}

func annotationString(sb *strings.Builder, simple bool, a Annotation) {
	switch at := a.(type) {
	case *TypeVar:
		sb.WriteString(at.Name)

	case *TypeApply:
		if len(at.Args) == 0 {
			sb.WriteString(at.Name)
			return
		}
		openParen(sb, simple)
		sb.WriteString(at.Name)
		for _, arg := range at.Args {
			sb.WriteByte(' ')
			annotationString(sb, true, arg)
		}
		closeParen(sb, simple)

	case *FuncType:
		openParen(sb, simple)
		for i, arg := range at.Args {
			if i > 0 {
				sb.WriteString(", ")
			}
			annotationString(sb, true, arg)
		}
		sb.WriteString(" -> ")
		annotationString(sb, true, at.Ret)
		closeParen(sb, simple)

	case *RecordType:
		sb.WriteString("{ ")
		for i, field := range at.Fields {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(field.Name)
			sb.WriteString(" : ")
			annotationString(sb, false, field.Type)
		}
		sb.WriteString(" }")
		if at.Ext != nil {
			annotationString(sb, true, at.Ext)
		}

	case *TagUnionType:
		sb.WriteString("[ ")
		for i, tag := range at.Tags {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(tag.Name)
			for _, arg := range tag.Args {
				sb.WriteByte(' ')
				annotationString(sb, true, arg)
			}
		}
		sb.WriteString(" ]")
		if at.Ext != nil {
			annotationString(sb, true, at.Ext)
		}

	case *AliasType:
		sb.WriteString(at.Name)
	}
}
