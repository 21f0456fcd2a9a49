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

package sharing

import (
	"slices"
	"strings"

	"github.com/hashicorp/go-set/v2"
)

// FieldSet is a set of record field names.
type FieldSet = set.Set[string]

// NewFieldSet creates a set of field names.
func NewFieldSet(names ...string) *FieldSet { return set.From(names) }

// ReferenceCount is the usage of a bound symbol within a scope.
//
// Overwritten is only set for Update, and Fields is only set for Access and Update.
type ReferenceCount struct {
	Kind        Kind
	Overwritten *FieldSet
	Fields      FieldAccess
}

// Ref returns a ReferenceCount of kind Seen, Unique, or Shared.
func Ref(kind Kind) ReferenceCount { return ReferenceCount{Kind: kind} }

// AccessOf returns a ReferenceCount for a symbol which is only read through fields.
func AccessOf(fields FieldAccess) ReferenceCount {
	return ReferenceCount{Kind: Access, Fields: fields}
}

// UpdateOf returns a ReferenceCount for a symbol consumed by a record update which overwrites
// the given fields, and reads the old values of fields.
func UpdateOf(overwritten *FieldSet, fields FieldAccess) ReferenceCount {
	if overwritten == nil {
		overwritten = NewFieldSet()
	}
	return ReferenceCount{Kind: Update, Overwritten: overwritten, Fields: fields}
}

func (rc ReferenceCount) overwritten() *FieldSet {
	if rc.Overwritten == nil {
		return NewFieldSet()
	}
	return rc.Overwritten
}

func (rc ReferenceCount) String() string {
	switch rc.Kind {
	case Access:
		return "Access " + rc.Fields.String()
	case Update:
		names := rc.overwritten().Slice()
		slices.Sort(names)
		return "Update [" + strings.Join(names, ", ") + "] " + rc.Fields.String()
	}
	return rc.Kind.String()
}

// Equal reports whether two reference counts are identical.
func (rc ReferenceCount) Equal(other ReferenceCount) bool { return rc.String() == other.String() }

// Sequential combines the usage rc with a later, unconditional usage next.
func (rc ReferenceCount) Sequential(next ReferenceCount) ReferenceCount {
	a, b := rc, next
	switch {
	case a.Kind == Shared || b.Kind == Shared:
		return Ref(Shared)
	case a.Kind == Seen:
		return b
	case b.Kind == Seen:
		return a
	}
	// order the pair so a.Kind <= b.Kind
	if a.Kind > b.Kind {
		a, b = b, a
	}
	switch a.Kind {
	case Unique:
		switch b.Kind {
		case Unique, Update:
			return Ref(Shared)
		case Access:
			// the whole record is consumed alongside its fields
			return UpdateOf(NewFieldSet(), b.Fields.Promote())
		}
	case Access:
		switch b.Kind {
		case Access:
			return AccessOf(seqMerge(a.Fields, b.Fields, false))
		case Update:
			// fields carried forward by the update are read a second time
			overwritten := b.overwritten()
			carried := a.Fields.promoteExcept(overwritten.Contains)
			return UpdateOf(overwritten.Copy(), seqMerge(carried, b.Fields, false))
		}
	case Update:
		return Ref(Shared)
	}
	return Ref(Shared)
}

// Parallel combines the usage rc with a usage next in a mutually exclusive branch.
func (rc ReferenceCount) Parallel(next ReferenceCount) ReferenceCount {
	a, b := rc, next
	switch {
	case a.Kind == Shared || b.Kind == Shared:
		return Ref(Shared)
	case a.Kind == Seen:
		return b
	case b.Kind == Seen:
		return a
	}
	if a.Kind > b.Kind {
		a, b = b, a
	}
	switch a.Kind {
	case Unique:
		switch b.Kind {
		case Unique:
			return Ref(Unique)
		case Access, Update:
			return UpdateOf(NewFieldSet(), b.Fields)
		}
	case Access:
		switch b.Kind {
		case Access:
			return AccessOf(parMerge(a.Fields, b.Fields))
		case Update:
			overwritten := b.overwritten().Copy()
			for _, name := range a.Fields.Names() {
				overwritten.Remove(name)
			}
			return UpdateOf(overwritten, parMerge(a.Fields, b.Fields))
		}
	case Update:
		overwritten := NewFieldSet()
		for _, name := range a.overwritten().Slice() {
			if b.overwritten().Contains(name) {
				overwritten.Insert(name)
			}
		}
		return UpdateOf(overwritten, parMerge(a.Fields, b.Fields))
	}
	return Ref(Shared)
}
