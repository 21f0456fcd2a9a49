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
	"sort"
	"strings"

	"github.com/benbjohnson/immutable"
)

// Kind classifies a ReferenceCount. Field entries of a FieldAccess are always
// Seen, Unique, or Shared.
type Kind uint8

const (
	// Only passed through toward a deeper field.
	Seen Kind = iota
	// Consumed at most once on any path.
	Unique
	// Consumed more than once.
	Shared
	// Only read through fields.
	Access
	// Consumed by a record update.
	Update
)

func (k Kind) String() string {
	switch k {
	case Seen:
		return "Seen"
	case Unique:
		return "Unique"
	case Shared:
		return "Shared"
	case Access:
		return "Access"
	case Update:
		return "Update"
	}
	return "Kind(?)"
}

// Leaf counts are added for sequential visits.
func addKinds(a, b Kind) Kind {
	if n := leafCount(a) + leafCount(b); n >= 2 {
		return Shared
	} else if n == 1 {
		return Unique
	}
	return Seen
}

func leafCount(k Kind) int {
	switch k {
	case Unique:
		return 1
	case Shared:
		return 2
	}
	return 0
}

func maxKind(a, b Kind) Kind {
	if b > a {
		return b
	}
	return a
}

func promoteKind(k Kind) Kind {
	if k == Unique {
		return Shared
	}
	return k
}

// FieldUsage is the usage of one field within a FieldAccess.
type FieldUsage struct {
	Kind   Kind
	Nested FieldAccess
	// set once the field has been both consumed and passed through
	tainted bool
}

func (u FieldUsage) isLeaf() bool { return u.Kind == Unique || u.Kind == Shared }

// FieldAccess is an immutable tree of field usages, keyed by field name.
type FieldAccess struct {
	m *immutable.SortedMap
}

var emptyFields = immutable.NewSortedMap(nil)

// FromChain returns the usage of a single access through chain: each field before the last
// is Seen, and the last field is Unique.
func FromChain(chain []string) FieldAccess {
	if len(chain) == 0 {
		return FieldAccess{}
	}
	usage := FieldUsage{Kind: Unique}
	for i := len(chain) - 1; i >= 0; i-- {
		fa := FieldAccess{emptyFields.Set(chain[i], usage)}
		if i == 0 {
			return fa
		}
		usage = FieldUsage{Kind: Seen, Nested: fa}
	}
	panic("unreachable")
}

// Len returns the number of top-level fields.
func (fa FieldAccess) Len() int {
	if fa.m == nil {
		return 0
	}
	return fa.m.Len()
}

// IsEmpty reports whether no fields were observed.
func (fa FieldAccess) IsEmpty() bool { return fa.Len() == 0 }

// Get returns the usage of a top-level field.
func (fa FieldAccess) Get(name string) (FieldUsage, bool) {
	if fa.m == nil {
		return FieldUsage{}, false
	}
	u, ok := fa.m.Get(name)
	if !ok {
		return FieldUsage{}, false
	}
	return u.(FieldUsage), true
}

// Range iterates over top-level fields in sorted order. If f returns false, iteration will be stopped.
func (fa FieldAccess) Range(f func(string, FieldUsage) bool) {
	if fa.m == nil {
		return
	}
	iter := fa.m.Iterator()
	for !iter.Done() {
		k, v := iter.Next()
		if !f(k.(string), v.(FieldUsage)) {
			return
		}
	}
}

// Names returns the sorted top-level field names.
func (fa FieldAccess) Names() []string {
	names := make([]string, 0, fa.Len())
	fa.Range(func(name string, _ FieldUsage) bool {
		names = append(names, name)
		return true
	})
	return names
}

// Sequential records an unconditional access through chain, after all accesses already recorded.
func (fa FieldAccess) Sequential(chain []string) FieldAccess {
	return seqMerge(fa, FromChain(chain), false)
}

// Parallel records an access through chain in a branch which is mutually exclusive with the
// branches of the accesses already recorded.
func (fa FieldAccess) Parallel(chain []string) FieldAccess {
	return parMerge(fa, FromChain(chain))
}

// Paths flattens the tree into a mapping from dotted field paths to kinds.
func (fa FieldAccess) Paths() map[string]Kind {
	paths := make(map[string]Kind)
	fa.paths("", paths)
	return paths
}

func (fa FieldAccess) paths(prefix string, out map[string]Kind) {
	fa.Range(func(name string, u FieldUsage) bool {
		out[prefix+name] = u.Kind
		u.Nested.paths(prefix+name+".", out)
		return true
	})
}

func (fa FieldAccess) String() string {
	var sb strings.Builder
	fa.writeTo(&sb)
	return sb.String()
}

func (fa FieldAccess) writeTo(sb *strings.Builder) {
	sb.WriteByte('{')
	i := 0
	fa.Range(func(name string, u FieldUsage) bool {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(name)
		sb.WriteString(": ")
		sb.WriteString(u.Kind.String())
		if !u.Nested.IsEmpty() {
			sb.WriteByte(' ')
			u.Nested.writeTo(sb)
		}
		i++
		return true
	})
	sb.WriteByte('}')
}

// Equal reports whether two trees record the same usages.
func (fa FieldAccess) Equal(other FieldAccess) bool { return fa.String() == other.String() }

func unionNames(a, b FieldAccess) []string {
	seen := make(map[string]struct{}, a.Len()+b.Len())
	names := make([]string, 0, a.Len()+b.Len())
	for _, fa := range [2]FieldAccess{a, b} {
		fa.Range(func(name string, _ FieldUsage) bool {
			if _, ok := seen[name]; !ok {
				seen[name] = struct{}{}
				names = append(names, name)
			}
			return true
		})
	}
	sort.Strings(names)
	return names
}

func seqMerge(a, b FieldAccess, taintedAncestor bool) FieldAccess {
	if a.IsEmpty() && b.IsEmpty() {
		return FieldAccess{}
	}
	builder := immutable.NewSortedMapBuilder(emptyFields)
	for _, name := range unionNames(a, b) {
		ua, okA := a.Get(name)
		ub, okB := b.Get(name)
		var u FieldUsage
		switch {
		case okA && okB:
			u.Kind = addKinds(ua.Kind, ub.Kind)
			u.tainted = ua.tainted || ub.tainted ||
				((ua.isLeaf() || ub.isLeaf()) && (!ua.Nested.IsEmpty() || !ub.Nested.IsEmpty()))
			u.Nested = seqMerge(ua.Nested, ub.Nested, taintedAncestor || u.tainted)
		case okA:
			u = ua
		default:
			u = ub
		}
		if u.tainted {
			u.Nested = u.Nested.Promote()
		}
		if taintedAncestor {
			u = u.promote()
		}
		builder.Set(name, u)
	}
	return FieldAccess{builder.Map()}
}

func parMerge(a, b FieldAccess) FieldAccess {
	if a.IsEmpty() {
		return b
	}
	if b.IsEmpty() {
		return a
	}
	builder := immutable.NewSortedMapBuilder(emptyFields)
	for _, name := range unionNames(a, b) {
		ua, okA := a.Get(name)
		ub, okB := b.Get(name)
		switch {
		case okA && okB:
			builder.Set(name, FieldUsage{
				Kind:    maxKind(ua.Kind, ub.Kind),
				Nested:  parMerge(ua.Nested, ub.Nested),
				tainted: ua.tainted || ub.tainted,
			})
		case okA:
			builder.Set(name, ua)
		default:
			builder.Set(name, ub)
		}
	}
	return FieldAccess{builder.Map()}
}

func (u FieldUsage) promote() FieldUsage {
	u.Kind = promoteKind(u.Kind)
	u.Nested = u.Nested.Promote()
	return u
}

// Promote returns a copy of the tree where every Unique field is Shared.
func (fa FieldAccess) Promote() FieldAccess {
	return fa.promoteExcept(nil)
}

// promoteExcept promotes every top-level field not in keep, and everything nested below them.
func (fa FieldAccess) promoteExcept(keep func(string) bool) FieldAccess {
	if fa.IsEmpty() {
		return fa
	}
	builder := immutable.NewSortedMapBuilder(fa.m)
	fa.Range(func(name string, u FieldUsage) bool {
		if keep == nil || !keep(name) {
			builder.Set(name, u.promote())
		}
		return true
	})
	return FieldAccess{builder.Map()}
}
