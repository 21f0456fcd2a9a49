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

import "strconv"

// Special binding-levels:
const (
	// Level of variables which have not been introduced by any Let.
	NoLevel = 0
	// Level of the outermost Let.
	TopLevel = 1
	// Level of generalized variables.
	GenericLevel = 1<<31 - 1
)

// Variable is a dense index into a substitution store.
type Variable uint32

func (v Variable) String() string { return "v" + strconv.Itoa(int(v)) }

// Descriptor is the state shared by every variable in one equivalence class.
type Descriptor struct {
	Content Content
	// Rank bounds the height of the union-find tree.
	Rank uint8
	// Level is the binding-level used for let-generalization.
	Level int
}

type entry struct {
	parent Variable
	desc   Descriptor
}

// Subs is an arena of type-variables with union-find merging.
//
// A store is owned by a single inference request and cannot be used concurrently.
type Subs struct {
	entries []entry
}

func NewSubs() *Subs { return &Subs{entries: make([]entry, 0, 64)} }

// Len returns the number of allocated variables.
func (s *Subs) Len() int { return len(s.entries) }

// Fresh allocates a variable with the given content at NoLevel.
func (s *Subs) Fresh(content Content) Variable {
	return s.FreshAt(content, NoLevel)
}

// FreshAt allocates a variable with the given content and binding-level.
func (s *Subs) FreshAt(content Content, level int) Variable {
	v := Variable(len(s.entries))
	s.entries = append(s.entries, entry{parent: v, desc: Descriptor{Content: content, Level: level}})
	return v
}

// FreshFlex allocates an unnamed flexible variable.
func (s *Subs) FreshFlex() Variable { return s.Fresh(FlexVar{}) }

// Root finds the representative of v, compressing the path behind it.
func (s *Subs) Root(v Variable) Variable {
	root := v
	for s.entries[root].parent != root {
		root = s.entries[root].parent
	}
	for v != root {
		next := s.entries[v].parent
		s.entries[v].parent = root
		v = next
	}
	return root
}

// Equivalent reports whether a and b resolve to the same descriptor.
func (s *Subs) Equivalent(a, b Variable) bool { return s.Root(a) == s.Root(b) }

// Get returns the descriptor of v's equivalence class.
func (s *Subs) Get(v Variable) Descriptor { return s.entries[s.Root(v)].desc }

// Content returns the content of v's equivalence class.
func (s *Subs) Content(v Variable) Content { return s.entries[s.Root(v)].desc.Content }

// SetContent replaces the content of v's equivalence class.
func (s *Subs) SetContent(v Variable, c Content) { s.entries[s.Root(v)].desc.Content = c }

// Level returns the binding-level of v's equivalence class.
func (s *Subs) Level(v Variable) int { return s.entries[s.Root(v)].desc.Level }

// SetLevel sets the binding-level of v's equivalence class.
func (s *Subs) SetLevel(v Variable, level int) { s.entries[s.Root(v)].desc.Level = level }

// Union merges the classes of a and b, storing desc as the merged descriptor.
// The rank of desc is ignored; the merged rank is derived from both classes.
func (s *Subs) Union(a, b Variable, desc Descriptor) Variable {
	ra, rb := s.Root(a), s.Root(b)
	if ra == rb {
		desc.Rank = s.entries[ra].desc.Rank
		s.entries[ra].desc = desc
		return ra
	}
	rankA, rankB := s.entries[ra].desc.Rank, s.entries[rb].desc.Rank
	root, child := ra, rb
	switch {
	case rankA < rankB:
		root, child = rb, ra
	case rankA == rankB:
		rankA++
	}
	if root == ra {
		desc.Rank = rankA
	} else {
		desc.Rank = rankB
	}
	s.entries[child].parent = root
	s.entries[root].desc = desc
	return root
}

// IsFlex reports whether v is an unresolved flexible variable.
func (s *Subs) IsFlex(v Variable) bool {
	_, ok := s.Content(v).(FlexVar)
	return ok
}
