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
	"github.com/benbjohnson/immutable"
)

var emptyMap = immutable.NewSortedMap(nil)

var (
	EmptyFieldMap = FieldMap{emptyMap}
	EmptyTagMap   = TagMap{emptyMap}
)

// FieldMap contains immutable mappings from record field names to variables.
type FieldMap struct {
	m *immutable.SortedMap
}

// Get the number of entries in the map.
func (m FieldMap) Len() int {
	if m.m == nil {
		return 0
	}
	return m.m.Len()
}

// Get the variable for a field.
func (m FieldMap) Get(name string) (Variable, bool) {
	if m.m == nil {
		return 0, false
	}
	v, ok := m.m.Get(name)
	if !ok {
		return 0, false
	}
	return v.(Variable), true
}

// Iterate over entries in the map, sorted by field name.
// If f returns false, iteration will be stopped.
func (m FieldMap) Range(f func(string, Variable) bool) {
	if m.m == nil {
		return
	}
	iter := m.m.Iterator()
	for !iter.Done() {
		k, v := iter.Next()
		if !f(k.(string), v.(Variable)) {
			return
		}
	}
}

// Names returns the sorted field names.
func (m FieldMap) Names() []string {
	names := make([]string, 0, m.Len())
	m.Range(func(name string, _ Variable) bool {
		names = append(names, name)
		return true
	})
	return names
}

// Convert the map to a builder for modification, without mutating the existing map.
func (m FieldMap) Builder() FieldMapBuilder {
	imm := m.m
	if imm == nil {
		imm = emptyMap
	}
	return FieldMapBuilder{immutable.NewSortedMapBuilder(imm)}
}

// FieldMapBuilder enables in-place updates of a map before finalization.
type FieldMapBuilder struct {
	b *immutable.SortedMapBuilder
}

func NewFieldMapBuilder() FieldMapBuilder {
	return FieldMapBuilder{immutable.NewSortedMapBuilder(emptyMap)}
}

// Get the number of entries in the builder.
func (b FieldMapBuilder) Len() int { return b.b.Len() }

// Set the variable for the given field in the builder.
func (b FieldMapBuilder) Set(name string, v Variable) FieldMapBuilder {
	b.b.Set(name, v)
	return b
}

// Merge entries into the builder. Existing entries are kept.
func (b FieldMapBuilder) Merge(m FieldMap) FieldMapBuilder {
	m.Range(func(name string, v Variable) bool {
		if _, ok := b.b.Get(name); !ok {
			b.b.Set(name, v)
		}
		return true
	})
	return b
}

// Finalize the builder into an immutable map.
func (b FieldMapBuilder) Build() FieldMap { return FieldMap{b.b.Map()} }

// TagMap contains immutable mappings from tag names to argument variables.
type TagMap struct {
	m *immutable.SortedMap
}

// Get the number of entries in the map.
func (m TagMap) Len() int {
	if m.m == nil {
		return 0
	}
	return m.m.Len()
}

// Get the argument variables for a tag.
func (m TagMap) Get(name string) ([]Variable, bool) {
	if m.m == nil {
		return nil, false
	}
	args, ok := m.m.Get(name)
	if !ok {
		return nil, false
	}
	return args.([]Variable), true
}

// Iterate over entries in the map, sorted by tag name.
// If f returns false, iteration will be stopped.
func (m TagMap) Range(f func(string, []Variable) bool) {
	if m.m == nil {
		return
	}
	iter := m.m.Iterator()
	for !iter.Done() {
		k, v := iter.Next()
		if !f(k.(string), v.([]Variable)) {
			return
		}
	}
}

// Convert the map to a builder for modification, without mutating the existing map.
func (m TagMap) Builder() TagMapBuilder {
	imm := m.m
	if imm == nil {
		imm = emptyMap
	}
	return TagMapBuilder{immutable.NewSortedMapBuilder(imm)}
}

// TagMapBuilder enables in-place updates of a map before finalization.
type TagMapBuilder struct {
	b *immutable.SortedMapBuilder
}

func NewTagMapBuilder() TagMapBuilder {
	return TagMapBuilder{immutable.NewSortedMapBuilder(emptyMap)}
}

// Get the number of entries in the builder.
func (b TagMapBuilder) Len() int { return b.b.Len() }

// Set the argument variables for the given tag in the builder.
func (b TagMapBuilder) Set(name string, args []Variable) TagMapBuilder {
	b.b.Set(name, args)
	return b
}

// Merge entries into the builder. Existing entries are kept.
func (b TagMapBuilder) Merge(m TagMap) TagMapBuilder {
	m.Range(func(name string, args []Variable) bool {
		if _, ok := b.b.Get(name); !ok {
			b.b.Set(name, args)
		}
		return true
	})
	return b
}

// Finalize the builder into an immutable map.
func (b TagMapBuilder) Build() TagMap { return TagMap{b.b.Map()} }
