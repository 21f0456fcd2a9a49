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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubsFreshAndUnion(t *testing.T) {
	subs := NewSubs()
	a := subs.FreshFlex()
	b := subs.FreshAt(RigidVar{Name: "r"}, TopLevel)
	require.Equal(t, 2, subs.Len())
	require.False(t, subs.Equivalent(a, b))

	root := subs.Union(a, b, Descriptor{Content: RigidVar{Name: "r"}, Level: TopLevel})
	require.True(t, subs.Equivalent(a, b))
	assert.Equal(t, root, subs.Root(a))
	assert.Equal(t, root, subs.Root(b))
	assert.Equal(t, RigidVar{Name: "r"}, subs.Content(a))
	assert.Equal(t, TopLevel, subs.Level(a))
	assert.Equal(t, uint8(1), subs.Get(a).Rank)
}

func TestSubsUnionByRank(t *testing.T) {
	subs := NewSubs()
	vars := make([]Variable, 8)
	for i := range vars {
		vars[i] = subs.FreshFlex()
	}
	subs.Union(vars[0], vars[1], Descriptor{Content: FlexVar{}})
	subs.Union(vars[2], vars[3], Descriptor{Content: FlexVar{}})
	big := subs.Union(vars[0], vars[2], Descriptor{Content: FlexVar{}})
	require.Equal(t, uint8(2), subs.Get(big).Rank)

	// A lower-ranked class is attached beneath the higher-ranked root.
	root := subs.Union(vars[4], vars[0], Descriptor{Content: Error{}})
	assert.Equal(t, big, root)
	assert.Equal(t, uint8(2), subs.Get(vars[4]).Rank)
	for _, v := range vars[:5] {
		assert.Equal(t, root, subs.Root(v))
		assert.Equal(t, Error{}, subs.Content(v))
	}
	for _, v := range vars[5:] {
		assert.True(t, subs.IsFlex(v))
	}
}

func TestSubsSetters(t *testing.T) {
	subs := NewSubs()
	a := subs.FreshFlex()
	b := subs.FreshFlex()
	subs.Union(a, b, Descriptor{Content: FlexVar{}, Level: 3})
	subs.SetLevel(b, GenericLevel)
	subs.SetContent(b, FlexVar{Name: "x"})
	assert.Equal(t, GenericLevel, subs.Level(a))
	assert.Equal(t, FlexVar{Name: "x"}, subs.Content(a))
	assert.False(t, subs.IsFlex(subs.Fresh(Error{})))
}

func TestToVar(t *testing.T) {
	subs := NewSubs()
	u := subs.FreshFlex()
	v := subs.ToVar(TopLevel, Attributed(TVar{u}, TRecord{
		Fields: []Field{{Name: "b", Type: Str()}, {Name: "a", Type: Int()}},
		Ext:    TEmptyRecord{},
	}))
	assert.Equal(t, TopLevel, subs.Level(v))
	assert.Equal(t, "Attr.Attr * { a : Int, b : Str }", ContentString(subs, v))

	var seen []Variable
	Vars(TFunc{Args: []Type{TVar{u}}, Ret: TTagUnion{Tags: []Tag{{Name: "Foo", Args: []Type{TVar{v}}}}, Ext: TVar{u}}}, func(x Variable) {
		seen = append(seen, x)
	})
	assert.Equal(t, []Variable{u, v, u}, seen)
}
