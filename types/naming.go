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
	"strconv"

	"github.com/hashicorp/go-set/v2"
)

var _names [128]string

func init() {
	for i := range _names {
		_names[i] = nameFor(i)
	}
}

func nameFor(i int) string {
	letter := string(rune('a' + i%26))
	if i < 26 {
		return letter
	}
	return letter + strconv.Itoa(i/26)
}

func getVarName(i int) string {
	if i < len(_names) {
		return _names[i]
	}
	return nameFor(i)
}

type occurrences struct {
	subs   *Subs
	counts map[Variable]int
	order  []Variable
	taken  *set.Set[string]
}

func (o *occurrences) visit(v Variable) {
	root := o.subs.Root(v)
	c := o.subs.Content(root)
	switch c := c.(type) {
	case FlexVar:
		if c.Name != "" {
			o.taken.Insert(c.Name)
			return
		}
		if o.counts[root] == 0 {
			o.order = append(o.order, root)
		}
		o.counts[root]++
		return
	case RigidVar:
		o.taken.Insert(c.Name)
		return
	case Alias:
		// only the arguments of an alias are printed
		for _, arg := range c.Args {
			o.visit(arg.Var)
		}
		return
	}
	Children(c, o.visit)
}

// NameAllTypeVars names every unnamed flexible variable which occurs more than once
// in the type of root. Names are assigned in printing order, skipping names which are
// already used by rigid or named variables. Variables which occur once stay unnamed.
func NameAllTypeVars(subs *Subs, root Variable) {
	o := &occurrences{subs: subs, counts: make(map[Variable]int), taken: set.New[string](8)}
	o.visit(root)

	next := 0
	for _, v := range o.order {
		if o.counts[v] < 2 {
			continue
		}
		name := getVarName(next)
		for o.taken.Contains(name) {
			next++
			name = getVarName(next)
		}
		next++
		o.taken.Insert(name)
		subs.SetContent(v, FlexVar{Name: name})
	}
}
