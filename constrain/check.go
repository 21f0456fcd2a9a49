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

package constrain

import (
	"slices"

	"github.com/hashicorp/go-set/v2"

	"github.com/wdamron/uniq/types"
)

// CheckVariableUsage returns the variables referenced by c which are neither
// introduced by an enclosing Let nor listed in roots, sorted and without duplicates.
func CheckVariableUsage(c types.Constraint, roots ...types.Variable) []types.Variable {
	declared := set.From(roots)
	undeclared := set.New[types.Variable](0)
	checkVars(c, declared, undeclared)
	vars := undeclared.Slice()
	slices.Sort(vars)
	return vars
}

func checkVars(c types.Constraint, declared, undeclared *set.Set[types.Variable]) {
	check := func(t types.Type) {
		types.Vars(t, func(v types.Variable) {
			if !declared.Contains(v) {
				undeclared.Insert(v)
			}
		})
	}
	switch c := c.(type) {
	case types.True:
	case types.Eq:
		check(c.Type)
		check(c.Expected)
	case types.Lookup:
		check(c.Expected)
	case types.And:
		for _, sub := range c {
			checkVars(sub, declared, undeclared)
		}
	case *types.Let:
		var added []types.Variable
		for _, vars := range [][]types.Variable{c.Rigid, c.Flex} {
			for _, v := range vars {
				if declared.Insert(v) {
					added = append(added, v)
				}
			}
		}
		for _, header := range c.Headers {
			check(header.Type)
		}
		checkVars(c.Defs, declared, undeclared)
		checkVars(c.Body, declared, undeclared)
		for _, v := range added {
			declared.Remove(v)
		}
	}
}
