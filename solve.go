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

package uniq

import (
	"context"
	"log/slog"

	"github.com/wdamron/uniq/types"
)

// scope maps the symbols in scope to their type-variables while solving.
type scope map[string]types.Variable

func (s scope) Lookup(name string) (types.Variable, bool) {
	v, ok := s[name]
	return v, ok
}

func (s scope) Assign(name string, v types.Variable) { s[name] = v }

func (s scope) Remove(name string) { delete(s, name) }

func (ti *InferenceContext) solve(level int, c types.Constraint) {
	subs := ti.common.Subs
	switch c := c.(type) {
	case types.True:

	case types.Eq:
		ti.common.Unify(subs.ToVar(level, c.Type), subs.ToVar(level, c.Expected))

	case types.Lookup:
		v, ok := ti.scope.Lookup(c.Symbol)
		if !ok {
			// Unresolved names are reported by canonicalization.
			ti.logger.Debug("undefined symbol", "symbol", c.Symbol)
			return
		}
		ti.common.Unify(ti.common.Instantiate(level, v), subs.ToVar(level, c.Expected))

	case types.And:
		for _, sub := range c {
			ti.solve(level, sub)
		}

	case *types.Let:
		if c.Generalize {
			ti.solveGeneralized(level, c)
			return
		}
		ti.introduce(level, c)
		ti.solve(level, c.Defs)
		stashed := ti.bind(c.Headers, ti.headerVars(level, c.Headers))
		ti.solve(level, c.Body)
		ti.common.Unstash(ti.scope, stashed)

	case nil:

	default:
		panic("unexpected constraint " + c.ConstraintName())
	}
}

// solveGeneralized solves the definitions of let one level deeper, then generalizes the
// header types before solving the body.
func (ti *InferenceContext) solveGeneralized(level int, let *types.Let) {
	inner := level + 1
	ti.introduce(inner, let)
	headers := ti.headerVars(inner, let.Headers)

	stashed := 0
	if let.Recursive {
		stashed = ti.bind(let.Headers, headers)
	}
	ti.solve(inner, let.Defs)
	ti.common.Unstash(ti.scope, stashed)

	generalized := 0
	for _, v := range headers {
		generalized += ti.common.Generalize(level, v)
	}
	if ti.logger.Enabled(context.Background(), slog.LevelDebug) {
		symbols := make([]string, len(let.Headers))
		for i, h := range let.Headers {
			symbols[i] = h.Symbol + " : " + types.ContentString(ti.common.Subs, headers[i])
		}
		ti.logger.Debug("generalized definitions", "level", level, "vars", generalized, "symbols", symbols)
	}

	stashed = ti.bind(let.Headers, headers)
	ti.solve(level, let.Body)
	ti.common.Unstash(ti.scope, stashed)
}

func (ti *InferenceContext) introduce(level int, let *types.Let) {
	subs := ti.common.Subs
	for _, v := range let.Rigid {
		subs.SetLevel(v, level)
	}
	for _, v := range let.Flex {
		subs.SetLevel(v, level)
	}
}

func (ti *InferenceContext) headerVars(level int, headers []types.Header) []types.Variable {
	vars := make([]types.Variable, len(headers))
	for i, h := range headers {
		vars[i] = ti.common.Subs.ToVar(level, h.Type)
	}
	return vars
}

// bind shadows the header symbols with their variables, returning the number of stashed bindings.
func (ti *InferenceContext) bind(headers []types.Header, vars []types.Variable) int {
	stashed := 0
	for i, h := range headers {
		stashed += ti.common.Stash(ti.scope, h.Symbol)
		ti.scope.Assign(h.Symbol, vars[i])
	}
	return stashed
}
