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
	"errors"
	"io"
	"log/slog"

	"github.com/wdamron/uniq/ast"
	"github.com/wdamron/uniq/constrain"
	"github.com/wdamron/uniq/internal/typeutil"
	"github.com/wdamron/uniq/sharing"
	"github.com/wdamron/uniq/types"
)

var (
	ErrEmptyExpression = errors.New("empty expression")
	ErrNilSubs         = errors.New("nil substitution store")
)

// InferenceContext is a reusable context for type inference.
//
// An inference context cannot be used concurrently.
type InferenceContext struct {
	common     typeutil.CommonContext
	scope      scope
	logger     *slog.Logger
	needsReset bool
}

// Create a new type-inference context. A context may be reused for inference.
func NewContext() *InferenceContext {
	return &InferenceContext{
		scope:  make(scope, 32),
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// SetLogger replaces the logger which receives debug traces of solving. A nil logger discards traces.
func (ti *InferenceContext) SetLogger(logger *slog.Logger) {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	ti.logger = logger
}

func (ti *InferenceContext) reset() {
	ti.common.Reset()
	for name := range ti.scope {
		delete(ti.scope, name)
	}
	ti.needsReset = false
}

// Reset the state of the context. The context will be reset automatically before inference.
func (ti *InferenceContext) Reset() {
	if !ti.needsReset {
		return
	}
	ti.reset()
}

// Solution is the result of inference: a solved substitution store, the variable holding
// the type of the root expression, and the problems recorded while solving.
type Solution struct {
	Subs     *types.Subs
	Root     types.Variable
	Problems []types.Problem
}

// TypeString names the free type-variables reachable from the root and prints the root type.
func (s *Solution) TypeString() string { return TypeString(s.Subs, s.Root) }

// TypeString names the free type-variables reachable from v and prints the type of v.
func TypeString(subs *types.Subs, v types.Variable) string {
	types.NameAllTypeVars(subs, v)
	return types.ContentString(subs, v)
}

// Infer the type of expr in a fresh substitution store. Identifiers declared in env are in scope; env may be nil.
//
// Type errors do not fail inference; they are returned as problems in the solution.
func (ti *InferenceContext) Infer(expr ast.Expr, env *TypeEnv) (*Solution, error) {
	subs := types.NewSubs()
	root, problems, err := ti.InferWithSubs(expr, env, subs)
	if err != nil {
		return nil, err
	}
	return &Solution{Subs: subs, Root: root, Problems: problems}, nil
}

// InferWithSubs infers the type of expr, allocating variables in subs. The returned variable holds the type of expr.
func (ti *InferenceContext) InferWithSubs(expr ast.Expr, env *TypeEnv, subs *types.Subs) (types.Variable, []types.Problem, error) {
	if expr == nil {
		return 0, nil, ErrEmptyExpression
	}
	if subs == nil {
		return 0, nil, ErrNilSubs
	}
	if ti.needsReset {
		ti.reset()
	}
	ti.common.Init(subs, ti.logger)

	b := constrain.NewBuilder(subs, sharing.Analyze(expr))
	if env != nil {
		ti.declare(b, env)
	}
	c, root := b.Root(expr)
	ti.solve(types.TopLevel, c)

	problems := ti.common.Problems
	ti.common.Reset()
	ti.needsReset = true
	return root, problems, nil
}

// declare binds the identifiers of env to generalized variables for their declared types.
func (ti *InferenceContext) declare(b *constrain.Builder, env *TypeEnv) {
	subs := ti.common.Subs
	inner := types.TopLevel + 1
	for _, name := range env.Names() {
		t, rigid, flex := b.Annotation(env.Lookup(name))
		for _, v := range rigid {
			subs.SetLevel(v, inner)
		}
		for _, v := range flex {
			subs.SetLevel(v, inner)
		}
		v := subs.ToVar(inner, t)
		ti.common.Generalize(types.TopLevel, v)
		ti.scope.Assign(name, v)
	}
}
