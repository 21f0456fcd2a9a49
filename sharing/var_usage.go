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
)

// VarUsage maps bound symbols to their usage within a scope. A symbol without an entry
// is not used in the scope.
type VarUsage struct {
	usage map[string]ReferenceCount
}

// NewVarUsage returns an empty usage table.
func NewVarUsage() *VarUsage {
	return &VarUsage{usage: make(map[string]ReferenceCount)}
}

// Len returns the number of used symbols.
func (u *VarUsage) Len() int { return len(u.usage) }

// Get returns the usage of symbol.
func (u *VarUsage) Get(symbol string) (ReferenceCount, bool) {
	rc, ok := u.usage[symbol]
	return rc, ok
}

// Symbols returns the used symbols in sorted order.
func (u *VarUsage) Symbols() []string {
	symbols := make([]string, 0, len(u.usage))
	for symbol := range u.usage {
		symbols = append(symbols, symbol)
	}
	sort.Strings(symbols)
	return symbols
}

// Register records a usage of symbol after all usages already recorded.
func (u *VarUsage) Register(symbol string, rc ReferenceCount) {
	if prev, ok := u.usage[symbol]; ok {
		rc = prev.Sequential(rc)
	}
	u.usage[symbol] = rc
}

// RegisterUnique records a direct use of symbol.
func (u *VarUsage) RegisterUnique(symbol string) { u.Register(symbol, Ref(Unique)) }

// RegisterShared records a use of symbol which is known to be shared.
func (u *VarUsage) RegisterShared(symbol string) { u.Register(symbol, Ref(Shared)) }

// Sequential records an unconditional read of a field chain of symbol.
func (u *VarUsage) Sequential(symbol string, chain []string) {
	u.Register(symbol, AccessOf(FromChain(chain)))
}

// Parallel records a read of a field chain of symbol, in a branch which is mutually
// exclusive with the usages already recorded.
func (u *VarUsage) Parallel(symbol string, chain []string) {
	rc := AccessOf(FromChain(chain))
	if prev, ok := u.usage[symbol]; ok {
		rc = prev.Parallel(rc)
	}
	u.usage[symbol] = rc
}

// Unregister removes symbol, returning its usage.
func (u *VarUsage) Unregister(symbol string) (ReferenceCount, bool) {
	rc, ok := u.usage[symbol]
	delete(u.usage, symbol)
	return rc, ok
}

// MergeSequential records every usage of other after the usages already recorded.
func (u *VarUsage) MergeSequential(other *VarUsage) {
	for symbol, rc := range other.usage {
		u.Register(symbol, rc)
	}
}

// MergeParallel combines u with the usages of a mutually exclusive branch.
func (u *VarUsage) MergeParallel(other *VarUsage) {
	for symbol, rc := range other.usage {
		if prev, ok := u.usage[symbol]; ok {
			rc = prev.Parallel(rc)
		}
		u.usage[symbol] = rc
	}
}

func (u *VarUsage) String() string {
	var sb strings.Builder
	for i, symbol := range u.Symbols() {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(symbol)
		sb.WriteString(": ")
		sb.WriteString(u.usage[symbol].String())
	}
	return sb.String()
}
