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

// ProblemKind classifies a failed unification.
type ProblemKind uint8

const (
	// Structural or attribute conflict between two unified contents.
	TypeMismatch ProblemKind = iota
	// A variable would occur inside its own structure.
	CircularType
)

func (k ProblemKind) String() string {
	switch k {
	case TypeMismatch:
		return "TypeMismatch"
	case CircularType:
		return "CircularType"
	}
	return "ProblemKind(?)"
}

// Problem describes one failed unification. Left and Right are the rendered
// sides at the point of failure.
type Problem struct {
	Kind  ProblemKind
	Left  string
	Right string
}

func (p Problem) Error() string {
	if p.Kind == CircularType {
		return "circular type: " + p.Left + " occurs in " + p.Right
	}
	return "type mismatch: " + p.Left + " vs. " + p.Right
}
