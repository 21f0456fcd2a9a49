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

// uniq provides type inference with uniqueness attributes for a small functional language
// with extensible records and tag unions.
//
// Every value type carries an attribute, printed as `Attr.Attr <attribute> <type>`. An attribute
// is flexible (`*`), `Attr.Shared`, or `Attr.Unique`. A sharing analysis records how each symbol
// and each of its nested record fields is used; uses which may alias a value fix its attribute
// to `Attr.Shared`, so later stages may update the storage of values which are not shared.
//
// Inference proceeds in four steps:
//
//   * The usage of each symbol is analyzed (package sharing).
//   * Constraints are built from the expression and the usage (package constrain).
//   * Constraints are solved by unification over a substitution store, with level-based
//     let-generalization. Failed unifications are recorded as problems and do not stop the solver.
//   * Free type-variables reachable from the root are named and the root type is printed (package types).
//
//
// Links:
//
// Efficient Generalization with Levels (Oleg Kiselyov): http://okmij.org/ftp/ML/generalization.html#levels
//
// Uniqueness Typing Simplified (de Vries, Plasmeijer, Abrahamson): https://www.edsko.net/pubs/ifl07-paper.pdf
//
// Hindley-Milner type system: https://en.wikipedia.org/wiki/Hindley–Milner_type_system
package uniq
