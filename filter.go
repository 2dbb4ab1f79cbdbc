// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package inf

type filtered[E any] struct {
	p    Producer[E]
	keep func(E) bool
}

func (f *filtered[E]) Next() E {
	for {
		if v := f.p.Next(); f.keep(v) {
			return v
		}
	}
}

// Filter returns a producer yielding only the elements keep admits.
// The never-ending contract holds only if keep admits infinitely many
// elements; otherwise Next spins forever, a caller responsibility.
func Filter[E any](p Producer[E], keep func(E) bool) Producer[E] {
	return &filtered[E]{p: p, keep: keep}
}

type filterMapped[A, B any] struct {
	p Producer[A]
	f func(A) (B, bool)
}

func (m *filterMapped[A, B]) Next() B {
	for {
		if v, ok := m.f(m.p.Next()); ok {
			return v
		}
	}
}

// FilterMap fuses [Filter] and [Map]: f returns the transformed
// element and whether to keep it. The same divergence caveat as
// [Filter] applies when f eventually rejects everything.
func FilterMap[A, B any](p Producer[A], f func(A) (B, bool)) Producer[B] {
	return &filterMapped[A, B]{p: p, f: f}
}
