// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package inf

type mapped[A, B any] struct {
	p Producer[A]
	f func(A) B
}

func (m *mapped[A, B]) Next() B { return m.f(m.p.Next()) }

// Map returns a producer whose Next computes f(p.Next()).
// The underlying producer advances exactly once per call, so
// Map(p, identity) is indistinguishable from p itself.
func Map[A, B any](p Producer[A], f func(A) B) Producer[B] {
	return &mapped[A, B]{p: p, f: f}
}
