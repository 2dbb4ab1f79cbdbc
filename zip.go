// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package inf

import (
	"code.hybscloud.com/kont"
)

type zipped[A, B any] struct {
	p Producer[A]
	q Producer[B]
}

func (z *zipped[A, B]) Next() kont.Pair[A, B] {
	// Advance p, then q, exactly once each.
	a := z.p.Next()
	b := z.q.Next()
	return kont.Pair[A, B]{Fst: a, Snd: b}
}

// Zip returns a producer whose Next yields (p.Next(), q.Next()),
// advancing p then q exactly once each on every call. Both operands
// become exclusively owned by the pair producer.
func Zip[A, B any](p Producer[A], q Producer[B]) Producer[kont.Pair[A, B]] {
	return &zipped[A, B]{p: p, q: q}
}
