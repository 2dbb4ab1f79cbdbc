// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package inf

import (
	"math"

	"code.hybscloud.com/kont"
)

type enumerated[E any] struct {
	p        Producer[E]
	n        uint64
	overflow bool
}

func (e *enumerated[E]) Next() kont.Pair[uint64, E] {
	if e.overflow {
		panic("inf: position tag overflow")
	}
	n := e.n
	if n == math.MaxUint64 {
		e.overflow = true
	} else {
		e.n = n + 1
	}
	v := e.p.Next()
	return kont.Pair[uint64, E]{Fst: n, Snd: v}
}

// Enumerate returns a producer whose Next yields (n, p.Next()) with n
// counting up from 0 by 1 on every call.
//
// Overflow policy: fail. An advance after the tag has reached the
// maximum uint64 panics before touching the underlying producer;
// the tag is never silently wrapped or saturated.
func Enumerate[E any](p Producer[E]) Producer[kont.Pair[uint64, E]] {
	return EnumerateFrom(p, 0)
}

// EnumerateFrom is [Enumerate] with a configurable tag origin.
func EnumerateFrom[E any](p Producer[E], origin uint64) Producer[kont.Pair[uint64, E]] {
	return &enumerated[E]{p: p, n: origin}
}
