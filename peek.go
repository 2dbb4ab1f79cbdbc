// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package inf

// Peekable is a producer with one element of lookahead.
// Because the underlying producer never ends, Peek always has an
// element to show — there is no "peeked past the end" case.
type Peekable[E any] struct {
	p    Producer[E]
	slot E
	full bool
}

// NewPeekable wraps p with one element of lookahead.
// The wrapper takes exclusive ownership of p.
func NewPeekable[E any](p Producer[E]) *Peekable[E] {
	return &Peekable[E]{p: p}
}

// Next implements [Producer]. It returns the buffered element if one
// was peeked, otherwise it advances the underlying producer.
func (pk *Peekable[E]) Next() E {
	if pk.full {
		pk.full = false
		return pk.slot
	}
	return pk.p.Next()
}

// Peek returns a pointer to the element the next call to Next will
// yield, advancing the underlying producer at most once per buffered
// element. Mutation through the pointer is visible to that Next call.
func (pk *Peekable[E]) Peek() *E {
	if !pk.full {
		pk.slot = pk.p.Next()
		pk.full = true
	}
	return &pk.slot
}
