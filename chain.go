// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package inf

import (
	"iter"
)

type chained[E any] struct {
	next func() (E, bool)
	stop func()
	tail Producer[E]
}

func (c *chained[E]) Next() E {
	if c.next != nil {
		if v, ok := c.next(); ok {
			return v
		}
		c.stop()
		c.next, c.stop = nil, nil
	}
	return c.tail.Next()
}

// Chain returns a producer that yields the elements of the finite
// prefix sequence first, then the elements of tail forever. This is
// the one sound bridge from the stdlib iter world into this package:
// a finite prefix cannot break the never-ending contract as long as
// the tail holds it.
//
// The prefix is pulled lazily; its iterator is stopped as soon as it
// is exhausted.
func Chain[E any](prefix iter.Seq[E], tail Producer[E]) Producer[E] {
	next, stop := iter.Pull(prefix)
	return &chained[E]{next: next, stop: stop, tail: tail}
}
