// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package inf_test

import (
	"code.hybscloud.com/inf"
)

// counting wraps a producer and records how many times Next is called.
// Used by loop tests to prove the advance-count contract.
type counting[E any] struct {
	p     inf.Producer[E]
	calls int
}

func (c *counting[E]) Next() E {
	c.calls++
	return c.p.Next()
}

// take reads n elements from p into a slice.
func take[E any](p inf.Producer[E], n int) []E {
	out := make([]E, n)
	for i := range out {
		out[i] = p.Next()
	}
	return out
}
