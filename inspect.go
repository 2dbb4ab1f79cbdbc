// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package inf

type inspected[E any] struct {
	p Producer[E]
	f func(E)
}

func (i *inspected[E]) Next() E {
	v := i.p.Next()
	i.f(v)
	return v
}

// Inspect returns a producer that passes every element through
// unchanged after calling f on it. A panic raised by f propagates
// out of Next unmodified.
func Inspect[E any](p Producer[E], f func(E)) Producer[E] {
	return &inspected[E]{p: p, f: f}
}
