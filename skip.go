// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package inf

type skipped[E any] struct {
	p Producer[E]
	n uint64
}

func (s *skipped[E]) Next() E {
	for ; s.n > 0; s.n-- {
		s.p.Next()
	}
	return s.p.Next()
}

// Skip returns a producer that discards the first n elements of p.
// The discard happens lazily, on the first Next call.
func Skip[E any](p Producer[E], n uint64) Producer[E] {
	return &skipped[E]{p: p, n: n}
}

type skipWhile[E any] struct {
	p    Producer[E]
	drop func(E) bool
	done bool
}

func (s *skipWhile[E]) Next() E {
	if s.done {
		return s.p.Next()
	}
	s.done = true
	for {
		if v := s.p.Next(); !s.drop(v) {
			return v
		}
	}
}

// SkipWhile returns a producer that discards the leading elements drop
// admits; from the first rejected element on, every element passes
// through. A drop that admits everything makes the first Next spin
// forever, the same caller responsibility as [Filter].
func SkipWhile[E any](p Producer[E], drop func(E) bool) Producer[E] {
	return &skipWhile[E]{p: p, drop: drop}
}

type stepBy[E any] struct {
	p     Producer[E]
	step  uint64
	first bool
}

func (s *stepBy[E]) Next() E {
	if s.first {
		s.first = false
		return s.p.Next()
	}
	for i := uint64(1); i < s.step; i++ {
		s.p.Next()
	}
	return s.p.Next()
}

// StepBy returns a producer yielding the elements of p at positions
// 0, step, 2·step, …. A zero step cannot make progress and panics
// here at construction.
func StepBy[E any](p Producer[E], step uint64) Producer[E] {
	if step == 0 {
		panic("inf: step by zero")
	}
	return &stepBy[E]{p: p, step: step, first: true}
}
