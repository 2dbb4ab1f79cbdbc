// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package inf

// Concrete never-ending producers. Each constructor is the single
// point where the never-ending contract for its producer kind is
// established; everything else in the package only composes it.

// integer is the constraint for Count positions.
type integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

type repeated[E any] struct {
	v E
}

func (r *repeated[E]) Next() E { return r.v }

// Repeat returns a producer that yields v on every call.
func Repeat[E any](v E) Producer[E] {
	return &repeated[E]{v: v}
}

type counted[N integer] struct {
	n    N
	step N
}

func (c *counted[N]) Next() N {
	n := c.n
	c.n = n + c.step
	return n
}

// Count returns a producer yielding from, from+step, from+2·step, ….
// The position wraps around per Go integer semantics when it passes
// the bounds of N; callers needing a failing policy should use
// [EnumerateFrom] over the element producer instead.
func Count[N integer](from, step N) Producer[N] {
	return &counted[N]{n: from, step: step}
}

type cycled[E any] struct {
	items []E
	i     int
}

func (c *cycled[E]) Next() E {
	v := c.items[c.i]
	c.i++
	if c.i == len(c.items) {
		c.i = 0
	}
	return v
}

// Cycle returns a producer that yields the elements of items in order,
// forever. A non-empty slice is what buys the never-ending contract,
// so an empty items panics here at construction, not later in Next.
// The slice is not copied; the caller must not mutate it while the
// producer is in use.
func Cycle[E any](items []E) Producer[E] {
	if len(items) == 0 {
		panic("inf: cycle of empty slice")
	}
	return &cycled[E]{items: items}
}
