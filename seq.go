// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package inf

import (
	"iter"
)

// All exposes p as an iter.Seq for range-over-func loops.
// The sequence never stops yielding; breaking out of the range loop
// is the consumer's only exit, and p is not advanced after the break.
// Use [For] when the loop should evaluate to a value.
func All[E any](p Producer[E]) iter.Seq[E] {
	return func(yield func(E) bool) {
		for yield(p.Next()) {
		}
	}
}
