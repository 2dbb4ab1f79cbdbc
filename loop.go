// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package inf

import (
	"code.hybscloud.com/kont"
)

// Step is the outcome of one [For] iteration: Left (no payload) keeps
// iterating, Right carries the exit value. It is consumed immediately
// by the construct and never persisted across iterations.
type Step[R any] = kont.Either[struct{}, R]

// Continue returns the keep-iterating outcome.
func Continue[R any]() Step[R] {
	return kont.Left[struct{}, R](struct{}{})
}

// Exit returns the stop-now outcome carrying v.
// All exits within one [For] call agree on the payload type R.
func Exit[R any](v R) Step[R] {
	return kont.Right[struct{}](v)
}

// For drives p, binding each element and running body on it.
// Each iteration advances p exactly once; on [Exit] the construct
// stops immediately — p is not advanced again — and the whole call
// evaluates to the exit payload, making For usable as an expression.
//
// There is no implicit exit: p cannot signal exhaustion, so a body
// that never returns [Exit] keeps the construct running forever.
// A panic raised by Next or by the body propagates out of For
// unmodified, and no exit value is produced in that case.
func For[E, R any](p Producer[E], body func(E) Step[R]) R {
	for {
		if v, ok := body(p.Next()).GetRight(); ok {
			return v
		}
	}
}
