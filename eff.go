// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package inf

import (
	"code.hybscloud.com/kont"
)

// Drive is the Cont-world form of [For]: body returns an effectful
// [Step], so iteration can thread kont effects (State, Writer, Error)
// across elements. Evaluate the result with the matching kont runner.
//
// The first element is drawn from p when the computation is
// constructed; each later element is drawn as evaluation reaches the
// corresponding iteration.
func Drive[E, R any](p Producer[E], body func(E) kont.Eff[Step[R]]) kont.Eff[R] {
	return kont.Bind(body(p.Next()), func(s Step[R]) kont.Eff[R] {
		if _, ok := s.GetLeft(); ok {
			return Drive(p, body)
		}
		r, _ := s.GetRight()
		return kont.Pure(r)
	})
}

// ExprDrive is the Expr-world form of [For].
// Fuses ExprBind inline to avoid the type-erasing wrapper closure.
func ExprDrive[E, R any](p Producer[E], body func(E) kont.Expr[Step[R]]) kont.Expr[R] {
	m := body(p.Next())
	if _, ok := m.Frame.(kont.ReturnFrame); ok {
		if _, ok := m.Value.GetLeft(); ok {
			return ExprDrive(p, body)
		}
		r, _ := m.Value.GetRight()
		return kont.ExprReturn(r)
	}
	bf := kont.AcquireBindFrame()
	bf.F = func(a kont.Erased) kont.Expr[kont.Erased] {
		s := a.(Step[R])
		if _, ok := s.GetLeft(); ok {
			next := ExprDrive(p, body)
			return kont.Expr[kont.Erased]{Value: kont.Erased(next.Value), Frame: next.Frame}
		}
		r, _ := s.GetRight()
		return kont.Expr[kont.Erased]{Value: kont.Erased(r), Frame: kont.ReturnFrame{}}
	}
	bf.Next = kont.ReturnFrame{}
	var zero R
	return kont.Expr[R]{
		Value: zero,
		Frame: kont.ChainFrames(m.Frame, bf),
	}
}
