// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package inf_test

import (
	"testing"
	"testing/quick"

	"code.hybscloud.com/inf"
)

// TestPropertyExitCountsAdvances proves that for any target n, the
// construct over a fresh counter exits with n after exactly n+1
// advances — never one more.
func TestPropertyExitCountsAdvances(t *testing.T) {
	property := func(target uint8) bool {
		n := int(target)
		src := &counting[int]{p: inf.Count(0, 1)}
		result := inf.For(src, func(v int) inf.Step[int] {
			if v == n {
				return inf.Exit(v)
			}
			return inf.Continue[int]()
		})
		return result == n && src.calls == n+1
	}
	if err := quick.Check(property, nil); err != nil {
		t.Error(err)
	}
}

// TestPropertyMapIdentity proves the identity law: Map(p, id) yields
// the same finite prefix as p itself, for arbitrary counters and
// prefix lengths.
func TestPropertyMapIdentity(t *testing.T) {
	property := func(from, step int32, length uint8) bool {
		mapped := inf.Map(inf.Count(from, step), func(v int32) int32 { return v })
		plain := inf.Count(from, step)
		for i := 0; i < int(length); i++ {
			if mapped.Next() != plain.Next() {
				return false
			}
		}
		return true
	}
	if err := quick.Check(property, nil); err != nil {
		t.Error(err)
	}
}

// TestPropertyZipComponents proves that pairing agrees with advancing
// each operand independently, element by element.
func TestPropertyZipComponents(t *testing.T) {
	property := func(fromA, stepA, fromB, stepB int16, length uint8) bool {
		zipped := inf.Zip(inf.Count(fromA, stepA), inf.Count(fromB, stepB))
		a := inf.Count(fromA, stepA)
		b := inf.Count(fromB, stepB)
		for i := 0; i < int(length); i++ {
			pair := zipped.Next()
			if pair.Fst != a.Next() || pair.Snd != b.Next() {
				return false
			}
		}
		return true
	}
	if err := quick.Check(property, nil); err != nil {
		t.Error(err)
	}
}

// TestPropertyChainPrefix proves that for any payload, the chained
// producer yields exactly the payload and then the tail's elements.
func TestPropertyChainPrefix(t *testing.T) {
	property := func(payload []int) bool {
		prefix := func(yield func(int) bool) {
			for _, v := range payload {
				if !yield(v) {
					return
				}
			}
		}
		p := inf.Chain(prefix, inf.Count(0, 1))
		for _, want := range payload {
			if p.Next() != want {
				return false
			}
		}
		// Three tail elements past the boundary.
		return p.Next() == 0 && p.Next() == 1 && p.Next() == 2
	}
	if err := quick.Check(property, nil); err != nil {
		t.Error(err)
	}
}

// TestPropertyEnumerateTags proves position tags increase by exactly
// one per advance from any origin, paired with the underlying element.
func TestPropertyEnumerateTags(t *testing.T) {
	property := func(origin uint32, length uint8) bool {
		p := inf.EnumerateFrom(inf.Count(0, 1), uint64(origin))
		for i := 0; i < int(length); i++ {
			pair := p.Next()
			if pair.Fst != uint64(origin)+uint64(i) || pair.Snd != i {
				return false
			}
		}
		return true
	}
	if err := quick.Check(property, nil); err != nil {
		t.Error(err)
	}
}
