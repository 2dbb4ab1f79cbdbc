// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package inf

// Producer is the contract for sequences that never end.
// Every call to Next returns a new element; the signature admits no
// exhausted outcome, so conforming types are never-ending by
// construction rather than by runtime check.
//
// Next may mutate the producer's internal state and nothing else.
// A structural failure inside Next propagates as a panic.
type Producer[E any] interface {
	// Next advances the producer and returns the next element.
	Next() E
}

// Func adapts a nullary function to a [Producer].
// The function is called once per Next; it carries its own state in
// its closure, making Func the lightest way to introduce a concrete
// never-ending producer.
type Func[E any] func() E

// Next implements [Producer] by calling the function.
func (f Func[E]) Next() E { return f() }
