// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package inf provides producers that never end and a loop form that
// iterates them with an early exit carrying a result value.
//
// A [Producer] yields a new element on every call to Next. The method
// signature returns the element alone — no ok flag, no error, no
// sentinel — so an exhausted outcome is unconstructible for a
// conforming type. Termination bugs become definition-time errors:
// a type whose iteration can run dry cannot implement [Producer],
// and nothing downstream needs to handle a case that cannot occur.
//
// # Capability
//
//   - [Producer]: the single-method contract, Next() E
//   - [Func]: adapts a nullary function to a Producer
//
// Structural failure inside Next (an abort condition in the underlying
// state) propagates as a panic; the package never intercepts it.
//
// # Adapters
//
// Adapters are themselves Producers, so the never-ending guarantee
// composes through arbitrary pipelines without re-proof at each stage.
//
//   - [Map]: element transformation
//   - [Zip]: pairs two producers, advancing each exactly once per call
//   - [Enumerate], [EnumerateFrom]: position tagging from an origin
//   - [Filter], [FilterMap]: keep elements a predicate admits
//   - [Skip], [SkipWhile], [StepBy]: drop or stride over elements
//   - [Inspect]: observe elements as they pass
//   - [Chain]: a finite iter.Seq prefix followed by a never-ending tail
//   - [Peekable], [NewPeekable]: one-element lookahead that always has
//     an element to show
//
// Position tags are uint64 and the tagging adapter fails on overflow:
// advancing past the maximum tag panics rather than silently wrapping.
//
// [Filter], [FilterMap] and [SkipWhile] keep the never-ending contract
// only when the predicate admits infinitely many elements; a predicate
// that eventually rejects everything makes Next spin forever, the same
// caller responsibility as a loop body that never exits.
//
// # Sources
//
// Minimal concrete producers, each a single reviewed factory that
// establishes the never-ending contract at the point of construction:
//
//   - [Repeat]: the same element forever
//   - [Count]: arithmetic progression over an integer kind
//   - [Cycle]: a non-empty slice, repeated forever
//
// # Control Construct
//
// [For] drives a producer with a body executed once per element. The
// body returns a [Step]: [Continue] to keep iterating or [Exit] to stop
// immediately with a payload, which becomes the value of the whole
// call. Next is called exactly once per iteration and never again
// after an exit. There is no implicit exit path — the producer cannot
// run dry, so a body that never exits loops forever by design.
//
//	pos := inf.For(inf.Count(0, 1), func(n int) inf.Step[int] {
//		if n*n > 50 {
//			return inf.Exit(n)
//		}
//		return inf.Continue[int]()
//	})
//	// pos == 8
//
// [All] is the statement form: it exposes a producer as an iter.Seq
// for range-over-func loops, where break is the only way out.
//
// # Effect Integration
//
// [Drive] and [ExprDrive] are the Cont-world and Expr-world duals of
// [For] on [code.hybscloud.com/kont]: the body returns an effectful
// computation of a [Step], so iteration can thread State, Writer or
// Error effects. The first element is drawn when the computation is
// constructed; subsequent elements are drawn as evaluation proceeds.
//
// # Concurrency
//
// Everything here is single-threaded and synchronous. A producer is
// exclusively owned by whichever loop or adapter drives it; advancing
// it from elsewhere while it is composed into a pipeline is a misuse.
// No operation blocks and no state is shared across iterations beyond
// what the producer itself encapsulates.
package inf
