// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package fold provides generic left and right folds over ordered sequences
// in Go.
//
// A fold reduces a sequence of elements of type A to a single accumulated
// value of type B using a caller-supplied combining function. The two
// directions differ in where the accumulator sits and in which end of the
// sequence is combined first:
//
//   - [Left] threads the accumulator forward: combine(combine(z, x0), x1)...
//   - [Right] resolves combinations from the tail: combine(x0, combine(x1, ...z))
//
// Both are pure functions of their inputs. Neither retains state between
// calls, so concurrent callers need no coordination on independent inputs.
//
// # Stack Safety
//
// [Right] is observably equal to its recursive definition
//
//	Right([], z, f)              = z
//	Right([head, tail...], z, f) = f(head, Right(tail, z, f))
//
// but is evaluated iteratively by walking the slice from its last index
// toward its first. No native recursion is used anywhere in the package;
// input length is bounded only by available memory, never by call-stack
// depth. [RightSeq] cannot index its one-pass source, so it buffers the
// elements into an explicit work list and walks that list in reverse.
//
// # Core Operations
//
//   - [Left]: iterative forward fold over a slice
//   - [Right]: tail-first fold over a slice
//   - [LeftSeq], [RightSeq]: the same folds over an [iter.Seq] source
//   - [CombineLeft], [CombineRight]: named combiner signatures
//
// # Derived Operations
//
//   - [LeftIndexed], [RightIndexed]: combiners that also receive the
//     element's position
//   - [ScanLeft], [ScanRight]: folds that keep every intermediate
//     accumulator
//   - [Reduce], [ReduceRight]: seedless folds that take their initial
//     accumulator from the boundary element
//   - [LeftErr], [RightErr]: fail-fast folds for combiners that can fail
//
// # Failure Semantics
//
// The folds themselves raise no errors. A panic inside a combiner
// propagates to the caller unmodified. [LeftErr] and [RightErr] stop at the
// first error a combiner returns and hand it back unwrapped, with no retry.
//
// Combiners that are impure, or whose result depends on anything besides
// their arguments, are outside the package contract: each fold calls the
// combiner exactly once per element in the documented order and guarantees
// nothing further.
//
// # Example
//
//	sum := fold.Left([]int{0, 1, 2, 3, 4}, 0, func(acc, x int) int {
//		return acc + x
//	})
//	// sum == 10
//
//	reversed := fold.Right([]int{0, 1, 2, 3, 4}, nil, func(x int, acc []int) []int {
//		return append(acc, x)
//	})
//	// reversed == []int{4, 3, 2, 1, 0}
package fold
