// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fold

import (
	"iter"
	"slices"
)

// LeftSeq folds a sequence from its first element to its last.
// It is [Left] for one-pass [iter.Seq] sources: seq is ranged over exactly
// once and nothing is retained after the call returns.
func LeftSeq[A, B any](seq iter.Seq[A], initial B, combine CombineLeft[B, A]) B {
	acc := initial
	for x := range seq {
		acc = combine(acc, x)
	}
	return acc
}

// RightSeq folds a sequence from its last element to its first.
//
// A right fold must combine the tail end before the head, but an
// [iter.Seq] yields elements head-first and cannot be replayed. RightSeq
// therefore collects the elements into an explicit work list and walks it
// in reverse, trading O(n) memory for freedom from call-stack growth. The
// observable result matches the recursive right-fold definition exactly.
func RightSeq[A, B any](seq iter.Seq[A], initial B, combine CombineRight[A, B]) B {
	return Right(slices.Collect(seq), initial, combine)
}
