// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fold

// CombineLeft combines an accumulator with the next element of a left fold.
// The accumulator comes first; the result replaces the accumulator.
type CombineLeft[B, A any] func(B, A) B

// CombineRight combines an element with the accumulator of a right fold.
// The element comes first; the result replaces the accumulator.
//
// The argument order is not cosmetic: it marks which operand plays the
// "accumulated so far" role, and for non-commutative combiners it is what
// distinguishes a right fold from a left fold of the reversed input.
type CombineRight[A, B any] func(A, B) B

// Left folds xs from the first element to the last.
//
// Starting from initial, the accumulator is replaced by
// combine(accumulator, element) for each element in forward order. An empty
// slice returns initial. The result type B may differ from the element
// type A.
func Left[A, B any](xs []A, initial B, combine CombineLeft[B, A]) B {
	acc := initial
	for _, x := range xs {
		acc = combine(acc, x)
	}
	return acc
}

// Right folds xs from the last element to the first.
//
// Right is observably equal to the recursive definition
//
//	Right([], z, f)              = z
//	Right([head, tail...], z, f) = f(head, Right(tail, z, f))
//
// so the combination for the last element is computed first and the
// combination for the first element last. Evaluation is a descending index
// walk, not native recursion; there is no depth limit below available
// memory.
func Right[A, B any](xs []A, initial B, combine CombineRight[A, B]) B {
	acc := initial
	for i := len(xs) - 1; i >= 0; i-- {
		acc = combine(xs[i], acc)
	}
	return acc
}
