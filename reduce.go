// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fold

// Reduce is a seedless left fold: the initial accumulator is xs[0] and
// combining starts at xs[1]. Because there is no caller-supplied seed, the
// accumulator and element types must coincide.
//
// Returns the zero value and false when xs is empty.
func Reduce[A any](xs []A, combine CombineLeft[A, A]) (A, bool) {
	if len(xs) == 0 {
		var zero A
		return zero, false
	}
	return Left(xs[1:], xs[0], combine), true
}

// ReduceRight is a seedless right fold: the initial accumulator is the last
// element and combining starts one position before it.
//
// Returns the zero value and false when xs is empty.
func ReduceRight[A any](xs []A, combine CombineRight[A, A]) (A, bool) {
	if len(xs) == 0 {
		var zero A
		return zero, false
	}
	last := len(xs) - 1
	return Right(xs[:last], xs[last], combine), true
}
