// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fold

// LeftIndexed is [Left] with the element's position passed as the third
// combiner argument.
func LeftIndexed[A, B any](xs []A, initial B, combine func(B, A, int) B) B {
	acc := initial
	for i, x := range xs {
		acc = combine(acc, x, i)
	}
	return acc
}

// RightIndexed is [Right] with the element's position passed as the third
// combiner argument. Positions refer to xs in its original order, so the
// combiner sees index len(xs)-1 first and 0 last.
func RightIndexed[A, B any](xs []A, initial B, combine func(A, B, int) B) B {
	acc := initial
	for i := len(xs) - 1; i >= 0; i-- {
		acc = combine(xs[i], acc, i)
	}
	return acc
}
