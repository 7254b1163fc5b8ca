// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fold

// LeftErr is [Left] for combiners that can fail.
//
// The fold stops at the first element whose combination returns a non-nil
// error. The error is returned unwrapped, together with the accumulator as
// it stood before the failing element. No retry, no suppression.
func LeftErr[A, B any](xs []A, initial B, combine func(B, A) (B, error)) (B, error) {
	acc := initial
	for _, x := range xs {
		next, err := combine(acc, x)
		if err != nil {
			return acc, err
		}
		acc = next
	}
	return acc, nil
}

// RightErr is [Right] for combiners that can fail.
//
// Combination proceeds from the last element toward the first and stops at
// the first non-nil error, returned unwrapped with the accumulator as it
// stood before the failing element.
func RightErr[A, B any](xs []A, initial B, combine func(A, B) (B, error)) (B, error) {
	acc := initial
	for i := len(xs) - 1; i >= 0; i-- {
		next, err := combine(xs[i], acc)
		if err != nil {
			return acc, err
		}
		acc = next
	}
	return acc, nil
}
