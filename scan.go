// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fold

// ScanLeft is [Left] keeping every intermediate accumulator.
//
// The result has length len(xs)+1: element 0 is initial, and element i+1 is
// the accumulator after consuming xs[i]. The last element equals
// Left(xs, initial, combine).
func ScanLeft[A, B any](xs []A, initial B, combine CombineLeft[B, A]) []B {
	out := make([]B, 0, len(xs)+1)
	acc := initial
	out = append(out, acc)
	for _, x := range xs {
		acc = combine(acc, x)
		out = append(out, acc)
	}
	return out
}

// ScanRight is [Right] keeping every intermediate accumulator.
//
// The result has length len(xs)+1: element len(xs) is initial, and element
// i equals Right(xs[i:], initial, combine). The first element equals
// Right(xs, initial, combine).
func ScanRight[A, B any](xs []A, initial B, combine CombineRight[A, B]) []B {
	out := make([]B, len(xs)+1)
	acc := initial
	out[len(xs)] = acc
	for i := len(xs) - 1; i >= 0; i-- {
		acc = combine(xs[i], acc)
		out[i] = acc
	}
	return out
}
