// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package transduce_test

import (
	"fmt"
	"iter"
	"slices"

	"code.hybscloud.com/transduce"
)

func ints(xs ...int) iter.Seq[int] {
	return slices.Values(xs)
}

func sum() transduce.FuncReducer[transduce.Unit, int, int] {
	return transduce.Folding(func(acc, x int) int { return acc + x }).
		WithIdentity(func() int { return 0 })
}

func isEven(x int) bool { return x%2 == 0 }

// probe yields 0, 1, 2, ... and counts how many elements were produced.
// Producing element limit panics.
func probe(limit int, pulled *int) iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := 0; ; i++ {
			if i >= limit {
				panic(fmt.Sprintf("probe: element %d forced", i))
			}
			*pulled++
			if !yield(i) {
				return
			}
		}
	}
}

// both runs t over s with a left fold into Append and a right fold into
// Cons. Both yield items in sequence order.
func both[A, B any](t transduce.Transducer[A, B], s []A) (left, right []B, err error) {
	left, err = transduce.TransduceLeft1(t, transduce.Append[B](), slices.Values(s))
	if err != nil {
		return nil, nil, err
	}
	right, err = transduce.TransduceRight1(t, transduce.Cons[B](), slices.Values(s))
	if err != nil {
		return nil, nil, err
	}
	return left, right, nil
}

func mustPanic(f func()) (r any) {
	defer func() { r = recover() }()
	f()
	return nil
}
