// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package transduce_test

import (
	"slices"
	"testing"

	"code.hybscloud.com/transduce"
)

func mutableLeft(t *testing.T, xf transduce.MutableTransducer[int, int], in ...int) []int {
	t.Helper()
	got, err := transduce.TransduceMutableLeft(xf, transduce.Append[int](), []int{}, ints(in...))
	if err != nil {
		t.Fatal(err)
	}
	return got
}

func mutableRight(t *testing.T, xf transduce.MutableTransducer[int, int], in ...int) []int {
	t.Helper()
	got, err := transduce.TransduceMutableRight(xf, transduce.Cons[int](), []int{}, ints(in...))
	if err != nil {
		t.Fatal(err)
	}
	return got
}

// TestMutableMatchesImmutable runs fresh instances of each mutable
// transducer against its immutable counterpart.
func TestMutableMatchesImmutable(t *testing.T) {
	in := []int{4, 1, 4, 6, 2, 7, 1, 8}
	lt5 := func(x int) bool { return x < 5 }
	tests := []struct {
		name      string
		mutable   func() transduce.MutableTransducer[int, int]
		immutable transduce.Transducer[int, int]
	}{
		{"Mapping", func() transduce.MutableTransducer[int, int] {
			return transduce.MutableMapping(func(x int) int { return -x })
		}, transduce.Mapping(func(x int) int { return -x })},
		{"Filtering", func() transduce.MutableTransducer[int, int] {
			return transduce.MutableFiltering(isEven)
		}, transduce.Filtering(isEven)},
		{"Take", func() transduce.MutableTransducer[int, int] {
			return transduce.MutableTake[int](3)
		}, transduce.Take[int](3)},
		{"TakeZero", func() transduce.MutableTransducer[int, int] {
			return transduce.MutableTake[int](0)
		}, transduce.Take[int](0)},
		{"TakeWhile", func() transduce.MutableTransducer[int, int] {
			return transduce.MutableTakeWhile(lt5)
		}, transduce.TakeWhile(lt5)},
		{"Drop", func() transduce.MutableTransducer[int, int] {
			return transduce.MutableDrop[int](3)
		}, transduce.Drop[int](3)},
		{"DropWhile", func() transduce.MutableTransducer[int, int] {
			return transduce.MutableDropWhile(lt5)
		}, transduce.DropWhile(lt5)},
		{"Dedupe", func() transduce.MutableTransducer[int, int] {
			return transduce.MutableDedupe[int]()
		}, transduce.Dedupe[int]()},
		{"FilterTake", func() transduce.MutableTransducer[int, int] {
			return transduce.ThenMutable(transduce.MutableFiltering(isEven), transduce.MutableTake[int](2))
		}, transduce.Then(transduce.Filtering(isEven), transduce.Take[int](2))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wantL, wantR, err := both(tt.immutable, in)
			if err != nil {
				t.Fatal(err)
			}
			if got := mutableLeft(t, tt.mutable(), in...); !slices.Equal(got, wantL) {
				t.Fatalf("left: got %v, want %v", got, wantL)
			}
			if got := mutableRight(t, tt.mutable(), in...); !slices.Equal(got, wantR) {
				t.Fatalf("right: got %v, want %v", got, wantR)
			}
		})
	}
}

func TestMutableScenarioFilterThenTake(t *testing.T) {
	xf := transduce.ThenMutable(transduce.MutableFiltering(isEven), transduce.MutableTake[int](2))
	got, err := transduce.TransduceMutableLeft(xf, transduce.Cons[int](), []int{}, ints(1, 2, 3, 4, 5, 6))
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(got, []int{4, 2}) {
		t.Fatalf("got %v, want [4 2]", got)
	}
}

func TestMutableCategorising(t *testing.T) {
	xf := transduce.MutableCategorising(func(x int) int { return x % 2 }, transduce.Left)
	got, err := transduce.TransduceMutableLeft(xf, transduce.Concat[int](), nil, ints(1, 2, 3, 4, 5))
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(got, []int{1, 3, 5, 2, 4}) {
		t.Fatalf("got %v, want [1 3 5 2 4]", got)
	}

	right := transduce.MutableCategorising(func(x int) int { return x % 2 }, transduce.Right)
	got, err = transduce.TransduceMutableRight(right, transduce.Concat[int](), nil, ints(1, 2, 3, 4, 5))
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(got, []int{2, 4, 1, 3, 5}) {
		t.Fatalf("right: got %v, want [2 4 1 3 5]", got)
	}
}

// Mutable instances keep their bookkeeping across reductions.

func TestMutableTakeIsSingleUse(t *testing.T) {
	xf := transduce.MutableTake[int](2)
	if got := mutableLeft(t, xf, 1, 2, 3); !slices.Equal(got, []int{1, 2}) {
		t.Fatalf("first run: got %v, want [1 2]", got)
	}
	if got := mutableLeft(t, xf, 1, 2, 3); len(got) != 0 {
		t.Fatalf("second run: got %v, want []", got)
	}
}

func TestMutableDropReuse(t *testing.T) {
	xf := transduce.MutableDrop[int](2)
	if got := mutableLeft(t, xf, 1, 2, 3, 4); !slices.Equal(got, []int{3, 4}) {
		t.Fatalf("first run: got %v, want [3 4]", got)
	}
	if got := mutableLeft(t, xf, 1, 2, 3, 4); !slices.Equal(got, []int{1, 2, 3, 4}) {
		t.Fatalf("second run: got %v, want [1 2 3 4]", got)
	}
}

func TestMutableDedupeReuse(t *testing.T) {
	xf := transduce.MutableDedupe[int]()
	if got := mutableRight(t, xf, 1, 1, 2); !slices.Equal(got, []int{1, 2}) {
		t.Fatalf("first run: got %v, want [1 2]", got)
	}
	if got := mutableRight(t, xf, 2, 3); !slices.Equal(got, []int{3}) {
		t.Fatalf("second run: got %v, want [3]", got)
	}
}

func TestMutableCategorisingReuse(t *testing.T) {
	xf := transduce.MutableCategorising(func(x int) int { return x % 2 }, transduce.Left)
	first, err := transduce.TransduceMutableLeft(xf, transduce.Concat[int](), nil, ints(1, 2, 3))
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(first, []int{1, 3, 2}) {
		t.Fatalf("first run: got %v, want [1 3 2]", first)
	}
	second, err := transduce.TransduceMutableLeft(xf, transduce.Concat[int](), nil, ints(4))
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(second, []int{1, 3, 2, 4}) {
		t.Fatalf("second run: got %v, want [1 3 2 4]", second)
	}
}

func TestMutableRightFoldStopsEarly(t *testing.T) {
	pulled := 0
	got, err := transduce.TransduceMutableRight(transduce.MutableTake[int](3), transduce.Cons[int](), []int{}, probe(3, &pulled))
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(got, []int{0, 1, 2}) {
		t.Fatalf("got %v, want [0 1 2]", got)
	}
	if pulled != 3 {
		t.Fatalf("pulled %d elements, want 3", pulled)
	}
}
