// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package transduce_test

import (
	"errors"
	"slices"
	"testing"

	"code.hybscloud.com/transduce"
)

func TestSequence(t *testing.T) {
	xf := transduce.Then(transduce.Filtering(isEven), transduce.Mapping(func(x int) int { return x * x }))
	got := slices.Collect(transduce.Sequence(xf, ints(1, 2, 3, 4, 5, 6)))
	if !slices.Equal(got, []int{4, 16, 36}) {
		t.Fatalf("got %v, want [4 16 36]", got)
	}
}

func TestSequenceBreak(t *testing.T) {
	pulled := 0
	var got []int
	for v := range transduce.Sequence(transduce.Mapping(func(x int) int { return x + 1 }), probe(3, &pulled)) {
		got = append(got, v)
		if len(got) == 3 {
			break
		}
	}
	if !slices.Equal(got, []int{1, 2, 3}) {
		t.Fatalf("got %v, want [1 2 3]", got)
	}
	if pulled != 3 {
		t.Fatalf("pulled %d elements, want 3", pulled)
	}
}

func TestSequenceTakeFromUnbounded(t *testing.T) {
	pulled := 0
	got := slices.Collect(transduce.Sequence(transduce.Take[int](4), probe(4, &pulled)))
	if !slices.Equal(got, []int{0, 1, 2, 3}) {
		t.Fatalf("got %v, want [0 1 2 3]", got)
	}
}

func TestSequenceCategorising(t *testing.T) {
	xf := transduce.Categorising(func(x int) int { return x % 3 }, transduce.Left)
	got := slices.Collect(transduce.Sequence(xf, ints(1, 2, 3, 4, 5, 6)))
	want := [][]int{{1, 4}, {2, 5}, {3, 6}}
	if !slices.EqualFunc(got, want, slices.Equal[[]int]) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestSequenceCategorisingBreak(t *testing.T) {
	xf := transduce.Categorising(func(x int) int { return x % 3 }, transduce.Right)
	var got [][]int
	for g := range transduce.Sequence(xf, ints(1, 2, 3, 4, 5, 6)) {
		got = append(got, g)
		break
	}
	if len(got) != 1 || !slices.Equal(got[0], []int{3, 6}) {
		t.Fatalf("got %v, want [[3 6]]", got)
	}
}

func TestInto(t *testing.T) {
	got, err := transduce.Into([]int{0}, transduce.Take[int](2), ints(5, 6, 7))
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(got, []int{0, 5, 6}) {
		t.Fatalf("got %v, want [0 5 6]", got)
	}

	words, err := transduce.Into(nil, transduce.ToString[int](), ints(1, 2))
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(words, []string{"1", "2"}) {
		t.Fatalf("got %q, want [1 2]", words)
	}
}

var errFlush = errors.New("flush failed")

// failing wraps a reducer whose completion always fails.
type failing struct {
	transduce.Reducer[transduce.Erased, int, transduce.Erased]
}

func (failing) Completion(transduce.Erased, transduce.Erased) (transduce.Erased, error) {
	return nil, errFlush
}

func failOnCompletion() transduce.Transducer[int, int] {
	return transduce.TransducerFunc[int, int](func(rf transduce.Reducer[transduce.Erased, int, transduce.Erased]) transduce.Reducer[transduce.Erased, int, transduce.Erased] {
		return failing{rf}
	})
}

func TestSequenceErr(t *testing.T) {
	var got []int
	var errs []error
	for v, err := range transduce.SequenceErr(failOnCompletion(), ints(1, 2)) {
		if err != nil {
			errs = append(errs, err)
			continue
		}
		got = append(got, v)
	}
	if !slices.Equal(got, []int{1, 2}) {
		t.Fatalf("got %v, want [1 2]", got)
	}
	if len(errs) != 1 || !errors.Is(errs[0], errFlush) {
		t.Fatalf("errors: got %v, want [%v]", errs, errFlush)
	}

	// Sequence drops the error after the last item
	if got := slices.Collect(transduce.Sequence(failOnCompletion(), ints(1, 2))); !slices.Equal(got, []int{1, 2}) {
		t.Fatalf("Sequence: got %v, want [1 2]", got)
	}
}

func TestSequenceErrStopped(t *testing.T) {
	n := 0
	for _, err := range transduce.SequenceErr(failOnCompletion(), ints(1, 2, 3)) {
		if err != nil {
			t.Fatalf("error after stop: %v", err)
		}
		n++
		break
	}
	if n != 1 {
		t.Fatalf("got %d pairs, want 1", n)
	}
}
