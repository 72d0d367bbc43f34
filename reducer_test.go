// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package transduce_test

import (
	"errors"
	"testing"

	"code.hybscloud.com/transduce"
)

func TestFromLeftDerivesStepR(t *testing.T) {
	rf := transduce.FromLeft(func(s transduce.Unit, acc int, x int) (transduce.Unit, transduce.Reduction[int]) {
		return s, transduce.Continue(acc*10 + x)
	})

	_, r := rf.StepL(transduce.Unit{}, 3, 4)
	if r.Value() != 34 {
		t.Fatalf("StepL: got %d, want 34", r.Value())
	}

	rest := transduce.Defer(0, func(s transduce.Unit) (transduce.Unit, int) { return s, 5 })
	_, r = rf.StepR(transduce.Unit{}, 6, rest)
	if !rest.Forced() {
		t.Fatal("derived StepR must force the remainder")
	}
	if r.Value() != 56 {
		t.Fatalf("StepR: got %d, want 56", r.Value())
	}
}

func TestFromRightDerivesStepL(t *testing.T) {
	rf := transduce.FromRight(func(s transduce.Unit, x int, rest *transduce.Lazy[transduce.Unit, int]) (transduce.Unit, transduce.Reduction[int]) {
		s, v := rest.Force(s)
		return s, transduce.Continue(v*10 + x)
	})

	_, r := rf.StepL(transduce.Unit{}, 3, 4)
	if r.Value() != 34 {
		t.Fatalf("StepL: got %d, want 34", r.Value())
	}
}

func TestNilStepPanics(t *testing.T) {
	r := mustPanic(func() { transduce.FromLeft[int, int, int](nil) })
	if r != "transduce: nil step function" {
		t.Fatalf("FromLeft(nil): unexpected panic %v", r)
	}
	r = mustPanic(func() { transduce.FromRight[int, int, int](nil) })
	if r != "transduce: nil step function" {
		t.Fatalf("FromRight(nil): unexpected panic %v", r)
	}
}

func TestZeroReducerPanics(t *testing.T) {
	var zero transduce.FuncReducer[transduce.Unit, int, int]
	const want = "transduce: reducer has no step function"

	if r := mustPanic(func() { zero.StepL(transduce.Unit{}, 0, 1) }); r != want {
		t.Fatalf("StepL: got panic %v, want %q", r, want)
	}
	rest := transduce.Defer(0, func(s transduce.Unit) (transduce.Unit, int) { return s, 0 })
	if r := mustPanic(func() { zero.StepR(transduce.Unit{}, 1, rest) }); r != want {
		t.Fatalf("StepR: got panic %v, want %q", r, want)
	}
}

func TestReducerDefaults(t *testing.T) {
	rf := transduce.Folding(func(acc, x int) int { return acc + x })

	if _, err := rf.Identity(); !errors.Is(err, transduce.ErrNoIdentity) {
		t.Fatalf("Identity: got %v, want ErrNoIdentity", err)
	}
	got, err := rf.Completion(transduce.Unit{}, 7)
	if err != nil || got != 7 {
		t.Fatalf("Completion: got (%d, %v), want (7, nil)", got, err)
	}
}

func TestReducerOptions(t *testing.T) {
	base := transduce.FromLeft(func(s int, acc int, x int) (int, transduce.Reduction[int]) {
		return s + 1, transduce.Continue(acc + x)
	})
	rf := base.
		WithInitialState(func() int { return 100 }).
		WithIdentity(func() int { return 1 }).
		WithCompletion(func(s int, acc int) int { return s*1000 + acc })

	if rf.InitialState() != 100 {
		t.Fatalf("InitialState: got %d", rf.InitialState())
	}
	if id, err := rf.Identity(); err != nil || id != 1 {
		t.Fatalf("Identity: got (%d, %v)", id, err)
	}
	if base.InitialState() != 0 {
		t.Fatal("With methods must not modify the receiver")
	}

	s, acc := transduce.ReduceLeft(rf, rf.InitialState(), 1, ints(1, 2, 3))
	got, err := rf.Completion(s, acc)
	if err != nil || got != 103007 {
		t.Fatalf("got (%d, %v), want (103007, nil)", got, err)
	}
}

func TestReducingStopsFold(t *testing.T) {
	rf := transduce.Reducing(func(acc, x int) transduce.Reduction[int] {
		if acc+x > 5 {
			return transduce.Reduced(acc)
		}
		return transduce.Continue(acc + x)
	})
	pulled := 0
	_, got := transduce.ReduceLeft(rf, transduce.Unit{}, 0, probe(10, &pulled))
	// 0+1+2 = 3, 3+3 = 6 stops
	if got != 3 {
		t.Fatalf("got %d, want 3", got)
	}
	if pulled != 4 {
		t.Fatalf("pulled %d elements, want 4", pulled)
	}
}

func TestFirst(t *testing.T) {
	got, err := transduce.TransduceLeft(transduce.Identity[int](), transduce.First[int](), -1, ints(7, 8, 9))
	if err != nil || got != 7 {
		t.Fatalf("left: got (%d, %v), want 7", got, err)
	}
	got, err = transduce.TransduceRight(transduce.Identity[int](), transduce.First[int](), -1, ints(7, 8, 9))
	if err != nil || got != 7 {
		t.Fatalf("right: got (%d, %v), want 7", got, err)
	}
	got, _ = transduce.TransduceRight(transduce.Identity[int](), transduce.First[int](), -1, ints())
	if got != -1 {
		t.Fatalf("empty: got %d, want -1", got)
	}
}
