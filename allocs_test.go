// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package variant_test

import (
	"code.hybscloud.com/variant"
	"testing"
)

func TestMonomorphicAllocations(t *testing.T) {
	allocs := testing.AllocsPerRun(100, func() {
		o := variant.MapOption(variant.SomeOf(21), func(x int) int { return x * 2 })
		_, _ = o.Get()
	})
	if allocs > 0 {
		t.Errorf("MapOption(SomeOf) allocs = %v; want 0", allocs)
	}

	allocs2 := testing.AllocsPerRun(100, func() {
		r := variant.FlatMapResult(variant.OkOf(1), func(x int) variant.ResultOf[int] {
			return variant.ErrOf[int](2)
		})
		_ = r.IsErr()
	})
	if allocs2 > 0 {
		t.Errorf("FlatMapResult allocs = %v; want 0", allocs2)
	}
}

func TestCastAllocations(t *testing.T) {
	x := 7
	src := variant.Some(&x)
	allocs := testing.AllocsPerRun(100, func() {
		_ = variant.CastOptional[*int](src)
	})
	if allocs > 0 {
		t.Errorf("CastOptional allocs = %v; want 0", allocs)
	}

	allocs2 := testing.AllocsPerRun(100, func() {
		_ = variant.OptionOf[variant.Erased](src)
	})
	if allocs2 > 0 {
		t.Errorf("erased conversion allocs = %v; want 0", allocs2)
	}
}

func TestClosureCallAllocations(t *testing.T) {
	s := variant.NewScope()
	defer s.Close()
	x := 5
	f := variant.Capture(s, func(y int) int { return x + y })
	allocs := testing.AllocsPerRun(100, func() {
		_ = f.Call(1)
	})
	if allocs > 0 {
		t.Errorf("Func.Call allocs = %v; want 0", allocs)
	}
}
