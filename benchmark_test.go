// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package variant_test

import (
	"testing"

	"code.hybscloud.com/variant"
)

// BenchmarkCastOptional measures the erased → monomorphic relabel.
func BenchmarkCastOptional(b *testing.B) {
	x := 42
	src := variant.Some(&x)
	for b.Loop() {
		_ = variant.CastOptional[*int](src)
	}
}

// BenchmarkConvertOptional measures the checked conversion.
func BenchmarkConvertOptional(b *testing.B) {
	x := 42
	src := variant.Some(&x)
	for b.Loop() {
		_, _ = variant.ConvertOptional[*int](src)
	}
}

// BenchmarkFlatMapResultChain measures a short chain of fallible steps.
func BenchmarkFlatMapResultChain(b *testing.B) {
	inc := func(x int) variant.ResultOf[int] { return variant.OkOf(x + 1) }
	for b.Loop() {
		r := variant.OkOf(0)
		for range 8 {
			r = variant.FlatMapResult(r, inc)
		}
		_ = r
	}
}

// BenchmarkCaptureCall measures a scope-checked closure call.
func BenchmarkCaptureCall(b *testing.B) {
	s := variant.NewScope()
	defer s.Close()
	x := 5
	f := variant.Capture(s, func(y int) int { return x + y })
	for b.Loop() {
		_ = f.Call(1)
	}
}

// BenchmarkNestedScopeCall measures the liveness walk through enclosing scopes.
func BenchmarkNestedScopeCall(b *testing.B) {
	s := variant.NewScope()
	defer s.Close()
	inner := s.Enter().Enter().Enter()
	f := variant.Capture(inner, func(y int) int { return y })
	for b.Loop() {
		_ = f.Call(1)
	}
}

// BenchmarkSnapshotCall measures a by-value closure call.
func BenchmarkSnapshotCall(b *testing.B) {
	f := variant.Snapshot(5, func(x, y int) int { return x + y })
	for b.Loop() {
		_ = f(1)
	}
}
