// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package variant_test

import (
	"math/rand/v2"
	"testing"

	"code.hybscloud.com/variant"
)

const propertyN = 1000

// randInt returns a random int in [-1000, 1000].
func randInt(rng *rand.Rand) int {
	return rng.IntN(2001) - 1000
}

// randString returns a random ASCII string of length [0, 8].
func randString(rng *rand.Rand) string {
	n := rng.IntN(9)
	b := make([]byte, n)
	for i := range b {
		b[i] = byte(rng.IntN(95) + 32) // printable ASCII
	}
	return string(b)
}

// randCode returns a random nonzero error code.
func randCode(rng *rand.Rand) variant.Code {
	return variant.Code(rng.IntN(255) + 1)
}

// --- Group 1: Constructors ---

// TestPropertySome: Some(x).HasSome ∧ Some(x).Value = x
func TestPropertySome(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		x := randInt(rng)
		o := variant.Some(x)
		if !o.HasSome || o.Value != x {
			t.Fatalf("some: got %+v (x=%d)", o, x)
		}
	}
}

// TestPropertyOk: Ok(x).Error = 0 ∧ Ok(x).Unwrap = x
func TestPropertyOk(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		x := randString(rng)
		r := variant.Ok(x)
		if r.Error != 0 || r.Unwrap != x {
			t.Fatalf("ok: got %+v (x=%q)", r, x)
		}
	}
}

// TestPropertyErr: c ≠ 0 ⇒ Err(c).Unwrap = nil ∧ Err(c).Error = c
func TestPropertyErr(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		c := randCode(rng)
		r := variant.Err(c)
		if r.Unwrap != nil || r.Error != c {
			t.Fatalf("err: got %+v (c=%d)", r, c)
		}
	}
}

// --- Group 2: Structural Casts ---

// TestPropertyCastRoundTrip: Cast(Some(x)).Erase() = Some(x)
func TestPropertyCastRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		x := randInt(rng)
		src := variant.Some(x)
		mono := variant.CastOptional[int](src)
		if mono.HasSome != src.HasSome || mono.Value != x {
			t.Fatalf("cast: got %+v, want %+v", mono, src)
		}
		if back := mono.Erase(); back != src {
			t.Fatalf("round trip: got %+v, want %+v", back, src)
		}
	}
}

// TestPropertyCastResultAgreesWithConvert: Cast and Convert agree on well-typed input.
func TestPropertyCastResultAgreesWithConvert(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		var src variant.Result
		if rng.IntN(2) == 0 {
			src = variant.Ok(randString(rng))
		} else {
			src = variant.Err(randCode(rng))
		}
		cast := variant.CastResult[string](src)
		conv, err := variant.ConvertResult[string](src)
		if err != nil {
			t.Fatalf("convert: unexpected error %v", err)
		}
		if cast != conv {
			t.Fatalf("cast %+v != convert %+v", cast, conv)
		}
	}
}

// --- Group 3: Functor Laws ---

// TestPropertyMapOptionIdentity: MapOption(o, id) = o
func TestPropertyMapOptionIdentity(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		o := variant.SomeOf(randInt(rng))
		if rng.IntN(4) == 0 {
			o = variant.NoneOf[int]()
		}
		got := variant.MapOption(o, func(x int) int { return x })
		if got != o {
			t.Fatalf("map identity: %+v != %+v", got, o)
		}
	}
}

// TestPropertyMapResultComposition: MapResult(MapResult(r, f), g) = MapResult(r, g∘f)
func TestPropertyMapResultComposition(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	f := func(x int) int { return x + 3 }
	g := func(x int) int { return x * 2 }
	for range propertyN {
		r := variant.OkOf(randInt(rng))
		if rng.IntN(4) == 0 {
			r = variant.ErrOf[int](randCode(rng))
		}
		left := variant.MapResult(variant.MapResult(r, f), g)
		right := variant.MapResult(r, func(x int) int { return g(f(x)) })
		if left != right {
			t.Fatalf("map composition: %+v != %+v", left, right)
		}
	}
}

// --- Group 4: Closures ---

// TestPropertyCaptureObservesLatest: after x ← v, f(y) = v + y
func TestPropertyCaptureObservesLatest(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	variant.Within(func(s *variant.Scope) {
		x := 0
		f := variant.Capture(s, func(y int) int { return x + y })
		for range propertyN {
			x = randInt(rng)
			y := randInt(rng)
			if got := f.Call(y); got != x+y {
				t.Fatalf("capture: f(%d) = %d, want %d", y, got, x+y)
			}
		}
	})
}

// TestPropertySnapshotIgnoresLater: after x ← v, snap(y) = x₀ + y
func TestPropertySnapshotIgnoresLater(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		x := randInt(rng)
		x0 := x
		snap := variant.Snapshot(x, func(x, y int) int { return x + y })
		x = randInt(rng)
		y := randInt(rng)
		if got := snap(y); got != x0+y {
			t.Fatalf("snapshot: got %d, want %d", got, x0+y)
		}
	}
}
