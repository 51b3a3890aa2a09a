// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package variant

// Closures with an explicit capture mode.
//
// Capture and Capture2 capture by reference: the body is an ordinary Go
// function literal, so it sees every later write to the variables it
// names. The result is bound to a Scope and is only callable while that
// Scope is live.
//
// Snapshot and Snapshot2 capture by value: the environment is copied
// once at construction and owned by the returned function, which stays
// valid regardless of any scope.
//
// Neither mode synchronizes access to captured variables. Mutating them
// from one goroutine while a closure reads them from another is a data
// race the caller must serialize.

const (
	errScopeExited = "variant: closure called after its scope exited"
	errNilScope    = "variant: Capture with nil scope"
	errZeroFunc    = "variant: call of zero closure"
)

// Func is a one-argument closure bound to a Scope.
type Func[A, R any] struct {
	scope *Scope
	body  func(A) R
}

// Capture binds body to s. Panics if s is nil.
func Capture[A, R any](s *Scope, body func(A) R) Func[A, R] {
	if s == nil {
		panic(errNilScope)
	}
	return Func[A, R]{scope: s, body: body}
}

// Call invokes the closure.
// Panics if the closure's scope is no longer live or f is the zero Func.
func (f Func[A, R]) Call(a A) R {
	if f.scope == nil || f.body == nil {
		panic(errZeroFunc)
	}
	if !f.scope.Live() {
		panic(errScopeExited)
	}
	return f.body(a)
}

// TryCall attempts to invoke the closure.
// Returns (result, true) on success, or (zero, false) if the scope has
// exited or f is the zero Func.
func (f Func[A, R]) TryCall(a A) (R, bool) {
	if f.body == nil || !f.scope.Live() {
		var zero R
		return zero, false
	}
	return f.body(a), true
}

// Live reports whether the closure may still be called.
func (f Func[A, R]) Live() bool {
	return f.body != nil && f.scope.Live()
}

// Func returns the closure as a plain function value. The returned
// function checks scope liveness on every call, like [Func.Call].
func (f Func[A, R]) Func() func(A) R {
	return f.Call
}

// Func2 is a two-argument closure bound to a Scope.
type Func2[A, B, R any] struct {
	scope *Scope
	body  func(A, B) R
}

// Capture2 binds a two-argument body to s. Panics if s is nil.
func Capture2[A, B, R any](s *Scope, body func(A, B) R) Func2[A, B, R] {
	if s == nil {
		panic(errNilScope)
	}
	return Func2[A, B, R]{scope: s, body: body}
}

// Call invokes the closure.
// Panics if the closure's scope is no longer live.
func (f Func2[A, B, R]) Call(a A, b B) R {
	if f.scope == nil || f.body == nil {
		panic(errZeroFunc)
	}
	if !f.scope.Live() {
		panic(errScopeExited)
	}
	return f.body(a, b)
}

// TryCall attempts to invoke the closure.
func (f Func2[A, B, R]) TryCall(a A, b B) (R, bool) {
	if f.body == nil || !f.scope.Live() {
		var zero R
		return zero, false
	}
	return f.body(a, b), true
}

// Live reports whether the closure may still be called.
func (f Func2[A, B, R]) Live() bool {
	return f.body != nil && f.scope.Live()
}

// Func returns the closure as a plain function value.
func (f Func2[A, B, R]) Func() func(A, B) R {
	return f.Call
}

// Snapshot copies env and returns a function that owns the copy.
// Writes to the original variable after construction are not observed.
func Snapshot[E, A, R any](env E, body func(E, A) R) func(A) R {
	return func(a A) R {
		return body(env, a)
	}
}

// Snapshot2 is the two-argument form of [Snapshot].
func Snapshot2[E, A, B, R any](env E, body func(E, A, B) R) func(A, B) R {
	return func(a A, b B) R {
		return body(env, a, b)
	}
}
