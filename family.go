// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package variant

import "unsafe"

// Monomorphic container forms.
//
// OptionOf[T] and ResultOf[T] keep the field order and names of the erased
// forms, with the payload statically typed. A family member is introduced
// at declaration time with a type alias:
//
//	type OptionalString = variant.OptionOf[string]
//	type ResultUser = variant.ResultOf[*User]
//
// OptionOf[Erased] and Optional share an underlying type, as do
// ResultOf[Erased] and Result, so conversions between them are plain Go
// conversions. For standalone named types see cmd/variantgen.

// OptionOf is Optional<T> with a statically typed payload.
// When HasSome is false, Value is the zero T.
type OptionOf[T any] struct {
	Value   T
	HasSome bool
}

// SomeOf wraps v in an OptionOf holding a value.
func SomeOf[T any](v T) OptionOf[T] {
	return OptionOf[T]{Value: v, HasSome: true}
}

// NoneOf returns an empty OptionOf.
func NoneOf[T any]() OptionOf[T] {
	return OptionOf[T]{}
}

// IsNone reports whether o holds no value.
func (o OptionOf[T]) IsNone() bool {
	return !o.HasSome
}

// Get returns the payload and true, or zero and false.
func (o OptionOf[T]) Get() (T, bool) {
	if o.HasSome {
		return o.Value, true
	}
	var zero T
	return zero, false
}

// OrElse returns the payload, or def when o is empty.
func (o OptionOf[T]) OrElse(def T) T {
	if o.HasSome {
		return o.Value
	}
	return def
}

// Erase returns o in its erased form.
func (o OptionOf[T]) Erase() Optional {
	if !o.HasSome {
		return None()
	}
	return Some(o.Value)
}

// ResultOf is Result<T,E> with a statically typed payload and a [Code]
// error domain. When Error is nonzero, Unwrap is the zero T.
type ResultOf[T any] struct {
	Unwrap T
	Error  Code
}

// OkOf wraps v in a successful ResultOf.
func OkOf[T any](v T) ResultOf[T] {
	return ResultOf[T]{Unwrap: v, Error: NoError}
}

// ErrOf returns a failed ResultOf carrying code.
// Panics if code is zero.
func ErrOf[T any](code Code) ResultOf[T] {
	if code == NoError {
		panic(errZeroCode)
	}
	return ResultOf[T]{Error: code}
}

// TryErrOf is the non-panicking variant of [ErrOf].
func TryErrOf[T any](code Code) (ResultOf[T], error) {
	if code == NoError {
		return ResultOf[T]{}, ErrZeroCode
	}
	return ResultOf[T]{Error: code}, nil
}

// IsOk reports whether r carries a success value.
func (r ResultOf[T]) IsOk() bool {
	return r.Error == NoError
}

// IsErr reports whether r carries an error code.
func (r ResultOf[T]) IsErr() bool {
	return r.Error != NoError
}

// Err returns nil for a successful result and the error Code otherwise.
func (r ResultOf[T]) Err() error {
	if r.Error == NoError {
		return nil
	}
	return r.Error
}

// Get returns the payload and a nil error, or zero and the error Code.
func (r ResultOf[T]) Get() (T, error) {
	if r.Error == NoError {
		return r.Unwrap, nil
	}
	var zero T
	return zero, r.Error
}

// OrElse returns the payload, or def when r carries an error.
func (r ResultOf[T]) OrElse(def T) T {
	if r.Error == NoError {
		return r.Unwrap
	}
	return def
}

// Option translates r into an OptionOf, dropping the error code.
func (r ResultOf[T]) Option() OptionOf[T] {
	if r.Error == NoError {
		return SomeOf(r.Unwrap)
	}
	return NoneOf[T]()
}

// Erase returns r in its erased form.
func (r ResultOf[T]) Erase() Result {
	if r.Error != NoError {
		return Result{Error: r.Error}
	}
	return Ok(r.Unwrap)
}

// MatchOption calls onSome with the payload, or onNone when o is empty.
func MatchOption[T, R any](o OptionOf[T], onNone func() R, onSome func(T) R) R {
	if o.HasSome {
		return onSome(o.Value)
	}
	return onNone()
}

// MapOption applies f to the payload of o.
func MapOption[T, U any](o OptionOf[T], f func(T) U) OptionOf[U] {
	if o.HasSome {
		return SomeOf(f(o.Value))
	}
	return NoneOf[U]()
}

// FlatMapOption sequences two optional computations.
func FlatMapOption[T, U any](o OptionOf[T], f func(T) OptionOf[U]) OptionOf[U] {
	if o.HasSome {
		return f(o.Value)
	}
	return NoneOf[U]()
}

// MatchResult calls onOk with the payload, or onErr with the error code.
func MatchResult[T, R any](r ResultOf[T], onErr func(Code) R, onOk func(T) R) R {
	if r.Error == NoError {
		return onOk(r.Unwrap)
	}
	return onErr(r.Error)
}

// MapResult applies f to the payload of a successful r.
// An error code passes through unchanged.
func MapResult[T, U any](r ResultOf[T], f func(T) U) ResultOf[U] {
	if r.Error == NoError {
		return OkOf(f(r.Unwrap))
	}
	return ResultOf[U]{Error: r.Error}
}

// FlatMapResult sequences two fallible computations, propagating the
// first error code unchanged.
func FlatMapResult[T, U any](r ResultOf[T], f func(T) ResultOf[U]) ResultOf[U] {
	if r.Error == NoError {
		return f(r.Unwrap)
	}
	return ResultOf[U]{Error: r.Error}
}

// FitsSlot reports whether a T value fits in a single pointer-sized slot.
// The generic forms place no limit on T; this is for callers that want
// the word-sized payload restriction of the erased representation.
func FitsSlot[T any]() bool {
	var zero T
	return unsafe.Sizeof(zero) <= unsafe.Sizeof(uintptr(0))
}
