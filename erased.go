// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package variant

import (
	"errors"
	"strconv"
)

// Erased is a type alias for any, marking the opaque payload slot of the
// erased containers. The absence sentinel of an Erased slot is nil.
type Erased = any

// Code is a Result error code. Zero is reserved for success and is only
// ever produced by [Ok]; every nonzero value names a distinct error kind
// chosen by the caller.
type Code uint8

// NoError is the reserved success code.
const NoError Code = 0

// Error implements error so that a nonzero Code can flow into ordinary
// Go error handling.
func (c Code) Error() string {
	return "variant: error code " + strconv.Itoa(int(c))
}

// ErrZeroCode is returned by [TryErr] and [TryErrOf] when asked to build an
// error Result with the reserved success code.
var ErrZeroCode = errors.New("variant: zero error code is reserved for Ok")

// errZeroCode is the panic message for Err(0).
const errZeroCode = "variant: Err with zero error code"

// Optional is the erased form of Optional<T>: a payload slot with no
// compile-time knowledge of its type, and a presence flag.
//
// When HasSome is false, Value is nil.
type Optional struct {
	Value   Erased
	HasSome bool
}

// Some wraps v in an Optional holding a value.
func Some(v Erased) Optional {
	return Optional{Value: v, HasSome: true}
}

// None returns an empty Optional.
func None() Optional {
	return Optional{Value: nil, HasSome: false}
}

// IsNone reports whether o holds no value.
func (o Optional) IsNone() bool {
	return !o.HasSome
}

// Get returns the payload and true, or nil and false.
func (o Optional) Get() (Erased, bool) {
	if o.HasSome {
		return o.Value, true
	}
	return nil, false
}

// OrElse returns the payload, or def when o is empty.
func (o Optional) OrElse(def Erased) Erased {
	if o.HasSome {
		return o.Value
	}
	return def
}

// Result is the erased form of Result<T,E>: a payload slot and a numeric
// error code. Error == 0 means Unwrap holds the success value; any other
// code means Unwrap is nil.
type Result struct {
	Unwrap Erased
	Error  Code
}

// Ok wraps v in a successful Result.
func Ok(v Erased) Result {
	return Result{Unwrap: v, Error: NoError}
}

// Err returns a failed Result carrying code.
// Panics if code is zero, which would be indistinguishable from Ok.
func Err(code Code) Result {
	if code == NoError {
		panic(errZeroCode)
	}
	return Result{Unwrap: nil, Error: code}
}

// TryErr is the non-panicking variant of [Err].
// Returns (zero, ErrZeroCode) if code is zero.
func TryErr(code Code) (Result, error) {
	if code == NoError {
		return Result{}, ErrZeroCode
	}
	return Result{Unwrap: nil, Error: code}, nil
}

// IsOk reports whether r carries a success value.
func (r Result) IsOk() bool {
	return r.Error == NoError
}

// IsErr reports whether r carries an error code.
func (r Result) IsErr() bool {
	return r.Error != NoError
}

// Err returns nil for a successful Result and the error Code otherwise.
func (r Result) Err() error {
	if r.Error == NoError {
		return nil
	}
	return r.Error
}

// Get returns the payload and a nil error, or nil and the error Code.
func (r Result) Get() (Erased, error) {
	if r.Error == NoError {
		return r.Unwrap, nil
	}
	return nil, r.Error
}

// OrElse returns the payload, or def when r carries an error.
func (r Result) OrElse(def Erased) Erased {
	if r.Error == NoError {
		return r.Unwrap
	}
	return def
}

// Optional translates r into an Optional, dropping the error detail:
// Ok(v) becomes Some(v) and any error becomes None.
func (r Result) Optional() Optional {
	if r.Error == NoError {
		return Some(r.Unwrap)
	}
	return None()
}
