// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package variant

import (
	"errors"
	"fmt"
	"reflect"
)

// Structural casts between the erased and monomorphic forms.
//
// CastOptional and CastResult are relabelings: each field is copied into
// the target form and the discriminant is trusted as-is. The caller must
// know from program logic that the erased payload was produced with type
// T. ConvertOptional and ConvertResult are the checked counterparts: they
// match on the discriminant and report payload mismatches as errors.
//
// The reverse direction is OptionOf.Erase and ResultOf.Erase.

var (
	// ErrPayloadType reports an erased payload whose dynamic type is not
	// the requested monomorphic payload type.
	ErrPayloadType = errors.New("variant: payload type mismatch")

	// ErrMalformed reports an erased value that breaks its container
	// invariant, such as None or Err with a non-nil payload.
	ErrMalformed = errors.New("variant: malformed container")
)

// CastError describes a failed checked conversion.
type CastError struct {
	// Want is the requested payload type.
	Want string
	// Got is the dynamic type of the erased payload, or "nil".
	Got string
	// Err is ErrPayloadType or ErrMalformed.
	Err error
}

func (e *CastError) Error() string {
	return fmt.Sprintf("%v: want %s, got %s", e.Err, e.Want, e.Got)
}

func (e *CastError) Unwrap() error {
	return e.Err
}

// CastOptional relabels an erased Optional as OptionOf[T].
//
// No validity check is made beyond Go's own type assertion on the
// payload of a Some; a payload of the wrong dynamic type panics. A nil
// payload relabels to the zero T. A None relabels to the zero T without
// looking at its payload slot.
func CastOptional[T any](o Optional) OptionOf[T] {
	return OptionOf[T]{Value: relabel[T](o.Value, o.HasSome), HasSome: o.HasSome}
}

// CastResult relabels an erased Result as ResultOf[T].
// See [CastOptional] for the payload rules; an Err keeps its code and
// carries the zero T.
func CastResult[T any](r Result) ResultOf[T] {
	return ResultOf[T]{Unwrap: relabel[T](r.Unwrap, r.Error == NoError), Error: r.Error}
}

// ConvertOptional is the checked conversion from an erased Optional.
// Some payloads must have dynamic type T (nil is accepted only for
// nilable T); None must carry no payload.
func ConvertOptional[T any](o Optional) (OptionOf[T], error) {
	if !o.HasSome {
		if o.Value != nil {
			return OptionOf[T]{}, castError[T](o.Value, ErrMalformed)
		}
		return NoneOf[T](), nil
	}
	v, err := checkedPayload[T](o.Value)
	if err != nil {
		return OptionOf[T]{}, err
	}
	return SomeOf(v), nil
}

// ConvertResult is the checked conversion from an erased Result.
// Ok payloads must have dynamic type T (nil is accepted only for
// nilable T); Err must carry no payload.
func ConvertResult[T any](r Result) (ResultOf[T], error) {
	if r.Error != NoError {
		if r.Unwrap != nil {
			return ResultOf[T]{}, castError[T](r.Unwrap, ErrMalformed)
		}
		return ResultOf[T]{Error: r.Error}, nil
	}
	v, err := checkedPayload[T](r.Unwrap)
	if err != nil {
		return ResultOf[T]{}, err
	}
	return OkOf(v), nil
}

// relabel asserts v to T when present is set by the discriminant.
func relabel[T any](v Erased, present bool) T {
	if !present || v == nil {
		var zero T
		return zero
	}
	t, ok := v.(T)
	if !ok {
		panic(fmt.Sprintf("variant: cast of %T payload to %s", v, typeName[T]()))
	}
	return t
}

func checkedPayload[T any](v Erased) (T, error) {
	var zero T
	if v == nil {
		if nilable[T]() {
			return zero, nil
		}
		return zero, castError[T](nil, ErrPayloadType)
	}
	t, ok := v.(T)
	if !ok {
		return zero, castError[T](v, ErrPayloadType)
	}
	return t, nil
}

func castError[T any](v Erased, err error) *CastError {
	got := "nil"
	if v != nil {
		got = fmt.Sprintf("%T", v)
	}
	return &CastError{Want: typeName[T](), Got: got, Err: err}
}

func typeName[T any]() string {
	return reflect.TypeFor[T]().String()
}

// nilable reports whether nil is a valid T.
func nilable[T any]() bool {
	switch reflect.TypeFor[T]().Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice,
		reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return true
	}
	return false
}
