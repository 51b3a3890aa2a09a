// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package variant provides Optional and Result sum-type containers in an
// erased and a monomorphic representation, and closures with an explicit
// capture mode.
//
// # Erased Containers
//
// The erased forms hold their payload in an opaque [Erased] slot next to a
// discriminant. Readers must check the discriminant before trusting the
// payload's type.
//
//   - [Optional]: {Value, HasSome}
//   - [Some], [None]: Constructors
//   - [Result]: {Unwrap, Error}
//   - [Ok], [Err]: Constructors; Err panics on the reserved code 0
//   - [TryErr]: Non-panicking variant of Err
//   - [Code]: Numeric error domain; 0 ([NoError]) means success
//
// # Monomorphic Families
//
// [OptionOf] and [ResultOf] keep the field layout of the erased forms with
// a statically typed payload. A family member is introduced with a type
// alias:
//
//	type OptionalString = variant.OptionOf[string]
//
// cmd/variantgen generates standalone named family types from a YAML
// manifest for code that wants distinct declared types.
//
//   - [SomeOf], [NoneOf], [OkOf], [ErrOf], [TryErrOf]: Constructors
//   - [MatchOption], [MapOption], [FlatMapOption]: Option combinators
//   - [MatchResult], [MapResult], [FlatMapResult]: Result combinators
//   - [ResultOf.Option]: Translate a result into an option
//   - [FitsSlot]: Whether a payload type fits one pointer-sized slot
//
// # Structural Casts
//
// Values move between the two representations field by field:
//
//   - [CastOptional], [CastResult]: Relabel erased → monomorphic, trusting the discriminant
//   - [ConvertOptional], [ConvertResult]: Checked conversion, returns [*CastError]
//   - [OptionOf.Erase], [ResultOf.Erase]: Monomorphic → erased
//
// OptionOf[Erased] and Optional have the same underlying type, so
// OptionOf[Erased](o) is a zero-cost conversion.
//
// # Closures
//
// Go function literals already capture enclosing variables by reference.
// The liveness of the enclosing block is made explicit with a [Scope]:
//
//   - [Scope]: Lifetime handle; [NewScope], [Scope.Enter], [Scope.Close], [Within]
//   - [Capture], [Capture2]: By-reference capture bound to a Scope
//   - [Func.Call]: Invoke (panics after scope exit)
//   - [Func.TryCall]: Non-panicking variant
//   - [Func.Func]: Plain function value with the same check
//   - [Snapshot], [Snapshot2]: By-value capture, independent of any Scope
//
// # Example
//
//	variant.Within(func(s *variant.Scope) {
//		x := 5
//		add := variant.Capture(s, func(y int) int { return x + y })
//		_ = add.Call(1) // 6
//		x = 10
//		_ = add.Call(1) // 11
//	})
package variant
