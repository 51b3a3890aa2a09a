// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package variant

import (
	"sync/atomic"
)

// Scope is an explicit lifetime handle standing in for the activation
// record of the block that builds a reference-capturing closure.
//
// A Scope is live from creation until Close is called on it or on any
// scope enclosing it. Closures bound to a Scope refuse to run once it is
// no longer live.
type Scope struct {
	closed atomic.Bool
	parent *Scope
}

// NewScope creates a live root scope.
func NewScope() *Scope {
	return &Scope{}
}

// Enter creates a scope nested in s. Closing s also ends the nested scope.
func (s *Scope) Enter() *Scope {
	return &Scope{parent: s}
}

// Close ends the scope. Closing an already closed scope has no effect.
func (s *Scope) Close() {
	s.closed.Store(true)
}

// Live reports whether neither s nor any enclosing scope has been closed.
// A nil scope is never live.
func (s *Scope) Live() bool {
	if s == nil {
		return false
	}
	for p := s; p != nil; p = p.parent {
		if p.closed.Load() {
			return false
		}
	}
	return true
}

// Within runs block with a fresh root scope and closes it when block
// returns or panics.
func Within(block func(s *Scope)) {
	s := NewScope()
	defer s.Close()
	block(s)
}
