// Copyright (c) 2025 The cinject Authors
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

package cinject

import "fmt"

// ComponentNotFoundError is returned when a single-instance request finds no
// resolver for the identity anywhere in the container hierarchy. Collection
// requests never produce it; they return an empty slice instead.
type ComponentNotFoundError struct {
	Type ComponentType
}

func (e *ComponentNotFoundError) Error() string {
	return fmt.Sprintf("component for interface %q not found", e.Type.Name())
}

// CircularDependencyError is returned when a component identity recurs in
// the active resolution chain.
type CircularDependencyError struct {
	Type ComponentType
}

func (e *CircularDependencyError) Error() string {
	return fmt.Sprintf("found circular dependency on component %q", e.Type.Name())
}

// InvalidOperationError is returned for structural misuse of the engine,
// such as asking an injection context for its requester when the context has
// no caller frame.
type InvalidOperationError struct {
	Reason string
}

func (e *InvalidOperationError) Error() string {
	return e.Reason
}

// BindingError is the panic payload raised when a binding is rejected at
// bind time: an implementation incompatible with a declared identity, or a
// constructor that cannot be deduced. Misbinding is a programmer defect and
// is never deferred to resolution time.
type BindingError struct {
	Reason string
	Err    error
}

func (e *BindingError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Reason, e.Err)
	}
	return e.Reason
}

func (e *BindingError) Unwrap() error { return e.Err }
