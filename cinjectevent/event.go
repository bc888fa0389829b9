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

package cinjectevent

// Event defines an event emitted by a cinject container.
type Event interface {
	event() // Only cinject can implement this interface.
}

// Passing events by type to make Event hashable in the future.
func (*Bound) event()        {}
func (*Resolved) event()     {}
func (*ResolveError) event() {}

// Bound is emitted when a creation strategy is attached to a binding and one
// resolver per declared identity has been registered.
type Bound struct {
	// ImplementationName is the display name of the bound implementation at
	// registration time. An alias applied afterwards shows up in later
	// Resolved events and requester lookups, not here.
	ImplementationName string
	// IdentityNames lists the display names of the identities the
	// implementation was registered under.
	IdentityNames []string
	// FactoryName names the creation strategy: "constructor" (with the
	// constructor's function name when one was declared), "function" or
	// "constant".
	FactoryName string
}

// Resolved is emitted after a component has been resolved successfully.
type Resolved struct {
	// TypeName is the display name of the requested identity.
	TypeName string
	// RequesterName is the display name of the component that asked for it.
	RequesterName string
}

// ResolveError is emitted when a resolution fails.
type ResolveError struct {
	// TypeName is the display name of the requested identity.
	TypeName string
	Err      error
}
