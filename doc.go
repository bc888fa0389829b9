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

// Package cinject is a dependency injection container for Go, a port of the
// cinject C++ library.
//
// A Container maps component identities to creation strategies and resolves
// object graphs on demand:
//
//	type IAnimal interface{ Voice() string }
//
//	type Cheetah struct{}
//
//	func (*Cheetah) Voice() string { return "growl" }
//
//	c := cinject.New()
//	cinject.BindTo[IAnimal, *Cheetah](c).InSingletonScope()
//
//	animal, err := cinject.Get[IAnimal](c)
//
// Components are identified by their handle type: an interface type, or a
// pointer type for concrete components. One identity may carry many
// bindings, resolved together as a collection with GetAll; one
// implementation may be registered under many identities with
// Container.Bind, sharing its instance storage across all of them.
// Containers nest: a child created with Container.Child resolves its own
// bindings first and falls back to its ancestors'.
//
// Construction is driven by constructor deduction (see To), a caller
// supplied callback (ToFunction), or a pre-built constant (ToConstant).
// Bindings are transient unless marked with InSingletonScope. Circular
// dependencies are detected at resolution time and fail with
// CircularDependencyError.
//
// The engine is single-threaded by design: resolution is a synchronous
// recursive descent, and singleton first-access is not guarded against
// concurrent use. Callers resolving from multiple goroutines must serialize
// externally.
package cinject
