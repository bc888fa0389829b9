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

// factory produces a new owned instance of a component given the current
// injection context.
type factory interface {
	createInstance(ctx *InjectionContext) (interface{}, error)
	// name describes the creation strategy in events and diagnostics.
	name() string
}

// FactoryFunc is the shape of a caller-supplied creation callback bound with
// ToFunction. The callback may inspect the context, typically to look up the
// requester.
type FactoryFunc[T any] func(ctx *InjectionContext) (T, error)

// functionFactory wraps a user callback.
type functionFactory struct {
	fn func(ctx *InjectionContext) (interface{}, error)
}

func (f *functionFactory) createInstance(ctx *InjectionContext) (interface{}, error) {
	return f.fn(ctx)
}

func (f *functionFactory) name() string { return "function" }

// constantFactory always returns the instance captured at bind time.
type constantFactory struct {
	instance interface{}
}

func (f *constantFactory) createInstance(*InjectionContext) (interface{}, error) {
	return f.instance, nil
}

func (f *constantFactory) name() string { return "constant" }
