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

// InjectionContext is the call stack of one root resolution. It records the
// chain of components from the original requester down to the node under
// construction; every nested resolution triggered by a factory reuses the
// same context. It is created once per root Get or GetAll call unless the
// caller threads an existing one through.
type InjectionContext struct {
	container *Container
	stack     []ComponentType
}

func newInjectionContext(c *Container, requester ComponentType) *InjectionContext {
	ctx := &InjectionContext{container: c}
	ctx.push(requester)
	return ctx
}

// Container returns the container this context resolves against.
func (ctx *InjectionContext) Container() *Container { return ctx.container }

// ComponentStack returns a copy of the active resolution chain, from the
// root requester down to the component currently being built.
func (ctx *InjectionContext) ComponentStack() []ComponentType {
	stack := make([]ComponentType, len(ctx.stack))
	copy(stack, ctx.stack)
	return stack
}

// Requester returns the component that asked for the one currently under
// construction. It fails with InvalidOperationError unless at least two
// frames are active.
func (ctx *InjectionContext) Requester() (ComponentType, error) {
	if len(ctx.stack) < 2 {
		return ComponentType{}, &InvalidOperationError{Reason: "context not valid"}
	}
	return ctx.stack[len(ctx.stack)-2], nil
}

func (ctx *InjectionContext) push(t ComponentType) {
	ctx.stack = append(ctx.stack, t)
}

func (ctx *InjectionContext) pop() {
	ctx.stack = ctx.stack[:len(ctx.stack)-1]
}

// ensureNoCycle checks the frames below the top for an earlier occurrence of
// the component on top of the stack. The root frame only names the requester
// of the resolution and never a component under construction, so it is
// outside the scan; a collection request seeds it with the requested identity
// itself, which must not count as a cycle with its own bindings.
func (ctx *InjectionContext) ensureNoCycle() error {
	top := ctx.stack[len(ctx.stack)-1]
	for _, frame := range ctx.stack[1 : len(ctx.stack)-1] {
		if frame.equal(top) {
			return &CircularDependencyError{Type: top}
		}
	}
	return nil
}
