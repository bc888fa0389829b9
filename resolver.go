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

import "reflect"

// resolver adapts one shared instance storage to one bound identity. It is
// created at bind time, once per (implementation, identity) pair, after the
// implementation has been verified assignable to the identity; no type check
// is needed at resolution time. The storage is shared, not owned: several
// resolvers under different identities may point at the same storage.
type resolver struct {
	identity ComponentType
	implType reflect.Type
	storage  *instanceStorage
}

// forwardInstance produces an instance handle for the bound identity.
func (r *resolver) forwardInstance(ctx *InjectionContext) (interface{}, error) {
	return r.storage.getInstance(ctx)
}
