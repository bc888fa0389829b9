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

// instanceStorage owns one factory and applies the lifetime policy. The same
// storage may back several resolvers under different identities, which is
// what makes many-to-one bindings share a singleton instance.
//
// Singleton first-access is not guarded against concurrent use. The engine
// assumes single-goroutine resolution; callers that resolve from multiple
// goroutines must serialize externally.
type instanceStorage struct {
	factory   factory
	implType  reflect.Type
	singleton bool
	name      string

	// Cached singleton, created lazily on first successful resolution.
	instance interface{}
	created  bool
}

func newInstanceStorage(implType reflect.Type, f factory) *instanceStorage {
	return &instanceStorage{
		factory:  f,
		implType: implType,
		name:     componentNameOf(implType),
	}
}

// componentType is the frame pushed on the injection context while this
// storage builds an instance.
func (s *instanceStorage) componentType() ComponentType {
	return componentTypeOf(s.implType, s.name)
}

// getInstance returns a fresh instance for transient storage, or the cached
// one for singleton storage, creating it on first call.
func (s *instanceStorage) getInstance(ctx *InjectionContext) (interface{}, error) {
	if !s.singleton {
		return s.createInstance(ctx)
	}

	if !s.created {
		instance, err := s.createInstance(ctx)
		if err != nil {
			return nil, err
		}
		s.instance = instance
		s.created = true
	}

	return s.instance, nil
}

// createInstance keeps the component on the active resolution chain for
// exactly as long as it is being built, on every exit path.
func (s *instanceStorage) createInstance(ctx *InjectionContext) (interface{}, error) {
	ctx.push(s.componentType())
	defer ctx.pop()

	if err := ctx.ensureNoCycle(); err != nil {
		return nil, err
	}

	return s.factory.createInstance(ctx)
}
