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

import (
	"fmt"
	"reflect"
)

// Get resolves exactly one instance of T from the container. T may also be a
// slice of a handle type, in which case the request is served as a
// collection lookup, like GetAll.
//
// The optional context threads an in-flight resolution through, so that
// factories re-entering the container share one resolution chain. Without
// it, a fresh context with a synthetic "Unspecified" requester is used.
func Get[T any](c *Container, ctx ...*InjectionContext) (T, error) {
	var zero T
	rtype := reflect.TypeOf((*T)(nil)).Elem()

	if classify(rtype) == argCollection {
		collection, err := getCollection(c, rtype, optionalContext(ctx))
		if err != nil {
			return zero, err
		}
		return collection.Interface().(T), nil
	}

	instance, err := c.get(Type[T](), optionalContext(ctx))
	if err != nil {
		return zero, err
	}
	typed, ok := instance.(T)
	if !ok {
		// Bind-time checks make this unreachable for bindings created
		// through this package; a mismatch is a defect, not a condition
		// to recover from.
		return zero, &InvalidOperationError{Reason: fmt.Sprintf(
			"component %s resolved to incompatible instance of type %T",
			Type[T]().Name(), instance)}
	}
	return typed, nil
}

// MustGet is Get, panicking on failure.
func MustGet[T any](c *Container, ctx ...*InjectionContext) T {
	instance, err := Get[T](c, ctx...)
	if err != nil {
		panic(err)
	}
	return instance
}

// GetAll resolves every binding of T across the container hierarchy, the
// container's own bindings first, then its ancestors', in registration
// order. Zero bindings yield an empty slice, not an error.
func GetAll[T any](c *Container, ctx ...*InjectionContext) ([]T, error) {
	instances, err := c.getAll(Type[T](), optionalContext(ctx))
	if err != nil {
		return nil, err
	}

	typed := make([]T, 0, len(instances))
	for _, instance := range instances {
		typed = append(typed, instance.(T))
	}
	return typed, nil
}

// getCollection serves Get[[]E] requests through the collection primitive,
// building a slice of the requested static type.
func getCollection(c *Container, sliceType reflect.Type, ctx *InjectionContext) (reflect.Value, error) {
	elemType := componentTypeOf(sliceType.Elem(), "")
	instances, err := c.getAll(elemType, ctx)
	if err != nil {
		return reflect.Value{}, err
	}

	collection := reflect.MakeSlice(sliceType, 0, len(instances))
	for _, instance := range instances {
		collection = reflect.Append(collection, reflect.ValueOf(instance))
	}
	return collection, nil
}

func optionalContext(ctx []*InjectionContext) *InjectionContext {
	if len(ctx) > 0 {
		return ctx[0]
	}
	return nil
}
