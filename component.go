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
	"reflect"

	"github.com/mjirous/cinject/internal/typename"
)

// Named is implemented by component types that declare a display name. The
// name is used in diagnostics and as the value seen by requester lookups;
// types without it fall back to their reflected type name.
type Named interface {
	ComponentName() string
}

// Injectable is the explicit constructor marker. An implementation type that
// declares its constructor implements this interface and returns the
// constructor function from InjectConstructor. The function's parameters are
// resolved from the container in declared order; it must return the
// implementation, optionally with an error:
//
//	func (*Spider) InjectConstructor() interface{} {
//		return func(nest *SpiderNest) *Spider { return &Spider{nest: nest} }
//	}
//
// Types without the marker are constructed automatically; see To.
type Injectable interface {
	InjectConstructor() interface{}
}

// unspecifiedComponent is the synthetic root of an injection context created
// by a Get call with no caller-supplied context.
type unspecifiedComponent struct{}

var unspecifiedType = reflect.TypeOf(unspecifiedComponent{})

// ComponentType identifies a bindable contract: a Go type with an optional
// display alias. Two ComponentTypes are the same identity when their types
// are equal; the alias is cosmetic.
type ComponentType struct {
	rtype reflect.Type
	alias string
}

// Type returns the ComponentType for T. T is the handle type under which
// components are requested: an interface type, or a pointer type for
// concrete components.
func Type[T any]() ComponentType {
	return ComponentType{rtype: reflect.TypeOf((*T)(nil)).Elem()}
}

func componentTypeOf(t reflect.Type, alias string) ComponentType {
	return ComponentType{rtype: t, alias: alias}
}

// Reflect returns the identity's underlying type.
func (t ComponentType) Reflect() reflect.Type { return t.rtype }

// Name returns the alias if one was given, else the reflected type name.
func (t ComponentType) Name() string {
	if t.alias != "" {
		return t.alias
	}
	return typename.Name(t.rtype)
}

// Specified reports whether the identity names a real component, as opposed
// to the synthetic root of a fresh injection context.
func (t ComponentType) Specified() bool {
	return t.rtype != nil && t.rtype != unspecifiedType
}

func (t ComponentType) String() string { return t.Name() }

// equal compares identities; the alias is ignored.
func (t ComponentType) equal(other ComponentType) bool {
	return t.rtype == other.rtype
}

// componentNameOf answers the display-name capability query for a type:
// the ComponentName of a zero value if the type implements Named, else "".
func componentNameOf(t reflect.Type) string {
	if t == nil {
		return ""
	}
	if n, ok := zeroValueOf(t).(Named); ok {
		return n.ComponentName()
	}
	return ""
}

// zeroValueOf builds a usable zero value of t. Pointer types yield a pointer
// to a fresh element so that pointer-receiver methods are callable.
func zeroValueOf(t reflect.Type) interface{} {
	if t.Kind() == reflect.Ptr {
		return reflect.New(t.Elem()).Interface()
	}
	if t.Kind() == reflect.Interface {
		return nil
	}
	return reflect.Zero(t).Interface()
}
