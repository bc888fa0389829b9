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

	"github.com/pkg/errors"

	"github.com/mjirous/cinject/internal/typename"
)

// maxConstructorArity caps how many parameters constructor deduction will
// resolve. Implementations needing more must declare their constructor via
// the Injectable marker.
const maxConstructorArity = 10

var errType = reflect.TypeOf((*error)(nil)).Elem()

// argKind classifies one constructor parameter or struct field.
type argKind int

const (
	// argSkip marks a parameter the engine must not inject; it is left at
	// its zero value. Covers uintptr, unsafe.Pointer, pointers to
	// non-structs and every non-handle kind (numbers, strings, maps,
	// funcs, chans).
	argSkip argKind = iota
	// argSingle is resolved with a single-instance lookup.
	argSingle
	// argCollection is resolved with a collection lookup.
	argCollection
)

// classify decides how a parameter of type t is injected. Interfaces and
// pointers to structs are shared handles; slices of either are collections.
// Pointers to anything else are not component handles and are skipped.
func classify(t reflect.Type) argKind {
	switch t.Kind() {
	case reflect.Interface:
		return argSingle
	case reflect.Ptr:
		if t.Elem().Kind() == reflect.Struct {
			return argSingle
		}
	case reflect.Slice:
		if classify(t.Elem()) == argSingle {
			return argCollection
		}
	}
	return argSkip
}

// argPlan is one deduced constructor argument.
type argPlan struct {
	typ  reflect.Type
	kind argKind
}

// resolve produces the argument value using the context's container.
func (p argPlan) resolve(ctx *InjectionContext) (reflect.Value, error) {
	switch p.kind {
	case argSingle:
		instance, err := ctx.container.get(componentTypeOf(p.typ, ""), ctx)
		if err != nil {
			return reflect.Value{}, err
		}
		if instance == nil {
			return reflect.Zero(p.typ), nil
		}
		return reflect.ValueOf(instance), nil
	case argCollection:
		instances, err := ctx.container.getAll(componentTypeOf(p.typ.Elem(), ""), ctx)
		if err != nil {
			return reflect.Value{}, err
		}
		collection := reflect.MakeSlice(p.typ, 0, len(instances))
		for _, instance := range instances {
			collection = reflect.Append(collection, reflect.ValueOf(instance))
		}
		return collection, nil
	default:
		return reflect.Zero(p.typ), nil
	}
}

// newConstructorFactory deduces the creation strategy for implType. Types
// carrying the Injectable marker use their declared constructor; all others
// are built automatically from their struct shape. Deduction failures are
// binding defects, reported at bind time.
func newConstructorFactory(implType reflect.Type) (factory, error) {
	if injectable, ok := zeroValueOf(implType).(Injectable); ok {
		return newMarkedConstructorFactory(implType, injectable.InjectConstructor())
	}
	return newAutoConstructorFactory(implType)
}

// markedConstructorFactory invokes a constructor declared through the
// Injectable marker, resolving its parameters positionally.
type markedConstructorFactory struct {
	implType reflect.Type
	ctor     reflect.Value
	ctorName string
	args     []argPlan
}

func newMarkedConstructorFactory(implType reflect.Type, ctor interface{}) (*markedConstructorFactory, error) {
	ctorValue := reflect.ValueOf(ctor)
	if !ctorValue.IsValid() || ctorValue.Kind() != reflect.Func {
		return nil, errors.Errorf(
			"InjectConstructor of %s must return a constructor function, got %T",
			typename.Name(implType), ctor)
	}

	ctorType := ctorValue.Type()
	if ctorType.NumIn() > maxConstructorArity {
		return nil, errors.Errorf(
			"constructor of %s declares %d parameters, at most %d are supported",
			typename.Name(implType), ctorType.NumIn(), maxConstructorArity)
	}
	switch ctorType.NumOut() {
	case 1:
	case 2:
		if !ctorType.Out(1).Implements(errType) {
			return nil, errors.Errorf(
				"second return value of the constructor of %s must be an error",
				typename.Name(implType))
		}
	default:
		return nil, errors.Errorf(
			"constructor of %s must return the instance, optionally with an error",
			typename.Name(implType))
	}
	if !ctorType.Out(0).AssignableTo(implType) {
		return nil, errors.Errorf(
			"constructor of %s returns incompatible type %s",
			typename.Name(implType), typename.Name(ctorType.Out(0)))
	}

	args := make([]argPlan, ctorType.NumIn())
	for i := range args {
		paramType := ctorType.In(i)
		kind := classify(paramType)
		if kind == argSkip {
			return nil, errors.Errorf(
				"parameter %d of the constructor of %s has non-injectable type %s",
				i, typename.Name(implType), paramType)
		}
		args[i] = argPlan{typ: paramType, kind: kind}
	}

	return &markedConstructorFactory{
		implType: implType,
		ctor:     ctorValue,
		ctorName: typename.FuncName(ctor),
		args:     args,
	}, nil
}

func (f *markedConstructorFactory) createInstance(ctx *InjectionContext) (interface{}, error) {
	args := make([]reflect.Value, len(f.args))
	for i, plan := range f.args {
		value, err := plan.resolve(ctx)
		if err != nil {
			return nil, errors.Wrapf(err, "could not resolve argument %d of %s",
				i, typename.Name(f.implType))
		}
		args[i] = value
	}

	out := f.ctor.Call(args)
	if len(out) == 2 && !out[1].IsNil() {
		return nil, out[1].Interface().(error)
	}
	return out[0].Interface(), nil
}

func (f *markedConstructorFactory) name() string { return "constructor " + f.ctorName }

// autoConstructorFactory builds a struct without a declared constructor. A
// struct's composite literal is its implicit positional constructor, so the
// parameter list is the field list in declared order: exported handle-typed
// fields are injected, everything else stays at its zero value.
type autoConstructorFactory struct {
	implType reflect.Type
	fields   []fieldPlan
}

type fieldPlan struct {
	index int
	plan  argPlan
}

func newAutoConstructorFactory(implType reflect.Type) (*autoConstructorFactory, error) {
	if implType.Kind() != reflect.Ptr || implType.Elem().Kind() != reflect.Struct {
		return nil, errors.Errorf(
			"could not deduce a constructor for %s: bind a pointer to a struct, "+
				"or use the Injectable marker, ToConstructor, ToFunction or ToConstant",
			typename.Name(implType))
	}

	structType := implType.Elem()
	var fields []fieldPlan
	for i := 0; i < structType.NumField(); i++ {
		field := structType.Field(i)
		if field.PkgPath != "" {
			// Unexported fields are not settable.
			continue
		}
		kind := classify(field.Type)
		if kind == argSkip {
			continue
		}
		fields = append(fields, fieldPlan{
			index: i,
			plan:  argPlan{typ: field.Type, kind: kind},
		})
	}
	if len(fields) > maxConstructorArity {
		return nil, errors.Errorf(
			"%s has %d injectable fields, at most %d are supported by automatic "+
				"deduction; declare a constructor with the Injectable marker",
			typename.Name(implType), len(fields), maxConstructorArity)
	}

	return &autoConstructorFactory{implType: implType, fields: fields}, nil
}

func (f *autoConstructorFactory) createInstance(ctx *InjectionContext) (interface{}, error) {
	instance := reflect.New(f.implType.Elem())
	for _, field := range f.fields {
		value, err := field.plan.resolve(ctx)
		if err != nil {
			return nil, errors.Wrapf(err, "could not resolve field %s of %s",
				f.implType.Elem().Field(field.index).Name, typename.Name(f.implType))
		}
		instance.Elem().Field(field.index).Set(value)
	}
	return instance.Interface(), nil
}

func (f *autoConstructorFactory) name() string { return "constructor" }
