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
	"go.uber.org/multierr"

	"github.com/mjirous/cinject/cinjectevent"
	"github.com/mjirous/cinject/internal/typename"
)

// Binding collects the identities declared by Container.Bind. Attaching a
// creation strategy (To, ToConstructor, ToFunction, ToConstant) creates one
// shared instance storage and registers one resolver per identity.
//
// Go methods cannot carry type parameters, so the strategies are top-level
// generic functions taking the Binding.
type Binding struct {
	container  *Container
	identities []ComponentType
}

// StorageConfiguration tunes the storage created by a binding strategy.
type StorageConfiguration struct {
	storage *instanceStorage
}

// InSingletonScope caches the first created instance for the lifetime of the
// owning container and returns it on every later resolution.
func (s *StorageConfiguration) InSingletonScope() *StorageConfiguration {
	s.storage.singleton = true
	return s
}

// Alias sets the diagnostic name of the component, visible in error messages
// and requester lookups. The Bound event has already been emitted by the time
// Alias runs and keeps the registration-time name.
func (s *StorageConfiguration) Alias(name string) *StorageConfiguration {
	s.storage.name = name
	return s
}

// To binds every declared identity to the implementation TImpl, constructed
// by constructor deduction: a declared constructor if TImpl implements the
// Injectable marker, otherwise automatic field injection over TImpl's struct
// shape. An undeducible constructor or an identity TImpl cannot satisfy is a
// binding defect and panics with a BindingError.
func To[TImpl any](b *Binding) *StorageConfiguration {
	implType := reflect.TypeOf((*TImpl)(nil)).Elem()
	f, err := newConstructorFactory(implType)
	if err != nil {
		panic(&BindingError{Reason: "could not deduce constructor", Err: err})
	}
	return b.register(implType, f)
}

// ToConstructor binds every declared identity to TImpl created by the given
// constructor function, for implementations that do not carry the Injectable
// marker. The function's parameters are resolved positionally; it must
// return TImpl, optionally with an error.
func ToConstructor[TImpl any](b *Binding, ctor interface{}) *StorageConfiguration {
	implType := reflect.TypeOf((*TImpl)(nil)).Elem()
	f, err := newMarkedConstructorFactory(implType, ctor)
	if err != nil {
		panic(&BindingError{Reason: "invalid constructor", Err: err})
	}
	return b.register(implType, f)
}

// ToFunction binds every declared identity to instances produced by fn,
// for construction that needs custom logic such as reading the requester.
func ToFunction[TImpl any](b *Binding, fn FactoryFunc[TImpl]) *StorageConfiguration {
	implType := reflect.TypeOf((*TImpl)(nil)).Elem()
	f := &functionFactory{
		fn: func(ctx *InjectionContext) (interface{}, error) {
			instance, err := fn(ctx)
			if err != nil {
				return nil, err
			}
			return instance, nil
		},
	}
	return b.register(implType, f)
}

// ToConstant binds every declared identity to the pre-built instance. A
// constant's identity and lifetime are fixed at bind time, so no further
// configuration is returned.
func ToConstant[TImpl any](b *Binding, instance TImpl) {
	implType := reflect.TypeOf((*TImpl)(nil)).Elem()
	b.register(implType, &constantFactory{instance: instance})
}

// BindTo is shorthand for a single-identity constructor binding:
// To[TImpl](c.Bind(Type[TComponent]())).
func BindTo[TComponent, TImpl any](c *Container) *StorageConfiguration {
	return To[TImpl](c.Bind(Type[TComponent]()))
}

// BindToSelf binds a component type to itself. Self-binding only exists in
// the single-identity form, which this signature enforces.
func BindToSelf[TComponent any](c *Container) *StorageConfiguration {
	return To[TComponent](c.Bind(Type[TComponent]()))
}

// BindToFunction is shorthand for a single-identity function binding.
func BindToFunction[TComponent any](c *Container, fn FactoryFunc[TComponent]) *StorageConfiguration {
	return ToFunction[TComponent](c.Bind(Type[TComponent]()), fn)
}

// BindToConstant is shorthand for a single-identity constant binding.
func BindToConstant[TComponent any](c *Container, instance TComponent) {
	ToConstant[TComponent](c.Bind(Type[TComponent]()), instance)
}

// register verifies the implementation against every declared identity,
// then registers one resolver per identity, all sharing one storage.
func (b *Binding) register(implType reflect.Type, f factory) *StorageConfiguration {
	var rejections error
	for _, identity := range b.identities {
		if !implementationSatisfies(implType, identity.rtype) {
			rejections = multierr.Append(rejections, errors.Errorf(
				"no conversion exists from %s to %s",
				typename.Name(implType), identity.Name()))
		}
	}
	if rejections != nil {
		panic(&BindingError{Reason: "incompatible binding", Err: rejections})
	}

	storage := newInstanceStorage(implType, f)
	for _, identity := range b.identities {
		b.container.registrations[identity.rtype] = append(
			b.container.registrations[identity.rtype],
			&resolver{identity: identity, implType: implType, storage: storage},
		)
	}

	b.container.log.LogEvent(&cinjectevent.Bound{
		ImplementationName: storage.componentType().Name(),
		IdentityNames:      identityNames(b.identities),
		FactoryName:        f.name(),
	})

	return &StorageConfiguration{storage: storage}
}

// implementationSatisfies reports whether a stored impl handle can serve as
// a handle of the identity type.
func implementationSatisfies(impl, identity reflect.Type) bool {
	if impl == identity {
		return true
	}
	if identity.Kind() == reflect.Interface {
		return impl.Implements(identity)
	}
	return impl.AssignableTo(identity)
}

func identityNames(identities []ComponentType) []string {
	names := make([]string, len(identities))
	for i, identity := range identities {
		names[i] = identity.Name()
	}
	return names
}
