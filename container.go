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

	"github.com/mjirous/cinject/cinjectevent"
)

// Container maps component identities to resolvers and resolves object
// graphs on demand. Containers form hierarchies: a child sees its own
// bindings and its ancestors', with local bindings taking priority. The
// parent is held as a non-owning reference and must outlive the child.
//
// All registry state is owned by the Container instance; there are no
// process-wide registries, so independent containers compose safely.
type Container struct {
	parent        *Container
	registrations map[reflect.Type][]*resolver
	log           cinjectevent.Logger
}

// Option configures a Container.
type Option interface {
	apply(*Container)
}

type optionFunc func(*Container)

func (f optionFunc) apply(c *Container) { f(c) }

// WithParent makes the new container a child of parent. The parent's
// bindings remain visible through the child; the child's own bindings take
// priority.
func WithParent(parent *Container) Option {
	return optionFunc(func(c *Container) {
		c.parent = parent
	})
}

// WithLogger sets the event logger. The default drops all events.
func WithLogger(log cinjectevent.Logger) Option {
	return optionFunc(func(c *Container) {
		if log != nil {
			c.log = log
		}
	})
}

// New creates an empty Container.
func New(opts ...Option) *Container {
	c := &Container{
		registrations: make(map[reflect.Type][]*resolver),
		log:           cinjectevent.NopLogger,
	}
	for _, opt := range opts {
		opt.apply(c)
	}
	return c
}

// Child creates a container nested under c. The child inherits c's logger
// unless an option overrides it.
func (c *Container) Child(opts ...Option) *Container {
	return New(append([]Option{WithParent(c), WithLogger(c.log)}, opts...)...)
}

// Bind starts a binding for the given identities. Nothing is registered
// until a creation strategy is attached with To, ToConstructor, ToFunction
// or ToConstant.
func (c *Container) Bind(identities ...ComponentType) *Binding {
	if len(identities) == 0 {
		panic(&BindingError{Reason: "Bind requires at least one component type"})
	}
	return &Binding{container: c, identities: identities}
}

// resolvers collects every resolver registered for rtype across the
// hierarchy: local entries first, then ancestors', in registration order.
func (c *Container) resolvers(rtype reflect.Type) []*resolver {
	var found []*resolver
	for cur := c; cur != nil; cur = cur.parent {
		found = append(found, cur.registrations[rtype]...)
	}
	return found
}

// get resolves exactly one instance of t. A nil ctx starts a root resolution
// with a synthetic "Unspecified" requester frame.
func (c *Container) get(t ComponentType, ctx *InjectionContext) (interface{}, error) {
	root := ctx == nil
	if root {
		ctx = newInjectionContext(c, componentTypeOf(unspecifiedType, "Unspecified"))
	}

	instance, err := c.getInContext(t, ctx)
	if root {
		c.logResolution(t, ctx, err)
	}
	return instance, err
}

func (c *Container) getInContext(t ComponentType, ctx *InjectionContext) (interface{}, error) {
	found := c.resolvers(t.rtype)
	if len(found) == 0 {
		return nil, &ComponentNotFoundError{Type: t}
	}
	return found[0].forwardInstance(ctx)
}

// getAll resolves every binding of t: local entries first, then ancestors'.
// Zero bindings yield an empty result, not a failure. A nil ctx starts a
// root resolution whose requester frame is the requested identity itself.
func (c *Container) getAll(t ComponentType, ctx *InjectionContext) ([]interface{}, error) {
	root := ctx == nil
	if root {
		ctx = newInjectionContext(c, t)
	}

	instances, err := c.getAllInContext(t, ctx)
	if root {
		c.logResolution(t, ctx, err)
	}
	return instances, err
}

func (c *Container) getAllInContext(t ComponentType, ctx *InjectionContext) ([]interface{}, error) {
	found := c.resolvers(t.rtype)
	instances := make([]interface{}, 0, len(found))
	for _, r := range found {
		instance, err := r.forwardInstance(ctx)
		if err != nil {
			return nil, err
		}
		instances = append(instances, instance)
	}
	return instances, nil
}

// logResolution emits one event per root resolution.
func (c *Container) logResolution(t ComponentType, ctx *InjectionContext, err error) {
	if err != nil {
		c.log.LogEvent(&cinjectevent.ResolveError{TypeName: t.Name(), Err: err})
		return
	}
	c.log.LogEvent(&cinjectevent.Resolved{
		TypeName:      t.Name(),
		RequesterName: ctx.stack[0].Name(),
	})
}
