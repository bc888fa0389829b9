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

package cinject_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mjirous/cinject"
)

type IRunner interface{ Run() string }

type IWalker interface{ Walk() string }

type IJumper interface{ Jump() string }

type Cheetah struct{ _ byte }

func (*Cheetah) Run() string  { return "fast" }
func (*Cheetah) Walk() string { return "slow" }
func (*Cheetah) Jump() string { return "high" }

func NewCheetah() *Cheetah { return &Cheetah{} }

func TestSimpleResolve(t *testing.T) {
	t.Parallel()

	c := cinject.New()
	cinject.BindTo[IRunner, *Cheetah](c)

	first, err := cinject.Get[IRunner](c)
	require.NoError(t, err)
	second, err := cinject.Get[IRunner](c)
	require.NoError(t, err)

	assert.Equal(t, "fast", first.Run())
	assert.NotSame(t, first, second, "transient bindings must create fresh instances")
}

func TestSimpleResolveSingleton(t *testing.T) {
	t.Parallel()

	c := cinject.New()
	cinject.BindTo[IRunner, *Cheetah](c).InSingletonScope()

	first, err := cinject.Get[IRunner](c)
	require.NoError(t, err)
	second, err := cinject.Get[IRunner](c)
	require.NoError(t, err)

	assert.Same(t, first, second)
}

func TestResolveToSelf(t *testing.T) {
	t.Parallel()

	c := cinject.New()
	cinject.BindToSelf[*Cheetah](c)

	first := cinject.MustGet[*Cheetah](c)
	second := cinject.MustGet[*Cheetah](c)

	assert.NotSame(t, first, second)
}

func TestResolveToSelfSingleton(t *testing.T) {
	t.Parallel()

	c := cinject.New()
	cinject.BindToSelf[*Cheetah](c).InSingletonScope()

	assert.Same(t, cinject.MustGet[*Cheetah](c), cinject.MustGet[*Cheetah](c))
}

func TestResolveToFunction(t *testing.T) {
	t.Parallel()

	calls := 0
	c := cinject.New()
	cinject.BindToFunction[IRunner](c, func(*cinject.InjectionContext) (IRunner, error) {
		calls++
		return &Cheetah{}, nil
	})

	first := cinject.MustGet[IRunner](c)
	second := cinject.MustGet[IRunner](c)

	assert.NotSame(t, first, second)
	assert.Equal(t, 2, calls)
}

func TestResolveToFunctionSingleton(t *testing.T) {
	t.Parallel()

	calls := 0
	c := cinject.New()
	cinject.BindToFunction[IRunner](c, func(*cinject.InjectionContext) (IRunner, error) {
		calls++
		return &Cheetah{}, nil
	}).InSingletonScope()

	first := cinject.MustGet[IRunner](c)
	second := cinject.MustGet[IRunner](c)

	assert.Same(t, first, second)
	assert.Equal(t, 1, calls)
}

func TestResolveToFunctionError(t *testing.T) {
	t.Parallel()

	boom := errors.New("no cheetah today")
	c := cinject.New()
	cinject.BindToFunction[IRunner](c, func(*cinject.InjectionContext) (IRunner, error) {
		return nil, boom
	})

	_, err := cinject.Get[IRunner](c)
	require.ErrorIs(t, err, boom)
}

func TestResolveToConstant(t *testing.T) {
	t.Parallel()

	cheetah := &Cheetah{}
	c := cinject.New()
	cinject.BindToConstant[IRunner](c, cheetah)

	first := cinject.MustGet[IRunner](c)
	second := cinject.MustGet[IRunner](c)

	assert.Same(t, cheetah, first)
	assert.Same(t, first, second)
}

func TestMultipleInterfaces(t *testing.T) {
	t.Parallel()

	c := cinject.New()
	b := c.Bind(cinject.Type[IRunner](), cinject.Type[IWalker](), cinject.Type[IJumper]())
	cinject.To[*Cheetah](b)

	runner := cinject.MustGet[IRunner](c)
	walker := cinject.MustGet[IWalker](c)

	assert.Equal(t, "fast", runner.Run())
	assert.Equal(t, "slow", walker.Walk())
	assert.NotSame(t, runner, walker)
}

func TestMultipleInterfacesSingleton(t *testing.T) {
	t.Parallel()

	c := cinject.New()
	b := c.Bind(cinject.Type[IRunner](), cinject.Type[IWalker](), cinject.Type[IJumper]())
	cinject.To[*Cheetah](b).InSingletonScope()

	runner := cinject.MustGet[IRunner](c)
	walker := cinject.MustGet[IWalker](c)
	jumper := cinject.MustGet[IJumper](c)

	assert.Same(t, runner, walker, "identities sharing one storage must share the singleton")
	assert.Same(t, walker, jumper)
}

type INest interface{ NestName() string }

type SpiderNest struct{}

func (*SpiderNest) NestName() string { return "spider nest" }

type Spider struct {
	Nest INest
}

func TestNestedDependencies(t *testing.T) {
	t.Parallel()

	c := cinject.New()
	cinject.BindTo[INest, *SpiderNest](c)
	cinject.BindToSelf[*Spider](c)

	spider := cinject.MustGet[*Spider](c)

	require.NotNil(t, spider.Nest)
	assert.Equal(t, "spider nest", spider.Nest.NestName())
}

func TestComponentNotFound(t *testing.T) {
	t.Parallel()

	c := cinject.New()

	_, err := cinject.Get[IRunner](c)
	require.Error(t, err)

	var notFound *cinject.ComponentNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "cinject_test.IRunner", notFound.Type.Name())
}

func TestNestedComponentNotFound(t *testing.T) {
	t.Parallel()

	c := cinject.New()
	cinject.BindToSelf[*Spider](c)

	_, err := cinject.Get[*Spider](c)
	require.Error(t, err)

	var notFound *cinject.ComponentNotFoundError
	require.ErrorAs(t, err, &notFound, "the nested failure must surface at the root get")
}

func TestHierarchy(t *testing.T) {
	t.Parallel()

	type City struct{}
	type Building struct{}

	parent := cinject.New()
	cinject.BindToSelf[*City](parent).InSingletonScope()

	child := parent.Child()
	cinject.BindToSelf[*Building](child).InSingletonScope()

	building := cinject.MustGet[*Building](child)
	require.NotNil(t, building)

	city := cinject.MustGet[*City](child)
	city2 := cinject.MustGet[*City](parent)
	assert.Same(t, city, city2, "the child must resolve the parent's singleton storage")

	_, err := cinject.Get[*Building](parent)
	var notFound *cinject.ComponentNotFoundError
	require.ErrorAs(t, err, &notFound, "a parent must not see bindings of its children")
}

func TestResolveWithExplicitContext(t *testing.T) {
	t.Parallel()

	c := cinject.New()
	cinject.BindTo[INest, *SpiderNest](c)
	cinject.BindToFunction[*Spider](c, func(ctx *cinject.InjectionContext) (*Spider, error) {
		nest, err := cinject.Get[INest](ctx.Container(), ctx)
		if err != nil {
			return nil, err
		}
		return &Spider{Nest: nest}, nil
	})

	spider := cinject.MustGet[*Spider](c)
	require.NotNil(t, spider.Nest)
}
