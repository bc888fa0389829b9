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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mjirous/cinject"
)

// requireBindingPanic runs fn expecting it to panic with a BindingError and
// returns the error for inspection.
func requireBindingPanic(t *testing.T, fn func()) *cinject.BindingError {
	t.Helper()

	var bindErr *cinject.BindingError
	func() {
		defer func() {
			r := recover()
			require.NotNil(t, r, "expected a binding panic")
			err, ok := r.(error)
			require.True(t, ok, "binding panics carry an error, got %T", r)
			require.ErrorAs(t, err, &bindErr)
		}()
		fn()
	}()
	return bindErr
}

func TestBindRequiresIdentities(t *testing.T) {
	t.Parallel()

	c := cinject.New()
	bindErr := requireBindingPanic(t, func() { c.Bind() })
	assert.Contains(t, bindErr.Error(), "at least one component type")
}

func TestBindRejectsIncompatibleImplementation(t *testing.T) {
	t.Parallel()

	c := cinject.New()
	bindErr := requireBindingPanic(t, func() {
		// A Cheetah does not spin webs.
		cinject.BindTo[INest, *Cheetah](c)
	})
	assert.Contains(t, bindErr.Error(), "incompatible binding")
	assert.Contains(t, bindErr.Error(), "no conversion exists")
}

func TestBindRejectsPartiallyIncompatibleIdentities(t *testing.T) {
	t.Parallel()

	c := cinject.New()
	bindErr := requireBindingPanic(t, func() {
		cinject.To[*Cheetah](c.Bind(
			cinject.Type[IRunner](),
			cinject.Type[INest](),
		))
	})
	assert.Contains(t, bindErr.Error(), "no conversion exists")

	// The failed binding must leave no resolvers behind.
	_, err := cinject.Get[IRunner](c)
	var notFound *cinject.ComponentNotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func TestBindRejectsUndecidableConstructor(t *testing.T) {
	t.Parallel()

	c := cinject.New()
	bindErr := requireBindingPanic(t, func() {
		// Interfaces have no struct shape to deduce a constructor from.
		cinject.To[IRunner](c.Bind(cinject.Type[IRunner]()))
	})
	assert.Contains(t, bindErr.Error(), "could not deduce constructor")
}

func TestBindConstantToIncompatibleIdentity(t *testing.T) {
	t.Parallel()

	c := cinject.New()
	requireBindingPanic(t, func() {
		cinject.ToConstant[*Cheetah](c.Bind(cinject.Type[INest]()), &Cheetah{})
	})
}

func TestRebindShadowsInOrder(t *testing.T) {
	t.Parallel()

	first := &Cheetah{}
	second := &Cheetah{}

	c := cinject.New()
	cinject.BindToConstant[IRunner](c, first)
	cinject.BindToConstant[IRunner](c, second)

	runner, err := cinject.Get[IRunner](c)
	require.NoError(t, err)
	assert.Same(t, first, runner, "the first binding wins single resolution")

	runners, err := cinject.GetAll[IRunner](c)
	require.NoError(t, err)
	require.Len(t, runners, 2, "both bindings participate in collections")
	assert.Same(t, first, runners[0])
	assert.Same(t, second, runners[1])
}
