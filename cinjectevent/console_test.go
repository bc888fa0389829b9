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

package cinjectevent

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConsoleLogger(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		give Event
		want string
	}{
		{
			name: "Bound",
			give: &Bound{
				ImplementationName: "zoo.Cheetah",
				IdentityNames:      []string{"zoo.IRunner", "zoo.IWalker"},
				FactoryName:        "constructor",
			},
			want: "[Cinject] BIND\tzoo.IRunner, zoo.IWalker <= zoo.Cheetah (constructor)\n",
		},
		{
			name: "Resolved",
			give: &Resolved{
				TypeName:      "zoo.IRunner",
				RequesterName: "Unspecified",
			},
			want: "[Cinject] RESOLVE\tzoo.IRunner (requester: Unspecified)\n",
		},
		{
			name: "ResolveError",
			give: &ResolveError{
				TypeName: "zoo.IRunner",
				Err:      errors.New("some error"),
			},
			want: "[Cinject] ERROR\tFailed to resolve zoo.IRunner: some error\n",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			(&ConsoleLogger{W: &buf}).LogEvent(tt.give)
			assert.Equal(t, tt.want, buf.String())
		})
	}
}
