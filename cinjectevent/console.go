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
	"fmt"
	"io"
	"strings"
)

// ConsoleLogger is a cinject event logger that writes human-readable messages
// to the console.
//
// Use this during development.
type ConsoleLogger struct {
	W io.Writer
}

var _ Logger = (*ConsoleLogger)(nil)

func (l *ConsoleLogger) logf(msg string, args ...interface{}) {
	fmt.Fprintf(l.W, "[Cinject] "+msg+"\n", args...)
}

// LogEvent logs the given event to the console.
func (l *ConsoleLogger) LogEvent(event Event) {
	switch e := event.(type) {
	case *Bound:
		l.logf("BIND\t%v <= %v (%v)", strings.Join(e.IdentityNames, ", "), e.ImplementationName, e.FactoryName)
	case *Resolved:
		l.logf("RESOLVE\t%v (requester: %v)", e.TypeName, e.RequesterName)
	case *ResolveError:
		l.logf("ERROR\tFailed to resolve %v: %v", e.TypeName, e.Err)
	}
}
