/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package doomstack

import (
	"fmt"
	"io"
	"iter"
	"log/slog"
	"slices"
	"strings"
)

// chain is the read side shared by Stack and Top.
type chain interface {
	Archiver
	error
	debug() string
	tags() iter.Seq[string]
	originals() iter.Seq[any]
}

var (
	_ chain = Stack{}
	_ chain = Top[Doom]{}

	_ fmt.Formatter  = Stack{}
	_ fmt.Formatter  = Top[Doom]{}
	_ slog.LogValuer = Stack{}
	_ slog.LogValuer = Top[Doom]{}
)

// Format implements fmt.Formatter.
//
//	%s, %v   "<top: TAG>"
//	%q       quoted "<top: TAG>"
//	%+v, %#v one "[TAG @ file:line] description" line per entry, newest first
func (s Stack) Format(f fmt.State, verb rune) { format(f, verb, s) }

// Format implements fmt.Formatter, with the same verbs as Stack.Format. The
// live failure is rendered first, with its pending location.
func (t Top[D]) Format(f fmt.State, verb rune) { format(f, verb, t) }

func format(f fmt.State, verb rune, c chain) {
	switch verb {
	case 'v':
		if f.Flag('+') || f.Flag('#') {
			_, _ = io.WriteString(f, c.debug())
			return
		}
		_, _ = io.WriteString(f, c.Error())
	case 's':
		_, _ = io.WriteString(f, c.Error())
	case 'q':
		_, _ = fmt.Fprintf(f, "%q", c.Error())
	default:
		_, _ = fmt.Fprintf(f, "%%!%c(%T=%s)", verb, c, c.Error())
	}
}

// Unwrap returns the retained originals that are errors, newest first, so
// errors.Is and errors.As can match them.
func (s Stack) Unwrap() []error { return unwrap(s) }

// Unwrap returns the live failure, if it is an error, followed by the
// retained originals of Base that are errors.
func (t Top[D]) Unwrap() []error { return unwrap(t) }

func unwrap(c chain) []error {
	var errs []error
	for v := range c.originals() {
		if err, ok := v.(error); ok {
			errs = append(errs, err)
		}
	}
	return errs
}

// LogValue implements slog.LogValuer.
func (s Stack) LogValue() slog.Value { return logValue(s) }

// LogValue implements slog.LogValuer.
func (t Top[D]) LogValue() slog.Value { return logValue(t) }

func logValue(c chain) slog.Value {
	tags := slices.Collect(c.tags())
	if len(tags) == 0 {
		return slog.GroupValue()
	}
	return slog.GroupValue(
		slog.String("top", tags[0]),
		slog.Any("chain", strings.Split(c.debug(), "\n")),
	)
}

// Tags returns the tags of a chain, most recent first.
func Tags(a Archiver) []string {
	if c, ok := a.(chain); ok {
		return slices.Collect(c.tags())
	}
	return slices.Collect(a.Archive().tags())
}

// Find returns the most recent failure in the chain that is a T: the live
// failure of a Top or a retained original.
func Find[T any](a Archiver) (T, bool) {
	var seq iter.Seq[any]
	if c, ok := a.(chain); ok {
		seq = c.originals()
	} else {
		seq = a.Archive().originals()
	}
	for v := range seq {
		if t, ok := v.(T); ok {
			return t, true
		}
	}
	var zero T
	return zero, false
}

// Debug returns the multi-line rendering of a chain, as printed by %+v.
func Debug(a Archiver) string {
	if c, ok := a.(chain); ok {
		return c.debug()
	}
	return a.Archive().debug()
}
