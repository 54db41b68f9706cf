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
	"iter"
)

// Top is a chain whose most recent failure is still a live D.
//
// Doom gives typed access to that failure; Base holds everything beneath it,
// already archived. The live value is archived only by Archive (or by any
// operation that pushes onto the Top), and that conversion is one-way.
type Top[D Doom] struct {
	doom     D
	location Location
	spotted  bool
	base     Stack
}

var _ Archiver = Top[Doom]{}

func newTop[D Doom](doom D, base Stack) Top[D] {
	return Top[D]{doom: doom, base: base}
}

// Doom returns the most recent, unarchived failure.
func (t Top[D]) Doom() D { return t.doom }

// Base returns the archived chain beneath the live failure.
func (t Top[D]) Base() Stack { return t.base }

// Location returns the pending location of the live failure, if spotted.
func (t Top[D]) Location() (Location, bool) { return t.location, t.spotted }

// Spot sets the pending location of the live failure. It becomes the
// location of its Entry once the failure is archived.
func (t Top[D]) Spot(loc Location) Top[D] {
	t.location = loc
	t.spotted = true
	return t
}

// Archive archives the live failure, with its pending location, on top of
// Base. Typed access to it is lost; only a retained original (see
// OriginalKeeper) survives.
func (t Top[D]) Archive() Stack {
	e := Archive(t.doom)
	if t.spotted {
		e = e.Spotted(t.location)
	}
	return t.base.push(e)
}

// PushAsStack archives the live failure, then archives doom on top of it.
func (t Top[D]) PushAsStack(doom Doom) Stack {
	return t.Archive().PushAsStack(doom)
}

// Error renders "<top: TAG>" for the live failure.
func (t Top[D]) Error() string {
	return "<top: " + t.doom.Tag() + ">"
}

func (t Top[D]) debug() string {
	line := debugLine(t.doom.Tag(), t.doom.Description(), t.location, t.spotted)
	if t.base.IsEmpty() {
		return line
	}
	return line + "\n" + t.base.debug()
}

func (t Top[D]) tags() iter.Seq[string] {
	return func(yield func(string) bool) {
		if !yield(t.doom.Tag()) {
			return
		}
		for tag := range t.base.tags() {
			if !yield(tag) {
				return
			}
		}
	}
}

// originals yields the live failure first: it has not been dropped yet.
func (t Top[D]) originals() iter.Seq[any] {
	return func(yield func(any) bool) {
		if !yield(t.doom) {
			return
		}
		for v := range t.base.originals() {
			if !yield(v) {
				return
			}
		}
	}
}
