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

import "fmt"

// Entry is the archived, type-erased record of one failure.
//
// Tag and description are captured when the failure is archived and never
// change afterwards. The location can only be overwritten, and only through
// Stack.Spot on the most recent entry (or Spotted on a detached copy).
type Entry struct {
	tag         string
	description Description
	location    Location
	spotted     bool
	// original is non-nil iff the archived type keeps originals. Interface
	// values are shared by copies of the Entry, never duplicated.
	original any
}

// Archive captures doom's tag and description and, if its type keeps
// originals, doom itself.
func Archive(doom Doom) Entry {
	e := Entry{
		tag:         doom.Tag(),
		description: doom.Description(),
	}
	if keepOriginal(doom) {
		e.original = doom
	}
	return e
}

// Tag returns the tag captured on archive.
func (e Entry) Tag() string { return e.tag }

// Description returns the description captured on archive.
func (e Entry) Description() Description { return e.description }

// Location returns the place the entry was last spotted at, if any.
func (e Entry) Location() (Location, bool) { return e.location, e.spotted }

// Original returns the archived value, if its type keeps originals.
// Use OriginalAs to get it back with its concrete type.
func (e Entry) Original() (any, bool) { return e.original, e.original != nil }

// Spotted returns a copy of e with its location overwritten.
func (e Entry) Spotted(loc Location) Entry {
	e.location = loc
	e.spotted = true
	return e
}

// String renders the tag.
func (e Entry) String() string { return e.tag }

// GoString renders "[TAG @ file:line] description", or "[TAG] description"
// when the entry was never spotted.
func (e Entry) GoString() string {
	return debugLine(e.tag, e.description, e.location, e.spotted)
}

// OriginalAs returns the value archived in e as a T. It reports false when
// nothing was retained or the retained value is not a T.
func OriginalAs[T any](e Entry) (T, bool) {
	v, ok := e.original.(T)
	return v, ok
}

func debugLine(tag string, d Description, loc Location, spotted bool) string {
	if spotted {
		return fmt.Sprintf("[%s @ %s] %s", tag, loc, d)
	}
	return fmt.Sprintf("[%s] %s", tag, d)
}
