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
	"runtime"
	"strconv"
)

// Location is a source coordinate at which a chain was spotted.
// Two locations are equal iff both fields match.
type Location struct {
	File string
	Line uint32
}

// String renders the location as "file:line".
func (l Location) String() string {
	return l.File + ":" + strconv.FormatUint(uint64(l.Line), 10)
}

// Here returns the location of its caller.
func Here() Location {
	return HereSkip(1)
}

// HereSkip returns the location skip frames above its caller. HereSkip(0)
// is equivalent to Here. Helpers that wrap Here should pass 1.
func HereSkip(skip int) Location {
	_, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return Location{File: "???"}
	}
	return Location{File: file, Line: uint32(line)}
}
