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
	"strconv"
)

// Description is the human explanation attached to a failure.
//
// It records whether the text is a compile-time literal (Static) or was
// computed when the failure happened (Owned). The text never changes after
// construction. The zero value is an empty static description.
type Description struct {
	text  string
	owned bool
}

// Static wraps a literal, process-lifetime message.
func Static(text string) Description {
	return Description{text: text}
}

// Owned wraps a message computed at failure time.
func Owned(text string) Description {
	return Description{text: text, owned: true}
}

// Describef formats an owned description.
func Describef(format string, args ...any) Description {
	return Owned(fmt.Sprintf(format, args...))
}

// String returns the text verbatim.
func (d Description) String() string { return d.text }

// GoString returns the quoted text.
func (d Description) GoString() string { return strconv.Quote(d.text) }

// IsStatic reports whether d was built from a literal.
func (d Description) IsStatic() bool { return !d.owned }
