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

package tag

import (
	"errors"
	"regexp"
	"strings"
	"unicode"
)

// MaxLength is the maximum length of a valid tag. 64 characters is enough
// for descriptive tags like "ConnectionPoolExhausted".
const MaxLength = 64

const (
	// tagFmt is the canonical regular expression used to validate tags.
	//
	//	^[A-Za-z]        first character must be an ASCII letter;
	//	[A-Za-z0-9_]{0,63} letters, digits or underscore, 1..64 in total;
	//
	// IMPORTANT: the {0,63} range is tied to MaxLength.
	tagFmt = `^[A-Za-z][A-Za-z0-9_]{0,63}$`
)

var tagRe = regexp.MustCompile(tagFmt)

var (
	// ErrTagInvalid is returned when a value cannot be parsed or validated
	// as a tag.
	ErrTagInvalid = errors.New("doomstack: invalid tag")
)

// Normalize brings s closer to the canonical tag form. It trims surrounding
// spaces and replaces inner spaces and '-' with '_'. Case is untouched.
//
// It does NOT guarantee that the result is valid.
func Normalize(s string) string {
	s = strings.TrimSpace(s)
	return strings.Map(func(r rune) rune {
		if r == '-' || unicode.IsSpace(r) {
			return '_'
		}
		return r
	}, s)
}

// Parse normalizes and validates s.
func Parse(s string) (string, error) {
	s = Normalize(s)
	if err := Validate(s); err != nil {
		return "", err
	}
	return s, nil
}

// MustParse is the panic-on-error variant of Parse.
func MustParse(s string) string {
	t, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return t
}

// Validate checks that t is already in canonical form.
func Validate(t string) error {
	if !tagRe.MatchString(t) {
		return ErrTagInvalid
	}
	return nil
}

// ToReason converts a tag into UPPER_SNAKE_CASE, splitting CamelCase words:
//
//	"NotFound"     -> "NOT_FOUND"
//	"HTTPTimeout"  -> "HTTP_TIMEOUT"
//	"read_failed"  -> "READ_FAILED"
//	"Retry2Later"  -> "RETRY2_LATER"
//
// The input is normalized first; an input that is not a valid tag yields "".
func ToReason(t string) string {
	t, err := Parse(t)
	if err != nil {
		return ""
	}
	var b strings.Builder
	b.Grow(len(t) + 4)
	for i := 0; i < len(t); i++ {
		c := t[i]
		if i > 0 && isUpper(c) && t[i-1] != '_' {
			prev := t[i-1]
			nextLower := i+1 < len(t) && isLower(t[i+1])
			if isLower(prev) || isDigit(prev) || (isUpper(prev) && nextLower) {
				b.WriteByte('_')
			}
		}
		if isLower(c) {
			c -= 'a' - 'A'
		}
		b.WriteByte(c)
	}
	return b.String()
}

func isUpper(c byte) bool { return c >= 'A' && c <= 'Z' }
func isLower(c byte) bool { return c >= 'a' && c <= 'z' }
func isDigit(c byte) bool { return c >= '0' && c <= '9' }
