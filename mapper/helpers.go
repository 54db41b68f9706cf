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

package mapper

import (
	"fmt"

	"dirpx.dev/doomstack/tag"
)

// freeze validates and normalizes the tags of src into a fresh map, so later
// changes to the builder (or caller-owned data) cannot affect the mapper.
func freeze[V any](kind string, src map[string]V) (map[string]V, error) {
	if len(src) == 0 {
		return nil, nil
	}
	dst := make(map[string]V, len(src))
	for raw, v := range src {
		t, err := tag.Parse(raw)
		if err != nil {
			return nil, fmt.Errorf("mapper: invalid %s rule tag %q: %w", kind, raw, err)
		}
		dst[t] = v
	}
	return dst, nil
}

// lookup resolves a single tag through the caller rule, then the default.
// ok is false when neither knows the tag.
func lookup[V any](rules, defaults map[string]V, t string) (v V, source string, ok bool) {
	if v, ok := rules[t]; ok {
		return v, "rule", true
	}
	if v, ok := defaults[t]; ok {
		return v, "default", true
	}
	return v, "", false
}
