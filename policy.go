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
	"reflect"
	"sync"
)

// policies caches the keep-original decision per dynamic type.
var policies sync.Map // reflect.Type -> bool

// keepOriginal resolves the retention policy of doom's dynamic type.
func keepOriginal(doom Doom) bool {
	t := reflect.TypeOf(doom)
	if t == nil {
		return false
	}
	if v, ok := policies.Load(t); ok {
		return v.(bool)
	}
	keep := false
	if k, ok := zeroOf(t).(OriginalKeeper); ok {
		keep = k.KeepOriginal()
	}
	policies.Store(t, keep)
	return keep
}

// zeroOf returns the zero value of t boxed in an interface. Pointer types
// yield a pointer to a zero element, so methods promoted through embedded
// values (such as Keep) can be called without a nil dereference.
func zeroOf(t reflect.Type) any {
	if t.Kind() == reflect.Pointer {
		return reflect.New(t.Elem()).Interface()
	}
	return reflect.Zero(t).Interface()
}
