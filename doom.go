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

// Doom is implemented by every failure type that can take part in a chain.
//
// Implementations are expected to be immutable values safe to share between
// goroutines: once pushed, a Doom may be read from any of them.
type Doom interface {
	// Tag is a short, stable label, conventionally unique per failure variant
	// (e.g. "NotFound").
	Tag() string

	// Description is a one-sentence explanation, static or computed.
	Description() Description
}

// OriginalKeeper is an optional extension of Doom. Types whose KeepOriginal
// returns true are retained in full when archived, so they can be recovered
// with OriginalAs or Find.
//
// The policy belongs to the type: KeepOriginal is only ever called on the
// zero value of the implementing type (a pointer to a zero value for
// pointer types) and must not depend on receiver state.
type OriginalKeeper interface {
	KeepOriginal() bool
}

// Keep can be embedded into a Doom type to retain its values on archive.
//
//	type Conflict struct {
//	    doomstack.Keep
//	    Version int
//	}
type Keep struct{}

// KeepOriginal implements OriginalKeeper.
func (Keep) KeepOriginal() bool { return true }

// IntoTop starts a fresh chain whose only, unarchived member is doom.
func IntoTop[D Doom](doom D) Top[D] {
	return Push(New(), doom)
}

// IntoStack starts a fresh chain and archives doom into it.
func IntoStack(doom Doom) Stack {
	return New().PushAsStack(doom)
}

// Fail returns the zero O together with doom as a new chain. It is meant for
// the failure branch of a return statement:
//
//	return doomstack.Fail[int](Overflow{})
func Fail[O any, D Doom](doom D) (O, Top[D]) {
	var zero O
	return zero, IntoTop(doom)
}

// FailAsStack is like Fail but archives doom first.
func FailAsStack[O any](doom Doom) (O, Stack) {
	var zero O
	return zero, IntoStack(doom)
}
