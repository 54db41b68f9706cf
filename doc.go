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

// Package doomstack accumulates causal chains of failures.
//
// A failure type becomes chain-able by implementing Doom: a short, stable
// Tag and a one-sentence Description. Chains come in two shapes:
//
//   - Top[D]: the most recent failure, still typed as D, plus the archived
//     Stack of everything beneath it. Pushing onto a chain produces a Top and
//     never allocates an Entry.
//   - Stack: a chain whose every member has been archived into an Entry.
//     Stacks are non-generic, so they can be stored, returned as error or
//     handed to another goroutine.
//
// Archiving a value keeps its tag and description. The value itself is kept
// only when its type opts in through OriginalKeeper (embed Keep to do so);
// OriginalAs and Find recover it later with a checked type assertion.
//
// Typical use:
//
//	func load(path string) (Config, error) {
//	    raw, err := os.ReadFile(path)
//	    if err != nil {
//	        return doomstack.Fail[Config](ReadFailed{Path: path, Err: err})
//	    }
//	    cfg, top, ok := parse(raw) // top is a doomstack.Top[SyntaxError]
//	    if !ok {
//	        // archives the SyntaxError and puts LoadFailed on top
//	        return Config{}, doomstack.Pot(top, LoadFailed{Path: path}, doomstack.Here())
//	    }
//	    return cfg, nil
//	}
//
// Every operation returns a new value. Stack, Top and Entry are immutable
// once built, so clones can be shared across goroutines without locking.
package doomstack
