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

// Package tag provides parsing, normalization and validation for doom tags.
//
// A tag is the short, stable label a failure type reports from Tag(), such as
// "NotFound", "ReadFailed" or "io_timeout". Tags are meant to be:
//
//   - one word, without spaces or dashes;
//   - started with an ASCII letter;
//   - at most MaxLength characters long.
//
// Case is preserved: CamelCase tags stay CamelCase. ToReason converts a tag
// into the UPPER_SNAKE_CASE form expected by google.rpc.ErrorInfo.reason.
//
// IMPORTANT: Empty tags ("") are NOT allowed.
package tag
