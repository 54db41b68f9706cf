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

// Package adapter converts failure chains to and from google.rpc.Status, the
// wire shape shared by the grpcx and httpx packages.
//
// Every entry of a chain becomes one google.rpc.ErrorInfo detail, newest
// first:
//
//	reason   = tag.ToReason(entry tag), e.g. "READ_FAILED"
//	domain   = WithDomain value, DefaultDomain otherwise
//	metadata = {"tag", "description"} plus {"file", "line"} when spotted
//
// A google.rpc.DebugInfo with the %+v rendering of the chain is appended
// only when WithDebugInfo is given. Retained originals never cross the wire:
// FromStatus rebuilds a chain of Remote failures that carry the ErrorInfo.
package adapter
