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

// Package mapper provides deterministic, immutable mappings from failure
// chains (dirpx.dev/doomstack) to transport-level statuses for HTTP and gRPC.
//
// # Overview
//
// A chain carries one tag per failure, newest first. Transport layers (HTTP
// handlers, gRPC servers) need a single status for the whole chain. Package
// mapper picks it in a way that is:
//
//   - immutable: a Mapper is a snapshot, safe for concurrent reuse;
//   - overridable: callers can replace library defaults per tag;
//   - chain-aware: the newest failure with a known tag decides;
//   - dual: HTTP and gRPC are resolved with the same logic.
//
// # Resolution model
//
// For HTTP and gRPC independently, a Mapper walks the chain newest first and,
// for each tag:
//
//  1. uses the caller's rule for that tag, if any;
//  2. otherwise uses the library default for that tag, if any.
//
// The first hit wins. If no tag in the chain has a rule or default, the global
// fallback applies (500 / codes.Internal). WithTopOnly restricts the walk to
// the most recent failure.
//
// Tags are normalized with tag.Normalize before lookup, so a rule for
// "not-found" matches a failure tagged "not_found".
//
// # Building a mapper
//
//	m, err := mapper.New(
//	    mapper.WithHTTP("QuotaExceeded", http.StatusTooManyRequests),
//	    mapper.WithGRPC("QuotaExceeded", codes.ResourceExhausted),
//	)
//	if err != nil {
//	    // invalid tag
//	}
//	st := m.Status(chain)
//
// # Diagnostics
//
// Mapper.Explain returns a human-readable trace of which entry and which
// tier produced each status. It is meant for logs and tests, not for machine
// parsing.
package mapper
