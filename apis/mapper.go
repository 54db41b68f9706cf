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

package apis

import (
	"dirpx.dev/doomstack"
	"google.golang.org/grpc/codes"
)

// Mapper is an immutable, concurrency-safe view of tag -> status rules.
// It resolves a failure chain into transport statuses for HTTP and gRPC.
type Mapper interface {
	// HTTPStatus returns the HTTP status for the chain. Implementations walk
	// the chain newest first and fall back to a default when no tag matches.
	HTTPStatus(chain doomstack.Archiver) int

	// GRPCStatus returns the gRPC status code for the chain, with the same
	// matching logic as HTTPStatus.
	GRPCStatus(chain doomstack.Archiver) codes.Code

	// Status resolves both HTTP and gRPC in a single call.
	Status(chain doomstack.Archiver) Status

	// Explain returns a human-readable description of which rule matched.
	Explain(chain doomstack.Archiver) string
}

// Status represents a resolved pair of transport statuses for a single chain.
type Status struct {
	HTTP int        // Resolved HTTP status code (net/http compatible).
	GRPC codes.Code // Resolved gRPC status code.
}
