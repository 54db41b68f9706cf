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
	"net/http"

	"google.golang.org/grpc/codes"
)

type builder struct {
	// httpRules and grpcRules hold caller-provided rules keyed by raw tag.
	// Tags are validated and normalized in New().
	httpRules map[string]int
	grpcRules map[string]codes.Code

	// withDefaults controls whether the library tables are consulted.
	withDefaults bool

	// topOnly limits resolution to the most recent failure.
	topOnly bool

	// global fallbacks used when no tag in the chain is known.
	fallbackHTTP int
	fallbackGRPC codes.Code
}

func newBuilder() *builder {
	return &builder{
		httpRules:    make(map[string]int),
		grpcRules:    make(map[string]codes.Code),
		withDefaults: true,
		fallbackHTTP: http.StatusInternalServerError,
		fallbackGRPC: codes.Internal,
	}
}
