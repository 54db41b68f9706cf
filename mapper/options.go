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

import "google.golang.org/grpc/codes"

// Option configures the Mapper at build time.
// All options are applied to an internal builder and then frozen into
// an immutable Mapper.
type Option func(*builder)

// WithHTTP maps a tag to an HTTP status. It takes precedence over the
// library default for the same tag.
func WithHTTP(tag string, status int) Option {
	return func(b *builder) { b.httpRules[tag] = status }
}

// WithGRPC maps a tag to a gRPC status code. It takes precedence over the
// library default for the same tag.
func WithGRPC(tag string, c codes.Code) Option {
	return func(b *builder) { b.grpcRules[tag] = c }
}

// WithFallbackHTTP replaces the HTTP status used when no tag matches.
func WithFallbackHTTP(status int) Option {
	return func(b *builder) { b.fallbackHTTP = status }
}

// WithFallbackGRPC replaces the gRPC code used when no tag matches.
func WithFallbackGRPC(c codes.Code) Option {
	return func(b *builder) { b.fallbackGRPC = c }
}

// WithoutDefaults ignores the library's built-in tag tables.
func WithoutDefaults() Option {
	return func(b *builder) { b.withDefaults = false }
}

// WithTopOnly resolves statuses from the most recent failure only,
// ignoring older entries of the chain.
func WithTopOnly() Option {
	return func(b *builder) { b.topOnly = true }
}
