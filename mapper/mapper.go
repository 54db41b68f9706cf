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
	"strings"

	"dirpx.dev/doomstack"
	"dirpx.dev/doomstack/apis"
	"dirpx.dev/doomstack/tag"
	"google.golang.org/grpc/codes"
)

// New constructs an immutable apis.Mapper snapshot.
//
// Build process overview:
//
//  1. Apply user-provided options to a fresh builder.
//  2. Validate and normalize every rule tag (via tag.Parse).
//  3. Freeze the rule tables into fresh maps.
//
// Errors returned from this function indicate invalid rule tags.
func New(opts ...Option) (apis.Mapper, error) {
	b := newBuilder()
	for _, opt := range opts {
		opt(b)
	}

	httpRules, err := freeze("HTTP", b.httpRules)
	if err != nil {
		return nil, err
	}
	grpcRules, err := freeze("gRPC", b.grpcRules)
	if err != nil {
		return nil, err
	}

	m := &mapper{
		httpRules:    httpRules,
		grpcRules:    grpcRules,
		topOnly:      b.topOnly,
		fallbackHTTP: b.fallbackHTTP,
		fallbackGRPC: b.fallbackGRPC,
	}
	if b.withDefaults {
		// The default tables are never written after init; sharing them is safe.
		m.httpDefaults = defaultHTTP
		m.grpcDefaults = defaultGRPC
	}
	return m, nil
}

// mapper is an immutable apis.Mapper. Lookups are O(chain depth) and safe
// for concurrent use once constructed.
type mapper struct {
	httpRules    map[string]int
	grpcRules    map[string]codes.Code
	httpDefaults map[string]int
	grpcDefaults map[string]codes.Code

	topOnly bool

	fallbackHTTP int
	fallbackGRPC codes.Code
}

// match records which entry of the chain produced a status.
type match[V any] struct {
	value  V
	source string // "rule", "default" or "fallback"
	tag    string
	depth  int
}

func resolve[V any](m *mapper, chain doomstack.Archiver, rules, defaults map[string]V, fallback V) match[V] {
	for depth, raw := range m.tags(chain) {
		t := tag.Normalize(raw)
		if v, src, ok := lookup(rules, defaults, t); ok {
			return match[V]{value: v, source: src, tag: t, depth: depth}
		}
	}
	return match[V]{value: fallback, source: "fallback", depth: -1}
}

func (m *mapper) tags(chain doomstack.Archiver) []string {
	tags := doomstack.Tags(chain)
	if m.topOnly && len(tags) > 1 {
		tags = tags[:1]
	}
	return tags
}

// HTTPStatus resolves an HTTP status for the chain.
//
// Resolution order, for each tag from newest to oldest:
//  1. caller rule for the tag;
//  2. library default for the tag;
//
// and finally the fallback (500 unless configured).
func (m *mapper) HTTPStatus(chain doomstack.Archiver) int {
	return resolve(m, chain, m.httpRules, m.httpDefaults, m.fallbackHTTP).value
}

// GRPCStatus resolves a gRPC status for the chain.
// Uses the same precedence as HTTPStatus.
func (m *mapper) GRPCStatus(chain doomstack.Archiver) codes.Code {
	return resolve(m, chain, m.grpcRules, m.grpcDefaults, m.fallbackGRPC).value
}

// Status resolves both HTTP and gRPC using the same chain.
func (m *mapper) Status(chain doomstack.Archiver) apis.Status {
	return apis.Status{
		HTTP: m.HTTPStatus(chain),
		GRPC: m.GRPCStatus(chain),
	}
}

// Explain produces a textual trace of how the mapper resolved HTTP and gRPC
// statuses for a chain.
//
// Example output:
//
//	chain=["ReadFailed" "NotFound"]
//	http: source=default tag="NotFound" depth=1 -> 404
//	grpc: source=rule tag="ReadFailed" depth=0 -> UNAVAILABLE(14)
//
// source ∈ {rule | default | fallback}; depth 0 is the most recent failure.
func (m *mapper) Explain(chain doomstack.Archiver) string {
	var b strings.Builder
	_, _ = fmt.Fprintf(&b, "chain=%q\n", doomstack.Tags(chain))

	h := resolve(m, chain, m.httpRules, m.httpDefaults, m.fallbackHTTP)
	_, _ = fmt.Fprintln(&b, explainLine("http", h, fmt.Sprint(h.value)))

	g := resolve(m, chain, m.grpcRules, m.grpcDefaults, m.fallbackGRPC)
	_, _ = fmt.Fprintln(&b, explainLine("grpc", g, fmt.Sprintf("%s(%d)", strings.ToUpper(g.value.String()), int(g.value))))

	return strings.TrimSuffix(b.String(), "\n")
}

func explainLine[V any](transport string, mt match[V], value string) string {
	if mt.source == "fallback" {
		return fmt.Sprintf("%s: source=fallback -> %s", transport, value)
	}
	return fmt.Sprintf("%s: source=%s tag=%q depth=%d -> %s", transport, mt.source, mt.tag, mt.depth, value)
}
