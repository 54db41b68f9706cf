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

package adapter

// DefaultDomain is the ErrorInfo domain used when WithDomain is not given.
const DefaultDomain = "doomstack.dirpx.dev"

// Metadata keys written into each ErrorInfo.
const (
	MetaTag         = "tag"
	MetaDescription = "description"
	MetaFile        = "file"
	MetaLine        = "line"
)

// Option configures ToStatus and FromStatus.
type Option func(*options)

type options struct {
	domain string
	debug  bool
}

func newOptions(opts []Option) options {
	o := options{domain: DefaultDomain}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithDomain sets the ErrorInfo domain. FromStatus only reads ErrorInfo
// details of the same domain.
func WithDomain(domain string) Option {
	return func(o *options) { o.domain = domain }
}

// WithDebugInfo appends a DebugInfo detail with the %+v rendering of the
// chain. It carries source file paths, so only enable it for trusted
// clients.
func WithDebugInfo() Option {
	return func(o *options) { o.debug = true }
}
