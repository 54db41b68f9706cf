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

import (
	"strconv"
	"strings"

	"dirpx.dev/doomstack"
	"dirpx.dev/doomstack/apis"
	"dirpx.dev/doomstack/tag"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	spb "google.golang.org/genproto/googleapis/rpc/status"
	"google.golang.org/protobuf/types/known/anypb"
)

// unspecifiedReason stands in for tags that cannot be turned into a reason.
const unspecifiedReason = "UNSPECIFIED"

// ToStatus projects a chain into a google.rpc.Status carrying st.GRPC as
// its code. The message is the description of the most recent failure.
// A chain always describes a failure, so codes.OK is reported as
// codes.Unknown.
//
// A Top is archived first; only its tag, description and location travel.
func ToStatus(chain doomstack.Archiver, st apis.Status, opts ...Option) *spb.Status {
	o := newOptions(opts)
	s := chain.Archive()

	code := st.GRPC
	if code == codes.OK {
		code = codes.Unknown
	}
	out := &spb.Status{Code: int32(code), Message: s.Error()}
	if e, ok := s.Newest(); ok {
		out.Message = e.Description().String()
	}

	for e := range s.Entries() {
		// An entry that fails to marshal is skipped, not the whole status.
		if a, err := anypb.New(toErrorInfo(e, o.domain)); err == nil {
			out.Details = append(out.Details, a)
		}
	}

	if o.debug && !s.IsEmpty() {
		dbg := &errdetails.DebugInfo{
			StackEntries: strings.Split(doomstack.Debug(s), "\n"),
			Detail:       s.Error(),
		}
		if a, err := anypb.New(dbg); err == nil {
			out.Details = append(out.Details, a)
		}
	}
	return out
}

func toErrorInfo(e doomstack.Entry, domain string) *errdetails.ErrorInfo {
	reason := tag.ToReason(e.Tag())
	if reason == "" {
		reason = unspecifiedReason
	}
	md := map[string]string{
		MetaTag:         e.Tag(),
		MetaDescription: e.Description().String(),
	}
	if loc, ok := e.Location(); ok {
		md[MetaFile] = loc.File
		md[MetaLine] = strconv.FormatUint(uint64(loc.Line), 10)
	}
	return &errdetails.ErrorInfo{Reason: reason, Domain: domain, Metadata: md}
}

// FromStatus rebuilds the chain carried by st. Entries are restored in their
// original order with their tags, descriptions and locations; each is a
// Remote failure. Details of other types or other domains are ignored. A
// status without matching details yields an empty Stack.
func FromStatus(st *spb.Status, opts ...Option) doomstack.Stack {
	o := newOptions(opts)

	var infos []*errdetails.ErrorInfo // newest first, as written by ToStatus
	for _, d := range st.GetDetails() {
		info := &errdetails.ErrorInfo{}
		if !d.MessageIs(info) {
			continue
		}
		if err := d.UnmarshalTo(info); err != nil {
			continue
		}
		if info.GetDomain() != o.domain {
			continue
		}
		infos = append(infos, info)
	}

	s := doomstack.New()
	for i := len(infos) - 1; i >= 0; i-- {
		r := Remote{Info: infos[i]}
		s = s.PushAsStack(r)
		if loc, ok := r.Location(); ok {
			s = s.Spot(loc)
		}
	}
	return s
}
