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

	"dirpx.dev/doomstack"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
)

// Remote is a failure received over the wire. It is retained on archive, so
// doomstack.Find[Remote] gives access to the original ErrorInfo.
type Remote struct {
	doomstack.Keep
	Info *errdetails.ErrorInfo
}

var _ doomstack.Doom = Remote{}

// Tag returns the sender's tag, or the ErrorInfo reason when the sender did
// not record one.
func (r Remote) Tag() string {
	if t := r.Info.GetMetadata()[MetaTag]; t != "" {
		return t
	}
	return r.Info.GetReason()
}

// Description returns the sender's description.
func (r Remote) Description() doomstack.Description {
	return doomstack.Owned(r.Info.GetMetadata()[MetaDescription])
}

// Location returns the location recorded by the sender, if any.
func (r Remote) Location() (doomstack.Location, bool) {
	md := r.Info.GetMetadata()
	file, ok := md[MetaFile]
	if !ok {
		return doomstack.Location{}, false
	}
	line, err := strconv.ParseUint(md[MetaLine], 10, 32)
	if err != nil {
		return doomstack.Location{}, false
	}
	return doomstack.Location{File: file, Line: uint32(line)}, true
}
