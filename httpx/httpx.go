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

// Package httpx writes failure chains as HTTP error responses.
package httpx

import (
	"errors"
	"net/http"

	"dirpx.dev/doomstack"
	"dirpx.dev/doomstack/adapter"
	"dirpx.dev/doomstack/apis"
	spb "google.golang.org/genproto/googleapis/rpc/status"
	"google.golang.org/grpc/codes"
	"google.golang.org/protobuf/encoding/protojson"
)

// ContentType is the media type of every body written by Writer.
const ContentType = "application/json"

// Writer is a thin adapter that turns an error into an HTTP response using
// the provided status mapper.
type Writer struct {
	Mapper apis.Mapper

	// Options are passed to adapter.ToStatus.
	Options []adapter.Option
}

// Write resolves the HTTP status of err via the Mapper and writes a
// google.rpc.Status JSON body (see package adapter for its details).
//
// Errors that carry no chain are written as a bare 500 whose message is the
// standard status text; their own text is not exposed. A nil err writes
// nothing.
func (w Writer) Write(rw http.ResponseWriter, err error) {
	if err == nil {
		return
	}

	httpStatus := http.StatusInternalServerError
	st := &spb.Status{Code: int32(codes.Unknown), Message: http.StatusText(httpStatus)}

	var chain doomstack.Archiver
	if errors.As(err, &chain) {
		resolved := w.Mapper.Status(chain)
		httpStatus = resolved.HTTP
		st = adapter.ToStatus(chain, resolved, w.Options...)
	}

	rw.Header().Set("Content-Type", ContentType)
	rw.WriteHeader(httpStatus)

	// IMPORTANT: protojson must be used so that the Any details are written
	// with their @type and json_name field names.
	b, _ := (protojson.MarshalOptions{
		EmitUnpopulated: false,
		UseProtoNames:   false, // use json_name
	}).Marshal(st)
	_, _ = rw.Write(b)
}

// Handler adapts a handler that returns an error into an http.Handler.
// A non-nil error is written with w after the handler returns; the handler
// must not have written a response in that case.
func (w Writer) Handler(h func(http.ResponseWriter, *http.Request) error) http.Handler {
	return http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		if err := h(rw, r); err != nil {
			w.Write(rw, err)
		}
	})
}
