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

// Package grpcx exposes failure chains over gRPC.
//
// Server side, the interceptors turn handler errors that carry a chain into
// status errors (code from an apis.Mapper, details from package adapter).
// Client side, ExtractStack recovers the chain from such an error.
package grpcx

import (
	"context"
	"errors"

	"dirpx.dev/doomstack"
	"dirpx.dev/doomstack/adapter"
	"dirpx.dev/doomstack/apis"
	"google.golang.org/grpc"
	gstatus "google.golang.org/grpc/status"
)

// UnaryServerInterceptor returns a gRPC UnaryServerInterceptor that maps
// chain errors into gRPC status errors carrying one ErrorInfo per entry.
//
// Errors without a chain (no doomstack.Archiver in their errors.As tree) are
// returned as-is.
func UnaryServerInterceptor(m apis.Mapper, opts ...adapter.Option) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		resp, err := handler(ctx, req)
		if err == nil {
			return resp, nil
		}
		return nil, toStatusError(m, err, opts)
	}
}

// StreamServerInterceptor is the streaming counterpart of
// UnaryServerInterceptor.
func StreamServerInterceptor(m apis.Mapper, opts ...adapter.Option) grpc.StreamServerInterceptor {
	return func(srv any, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
		err := handler(srv, ss)
		if err == nil {
			return nil
		}
		return toStatusError(m, err, opts)
	}
}

func toStatusError(m apis.Mapper, err error, opts []adapter.Option) error {
	var chain doomstack.Archiver
	if !errors.As(err, &chain) {
		// Not a chain, return as-is.
		return err
	}
	return gstatus.FromProto(adapter.ToStatus(chain, m.Status(chain), opts...)).Err()
}

// ExtractStack pulls the chain out of a gRPC status error, if present.
// The options must match the ones the server used (notably the domain).
func ExtractStack(err error, opts ...adapter.Option) (doomstack.Stack, bool) {
	if err == nil {
		return doomstack.Stack{}, false
	}
	st, ok := gstatus.FromError(err)
	if !ok {
		return doomstack.Stack{}, false
	}
	s := adapter.FromStatus(st.Proto(), opts...)
	return s, !s.IsEmpty()
}
