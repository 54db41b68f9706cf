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

// defaultHTTP holds built-in HTTP mappings for conventional tags. Callers
// override them with WithHTTP or drop them with WithoutDefaults.
var defaultHTTP = map[string]int{
	// 5xx: server / dependency / transient issues.
	"Internal":         http.StatusInternalServerError,
	"Unavailable":      http.StatusServiceUnavailable,
	"DependencyFailed": http.StatusBadGateway,
	"Timeout":          http.StatusGatewayTimeout,
	"Unimplemented":    http.StatusNotImplemented,
	// 499 would be the nginx convention; 408 stays within the standard set.
	"Canceled": http.StatusRequestTimeout,

	// 4xx: client/protocol/resource issues.
	"Invalid":            http.StatusBadRequest,
	"Missing":            http.StatusBadRequest,
	"NotFound":           http.StatusNotFound,
	"Gone":               http.StatusGone,
	"AlreadyExists":      http.StatusConflict,
	"Conflict":           http.StatusConflict,
	"PreconditionFailed": http.StatusPreconditionFailed,
	"Unauthenticated":    http.StatusUnauthorized,
	"PermissionDenied":   http.StatusForbidden,
	"RateLimited":        http.StatusTooManyRequests,
	"QuotaExceeded":      http.StatusTooManyRequests,
}

// defaultGRPC mirrors defaultHTTP for gRPC.
var defaultGRPC = map[string]codes.Code{
	"Internal":         codes.Internal,
	"Unavailable":      codes.Unavailable,
	"DependencyFailed": codes.Unavailable,
	"Timeout":          codes.DeadlineExceeded,
	"Unimplemented":    codes.Unimplemented,
	"Canceled":         codes.Canceled,

	"Invalid":            codes.InvalidArgument,
	"Missing":            codes.InvalidArgument,
	"NotFound":           codes.NotFound,
	"Gone":               codes.NotFound,
	"AlreadyExists":      codes.AlreadyExists,
	"Conflict":           codes.Aborted,
	"PreconditionFailed": codes.FailedPrecondition,
	"Unauthenticated":    codes.Unauthenticated,
	"PermissionDenied":   codes.PermissionDenied,
	"RateLimited":        codes.ResourceExhausted,
	"QuotaExceeded":      codes.ResourceExhausted,
}
