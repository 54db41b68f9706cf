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

// Package apis defines the public contracts the transport adapters share.
//
// It sits between the core chain types (dirpx.dev/doomstack) and the
// adapters (grpcx, httpx, adapter), so that they can depend on a Mapper
// without importing a concrete implementation from dirpx.dev/doomstack/mapper.
//
// This package must remain lightweight: interfaces and very small value
// types only.
package apis
