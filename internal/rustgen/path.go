// Copyright 2025 The gRPC Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package rustgen

import "fmt"

// methodPath formats the HTTP/2 route for a method, for example
// "/package.MyService/MyMethod". The method segment is the name as
// written in the .proto file, not the Rust identifier: the wire route
// must match what the server expects regardless of target-language
// naming conventions.
func methodPath(service *Service, method *Method) string {
	return fmt.Sprintf("/%s/%s", service.FullName(), method.ProtoName())
}
