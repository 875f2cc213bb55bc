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

import (
	"strings"

	"google.golang.org/protobuf/compiler/protogen"
	"google.golang.org/protobuf/types/descriptorpb"
)

// Method is a read-only view over one RPC method in the descriptor
// graph. It never outlives the protogen.Plugin it was built from.
type Method struct {
	method *protogen.Method
}

// Name returns the method's Rust identifier: the proto name converted
// to snake_case and escaped if it collides with a Rust keyword.
func (m *Method) Name() string {
	return SafeName(CamelToSnake(string(m.method.Desc.Name())))
}

// ProtoName returns the method name exactly as written in the .proto
// file.
func (m *Method) ProtoName() string {
	return string(m.method.Desc.Name())
}

// FullName returns the fully-qualified method name, scope delimited by
// periods.
func (m *Method) FullName() string {
	return string(m.method.Desc.FullName())
}

// ClientStreaming reports whether the client sends a stream of request
// messages.
func (m *Method) ClientStreaming() bool {
	return m.method.Desc.IsStreamingClient()
}

// ServerStreaming reports whether the server sends a stream of response
// messages.
func (m *Method) ServerStreaming() bool {
	return m.method.Desc.IsStreamingServer()
}

// Deprecated reports whether the method carries the deprecated option.
func (m *Method) Deprecated() bool {
	options, ok := m.method.Desc.Options().(*descriptorpb.MethodOptions)
	return ok && options.GetDeprecated()
}

// Comment returns the method's raw comment text, preferring leading
// comments and falling back to trailing ones.
func (m *Method) Comment() string {
	return rawComment(m.method.Comments)
}

// RequestResponse resolves the Rust type paths for the method's input
// and output messages through the resolver's crate table.
func (m *Method) RequestResponse(resolver *typeResolver) (request, response string, err error) {
	request, err = resolver.typePath(m.method.Input.Desc)
	if err != nil {
		return "", "", err
	}
	response, err = resolver.typePath(m.method.Output.Desc)
	if err != nil {
		return "", "", err
	}
	return request, response, nil
}

// Service is a read-only view over one service in the descriptor graph.
type Service struct {
	service *protogen.Service
	methods []*Method
}

func newService(service *protogen.Service) *Service {
	methods := make([]*Method, 0, len(service.Methods))
	for _, method := range service.Methods {
		methods = append(methods, &Method{method: method})
	}
	return &Service{service: service, methods: methods}
}

// Name returns the service's Rust type identifier.
func (s *Service) Name() string {
	return SafeName(SnakeToUpperCamel(string(s.service.Desc.Name())))
}

// FullName returns the fully-qualified service name, scope delimited by
// periods. It appears verbatim in wire routes.
func (s *Service) FullName() string {
	return string(s.service.Desc.FullName())
}

// Methods returns the service's methods in declaration order.
func (s *Service) Methods() []*Method {
	return s.methods
}

// Comment returns the service's raw comment text.
func (s *Service) Comment() string {
	return rawComment(s.service.Comments)
}

// rawComment extracts a descriptor's comment text: leading comments
// when present, trailing otherwise. Source info keeps the space that
// follows the "//" marker on every line; that space is dropped here so
// formatters see the text as the author wrote it.
func rawComment(set protogen.CommentSet) string {
	comment := string(set.Leading)
	if comment == "" {
		comment = string(set.Trailing)
	}
	comment = strings.TrimSuffix(comment, "\n")
	if comment == "" {
		return ""
	}
	lines := strings.Split(comment, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimPrefix(line, " ")
	}
	return strings.Join(lines, "\n")
}
