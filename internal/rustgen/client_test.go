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
	"testing"

	"github.com/grpc-ecosystem/protoc-gen-rust-grpc/internal/assert"
)

func testEchoContent(t *testing.T) string {
	t.Helper()
	plugin := testPlugin(t, map[string]string{"test/echo.proto": echoProto}, "test/echo.proto")
	files := testGenerate(t, plugin, Config{})
	content, ok := files["test/echo_grpc.pb.rs"]
	assert.True(t, ok)
	return content
}

func TestClientWrapper(t *testing.T) {
	t.Parallel()
	content := testEchoContent(t)

	assert.Contains(t, content, "pub mod echo_client {")
	assert.Contains(t, content, "pub struct EchoClient<T> {")
	assert.Contains(t, content, "inner: tonic::client::Grpc<T>,")

	// The three construction entry points.
	assert.Contains(t, content, "pub fn new(inner: T) -> Self {")
	assert.Contains(t, content, "pub fn with_origin(inner: T, origin: Uri) -> Self {")
	assert.Contains(t, content, "pub fn with_interceptor<F>(")

	// The four chainable configuration setters.
	assert.Contains(t, content, "pub fn send_compressed(mut self, encoding: CompressionEncoding) -> Self {")
	assert.Contains(t, content, "pub fn accept_compressed(mut self, encoding: CompressionEncoding) -> Self {")
	assert.Contains(t, content, "pub fn max_decoding_message_size(mut self, limit: usize) -> Self {")
	assert.Contains(t, content, "pub fn max_encoding_message_size(mut self, limit: usize) -> Self {")

	// Exactly one wrapper module per service.
	assert.Equal(t, strings.Count(content, "pub mod "), 1)
	assert.Equal(t, strings.Count(content, "/// Generated client implementations."), 1)
}

func TestStreamingShapes(t *testing.T) {
	t.Parallel()
	content := testEchoContent(t)

	assert.Contains(t, content, "pub async fn unary_echo(")
	assert.Contains(t, content, "pub async fn server_streaming_echo(")
	assert.Contains(t, content, "pub async fn client_streaming_echo(")
	assert.Contains(t, content, "pub async fn bidirectional_streaming_echo(")

	// One transport call per shape.
	assert.Contains(t, content, "self.inner.unary(req, path, codec).await")
	assert.Contains(t, content, "self.inner.server_streaming(req, path, codec).await")
	assert.Contains(t, content, "self.inner.client_streaming(req, path, codec).await")
	assert.Contains(t, content, "self.inner.streaming(req, path, codec).await")

	// Streaming of the request switches the binding and conversion.
	assert.Contains(t, content, "request: impl tonic::IntoRequest<super::EchoRequest>,")
	assert.Contains(t, content, "request: impl tonic::IntoStreamingRequest<Message = super::EchoRequest>,")
	assert.Contains(t, content, "request.into_request();")
	assert.Contains(t, content, "request.into_streaming_request();")

	// Streaming of the response switches the wrapping; the unary shape
	// gets a plain single-value response.
	assert.Contains(t, content, ") -> std::result::Result<tonic::Response<super::EchoResponse>, tonic::Status> {")
	assert.Contains(t, content, ") -> std::result::Result<tonic::Response<tonic::codec::Streaming<super::EchoResponse>>, tonic::Status> {")

	// No two shapes share a skeleton.
	bodies := methodBodies(t, content)
	assert.Equal(t, len(bodies), 5)
	unique := make(map[string]bool)
	for name, body := range bodies {
		unique[body] = true
		assert.Contains(t, body, "let codec = grpc::codec::ProtoCodec::default();", assert.Sprintf("method %s", name))
		assert.Contains(t, body, "self.inner.ready().await.map_err(|e| {", assert.Sprintf("method %s", name))
	}
	// unary_echo and old_echo share the unary skeleton modulo
	// identifiers, so five methods produce five distinct bodies anyway.
	assert.Equal(t, len(unique), 5)
}

func TestMethodRoutes(t *testing.T) {
	t.Parallel()
	content := testEchoContent(t)

	// Routes use the proto-declared method name, not the Rust ident.
	assert.Contains(t, content, `http::uri::PathAndQuery::from_static("/test.v1.Echo/UnaryEcho");`)
	assert.Contains(t, content, `http::uri::PathAndQuery::from_static("/test.v1.Echo/BidirectionalStreamingEcho");`)
	assert.NotContains(t, content, "/test.v1.Echo/unary_echo")

	// Runtime call metadata carries both names untransformed.
	assert.Contains(t, content, `GrpcMethod::new("test.v1.Echo", "UnaryEcho")`)
	assert.Contains(t, content, `GrpcMethod::new("test.v1.Echo", "OldEcho")`)
}

func TestDocComments(t *testing.T) {
	t.Parallel()
	content := testEchoContent(t)

	assert.Contains(t, content, "/// Echo is a service that echoes.")
	assert.Contains(t, content, "/// It supports all four streaming shapes.")
	assert.Contains(t, content, "/// UnaryEcho echoes once.")
	assert.Contains(t, content, "/// ServerStreamingEcho echoes a stream back.")
	// The blank line between the two service comment paragraphs turns
	// into a bare marker.
	assert.Contains(t, content, "\n    ///\n")
}

func TestDeprecatedMarker(t *testing.T) {
	t.Parallel()
	content := testEchoContent(t)

	assert.Equal(t, strings.Count(content, "#[deprecated]"), 1)
	lines := strings.Split(content, "\n")
	marker := -1
	for i, line := range lines {
		if strings.TrimSpace(line) == "#[deprecated]" {
			marker = i
			break
		}
	}
	assert.True(t, marker >= 0)
	assert.Contains(t, lines[marker+1], "pub async fn old_echo(")
}

func TestMethodSeparators(t *testing.T) {
	t.Parallel()
	content := testEchoContent(t)

	// A blank line separates consecutive methods: four separators for
	// five methods.
	assert.Equal(t, strings.Count(content, "        }\n\n"), 4)
}

func TestKeywordMethodName(t *testing.T) {
	t.Parallel()
	const keywordProto = `syntax = "proto3";

package test.v1;

option go_package = "example.com/gen/testv1";

message Empty {}

service Mover {
  rpc Move(Empty) returns (Empty) {}
}
`
	plugin := testPlugin(t, map[string]string{"test/mover.proto": keywordProto}, "test/mover.proto")
	files := testGenerate(t, plugin, Config{})
	content := files["test/mover_grpc.pb.rs"]
	assert.Contains(t, content, "pub async fn r#move(")
	assert.Contains(t, content, `from_static("/test.v1.Mover/Move");`)
}

func TestNestedMessageTypes(t *testing.T) {
	t.Parallel()
	const nestedProto = `syntax = "proto3";

package test.v1;

option go_package = "example.com/gen/testv1";

message Envelope {
  message Body {
    string text = 1;
  }
  Body body = 1;
}

service Mailer {
  rpc Send(Envelope.Body) returns (Envelope) {}
}
`
	plugin := testPlugin(t, map[string]string{"test/mail.proto": nestedProto}, "test/mail.proto")
	files := testGenerate(t, plugin, Config{})
	content := files["test/mail_grpc.pb.rs"]
	assert.Contains(t, content, "impl tonic::IntoRequest<super::envelope::Body>")
	assert.Contains(t, content, "tonic::Response<super::Envelope>")
}

// methodBodies slices the generated text into per-method chunks keyed
// by the method ident.
func methodBodies(t *testing.T, content string) map[string]string {
	t.Helper()
	bodies := make(map[string]string)
	chunks := strings.Split(content, "pub async fn ")
	for _, chunk := range chunks[1:] {
		name, _, ok := strings.Cut(chunk, "(")
		assert.True(t, ok)
		body, _, _ := strings.Cut(chunk, "\n        }")
		bodies[name] = body
	}
	return bodies
}
