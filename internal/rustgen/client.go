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
	"fmt"

	"google.golang.org/protobuf/compiler/protogen"
)

// rustCodec is the codec every generated call site constructs.
const rustCodec = "grpc::codec::ProtoCodec"

// streamShape classifies a method by the ordered pair
// (clientStreaming, serverStreaming).
type streamShape int

const (
	shapeUnary streamShape = iota
	shapeServerStreaming
	shapeClientStreaming
	shapeBidiStreaming
)

func shapeOf(method *Method) streamShape {
	switch {
	case !method.ClientStreaming() && !method.ServerStreaming():
		return shapeUnary
	case !method.ClientStreaming() && method.ServerStreaming():
		return shapeServerStreaming
	case method.ClientStreaming() && !method.ServerStreaming():
		return shapeClientStreaming
	default:
		return shapeBidiStreaming
	}
}

// callSpec parameterizes the method skeleton for one streaming shape:
// how the request argument is bound, how it converts to a tonic
// request, how the response is wrapped, and which transport call the
// body makes. The %s verbs take the Rust request and response type
// paths.
type callSpec struct {
	requestBound string
	intoRequest  string
	responseWrap string
	grpcCall     string
}

func specFor(shape streamShape) (callSpec, error) {
	switch shape {
	case shapeUnary:
		return callSpec{
			requestBound: "impl tonic::IntoRequest<%s>",
			intoRequest:  "into_request",
			responseWrap: "tonic::Response<%s>",
			grpcCall:     "unary",
		}, nil
	case shapeServerStreaming:
		return callSpec{
			requestBound: "impl tonic::IntoRequest<%s>",
			intoRequest:  "into_request",
			responseWrap: "tonic::Response<tonic::codec::Streaming<%s>>",
			grpcCall:     "server_streaming",
		}, nil
	case shapeClientStreaming:
		return callSpec{
			requestBound: "impl tonic::IntoStreamingRequest<Message = %s>",
			intoRequest:  "into_streaming_request",
			responseWrap: "tonic::Response<%s>",
			grpcCall:     "client_streaming",
		}, nil
	case shapeBidiStreaming:
		return callSpec{
			requestBound: "impl tonic::IntoStreamingRequest<Message = %s>",
			intoRequest:  "into_streaming_request",
			responseWrap: "tonic::Response<tonic::codec::Streaming<%s>>",
			grpcCall:     "streaming",
		}, nil
	}
	// A fifth shape can't be built from two booleans; reaching this is
	// an internal fault, reported instead of aborting the process.
	return callSpec{}, fmt.Errorf("internal: unknown streaming shape %d", shape)
}

// generateClient emits the client module for one service: the module
// wrapper, the client struct with its constructors and configuration
// setters, and one method per RPC in declaration order.
func generateClient(g *protogen.GeneratedFile, service *Service, resolver *typeResolver) error {
	clientMod := CamelToSnake(service.Name()) + "_client"
	clientIdent := service.Name() + "Client"

	g.P("/// Generated client implementations.")
	g.P("pub mod ", clientMod, " {")
	g.P("    #![allow(")
	g.P("        unused_variables,")
	g.P("        dead_code,")
	g.P("        missing_docs,")
	g.P("        clippy::wildcard_imports,")
	g.P("        // will trigger if compression is disabled")
	g.P("        clippy::let_unit_value,")
	g.P("    )]")
	g.P("    use tonic::codegen::*;")
	g.P("    use tonic::codegen::http::Uri;")
	for _, line := range docLines(service.Comment()) {
		g.P("    ", line)
	}
	g.P("    #[derive(Debug, Clone)]")
	g.P("    pub struct ", clientIdent, "<T> {")
	g.P("        inner: tonic::client::Grpc<T>,")
	g.P("    }")
	g.P("    impl<T> ", clientIdent, "<T>")
	g.P("    where")
	g.P("        T: tonic::client::GrpcService<tonic::body::Body>,")
	g.P("        T::Error: Into<StdError>,")
	g.P("        T::ResponseBody: Body<Data = Bytes> + std::marker::Send + 'static,")
	g.P("        <T::ResponseBody as Body>::Error: Into<StdError> + std::marker::Send,")
	g.P("    {")
	generateConstructors(g, clientIdent)
	generateSetters(g)
	if err := generateMethods(g, service, resolver); err != nil {
		return err
	}
	g.P("    }")
	g.P("}")
	return nil
}

func generateConstructors(g *protogen.GeneratedFile, clientIdent string) {
	g.P("        pub fn new(inner: T) -> Self {")
	g.P("            let inner = tonic::client::Grpc::new(inner);")
	g.P("            Self { inner }")
	g.P("        }")
	g.P("        pub fn with_origin(inner: T, origin: Uri) -> Self {")
	g.P("            let inner = tonic::client::Grpc::with_origin(inner, origin);")
	g.P("            Self { inner }")
	g.P("        }")
	g.P("        pub fn with_interceptor<F>(")
	g.P("            inner: T,")
	g.P("            interceptor: F,")
	g.P("        ) -> ", clientIdent, "<InterceptedService<T, F>>")
	g.P("        where")
	g.P("            F: tonic::service::Interceptor,")
	g.P("            T::ResponseBody: Default,")
	g.P("            T: tonic::codegen::Service<")
	g.P("                http::Request<tonic::body::Body>,")
	g.P("                Response = http::Response<")
	g.P("                    <T as tonic::client::GrpcService<tonic::body::Body>>::ResponseBody,")
	g.P("                >,")
	g.P("            >,")
	g.P("            <T as tonic::codegen::Service<")
	g.P("                http::Request<tonic::body::Body>,")
	g.P("            >>::Error: Into<StdError> + std::marker::Send + std::marker::Sync,")
	g.P("        {")
	g.P("            ", clientIdent, "::new(InterceptedService::new(inner, interceptor))")
	g.P("        }")
}

// The four chainable setters consume self and return it, so callers can
// configure the client fluently.
func generateSetters(g *protogen.GeneratedFile) {
	g.P("        /// Compress requests with the given encoding.")
	g.P("        ///")
	g.P("        /// This requires the server to support it otherwise it might respond with an")
	g.P("        /// error.")
	g.P("        #[must_use]")
	g.P("        pub fn send_compressed(mut self, encoding: CompressionEncoding) -> Self {")
	g.P("            self.inner = self.inner.send_compressed(encoding);")
	g.P("            self")
	g.P("        }")
	g.P("        /// Enable decompressing responses.")
	g.P("        #[must_use]")
	g.P("        pub fn accept_compressed(mut self, encoding: CompressionEncoding) -> Self {")
	g.P("            self.inner = self.inner.accept_compressed(encoding);")
	g.P("            self")
	g.P("        }")
	g.P("        /// Limits the maximum size of a decoded message.")
	g.P("        ///")
	g.P("        /// Default: `4MB`")
	g.P("        #[must_use]")
	g.P("        pub fn max_decoding_message_size(mut self, limit: usize) -> Self {")
	g.P("            self.inner = self.inner.max_decoding_message_size(limit);")
	g.P("            self")
	g.P("        }")
	g.P("        /// Limits the maximum size of an encoded message.")
	g.P("        ///")
	g.P("        /// Default: `usize::MAX`")
	g.P("        #[must_use]")
	g.P("        pub fn max_encoding_message_size(mut self, limit: usize) -> Self {")
	g.P("            self.inner = self.inner.max_encoding_message_size(limit);")
	g.P("            self")
	g.P("        }")
}

func generateMethods(g *protogen.GeneratedFile, service *Service, resolver *typeResolver) error {
	methods := service.Methods()
	for i, method := range methods {
		for _, line := range docLines(method.Comment()) {
			g.P("        ", line)
		}
		if method.Deprecated() {
			g.P("        #[deprecated]")
		}
		spec, err := specFor(shapeOf(method))
		if err != nil {
			return err
		}
		request, response, err := method.RequestResponse(resolver)
		if err != nil {
			return err
		}
		generateMethodBody(g, service, method, spec, request, response)
		if i < len(methods)-1 {
			g.P()
		}
	}
	return nil
}

func generateMethodBody(g *protogen.GeneratedFile, service *Service, method *Method, spec callSpec, request, response string) {
	g.P("        pub async fn ", method.Name(), "(")
	g.P("            &mut self,")
	g.P("            request: ", fmt.Sprintf(spec.requestBound, request), ",")
	g.P("        ) -> std::result::Result<", fmt.Sprintf(spec.responseWrap, response), ", tonic::Status> {")
	g.P("            self.inner.ready().await.map_err(|e| {")
	g.P(`                tonic::Status::unknown(format!("Service was not ready: {}", e.into()))`)
	g.P("            })?;")
	g.P("            let codec = ", rustCodec, "::default();")
	g.P(`            let path = http::uri::PathAndQuery::from_static("`, methodPath(service, method), `");`)
	g.P("            let mut req = request.", spec.intoRequest, "();")
	g.P(`            req.extensions_mut().insert(GrpcMethod::new("`, service.FullName(), `", "`, method.ProtoName(), `"));`)
	g.P("            self.inner.", spec.grpcCall, "(req, path, codec).await")
	g.P("        }")
}
