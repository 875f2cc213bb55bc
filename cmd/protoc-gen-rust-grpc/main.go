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

// protoc-gen-rust-grpc is a plugin for the Protobuf compiler that
// generates Rust gRPC client code on top of the tonic runtime. To use
// it, build this program and make it available on your PATH as
// protoc-gen-rust-grpc.
//
// The 'rust-grpc' suffix becomes part of the arguments for the
// Protobuf compiler:
//
//	protoc --rust_out=gen --rust-grpc_out=gen path/to/file.proto
//
// For each file.proto that declares at least one service, the
// invocation above writes the client bindings to:
//
//	gen/path/to/file_grpc.pb.rs
//
// The generated code is configurable with the following parameters:
//
//   - crate_mapping: Path of a file mapping proto import paths to the
//     Rust crates containing their generated message types, in the same
//     format the protobuf Rust backend consumes. Types defined by the
//     files being generated never need an entry.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/grpc-ecosystem/protoc-gen-rust-grpc/internal/rustgen"
	"google.golang.org/protobuf/compiler/protogen"
	"google.golang.org/protobuf/types/descriptorpb"
	"google.golang.org/protobuf/types/pluginpb"
)

const (
	crateMappingFlagName = "crate_mapping"

	usage = "protoc-gen-rust-grpc is meant to be run by the Protobuf compiler; see the package documentation to learn how to wire it up.\n\nFlags:\n  -h, --help\tPrint this help and exit.\n      --version\tPrint the version and exit."
)

func main() {
	if len(os.Args) == 2 && os.Args[1] == "--version" {
		fmt.Fprintln(os.Stdout, rustgen.Version)
		os.Exit(0)
	}
	if len(os.Args) == 2 && (os.Args[1] == "-h" || os.Args[1] == "--help") {
		fmt.Fprintln(os.Stdout, usage)
		os.Exit(0)
	}
	if len(os.Args) != 1 {
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(1)
	}
	var flagSet flag.FlagSet
	crateMapping := flagSet.String(
		crateMappingFlagName,
		"",
		"Path of a file mapping proto import paths to Rust crate names.",
	)
	protogen.Options{
		ParamFunc: flagSet.Set,
	}.Run(
		func(plugin *protogen.Plugin) error {
			plugin.SupportedFeatures = uint64(pluginpb.CodeGeneratorResponse_FEATURE_PROTO3_OPTIONAL) | uint64(pluginpb.CodeGeneratorResponse_FEATURE_SUPPORTS_EDITIONS)
			plugin.SupportedEditionsMinimum = descriptorpb.Edition_EDITION_PROTO2
			plugin.SupportedEditionsMaximum = descriptorpb.Edition_EDITION_2023
			config := rustgen.Config{CrateMapping: *crateMapping}
			for _, file := range plugin.Files {
				if !file.Generate {
					continue
				}
				if err := rustgen.Generate(plugin, file, config); err != nil {
					return err
				}
			}
			return nil
		},
	)
}
