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

// Package rustgen generates tonic-style Rust gRPC client bindings from
// Protobuf service descriptors. It is the core of the
// protoc-gen-rust-grpc plugin: a single-pass, deterministic transform
// from an already-validated descriptor graph to Rust source text.
package rustgen

import "google.golang.org/protobuf/compiler/protogen"

// Version is the semantic version of the protoc-gen-rust-grpc module.
const Version = "0.1.0-dev"

// generatedFilenameSuffix replaces the .proto extension on output
// artifacts.
const generatedFilenameSuffix = "_grpc.pb.rs"

// Config carries the generator parameters forwarded by the host
// compiler.
type Config struct {
	// CrateMapping names a file mapping proto import paths to the Rust
	// crates holding their generated message types. Empty means every
	// referenced type is generated in the current run.
	CrateMapping string
}

// Generate emits the Rust client bindings for one proto file. A file
// declaring no services produces no output artifact. Errors abort the
// whole file; no partial output is valid.
func Generate(plugin *protogen.Plugin, file *protogen.File, config Config) error {
	if len(file.Services) == 0 {
		return nil
	}
	crates := make(crateMap)
	if config.CrateMapping != "" {
		var err error
		crates, err = loadCrateMapping(config.CrateMapping)
		if err != nil {
			return err
		}
	}
	resolver := newTypeResolver(plugin, crates)
	g := plugin.NewGeneratedFile(file.GeneratedFilenamePrefix+generatedFilenameSuffix, "")
	for i, service := range file.Services {
		if i > 0 {
			g.P()
		}
		if err := generateClient(g, newService(service), resolver); err != nil {
			return err
		}
	}
	return nil
}
