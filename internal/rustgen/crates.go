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
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"google.golang.org/protobuf/compiler/protogen"
	"google.golang.org/protobuf/reflect/protoreflect"
)

// crateMap maps proto import paths to the name of the Rust crate that
// holds their generated message types.
type crateMap map[string]string

// loadCrateMapping reads the mapping file named by the crate_mapping
// parameter.
func loadCrateMapping(path string) (crateMap, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open crate mapping: %w", err)
	}
	defer file.Close()
	crates, err := parseCrateMapping(file)
	if err != nil {
		return nil, fmt.Errorf("crate mapping %s: %w", path, err)
	}
	return crates, nil
}

// parseCrateMapping parses the crate mapping format used by the
// protobuf Rust backend: for each crate, a line with the crate name, a
// line with the number of import paths it covers, then that many lines
// of import paths.
func parseCrateMapping(reader io.Reader) (crateMap, error) {
	crates := make(crateMap)
	scanner := bufio.NewScanner(reader)
	for scanner.Scan() {
		crate := strings.TrimSpace(scanner.Text())
		if crate == "" {
			continue
		}
		if !scanner.Scan() {
			return nil, fmt.Errorf("missing import path count for crate %q", crate)
		}
		count, err := strconv.Atoi(strings.TrimSpace(scanner.Text()))
		if err != nil || count < 0 {
			return nil, fmt.Errorf("invalid import path count %q for crate %q", scanner.Text(), crate)
		}
		for i := 0; i < count; i++ {
			if !scanner.Scan() {
				return nil, fmt.Errorf("crate %q declares %d import paths, found %d", crate, count, i)
			}
			crates[strings.TrimSpace(scanner.Text())] = crate
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return crates, nil
}

// typeResolver turns message descriptors into Rust type paths. Messages
// generated in the current run are reachable as siblings of the client
// module via super; anything else must come from a crate named in the
// mapping.
type typeResolver struct {
	crates    crateMap
	sameCrate map[string]bool
}

func newTypeResolver(plugin *protogen.Plugin, crates crateMap) *typeResolver {
	sameCrate := make(map[string]bool, len(plugin.Files))
	for _, file := range plugin.Files {
		if file.Generate {
			sameCrate[file.Desc.Path()] = true
		}
	}
	return &typeResolver{crates: crates, sameCrate: sameCrate}
}

func (r *typeResolver) typePath(message protoreflect.MessageDescriptor) (string, error) {
	relative := relativeTypePath(message)
	importPath := message.ParentFile().Path()
	if r.sameCrate[importPath] {
		return "super::" + relative, nil
	}
	crate, ok := r.crates[importPath]
	if !ok {
		return "", fmt.Errorf("message %s: import %q has no crate mapping entry", message.FullName(), importPath)
	}
	return "::" + crate + "::" + relative, nil
}

// relativeTypePath builds the module-relative Rust path of a message.
// Nested messages live in a module named after their parent, so each
// enclosing message contributes a snake_case segment.
func relativeTypePath(message protoreflect.MessageDescriptor) string {
	segments := []string{SafeName(SnakeToUpperCamel(string(message.Name())))}
	for parent, ok := message.Parent().(protoreflect.MessageDescriptor); ok; parent, ok = parent.Parent().(protoreflect.MessageDescriptor) {
		segments = append([]string{SafeName(CamelToSnake(string(parent.Name())))}, segments...)
	}
	return strings.Join(segments, "::")
}
