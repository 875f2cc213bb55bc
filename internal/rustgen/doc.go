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

import "strings"

// Rustdoc renders comments as Markdown, so these need escaping in
// free-text proto comments.
var docSpecials = []string{"`", "*", "_", "[", "]", "#", "<", ">"}

// sanitizeDoc escapes a single comment line for safe inclusion in a
// rustdoc block. Backslashes are doubled before the Markdown-sensitive
// characters are escaped; running the passes in the other order would
// double-escape the backslashes the second pass introduces.
func sanitizeDoc(line string) string {
	line = strings.ReplaceAll(line, `\`, `\\`)
	for _, special := range docSpecials {
		line = strings.ReplaceAll(line, special, `\`+special)
	}
	return line
}

// docLines converts raw proto comment text into rustdoc lines, one per
// input line and in input order. Empty input lines become a bare "///"
// so blank separators survive into the rendered documentation. Empty
// input yields no lines at all.
func docLines(raw string) []string {
	if raw == "" {
		return nil
	}
	lines := strings.Split(raw, "\n")
	doc := make([]string, 0, len(lines))
	for _, line := range lines {
		if line == "" {
			doc = append(doc, "///")
			continue
		}
		doc = append(doc, "/// "+sanitizeDoc(line))
	}
	return doc
}
