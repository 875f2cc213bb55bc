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
	"unicode"
)

// https://doc.rust-lang.org/reference/keywords.html
var rustKeywords = map[string]bool{
	"as": true, "async": true, "await": true, "break": true, "const": true,
	"continue": true, "crate": true, "dyn": true, "else": true, "enum": true,
	"extern": true, "false": true, "fn": true, "for": true, "if": true,
	"impl": true, "in": true, "let": true, "loop": true, "match": true,
	"mod": true, "move": true, "mut": true, "pub": true, "ref": true,
	"return": true, "self": true, "Self": true, "static": true, "struct": true,
	"super": true, "trait": true, "true": true, "type": true, "union": true,
	"unsafe": true, "use": true, "where": true, "while": true,

	// Reserved for future use.
	"abstract": true, "become": true, "box": true, "do": true, "final": true,
	"macro": true, "override": true, "priv": true, "try": true,
	"typeof": true, "unsized": true, "virtual": true, "yield": true,
}

// Keywords that the r# raw-identifier syntax can't express.
var rustForbiddenRaw = map[string]bool{
	"crate": true, "self": true, "Self": true, "super": true,
}

// SafeName escapes identifiers that collide with a Rust keyword, using
// the r# raw-identifier prefix where the language allows it and an
// underscore suffix where it doesn't. Non-colliding input is returned
// unchanged, so the function is idempotent.
func SafeName(name string) string {
	if rustForbiddenRaw[name] {
		return name + "_"
	}
	if rustKeywords[name] {
		return "r#" + name
	}
	return name
}

// CamelToSnake converts an UpperCamelCase or lowerCamelCase name to
// snake_case, inserting an underscore before each interior uppercase
// rune.
func CamelToSnake(name string) string {
	out := make([]rune, 0, len(name)+4)
	for i, r := range name {
		if unicode.IsUpper(r) {
			if i > 0 && out[len(out)-1] != '_' {
				out = append(out, '_')
			}
			out = append(out, unicode.ToLower(r))
			continue
		}
		out = append(out, r)
	}
	return string(out)
}

// SnakeToUpperCamel converts a snake_case name to UpperCamelCase. Runs
// of underscores collapse; runes after the first in each segment are
// preserved, so already-camel input passes through untouched.
func SnakeToUpperCamel(name string) string {
	var out strings.Builder
	out.Grow(len(name))
	for _, segment := range strings.Split(name, "_") {
		if segment == "" {
			continue
		}
		runes := []rune(segment)
		out.WriteRune(unicode.ToUpper(runes[0]))
		out.WriteString(string(runes[1:]))
	}
	return out.String()
}
