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
	"testing"

	"github.com/grpc-ecosystem/protoc-gen-rust-grpc/internal/assert"
)

func TestCamelToSnake(t *testing.T) {
	t.Parallel()
	assert.Equal(t, CamelToSnake("UnaryCall"), "unary_call")
	assert.Equal(t, CamelToSnake("getFooBar"), "get_foo_bar")
	assert.Equal(t, CamelToSnake("Echo"), "echo")
	assert.Equal(t, CamelToSnake("already_snake"), "already_snake")
	assert.Equal(t, CamelToSnake(""), "")
}

func TestSnakeToUpperCamel(t *testing.T) {
	t.Parallel()
	assert.Equal(t, SnakeToUpperCamel("foo_bar"), "FooBar")
	assert.Equal(t, SnakeToUpperCamel("foo__bar"), "FooBar")
	assert.Equal(t, SnakeToUpperCamel("EchoService"), "EchoService")
	assert.Equal(t, SnakeToUpperCamel("echo"), "Echo")
	assert.Equal(t, SnakeToUpperCamel(""), "")
}

func TestSafeName(t *testing.T) {
	t.Parallel()
	assert.Equal(t, SafeName("echo"), "echo")
	assert.Equal(t, SafeName("type"), "r#type")
	assert.Equal(t, SafeName("match"), "r#match")
	assert.Equal(t, SafeName("async"), "r#async")
	// Keywords that can't be raw identifiers get a suffix instead.
	assert.Equal(t, SafeName("self"), "self_")
	assert.Equal(t, SafeName("Self"), "Self_")
	assert.Equal(t, SafeName("super"), "super_")
	assert.Equal(t, SafeName("crate"), "crate_")
}

func TestSafeNameIdempotent(t *testing.T) {
	t.Parallel()
	inputs := []string{"echo", "unary_call", "Self", "EchoClient"}
	for keyword := range rustKeywords {
		inputs = append(inputs, keyword)
	}
	for _, input := range inputs {
		once := SafeName(input)
		assert.Equal(t, SafeName(once), once, assert.Sprintf("input %q", input))
	}
}
