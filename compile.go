// Copyright 2023 Ross Light
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//		 https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

// Package haml compiles Haml-like indentation markup into HTML.
//
// Compilation runs in three stages: [Tokenize] scans source into a
// flat token stream, [Parse] threads that stream into an [Arena] using
// indentation to infer nesting, and [Render] walks the arena to
// produce a string in one of three HTML dialects. [ToHTML] runs all
// three in sequence; [ToAST] stops after parsing and dumps the tree
// instead of rendering it, which is useful for debugging a
// compilation that produced unexpected output.
package haml

// ToHTML compiles source and renders it as format. It returns the
// first error encountered, if any; there is no partial output on
// failure.
func ToHTML(source string, format Format) (string, error) {
	tokens := Tokenize(source)
	arena, err := Parse(tokens)
	if err != nil {
		return "", err
	}
	return Render(arena, format)
}

// ToAST compiles source and returns a human-readable dump of its
// parse tree instead of rendering it.
func ToAST(source string) (string, error) {
	tokens := Tokenize(source)
	arena, err := Parse(tokens)
	if err != nil {
		return "", err
	}
	return DumpAST(arena), nil
}
