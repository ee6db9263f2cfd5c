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

package haml

//go:generate stringer -type=TokenKind -output=token_string.go

// TokenKind identifies the lexical category of a [Token].
type TokenKind uint8

const (
	// Percent is the '%' sigil that starts an element header.
	Percent TokenKind = 1 + iota
	// Period is the '.' sigil that adds a class to the current element.
	Period
	// Hashtag is the '#' sigil that adds an id to the current element.
	Hashtag
	// Slash starts a comment, or closes a self-closing element header.
	Slash
	// DocType is the '!!!' sigil that starts a doctype line.
	DocType

	// OpenParen and CloseParen delimit an HTML-style attribute list.
	OpenParen
	CloseParen
	// OpenBrace and CloseBrace delimit a hash-style attribute list.
	OpenBrace
	CloseBrace
	// OpenBracket and CloseBracket delimit a value array inside a
	// hash-style attribute list.
	OpenBracket
	CloseBracket

	// Equal separates a key and value in an HTML-style attribute pair.
	Equal
	// Arrow ("=>") separates a key and value in a hash-style attribute pair.
	Arrow
	// Colon precedes a hash-style attribute key.
	Colon
	// Comma separates entries in a hash-style attribute list or array.
	Comma

	// Text is a contiguous, non-whitespace, non-sigil run, or the
	// unquoted contents of a quoted string.
	Text
	// Whitespace is one or more collapsed interior spaces.
	Whitespace
	// Indentation is the count of leading spaces on a line, emitted
	// once per line at line start when that count is greater than zero.
	Indentation
	// EndLine is the logical end of a line.
	EndLine
)

// Token is a single lexical unit produced by [Tokenize].
//
// Text carries the literal run for [Text] tokens. N carries the column
// count for [Indentation] tokens. Line is the 1-based source line the
// token was scanned from, used only for error reporting.
type Token struct {
	Kind TokenKind
	Text string
	N    int
	Line int
}
