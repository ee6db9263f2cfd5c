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

import "strings"

// Tokenize turns source into a flat, ordered sequence of [Token]s.
//
// The scanner is line-aware: it counts leading spaces at the start of
// each line and emits an [Indentation] token for non-empty counts, then
// scans the rest of the line left to right, one lexical unit at a time.
// It never fails: unrecognized bytes are simply absorbed into [Text]
// runs. Tokenize does not decide whether a sigil starts a new construct
// or is plain text content — that decision belongs to [Parse], which
// has the line context the scanner deliberately does not track.
func Tokenize(source string) []Token {
	var toks []Token
	line := 1
	i := 0
	n := len(source)
	atLineStart := true

	for i < n {
		if atLineStart {
			start := i
			for i < n && source[i] == ' ' {
				i++
			}
			if i > start {
				toks = append(toks, Token{Kind: Indentation, N: i - start, Line: line})
			}
			atLineStart = false
			continue
		}

		c := source[i]
		switch {
		case c == '\n':
			toks = append(toks, Token{Kind: EndLine, Line: line})
			i++
			line++
			atLineStart = true

		case c == ' ':
			for i < n && source[i] == ' ' {
				i++
			}
			toks = append(toks, Token{Kind: Whitespace, Line: line})

		case strings.HasPrefix(source[i:], "!!!"):
			toks = append(toks, Token{Kind: DocType, Line: line})
			i += 3

		case c == '%':
			toks = append(toks, Token{Kind: Percent, Line: line})
			i++
		case c == '.':
			toks = append(toks, Token{Kind: Period, Line: line})
			i++
		case c == '#':
			toks = append(toks, Token{Kind: Hashtag, Line: line})
			i++
		case c == '/':
			toks = append(toks, Token{Kind: Slash, Line: line})
			i++
		case c == '(':
			toks = append(toks, Token{Kind: OpenParen, Line: line})
			i++
		case c == ')':
			toks = append(toks, Token{Kind: CloseParen, Line: line})
			i++
		case c == '{':
			toks = append(toks, Token{Kind: OpenBrace, Line: line})
			i++
		case c == '}':
			toks = append(toks, Token{Kind: CloseBrace, Line: line})
			i++
		case c == '[':
			toks = append(toks, Token{Kind: OpenBracket, Line: line})
			i++
		case c == ']':
			toks = append(toks, Token{Kind: CloseBracket, Line: line})
			i++
		case c == '=':
			if i+1 < n && source[i+1] == '>' {
				toks = append(toks, Token{Kind: Arrow, Line: line})
				i += 2
			} else {
				toks = append(toks, Token{Kind: Equal, Line: line})
				i++
			}
		case c == ':':
			toks = append(toks, Token{Kind: Colon, Line: line})
			i++
		case c == ',':
			toks = append(toks, Token{Kind: Comma, Line: line})
			i++

		case c == '"' || c == '\'':
			quote := c
			j := i + 1
			for j < n && source[j] != quote {
				j++
			}
			toks = append(toks, Token{Kind: Text, Text: source[i+1 : j], Line: line})
			if j < n {
				j++
			}
			i = j

		default:
			start := i
			for i < n && !isBreakByte(source[i]) {
				if source[i] == '!' && strings.HasPrefix(source[i:], "!!!") {
					break
				}
				i++
			}
			toks = append(toks, Token{Kind: Text, Text: source[start:i], Line: line})
		}
	}

	return toks
}

// isBreakByte reports whether b terminates a [Text] run: a sigil,
// bracket, punctuation character, whitespace, newline, or quote.
func isBreakByte(b byte) bool {
	switch b {
	case '%', '.', '#', '/', '(', ')', '{', '}', '[', ']',
		'=', ':', ',', ' ', '\n', '"', '\'':
		return true
	default:
		return false
	}
}
