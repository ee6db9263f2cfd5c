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

import (
	"strings"

	"go.haml.dev/haml/internal/sanitize"
)

//go:generate stringer -type=NodeKind -output=nodekind_string.go

// NodeKind discriminates the payload carried by a [Node].
type NodeKind uint8

const (
	// rootKind marks the arena's synthetic index-0 node. It carries no
	// payload and never contributes to rendered output.
	rootKind NodeKind = iota
	// CommentKind is a rendered HTML comment.
	CommentKind
	// TextKind is a raw text line.
	TextKind
	// DoctypeKind is a doctype specifier line.
	DoctypeKind
	// ElementKind is an HTML element with a tag, attributes, optional
	// inline text, and optional children.
	ElementKind
	// SilentCommentKind is a comment that is parsed but never rendered.
	SilentCommentKind
)

// Node is the tagged-union payload stored in an [Arena] at a given
// index. Every field that isn't relevant to Kind is left zero.
type Node struct {
	Kind NodeKind

	Parent      int
	Children    []int
	NextSibling int // -1 if this node has no following sibling
	Indent      int

	// Text holds the payload for CommentKind, TextKind, and
	// DoctypeKind (the doctype specifier token, e.g. "5", "Strict",
	// "XML", or "" when unset).
	Text string

	// Tag, Attrs, InlineText, and SelfClose are only meaningful for
	// ElementKind.
	Tag        string
	Attrs      *Attributes
	InlineText string
	SelfClose  bool
}

// Attributes is an ordered multimap from attribute name to its list of
// values, in first-insertion key order. The list form lets class and
// id values accumulate from multiple sources on a single element (e.g.
// ".a.b" and "{:class => [\"c\", \"d\"]}") without losing any of them.
type Attributes struct {
	keys   []string
	values map[string][]string
}

// NewAttributes returns an empty attribute map.
func NewAttributes() *Attributes {
	return &Attributes{values: make(map[string][]string)}
}

// Add appends value to key's value list, sanitizing it first the way
// Haml's historical attribute writer does: apostrophes become spaces
// (a single-quoted HTML attribute value can't contain one) and the
// result is trimmed. If key hasn't been seen before, it's appended to
// the insertion-order key list.
func (a *Attributes) Add(key, value string) {
	key = strings.TrimSpace(key)
	value = sanitize.Value(value)
	if _, ok := a.values[key]; !ok {
		a.keys = append(a.keys, key)
	}
	a.values[key] = append(a.values[key], value)
}

// Keys returns the attribute names in first-insertion order.
func (a *Attributes) Keys() []string {
	return a.keys
}

// Get returns key's value list and whether key is present.
func (a *Attributes) Get(key string) ([]string, bool) {
	v, ok := a.values[key]
	return v, ok
}

// Set overwrites key's entire value list, used for normalizations like
// collapsing a boolean attribute's value down to a single token.
func (a *Attributes) Set(key string, values []string) {
	if _, ok := a.values[key]; !ok {
		a.keys = append(a.keys, key)
	}
	a.values[key] = values
}
