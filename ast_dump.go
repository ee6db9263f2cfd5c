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
	"fmt"
	"strconv"
	"strings"
)

// DumpAST renders arena as an indented "<kind>:<payload>" tree, one
// line per node, children indented two spaces deeper than their
// parent. It never fails: a parsed arena is always dumpable.
func DumpAST(arena *Arena) string {
	var b strings.Builder
	depth := -1 // root (index 0) doesn't get a line of its own
	for _, child := range arena.Children(0) {
		arena.Walk(child, func(id int) bool {
			depth++
			b.WriteString(strings.Repeat("  ", depth))
			b.WriteString(nodeLabel(&arena.Nodes[id]))
			b.WriteString("\n")
			return true
		}, func(id int) {
			depth--
		})
	}
	return strings.TrimSuffix(b.String(), "\n")
}

// nodeLabel formats a single node's "<kind>:<payload>" line.
func nodeLabel(n *Node) string {
	switch n.Kind {
	case CommentKind:
		return "Comment:" + strconv.Quote(n.Text)
	case SilentCommentKind:
		return "SilentComment:" + strconv.Quote(n.Text)
	case TextKind:
		return "Text:" + strconv.Quote(n.Text)
	case DoctypeKind:
		return "Doctype:" + strconv.Quote(n.Text)
	case ElementKind:
		return "Element:" + elementPayload(n)
	default:
		return fmt.Sprintf("Unknown(%v)", n.Kind)
	}
}

func elementPayload(n *Node) string {
	var b strings.Builder
	b.WriteString(n.Tag)
	for _, key := range n.Attrs.Keys() {
		values, _ := n.Attrs.Get(key)
		fmt.Fprintf(&b, " %s=%s", key, strconv.Quote(strings.Join(values, " ")))
	}
	if n.SelfClose {
		b.WriteString(" /")
	}
	if n.InlineText != "" {
		fmt.Fprintf(&b, " text=%s", strconv.Quote(n.InlineText))
	}
	return b.String()
}
