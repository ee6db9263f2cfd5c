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
	"strings"

	"golang.org/x/net/html/atom"
)

//go:generate stringer -type=Format -output=format_string.go

// Format selects the HTML dialect [Render] emits. It affects
// void-element handling, boolean attribute emission, and the doctype
// string.
type Format uint8

const (
	XHTML Format = iota
	HTML5
	HTML4
)

// voidAtoms are elements with no closing tag in HTML5/HTML4, per
// https://html.spec.whatwg.org/multipage/syntax.html. Grounded on the
// same list derat-htmlpretty's voidTags set carries, resolved through
// golang.org/x/net/html/atom instead of bare strings so lookups share
// the canonical tag identity the rest of the ecosystem uses.
var voidAtoms = map[atom.Atom]bool{
	atom.Area: true, atom.Base: true, atom.Br: true, atom.Col: true,
	atom.Embed: true, atom.Hr: true, atom.Img: true, atom.Input: true,
	atom.Link: true, atom.Meta: true, atom.Param: true, atom.Source: true,
	atom.Track: true, atom.Wbr: true,
}

// rawTextAtoms are elements whose interior whitespace is preserved
// literally instead of being followed by the usual child-indenting
// newlines.
var rawTextAtoms = map[atom.Atom]bool{
	atom.Pre: true, atom.Textarea: true,
}

// isVoidElement reports whether tag has no closing tag in HTML5/HTML4.
// An unrecognized tag (atom.Lookup finds no match) is never void,
// matching Haml's historical willingness to emit any tag its author
// names.
func isVoidElement(tag string) bool {
	return voidAtoms[atom.Lookup([]byte(tag))]
}

func isRawTextElement(tag string) bool {
	return rawTextAtoms[atom.Lookup([]byte(tag))]
}

// Render traverses arena in document order and produces an HTML
// string honoring format. The result has its leading and trailing
// whitespace stripped.
func Render(arena *Arena, format Format) (string, error) {
	var b strings.Builder
	for _, child := range arena.Children(0) {
		s, err := renderNode(arena, child, format, false)
		if err != nil {
			return "", err
		}
		b.WriteString(s)
	}
	return strings.TrimSpace(b.String()), nil
}

// renderNode renders a single node and, for Element and Comment,
// everything beneath it. rawText is true when the node's parent is a
// pre/textarea element, which suppresses the newline a Text node would
// otherwise trail. Deeper descendants are rendered with the rawText
// value of their own parent element.
func renderNode(arena *Arena, id int, format Format, rawText bool) (string, error) {
	n := &arena.Nodes[id]
	switch n.Kind {
	case SilentCommentKind:
		return "", nil

	case TextKind:
		if rawText {
			return n.Text, nil
		}
		return n.Text + "\n", nil

	case DoctypeKind:
		return doctypeString(format, n.Text), nil

	case CommentKind:
		return renderComment(arena, id, format)

	case ElementKind:
		return renderElement(arena, id, format)

	default:
		return "", fmt.Errorf("haml: render: node %d has unrenderable kind %v", id, n.Kind)
	}
}

func renderComment(arena *Arena, id int, format Format) (string, error) {
	n := &arena.Nodes[id]
	if len(n.Children) == 0 {
		if format == XHTML {
			return "<!--" + n.Text + "-->", nil
		}
		return "<!-- " + strings.TrimSpace(n.Text) + " -->", nil
	}

	var b strings.Builder
	b.WriteString("<!--\n")
	for _, c := range n.Children {
		s, err := renderNode(arena, c, format, false)
		if err != nil {
			return "", err
		}
		b.WriteString(s)
	}
	b.WriteString("-->")
	return b.String(), nil
}

func renderElement(arena *Arena, id int, format Format) (string, error) {
	n := &arena.Nodes[id]

	var b strings.Builder
	b.WriteString("<" + n.Tag)
	for _, key := range n.Attrs.Keys() {
		values, _ := n.Attrs.Get(key)
		value := strings.Join(values, " ")
		if key == "checked" && value == "checked" {
			if format == XHTML {
				b.WriteString(" checked='checked'")
			} else {
				b.WriteString(" checked")
			}
			continue
		}
		fmt.Fprintf(&b, " %s='%s'", key, value)
	}

	selfClosed := n.SelfClose || (n.Tag == "input" && format == XHTML)
	if selfClosed {
		if format == XHTML {
			b.WriteString(" />")
		} else {
			b.WriteString(">")
		}
		return b.String(), nil
	}
	b.WriteString(">")

	if n.InlineText != "" {
		b.WriteString(strings.TrimSpace(n.InlineText))
	}

	rawText := isRawTextElement(n.Tag)
	if len(n.Children) > 0 {
		if !rawText {
			b.WriteString("\n")
		}
		for _, c := range n.Children {
			s, err := renderNode(arena, c, format, rawText)
			if err != nil {
				return "", err
			}
			b.WriteString(s)
		}
	}

	out := b.String()
	if rawText {
		out = strings.TrimRight(out, " \t\n\r")
	}

	if format != XHTML && isVoidElement(n.Tag) {
		return out, nil
	}
	out += "</" + n.Tag + ">\n"
	return out, nil
}
