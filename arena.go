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

// Arena is a flat, index-addressable tree of [Node]s. Index 0 is the
// synthetic root: it has no payload, and Parent(0) == 0.
//
// Nodes are appended by the parser and never moved or removed; an
// index handed out during a compilation stays valid for the life of
// that compilation's Arena.
type Arena struct {
	Nodes []Node
}

// NewArena returns an Arena containing only the synthetic root.
func NewArena() *Arena {
	a := &Arena{}
	a.Nodes = append(a.Nodes, Node{
		Kind:        rootKind,
		NextSibling: -1,
		Indent:      -1,
	})
	return a
}

// NewNode appends n to the arena and returns its index. n.NextSibling
// is reset to -1 and n.Children is reset to nil; callers only need to
// set the payload fields and n.Indent.
func (a *Arena) NewNode(n Node) int {
	n.NextSibling = -1
	n.Children = nil
	idx := len(a.Nodes)
	a.Nodes = append(a.Nodes, n)
	return idx
}

// AddChild appends child to parent's children and sets child's parent
// pointer.
func (a *Arena) AddChild(child, parent int) {
	a.Nodes[child].Parent = parent
	a.Nodes[parent].Children = append(a.Nodes[parent].Children, child)
}

// LinkSibling records that next immediately follows prev in document
// order among the same parent's children.
func (a *Arena) LinkSibling(prev, next int) {
	a.Nodes[prev].NextSibling = next
}

// Parent returns id's parent index. Parent(0) is 0.
func (a *Arena) Parent(id int) int {
	return a.Nodes[id].Parent
}

// Children returns id's children in source order.
func (a *Arena) Children(id int) []int {
	return a.Nodes[id].Children
}

// AncestorAtIndent walks up parent links starting at id until it finds
// a node whose indent is strictly less than indent, and returns that
// node's index. The root (index 0, indent -1) always qualifies, so the
// walk is guaranteed to terminate.
//
// This is the one place the ancestor-by-indent walk is defined; the
// parser's blank-line jump-back and any future traversal that needs to
// re-anchor against an ancestor should call this instead of
// duplicating the walk. An ordinary dedent without a preceding blank
// line does not use it: the parser attaches to the grandparent.
func (a *Arena) AncestorAtIndent(id, indent int) int {
	for id != 0 && a.Nodes[id].Indent >= indent {
		id = a.Nodes[id].Parent
	}
	return id
}

// Walk visits id and its descendants in document order, calling pre
// before descending into a node's children and post after. If pre
// returns false, id's children are skipped (post is still called).
func (a *Arena) Walk(id int, pre func(id int) bool, post func(id int)) {
	descend := true
	if pre != nil {
		descend = pre(id)
	}
	if descend {
		for _, child := range a.Nodes[id].Children {
			a.Walk(child, pre, post)
		}
	}
	if post != nil {
		post(id)
	}
}
