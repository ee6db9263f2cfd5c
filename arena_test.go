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

import "testing"

func TestArenaAncestorAtIndent(t *testing.T) {
	a := NewArena()
	root := a.NewNode(Node{Indent: 0})
	a.AddChild(root, 0)
	mid := a.NewNode(Node{Indent: 2})
	a.AddChild(mid, root)
	deep := a.NewNode(Node{Indent: 4})
	a.AddChild(deep, mid)

	tests := []struct {
		name   string
		id     int
		indent int
		want   int
	}{
		{"SameLevelSteppedBackToRoot", deep, 0, 0},
		{"StepsBackOneLevel", deep, 2, root},
		{"NoStepBackNeeded", deep, 5, deep},
		{"UnevenIndentWidth", deep, 1, root},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := a.AncestorAtIndent(test.id, test.indent); got != test.want {
				t.Errorf("AncestorAtIndent(%d, %d) = %d; want %d", test.id, test.indent, got, test.want)
			}
		})
	}
}

func TestArenaWalkOrder(t *testing.T) {
	a := NewArena()
	root := a.NewNode(Node{Indent: 0})
	a.AddChild(root, 0)
	child1 := a.NewNode(Node{Indent: 2})
	a.AddChild(child1, root)
	child2 := a.NewNode(Node{Indent: 2})
	a.AddChild(child2, root)
	grandchild := a.NewNode(Node{Indent: 4})
	a.AddChild(grandchild, child1)

	var pre, post []int
	a.Walk(root, func(id int) bool {
		pre = append(pre, id)
		return true
	}, func(id int) {
		post = append(post, id)
	})

	wantPre := []int{root, child1, grandchild, child2}
	if !intsEqual(pre, wantPre) {
		t.Errorf("pre-order = %v; want %v", pre, wantPre)
	}
	wantPost := []int{grandchild, child1, child2, root}
	if !intsEqual(post, wantPost) {
		t.Errorf("post-order = %v; want %v", post, wantPost)
	}
}

func TestArenaWalkSkipsChildrenWhenPreReturnsFalse(t *testing.T) {
	a := NewArena()
	root := a.NewNode(Node{Indent: 0})
	a.AddChild(root, 0)
	child := a.NewNode(Node{Indent: 2})
	a.AddChild(child, root)

	var visited []int
	a.Walk(root, func(id int) bool {
		visited = append(visited, id)
		return id != root
	}, nil)

	if want := []int{root}; !intsEqual(visited, want) {
		t.Errorf("visited = %v; want %v", visited, want)
	}
}

func intsEqual(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
