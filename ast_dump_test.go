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

func TestToAST(t *testing.T) {
	got, err := ToAST("%div.box\n  %span hi")
	if err != nil {
		t.Fatal(err)
	}
	want := "Element:div class=\"box\"\n  Element:span text=\"hi\""
	if got != want {
		t.Errorf("ToAST =\n%s\nwant\n%s", got, want)
	}
}

func TestToASTComment(t *testing.T) {
	got, err := ToAST("/ note")
	if err != nil {
		t.Fatal(err)
	}
	want := `Comment:"note"`
	if got != want {
		t.Errorf("ToAST = %q; want %q", got, want)
	}
}

func TestToASTSelfClose(t *testing.T) {
	got, err := ToAST("%br/")
	if err != nil {
		t.Fatal(err)
	}
	want := "Element:br /"
	if got != want {
		t.Errorf("ToAST = %q; want %q", got, want)
	}
}
