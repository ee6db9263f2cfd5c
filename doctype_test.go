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

func TestDoctypeString(t *testing.T) {
	tests := []struct {
		name   string
		format Format
		spec   string
		want   string
	}{
		{"HTML5Bare", HTML5, "", html5Doctype},
		{"HTML5IgnoresSpec", HTML5, "Strict", html5Doctype},
		{"XHTMLDefaultIsTransitional", XHTML, "", xhtmlTransitionalDoctype},
		{"XHTMLStrict", XHTML, "Strict", xhtmlStrictDoctype},
		{"XHTMLFive", XHTML, "5", html5Doctype},
		{"HTML4DefaultIsTransitional", HTML4, "", html4TransitionalDoctype},
		{"HTML4Strict", HTML4, "Strict", html4StrictDoctype},
		{"XMLPrologIgnoresFormat", XHTML, "XML", xmlProlog},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := doctypeString(test.format, test.spec); got != test.want {
				t.Errorf("doctypeString(%v, %q) = %q; want %q", test.format, test.spec, got, test.want)
			}
		})
	}
}
