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

// Package sanitize cleans raw attribute values before they're stored
// in a [go.haml.dev/haml.Attributes] map.
package sanitize

import (
	"strings"

	"go4.org/bytereplacer"
)

// apostropheReplacer strips apostrophes from attribute values, since
// this renderer always quotes attribute values with single quotes and
// an embedded apostrophe would otherwise prematurely close the quote.
var apostropheReplacer = bytereplacer.New("'", " ")

// Value sanitizes a raw attribute value: apostrophes become spaces,
// and the result is trimmed of surrounding whitespace.
func Value(raw string) string {
	return strings.TrimSpace(apostropheReplacer.Replace(raw))
}
