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

const (
	html5Doctype = "<!DOCTYPE html>"

	xhtmlTransitionalDoctype = `<!DOCTYPE html PUBLIC "-//W3C//DTD XHTML 1.0 Transitional//EN" "http://www.w3.org/TR/xhtml1/DTD/xhtml1-transitional.dtd">`
	xhtmlStrictDoctype       = `<!DOCTYPE html PUBLIC "-//W3C//DTD XHTML 1.0 Strict//EN" "http://www.w3.org/TR/xhtml1/DTD/xhtml1-strict.dtd">`

	html4TransitionalDoctype = `<!DOCTYPE HTML PUBLIC "-//W3C//DTD HTML 4.01 Transitional//EN" "http://www.w3.org/TR/html4/loose.dtd">`
	html4StrictDoctype       = `<!DOCTYPE HTML PUBLIC "-//W3C//DTD HTML 4.01//EN" "http://www.w3.org/TR/html4/strict.dtd">`

	xmlProlog = `<?xml version='1.0' encoding='utf-8' ?>`
)

// doctypeString renders a Doctype node's specifier under format.
func doctypeString(format Format, spec string) string {
	if spec == "XML" {
		return xmlProlog
	}
	switch format {
	case HTML5:
		return html5Doctype
	case XHTML:
		switch spec {
		case "Strict":
			return xhtmlStrictDoctype
		case "5":
			return html5Doctype
		default:
			return xhtmlTransitionalDoctype
		}
	case HTML4:
		switch spec {
		case "Strict":
			return html4StrictDoctype
		default:
			return html4TransitionalDoctype
		}
	default:
		return html5Doctype
	}
}
