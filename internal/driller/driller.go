// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

package driller

import (
	"strings"

	"github.com/tidwall/gjson"
)

// Driller returns the value at the dotted path in json.  Two conveniences
// are layered on top of the plain gjson syntax.  Array elements can be
// addressed as key[0] as well as gjson's key.0.  And a single-element array
// is drilled through transparently, so items.id finds {"items": [{"id": x}]}
// without an explicit index.
func Driller(json string, path string) gjson.Result {
	path = strings.ReplaceAll(path, "[", ".")
	path = strings.ReplaceAll(path, "]", "")

	result := gjson.Parse(json)
	for _, key := range strings.Split(path, ".") {
		if key == "" {
			continue
		}
		if result.IsArray() && !isIndex(key) {
			if elements := result.Array(); len(elements) == 1 {
				result = elements[0]
			}
		}
		result = result.Get(key)
	}

	// A single-element array at the end of the path also collapses to its
	// element.
	if result.IsArray() {
		if elements := result.Array(); len(elements) == 1 {
			return elements[0]
		}
	}

	return result
}

func isIndex(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
