// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

package output

import (
	"sort"
	"strings"
)

// SortDataset sorts the result set in place per the --sort spec.  The spec is
// a comma separated list of output keys.  A leading - sorts that key
// descending and a leading ! compares it case-sensitively.  String compares
// are case-insensitive otherwise.  An empty spec leaves the dataset alone.
func SortDataset(dataset []map[string]interface{}, spec string) {
	if spec == "" {
		return
	}

	type sortKey struct {
		key        string
		descending bool
		sensitive  bool
	}

	//nolint:prealloc
	var keys []sortKey
	for _, k := range strings.Split(spec, ",") {
		k = strings.TrimSpace(k)

		sk := sortKey{}
		for {
			if strings.HasPrefix(k, "-") {
				sk.descending = true
				k = k[1:]
				continue
			}
			if strings.HasPrefix(k, "!") {
				sk.sensitive = true
				k = k[1:]
				continue
			}
			break
		}

		if k == "" {
			continue
		}
		sk.key = k
		keys = append(keys, sk)
	}

	if len(keys) == 0 {
		return
	}

	sort.SliceStable(dataset, func(i, j int) bool {
		for _, sk := range keys {
			c := compareValues(dataset[i][sk.key], dataset[j][sk.key], sk.sensitive)
			if c == 0 {
				continue
			}
			if sk.descending {
				return c > 0
			}
			return c < 0
		}
		return false
	})
}

// compareValues orders two row values.  Numbers compare numerically, nils
// sort first and everything else falls back to its string form.
func compareValues(a interface{}, b interface{}, sensitive bool) int {
	if a == nil || b == nil {
		switch {
		case a == nil && b == nil:
			return 0
		case a == nil:
			return -1
		default:
			return 1
		}
	}

	if an, ok := asFloat(a); ok {
		if bn, ok := asFloat(b); ok {
			switch {
			case an < bn:
				return -1
			case an > bn:
				return 1
			default:
				return 0
			}
		}
	}

	as := InterfaceToString(a)
	bs := InterfaceToString(b)
	if !sensitive {
		as = strings.ToLower(as)
		bs = strings.ToLower(bs)
	}
	return strings.Compare(as, bs)
}

func asFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}
