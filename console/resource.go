// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package console

import "strings"

// Resource is the service specific portion of an ARN split into its
// conventional pieces.
type Resource struct {
	Type     string
	ID       string
	Revision string
	HasPath  bool
}

// SplitResource breaks raw into type, id, and revision. Four layouts are
// tried in order, first match wins:
//
//	type/id:revision
//	type:id
//	[/]type/id
//	id
//
// In the first layout the id may not contain a slash; in the second the
// type may not. The id keeps any further separators, so ecs services come
// out as ("service", "cluster/name") and lambda qualifiers stay attached.
// HasPath records whether a slash separated the type from the id.
func SplitResource(raw string) Resource {
	if slash := strings.IndexByte(raw, '/'); slash >= 0 {
		rest := raw[slash+1:]
		if stop := strings.IndexAny(rest, ":/"); stop >= 0 && rest[stop] == ':' {
			return Resource{
				Type:     raw[:slash],
				ID:       rest[:stop],
				Revision: rest[stop+1:],
				HasPath:  true,
			}
		}
	}

	if stop := strings.IndexAny(raw, ":/"); stop >= 0 && raw[stop] == ':' {
		return Resource{Type: raw[:stop], ID: raw[stop+1:]}
	}

	trimmed := strings.TrimPrefix(raw, "/")
	if slash := strings.IndexByte(trimmed, '/'); slash >= 0 {
		return Resource{Type: trimmed[:slash], ID: trimmed[slash+1:], HasPath: true}
	}

	return Resource{ID: raw}
}

// PathLast returns the last path segment of the id for path style
// resources, and the id unchanged otherwise. IAM labels roles and groups
// by this segment regardless of their path.
func (r Resource) PathLast() string {
	if !r.HasPath {
		return r.ID
	}
	if i := strings.LastIndexByte(r.ID, '/'); i >= 0 {
		return r.ID[i+1:]
	}
	return r.ID
}
