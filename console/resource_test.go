// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package console

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitResource(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Resource
	}{
		{
			name: "bare id",
			in:   "my-pipeline",
			want: Resource{ID: "my-pipeline"},
		},
		{
			name: "type colon id",
			in:   "function:thumbnailer",
			want: Resource{Type: "function", ID: "thumbnailer"},
		},
		{
			name: "type colon id keeps later colons",
			in:   "layer:common-deps:3",
			want: Resource{Type: "layer", ID: "common-deps:3"},
		},
		{
			name: "type colon id keeps slashes",
			in:   "secret:prod/db/password-Ab12Cd",
			want: Resource{Type: "secret", ID: "prod/db/password-Ab12Cd"},
		},
		{
			name: "type slash id",
			in:   "table/orders",
			want: Resource{Type: "table", ID: "orders", HasPath: true},
		},
		{
			name: "type slash id keeps later slashes",
			in:   "service/prod/web",
			want: Resource{Type: "service", ID: "prod/web", HasPath: true},
		},
		{
			name: "leading slash dropped",
			in:   "/restapis/a1b2c3",
			want: Resource{Type: "restapis", ID: "a1b2c3", HasPath: true},
		},
		{
			name: "revision",
			in:   "task-definition/web:42",
			want: Resource{Type: "task-definition", ID: "web", Revision: "42", HasPath: true},
		},
		{
			name: "revision with empty type",
			in:   "/web:42",
			want: Resource{Type: "", ID: "web", Revision: "42", HasPath: true},
		},
		{
			name: "slash in id blocks revision layout",
			in:   "log-group:/aws/lambda/fn:*",
			want: Resource{Type: "log-group", ID: "/aws/lambda/fn:*"},
		},
		{
			name: "empty",
			in:   "",
			want: Resource{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitResource(tt.in))
		})
	}
}

func TestPathLast(t *testing.T) {
	tests := []struct {
		name string
		res  Resource
		want string
	}{
		{
			name: "no path",
			res:  Resource{ID: "prod-db"},
			want: "prod-db",
		},
		{
			name: "single segment path",
			res:  Resource{ID: "admins", HasPath: true},
			want: "admins",
		},
		{
			name: "multi segment path",
			res:  Resource{ID: "service-role/deploy-role", HasPath: true},
			want: "deploy-role",
		},
		{
			name: "slashes without path flag",
			res:  Resource{ID: "prod/db/password"},
			want: "prod/db/password",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.res.PathLast())
		})
	}
}
