// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

package command

import (
	"context"
	"reflect"

	"github.com/urfave/cli/v3"

	"github.com/staranto/arnlinkgo/console"
	"github.com/staranto/arnlinkgo/internal/meta"
)

// ServiceRow is one service and resource type pair in the emitted dataset.
// An untyped resource layout has an empty Type.
type ServiceRow struct {
	Service string `json:"service" schema:"attr,service"`
	Type    string `json:"type"    schema:"attr,type"`
}

var servicesExamples = [][2]string{
	{"arnlink services", "All supported services and resource types"},
	{"arnlink services -f service=ec2", "Only the EC2 resource types"},
	{"arnlink services -o json", "The support matrix as JSON"},
}

// ServicesCommandAction is the action handler for the "services" subcommand.
// It lists the services and resource types the console registry can build
// links for, and emits results per common flags.
func ServicesCommandAction(ctx context.Context, cmd *cli.Command) error {
	runner := &QueryActionRunner[ServiceRow]{
		CommandName:  "services",
		SchemaType:   reflect.TypeOf(ServiceRow{}),
		DefaultAttrs: []string{".service", "type"},
		Examples:     servicesExamples,
		FetchFn: func(ctx context.Context, cmd *cli.Command) ([]ServiceRow, error) {
			var rows []ServiceRow
			for _, service := range console.Services() {
				for _, resourceType := range console.ResourceTypes(service) {
					rows = append(rows, ServiceRow{Service: service, Type: resourceType})
				}
			}
			return rows, nil
		},
	}
	return runner.Run(ctx, cmd)
}

// ServicesCommandBuilder constructs the cli.Command for "services",
// configuring metadata, flags, and the associated action.
func ServicesCommandBuilder(cmd *cli.Command, meta meta.Meta) *cli.Command {
	return (&QueryCommandBuilder{
		Name:      "services",
		Usage:     "supported services and resource types",
		UsageText: `arnlink services [options]`,
		Action:    ServicesCommandAction,
		Meta:      meta,
	}).Build()
}
