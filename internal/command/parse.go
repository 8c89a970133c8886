// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"errors"
	"fmt"
	"os"
	"reflect"
	"strings"

	altsrc "github.com/urfave/cli-altsrc/v3"
	yaml "github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"

	"github.com/staranto/arnlinkgo/arn"
	"github.com/staranto/arnlinkgo/console"
	"github.com/staranto/arnlinkgo/internal/aws"
	"github.com/staranto/arnlinkgo/internal/meta"
)

// ParseRow is one parsed input in the emitted dataset.
type ParseRow struct {
	ARN       string      `json:"arn"            schema:"attr,arn"`
	Partition string      `json:"partition"      schema:"attr,partition"`
	Service   string      `json:"service"        schema:"attr,service"`
	Region    string      `json:"region"         schema:"attr,region"`
	Account   string      `json:"account"        schema:"attr,account"`
	Resource  ResourceRow `json:"resource"       schema:"attr,resource"`
	Link      string      `json:"link,omitempty" schema:"attr,link"`
}

// ResourceRow is the split resource portion of a ParseRow.
type ResourceRow struct {
	Type     string `json:"type"               schema:"attr,type"`
	ID       string `json:"id"                 schema:"attr,id"`
	Revision string `json:"revision,omitempty" schema:"attr,revision"`
	HasPath  bool   `json:"haspath"            schema:"attr,haspath"`
}

var parseExamples = [][2]string{
	{"arnlink parse arn:aws:s3:::my-bucket", "Break an ARN into its parts"},
	{"arnlink parse -o json -f service=lambda $(cat arns.txt)", "Only the Lambda rows, as JSON"},
	{"arnlink parse --chop -t -s service,region", "Sorted table with the common ARN prefix chopped"},
	{"arnlink parse -a resource.revision:rev arn:aws:ecs:us-east-1:123456789012:task-definition/web:3", "Pull a nested attribute into the row"},
}

// ParseCommandAction is the action handler for the "parse" subcommand. It
// breaks each input ARN into its component fields, attaches a console link
// when one can be built, and emits results per common flags.
func ParseCommandAction(ctx context.Context, cmd *cli.Command) error {
	runner := &QueryActionRunner[ParseRow]{
		CommandName: "parse",
		SchemaType:  reflect.TypeOf(ParseRow{}),
		DefaultAttrs: []string{
			".arn",
			"service",
			"region",
			"account",
			"resource.type:type",
			"resource.id:id",
		},
		Examples: parseExamples,
		PostProcess: func(dataset []map[string]interface{}) error {
			if cmd.Bool("chop") {
				chopPrefix(dataset, "arn", ":")
			}
			return nil
		},
		FetchFn: func(ctx context.Context, cmd *cli.Command) ([]ParseRow, error) {
			inputs, err := CollectInputs(cmd)
			if err != nil {
				return nil, err
			}
			if len(inputs) == 0 {
				return nil, errors.New("no ARNs given")
			}

			region := cmd.String("region")
			if region == "" {
				// Fall back to whatever region the shell's AWS setup would use.
				region = aws.DefaultRegion(ctx, aws.WithProfile(cmd.String("profile")))
			}
			quiet := cmd.Bool("quiet")

			var rows []ParseRow
			failed := false
			for _, input := range inputs {
				row, err := buildParseRow(input, region)
				if err != nil {
					failed = true
					if !quiet {
						fmt.Fprintf(os.Stderr, "arnlink: %q: %v\n", input, err)
					}
					continue
				}
				rows = append(rows, row)
			}

			if failed {
				return rows, ErrResolveFailed
			}
			return rows, nil
		},
	}
	return runner.Run(ctx, cmd)
}

// buildParseRow parses one input into its row form.  An ARN that omits its
// region picks up the fallback before the resource is split.
func buildParseRow(input string, region string) (ParseRow, error) {
	a, err := arn.Parse(input)
	if err != nil {
		return ParseRow{}, err
	}

	if a.Region == "" && region != "" {
		a.Region = region
	}

	r := console.SplitResource(a.Resource)
	row := ParseRow{
		ARN:       a.String(),
		Partition: a.Partition,
		Service:   a.Service,
		Region:    a.Region,
		Account:   a.AccountID,
		Resource: ResourceRow{
			Type:     r.Type,
			ID:       r.ID,
			Revision: r.Revision,
			HasPath:  r.HasPath,
		},
	}

	// A console link rides along when one can be built.  An ARN for a service
	// the console registry doesn't know is still a successful parse.
	if link, linkErr := console.Link(a); linkErr == nil {
		row.Link = link
	}

	return row, nil
}

// ParseCommandBuilder constructs the cli.Command for "parse", configuring
// metadata, flags, and the associated action.
func ParseCommandBuilder(cmd *cli.Command, meta meta.Meta) *cli.Command {
	return (&QueryCommandBuilder{
		Name:      "parse",
		Usage:     "parse ARNs into their parts",
		UsageText: `arnlink parse [ARN ...] [options]`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "chop",
				Usage: "chop the common ARN prefix from rows",
				Sources: cli.NewValueSourceChain(
					yaml.YAML("parse.chop", altsrc.StringSourcer(meta.Config.Source)),
				),
				Value: false,
			},
			NewRegionFlag("parse", meta.Config.Source),
			profileFlag,
			quietFlag,
			stdinFlag,
		},
		Action: ParseCommandAction,
		Meta:   meta,
	}).Build()
}

// chopPrefix finds common leading sep-delimited segments in the
// given attribute of dataset values. If at least 50% of entries share
// at least 2 common leading segments, those segments (and the trailing
// separator) are removed and replaced with "..".
func chopPrefix(dataset []map[string]interface{}, attribute string, sep string) {
	if len(dataset) == 0 {
		return
	}

	// Collect all attribute values with their indices.
	type attributeEntry struct {
		idx   int
		value string
	}
	var attributeValues []attributeEntry
	for i, entry := range dataset {
		if val, ok := entry[attribute]; ok {
			if str, ok := val.(string); ok {
				attributeValues = append(attributeValues, attributeEntry{idx: i, value: str})
			}
		}
	}

	if len(attributeValues) == 0 {
		return
	}

	// Calculate the 50% threshold.
	threshold := (len(attributeValues) + 1) / 2

	// Split each value by the separator and find common leading segments.
	type segmentedValue struct {
		idx      int
		value    string
		segments []string
	}
	var segmented []segmentedValue
	maxSegments := 0
	for _, av := range attributeValues {
		segs := strings.Split(av.value, sep)
		segmented = append(segmented, segmentedValue{idx: av.idx, value: av.value, segments: segs})
		if len(segs) > maxSegments {
			maxSegments = len(segs)
		}
	}

	// Find the longest common prefix of segments that appears in at least 50%.
	var commonSegments []string
	for segIdx := 0; segIdx < maxSegments; segIdx++ {
		// Count how many values have a segment at this position and what it is.
		segmentCounts := make(map[string]int)
		for _, sv := range segmented {
			if segIdx < len(sv.segments) {
				segmentCounts[sv.segments[segIdx]]++
			}
		}

		// Find the most common segment at this position.
		var bestSegment string
		var bestCount int
		for seg, count := range segmentCounts {
			if count > bestCount {
				bestSegment = seg
				bestCount = count
			}
		}

		// If this segment appears in at least 50% of values, add it to common.
		if bestCount >= threshold {
			commonSegments = append(commonSegments, bestSegment)
		} else {
			break // Stop if we can't maintain the 50% threshold.
		}
	}

	// If we have at least 2 common segments, strip them from matching entries.
	if len(commonSegments) >= 2 {
		prefixToRemove := strings.Join(commonSegments, sep) + sep
		for _, sv := range segmented {
			if strings.HasPrefix(sv.value, prefixToRemove) {
				dataset[sv.idx][attribute] = ".." + sv.value[len(prefixToRemove):]
			}
		}
	}
}
