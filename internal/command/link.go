// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"errors"
	"fmt"
	"os"
	"reflect"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/staranto/arnlinkgo/arn"
	"github.com/staranto/arnlinkgo/console"
	"github.com/staranto/arnlinkgo/internal/aws"
	"github.com/staranto/arnlinkgo/internal/config"
	"github.com/staranto/arnlinkgo/internal/meta"
)

// LinkRow is one resolved input in the emitted dataset.
type LinkRow struct {
	ARN  string `json:"arn"  schema:"attr,arn"`
	Link string `json:"link" schema:"attr,link"`
}

var linkExamples = [][2]string{
	{"arnlink link arn:aws:s3:::my-bucket", "Console link for an S3 bucket"},
	{"arnlink arn:aws:lambda:us-east-1:123456789012:function:orders", "link is the default command"},
	{"cat arns.txt | arnlink link -o json", "Resolve a list from stdin as JSON"},
	{"arnlink link -r us-west-2 arn:aws:ec2:::vpc/vpc-0a1b2c", "Fill in a missing region"},
}

// LinkCommandAction is the action handler for the "link" subcommand. It
// resolves each input ARN to its console URL, supports --tldr/--schema
// short-circuits, and emits results per common flags.  Inputs that fail to
// resolve are reported to stderr and the action returns ErrResolveFailed
// after the good rows have been emitted.
func LinkCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("Executing action for %v", m.Args[1:])

	// Bail out early if we're just dumping tldr.
	if ShortCircuitTLDR(ctx, cmd, "link", linkExamples) {
		return nil
	}

	// Bail out early if we're just dumping the schema.
	if DumpSchemaIfRequested(cmd, reflect.TypeOf(LinkRow{})) {
		return nil
	}

	config.Config.Namespace = "link"

	attrs := BuildAttrs(cmd, ".arn", "link")
	log.Debugf("attrs: %v", attrs)

	inputs, err := CollectInputs(cmd)
	if err != nil {
		return err
	}
	if len(inputs) == 0 {
		return errors.New("no ARNs given")
	}

	region := cmd.String("region")
	if region == "" {
		// Fall back to whatever region the shell's AWS setup would use.
		region = aws.DefaultRegion(ctx, aws.WithProfile(cmd.String("profile")))
	}
	quiet := cmd.Bool("quiet")

	// The default text output streams one URL per line, which is what shell
	// pipelines want.  The structured outputs go through the common slice and
	// dice machinery instead.
	textMode := cmd.String("output") == "text"

	var rows []LinkRow
	failed := false
	for _, input := range inputs {
		row, err := resolveLink(input, region)
		if err != nil {
			failed = true
			if !quiet {
				fmt.Fprintf(os.Stderr, "arnlink: %q: %v\n", input, err)
			}
			continue
		}

		if textMode {
			fmt.Fprintln(os.Stdout, row.Link)
			continue
		}
		rows = append(rows, row)
	}

	if !textMode {
		if err := EmitRows(rows, attrs, cmd, nil); err != nil {
			return err
		}
	}

	if failed {
		return ErrResolveFailed
	}
	return nil
}

// resolveLink parses one input and builds its console link.  An ARN that
// omits its region picks up the fallback before the link is built.
func resolveLink(input string, region string) (LinkRow, error) {
	a, err := arn.Parse(input)
	if err != nil {
		return LinkRow{}, err
	}

	if a.Region == "" && region != "" {
		a.Region = region
	}

	link, err := console.Link(a)
	if err != nil {
		return LinkRow{}, err
	}

	return LinkRow{ARN: a.String(), Link: link}, nil
}

// LinkCommandBuilder constructs the cli.Command for "link", wiring metadata,
// flags, and action/validator handlers.
func LinkCommandBuilder(cmd *cli.Command, meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "link",
		Usage:     "console link for ARNs",
		UsageText: `arnlink link [ARN ...] [options]`,
		Metadata: map[string]any{
			"meta": meta,
		},
		Flags: append([]cli.Flag{
			NewRegionFlag("link", meta.Config.Source),
			profileFlag,
			quietFlag,
			stdinFlag,
			tldrFlag,
			schemaFlag,
		}, NewGlobalFlags("link")...),
		Action: func(ctx context.Context, c *cli.Command) error {
			if err := LinkCommandValidator(ctx, c); err != nil {
				return err
			}
			return LinkCommandAction(ctx, c)
		},
	}
}

// LinkCommandValidator performs validation for "link" and delegates to
// GlobalFlagsValidator.
func LinkCommandValidator(ctx context.Context, cmd *cli.Command) error {
	return GlobalFlagsValidator(ctx, cmd)
}
