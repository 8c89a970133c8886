// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"reflect"
	"strings"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/staranto/arnlinkgo/internal/attrs"
	"github.com/staranto/arnlinkgo/internal/meta"
	"github.com/staranto/arnlinkgo/internal/output"
)

// ErrResolveFailed reports that one or more inputs could not be resolved.
// Per-input details have already been written to stderr by the time it is
// returned, so main only maps it to an exit code.
var ErrResolveFailed = errors.New("one or more inputs could not be resolved")

// ShortCircuitTLDR checks the --tldr flag and, if present, runs
// `tldr arnlink <subcmd>` and returns true so the caller can exit early.
// Without a tldr binary on PATH the built-in examples are shown instead.
func ShortCircuitTLDR(ctx context.Context, cmd *cli.Command, subcmd string, examples [][2]string) bool {
	if cmd.Bool("tldr") {
		if _, err := exec.LookPath("tldr"); err == nil {
			c := exec.CommandContext(ctx, "tldr", "arnlink", subcmd)
			c.Stdout = os.Stdout
			c.Stderr = os.Stderr
			_ = c.Run()
		} else {
			output.DumpExamples(ctx, cmd, examples)
		}
		return true
	}
	return false
}

// DumpSchemaIfRequested prints the schema for the provided type when
// --schema is set, and returns true if it handled the request.
func DumpSchemaIfRequested(cmd *cli.Command, t reflect.Type) bool {
	if cmd.Bool("schema") {
		output.DumpSchema("", t)
		return true
	}
	return false
}

// BuildAttrs constructs an AttrList with defaults and optional extras from
// --attrs, then applies the global transform spec.
func BuildAttrs(cmd *cli.Command, defaults ...string) (al attrs.AttrList) {
	//nolint:errcheck
	{
		for _, d := range defaults {
			al.Set(d)
		}
		if extras := cmd.String("attrs"); extras != "" {
			al.Set(extras)
		}
		al.SetGlobalTransformSpec()
	}
	return
}

// CollectInputs gathers ARNs from the command line and, with --stdin or a
// pipe, from stdin one per line.  Blank lines and #-comments are skipped.
func CollectInputs(cmd *cli.Command) ([]string, error) {
	inputs := append([]string{}, cmd.Args().Slice()...)

	useStdin := cmd.Bool("stdin")
	if !useStdin && len(inputs) == 0 {
		// A pipe with no positional args means stdin mode without the flag.
		useStdin = !term.IsTerminal(int(os.Stdin.Fd()))
	}

	if useStdin {
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line == "" || strings.HasPrefix(line, "#") {
				continue
			}
			inputs = append(inputs, line)
		}
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
	}

	return inputs, nil
}

// EmitRows marshals a slice of result rows under a "data" key and passes it
// to the common output routine.  The struct json tags become the keys of the
// document, which is what --attrs and --filter address.
func EmitRows(results any, al attrs.AttrList, cmd *cli.Command, post output.PostProcessor) error {
	doc := map[string]any{"data": results}
	jsonBytes, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	var raw bytes.Buffer
	raw.Write(jsonBytes)
	output.SliceDiceSpit(raw, al, cmd, "data", os.Stdout, post)
	return nil
}

// GetMeta returns the meta.Meta stored in the command's Metadata. If missing
// or of an unexpected type, it returns the zero value.
func GetMeta(cmd *cli.Command) meta.Meta {
	if cmd == nil || cmd.Metadata == nil {
		return meta.Meta{}
	}
	if m, ok := cmd.Metadata["meta"].(meta.Meta); ok {
		return m
	}
	return meta.Meta{}
}

// QueryCommandBuilder is a helper that constructs a cli.Command for query
// subcommands using a consistent pattern.  It accepts the command name, usage
// text, optional UsageText, custom flags, the action handler, and meta. The
// builder automatically wires metadata, adds tldr/schema flags, applies
// global flags, and sets up validators.
type QueryCommandBuilder struct {
	Name      string
	Usage     string
	UsageText string
	Flags     []cli.Flag
	Action    func(context.Context, *cli.Command) error
	Meta      meta.Meta
}

// Build returns a configured cli.Command from the builder.
func (qcb *QueryCommandBuilder) Build() *cli.Command {
	return &cli.Command{
		Name:      qcb.Name,
		Usage:     qcb.Usage,
		UsageText: qcb.UsageText,
		Metadata: map[string]any{
			"meta": qcb.Meta,
		},
		Flags: append(qcb.Flags, append([]cli.Flag{
			tldrFlag,
			schemaFlag,
		}, NewGlobalFlags(qcb.Name)...)...),
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			return ctx, GlobalFlagsValidator(ctx, c)
		},
		Action: qcb.Action,
	}
}

// QueryActionRunner[T] encapsulates the common query action pattern for the
// row-producing subcommands. It handles GetMeta, short-circuit checks,
// BuildAttrs, schema dumping, and output emission, with the row production
// provided by FetchFn.
type QueryActionRunner[T any] struct {
	CommandName  string
	SchemaType   reflect.Type
	DefaultAttrs []string
	Examples     [][2]string
	PostProcess  output.PostProcessor
	FetchFn      func(context.Context, *cli.Command) ([]T, error)
}

// Run executes the query action with the provided context and command.
func (qar *QueryActionRunner[T]) Run(
	ctx context.Context,
	cmd *cli.Command,
) error {
	// Step 1: GetMeta + debug.
	m := GetMeta(cmd)
	log.Debugf("Executing action for %v", m.Args[1:])

	// Step 2: Short-circuit checks.
	if ShortCircuitTLDR(ctx, cmd, qar.CommandName, qar.Examples) {
		return nil
	}
	if DumpSchemaIfRequested(cmd, qar.SchemaType) {
		return nil
	}

	// Step 3: BuildAttrs + debug.
	attrs := BuildAttrs(cmd, qar.DefaultAttrs...)
	log.Debugf("attrs: %v", attrs)

	// Step 4: Produce rows.  A resolve failure with partial results still
	// emits the rows that did resolve, then the error surfaces as the exit
	// code.
	results, err := qar.FetchFn(ctx, cmd)
	if err != nil && len(results) == 0 {
		return err
	}

	// Step 5: Emit + return.
	if emitErr := EmitRows(results, attrs, cmd, qar.PostProcess); emitErr != nil {
		return emitErr
	}
	return err
}
