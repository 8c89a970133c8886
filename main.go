// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/apex/log"
	"golang.org/x/term"

	"github.com/staranto/arnlinkgo/internal/command"
	"github.com/staranto/arnlinkgo/internal/config"
	mylog "github.com/staranto/arnlinkgo/internal/log"
	"github.com/staranto/arnlinkgo/internal/version"
)

var ctx = context.Background()

func main() {
	os.Exit(realMain())
}

func realMain() int {
	mylog.InitLogger()

	args := os.Args

	if len(args) < 2 {
		// A bare pipe with no command at all still means link.
		if !term.IsTerminal(int(os.Stdin.Fd())) {
			args = append(args, "link")
		} else {
			fmt.Fprintln(os.Stderr, "No command specified.")
			args = append(args, "--help")
		}
	} else {
		args = mangleArguments(args)
	}

	// Short-circuit --version/-v.
	for _, a := range args {
		if a == "--version" || a == "-v" {
			fmt.Println(version.Version)
			return 0
		}
	}

	app, err := command.InitApp(ctx, args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	if err := app.Run(ctx, args); err != nil {
		// Resolve failures have already been reported input by input.
		if errors.Is(err, command.ErrResolveFailed) {
			return 1
		}
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	return 0
}

func mangleArguments(args []string) []string {
	// The first arg after the binary is expected to be a subcommand.  Anything
	// else that isn't a flag (an ARN, usually) implies link.
	if !isCommand(args[1]) && !strings.HasPrefix(args[1], "-") {
		args = append([]string{args[0], "link"}, args[1:]...)
	}

	// We know the first two args are going to be the executable and command.
	preamble := make([]string, 2)
	copy(preamble, args[:2])

	// Short-circuit for --help/-h. If help is requested, just keep the preamble
	// and add --help flag.
	for _, a := range args {
		if a == "--help" || a == "-h" {
			return append(preamble, "--help")
		}
	}

	defaultSet := "@defaults"

	// Scan through the args. If there is no @set, just use it and ignore this
	// default.
	for _, a := range args {
		if strings.HasPrefix(a, "@") {
			defaultSet = ""
			break
		}
	}

	// Now combine them back together.
	workingArgs := preamble
	if defaultSet != "" {
		workingArgs = append(workingArgs, defaultSet)
	}

	if len(args) > 2 {
		workingArgs = append(workingArgs, args[2:]...)
	}

	args = workingArgs

	// Now scan through args and find the @set. It becomes the insertion point
	// and the @set entry is removed from args.
	idx := 2
	set := "defaults"
	for i, a := range args[idx:] {
		if strings.HasPrefix(a, "@") {
			set = a[1:]
			idx += i
			args = append(args[:idx], args[idx+1:]...)
			break
		}
	}

	setArgs, _ := config.GetStringSlice(args[1] + "." + set)
	for _, arg := range setArgs {
		parts := strings.Fields(arg)
		args = append(args[:idx], append(parts, args[idx:]...)...)
		idx += len(parts)
	}

	log.Debugf("idx=%d, set=%s, args=%v", idx, set, args)
	return args
}

// isCommand reports whether arg names one of the arnlink subcommands.
func isCommand(arg string) bool {
	switch arg {
	case "link", "parse", "services", "completion", "help":
		return true
	}
	return false
}
