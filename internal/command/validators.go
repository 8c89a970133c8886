// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

package command

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/urfave/cli/v3"
)

func GlobalFlagsValidator(ctx context.Context, c *cli.Command) error {
	return nil
}

type FlagValidatorType func(any) error

func FlagValidators(value any, validators ...FlagValidatorType) error {
	for _, v := range validators {
		if err := v(value); err != nil {
			return err
		}
	}
	return nil
}

// JammedFlagValidator verifies that the arg following a flag does not begin
// with '--'.  urfave/cli allows this and I don't see how to turn it off.
func JammedFlagValidator(value any) error {
	s, _ := value.(string)
	if strings.HasPrefix(s, "--") {
		return errors.New("must not begin with '--'")
	}
	return nil
}

var validOutputs = []string{"text", "json", "raw", "yaml"}

func OutputValidator(value any) error {
	s, _ := value.(string)
	if !slices.Contains(validOutputs, s) {
		return fmt.Errorf("must be one of %v", validOutputs)
	}
	return nil
}

// RegionValidator rejects values that could not be a region.  The region
// ends up as a label in the console hostname, so it gets the same strict
// charset the parser applies: lowercase letters, digits and dashes.
func RegionValidator(value any) error {
	s, _ := value.(string)
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'a' && c <= 'z':
		case c >= '0' && c <= '9':
		case c == '-':
		default:
			return fmt.Errorf("%q is not a region", s)
		}
	}
	return nil
}
