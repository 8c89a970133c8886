// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT
// no-cloc

package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJammedFlagValidator(t *testing.T) {
	assert.NoError(t, JammedFlagValidator("service=s3"))
	assert.NoError(t, JammedFlagValidator(""))
	assert.Error(t, JammedFlagValidator("--filter"))
}

func TestOutputValidator(t *testing.T) {
	for _, v := range []string{"text", "json", "raw", "yaml"} {
		assert.NoError(t, OutputValidator(v), v)
	}
	assert.Error(t, OutputValidator("xml"))
	assert.Error(t, OutputValidator("TEXT"))
	assert.Error(t, OutputValidator(""))
}

func TestRegionValidator(t *testing.T) {
	tests := []struct {
		value string
		ok    bool
	}{
		{value: "us-east-1", ok: true},
		{value: "eu-central-1", ok: true},
		{value: "us-gov-west-1", ok: true},
		// Unset flags come through as the empty string.
		{value: "", ok: true},
		{value: "US-EAST-1", ok: false},
		{value: "us_east_1", ok: false},
		{value: "us.east.1", ok: false},
		{value: "us east 1", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			err := RegionValidator(tt.value)
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestFlagValidators_FirstErrorWins(t *testing.T) {
	err := FlagValidators("--output",
		JammedFlagValidator,
		func(any) error { t.Fatal("second validator ran"); return nil })
	assert.Error(t, err)
}
