// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package aws

import (
	"context"

	"github.com/apex/log"
	"github.com/aws/aws-sdk-go-v2/config"
)

// options holds optional overrides for AWS config loading.
type options struct {
	profile string
}

// Option customizes how AWS config is loaded.
// Default behavior (no options) inherits the shell environment and shared
// config chain (AWS_PROFILE, ~/.aws/config, ~/.aws/credentials, etc.).
type Option func(*options)

// WithProfile sets the shared config profile. An empty profile defers to the
// AWS_PROFILE/env chain.
func WithProfile(profile string) Option {
	return func(o *options) { o.profile = profile }
}

// DefaultRegion resolves the region the shell's AWS setup would use, the
// same chain the aws CLI walks (env, profile, shared config files). It
// returns "" when nothing in the environment names one.
func DefaultRegion(ctx context.Context, opts ...Option) string {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	var loadOpts []func(*config.LoadOptions) error
	if o.profile != "" {
		loadOpts = append(loadOpts, config.WithSharedConfigProfile(o.profile))
	}

	cfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		log.Debugf("loading shared AWS config: %v", err)
		return ""
	}

	return cfg.Region
}
