// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Package version exposes the build version stamped in at release time.
package version

// Version is replaced at build time via
// -ldflags "-X github.com/staranto/arnlinkgo/internal/version.Version=v1.2.3".
var Version = "dev"
