// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Package arn parses and validates Amazon Resource Names.
//
// Parsing is strict about shape and charset but makes no attempt to verify
// that a partition, service, or resource actually exists.
package arn
