// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Package console renders AWS web console URLs for ARNs.
//
// Coverage is a curated registry of services and the resource types the
// console has a stable deep link for. Everything is computed locally from
// the ARN itself; no AWS API is consulted.
package console
