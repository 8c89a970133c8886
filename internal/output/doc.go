// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// Package output provides sorting, rendering, and schema utilities used by
// commands to present results in various formats.
package output
