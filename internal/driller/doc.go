// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// Package driller extracts values from JSON documents by dotted path,
// with a forgiving syntax for array elements.
package driller
