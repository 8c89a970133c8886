// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// Package aws resolves settings from the ambient AWS environment, most
// notably the default region applied to ARNs that omit one.
package aws
