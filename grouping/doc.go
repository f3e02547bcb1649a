// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package grouping - command-line parameter grouping
//
// Splits a flat token sequence into named groups:
//   value ...             - tokens before the first key, stored under ""
//   -key value ...        - stored under "key"
//   --key value ...       - stored under "-key" (only one dash is removed)
//   -key -other           - "key" has an empty group
//
// Note:
//   Any token starting with "-" begins a new group, there is no escape
//   for dash prefixed values.
//   A token of just "-" is an error.
//   Repeating a key is an error, groups are never merged.
//
// Returns:
//   *Result               - keys in order of first appearance, each
//                           with its []string group
package grouping
