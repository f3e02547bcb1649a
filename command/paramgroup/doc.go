// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Group command-line tokens by key and print the result
//
// e.g. group an argument vector:
//
//   paramgroup args in1 in2 -out result.txt --level 3
//
// or group raw lines, one result per input line:
//
//   paramgroup --format=text line < commands.txt
package main
