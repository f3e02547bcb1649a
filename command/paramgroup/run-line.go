// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/urfave/cli"
)

func runLine(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	// the shell has already split a quoted line into separate arguments
	// if it was not quoted, so put it back together
	if c.NArg() > 0 {
		result, err := m.groupLine(strings.Join(c.Args(), " "))
		if nil != err {
			return err
		}
		return m.printResult(result)
	}

	return m.groupLines()
}

// group each line of the input, a bad line is reported and skipped
func (m *metadata) groupLines() error {

	scanner := bufio.NewScanner(m.r)

	lines := 0
	failed := 0
	for scanner.Scan() {
		lines += 1

		result, err := m.groupLine(scanner.Text())
		if nil != err {
			failed += 1
			fmt.Fprintf(m.e, "line: %d  error: %s\n", lines, err)
			continue
		}
		if err := m.printResult(result); nil != err {
			return err
		}
	}
	if err := scanner.Err(); nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "lines: %d  failed: %d\n", lines, failed)
	}
	if 0 != failed {
		return fmt.Errorf("%d of %d lines could not be grouped", failed, lines)
	}
	return nil
}
