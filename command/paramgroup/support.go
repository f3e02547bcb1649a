// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/bitmark-inc/paramgroup/configuration"
	"github.com/bitmark-inc/paramgroup/fault"
	"github.com/bitmark-inc/paramgroup/grouping"
)

// group an argument vector, failures are logged and returned
func (m *metadata) groupTokens(tokens []string) (*grouping.Result, error) {
	m.log.Debugf("tokens: %q", tokens)

	result, err := grouping.Parse(tokens)
	if nil != err {
		m.log.Warnf("tokens: %q  error: %s", tokens, err)
		return nil, err
	}

	m.log.Debugf("result: %s", result)
	return result, nil
}

// group a raw line, failures are logged and returned
func (m *metadata) groupLine(raw string) (*grouping.Result, error) {
	m.log.Debugf("line: %q", raw)

	result, err := grouping.ParseString(raw)
	if nil != err {
		m.log.Warnf("line: %q  error: %s", raw, err)
		return nil, err
	}

	m.log.Debugf("result: %s", result)
	return result, nil
}

func (m *metadata) printResult(result *grouping.Result) error {
	if m.verbose {
		fmt.Fprintf(m.e, "keys: %d\n", result.Len())
	}

	switch m.config.Format {
	case configuration.FormatText:
		return printText(m.w, result)
	case configuration.FormatJSON:
		return printJson(m.w, result, m.config.Indent)
	default:
		return fault.ErrInvalidFormat
	}
}
