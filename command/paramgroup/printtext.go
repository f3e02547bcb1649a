// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/bitmark-inc/paramgroup/grouping"
)

// label used in place of the empty default key
const defaultLabel = "(default)"

// one line per key:  key: value value ...
func printText(handle io.Writer, result *grouping.Result) error {
	var err error
	result.Each(func(key string, group []string) {
		if nil != err {
			return
		}
		_, err = fmt.Fprintln(handle, textLine(key, group))
	})
	return err
}

func printKeysText(handle io.Writer, keys []string) error {
	for _, key := range keys {
		if _, err := fmt.Fprintln(handle, keyLabel(key)); nil != err {
			return err
		}
	}
	return nil
}

func textLine(key string, group []string) string {
	s := make([]string, 0, len(group)+1)
	s = append(s, keyLabel(key)+":")
	for _, value := range group {
		s = append(s, quoteValue(value))
	}
	return strings.Join(s, " ")
}

func keyLabel(key string) string {
	if grouping.DefaultKey == key {
		return defaultLabel
	}
	return key
}

// empty values and values with white space or quotes are quoted so the
// line can be read back unambiguously
func quoteValue(value string) string {
	if "" == value || strings.ContainsAny(value, " \t\r\n\"") {
		return strconv.Quote(value)
	}
	return value
}
