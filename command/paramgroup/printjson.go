// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"io"
)

// an empty indent gives compact single line output
func printJson(handle io.Writer, message interface{}, indent string) error {

	var b []byte
	var err error
	if "" == indent {
		b, err = json.Marshal(message)
	} else {
		b, err = json.MarshalIndent(message, "", indent)
	}
	if nil != err {
		return err
	}

	fmt.Fprintf(handle, "%s\n", b)
	return nil
}
