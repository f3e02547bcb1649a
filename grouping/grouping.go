// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package grouping

import (
	"fmt"
	"strings"

	"github.com/bitmark-inc/paramgroup/fault"
)

// DefaultKey - the key of the group of tokens that precede the first key
const DefaultKey = ""

const (
	keyPrefix = '-'
	separator = " "
)

// KeyError - an invalid key token and its position in the input
type KeyError struct {
	Index int
	Token string
	Err   error
}

func (e *KeyError) Error() string {
	return fmt.Sprintf("%s: token[%d] = %q", e.Err, e.Index, e.Token)
}

// Unwrap - the underlying fault instance
func (e *KeyError) Unwrap() error {
	return e.Err
}

// ParseString - group a raw string
//
// the string is split on the space character only, runs of spaces are
// collapsed; tabs and other white space remain part of a token
func ParseString(raw string) (*Result, error) {
	if "" == strings.TrimSpace(raw) {
		return nil, fault.ErrBlankInput
	}

	fields := strings.Split(raw, separator)
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		if "" != f {
			tokens = append(tokens, f)
		}
	}
	return Parse(tokens)
}

// Parse - group tokens by key
//
// the input slice is not modified and the result does not share
// storage with it
func Parse(tokens []string) (*Result, error) {
	if 0 == len(tokens) {
		return nil, fault.ErrEmptyInput
	}

	result := newResult(len(tokens))

	first := nextKey(tokens, 0)
	if first < 0 {
		result.add(DefaultKey, tokens)
		return result, nil
	}
	if first > 0 {
		result.add(DefaultKey, tokens[:first])
	}

	for current := first; current >= 0; {
		next := nextKey(tokens, current+1)
		end := next
		if end < 0 {
			end = len(tokens)
		}

		name := tokens[current][1:]
		if "" == name {
			return nil, &KeyError{Index: current, Token: tokens[current], Err: fault.ErrBareDash}
		}
		if result.Has(name) {
			return nil, &KeyError{Index: current, Token: tokens[current], Err: fault.ErrDuplicateKey}
		}
		result.add(name, tokens[current+1:end])

		current = next
	}
	return result, nil
}

// IsKey - true if the token starts a new group
func IsKey(token string) bool {
	return "" != token && keyPrefix == token[0]
}

// index of the first key at or after start, -1 if none
func nextKey(tokens []string, start int) int {
	for i := start; i < len(tokens); i += 1 {
		if IsKey(tokens[i]) {
			return i
		}
	}
	return -1
}
