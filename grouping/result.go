// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package grouping

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// Result - groups in the order their keys first appeared
type Result struct {
	keys   []string
	groups map[string][]string
	count  int // total tokens held in groups
}

func newResult(n int) *Result {
	return &Result{
		keys:   make([]string, 0, n),
		groups: make(map[string][]string, n),
	}
}

// caller must ensure the key is not already present
func (r *Result) add(key string, tokens []string) {
	group := make([]string, len(tokens))
	copy(group, tokens)
	r.keys = append(r.keys, key)
	r.groups[key] = group
	r.count += len(group)
}

// Len - number of keys
func (r *Result) Len() int {
	return len(r.keys)
}

// Keys - all keys in insertion order
func (r *Result) Keys() []string {
	keys := make([]string, len(r.keys))
	copy(keys, r.keys)
	return keys
}

// Has - check if a key is present
func (r *Result) Has(key string) bool {
	_, ok := r.groups[key]
	return ok
}

// Get - copy of the group for a key
func (r *Result) Get(key string) ([]string, bool) {
	group, ok := r.groups[key]
	if !ok {
		return nil, false
	}
	g := make([]string, len(group))
	copy(g, group)
	return g, true
}

// Default - tokens before the first key, nil if there were none
func (r *Result) Default() []string {
	group, _ := r.Get(DefaultKey)
	return group
}

// Each - call f for every key in insertion order
func (r *Result) Each(f func(key string, group []string)) {
	for _, key := range r.keys {
		group, _ := r.Get(key)
		f(key, group)
	}
}

// Tokens - rebuild a token sequence that parses back to this result
func (r *Result) Tokens() []string {
	tokens := make([]string, 0, len(r.keys)+r.count)
	for _, key := range r.keys {
		if DefaultKey != key {
			tokens = append(tokens, string(keyPrefix)+key)
		}
		tokens = append(tokens, r.groups[key]...)
	}
	return tokens
}

// MarshalJSON - encode as a JSON object with members in insertion order
func (r *Result) MarshalJSON() ([]byte, error) {
	buffer := bytes.Buffer{}
	buffer.WriteByte('{')
	for i, key := range r.keys {
		if 0 != i {
			buffer.WriteByte(',')
		}
		k, err := json.Marshal(key)
		if nil != err {
			return nil, err
		}
		v, err := json.Marshal(r.groups[key])
		if nil != err {
			return nil, err
		}
		buffer.Write(k)
		buffer.WriteByte(':')
		buffer.Write(v)
	}
	buffer.WriteByte('}')
	return buffer.Bytes(), nil
}

func (r *Result) String() string {
	s := make([]string, 0, len(r.keys))
	for _, key := range r.keys {
		s = append(s, fmt.Sprintf("%q:%q", key, r.groups[key]))
	}
	return "{" + strings.Join(s, " ") + "}"
}
