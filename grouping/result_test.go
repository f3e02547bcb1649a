// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package grouping_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/paramgroup/grouping"
)

func TestResultAccessors(t *testing.T) {
	result, err := grouping.Parse([]string{"a", "b", "-z", "1", "-y", "-x", "2", "3"})
	assert.Nil(t, err, "parse error")

	assert.Equal(t, 4, result.Len(), "wrong length")
	assert.Equal(t, []string{"", "z", "y", "x"}, result.Keys(), "wrong key order")
	assert.Equal(t, []string{"a", "b"}, result.Default(), "wrong default")
	assert.True(t, result.Has("y"), "missing y")
	assert.False(t, result.Has("w"), "unexpected w")

	group, ok := result.Get("y")
	assert.True(t, ok, "y not found")
	assert.Equal(t, []string{}, group, "y not empty")

	group, ok = result.Get("w")
	assert.False(t, ok, "w found")
	assert.Nil(t, group, "w group")

	// returned slices are copies
	keys := result.Keys()
	keys[0] = "changed"
	group, _ = result.Get("x")
	group[0] = "changed"
	assert.Equal(t, []string{"", "z", "y", "x"}, result.Keys(), "keys modified")
	group, _ = result.Get("x")
	assert.Equal(t, []string{"2", "3"}, group, "group modified")
}

func TestResultNoDefault(t *testing.T) {
	result, err := grouping.Parse([]string{"-key", "value"})
	assert.Nil(t, err, "parse error")
	assert.False(t, result.Has(grouping.DefaultKey), "default present")
	assert.Nil(t, result.Default(), "default group")
}

func TestResultTokensRoundTrip(t *testing.T) {
	inputs := [][]string{
		{"only", "values"},
		{"-key"},
		{"--key", "value"},
		{"d1", "d2", "-a", "1", "-b", "-c", "3", "4"},
		{"", "-x", " ", "\t"},
		{"---deep", "-shallow", "v"},
	}

	for i, in := range inputs {
		result, err := grouping.Parse(in)
		if nil != err {
			t.Errorf("%d: input: %q  error: %s", i, in, err)
			continue
		}
		assert.Equal(t, in, result.Tokens(), "%d: round trip", i)

		again, err := grouping.Parse(result.Tokens())
		assert.Nil(t, err, "%d: reparse", i)
		assert.Equal(t, result.Keys(), again.Keys(), "%d: reparsed keys", i)
	}
}

func TestResultJSON(t *testing.T) {
	result, err := grouping.ParseString("d -zeta 1 2 -alpha -mid x")
	assert.Nil(t, err, "parse error")

	b, err := json.Marshal(result)
	assert.Nil(t, err, "marshal error")
	assert.Equal(t, `{"":["d"],"zeta":["1","2"],"alpha":[],"mid":["x"]}`, string(b), "wrong JSON")

	b, err = json.MarshalIndent(result, "", "  ")
	assert.Nil(t, err, "marshal indent error")
	expected := `{
  "": [
    "d"
  ],
  "zeta": [
    "1",
    "2"
  ],
  "alpha": [],
  "mid": [
    "x"
  ]
}`
	assert.Equal(t, expected, string(b), "wrong indented JSON")
}

func TestResultString(t *testing.T) {
	result, err := grouping.Parse([]string{"d", "-k", "v"})
	assert.Nil(t, err, "parse error")
	assert.Equal(t, `{"":["d"] "k":["v"]}`, result.String(), "wrong string")
}
