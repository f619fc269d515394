// Copyright (c) 2022, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ordmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMap(t *testing.T) {
	om := New[string, int]()
	om.Add("key0", 0)
	om.Add("key1", 1)
	om.Add("key2", 2)
	assert.Equal(t, 3, om.Len())
	assert.Equal(t, []string{"key0", "key1", "key2"}, om.Keys())

	om.Add("key1", 10)
	assert.Equal(t, 3, om.Len())
	v, ok := om.ValueByKeyTry("key1")
	assert.True(t, ok)
	assert.Equal(t, 10, v)
	_, ok = om.ValueByKeyTry("missing")
	assert.False(t, ok)

	om.Reset()
	assert.Equal(t, 0, om.Len())
	om.Add("a", 1)
	assert.Equal(t, "[{a 1}]", om.String())

	var nilMap *Map[int, int]
	assert.Equal(t, 0, nilMap.Len())
}
