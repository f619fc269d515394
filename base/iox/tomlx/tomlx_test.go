// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tomlx

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testStruct struct {
	Name  string
	Slots int
	On    bool
}

func TestSaveOpen(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "test.toml")
	in := &testStruct{Name: "frame", Slots: 4, On: true}
	require.NoError(t, Save(in, fn))

	out := &testStruct{}
	require.NoError(t, Open(out, fn))
	assert.Equal(t, in, out)

	assert.Error(t, Open(out, filepath.Join(t.TempDir(), "missing.toml")))
}

func TestReadBytes(t *testing.T) {
	out := &testStruct{Slots: 16}
	require.NoError(t, ReadBytes(out, []byte(`Name = "x"`)))
	assert.Equal(t, "x", out.Name)
	assert.Equal(t, 16, out.Slots)

	b, err := WriteBytes(&testStruct{Name: "y"})
	require.NoError(t, err)
	assert.Contains(t, string(b), `Name = 'y'`)
}
