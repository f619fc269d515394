// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package imagex saves and loads rendered frames and compares
// them pixel by pixel.
package imagex

import (
	"bufio"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// Formats are the lossless image formats frames are saved in.
type Formats int32

const (
	None Formats = iota
	PNG
	TIFF
	BMP
)

var formatNames = [...]string{"None", "PNG", "TIFF", "BMP"}

func (f Formats) String() string {
	if f < 0 || int(f) >= len(formatNames) {
		return fmt.Sprintf("Formats(%d)", int32(f))
	}
	return formatNames[f]
}

// formatExts maps lower case extensions, and the names
// [image.Decode] reports, to formats.
var formatExts = map[string]Formats{
	"png":  PNG,
	"tif":  TIFF,
	"tiff": TIFF,
	"bmp":  BMP,
}

// ExtToFormat returns the format of a file extension,
// with or without the leading dot.
func ExtToFormat(ext string) (Formats, error) {
	e := strings.ToLower(strings.TrimPrefix(ext, "."))
	if f, ok := formatExts[e]; ok {
		return f, nil
	}
	return None, fmt.Errorf("imagex: unsupported image extension %q", ext)
}

// Open reads the image in the given file, detecting its format.
func Open(filename string) (image.Image, Formats, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, None, err
	}
	defer file.Close()
	return Read(bufio.NewReader(file))
}

// Read decodes an image, detecting its format.
func Read(r io.Reader) (image.Image, Formats, error) {
	im, name, err := image.Decode(r)
	if err != nil {
		return nil, None, err
	}
	f, err := ExtToFormat(name)
	return im, f, err
}

// Save writes the image to the given file in the format
// given by its extension.
func Save(im image.Image, filename string) error {
	f, err := ExtToFormat(filepath.Ext(filename))
	if err != nil {
		return err
	}
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()
	bw := bufio.NewWriter(file)
	if err := Write(im, bw, f); err != nil {
		return err
	}
	return bw.Flush()
}

// Write encodes the image in the given format.
func Write(im image.Image, w io.Writer, f Formats) error {
	switch f {
	case PNG:
		return png.Encode(w, im)
	case TIFF:
		return tiff.Encode(w, im, nil)
	case BMP:
		return bmp.Encode(w, im)
	}
	return fmt.Errorf("imagex: cannot write format %v", f)
}
