// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package math32 is a float32 based vector and box package
// for the 2D geometry used by layout, hit testing and drawing.
package math32

import (
	"cmp"
	"math"

	"github.com/chewxy/math32"
)

// The scalar functions wrap chewxy/math32, which avoids the
// float64 round trip of the standard math package.

// Infinity is positive infinity.
var Infinity = float32(math.Inf(1))

func Abs(x float32) float32 { return math32.Abs(x) }

func Ceil(x float32) float32 { return math32.Ceil(x) }

func Floor(x float32) float32 { return math32.Floor(x) }

// Round rounds half away from zero.
func Round(x float32) float32 { return math32.Round(x) }

func Sqrt(x float32) float32 { return math32.Sqrt(x) }

func IsNaN(x float32) bool { return math32.IsNaN(x) }

// IsInf reports whether x is an infinity of the given sign,
// or of either sign if sign is 0.
func IsInf(x float32, sign int) bool { return math32.IsInf(x, sign) }

// Max returns the larger of x and y, propagating NaN.
func Max(x, y float32) float32 { return math32.Max(x, y) }

// Min returns the smaller of x and y, propagating NaN.
func Min(x, y float32) float32 { return math32.Min(x, y) }

// Clamp clamps x to the closed interval [a, b].
func Clamp[T cmp.Ordered](x, a, b T) T {
	return min(max(x, a), b)
}
