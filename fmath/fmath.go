// Copyright 2026 Google Inc. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS-IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package fmath implements the float32 scalar functions used by the vector
// types: square root and trigonometric functions taking angles in degrees.
//
// Every function has two forms. The run-time form defers to the platform
// float32 math routines. The Approx form is a closed-form polynomial or
// bit-manipulation approximation that uses nothing but float32 arithmetic,
// which makes its result independent of the platform math library.
// Mode selects between the two.
package fmath

import (
	"github.com/chewxy/math32"
)

const (
	// Pi is π rounded to float32.
	Pi float32 = math32.Pi

	// Radian is the number of radians in one degree.
	Radian float32 = Pi / 180

	// Epsilon is the float32 machine epsilon, the gap between 1 and the next
	// representable float32.
	Epsilon float32 = 1.0 / (1 << 23)
)

// Mode tells the scalar functions which evaluation context a call belongs to.
type Mode int

const (
	// Runtime uses the platform math routines.
	Runtime Mode = iota
	// Constant uses the arithmetic-only approximations.
	Constant
)

func (m Mode) String() string {
	switch m {
	case Runtime:
		return "runtime"
	case Constant:
		return "constant"
	default:
		return "unknown"
	}
}

// Sqrt returns the square root of x evaluated in mode m.
func (m Mode) Sqrt(x float32) float32 {
	if m == Constant {
		return ApproxSqrt(x)
	}
	return Sqrt(x)
}

// Sin returns the sine of angle degrees evaluated in mode m.
func (m Mode) Sin(angle float32) float32 {
	if m == Constant {
		return ApproxSin(angle)
	}
	return Sin(angle)
}

// Cos returns the cosine of angle degrees evaluated in mode m.
func (m Mode) Cos(angle float32) float32 {
	if m == Constant {
		return ApproxCos(angle)
	}
	return Cos(angle)
}

// Tan returns the tangent of angle degrees evaluated in mode m.
func (m Mode) Tan(angle float32) float32 {
	if m == Constant {
		return ApproxTan(angle)
	}
	return Tan(angle)
}

// ToRadians converts an angle in degrees to radians.
func ToRadians(deg float32) float32 { return deg * Radian }

// ToDegrees converts an angle in radians to degrees.
func ToDegrees(rad float32) float32 { return rad / Radian }

// Sqrt returns the correctly rounded square root of x.
func Sqrt(x float32) float32 {
	return math32.Sqrt(x)
}

// Sin returns the sine of angle, given in degrees.
func Sin(angle float32) float32 {
	return math32.Sin(angle * Radian)
}

// Cos returns the cosine of angle, given in degrees.
func Cos(angle float32) float32 {
	return math32.Cos(angle * Radian)
}

// Tan returns the tangent of angle, given in degrees.
func Tan(angle float32) float32 {
	return math32.Tan(angle * Radian)
}
