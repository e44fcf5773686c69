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

package fmath

import (
	"math"

	"github.com/chewxy/math32"
)

// rsqrtMagic seeds the inverse square root estimate. Together with the
// refinement constants below it gives a maximum relative error of about
// 6.5e-4 after a single step.
const (
	rsqrtMagic  = 0x5F1FFFF9
	rsqrtScale  = 0.703952253
	rsqrtOffset = 2.38924456
)

// RSqrtEst returns an estimate of 1/sqrt(x) computed with a bit-level initial
// guess and one Newton-Raphson style refinement. The relative error is below
// 1e-3 for finite positive x.
func RSqrtEst(x float32) float32 {
	y := math.Float32frombits(rsqrtMagic - math.Float32bits(x)>>1)
	return y * (rsqrtScale * (rsqrtOffset - x*y*y))
}

// ApproxSqrt returns an approximation of the square root of x using only
// float32 arithmetic. The relative error is below 1e-3 for finite positive x.
// Negative and NaN inputs return NaN, +Inf returns +Inf and 0 returns 0.
func ApproxSqrt(x float32) float32 {
	switch {
	case x < 0 || math32.IsNaN(x):
		return math32.NaN()
	case math32.IsInf(x, 1):
		return x
	}
	return x * RSqrtEst(x)
}

// ApproxSin approximates the sine of angle degrees with a degree-7 Taylor
// polynomial. The absolute error is below 1e-3 on [-90, 90] and grows quickly
// outside of it.
func ApproxSin(angle float32) float32 {
	x := angle * Radian
	x2 := x * x
	x3 := x * x2
	x5 := x3 * x2
	x7 := x5 * x2
	return x - x3*0.1666666716 + x5*0.008333333768 - x7*0.0001984127011
}

// ApproxCos approximates the cosine of angle degrees with a degree-6
// polynomial. The absolute error is below 1e-3 on [-90, 90].
func ApproxCos(angle float32) float32 {
	x := angle * Radian
	x2 := x * x
	x4 := x2 * x2
	x6 := x2 * x4
	return 1 - 0.5*x2 + x4*0.04166666791 - x6*0.001361971023
}

// ApproxTan approximates the tangent of angle degrees as the cotangent of the
// complementary angle, expanded as a Laurent series. The absolute error is
// below 2e-3 on [0, 80] and diverges for negative angles.
func ApproxTan(angle float32) float32 {
	t := (90 - angle) * Radian
	t2 := t * t
	t3 := t * t2
	t5 := t3 * t2
	t7 := t5 * t2
	return 1/t - t/3 - t3/45 - t5*2/945 - t7/4725
}
