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

package vec

import (
	"fmt"
)

// Vec4 is a vector of four float32 lanes.
//
// The storage of a Vec4 is private to the package: backends load the lanes
// into whatever vector representation they use and store them back in the
// same order, so Get(i) always reports the value last written to lane i.
// The zero value is the zero vector.
//
// Methods evaluate through Accelerated(). The same operations are available
// on Reference for call sites that need results independent of the CPU.
type Vec4 struct {
	v [4]float32
}

// NewVec4 returns the vector with lanes (x, y, z, w).
func NewVec4(x, y, z, w float32) Vec4 {
	return Vec4{v: [4]float32{x, y, z, w}}
}

// Set1Vec4 returns a vector with all four lanes set to v.
func Set1Vec4(v float32) Vec4 { return accel.Set1(v) }

// ZeroVec4 returns the zero vector.
func ZeroVec4() Vec4 { return accel.Zero() }

// Get returns lane i. It panics if i is outside [0, 3].
func (a Vec4) Get(i int) float32 { return a.v[i] }

// Ref returns a pointer to lane i for in-place updates. It aliases the lane
// read by Get and panics if i is outside [0, 3].
func (a *Vec4) Ref(i int) *float32 { return &a.v[i] }

// Vec3 returns the first three lanes of a.
func (a Vec4) Vec3() Vec3 { return Vec3{a.v[0], a.v[1], a.v[2]} }

func (a Vec4) String() string {
	return fmt.Sprintf("(%0.7f, %0.7f, %0.7f, %0.7f)", a.v[0], a.v[1], a.v[2], a.v[3])
}

// Add returns the lane-wise sum a + b.
func (a Vec4) Add(b Vec4) Vec4 { return accel.Add(a, b) }

// Sub returns the lane-wise difference a - b.
func (a Vec4) Sub(b Vec4) Vec4 { return accel.Sub(a, b) }

// Mul returns the lane-wise product of a and b.
func (a Vec4) Mul(b Vec4) Vec4 { return accel.Mul(a, b) }

// Div returns the lane-wise quotient a / b.
func (a Vec4) Div(b Vec4) Vec4 { return accel.Div(a, b) }

// MulScalar returns a with every lane multiplied by s.
func (a Vec4) MulScalar(s float32) Vec4 { return accel.Mul(a, accel.Set1(s)) }

// DivScalar returns a with every lane divided by s.
func (a Vec4) DivScalar(s float32) Vec4 { return accel.Div(a, accel.Set1(s)) }

// Neg returns the zero vector minus a.
func (a Vec4) Neg() Vec4 { return accel.Sub(accel.Zero(), a) }

// Equal reports whether every lane of a equals the same lane of b.
// The comparison is exact; NaN lanes never compare equal.
func (a Vec4) Equal(b Vec4) bool { return accel.Equal(a, b) }

// NotEqual reports whether any lane of a differs from the same lane of b.
func (a Vec4) NotEqual(b Vec4) bool { return !accel.Equal(a, b) }

// AddAssign sets a to a + b and returns a.
func (a *Vec4) AddAssign(b Vec4) *Vec4 {
	*a = a.Add(b)
	return a
}

// SubAssign sets a to a - b and returns a.
func (a *Vec4) SubAssign(b Vec4) *Vec4 {
	*a = a.Sub(b)
	return a
}

// MulAssign sets a to the lane-wise product of a and b and returns a.
func (a *Vec4) MulAssign(b Vec4) *Vec4 {
	*a = a.Mul(b)
	return a
}

// MulScalarAssign multiplies every lane of a by s and returns a.
func (a *Vec4) MulScalarAssign(s float32) *Vec4 {
	*a = a.MulScalar(s)
	return a
}

// DivAssign sets a to the lane-wise quotient a / b and returns a.
func (a *Vec4) DivAssign(b Vec4) *Vec4 {
	*a = a.Div(b)
	return a
}

// DivScalarAssign divides every lane of a by s and returns a.
func (a *Vec4) DivScalarAssign(s float32) *Vec4 {
	*a = a.DivScalar(s)
	return a
}

// Dot returns the sum of the lane-wise products of a and b.
func (a Vec4) Dot(b Vec4) float32 { return accel.Dot(a, b) }

// Length returns the Euclidean norm of a. The squared lanes are summed in
// float32, so a vector whose lanes are all below about 1e-19 in magnitude
// underflows to length 0.
func (a Vec4) Length() float32 { return accel.Length(a) }

// LengthEst returns a fast estimate of the Euclidean norm of a, computed
// from a reciprocal square root approximation where the backend has one.
func (a Vec4) LengthEst() float32 { return accel.LengthEst(a) }

// Normalize returns a divided by its length.
func (a Vec4) Normalize() Vec4 { return accel.Normalize(a) }

// NormalizeEst returns a scaled by an estimate of its reciprocal length.
func (a Vec4) NormalizeEst() Vec4 { return accel.NormalizeEst(a) }

// Cross returns the cross product of the first three lanes of a and b.
// Lane 3 of the result is always zero.
func (a Vec4) Cross(b Vec4) Vec4 { return accel.Cross(a, b) }
