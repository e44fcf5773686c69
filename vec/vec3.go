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

	"github.com/akhenakh/euclid/fmath"
)

// Vec3 represents a point or direction in ℝ³.
type Vec3 struct {
	X, Y, Z float32
}

func (v Vec3) String() string { return fmt.Sprintf("(%0.7f, %0.7f, %0.7f)", v.X, v.Y, v.Z) }

// Add returns the component-wise sum v + ov.
func (v Vec3) Add(ov Vec3) Vec3 { return Vec3{v.X + ov.X, v.Y + ov.Y, v.Z + ov.Z} }

// Sub returns the component-wise difference v - ov.
func (v Vec3) Sub(ov Vec3) Vec3 { return Vec3{v.X - ov.X, v.Y - ov.Y, v.Z - ov.Z} }

// Mul returns the component-wise product of v and ov.
func (v Vec3) Mul(ov Vec3) Vec3 { return Vec3{v.X * ov.X, v.Y * ov.Y, v.Z * ov.Z} }

// Div returns the component-wise quotient v / ov.
func (v Vec3) Div(ov Vec3) Vec3 { return Vec3{v.X / ov.X, v.Y / ov.Y, v.Z / ov.Z} }

// MulScalar returns the standard scalar product of v and m.
func (v Vec3) MulScalar(m float32) Vec3 { return Vec3{m * v.X, m * v.Y, m * v.Z} }

// DivScalar returns v with every component divided by d.
func (v Vec3) DivScalar(d float32) Vec3 { return Vec3{v.X / d, v.Y / d, v.Z / d} }

// Neg returns -v.
func (v Vec3) Neg() Vec3 { return Vec3{-v.X, -v.Y, -v.Z} }

// Dot returns the standard dot product of v and ov.
func (v Vec3) Dot(ov Vec3) float32 { return v.X*ov.X + v.Y*ov.Y + v.Z*ov.Z }

// Length returns the Euclidean norm of v.
func (v Vec3) Length() float32 { return fmath.Sqrt(v.Dot(v)) }

// Normalize returns a unit vector in the same direction as v.
// The zero vector normalizes to NaN components.
func (v Vec3) Normalize() Vec3 { return v.DivScalar(v.Length()) }

// Cross returns the right-handed cross product of v and ov.
func (v Vec3) Cross(ov Vec3) Vec3 {
	// The explicit conversions round each product and stop the compiler from
	// fusing them into an FMA, which keeps v×ov == -(ov×v) exact.
	return Vec3{
		float32(v.Y*ov.Z) - float32(v.Z*ov.Y),
		float32(v.Z*ov.X) - float32(v.X*ov.Z),
		float32(v.X*ov.Y) - float32(v.Y*ov.X),
	}
}

// Vec4 returns v in the first three lanes of a Vec4 with w in lane 3.
func (v Vec3) Vec4(w float32) Vec4 { return NewVec4(v.X, v.Y, v.Z, w) }
