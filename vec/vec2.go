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

// Vec2 represents a point or direction in the plane.
type Vec2 struct {
	X, Y float32
}

func (v Vec2) String() string { return fmt.Sprintf("(%0.7f, %0.7f)", v.X, v.Y) }

// Add returns the component-wise sum v + ov.
func (v Vec2) Add(ov Vec2) Vec2 { return Vec2{v.X + ov.X, v.Y + ov.Y} }

// Sub returns the component-wise difference v - ov.
func (v Vec2) Sub(ov Vec2) Vec2 { return Vec2{v.X - ov.X, v.Y - ov.Y} }

// Mul returns the component-wise product of v and ov.
func (v Vec2) Mul(ov Vec2) Vec2 { return Vec2{v.X * ov.X, v.Y * ov.Y} }

// Div returns the component-wise quotient v / ov.
func (v Vec2) Div(ov Vec2) Vec2 { return Vec2{v.X / ov.X, v.Y / ov.Y} }

// MulScalar returns the standard scalar product of v and m.
func (v Vec2) MulScalar(m float32) Vec2 { return Vec2{m * v.X, m * v.Y} }

// DivScalar returns v with every component divided by d.
func (v Vec2) DivScalar(d float32) Vec2 { return Vec2{v.X / d, v.Y / d} }

// Neg returns -v.
func (v Vec2) Neg() Vec2 { return Vec2{-v.X, -v.Y} }

// Dot returns the standard dot product of v and ov.
func (v Vec2) Dot(ov Vec2) float32 { return v.X*ov.X + v.Y*ov.Y }

// Length returns the Euclidean norm of v.
func (v Vec2) Length() float32 { return fmath.Sqrt(v.Dot(v)) }

// Normalize returns a unit vector in the same direction as v.
// The zero vector normalizes to NaN components.
func (v Vec2) Normalize() Vec2 { return v.DivScalar(v.Length()) }
