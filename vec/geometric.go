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

// Vector is the set of vector types sharing the dot product, length and
// normalization operations.
type Vector[V any] interface {
	Vec2 | Vec3 | Vec4
	Dot(V) float32
	Length() float32
	Normalize() V
}

// Crosser is the set of vector types with a cross product.
type Crosser[V any] interface {
	Vec3 | Vec4
	Cross(V) V
}

// Dot returns the dot product of a and b.
func Dot[V Vector[V]](a, b V) float32 { return a.Dot(b) }

// Length returns the Euclidean norm of a. It is computed from the float32 dot
// product of a with itself, which underflows to 0 when every component is
// below about 1e-19 in magnitude.
func Length[V Vector[V]](a V) float32 { return a.Length() }

// Normalize returns a unit vector in the direction of a.
func Normalize[V Vector[V]](a V) V { return a.Normalize() }

// Cross returns the right-handed cross product of a and b. For Vec4 the first
// three lanes hold the product and lane 3 is zero.
func Cross[V Crosser[V]](a, b V) V { return a.Cross(b) }

// LengthEst returns a fast estimate of the length of a.
func LengthEst(a Vec4) float32 { return a.LengthEst() }

// NormalizeEst returns a scaled by a fast estimate of its reciprocal length.
func NormalizeEst(a Vec4) Vec4 { return a.NormalizeEst() }
