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
	"github.com/akhenakh/euclid/fmath"
)

// reference implements Backend with scalar arithmetic on each lane.
type reference struct{}

func (reference) Name() string { return "reference" }

func (reference) Set1(v float32) Vec4 { return Vec4{v: [4]float32{v, v, v, v}} }

func (reference) Zero() Vec4 { return Vec4{} }

func (reference) Add(a, b Vec4) Vec4 {
	return Vec4{v: [4]float32{
		a.v[0] + b.v[0],
		a.v[1] + b.v[1],
		a.v[2] + b.v[2],
		a.v[3] + b.v[3],
	}}
}

func (reference) Sub(a, b Vec4) Vec4 {
	return Vec4{v: [4]float32{
		a.v[0] - b.v[0],
		a.v[1] - b.v[1],
		a.v[2] - b.v[2],
		a.v[3] - b.v[3],
	}}
}

func (reference) Mul(a, b Vec4) Vec4 {
	return Vec4{v: [4]float32{
		a.v[0] * b.v[0],
		a.v[1] * b.v[1],
		a.v[2] * b.v[2],
		a.v[3] * b.v[3],
	}}
}

func (reference) Div(a, b Vec4) Vec4 {
	return Vec4{v: [4]float32{
		a.v[0] / b.v[0],
		a.v[1] / b.v[1],
		a.v[2] / b.v[2],
		a.v[3] / b.v[3],
	}}
}

func (reference) Equal(a, b Vec4) bool {
	return a.v[0] == b.v[0] &&
		a.v[1] == b.v[1] &&
		a.v[2] == b.v[2] &&
		a.v[3] == b.v[3]
}

func (reference) Dot(a, b Vec4) float32 {
	return a.v[0]*b.v[0] + a.v[1]*b.v[1] + a.v[2]*b.v[2] + a.v[3]*b.v[3]
}

func (r reference) Length(a Vec4) float32 {
	return fmath.Sqrt(r.Dot(a, a))
}

// LengthEst has no estimate to fall back on without vector hardware and
// returns the exact length.
func (r reference) LengthEst(a Vec4) float32 {
	return r.Length(a)
}

func (r reference) Normalize(a Vec4) Vec4 {
	return r.Div(a, r.Set1(r.Length(a)))
}

func (r reference) NormalizeEst(a Vec4) Vec4 {
	return r.Normalize(a)
}

func (reference) Cross(a, b Vec4) Vec4 {
	return Vec4{v: [4]float32{
		float32(a.v[1]*b.v[2]) - float32(a.v[2]*b.v[1]),
		float32(a.v[2]*b.v[0]) - float32(a.v[0]*b.v[2]),
		float32(a.v[0]*b.v[1]) - float32(a.v[1]*b.v[0]),
		0,
	}}
}
