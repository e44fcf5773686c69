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
	"github.com/viterin/vek/vek32"

	"github.com/akhenakh/euclid/fmath"
)

// vek implements Backend on top of vek32, which runs AVX2 kernels on amd64
// and pure Go loops elsewhere. Constructors and Equal come from reference.
type vek struct {
	reference
}

func (vek) Name() string { return "vek" }

func (vek) Add(a, b Vec4) Vec4 {
	var r Vec4
	vek32.Add_Into(r.v[:], a.v[:], b.v[:])
	return r
}

func (vek) Sub(a, b Vec4) Vec4 {
	var r Vec4
	vek32.Sub_Into(r.v[:], a.v[:], b.v[:])
	return r
}

func (vek) Mul(a, b Vec4) Vec4 {
	var r Vec4
	vek32.Mul_Into(r.v[:], a.v[:], b.v[:])
	return r
}

func (vek) Div(a, b Vec4) Vec4 {
	var r Vec4
	vek32.Div_Into(r.v[:], a.v[:], b.v[:])
	return r
}

func (vek) Dot(a, b Vec4) float32 {
	return vek32.Dot(a.v[:], b.v[:])
}

func (vek) Length(a Vec4) float32 {
	return vek32.Norm(a.v[:])
}

// LengthEst uses the bit-level reciprocal square root estimate from fmath,
// vek32 has no hardware estimate.
func (vek) LengthEst(a Vec4) float32 {
	d := vek32.Dot(a.v[:], a.v[:])
	return d * fmath.RSqrtEst(d)
}

func (vek) Normalize(a Vec4) Vec4 {
	vek32.DivNumber_Inplace(a.v[:], vek32.Norm(a.v[:]))
	return a
}

func (vek) NormalizeEst(a Vec4) Vec4 {
	vek32.MulNumber_Inplace(a.v[:], fmath.RSqrtEst(vek32.Dot(a.v[:], a.v[:])))
	return a
}

func (vek) Cross(a, b Vec4) Vec4 {
	ayzx := [4]float32{a.v[1], a.v[2], a.v[0], 0}
	azxy := [4]float32{a.v[2], a.v[0], a.v[1], 0}
	byzx := [4]float32{b.v[1], b.v[2], b.v[0], 0}
	bzxy := [4]float32{b.v[2], b.v[0], b.v[1], 0}

	var p, q, r Vec4
	vek32.Mul_Into(p.v[:], ayzx[:], bzxy[:])
	vek32.Mul_Into(q.v[:], azxy[:], byzx[:])
	vek32.Sub_Into(r.v[:], p.v[:], q.v[:])
	return r
}
