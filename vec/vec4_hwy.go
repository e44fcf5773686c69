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
	"github.com/ajroetker/go-highway/hwy"
	hwyvec "github.com/ajroetker/go-highway/hwy/contrib/vec"

	"github.com/akhenakh/euclid/fmath"
)

// highway implements Backend with the hwygen dispatch tables of go-highway's
// contrib/vec package (AddToFloat32, DotFloat32, ...). Those are bound at
// load time to the avx2, avx512, neon or fallback kernels for this CPU, so
// the lane order of Vec4 is the lane order of the target register.
type highway struct{}

// crossShuffle rotates lanes (x, y, z, w) to (y, z, x, w).
var crossShuffle = ShuffleMask(1, 2, 0, 3)

// shuffle reorders the lanes of a by a ShuffleMask control byte.
func shuffle(a Vec4, mask uint8) Vec4 {
	var r Vec4
	for i := range r.v {
		r.v[i] = a.v[mask>>(2*i)&3]
	}
	return r
}

// highwayAccelerated reports whether the dispatched kernels run a Vec4
// through vector instructions. A target wider than four float32 lanes
// handles all four lanes in its scalar tail loop.
func highwayAccelerated() bool {
	return hwy.CurrentLevel() != hwy.DispatchScalar && hwy.MaxLanes[float32]() <= 4
}

func (highway) Name() string { return "highway" }

func (highway) Set1(v float32) Vec4 {
	var r Vec4
	hwy.Store(hwy.Set(v), r.v[:])
	return r
}

func (highway) Zero() Vec4 {
	var r Vec4
	hwy.Store(hwy.Zero[float32](), r.v[:])
	return r
}

func (highway) Add(a, b Vec4) Vec4 {
	var r Vec4
	hwyvec.AddToFloat32(r.v[:], a.v[:], b.v[:])
	return r
}

func (highway) Sub(a, b Vec4) Vec4 {
	var r Vec4
	hwyvec.SubToFloat32(r.v[:], a.v[:], b.v[:])
	return r
}

func (highway) Mul(a, b Vec4) Vec4 {
	var r Vec4
	hwyvec.MulToFloat32(r.v[:], a.v[:], b.v[:])
	return r
}

func (highway) Div(a, b Vec4) Vec4 {
	var r Vec4
	hwyvec.DivToFloat32(r.v[:], a.v[:], b.v[:])
	return r
}

func (highway) Equal(a, b Vec4) bool {
	return hwy.AllTrue(hwy.Equal(hwy.Load(a.v[:]), hwy.Load(b.v[:])))
}

func (highway) Dot(a, b Vec4) float32 {
	return hwyvec.DotFloat32(a.v[:], b.v[:])
}

func (highway) Length(a Vec4) float32 {
	return hwyvec.NormFloat32(a.v[:])
}

// LengthEst multiplies the squared length by its reciprocal square root
// estimate instead of taking a square root.
func (highway) LengthEst(a Vec4) float32 {
	d := hwyvec.SquaredNormFloat32(a.v[:])
	return d * fmath.RSqrtEst(d)
}

// Normalize divides by the broadcast length. A zero vector has length 0 and
// yields NaN lanes.
func (h highway) Normalize(a Vec4) Vec4 {
	var r Vec4
	l := h.Set1(hwyvec.NormFloat32(a.v[:]))
	hwyvec.DivToFloat32(r.v[:], a.v[:], l.v[:])
	return r
}

func (highway) NormalizeEst(a Vec4) Vec4 {
	var r Vec4
	hwyvec.ScaleToFloat32(r.v[:], fmath.RSqrtEst(hwyvec.SquaredNormFloat32(a.v[:])), a.v[:])
	return r
}

// Cross computes the cross product with two lane rotations.
// c = rot(a*rot(b) - rot(a)*b), where rot maps (x, y, z, w) to (y, z, x, w).
func (h highway) Cross(a, b Vec4) Vec4 {
	ra, rb := shuffle(a, crossShuffle), shuffle(b, crossShuffle)

	// (ax*by - ay*bx, ay*bz - az*by, az*bx - ax*bz, aw*bw - aw*bw)
	d := h.Sub(h.Mul(a, rb), h.Mul(ra, b))
	c := shuffle(d, crossShuffle)

	// Lane 3 is aw*bw - aw*bw, which is NaN for infinite w.
	c.v[3] = 0
	return c
}
