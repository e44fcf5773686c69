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

// Backend evaluates Vec4 operations.
//
// All backends agree bit for bit on Set1, Zero, Add, Sub, Mul, Div and Equal.
// Dot, Length, Normalize and Cross agree within float32 rounding. LengthEst
// and NormalizeEst are estimates and may differ between backends by the
// error of the reciprocal square root approximation in use.
type Backend interface {
	// Name identifies the backend, as accepted by BackendByName.
	Name() string

	Set1(v float32) Vec4
	Zero() Vec4

	Add(a, b Vec4) Vec4
	Sub(a, b Vec4) Vec4
	Mul(a, b Vec4) Vec4
	Div(a, b Vec4) Vec4
	Equal(a, b Vec4) bool

	Dot(a, b Vec4) float32
	Length(a Vec4) float32
	LengthEst(a Vec4) float32
	Normalize(a Vec4) Vec4
	NormalizeEst(a Vec4) Vec4
	Cross(a, b Vec4) Vec4
}

// Reference evaluates every operation with plain float32 arithmetic on the
// four lanes. Its results do not depend on the CPU or on backend selection,
// so it is safe to use while initializing package-level variables. Its
// estimate operations return exact results.
var Reference Backend = reference{}

// backends lists every available backend, reference first.
var backends = []Backend{Reference, highway{}, vek{}}

// Accelerated returns the backend used by the methods of Vec4.
func Accelerated() Backend { return accel }

// Eval returns the backend for an evaluation mode: Reference for
// fmath.Constant and Accelerated() otherwise.
func Eval(m fmath.Mode) Backend {
	if m == fmath.Constant {
		return Reference
	}
	return accel
}

// BackendByName returns the backend with the given name.
func BackendByName(name string) (Backend, bool) {
	for _, b := range backends {
		if b.Name() == name {
			return b, true
		}
	}
	return nil, false
}

// ShuffleMask packs four lane indices into a shuffle control byte: lane i of
// the result is taken from source lane x, y, z or w respectively.
func ShuffleMask(x, y, z, w uint8) uint8 {
	return w<<6 | z<<4 | y<<2 | x
}
