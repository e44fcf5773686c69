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
	"testing"
)

var (
	benchA = NewVec4(1.5, -2.25, 3.125, 0.5)
	benchB = NewVec4(-0.75, 4, 2.5, -1)

	sinkVec4    Vec4
	sinkFloat32 float32
)

func BenchmarkAdd(b *testing.B) {
	for _, be := range backends {
		b.Run(be.Name(), func(b *testing.B) {
			for b.Loop() {
				sinkVec4 = be.Add(benchA, benchB)
			}
		})
	}
}

func BenchmarkDot(b *testing.B) {
	for _, be := range backends {
		b.Run(be.Name(), func(b *testing.B) {
			for b.Loop() {
				sinkFloat32 = be.Dot(benchA, benchB)
			}
		})
	}
}

func BenchmarkNormalize(b *testing.B) {
	for _, be := range backends {
		b.Run(be.Name(), func(b *testing.B) {
			for b.Loop() {
				sinkVec4 = be.Normalize(benchA)
			}
		})
	}
}

func BenchmarkNormalizeEst(b *testing.B) {
	for _, be := range backends {
		b.Run(be.Name(), func(b *testing.B) {
			for b.Loop() {
				sinkVec4 = be.NormalizeEst(benchA)
			}
		})
	}
}

func BenchmarkCross(b *testing.B) {
	for _, be := range backends {
		b.Run(be.Name(), func(b *testing.B) {
			for b.Loop() {
				sinkVec4 = be.Cross(benchA, benchB)
			}
		})
	}
}
