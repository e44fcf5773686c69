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
	"os"

	"github.com/ajroetker/go-highway/hwy"
	"github.com/viterin/vek/vek32"
	"golang.org/x/sys/cpu"
)

// backendEnv names a backend to use instead of the automatic choice.
const backendEnv = "EUCLID_BACKEND"

// hasAVX2 reports whether vek32 can run its AVX2+FMA kernels.
var hasAVX2 = cpu.X86.HasAVX2 && cpu.X86.HasFMA

// accel is the backend behind the Vec4 methods. It is chosen once while the
// package initializes.
var accel = selectBackend()

// selectBackend picks the backend for this process:
//   - HWY_NO_SIMD set: reference.
//   - EUCLID_BACKEND naming a backend: that backend.
//   - AVX2 with an accelerated vek32 build: vek.
//   - otherwise: highway, which runs on whatever target hwy dispatched to.
func selectBackend() Backend {
	if hwy.NoSimdEnv() {
		return Reference
	}
	if name := os.Getenv(backendEnv); name != "" {
		if b, ok := BackendByName(name); ok {
			return b
		}
	}
	if hasAVX2 && vek32.Info().Acceleration {
		return vek{}
	}
	return highway{}
}

// RuntimeInfo describes the backend behind the Vec4 methods.
type RuntimeInfo struct {
	// Backend is the name of the active backend.
	Backend string
	// SIMD is the go-highway dispatch target.
	SIMD string
	// Features lists the CPU features vek32 detected.
	Features []string
	// Accelerated reports whether the active backend runs vector
	// instructions.
	Accelerated bool
}

// Info returns a description of the active backend.
func Info() RuntimeInfo {
	info := RuntimeInfo{
		Backend:  accel.Name(),
		SIMD:     hwy.CurrentLevel().String(),
		Features: vek32.Info().CPUFeatures,
	}
	info.Accelerated = accelerated(accel)
	return info
}

// accelerated reports whether b runs Vec4 operations through vector
// instructions on this CPU.
func accelerated(b Backend) bool {
	switch b.(type) {
	case vek:
		return hasAVX2 && vek32.Info().Acceleration
	case highway:
		return highwayAccelerated()
	}
	return false
}
