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

/*
Package vec implements 2, 3 and 4 component float32 vectors and the
geometric operations on them: dot product, length, normalization and cross
product.

Vec2 and Vec3 are plain structs evaluated with scalar arithmetic. Vec4 keeps
its four lanes private and evaluates every operation through a Backend. Two
kinds of backend exist:

  - Reference, which uses float32 arithmetic on each lane and gives the same
    results on every machine.
  - Accelerated(), chosen at startup from the go-highway and vek32 vector
    libraries, which the Vec4 methods use.

Both agree exactly on lane-wise arithmetic and comparison, and within float32
rounding on dot, length, normalize and cross. The estimate operations
LengthEst and NormalizeEst trade precision for speed on accelerated backends;
on Reference they are exact.

No operation guards against degenerate input: normalizing the zero vector
yields NaN lanes and division by zero yields infinities.
*/
package vec
