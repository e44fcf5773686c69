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

	"github.com/chewxy/math32"

	"github.com/akhenakh/euclid/fmath"
)

func float32Near(x, y, tol float32) bool {
	return math32.Abs(x-y) <= tol
}

func TestVec2Arithmetic(t *testing.T) {
	a, b := Vec2{1, 2}, Vec2{4, -8}
	tests := []struct {
		name string
		got  Vec2
		want Vec2
	}{
		{"add", a.Add(b), Vec2{5, -6}},
		{"sub", a.Sub(b), Vec2{-3, 10}},
		{"mul", a.Mul(b), Vec2{4, -16}},
		{"div", a.Div(b), Vec2{0.25, -0.25}},
		{"mul scalar", a.MulScalar(3), Vec2{3, 6}},
		{"div scalar", b.DivScalar(4), Vec2{1, -2}},
		{"neg", a.Neg(), Vec2{-1, -2}},
	}
	for _, test := range tests {
		if test.got != test.want {
			t.Errorf("%s: got %v, want %v", test.name, test.got, test.want)
		}
	}
}

func TestVec2Geometry(t *testing.T) {
	a, b := Vec2{3, 4}, Vec2{-2, 5}
	if got, want := a.Dot(b), float32(14); got != want {
		t.Errorf("%v.Dot(%v) = %v, want %v", a, b, got, want)
	}
	if a.Dot(b) != b.Dot(a) {
		t.Errorf("%v.Dot(%v) = %v != %v", a, b, a.Dot(b), b.Dot(a))
	}
	if got, want := a.Length(), float32(5); got != want {
		t.Errorf("%v.Length() = %v, want %v", a, got, want)
	}
	if got, want := a.Normalize(), (Vec2{0.6, 0.8}); !float32Near(got.X, want.X, fmath.Epsilon) || !float32Near(got.Y, want.Y, fmath.Epsilon) {
		t.Errorf("%v.Normalize() = %v, want %v", a, got, want)
	}
	if got := (Vec2{}).Length(); got != 0 {
		t.Errorf("zero Length() = %v, want 0", got)
	}
	if got := (Vec2{}).Normalize(); !math32.IsNaN(got.X) || !math32.IsNaN(got.Y) {
		t.Errorf("zero Normalize() = %v, want NaN components", got)
	}
}

func TestVec3Arithmetic(t *testing.T) {
	a, b := Vec3{1, 2, 3}, Vec3{2, -4, 8}
	tests := []struct {
		name string
		got  Vec3
		want Vec3
	}{
		{"add", a.Add(b), Vec3{3, -2, 11}},
		{"sub", a.Sub(b), Vec3{-1, 6, -5}},
		{"mul", a.Mul(b), Vec3{2, -8, 24}},
		{"div", a.Div(b), Vec3{0.5, -0.5, 0.375}},
		{"mul scalar", a.MulScalar(-2), Vec3{-2, -4, -6}},
		{"div scalar", b.DivScalar(2), Vec3{1, -2, 4}},
		{"neg", a.Neg(), Vec3{-1, -2, -3}},
	}
	for _, test := range tests {
		if test.got != test.want {
			t.Errorf("%s: got %v, want %v", test.name, test.got, test.want)
		}
	}
}

func TestVec3Cross(t *testing.T) {
	tests := []struct {
		a, b, want Vec3
	}{
		{Vec3{1, 2, 3}, Vec3{4, 5, 6}, Vec3{-3, 6, -3}},
		{Vec3{1, 0, 0}, Vec3{0, 1, 0}, Vec3{0, 0, 1}},
		{Vec3{0, 1, 0}, Vec3{0, 0, 1}, Vec3{1, 0, 0}},
		{Vec3{0, 0, 1}, Vec3{1, 0, 0}, Vec3{0, 1, 0}},
		{Vec3{2, 2, 2}, Vec3{4, 4, 4}, Vec3{0, 0, 0}},
	}
	for _, test := range tests {
		if got := test.a.Cross(test.b); got != test.want {
			t.Errorf("%v.Cross(%v) = %v, want %v", test.a, test.b, got, test.want)
		}
	}
}

func TestVec3CrossProperties(t *testing.T) {
	vs := []Vec3{
		{1, 2, 3},
		{4, 5, 6},
		{-0.5, 7.25, 3.125},
		{1e3, -2e2, 0.001},
		{0.3, 0.1, -0.7},
	}
	for _, a := range vs {
		for _, b := range vs {
			c := a.Cross(b)
			if got, want := c, b.Cross(a).Neg(); got != want {
				t.Errorf("%v.Cross(%v) = %v, want -(b×a) = %v", a, b, got, want)
			}
			tol := 16 * fmath.Epsilon * a.Length() * a.Length() * b.Length()
			if d := c.Dot(a); !float32Near(d, 0, tol) {
				t.Errorf("(%v×%v)·a = %v, want 0", a, b, d)
			}
			tol = 16 * fmath.Epsilon * a.Length() * b.Length() * b.Length()
			if d := c.Dot(b); !float32Near(d, 0, tol) {
				t.Errorf("(%v×%v)·b = %v, want 0", a, b, d)
			}
		}
	}
}

func TestVec3Geometry(t *testing.T) {
	a, b := Vec3{1, 2, 3}, Vec3{4, 5, 6}
	if got, want := a.Dot(b), float32(32); got != want {
		t.Errorf("%v.Dot(%v) = %v, want %v", a, b, got, want)
	}
	if got, want := (Vec3{2, 3, 6}).Length(), float32(7); got != want {
		t.Errorf("Length() = %v, want %v", got, want)
	}
	if got := b.Normalize().Length(); !float32Near(got, 1, 4*fmath.Epsilon) {
		t.Errorf("%v.Normalize().Length() = %v, want 1", b, got)
	}
}

func TestVec3Vec4RoundTrip(t *testing.T) {
	v := Vec3{1, 2, 3}
	a := v.Vec4(9)
	if got := a.Get(3); got != 9 {
		t.Errorf("%v.Vec4(9).Get(3) = %v, want 9", v, got)
	}
	if got := a.Vec3(); got != v {
		t.Errorf("%v.Vec4(9).Vec3() = %v, want %v", v, got, v)
	}
}
