// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

// Matrix4 is 4x4 matrix organized internally as column matrix.
// The translation is held in elements 12, 13 and 14.
type Matrix4 [16]float32

// Identity4 returns a new identity [Matrix4] matrix.
func Identity4() Matrix4 {
	return Matrix4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Translate3D returns a translation matrix.
func Translate3D(x, y, z float32) Matrix4 {
	m := Identity4()
	m.SetTranslation(x, y, z)
	return m
}

// Scale3D returns a scaling matrix.
func Scale3D(x, y, z float32) Matrix4 {
	m := Identity4()
	m[0], m[5], m[10] = x, y, z
	return m
}

// RotationY returns a matrix rotating by angle radians around the Y axis.
func RotationY(angle float32) Matrix4 {
	c, s := Cos(angle), Sin(angle)
	return Matrix4{
		c, 0, -s, 0,
		0, 1, 0, 0,
		s, 0, c, 0,
		0, 0, 0, 1,
	}
}

// IsIdentity returns whether this matrix is the identity matrix.
func (m *Matrix4) IsIdentity() bool {
	return *m == Identity4()
}

// SetTranslation sets the translation part of this matrix.
func (m *Matrix4) SetTranslation(x, y, z float32) {
	m[12], m[13], m[14] = x, y, z
}

// Translation returns the translation part of this matrix.
func (m *Matrix4) Translation() Vector3 {
	return Vector3{m[12], m[13], m[14]}
}

// Mul returns this matrix times other matrix (this * other).
// Applied to a point, other acts first.
func (m Matrix4) Mul(other Matrix4) Matrix4 {
	var r Matrix4
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			var sum float32
			for k := 0; k < 4; k++ {
				sum += m[k*4+row] * other[col*4+k]
			}
			r[col*4+row] = sum
		}
	}
	return r
}

// MulVector3AsPoint returns v transformed as a point by this matrix.
func (m *Matrix4) MulVector3AsPoint(v Vector3) Vector3 {
	return v.MulMatrix4(m)
}
