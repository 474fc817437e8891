// This file is part of srb2input.
//
// srb2input is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// srb2input is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with srb2input.  If not, see <https://www.gnu.org/licenses/>.

// Package sensitivity implements the curve used to scale analog input by a
// sensitivity setting. The same curve is used for the mouse and for the
// touchscreen camera.
package sensitivity

// Max is the maximum value of a sensitivity setting. The minimum is one.
const Max = 100

// Scale applies the sensitivity curve to a raw delta. The raw value is
// multiplied by ((a*b)/110 + 0.1) and truncated toward zero. For the X axis
// both a and b are the sensitivity setting. For mouse look the Y sensitivity
// is used for a.
//
// The arithmetic is done in single precision so the result matches what a
// float32 implementation of the curve produces.
func Scale(raw int, a int, b int) int {
	return int(float32(raw) * (float32(a*b)/110.0 + 0.1))
}
