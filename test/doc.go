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

// Package test contains helper functions to remove common boilerplate from
// the package tests.
//
// The Expect functions report a failure and allow the test to continue. The
// Demand functions stop the test immediately.
//
// The ExpectSuccess and ExpectFailure functions accept bool and error values.
// A nil value is treated as success because of how errors usually work in Go.
//
// Each function accepts an optional list of tags. The tags are prepended to
// the failure message and are useful for identifying which iteration of a
// table driven test failed.
//
// The CompareWriter type implements the io.Writer interface and is used to
// capture output. The Compare() function tests the captured output for
// equality.
package test
