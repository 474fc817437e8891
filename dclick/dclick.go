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

// Package dclick detects double-clicks. A Detector is ticked once per
// dispatch with the live state of its button, whether or not the button
// changed, and reports when a second qualifying press has completed.
package dclick

// the idle time, in ticks, after which a partial double-click is forgotten.
const Timeout = 20

// Detector is the double-click state for a single button. The zero value is
// ready to use.
type Detector struct {
	// ticks since the last accepted transition
	time int

	// the last accepted state of the button
	state bool

	// number of presses since the detector was last idle
	clicks int
}

// Check ticks the detector with the current state of the button. It returns
// true on the tick that completes a double-click. The result is not latched
// and the next call will return false unless another double-click completes.
//
// A transition is only accepted once more than one tick has passed since the
// previous accepted transition. A button must therefore be held in each state
// for at least three ticks for the transition to count.
func (dt *Detector) Check(state bool) bool {
	if state != dt.state && dt.time > 1 {
		dt.state = state
		if state {
			dt.clicks++
		}
		if dt.clicks == 2 {
			dt.clicks = 0
			return true
		}
		dt.time = 0
		return false
	}

	dt.time++
	if dt.time > Timeout {
		dt.clicks = 0
		dt.state = false
	}

	return false
}

// Reset the detector to the idle state.
func (dt *Detector) Reset() {
	*dt = Detector{}
}

// Clicks returns the number of presses counted towards the next double-click.
func (dt *Detector) Clicks() int {
	return dt.clicks
}
