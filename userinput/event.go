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

package userinput

import "math"

// EventType is the type of a raw input Event.
type EventType int

// List of valid EventType values.
const (
	KeyDown EventType = iota
	KeyUp
	Mouse
	Mouse2
	Joystick
	Joystick2
	TouchDown
	TouchMotion
	TouchUp
)

func (t EventType) String() string {
	switch t {
	case KeyDown:
		return "keydown"
	case KeyUp:
		return "keyup"
	case Mouse:
		return "mouse"
	case Mouse2:
		return "mouse2"
	case Joystick:
		return "joystick"
	case Joystick2:
		return "joystick2"
	case TouchDown:
		return "touchdown"
	case TouchMotion:
		return "touchmotion"
	case TouchUp:
		return "touchup"
	}
	return "unknown"
}

// Event is a raw input event.
//
// For key events Key is the key code. Mouse buttons, joystick buttons and
// hats are sent as key events.
//
// For mouse events X and Y are the movement of the mouse.
//
// For joystick events Key is the axis set and X and Y are the axis positions.
// An axis that has not changed can be sent as AxisUnchanged.
//
// For touch events Key is the finger, X and Y the position in screen pixels
// and DX and DY the movement since the previous event for the finger.
type Event struct {
	Type     EventType
	Key      int
	X        int
	Y        int
	DX       int
	DY       int
	Pressure float32
}

// AxisUnchanged is the value of a joystick axis in an Event when the axis has
// not moved. The current value of the axis is kept.
const AxisUnchanged = math.MaxInt32

// JoyAxisSets is the number of axis pairs on each joystick.
const JoyAxisSets = 4
