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

package touch

import "github.com/srb2star/srb2input/controls"

// NumFingers is the number of fingers that are tracked at once.
const NumFingers = 10

// Motion is what a finger is currently doing.
type Motion int

// List of valid Motion values.
const (
	Idle Motion = iota
	DrivingJoystick
	DrivingCamera
	HoldingControl
)

func (m Motion) String() string {
	switch m {
	case Idle:
		return "idle"
	case DrivingJoystick:
		return "joystick"
	case DrivingCamera:
		return "camera"
	case HoldingControl:
		return "control"
	}
	return "unknown"
}

// Finger is the state of one finger on the touchscreen.
type Finger struct {
	// position and pressure at the last event that changed the finger's state
	X        int
	Y        int
	Pressure float32

	motion Motion

	// only meaningful when motion is HoldingControl
	control controls.Control

	// motion events are dropped for this finger until it is lifted
	IgnoreMotion bool
}

// Motion returns what the finger is doing.
func (f *Finger) Motion() Motion {
	return f.motion
}

// Control returns the control the finger is holding. The second value is
// false if the finger is not holding a control.
func (f *Finger) Control() (controls.Control, bool) {
	if f.motion != HoldingControl {
		return controls.Null, false
	}
	return f.control, true
}

// analog is true if the finger is driving the virtual joystick or the camera
func (f *Finger) analog() bool {
	return f.motion == DrivingJoystick || f.motion == DrivingCamera
}

func (f *Finger) place(ev Event) {
	f.X = ev.X
	f.Y = ev.Y
	f.Pressure = ev.Pressure
}

func (f *Finger) hold(c controls.Control) {
	f.motion = HoldingControl
	f.control = c
}

func (f *Finger) drive(m Motion) {
	f.motion = m
	f.control = controls.Null
}

func (f *Finger) release() {
	f.motion = Idle
	f.control = controls.Null
}
