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

import (
	"github.com/srb2star/srb2input/bindings"
	"github.com/srb2star/srb2input/controls"
	"github.com/srb2star/srb2input/dclick"
	"github.com/srb2star/srb2input/keys"
	"github.com/srb2star/srb2input/logger"
	"github.com/srb2star/srb2input/sensitivity"
	"github.com/srb2star/srb2input/touch"
)

// Gameplay is the interface to the game, for the purposes of event dispatch.
type Gameplay interface {
	// false when the menu, console or chat window are open
	InGameInput() bool
}

// MouseState is the movement of a mouse since the last reset. The values have
// been scaled by the preferred sensitivity.
type MouseState struct {
	X     int
	Y     int
	LookY int
}

// Axis is the position of a pair of joystick axes.
type Axis struct {
	X int
	Y int
}

// the number of double-click detectors needed for a joystick. the joystick
// buttons and the hat directions are contiguous.
const numJoyDetectors = keys.NumJoyButtons + keys.NumHatDirs

// Input is the state of every input device.
type Input struct {
	set   *bindings.Set
	prefs *Preferences
	game  Gameplay
	touch *touch.Resolver

	down [keys.NumInputs]bool

	mouse [bindings.NumPlayers]MouseState
	joy   [bindings.NumPlayers][JoyAxisSets]Axis

	mouseClicks [bindings.NumPlayers][keys.NumMouseButtons]dclick.Detector
	joyClicks   [bindings.NumPlayers][numJoyDetectors]dclick.Detector

	// the key pressed by a finger on a menu navigation button
	navigation [touch.NumFingers]keys.Code
}

// NewInput is the preferred method of initialisation for the Input type.
func NewInput(set *bindings.Set, prefs *Preferences, game Gameplay) *Input {
	return &Input{
		set:   set,
		prefs: prefs,
		game:  game,
	}
}

// AttachTouch adds the touchscreen resolver to the input. Touch events are
// ignored until a resolver is attached.
func (in *Input) AttachTouch(r *touch.Resolver) {
	in.touch = r
}

// Touch returns the attached touchscreen resolver. Can be nil.
func (in *Input) Touch() *touch.Resolver {
	return in.touch
}

// Bindings returns the binding set used to answer ControlActive().
func (in *Input) Bindings() *bindings.Set {
	return in.set
}

func playerOf(t EventType) bindings.Player {
	switch t {
	case Mouse2, Joystick2:
		return bindings.Player2
	}
	return bindings.Player1
}

// Dispatch a single input event. Every call, whatever the event, ends with a
// sweep of the double-click detectors.
func (in *Input) Dispatch(ev Event) {
	switch ev.Type {
	case KeyDown, KeyUp:
		k := keys.Code(ev.Key)
		if !k.Valid() {
			if paranoia {
				logger.Logf(logger.Allow, "userinput", "%s: key code out of range (%d)", ev.Type, ev.Key)
			}
			break
		}
		in.down[k] = ev.Type == KeyDown

	case Mouse, Mouse2:
		in.mouseMotion(playerOf(ev.Type), ev)

	case Joystick, Joystick2:
		in.joystick(playerOf(ev.Type), ev)

	case TouchDown, TouchMotion, TouchUp:
		in.touchEvent(ev)

	default:
		if paranoia {
			logger.Logf(logger.Allow, "userinput", "unknown event type (%d)", ev.Type)
		}
	}

	in.Sweep()
}

func (in *Input) mouseMotion(player bindings.Player, ev Event) {
	if !in.game.InGameInput() {
		return
	}
	if in.prefs != nil && !in.prefs.UseMouse.Get().(bool) {
		return
	}

	sens, ysens := in.prefs.mouseSensitivity(player)
	in.mouse[player] = MouseState{
		X:     sensitivity.Scale(ev.X, sens, sens),
		Y:     sensitivity.Scale(ev.Y, sens, sens),
		LookY: sensitivity.Scale(ev.Y, ysens, sens),
	}
}

func (in *Input) joystick(player bindings.Player, ev Event) {
	if ev.Key < 0 || ev.Key >= JoyAxisSets {
		if paranoia {
			logger.Logf(logger.Allow, "userinput", "%s: axis set out of range (%d)", ev.Type, ev.Key)
		}
		return
	}
	if !in.game.InGameInput() {
		return
	}

	ax := &in.joy[player][ev.Key]
	if ev.X != AxisUnchanged {
		ax.X = ev.X
	}
	if ev.Y != AxisUnchanged {
		ax.Y = ev.Y
	}
}

func (in *Input) touchEvent(ev Event) {
	if in.touch == nil {
		return
	}

	tev := touch.Event{
		Finger:   ev.Key,
		X:        ev.X,
		Y:        ev.Y,
		DX:       ev.DX,
		DY:       ev.DY,
		Pressure: ev.Pressure,
	}
	switch ev.Type {
	case TouchDown:
		tev.Type = touch.Down
	case TouchMotion:
		tev.Type = touch.Move
	case TouchUp:
		tev.Type = touch.Up
	}

	if ev.Key >= 0 && ev.Key < touch.NumFingers {
		nav := &in.navigation[ev.Key]
		switch tev.Type {
		case touch.Down:
			if !in.game.InGameInput() {
				if k, ok := in.touch.Navigate(tev); ok {
					in.down[k] = true
					*nav = k
					return
				}
			}
		case touch.Up:
			if *nav != keys.Null {
				in.down[*nav] = false
				*nav = keys.Null
			}
		}
	}

	in.touch.Handle(tev)
}

// TouchMouse implements the touch.MouseSink interface. Camera movement from
// the touchscreen replaces the first player's mouse movement.
func (in *Input) TouchMouse(x int, y int, lookY int) {
	in.mouse[bindings.Player1] = MouseState{X: x, Y: y, LookY: lookY}
}

// Sweep the double-click detectors for every mouse button, joystick button
// and hat direction with the current state of the button. A completed
// double-click sets the corresponding double-click key for the duration of
// one sweep.
func (in *Input) Sweep() {
	firsts := [bindings.NumPlayers]struct {
		mouse keys.Code
		joy   keys.Code
	}{
		{keys.Mouse1, keys.Joy1},
		{keys.SecMouse1, keys.SecJoy1},
	}

	for p, f := range firsts {
		for i := range in.mouseClicks[p] {
			in.sweep(&in.mouseClicks[p][i], f.mouse+keys.Code(i))
		}
		for i := range in.joyClicks[p] {
			in.sweep(&in.joyClicks[p][i], f.joy+keys.Code(i))
		}
	}
}

func (in *Input) sweep(dt *dclick.Detector, k keys.Code) {
	dbl, ok := keys.DoubleClickOf(k)
	if !ok {
		return
	}
	in.down[dbl] = dt.Check(in.down[k])
}

// KeyDown returns true if the key is currently down. Always false for a code
// outside of the valid range.
func (in *Input) KeyDown(k keys.Code) bool {
	if !k.Valid() {
		return false
	}
	return in.down[k]
}

// ControlActive returns true if either of the keys bound to the control for
// the player is down. For the first player the control is also active if a
// finger is holding it on the touchscreen.
func (in *Input) ControlActive(player bindings.Player, c controls.Control) bool {
	if !player.Valid() || !c.Valid() {
		return false
	}
	for _, k := range in.set.Table(player).Bound(c) {
		if k != keys.Null && in.KeyDown(k) {
			return true
		}
	}
	if player == bindings.Player1 && in.touch != nil {
		return in.touch.Held(c)
	}
	return false
}

// Mouse returns the movement of the player's mouse.
func (in *Input) Mouse(player bindings.Player) MouseState {
	if !player.Valid() {
		return MouseState{}
	}
	return in.mouse[player]
}

// Joystick returns the position of an axis set of the player's joystick.
func (in *Input) Joystick(player bindings.Player, set int) Axis {
	if !player.Valid() || set < 0 || set >= JoyAxisSets {
		return Axis{}
	}
	return in.joy[player][set]
}

// TouchJoystick returns the position of the virtual joystick on the
// touchscreen. The values are zero if no resolver is attached.
func (in *Input) TouchJoystick() (x float32, y float32, pressure float32) {
	if in.touch == nil {
		return 0, 0, 0
	}
	return in.touch.Joystick()
}

// ResetMice sets the mouse movement of both players to zero. Should be called
// once the movement has been consumed.
func (in *Input) ResetMice() {
	in.mouse = [bindings.NumPlayers]MouseState{}
}

// ResetJoysticks centres every joystick axis.
func (in *Input) ResetJoysticks() {
	in.joy = [bindings.NumPlayers][JoyAxisSets]Axis{}
}

// Reset releases every key, resets the analog state and the double-click
// detectors, and lifts every finger on the touchscreen.
func (in *Input) Reset() {
	in.down = [keys.NumInputs]bool{}
	in.ResetMice()
	in.ResetJoysticks()
	in.mouseClicks = [bindings.NumPlayers][keys.NumMouseButtons]dclick.Detector{}
	in.joyClicks = [bindings.NumPlayers][numJoyDetectors]dclick.Detector{}
	in.navigation = [touch.NumFingers]keys.Code{}
	if in.touch != nil {
		in.touch.Reset()
	}
}
