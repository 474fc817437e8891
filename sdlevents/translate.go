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

package sdlevents

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/srb2star/srb2input/keys"
	"github.com/srb2star/srb2input/logger"
	"github.com/srb2star/srb2input/touch"
	"github.com/srb2star/srb2input/userinput"
)

// the range of SDL axis values is reduced by this amount
const axisShift = 5

// Dispatcher is the destination of translated events. Implemented by
// userinput.Input.
type Dispatcher interface {
	Dispatch(userinput.Event)
}

// the SDL ID of a finger occupying a finger slot
type fingerSlot struct {
	id   sdl.FingerID
	used bool
}

// Translator converts SDL events to userinput events.
type Translator struct {
	// the instance IDs of the joysticks for each player
	Joystick1 sdl.JoystickID
	Joystick2 sdl.JoystickID

	// the size of the screen in pixels. used to convert touch positions
	Width  int
	Height int

	fingers [touch.NumFingers]fingerSlot

	// last value of each hat for each player
	hats [2][keys.NumJoyHats]uint8
}

// NewTranslator is the preferred method of initialisation for the
// Translator type. Joystick instance IDs can be changed when the joysticks
// are opened.
func NewTranslator(width int, height int) *Translator {
	return &Translator{
		Joystick1: -1,
		Joystick2: -1,
		Width:     width,
		Height:    height,
	}
}

func keyEvent(down bool, k keys.Code) userinput.Event {
	if down {
		return userinput.Event{Type: userinput.KeyDown, Key: int(k)}
	}
	return userinput.Event{Type: userinput.KeyUp, Key: int(k)}
}

// the player for a joystick instance. the boolean is false if the joystick
// is not assigned to a player
func (tr *Translator) player(which sdl.JoystickID) (int, bool) {
	switch which {
	case tr.Joystick1:
		return 0, true
	case tr.Joystick2:
		return 1, true
	}
	return 0, false
}

// Translate an SDL event. Events that have no meaning for the input system
// return an empty list.
func (tr *Translator) Translate(ev sdl.Event) []userinput.Event {
	switch ev := ev.(type) {
	case *sdl.KeyboardEvent:
		if ev.Repeat != 0 {
			return nil
		}
		k, ok := KeyCode(ev.Keysym.Sym)
		if !ok {
			return nil
		}
		return []userinput.Event{keyEvent(ev.Type == sdl.KEYDOWN, k)}

	case *sdl.MouseButtonEvent:
		k, ok := MouseButton(ev.Button)
		if !ok {
			return nil
		}
		return []userinput.Event{keyEvent(ev.Type == sdl.MOUSEBUTTONDOWN, k)}

	case *sdl.MouseMotionEvent:
		// the game's Y axis is the opposite way to SDL
		return []userinput.Event{{Type: userinput.Mouse, X: int(ev.XRel), Y: -int(ev.YRel)}}

	case *sdl.MouseWheelEvent:
		// a wheel movement is a press and a release of the wheel key
		var k keys.Code
		switch {
		case ev.Y > 0:
			k = keys.WheelUp
		case ev.Y < 0:
			k = keys.WheelDown
		default:
			return nil
		}
		return []userinput.Event{keyEvent(true, k), keyEvent(false, k)}

	case *sdl.JoyButtonEvent:
		p, ok := tr.player(ev.Which)
		if !ok || int(ev.Button) >= keys.NumJoyButtons {
			return nil
		}
		first := keys.Joy1
		if p == 1 {
			first = keys.SecJoy1
		}
		return []userinput.Event{keyEvent(ev.Type == sdl.JOYBUTTONDOWN, first+keys.Code(ev.Button))}

	case *sdl.JoyHatEvent:
		p, ok := tr.player(ev.Which)
		if !ok || int(ev.Hat) >= keys.NumJoyHats {
			return nil
		}
		return tr.hat(p, int(ev.Hat), ev.Value)

	case *sdl.JoyAxisEvent:
		p, ok := tr.player(ev.Which)
		if !ok {
			return nil
		}
		set := int(ev.Axis) / 2
		if set >= userinput.JoyAxisSets {
			return nil
		}
		out := userinput.Event{Type: userinput.Joystick, Key: set, X: userinput.AxisUnchanged, Y: userinput.AxisUnchanged}
		if p == 1 {
			out.Type = userinput.Joystick2
		}
		v := int(ev.Value) >> axisShift
		if ev.Axis%2 == 0 {
			out.X = v
		} else {
			out.Y = v
		}
		return []userinput.Event{out}

	case *sdl.TouchFingerEvent:
		return tr.finger(ev)
	}

	return nil
}

// hat directions in the order of the hat key codes
var hatDirections = [4]uint8{sdl.HAT_UP, sdl.HAT_DOWN, sdl.HAT_LEFT, sdl.HAT_RIGHT}

// a hat event reports the state of every direction. only the directions that
// have changed produce an event
func (tr *Translator) hat(player int, hat int, value uint8) []userinput.Event {
	first := keys.Hat1
	if player == 1 {
		first = keys.SecHat1
	}
	first += keys.Code(hat * 4)

	prev := tr.hats[player][hat]
	tr.hats[player][hat] = value

	var out []userinput.Event
	for i, d := range hatDirections {
		was := prev&d == d
		now := value&d == d
		if was != now {
			out = append(out, keyEvent(now, first+keys.Code(i)))
		}
	}
	return out
}

// the slot for the SDL finger. a new finger takes the first free slot. the
// boolean is false if there are no free slots
func (tr *Translator) slot(id sdl.FingerID, claim bool) (int, bool) {
	for i := range tr.fingers {
		if tr.fingers[i].used && tr.fingers[i].id == id {
			return i, true
		}
	}
	if !claim {
		return 0, false
	}
	for i := range tr.fingers {
		if !tr.fingers[i].used {
			tr.fingers[i] = fingerSlot{id: id, used: true}
			return i, true
		}
	}
	return 0, false
}

func (tr *Translator) finger(ev *sdl.TouchFingerEvent) []userinput.Event {
	out := userinput.Event{
		X:        int(ev.X * float32(tr.Width)),
		Y:        int(ev.Y * float32(tr.Height)),
		DX:       int(ev.DX * float32(tr.Width)),
		DY:       int(ev.DY * float32(tr.Height)),
		Pressure: ev.Pressure,
	}

	var ok bool
	switch ev.Type {
	case sdl.FINGERDOWN:
		out.Type = userinput.TouchDown
		out.Key, ok = tr.slot(ev.FingerID, true)
	case sdl.FINGERMOTION:
		out.Type = userinput.TouchMotion
		out.Key, ok = tr.slot(ev.FingerID, false)
	case sdl.FINGERUP:
		out.Type = userinput.TouchUp
		out.Key, ok = tr.slot(ev.FingerID, false)
		if ok {
			tr.fingers[out.Key].used = false
		}
	}

	if !ok {
		logger.Logf(logger.Allow, "sdlevents", "no finger slot for finger %d", ev.FingerID)
		return nil
	}

	return []userinput.Event{out}
}

// Service polls SDL for every pending event and dispatches the translated
// events. Returns false if a quit event was polled.
func (tr *Translator) Service(dsp Dispatcher) bool {
	running := true
	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		if _, ok := ev.(*sdl.QuitEvent); ok {
			running = false
			continue
		}
		for _, e := range tr.Translate(ev) {
			dsp.Dispatch(e)
		}
	}
	return running
}
