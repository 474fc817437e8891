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

import (
	"github.com/srb2star/srb2input/controls"
	"github.com/srb2star/srb2input/keys"
	"github.com/srb2star/srb2input/sensitivity"
)

// EventType is the type of a touch Event.
type EventType int

// List of valid EventType values.
const (
	Down EventType = iota
	Move
	Up
)

// Event is a single touch event for one finger. X and Y are the position in
// screen pixels. DX and DY are the change in position since the last event
// for the finger.
type Event struct {
	Type     EventType
	Finger   int
	X        int
	Y        int
	DX       int
	DY       int
	Pressure float32
}

// GameState is the part of the game state that the resolver needs to know
// about.
type GameState int

// List of valid GameState values.
const (
	StateOther GameState = iota
	StateLevel
	StateIntermission
	StateCutscene
)

// Game is the interface to the game, for the purposes of the resolver.
type Game interface {
	State() GameState

	// false when the menu, console or chat window are open
	InGameInput() bool

	// whether a blocking prompt is hiding the HUD at the virtual row
	PromptHidesHUD(row int) bool

	ChatMuted() bool
}

// Actions are the side effects of the action controls. Pause and
// SwitchViewpoint return false if the action had no effect.
type Actions interface {
	OpenMenu()
	ToggleConsole()
	Pause() bool
	SwitchViewpoint() bool
	Screenshot()
	ToggleMovie()
	ToggleChat()
}

// MouseSink receives the camera movement of a finger, as if the movement was
// made with the mouse. The values have been scaled by the touch sensitivity.
type MouseSink interface {
	TouchMouse(x int, y int, lookY int)
}

// Resolver maps touch events to game controls.
type Resolver struct {
	Fingers [NumFingers]Finger

	prefs   *Preferences
	game    Game
	actions Actions
	mouse   MouseSink

	ctx    LayoutContext
	layout *Layout
	nav    *Navigation

	// controls held by a finger
	held [controls.Num]bool

	// virtual joystick
	joyX     float32
	joyY     float32
	pressure float32

	tick int
}

// NewResolver is the preferred method of initialisation for the Resolver
// type. The actions and mouse arguments can be nil.
func NewResolver(prefs *Preferences, game Game, actions Actions, mouse MouseSink) *Resolver {
	r := &Resolver{
		prefs:   prefs,
		game:    game,
		actions: actions,
		mouse:   mouse,
	}
	prefs.relayout = func() {
		r.Relayout(r.ctx)
	}
	r.Relayout(LayoutContext{})
	return r
}

// Relayout recomputes the layout for the context. The Tiny and Style fields
// of the context are taken from the preferences.
func (r *Resolver) Relayout(ctx LayoutContext) {
	ctx.Tiny = r.prefs.Tiny.Get().(bool)
	ctx.Style = r.prefs.Style()

	// preserve the feedback state of the existing layout
	var pressed [controls.Num]int
	if r.layout != nil {
		for i := range r.layout.Controls {
			pressed[i] = r.layout.Controls[i].Pressed
		}
	}

	r.layout = NewLayout(ctx)
	r.nav = NewNavigation(ctx)
	r.ctx = r.layout.Context()

	for i := range r.layout.Controls {
		r.layout.Controls[i].Pressed = pressed[i]
	}
}

// Layout returns the current layout.
func (r *Resolver) Layout() *Layout {
	return r.layout
}

// Navigation returns the current menu navigation layout.
func (r *Resolver) Navigation() *Navigation {
	return r.nav
}

// Held returns true if a finger is holding the control.
func (r *Resolver) Held(c controls.Control) bool {
	if !c.Valid() {
		return false
	}
	return r.held[c]
}

// Joystick returns the position of the virtual joystick. A value of one is a
// displacement of half the size of the joystick area.
func (r *Resolver) Joystick() (x float32, y float32, pressure float32) {
	return r.joyX, r.joyY, r.pressure
}

// Tick advances the resolver's clock by one game tick. The clock is used for
// the pressed feedback of the action buttons.
func (r *Resolver) Tick() {
	r.tick++
}

// Now returns the current tick.
func (r *Resolver) Now() int {
	return r.tick
}

// Reset lifts every finger and releases every control.
func (r *Resolver) Reset() {
	r.Fingers = [NumFingers]Finger{}
	r.held = [controls.Num]bool{}
	r.zeroJoystick()
}

func (r *Resolver) zeroJoystick() {
	r.joyX = 0
	r.joyY = 0
	r.pressure = 0
}

func (r *Resolver) acceptState() bool {
	switch r.game.State() {
	case StateLevel, StateIntermission, StateCutscene:
		return true
	}
	return false
}

// Navigate checks whether a touch-down event is on one of the menu
// navigation buttons.
func (r *Resolver) Navigate(ev Event) (keys.Code, bool) {
	if ev.Type != Down {
		return keys.Null, false
	}
	return r.nav.Hit(ev.X, ev.Y)
}

// the ways of resolving a touch down or touch motion event, in the order they
// are tried. a strategy returns true if the event has been dealt with
var strategies = [...]struct {
	name    string
	resolve func(r *Resolver, f *Finger, ev Event) bool
}{
	{name: "buttons", resolve: (*Resolver).buttons},
	{name: "dpad", resolve: (*Resolver).dpad},
	{name: "forced", resolve: (*Resolver).forced},
	{name: "analog", resolve: (*Resolver).analog},
}

// Handle a touch event. Returns the name of the strategy that dealt with the
// event, or the empty string if no strategy did.
//
// Release events are always handled. Other events are ignored outside of
// levels, intermissions and cutscenes.
func (r *Resolver) Handle(ev Event) string {
	if ev.Finger < 0 || ev.Finger >= NumFingers {
		return ""
	}
	f := &r.Fingers[ev.Finger]

	if ev.Type == Up {
		r.lift(f)
		return "lift"
	}

	if !r.acceptState() {
		return ""
	}

	if !r.game.InGameInput() {
		r.zeroJoystick()
		return ""
	}

	if ev.Type == Move && f.IgnoreMotion {
		return ""
	}

	for _, s := range strategies {
		if s.resolve(r, f, ev) {
			return s.name
		}
	}

	return ""
}

func (r *Resolver) lift(f *Finger) {
	if c, ok := f.Control(); ok {
		r.held[c] = false
	}
	if f.motion == DrivingJoystick {
		r.zeroJoystick()
	}
	f.IgnoreMotion = false
	f.release()
}

// buttons checks whether the finger is on one of the on-screen buttons.
func (r *Resolver) buttons(f *Finger, ev Event) bool {
	if f.analog() {
		return false
	}

	dupx, dupy := r.ctx.DupX, r.ctx.DupY

	// a moving finger lets go of the movement button it was holding so that
	// it doesn't stick when the finger slides on to another button. action
	// buttons ignore motion
	if ev.Type == Move {
		if c, ok := f.Control(); ok {
			if !c.IsPlayerControl() {
				return r.layout.Controls[c].Contains(ev.X, ev.Y, dupx, dupy)
			}
			r.held[c] = false
			f.release()
		}
	}

	for c := controls.Forward; c < controls.Num; c++ {
		reg := &r.layout.Controls[c]
		if !reg.Defined() || reg.Hidden {
			continue
		}
		if reg.DPad && r.ctx.Style != DPadStyle {
			continue
		}
		if r.held[c] || !reg.Contains(ev.X, ev.Y, dupx, dupy) {
			continue
		}

		if c.IsPlayerControl() {
			r.held[c] = true
		} else if r.fire(c) {
			reg.Pressed = r.tick + pressedTicks
		}

		f.place(ev)
		f.hold(c)
		return true
	}

	return false
}

// fire the side effect of an action control. returns false if there was no
// effect
func (r *Resolver) fire(c controls.Control) bool {
	switch c {
	case controls.TalkKey, controls.TeamKey:
		if r.game.ChatMuted() {
			return false
		}
		if c == controls.TeamKey && !r.ctx.TeamAssigned {
			return false
		}
	}

	if r.actions == nil {
		return true
	}

	switch c {
	case controls.SystemMenu:
		r.actions.OpenMenu()
	case controls.Console:
		r.actions.ToggleConsole()
	case controls.Pause:
		return r.actions.Pause()
	case controls.Viewpoint:
		return r.actions.SwitchViewpoint()
	case controls.Screenshot:
		r.actions.Screenshot()
	case controls.RecordGIF:
		r.actions.ToggleMovie()
	case controls.TalkKey, controls.TeamKey:
		r.actions.ToggleChat()
	}

	return true
}

// dpad checks whether a new finger is in the movement area. in the joystick
// style the finger starts driving the virtual joystick. in the d-pad style
// the area between the movement buttons does nothing
func (r *Resolver) dpad(f *Finger, ev Event) bool {
	if ev.Type != Down {
		return false
	}
	if !r.layout.DPad.Contains(ev.X, ev.Y, r.ctx.DupX, r.ctx.DupY) {
		return false
	}
	if r.ctx.Style == JoystickStyle {
		f.place(ev)
		f.drive(DrivingJoystick)
	}
	return true
}

// forced presses a control for the finger regardless of where it is. during
// intermissions and cutscenes any touch is the use control. while a prompt is
// blocking the controls a touch on the prompt is the jump control
func (r *Resolver) forced(f *Finger, ev Event) bool {
	if f.analog() {
		return false
	}

	c := controls.Null
	switch r.game.State() {
	case StateIntermission, StateCutscene:
		c = controls.Use
	default:
		if r.ctx.PromptBlocksControls && r.game.PromptHidesHUD(ev.Y/r.ctx.DupY) {
			c = controls.Jump
		}
	}

	if c == controls.Null {
		return false
	}

	f.place(ev)
	f.IgnoreMotion = true
	f.hold(c)
	r.held[c] = true
	return true
}

// analog movement of the virtual joystick or the camera. a finger that is not
// already driving either starts driving the camera
func (r *Resolver) analog(f *Finger, ev Event) bool {
	if !r.prefs.Camera.Get().(bool) {
		return false
	}

	if ev.Type == Move && f.analog() {
		switch f.motion {
		case DrivingJoystick:
			pad := r.layout.DPad.Scaled(r.ctx.DupX, r.ctx.DupY)
			dx := ev.X - (pad.X + pad.W/2)
			dy := ev.Y - (pad.Y + pad.H/2)
			r.joyX = float32(dx) / float32(max(pad.W/2, 1))
			r.joyY = float32(dy) / float32(max(pad.H/2, 1))
			r.pressure = ev.Pressure
		case DrivingCamera:
			if r.mouse != nil {
				sens := r.prefs.Sens.Get().(int)
				ysens := r.prefs.YSens.Get().(int)
				r.mouse.TouchMouse(
					sensitivity.Scale(ev.DX, sens, sens),
					sensitivity.Scale(ev.DY, sens, sens),
					sensitivity.Scale(ev.DY, ysens, sens),
				)
			}
		}
		f.place(ev)
		return true
	}

	f.place(ev)
	f.drive(DrivingCamera)
	return true
}
