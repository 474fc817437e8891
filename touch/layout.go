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
	"strings"

	"github.com/srb2star/srb2input/controls"
	"github.com/srb2star/srb2input/keys"
)

// The size of the virtual screen.
const (
	VirtualWidth  = 320
	VirtualHeight = 200
)

// TicRate is the number of game ticks in one second.
const TicRate = 35

// pressed feedback lasts for a tenth of a second
const pressedTicks = TicRate / 10

// MovementStyle determines how the player moves with the touchscreen.
type MovementStyle int

// List of valid MovementStyle values.
const (
	// the four movement buttons are drawn as a directional pad
	DPadStyle MovementStyle = iota

	// the movement area acts as an analog joystick. the movement buttons are
	// not used
	JoystickStyle
)

func (s MovementStyle) String() string {
	switch s {
	case DPadStyle:
		return "D-Pad"
	case JoystickStyle:
		return "Joystick"
	}
	return "unknown"
}

// ParseMovementStyle is the reverse of MovementStyle.String(). Case is
// ignored.
func ParseMovementStyle(s string) (MovementStyle, bool) {
	switch strings.ToLower(s) {
	case "d-pad", "dpad":
		return DPadStyle, true
	case "joystick":
		return JoystickStyle, true
	}
	return JoystickStyle, false
}

// Region is an on-screen button as a rectangle in virtual coordinates.
type Region struct {
	X, Y, W, H int

	// the label drawn on the button. may be empty
	Name string

	Hidden bool

	// the region is one of the movement buttons of the d-pad
	DPad bool

	// the tick until which the button should be drawn as pressed
	Pressed int
}

// Defined returns false for a region that has not been placed in the layout.
func (r *Region) Defined() bool {
	return r.W != 0
}

// Scaled returns the region in screen coordinates.
func (r Region) Scaled(dupx int, dupy int) Region {
	r.X *= dupx
	r.Y *= dupy
	r.W *= dupx
	r.H *= dupy
	return r
}

// Contains returns true if the screen coordinates are inside the region after
// the region has been scaled. The edges of the region are inside.
func (r *Region) Contains(x int, y int, dupx int, dupy int) bool {
	s := r.Scaled(dupx, dupy)
	return x >= s.X && x <= s.X+s.W && y >= s.Y && y <= s.Y+s.H
}

// Lit returns true if the region should be drawn as pressed at the tick.
func (r *Region) Lit(now int) bool {
	return now < r.Pressed
}

// LayoutContext is the state of the screen and the game that the layout
// depends on.
type LayoutContext struct {
	// the size of the screen in pixels and the integer scale factors of the
	// virtual screen. zero scale factors are treated as one and a zero screen
	// size is treated as the virtual screen size
	Width  int
	Height int
	DupX   int
	DupY   int

	Tiny  bool
	Style MovementStyle

	// a text prompt is on screen. PromptBlocksControls is true if the prompt
	// prevents the player from moving
	PromptActive         bool
	PromptBlocksControls bool

	CanPause           bool
	CanSwitchViewpoint bool

	// chat is possible and not muted. TeamAssigned is true if the game has
	// teams and the player is on one of them
	ChatAvailable bool
	TeamAssigned  bool

	// the console is not available during record attack or while recording
	// a ghost
	ConsoleHidden bool
}

func (ctx LayoutContext) normalise() LayoutContext {
	ctx.DupX = max(ctx.DupX, 1)
	ctx.DupY = max(ctx.DupY, 1)
	if ctx.Width <= 0 {
		ctx.Width = VirtualWidth * ctx.DupX
	}
	if ctx.Height <= 0 {
		ctx.Height = VirtualHeight * ctx.DupY
	}
	return ctx
}

// Layout is the set of regions for the game controls plus the area used by
// the movement controls.
type Layout struct {
	Controls [controls.Num]Region

	// the area of the d-pad or virtual joystick
	DPad Region

	ctx LayoutContext
}

// Context returns the context the layout was created with, after
// normalisation.
func (l *Layout) Context() LayoutContext {
	return l.ctx
}

// Region returns the region for the control. Returns nil for invalid
// controls.
func (l *Layout) Region(c controls.Control) *Region {
	if !c.Valid() {
		return nil
	}
	return &l.Controls[c]
}

// the distance of the controls from the edge of the screen
const cornerOffset = 4

// NewLayout positions the on-screen controls for the context.
func NewLayout(ctx LayoutContext) *Layout {
	ctx = ctx.normalise()
	l := &Layout{ctx: ctx}
	c := &l.Controls

	offs := 0
	if ctx.PromptActive {
		offs = -32
	}

	// keep the movement controls at the bottom of screens that are taller
	// than the scaled virtual screen
	bottom := 0
	if ctx.Height != VirtualHeight*ctx.DupY {
		bottom = (ctx.Height - VirtualHeight*ctx.DupY) / ctx.DupY
	}

	vw := ctx.Width / ctx.DupX
	vh := ctx.Height / ctx.DupY

	if ctx.Tiny {
		l.DPad = Region{X: 24, Y: 128 + offs + bottom, W: 32, H: 32}
		if ctx.Style == JoystickStyle {
			l.DPad.X -= 4
			l.DPad.Y += 8
		}
		d := l.DPad

		c[controls.Forward] = Region{X: d.X + 8, Y: d.Y - 8, W: 20, H: 16}
		c[controls.Backward] = Region{X: d.X + 8, Y: d.Y + 24, W: 20, H: 16}
		c[controls.StrafeLeft] = Region{X: d.X - 8, Y: d.Y + 8, W: 16, H: 14}
		c[controls.StrafeRight] = Region{X: d.X + 24, Y: d.Y + 8, W: 16, H: 14}

		jump := &c[controls.Jump]
		*jump = Region{Name: "JMP", W: 40, H: 32}
		jump.X = vw - jump.W - cornerOffset - 12
		jump.Y = vh - jump.H - cornerOffset - 12 + offs

		c[controls.Use] = Region{Name: "SPN", W: 32, H: 24, X: jump.X - 32 - 12, Y: jump.Y + 8}
	} else {
		l.DPad = Region{X: 24, Y: 92 + offs + bottom, W: 64, H: 64}
		if ctx.Style == JoystickStyle {
			l.DPad.X -= 12
			l.DPad.Y += 16
		}
		d := l.DPad

		x := d.X + d.W - d.W/2
		c[controls.Forward] = Region{X: x - 12, Y: d.Y - d.W/4, W: 40, H: 32}
		c[controls.Backward] = Region{X: x - 12, Y: d.Y + d.H - d.W/4, W: 40, H: 32}
		c[controls.StrafeLeft] = Region{X: d.X - d.W/4, Y: d.Y + d.W/4, W: 32, H: 28}
		c[controls.StrafeRight] = Region{X: d.X + d.W - d.W/4, Y: d.Y + d.W/4, W: 32, H: 28}

		jump := &c[controls.Jump]
		*jump = Region{Name: "JUMP", W: 48, H: 48}
		jump.X = vw - jump.W - cornerOffset - 12
		jump.Y = vh - jump.H - cornerOffset - 12 + offs

		c[controls.Use] = Region{Name: "SPIN", W: 40, H: 32, X: jump.X - 40 - 12, Y: jump.Y + 12}
	}

	const gap = 8

	menu := &c[controls.SystemMenu]
	*menu = Region{W: 32, H: 32, Y: cornerOffset}
	menu.X = vw - menu.W - cornerOffset

	pause := &c[controls.Pause]
	*pause = Region{X: menu.X, Y: menu.Y, W: 24, H: 24}
	if ctx.CanPause {
		pause.X -= pause.W + 4
	} else {
		pause.Hidden = true
	}

	vp := &c[controls.Viewpoint]
	*vp = Region{X: pause.X, Y: pause.Y, Hidden: true}
	if ctx.CanSwitchViewpoint {
		vp.W = 32
		vp.H = 24
		vp.X -= vp.W + 4
		vp.Hidden = false
	}

	// the screenshot and movie buttons go under the pause and viewpoint
	// buttons if either are visible
	w, h := 40, 24
	var x, y int
	if !vp.Hidden || !pause.Hidden {
		ref := pause
		if pause.Hidden {
			ref = vp
		}
		x = ref.X - (w - ref.W)
		y = ref.Y + ref.H + gap
	} else {
		x = vp.X - w - 4
		y = vp.Y
	}

	c[controls.Screenshot] = Region{X: x, Y: y, W: w, H: h}
	c[controls.RecordGIF] = Region{X: x, Y: y + h + gap, W: w, H: h}

	c[controls.TalkKey] = Region{Hidden: true}
	c[controls.TeamKey] = Region{Hidden: true}
	if ctx.ChatAvailable {
		talk := &c[controls.TalkKey]
		*talk = Region{W: 32, H: 24, Y: menu.Y + menu.H + gap}
		talk.X = vw - talk.W - cornerOffset

		if ctx.TeamAssigned {
			c[controls.TeamKey] = Region{X: talk.X, Y: talk.Y + talk.H + gap, W: 32, H: 24}
		}
	}

	for _, d := range controls.DPad {
		c[d].DPad = true
	}

	if ctx.PromptBlocksControls {
		for i := range c {
			if controls.Control(i).IsPlayerControl() {
				c[i].Hidden = true
			}
		}
	}

	return l
}

// NavRegion is an on-screen button used to navigate the menus. Touching the
// region is the same as pressing the key.
type NavRegion struct {
	Region
	Key keys.Code
}

// Navigation is the set of menu navigation buttons.
type Navigation struct {
	Regions []NavRegion
	ctx     LayoutContext
}

// NewNavigation positions the menu navigation buttons for the context. The
// buttons are back (escape), confirm (enter) and the console toggle.
func NewNavigation(ctx LayoutContext) *Navigation {
	ctx = ctx.normalise()
	vw := ctx.Width / ctx.DupX

	back := NavRegion{Key: keys.Escape, Region: Region{X: cornerOffset, Y: cornerOffset, W: 24, H: 24}}
	confirm := NavRegion{Key: keys.Enter, Region: Region{X: vw - 24 - cornerOffset, Y: cornerOffset, W: 24, H: 24}}

	console := NavRegion{Key: keys.Console, Region: Region{Hidden: true}}
	if !ctx.ConsoleHidden {
		console.Region = Region{X: cornerOffset, Y: confirm.Y + confirm.H + 8, W: 24, H: 24}
	}

	return &Navigation{
		Regions: []NavRegion{back, confirm, console},
		ctx:     ctx,
	}
}

// Hit returns the key of the first visible navigation button that contains
// the screen coordinates.
func (n *Navigation) Hit(x int, y int) (keys.Code, bool) {
	for i := range n.Regions {
		r := &n.Regions[i]
		if r.Hidden || !r.Defined() {
			continue
		}
		if r.Contains(x, y, n.ctx.DupX, n.ctx.DupY) {
			return r.Key, true
		}
	}
	return keys.Null, false
}
