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

// Package controls defines the logical game controls. A control is the
// abstract action (jump, fire, forward) that is independent of the physical
// input that triggers it.
//
// The numeric value of a Control is stable and is used to index the binding
// tables. The canonical name is the name used in config files.
package controls

import "strings"

// Control is a logical game control.
type Control int

// List of valid Control values. Null is never a valid binding target.
const (
	Null Control = iota
	Forward
	Backward
	StrafeLeft
	StrafeRight
	TurnLeft
	TurnRight
	WeaponNext
	WeaponPrev
	Weapon1
	Weapon2
	Weapon3
	Weapon4
	Weapon5
	Weapon6
	Weapon7
	Weapon8
	Weapon9
	Weapon10
	Fire
	FireNormal
	TossFlag
	Use
	CamToggle
	CamReset
	LookUp
	LookDown
	CenterView
	MouseAiming
	TalkKey
	TeamKey
	Scores
	Jump
	Console
	Pause
	SystemMenu
	Screenshot
	RecordGIF
	Viewpoint
	Custom1
	Custom2
	Custom3

	// Num is the number of controls including Null
	Num
)

var names = [Num]string{
	"nothing",
	"forward",
	"backward",
	"strafeleft",
	"straferight",
	"turnleft",
	"turnright",
	"weaponnext",
	"weaponprev",
	"weapon1",
	"weapon2",
	"weapon3",
	"weapon4",
	"weapon5",
	"weapon6",
	"weapon7",
	"weapon8",
	"weapon9",
	"weapon10",
	"fire",
	"firenormal",
	"tossflag",
	"use",
	"camtoggle",
	"camreset",
	"lookup",
	"lookdown",
	"centerview",
	"mouseaiming",
	"talkkey",
	"teamtalkkey",
	"scores",
	"jump",
	"console",
	"pause",
	"systemmenu",
	"screenshot",
	"recordgif",
	"viewpoint",
	"custom1",
	"custom2",
	"custom3",
}

// Name returns the canonical config name of the control.
func (c Control) Name() string {
	if c < 0 || c >= Num {
		return ""
	}
	return names[c]
}

func (c Control) String() string {
	return c.Name()
}

// Valid returns true if the control can be the target of a binding.
func (c Control) Valid() bool {
	return c > Null && c < Num
}

// Lookup the control by its canonical name. The name is matched without
// regard to case. The Null control can not be looked up.
func Lookup(name string) (Control, bool) {
	for c := Forward; c < Num; c++ {
		if strings.EqualFold(names[c], name) {
			return c, true
		}
	}
	return Null, false
}

// IsPlayerControl returns false for the controls that trigger an action that
// has nothing to do with the movement of the player. Chat, menus and
// screenshot controls are examples of these "action" controls.
func (c Control) IsPlayerControl() bool {
	switch c {
	case TalkKey, TeamKey, Scores, Console, Pause, SystemMenu, Screenshot, RecordGIF, Viewpoint:
		return false
	}
	return true
}

// All returns every valid control in enumeration order.
func All() []Control {
	l := make([]Control, 0, Num-1)
	for c := Forward; c < Num; c++ {
		l = append(l, c)
	}
	return l
}
