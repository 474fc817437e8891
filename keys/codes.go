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

package keys

// Code identifies one input source.
type Code int

// Null is the unbound key code.
const Null Code = 0

// size of each device range.
const (
	NumKeys         = 256
	NumMouseButtons = 8
	NumJoyButtons   = 32
	NumJoyHats      = 4
	NumHatDirs      = NumJoyHats * 4
)

// first code of each device range.
const (
	Mouse1       Code = NumKeys
	Joy1         Code = Mouse1 + NumMouseButtons
	Hat1         Code = Joy1 + NumJoyButtons
	DblMouse1    Code = Hat1 + NumHatDirs
	DblJoy1      Code = DblMouse1 + NumMouseButtons
	DblHat1      Code = DblJoy1 + NumJoyButtons
	SecMouse1    Code = DblHat1 + NumHatDirs
	SecJoy1      Code = SecMouse1 + NumMouseButtons
	SecHat1      Code = SecJoy1 + NumJoyButtons
	DblSecMouse1 Code = SecHat1 + NumHatDirs
	DblSecJoy1   Code = DblSecMouse1 + NumMouseButtons
	DblSecHat1   Code = DblSecJoy1 + NumJoyButtons
	WheelUp      Code = DblSecHat1 + NumHatDirs
	WheelDown    Code = WheelUp + 1
	SecWheelUp   Code = WheelDown + 1
	SecWheelDown Code = SecWheelUp + 1

	// NumInputs is one more than the highest valid code
	NumInputs = int(SecWheelDown) + 1
)

// keyboard codes that are not their own printable character.
const (
	Tab       Code = 9
	Enter     Code = 13
	Escape    Code = 27
	Space     Code = 32
	Backspace Code = 127

	// the console toggle is a printable character but is never treated as one
	Console Code = '`'

	LCtrl    Code = 0x80 + 29
	RCtrl    Code = 0x80 + 30
	LShift   Code = 0x80 + 54
	RShift   Code = 0x80 + 55
	LAlt     Code = 0x80 + 56
	RAlt     Code = 0x80 + 57
	CapsLock Code = 0x80 + 58

	F1  Code = 0x80 + 0x3b
	F2  Code = F1 + 1
	F3  Code = F1 + 2
	F4  Code = F1 + 3
	F5  Code = F1 + 4
	F6  Code = F1 + 5
	F7  Code = F1 + 6
	F8  Code = F1 + 7
	F9  Code = F1 + 8
	F10 Code = F1 + 9
	F11 Code = 0x80 + 0x57
	F12 Code = 0x80 + 0x58

	NumLock    Code = 0x80 + 69
	ScrollLock Code = 0x80 + 70

	Keypad7   Code = 0x80 + 71
	Keypad8   Code = 0x80 + 72
	Keypad9   Code = 0x80 + 73
	MinusPad  Code = 0x80 + 74
	Keypad4   Code = 0x80 + 75
	Keypad5   Code = 0x80 + 76
	Keypad6   Code = 0x80 + 77
	PlusPad   Code = 0x80 + 78
	Keypad1   Code = 0x80 + 79
	Keypad2   Code = 0x80 + 80
	Keypad3   Code = 0x80 + 81
	Keypad0   Code = 0x80 + 82
	KeypadDel Code = 0x80 + 83

	LeftWin  Code = 0x80 + 91
	RightWin Code = 0x80 + 92
	Menu     Code = 0x80 + 93

	KeypadSlash Code = 0x80 + 100
	Home        Code = 0x80 + 103
	Up          Code = 0x80 + 104
	PgUp        Code = 0x80 + 105
	Left        Code = 0x80 + 107
	Right       Code = 0x80 + 109
	End         Code = 0x80 + 111
	Down        Code = 0x80 + 112
	PgDn        Code = 0x80 + 113
	Ins         Code = 0x80 + 114
	Del         Code = 0x80 + 115

	// the pause key is reserved and can never be bound to a control
	Pause Code = 255
)

// Class is the device class of a key code.
type Class int

// List of valid Class values.
const (
	ClassNone Class = iota
	ClassKeyboard
	ClassMouse
	ClassJoystick
	ClassHat
	ClassDblMouse
	ClassDblJoystick
	ClassDblHat
	ClassSecMouse
	ClassSecJoystick
	ClassSecHat
	ClassDblSecMouse
	ClassDblSecJoystick
	ClassDblSecHat
	ClassWheel
)

var classNames = [...]string{
	"none", "keyboard", "mouse", "joystick", "hat",
	"dblmouse", "dbljoystick", "dblhat",
	"secmouse", "secjoystick", "sechat",
	"dblsecmouse", "dblsecjoystick", "dblsechat",
	"wheel",
}

func (c Class) String() string {
	if c < 0 || int(c) >= len(classNames) {
		return "unknown"
	}
	return classNames[c]
}

// ranges in ascending code order. the index into the array plus one is the
// Class of the range.
var ranges = [...]struct {
	first Code
	size  int
}{
	{0, NumKeys},
	{Mouse1, NumMouseButtons},
	{Joy1, NumJoyButtons},
	{Hat1, NumHatDirs},
	{DblMouse1, NumMouseButtons},
	{DblJoy1, NumJoyButtons},
	{DblHat1, NumHatDirs},
	{SecMouse1, NumMouseButtons},
	{SecJoy1, NumJoyButtons},
	{SecHat1, NumHatDirs},
	{DblSecMouse1, NumMouseButtons},
	{DblSecJoy1, NumJoyButtons},
	{DblSecHat1, NumHatDirs},
	{WheelUp, 4},
}

// Valid returns true if the code is inside the range of input codes. Null is
// valid.
func (k Code) Valid() bool {
	return k >= 0 && int(k) < NumInputs
}

// Class returns the device class for the code. The Null code and any code
// outside of the valid range is ClassNone.
func (k Code) Class() Class {
	if k == Null || !k.Valid() {
		return ClassNone
	}
	for i, r := range ranges {
		if k >= r.first && int(k-r.first) < r.size {
			return Class(i + 1)
		}
	}
	return ClassNone
}

// DoubleClickOf returns the synthetic double-click code for a mouse button,
// joystick button or hat direction. The boolean is false if the code has no
// double-click counterpart.
func DoubleClickOf(k Code) (Code, bool) {
	switch k.Class() {
	case ClassMouse:
		return DblMouse1 + (k - Mouse1), true
	case ClassJoystick, ClassHat:
		return DblJoy1 + (k - Joy1), true
	case ClassSecMouse:
		return DblSecMouse1 + (k - SecMouse1), true
	case ClassSecJoystick, ClassSecHat:
		return DblSecJoy1 + (k - SecJoy1), true
	}
	return Null, false
}

// IsDoubleClick returns true if code is a synthetic double-click code.
func (k Code) IsDoubleClick() bool {
	switch k.Class() {
	case ClassDblMouse, ClassDblJoystick, ClassDblHat, ClassDblSecMouse, ClassDblSecJoystick, ClassDblSecHat:
		return true
	}
	return false
}

// Printable returns true if the code is a keyboard character that is named by
// the character itself.
func (k Code) Printable() bool {
	return k > ' ' && k <= 'z' && k != Console
}
