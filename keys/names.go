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

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
)

type keyName struct {
	code Code
	name string
}

// the order of the table is significant. when more than one name exists for a
// code the first entry is the one returned by Name()
var names []keyName

// folded name to code. built from the names table
var lookup map[string]Code

func init() {
	names = []keyName{
		{Space, "SPACE"},
		{CapsLock, "CAPS LOCK"},
		{Enter, "ENTER"},
		{Tab, "TAB"},
		{Escape, "ESCAPE"},
		{Backspace, "BACKSPACE"},

		{NumLock, "NUMLOCK"},
		{ScrollLock, "SCROLLLOCK"},

		{LeftWin, "LEFTWIN"},
		{RightWin, "RIGHTWIN"},
		{Menu, "MENU"},

		{LShift, "LSHIFT"},
		{RShift, "RSHIFT"},
		{LShift, "SHIFT"},
		{LCtrl, "LCTRL"},
		{RCtrl, "RCTRL"},
		{LCtrl, "CTRL"},
		{LAlt, "LALT"},
		{RAlt, "RALT"},
		{LAlt, "ALT"},

		{KeypadSlash, "KEYPAD /"},
		{Keypad7, "KEYPAD 7"},
		{Keypad8, "KEYPAD 8"},
		{Keypad9, "KEYPAD 9"},
		{MinusPad, "KEYPAD -"},
		{Keypad4, "KEYPAD 4"},
		{Keypad5, "KEYPAD 5"},
		{Keypad6, "KEYPAD 6"},
		{PlusPad, "KEYPAD +"},
		{Keypad1, "KEYPAD 1"},
		{Keypad2, "KEYPAD 2"},
		{Keypad3, "KEYPAD 3"},
		{Keypad0, "KEYPAD 0"},
		{KeypadDel, "KEYPAD ."},

		{Home, "HOME"},
		{Up, "UP ARROW"},
		{PgUp, "PGUP"},
		{Left, "LEFT ARROW"},
		{Right, "RIGHT ARROW"},
		{End, "END"},
		{Down, "DOWN ARROW"},
		{PgDn, "PGDN"},
		{Ins, "INS"},
		{Del, "DEL"},
	}

	for i := 0; i < 10; i++ {
		names = append(names, keyName{F1 + Code(i), fmt.Sprintf("F%d", i+1)})
	}
	names = append(names,
		keyName{F11, "F11"},
		keyName{F12, "F12"},
		keyName{Console, "TILDE"},
		keyName{Pause, "PAUSE/BREAK"},
	)

	for i := 0; i < NumMouseButtons; i++ {
		names = append(names, keyName{Mouse1 + Code(i), fmt.Sprintf("MOUSE%d", i+1)})
	}
	appendSecMouse("SEC_MOUSE", SecMouse1)
	names = append(names,
		keyName{WheelUp, "Wheel 1 UP"},
		keyName{WheelDown, "Wheel 1 Down"},
		keyName{SecWheelUp, "Wheel 2 UP"},
		keyName{SecWheelDown, "Wheel 2 Down"},
	)

	appendNumbered("JOY", Joy1, NumJoyButtons)
	appendHats("HAT", Hat1)

	appendNumbered("DBLMOUSE", DblMouse1, NumMouseButtons)
	appendSecMouse("DBLSEC_MOUSE", DblSecMouse1)
	appendNumbered("DBLJOY", DblJoy1, NumJoyButtons)
	appendHats("DBLHAT", DblHat1)

	appendNumbered("SEC_JOY", SecJoy1, NumJoyButtons)
	appendHats("SEC_HAT", SecHat1)

	appendNumbered("DBLSEC_JOY", DblSecJoy1, NumJoyButtons)
	appendHats("DBLSEC_HAT", DblSecHat1)

	lookup = make(map[string]Code, len(names))
	for _, n := range names {
		f := foldName(n.name)
		if _, ok := lookup[f]; !ok {
			lookup[f] = n.code
		}
	}
}

// a Caser is stateful so a new one is created for every fold.
func foldName(s string) string {
	return cases.Fold().String(s)
}

func appendNumbered(prefix string, first Code, n int) {
	for i := 0; i < n; i++ {
		names = append(names, keyName{first + Code(i), fmt.Sprintf("%s%d", prefix, i+1)})
	}
}

// the secondary mouse has its first two buttons swapped in the name table.
func appendSecMouse(prefix string, first Code) {
	names = append(names,
		keyName{first, prefix + "2"},
		keyName{first + 1, prefix + "1"},
	)
	for i := 2; i < NumMouseButtons; i++ {
		names = append(names, keyName{first + Code(i), fmt.Sprintf("%s%d", prefix, i+1)})
	}
}

// hat directions in the order up, down, left, right. hats after the first
// have their number as a suffix.
func appendHats(prefix string, first Code) {
	dirs := [4]string{"UP", "DOWN", "LEFT", "RIGHT"}
	for h := 0; h < NumJoyHats; h++ {
		for d, dir := range dirs {
			n := prefix + dir
			if h > 0 {
				n = fmt.Sprintf("%s%d", n, h+1)
			}
			names = append(names, keyName{first + Code(h*4+d), n})
		}
	}
}

// Name returns the symbolic name for the key code. Printable characters are
// returned as themselves. Codes without an entry in the name table are
// returned in the generic form "KEY<n>".
func (k Code) Name() string {
	if k.Printable() {
		return string(rune(k))
	}
	for _, n := range names {
		if n.code == k {
			return n.name
		}
	}
	return fmt.Sprintf("KEY%d", int(k))
}

func (k Code) String() string {
	return k.Name()
}

// Parse the name of a key. The reverse of Name(). Single characters in the
// range (' ', 'z'] are taken to be the character code. The generic "KEY<n>"
// form is accepted for any valid code. Other names are looked up in the name
// table, without regard for case.
//
// Names that can not be resolved return the Null code.
func Parse(s string) Code {
	k, _ := Lookup(s)
	return k
}

// Lookup is the same as Parse() but the boolean return value indicates whether
// the name was resolved.
func Lookup(s string) (Code, bool) {
	if len(s) == 1 && s[0] > ' ' && s[0] <= 'z' {
		return Code(s[0]), true
	}

	if strings.HasPrefix(s, "KEY") && len(s) > 3 && s[3] >= '0' && s[3] <= '9' {
		d := strings.TrimLeft(s[3:], "0123456789")
		n, err := strconv.Atoi(s[3 : len(s)-len(d)])
		if err != nil || n >= NumInputs {
			return Null, false
		}
		return Code(n), true
	}

	if k, ok := lookup[foldName(s)]; ok {
		return k, true
	}

	return Null, false
}

// Names returns every name in the registry in table order. Aliases are
// included.
func Names() []string {
	s := make([]string, len(names))
	for i, n := range names {
		s[i] = n.name
	}
	return s
}
