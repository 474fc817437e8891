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

package easyterm

import (
	"bufio"
	"unicode"

	"github.com/srb2star/srb2input/curated"
	"github.com/srb2star/srb2input/keys"
)

// list of ASCII codes for non-alphanumeric characters
const (
	KeyCtrlC          = 3
	KeyTab            = 9
	KeyCarriageReturn = 13
	KeyEsc            = 27
	KeyBackspace      = 127
)

// list of ASCII code for characters that can follow KeyEsc
const (
	EscCursor = '['
	EscSS3    = 'O'
)

// UserInterrupt is returned by ReadKey() when CTRL-C is pressed.
const UserInterrupt = "easyterm: user interrupt"

// final characters of a CSI sequence without parameters
var cursorKeys = map[rune]keys.Code{
	'A': keys.Up,
	'B': keys.Down,
	'C': keys.Right,
	'D': keys.Left,
	'H': keys.Home,
	'F': keys.End,
}

// parameters of CSI sequences ending with a tilde
var tildeKeys = map[string]keys.Code{
	"1":  keys.Home,
	"2":  keys.Ins,
	"3":  keys.Del,
	"4":  keys.End,
	"5":  keys.PgUp,
	"6":  keys.PgDn,
	"15": keys.F5,
	"17": keys.F6,
	"18": keys.F7,
	"19": keys.F8,
	"20": keys.F9,
	"21": keys.F10,
	"23": keys.F11,
	"24": keys.F12,
}

// final characters of SS3 sequences
var ss3Keys = map[rune]keys.Code{
	'P': keys.F1,
	'Q': keys.F2,
	'R': keys.F3,
	'S': keys.F4,
	'H': keys.Home,
	'F': keys.End,
}

// ReadKey reads a single key press from a terminal in raw mode. Escape
// sequences for the cursor keys, the editing keys and the function keys are
// decoded. An escape character with nothing following it in the buffer is
// the escape key.
//
// Upper case letters are returned as lower case. Key presses that can not be
// decoded return the Null key code.
func ReadKey(r *bufio.Reader) (keys.Code, error) {
	c, _, err := r.ReadRune()
	if err != nil {
		return keys.Null, err
	}

	switch c {
	case KeyCtrlC:
		return keys.Null, curated.Errorf(UserInterrupt)
	case KeyCarriageReturn, '\n':
		return keys.Enter, nil
	case KeyTab:
		return keys.Tab, nil
	case KeyBackspace, '\b':
		return keys.Backspace, nil
	case KeyEsc:
		if r.Buffered() == 0 {
			return keys.Escape, nil
		}
		return readEscape(r)
	}

	if c < 0x80 && unicode.IsPrint(c) {
		return keys.Code(unicode.ToLower(c)), nil
	}

	return keys.Null, nil
}

func readEscape(r *bufio.Reader) (keys.Code, error) {
	c, _, err := r.ReadRune()
	if err != nil {
		return keys.Null, err
	}

	switch c {
	case EscCursor:
		var param []rune
		for {
			c, _, err = r.ReadRune()
			if err != nil {
				return keys.Null, err
			}
			if c >= '0' && c <= '9' || c == ';' {
				param = append(param, c)
				continue
			}
			break
		}
		if c == '~' {
			return tildeKeys[string(param)], nil
		}
		return cursorKeys[c], nil

	case EscSS3:
		c, _, err = r.ReadRune()
		if err != nil {
			return keys.Null, err
		}
		return ss3Keys[c], nil
	}

	return keys.Null, nil
}
