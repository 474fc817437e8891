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

// Package keys is the key registry. Every physical or synthetic input source
// is identified by a Code. Codes are laid out in disjoint ranges, one range
// per device class:
//
//	[0, 256)        keyboard
//	Mouse1          8 mouse buttons
//	Joy1            32 joystick buttons
//	Hat1            4 hats, 4 directions each
//	DblMouse1       double-click of the mouse buttons
//	DblJoy1         double-click of the joystick buttons
//	DblHat1         double-click of the hat directions
//	SecMouse1 ...   the six blocks above, repeated for the second player
//	WheelUp ...     four mouse wheel codes
//
// Code zero is Null and means "unbound".
//
// The keyboard range follows the scancode-derived layout the config files
// were written with. Printable characters are their own code. The keypad
// occupies 0x80+71 to 0x80+83 and the extended navigation keys are placed
// above 0x80+100 so that the two never collide.
//
// Codes are converted to and from their symbolic names with Name() and
// Parse(). The name lookup is case insensitive.
package keys
