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

// Package config reads and writes control config files. A config file is a
// list of console commands, one or more to a line. The commands understood
// by the Interpreter are:
//
//	setcontrol <controlname> <keyname> [<2nd keyname>]
//	setcontrol2 <controlname> <keyname> [<2nd keyname>]
//	execversion [<version>]
//
// Console variables can also be bound to the Interpreter with the Variable()
// function. A variable is set with the command:
//
//	<name> <value>
//
// Arguments can be double-quoted. Commands on the same line are separated
// by a semicolon and a double slash begins a comment that runs to the end of
// the line.
//
// A config file written by Save() begins with the execversion command. Files
// without that command are treated as being from before version numbering
// and so the gamepad defaults are backfilled when they are loaded. See the
// bindings package for details.
//
// The ExportJSON() and ImportJSON() functions convert a binding set to and
// from JSON. This is a convenience for tools that do not want to parse the
// command format.
package config
