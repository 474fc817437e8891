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

// Package modalflag extends the flag package from the standard library with
// program modes. Each mode has its own set of flags and, optionally, its own
// set of sub-modes.
//
// A Modes value is started with NewArgs() and then parsed one layer at a time
// with Parse(). After each layer the selected mode is available with Mode()
// and the path of modes so far with Path():
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("CHECK", "BIND")
//	if r, err := md.Parse(); r != modalflag.ParseContinue {
//		return err
//	}
//
//	switch md.Mode() {
//	case "BIND":
//		md.NewMode()
//		player := md.AddInt("player", 1, "player to bind")
//		...
//	}
//
// The first sub-mode given to AddSubModes() is the default and is selected if
// the next argument does not name a sub-mode. Sub-modes are compared without
// regard to case and are always reported in upper case.
//
// Help is printed automatically to the Output writer if the -help flag is
// seen. In that case Parse() returns ParseHelp.
package modalflag
