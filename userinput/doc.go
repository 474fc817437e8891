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

// Package userinput is the single entry point for raw input events. It keeps
// the state of every key, mouse button and joystick button, the analog
// movement of the mice and joysticks, and synthesises the double-click keys.
//
// Game code asks the Input type whether a control is active for a player.
// The answer comes from the key state and the player's binding table, plus
// the touchscreen controls for the first player.
//
// The GUI implementation in use during development was SDL and so there will
// be a bias towards that system. See the sdlevents package.
package userinput
