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

// Package sdlevents translates SDL events into the raw input events of the
// userinput package.
//
// Keyboard keys, mouse buttons, the mouse wheel, joystick buttons and joystick
// hats become key events. Mouse motion becomes a Mouse event and joystick
// axes become Joystick events. Touch events use normalised coordinates in SDL
// and are converted to screen pixels using the size of the screen.
//
// SDL reports only one mouse so there are never Mouse2 events. Two joysticks
// are supported, the joystick for each player is chosen by its instance ID.
package sdlevents
