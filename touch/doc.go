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

// Package touch implements the touchscreen virtual controls. A Layout is the
// set of on-screen button regions, computed from the screen size and the
// current state of the game. The Resolver takes touch events and decides
// which control, if any, each finger is pressing, or whether the finger is
// driving the virtual joystick or the camera.
//
// Regions are defined in virtual coordinates, with a base screen size of
// VirtualWidth by VirtualHeight. Finger coordinates are in screen pixels and
// regions are scaled by the layout's scale factors before hit testing.
//
// Layouts are never stored. They are recomputed whenever anything that
// affects them changes.
package touch
