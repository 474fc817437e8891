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

// Package paths contains functions to prepare paths to srb2input resources:
// the preferences file and the saved control config.
//
// The ResourcePath() function prepends the resource with the appropriate
// config directory. For example, the following returns the path to the
// default control config.
//
//	pth, err := paths.ResourcePath("", "config.cfg")
//
// In development builds the base path is ".srb2input" in the current
// directory. Release builds, built with the "release" tag, use the user's
// config directory as reported by os.UserConfigDir(). In both cases the
// directory is created if it does not already exist.
package paths
