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

package version

import "fmt"

// ExecVersion is the format version stored in a control config file. The
// major part is in the low sixteen bits and the minor part in the high
// sixteen bits, so a plain number in a config file is a major version. A
// config written without a version has the value zero.
type ExecVersion int

// the format version written by this version of the application.
const (
	latestMajor = 28
	latestMinor = 0
)

// LatestExecVersion is the newest config format.
const LatestExecVersion = ExecVersion(latestMajor | latestMinor<<16)

// JoystickDefaultsMajor is the first major format version to carry gamepad
// bindings for the controls listed in the bindings package. Configs older
// than this have the gamepad defaults backfilled when they are loaded.
const JoystickDefaultsMajor = 27

// NewExecVersion creates an ExecVersion from the major and minor parts.
func NewExecVersion(major int, minor int) ExecVersion {
	return ExecVersion((major & 0xffff) | minor<<16)
}

// Major part of the version.
func (v ExecVersion) Major() int {
	return int(v) & 0xffff
}

// Minor part of the version.
func (v ExecVersion) Minor() int {
	return int(v) >> 16
}

// PredatesJoystickDefaults returns true if the config was written before the
// gamepad defaults existed.
func (v ExecVersion) PredatesJoystickDefaults() bool {
	return v.Major() < JoystickDefaultsMajor
}

func (v ExecVersion) String() string {
	if v.Minor() == 0 {
		return fmt.Sprintf("%d", v.Major())
	}
	return fmt.Sprintf("%d.%d", v.Major(), v.Minor())
}
