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

package version_test

import (
	"testing"

	"github.com/srb2star/srb2input/test"
	"github.com/srb2star/srb2input/version"
)

func TestExecVersion(t *testing.T) {
	v := version.NewExecVersion(26, 3)
	test.ExpectEquality(t, v.Major(), 26)
	test.ExpectEquality(t, v.Minor(), 3)
	test.ExpectEquality(t, v.String(), "26.3")
	test.ExpectEquality(t, v.PredatesJoystickDefaults(), true)

	test.ExpectEquality(t, version.LatestExecVersion.Major(), 28)
	test.ExpectEquality(t, version.LatestExecVersion.String(), "28")
	test.ExpectEquality(t, version.LatestExecVersion.PredatesJoystickDefaults(), false)
	test.ExpectEquality(t, version.NewExecVersion(27, 0).PredatesJoystickDefaults(), false)

	// an unversioned config
	test.ExpectEquality(t, version.ExecVersion(0).PredatesJoystickDefaults(), true)
}

func TestPlainNumberIsMajor(t *testing.T) {
	v := version.ExecVersion(26)
	test.ExpectEquality(t, v.Major(), 26)
	test.ExpectEquality(t, v.Minor(), 0)
}
