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

package userinput_test

import (
	"path/filepath"
	"testing"

	"github.com/srb2star/srb2input/bindings"
	"github.com/srb2star/srb2input/prefs"
	"github.com/srb2star/srb2input/schemes"
	"github.com/srb2star/srb2input/test"
	"github.com/srb2star/srb2input/userinput"
)

func TestPreferenceDefaults(t *testing.T) {
	set := bindings.NewSet(schemes.Defaults(schemes.FPS))
	p, err := userinput.NewPreferences(set, nil)
	test.DemandSuccess(t, err)

	test.ExpectEquality(t, p.MouseSens.Get(), userinput.DefaultMouseSens)
	test.ExpectEquality(t, p.MouseYSens2.Get(), userinput.DefaultMouseSens)
	test.ExpectEquality(t, p.UseMouse.Get(), true)
	test.ExpectEquality(t, p.ControlPerKey.String(), "One")
	test.ExpectEquality(t, p.Touch.Sens.Get(), 40)

	// sensitivity is bounded
	test.DemandSuccess(t, p.MouseSens.Set(1000))
	test.ExpectEquality(t, p.MouseSens.Get(), 100)
	test.DemandSuccess(t, p.MouseSens.Set(0))
	test.ExpectEquality(t, p.MouseSens.Get(), 1)
}

func TestControlPerKey(t *testing.T) {
	set := bindings.NewSet(schemes.Defaults(schemes.FPS))
	p, err := userinput.NewPreferences(set, nil)
	test.DemandSuccess(t, err)

	test.DemandSuccess(t, p.ControlPerKey.Set("Several"))
	test.ExpectEquality(t, set.Mode, bindings.Shared)

	set.Mode = bindings.Exclusive
	test.ExpectEquality(t, p.ControlPerKey.String(), "One")

	test.ExpectFailure(t, p.ControlPerKey.Set("Many"))
	test.ExpectEquality(t, set.Mode, bindings.Exclusive)
}

func TestPreferencesOnDisk(t *testing.T) {
	pth := filepath.Join(t.TempDir(), prefs.DefaultPrefsFile)

	set := bindings.NewSet(schemes.Defaults(schemes.FPS))
	dsk, err := prefs.NewDisk(pth)
	test.DemandSuccess(t, err)
	p, err := userinput.NewPreferences(set, dsk)
	test.DemandSuccess(t, err)

	test.DemandSuccess(t, p.MouseSens.Set(55))
	test.DemandSuccess(t, p.ControlPerKey.Set("Several"))
	test.DemandSuccess(t, p.Touch.MovementStyle.Set("D-Pad"))
	test.DemandSuccess(t, p.Save())

	set = bindings.NewSet(schemes.Defaults(schemes.FPS))
	dsk, err = prefs.NewDisk(pth)
	test.DemandSuccess(t, err)
	p, err = userinput.NewPreferences(set, dsk)
	test.DemandSuccess(t, err)

	test.ExpectEquality(t, p.MouseSens.Get(), 55)
	test.ExpectEquality(t, set.Mode, bindings.Shared)
	test.ExpectEquality(t, p.Touch.MovementStyle.String(), "D-Pad")
}
