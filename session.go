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

package main

import (
	"io"

	"github.com/srb2star/srb2input/bindings"
	"github.com/srb2star/srb2input/config"
	"github.com/srb2star/srb2input/curated"
	"github.com/srb2star/srb2input/prefs"
	"github.com/srb2star/srb2input/schemes"
	"github.com/srb2star/srb2input/userinput"
)

// session is the state shared by every mode. the binding set, the device
// preferences and the config interpreter that reads and writes them.
type session struct {
	set    *bindings.Set
	prefs  *userinput.Preferences
	interp *config.Interpreter
}

// newSession prepares the binding set with the defaults of the scheme. the
// preferences are loaded from the prefs file if the path is not empty.
// feedback from config commands is written to out.
func newSession(scheme schemes.ID, prefsPath string, out io.Writer) (*session, error) {
	s := &session{
		set: bindings.NewSet(schemes.Defaults(scheme)),
	}

	var dsk *prefs.Disk
	if prefsPath != "" {
		var err error
		dsk, err = prefs.NewDisk(prefsPath)
		if err != nil {
			return nil, err
		}
	}

	var err error
	s.prefs, err = userinput.NewPreferences(s.set, dsk)
	if err != nil {
		return nil, err
	}

	s.interp = config.NewInterpreter(s.set, out)
	err = s.variables()
	if err != nil {
		return nil, err
	}

	return s, nil
}

// the console variables that are read from and written to the config file.
// the names are the names used by the game
func (s *session) variables() error {
	vars := []struct {
		name string
		v    config.Variable
	}{
		{"mousesens", &s.prefs.MouseSens},
		{"mouseysens", &s.prefs.MouseYSens},
		{"mousesens2", &s.prefs.MouseSens2},
		{"mouseysens2", &s.prefs.MouseYSens2},
		{"use_mouse", &s.prefs.UseMouse},
		{"controlperkey", s.prefs.ControlPerKey},
		{"touch_movementstyle", &s.prefs.Touch.MovementStyle},
		{"touch_tinycontrols", &s.prefs.Touch.Tiny},
		{"touch_camera", &s.prefs.Touch.Camera},
		{"touch_transinput", &s.prefs.Touch.InputTransparency},
		{"touch_transmenu", &s.prefs.Touch.MenuTransparency},
		{"touchsens", &s.prefs.Touch.Sens},
		{"touchysens", &s.prefs.Touch.YSens},
	}

	for _, v := range vars {
		if err := s.interp.Variable(v.name, v.v); err != nil {
			return err
		}
	}

	return nil
}

// load the config file. a missing file is not an error if optional is true,
// in which case the defaults remain in place.
func (s *session) load(pth string, optional bool) error {
	err := s.interp.Load(pth)
	if err != nil {
		if optional && curated.Is(err, config.NoConfigFile) {
			return nil
		}
		return err
	}
	return nil
}
