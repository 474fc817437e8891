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

package config_test

import (
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"github.com/srb2star/srb2input/bindings"
	"github.com/srb2star/srb2input/config"
	"github.com/srb2star/srb2input/controls"
	"github.com/srb2star/srb2input/curated"
	"github.com/srb2star/srb2input/keys"
	"github.com/srb2star/srb2input/prefs"
	"github.com/srb2star/srb2input/schemes"
	"github.com/srb2star/srb2input/test"
	"github.com/srb2star/srb2input/version"
)

func TestRoundTrip(t *testing.T) {
	pth := filepath.Join(t.TempDir(), config.DefaultConfigFile)

	set := bindings.NewSet(schemes.Defaults(schemes.FPS))

	// keys that need care when quoted
	set.Bind(bindings.Player1, controls.Custom1, '"', keys.Null)
	set.Bind(bindings.Player1, controls.Custom2, ';', '/')
	set.Bind(bindings.Player2, controls.Custom3, keys.Code(keys.NumInputs-1), keys.Null)

	it := config.NewInterpreter(set, nil)
	test.DemandSuccess(t, it.Save(pth))

	loaded := bindings.NewSet(schemes.Defaults(schemes.Custom))
	loaded.ExecVersion = 0
	out := &test.CompareWriter{}
	test.DemandSuccess(t, config.NewInterpreter(loaded, out).Load(pth))

	test.ExpectEquality(t, out.String(), "")
	test.ExpectEquality(t, loaded.Players, set.Players)
	test.ExpectEquality(t, loaded.ExecVersion, version.LatestExecVersion)
}

func TestWriteFormat(t *testing.T) {
	set := bindings.NewSet(schemes.Defaults(schemes.Platform))
	mode := &modeVariable{set: set}

	it := config.NewInterpreter(set, nil)
	test.DemandSuccess(t, it.Variable("controlperkey", mode))

	out := &test.CompareWriter{}
	test.DemandSuccess(t, it.Write(out))

	lines := out.Lines()
	test.DemandEquality(t, len(lines), 3+2*(int(controls.Num)-1))
	test.ExpectEquality(t, lines[0], "// srb2input configuration file")
	test.ExpectEquality(t, lines[1], fmt.Sprintf(`execversion "%d"`, int(version.LatestExecVersion)))
	test.ExpectEquality(t, lines[2], `controlperkey "One"`)
	test.ExpectEquality(t, lines[3], `setcontrol "forward" "UP ARROW"`)
	test.ExpectEquality(t, lines[3+int(controls.Jump)-1], `setcontrol "jump" "SPACE" "JOY6"`)

	// unbound controls are written with the generic name of the null key
	p2 := lines[3+int(controls.Num)-1:]
	test.ExpectEquality(t, p2[0], `setcontrol2 "forward" "KEY0"`)
	test.ExpectEquality(t, p2[int(controls.Jump)-1], `setcontrol2 "jump" "SEC_JOY6"`)
}

// a console variable for the binding mode, as is done by the userinput
// package with a prefs.Generic
type modeVariable struct {
	set *bindings.Set
}

func (m *modeVariable) String() string {
	return m.set.Mode.String()
}

func (m *modeVariable) Set(v prefs.Value) error {
	mode, ok := bindings.ParseMode(fmt.Sprintf("%v", v))
	if !ok {
		return fmt.Errorf("bad mode (%v)", v)
	}
	m.set.Mode = mode
	return nil
}

func TestLoadLegacy(t *testing.T) {
	set := bindings.NewSet(schemes.Defaults(schemes.FPS))
	set.ClearAll()

	it := config.NewInterpreter(set, nil)
	test.DemandSuccess(t, it.LoadReader(strings.NewReader(`setcontrol "jump" "SPACE"`)))

	// the gamepad default has been added to the empty slot
	test.ExpectEquality(t, set.Table(bindings.Player1).Bound(controls.Jump), bindings.Pair{keys.Space, keys.Joy1 + 5})

	// but not for a current config
	set.ClearAll()
	cfg := fmt.Sprintf("execversion %d\nsetcontrol \"jump\" \"SPACE\"", int(version.LatestExecVersion))
	test.DemandSuccess(t, it.LoadReader(strings.NewReader(cfg)))
	test.ExpectEquality(t, set.Table(bindings.Player1).Bound(controls.Jump), bindings.Pair{keys.Space, keys.Null})
}

func TestLoadMissing(t *testing.T) {
	set := bindings.NewSet(schemes.Defaults(schemes.FPS))
	it := config.NewInterpreter(set, nil)
	err := it.Load(filepath.Join(t.TempDir(), "missing.cfg"))
	test.ExpectSuccess(t, curated.Is(err, config.NoConfigFile))
	test.ExpectEquality(t, set.Players, schemes.Defaults(schemes.FPS))
}
