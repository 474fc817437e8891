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

func newInterpreter() (*config.Interpreter, *bindings.Set, *test.CompareWriter) {
	set := bindings.NewSet(schemes.Defaults(schemes.FPS))
	out := &test.CompareWriter{}
	return config.NewInterpreter(set, out), set, out
}

func TestSetControl(t *testing.T) {
	it, set, out := newInterpreter()

	test.DemandSuccess(t, it.Exec(`setcontrol "jump" "UP ARROW" "MOUSE2"`))
	test.ExpectEquality(t, set.Table(bindings.Player1).Bound(controls.Jump), bindings.Pair{keys.Up, keys.Mouse1 + 1})

	// the up arrow was bound to lookup
	test.ExpectEquality(t, set.Table(bindings.Player1).Bound(controls.LookUp), bindings.Pair{})

	test.DemandSuccess(t, it.Exec(`setcontrol2 use "SEC_JOY1"`))
	test.ExpectEquality(t, set.Table(bindings.Player2).Bound(controls.Use), bindings.Pair{keys.SecJoy1, keys.Null})

	// and the key was evicted from tossflag
	test.ExpectEquality(t, set.Table(bindings.Player2).Bound(controls.TossFlag), bindings.Pair{})

	// two commands on one line
	test.DemandSuccess(t, it.Exec(`setcontrol fire f; setcontrol firenormal g`))
	test.ExpectEquality(t, set.Table(bindings.Player1).Bound(controls.Fire), bindings.Pair{'f', keys.Null})
	test.ExpectEquality(t, set.Table(bindings.Player1).Bound(controls.FireNormal), bindings.Pair{'g', keys.Null})

	test.ExpectEquality(t, out.String(), "")
}

func TestSetControlUsage(t *testing.T) {
	it, set, out := newInterpreter()
	before := *set.Table(bindings.Player1)

	err := it.Exec("setcontrol jump")
	test.ExpectSuccess(t, curated.Is(err, bindings.WrongArguments))
	test.ExpectSuccess(t, out.Contains("setcontrol <controlname> <keyname> [<2nd keyname>]"))

	out.Clear()
	err = it.Exec("setcontrol2 jump a b c")
	test.ExpectSuccess(t, curated.Is(err, bindings.WrongArguments))
	test.ExpectSuccess(t, out.Contains("setcontrol2"))

	test.ExpectEquality(t, *set.Table(bindings.Player1), before)
}

func TestUnknownControlAndCommand(t *testing.T) {
	it, set, out := newInterpreter()
	before := set.Players

	err := it.Exec("setcontrol flyaway a")
	test.ExpectSuccess(t, curated.Is(err, bindings.UnknownControl))
	test.ExpectSuccess(t, out.Contains("Control 'flyaway' unknown"))

	err = it.Exec("bind a jump")
	test.ExpectSuccess(t, curated.Is(err, config.UnknownCommand))

	test.ExpectEquality(t, set.Players, before)
}

func TestExecVersion(t *testing.T) {
	it, set, out := newInterpreter()

	test.DemandSuccess(t, it.Exec("execversion 26"))
	test.ExpectEquality(t, set.ExecVersion, version.NewExecVersion(26, 0))

	test.DemandSuccess(t, it.Exec(`execversion "65564"`))
	test.ExpectEquality(t, set.ExecVersion.Major(), 28)
	test.ExpectEquality(t, set.ExecVersion.Minor(), 1)

	test.DemandSuccess(t, it.Exec("execversion"))
	test.ExpectSuccess(t, out.Compare("\"execversion\" is \"65564\"\n"))

	err := it.Exec("execversion abc")
	test.ExpectSuccess(t, curated.Is(err, config.BadExecVersion))
	err = it.Exec("execversion 1 2")
	test.ExpectSuccess(t, curated.Is(err, config.ExecVersionArgs))
	test.ExpectEquality(t, set.ExecVersion.Major(), 28)
}

func TestVariables(t *testing.T) {
	it, _, out := newInterpreter()

	var sens prefs.Int
	sens.SetRange(1, 100)
	test.DemandSuccess(t, sens.Set(20))

	test.DemandSuccess(t, it.Variable("mousesens", &sens))
	test.ExpectFailure(t, it.Variable("MouseSens", &sens))
	test.ExpectFailure(t, it.Variable("setcontrol", &sens))

	test.DemandSuccess(t, it.Exec(`mousesens "35"`))
	test.ExpectEquality(t, sens.Get(), prefs.Value(35))

	test.DemandSuccess(t, it.Exec(`MOUSESENS`))
	test.ExpectSuccess(t, out.Compare("\"mousesens\" is \"35\"\n"))

	// the value is clamped by the preference
	test.DemandSuccess(t, it.Exec(`mousesens 500`))
	test.ExpectEquality(t, sens.Get(), prefs.Value(100))

	test.ExpectFailure(t, it.Exec(`mousesens lots`))
}

func TestRunContinuesAfterErrors(t *testing.T) {
	it, set, out := newInterpreter()

	cfg := strings.Join([]string{
		"// a comment",
		"setcontrol flyaway a",
		"",
		`setcontrol "jump" "j"`,
		"nonsense",
		`setcontrol "use" "u"`,
	}, "\n")

	test.DemandSuccess(t, it.Run(strings.NewReader(cfg)))
	test.ExpectEquality(t, set.Table(bindings.Player1).Bound(controls.Jump), bindings.Pair{'j', keys.Null})
	test.ExpectEquality(t, set.Table(bindings.Player1).Bound(controls.Use), bindings.Pair{'u', keys.Null})
	test.ExpectEquality(t, len(out.Lines()), 2)
}
