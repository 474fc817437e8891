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

package bindings_test

import (
	"strings"
	"testing"

	"github.com/srb2star/srb2input/bindings"
	"github.com/srb2star/srb2input/controls"
	"github.com/srb2star/srb2input/curated"
	"github.com/srb2star/srb2input/keys"
	"github.com/srb2star/srb2input/logger"
	"github.com/srb2star/srb2input/schemes"
	"github.com/srb2star/srb2input/test"
	"github.com/srb2star/srb2input/version"
)

func newSet() *bindings.Set {
	return bindings.NewSet(schemes.Defaults(schemes.FPS))
}

func TestEviction(t *testing.T) {
	s := newSet()

	test.DemandSuccess(t, s.SetControl(bindings.Player1, "jump", "space"))
	test.ExpectEquality(t, s.Players[bindings.Player1][controls.Jump], bindings.Pair{keys.Space, keys.Null})

	test.DemandSuccess(t, s.SetControl(bindings.Player1, "use", "space"))
	test.ExpectEquality(t, s.Players[bindings.Player1][controls.Use], bindings.Pair{keys.Space, keys.Null})

	// jump has lost its binding to space
	test.ExpectEquality(t, s.Players[bindings.Player1].Bound(controls.Jump).Has(keys.Space), false)
	test.ExpectEquality(t, s.Players[bindings.Player1].Bound(controls.Jump), bindings.Pair{})
}

func TestEvictionAcrossPlayers(t *testing.T) {
	s := newSet()
	test.DemandSuccess(t, s.SetControl(bindings.Player2, "jump", "SEC_JOY1"))

	// SEC_JOY1 was the second player's tossflag
	test.ExpectEquality(t, s.Players[bindings.Player2][controls.TossFlag].Unbound(), true)
	test.ExpectEquality(t, s.Players[bindings.Player2][controls.Jump][0], keys.SecJoy1)

	// the first player's table can take a key from the second player's table
	test.DemandSuccess(t, s.SetControl(bindings.Player1, "fire", "SEC_JOY1"))
	test.ExpectEquality(t, s.Players[bindings.Player2][controls.Jump].Unbound(), true)
}

func TestSecondKeyEviction(t *testing.T) {
	s := newSet()
	test.DemandSuccess(t, s.SetControl(bindings.Player1, "jump", "j", "c"))
	test.ExpectEquality(t, s.Players[bindings.Player1][controls.Jump], bindings.Pair{'j', 'c'})

	// 'c' was firenormal
	test.ExpectEquality(t, s.Players[bindings.Player1][controls.FireNormal].Unbound(), true)
}

func TestSharedMode(t *testing.T) {
	s := newSet()
	s.Mode = bindings.Shared

	test.DemandSuccess(t, s.SetControl(bindings.Player1, "jump", "space"))
	test.DemandSuccess(t, s.SetControl(bindings.Player1, "use", "space"))
	test.ExpectEquality(t, s.Players[bindings.Player1][controls.Jump][0], keys.Space)
	test.ExpectEquality(t, s.Players[bindings.Player1][controls.Use][0], keys.Space)

	test.ExpectEquality(t, s.CheckDoubleUsage(keys.Space, false), controls.Null)
}

func TestCheckDoubleUsage(t *testing.T) {
	s := newSet()
	s.ClearAll()
	s.Players[bindings.Player1][controls.Jump][0] = keys.Space
	s.Players[bindings.Player2][controls.Use][1] = keys.Space

	// the first control found is returned when not modifying
	test.ExpectEquality(t, s.CheckDoubleUsage(keys.Space, false), controls.Use)
	test.ExpectEquality(t, s.Players[bindings.Player1][controls.Jump][0], keys.Space)

	// the last control found is returned when modifying
	test.ExpectEquality(t, s.CheckDoubleUsage(keys.Space, true), controls.Jump)
	test.ExpectEquality(t, s.Players[bindings.Player1][controls.Jump][0], keys.Null)
	test.ExpectEquality(t, s.Players[bindings.Player2][controls.Use][1], keys.Null)

	test.ExpectEquality(t, s.CheckDoubleUsage(keys.Space, false), controls.Null)
	test.ExpectEquality(t, s.CheckDoubleUsage(keys.Null, false), controls.Null)
}

func TestUnknownControl(t *testing.T) {
	logger.Clear()

	s := newSet()
	before := s.Players

	err := s.SetControl(bindings.Player1, "flyaway", "space")
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, bindings.UnknownControl))
	test.ExpectEquality(t, s.Players, before)

	// the null control can not be set
	err = s.SetControl(bindings.Player1, "nothing", "space")
	test.ExpectSuccess(t, curated.Is(err, bindings.UnknownControl))
	test.ExpectEquality(t, s.Players, before)

	w := &test.CompareWriter{}
	logger.Tail(w, 2)
	test.ExpectEquality(t, w.String(), "setcontrol: Control 'flyaway' unknown\nsetcontrol: Control 'nothing' unknown\n")
}

func TestWrongArguments(t *testing.T) {
	s := newSet()
	err := s.SetControl(bindings.Player2, "jump")
	test.ExpectSuccess(t, curated.Is(err, bindings.WrongArguments))
	test.ExpectEquality(t, err.Error(), "setcontrol2 <controlname> <keyname> [<2nd keyname>]: set controls for player 2")

	err = s.SetControl(bindings.Player1, "jump", "a", "b", "c")
	test.ExpectSuccess(t, curated.Is(err, bindings.WrongArguments))
	test.ExpectSuccess(t, strings.HasPrefix(err.Error(), "setcontrol <controlname>"))
}

func TestUnresolvedKey(t *testing.T) {
	s := newSet()

	// an unresolved first key is replaced by the second key
	test.DemandSuccess(t, s.SetControl(bindings.Player1, "jump", "nonsense", "j"))
	test.ExpectEquality(t, s.Players[bindings.Player1][controls.Jump], bindings.Pair{'j', keys.Null})

	// an unresolved second key clears the second slot
	test.DemandSuccess(t, s.SetControl(bindings.Player1, "fire", "RCTRL", "nonsense"))
	test.ExpectEquality(t, s.Players[bindings.Player1][controls.Fire], bindings.Pair{keys.RCtrl, keys.Null})
}

func TestPauseReserved(t *testing.T) {
	s := newSet()

	// pause in the first slot is shifted out
	test.DemandSuccess(t, s.SetControl(bindings.Player1, "jump", "PAUSE/BREAK", "j"))
	test.ExpectEquality(t, s.Players[bindings.Player1][controls.Jump], bindings.Pair{'j', keys.Null})

	// pause in both slots leaves the first slot alone
	before := s.Players[bindings.Player1][controls.Fire]
	test.DemandSuccess(t, s.SetControl(bindings.Player1, "fire", "PAUSE/BREAK", "PAUSE/BREAK"))
	test.ExpectEquality(t, s.Players[bindings.Player1][controls.Fire], before)

	// pause in the second slot leaves the second slot alone
	test.DemandSuccess(t, s.SetControl(bindings.Player1, "use", "u", "PAUSE/BREAK"))
	test.ExpectEquality(t, s.Players[bindings.Player1][controls.Use], bindings.Pair{'u', keys.Joy1 + 4})
}

func TestDuplicatePair(t *testing.T) {
	s := newSet()
	test.DemandSuccess(t, s.SetControl(bindings.Player1, "jump", "j", "j"))
	test.ExpectEquality(t, s.Players[bindings.Player1][controls.Jump], bindings.Pair{'j', keys.Null})
}

func TestLegacyBackfill(t *testing.T) {
	s := newSet()
	s.ExecVersion = version.NewExecVersion(26, 0)

	// an old config only has the keyboard binding for jump. the gamepad
	// default is filled into the second slot
	test.DemandSuccess(t, s.SetControl(bindings.Player1, "jump", "SPACE"))
	test.ExpectEquality(t, s.Players[bindings.Player1][controls.Jump], bindings.Pair{keys.Space, keys.Joy1 + 5})

	// without the legacy version the second slot is cleared
	s.ExecVersion = version.LatestExecVersion
	test.DemandSuccess(t, s.SetControl(bindings.Player1, "jump", "SPACE"))
	test.ExpectEquality(t, s.Players[bindings.Player1][controls.Jump], bindings.Pair{keys.Space, keys.Null})
}

func TestLegacyBackfillCollision(t *testing.T) {
	s := newSet()

	// JOY6 is the default gamepad binding for jump. take it for fire
	test.DemandSuccess(t, s.SetControl(bindings.Player1, "fire", "JOY6"))

	s.ExecVersion = version.NewExecVersion(26, 0)
	test.DemandSuccess(t, s.SetControl(bindings.Player1, "jump", "SPACE"))

	// the default is in use by another control so it is not backfilled
	test.ExpectEquality(t, s.Players[bindings.Player1][controls.Jump], bindings.Pair{keys.Space, keys.Null})
	test.ExpectEquality(t, s.Players[bindings.Player1][controls.Fire][0], keys.Joy1+5)
}

func TestLegacyEmptyPrimary(t *testing.T) {
	s := newSet()
	s.ExecVersion = version.NewExecVersion(26, 0)

	// an unbound control in an old config takes the gamepad default
	test.DemandSuccess(t, s.SetControl(bindings.Player2, "jump", "KEY0"))
	test.ExpectEquality(t, s.Players[bindings.Player2][controls.Jump], bindings.Pair{keys.SecJoy1 + 5, keys.Null})

	// the remap does not apply to controls that did not gain gamepad defaults
	test.DemandSuccess(t, s.SetControl(bindings.Player1, "forward", "KEY0"))
	test.ExpectEquality(t, s.Players[bindings.Player1][controls.Forward].Unbound(), true)
}

func TestLegacySystemMenu(t *testing.T) {
	s := newSet()
	s.ExecVersion = version.NewExecVersion(26, 0)

	// the systemmenu gamepad default is in the primary slot for player 1
	test.DemandSuccess(t, s.SetControl(bindings.Player1, "systemmenu", "KEY0"))
	test.ExpectEquality(t, s.Players[bindings.Player1][controls.SystemMenu], bindings.Pair{keys.Joy1 + 7, keys.Null})
}

func TestAssign(t *testing.T) {
	s := newSet()
	test.DemandSuccess(t, s.Assign(bindings.Player1, controls.Use, 1, keys.Space))
	test.ExpectEquality(t, s.Players[bindings.Player1][controls.Use], bindings.Pair{keys.LShift, keys.Space})
	test.ExpectEquality(t, s.Players[bindings.Player1][controls.Jump], bindings.Pair{keys.Null, keys.Joy1 + 5})

	test.ExpectFailure(t, s.Assign(bindings.Player1, controls.Null, 0, keys.Space))
	test.ExpectFailure(t, s.Assign(bindings.Player1, controls.Use, 2, keys.Space))
	test.ExpectFailure(t, s.Assign(bindings.NumPlayers, controls.Use, 0, keys.Space))
}

func TestTableHelpers(t *testing.T) {
	s := newSet()
	tbl := s.Table(bindings.Player1)

	c, ok := tbl.Uses(keys.LShift)
	test.ExpectEquality(t, ok, true)
	test.ExpectEquality(t, c, controls.Use)

	tbl.Clear(controls.Use)
	_, ok = tbl.Uses(keys.LShift)
	test.ExpectEquality(t, ok, false)

	var cp bindings.Table
	cp.Copy(tbl, controls.Movement)
	test.ExpectEquality(t, cp[controls.Forward], tbl[controls.Forward])
	test.ExpectEquality(t, cp[controls.Jump].Unbound(), true)

	s.ResetToDefaults()
	test.ExpectEquality(t, s.Players[bindings.Player1], schemes.Default(schemes.FPS, bindings.Player1))

	test.ExpectEquality(t, s.Table(bindings.NumPlayers) == nil, true)
}

func TestMode(t *testing.T) {
	m, ok := bindings.ParseMode("one")
	test.ExpectEquality(t, ok, true)
	test.ExpectEquality(t, m, bindings.Exclusive)

	m, ok = bindings.ParseMode("Several")
	test.ExpectEquality(t, ok, true)
	test.ExpectEquality(t, m, bindings.Shared)
	test.ExpectEquality(t, m.String(), "Several")

	_, ok = bindings.ParseMode("many")
	test.ExpectEquality(t, ok, false)
}
