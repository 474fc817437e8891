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

package bindings

import (
	"fmt"
	"strings"

	"github.com/srb2star/srb2input/controls"
	"github.com/srb2star/srb2input/curated"
	"github.com/srb2star/srb2input/keys"
	"github.com/srb2star/srb2input/logger"
	"github.com/srb2star/srb2input/version"
)

// Sentinal error patterns.
const (
	UnknownControl = "Control '%s' unknown"
	WrongArguments = "%s <controlname> <keyname> [<2nd keyname>]: set controls for %s"
	InvalidPlayer  = "invalid player (%d)"
)

// Mode is the key sharing policy.
type Mode int

// List of valid Mode values.
const (
	// a key can be bound to only one control. rebinding a key evicts it from
	// the control it was previously bound to
	Exclusive Mode = iota

	// a key can be bound to any number of controls
	Shared
)

func (m Mode) String() string {
	switch m {
	case Exclusive:
		return "One"
	case Shared:
		return "Several"
	}
	return "unknown"
}

// ParseMode is the reverse of Mode.String().
func ParseMode(s string) (Mode, bool) {
	switch strings.ToLower(s) {
	case "one":
		return Exclusive, true
	case "several":
		return Shared, true
	}
	return Exclusive, false
}

// the controls that gained gamepad defaults in JoystickDefaultsMajor. older
// configs have these controls backfilled from the defaults.
func gainedGamepadDefault(c controls.Control) bool {
	switch c {
	case controls.WeaponNext, controls.WeaponPrev, controls.TossFlag,
		controls.Use, controls.CamReset, controls.Jump,
		controls.Pause, controls.SystemMenu, controls.CamToggle,
		controls.Screenshot, controls.TalkKey, controls.Scores,
		controls.CenterView:
		return true
	}
	return false
}

// Set is the collection of binding tables for all players.
type Set struct {
	Players [NumPlayers]Table

	// the tables that the players' tables were initialised with. used to
	// backfill bindings when loading old configs
	defaults [NumPlayers]Table

	Mode Mode

	// the format version of the config being loaded. new bindings made
	// interactively should be made with LatestExecVersion
	ExecVersion version.ExecVersion
}

// NewSet is the preferred method of initialisation for the Set type. The
// players' tables are initialised with the defaults.
func NewSet(defaults [NumPlayers]Table) *Set {
	return &Set{
		Players:     defaults,
		defaults:    defaults,
		Mode:        Exclusive,
		ExecVersion: version.LatestExecVersion,
	}
}

// Table returns the binding table for the player.
func (s *Set) Table(player Player) *Table {
	if !player.Valid() {
		return nil
	}
	return &s.Players[player]
}

// Defaults returns a copy of the default binding table for the player.
func (s *Set) Defaults(player Player) Table {
	if !player.Valid() {
		return Table{}
	}
	return s.defaults[player]
}

// SetDefaults replaces the default tables. The players' tables are not
// changed.
func (s *Set) SetDefaults(defaults [NumPlayers]Table) {
	s.defaults = defaults
}

// ResetToDefaults copies the defaults over the players' tables.
func (s *Set) ResetToDefaults() {
	s.Players = s.defaults
}

// ClearAll clears the tables for all players.
func (s *Set) ClearAll() {
	for p := range s.Players {
		s.Players[p].ClearAll()
	}
}

// CheckDoubleUsage looks for the key in the tables of all players. It only
// has an effect in Exclusive mode. The Null key is never looked for.
//
// If modify is true the key is cleared from every slot it is found in and the
// last control it was found in is returned. If modify is false the first
// control it is found in is returned.
//
// The Null control is returned if the key is not in use.
func (s *Set) CheckDoubleUsage(k keys.Code, modify bool) controls.Control {
	if s.Mode != Exclusive || k == keys.Null {
		return controls.Null
	}

	result := controls.Null
	for c := controls.Forward; c < controls.Num; c++ {
		for p := range s.Players {
			for slot := range s.Players[p][c] {
				if s.Players[p][c][slot] == k {
					result = c
					if modify {
						s.Players[p][c][slot] = keys.Null
					}
				}
			}
		}
		if result != controls.Null && !modify {
			return result
		}
	}

	return result
}

// Assign binds a single key to one slot of a control. The key is evicted from
// any other control first, in Exclusive mode. This is how an interactive
// rebind is committed.
func (s *Set) Assign(player Player, c controls.Control, slot int, k keys.Code) error {
	if !player.Valid() {
		return curated.Errorf(InvalidPlayer, player)
	}
	if !c.Valid() {
		return curated.Errorf(UnknownControl, c.Name())
	}
	if slot < 0 || slot > 1 {
		return fmt.Errorf("assign: slot must be 0 or 1 (%d)", slot)
	}
	if k == keys.Pause || !k.Valid() {
		return nil
	}
	s.CheckDoubleUsage(k, true)
	s.Players[player][c][slot] = k
	return nil
}

// SetControl implements the setcontrol and setcontrol2 config commands. The
// control is named by its config name and the keys by their registry names.
// Key names that can not be resolved are treated as unbound.
//
// An unknown control is logged and returned as an UnknownControl error. The
// tables are not changed in that case.
func (s *Set) SetControl(player Player, controlName string, keyNames ...string) error {
	if !player.Valid() {
		return curated.Errorf(InvalidPlayer, player)
	}

	if len(keyNames) < 1 || len(keyNames) > 2 {
		return curated.Errorf(WrongArguments, CommandName(player), player)
	}

	c, ok := controls.Lookup(controlName)
	if !ok {
		logger.Logf(logger.Allow, CommandName(player), UnknownControl, controlName)
		return curated.Errorf(UnknownControl, controlName)
	}

	k1 := keys.Parse(keyNames[0])
	var k2 keys.Code
	if len(keyNames) > 1 {
		k2 = keys.Parse(keyNames[1])
	}

	s.Bind(player, c, k1, k2)
	return nil
}

// CommandName returns the name of the config command that sets controls for
// the player.
func CommandName(player Player) string {
	if player == Player2 {
		return "setcontrol2"
	}
	return "setcontrol"
}

// Bind sets the two keys for the control. The pause key is never bound. Keys
// are evicted from other controls in Exclusive mode.
//
// If the Set's ExecVersion predates the gamepad defaults then some controls
// have their empty slots filled with the default gamepad binding, if that
// binding is not already in use by another control.
func (s *Set) Bind(player Player, c controls.Control, k1 keys.Code, k2 keys.Code) {
	if !player.Valid() || !c.Valid() {
		return
	}

	f := filter{
		set:    s,
		c:      c,
		player: player,
		k1:     k1,
		k2:     k2,
	}

	tbl := &s.Players[player]

	k, ok := f.key(0)
	if ok {
		s.CheckDoubleUsage(k, true)

		// the first key was rejected so try again with the second key
		if k == keys.Null && f.k2 != keys.Null {
			f.k1 = f.k2
			f.k2 = keys.Null
			k, ok = f.key(0)
			if ok {
				s.CheckDoubleUsage(k, true)
			}
		}
	}

	if ok {
		tbl[c][0] = k
	}

	if f.k2 == keys.Null {
		tbl[c][1] = keys.Null
		return
	}

	k, ok = f.key(1)
	if !ok {
		return
	}

	if k == tbl[c][0] {
		tbl[c][1] = keys.Null
		return
	}

	s.CheckDoubleUsage(k, true)
	tbl[c][1] = k
}
