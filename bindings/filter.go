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
	"github.com/srb2star/srb2input/controls"
	"github.com/srb2star/srb2input/keys"
)

// filter decides which key is committed to each slot of a control. the pair
// of keys is mutated as slots are shifted and backfilled, and that state is
// carried from the call for the first slot to the call for the second slot.
type filter struct {
	set    *Set
	c      controls.Control
	player Player

	k1 keys.Code
	k2 keys.Code

	// the second key was filled with the default on the previous call
	nestedOverride bool
}

// the gamepad default for the control. systemmenu is the only control for
// the first player with a gamepad default in the primary slot. the second
// player has only gamepad defaults so they are always in the primary slot.
func (f *filter) defaultKey() keys.Code {
	d := &f.set.defaults[f.player]
	if f.player == Player1 && f.c == controls.SystemMenu {
		return d[f.c][0]
	}
	if f.player == Player2 {
		return d[f.c][0]
	}
	return d[f.c][1]
}

// key returns the key for the slot. the boolean is false if the slot should
// not be written at all.
func (f *filter) key(slot int) (keys.Code, bool) {
	// the pause key is reserved
	if slot == 0 && f.k1 == keys.Pause {
		if f.k2 == keys.Pause {
			return keys.Null, false
		}
		f.k1 = f.k2
		f.k2 = keys.Null
	} else if slot == 1 && f.k2 == keys.Pause {
		return keys.Null, false
	}

	if !f.set.ExecVersion.PredatesJoystickDefaults() || !gainedGamepadDefault(f.c) {
		if slot == 1 {
			return f.k2, true
		}
		return f.k1, true
	}

	defaultKey := f.defaultKey()

	// a rejected key for the first slot is retried once with the second key
	// shifted down. the retry never needs to be retried because the second
	// key is either empty or is the default that was just rejected
	for attempt := 0; attempt < 2; attempt++ {
		var k keys.Code
		var override bool

		switch {
		case slot == 0 && f.k1 == keys.Null:
			if f.k2 != keys.Null {
				f.k1 = f.k2
				f.k2 = keys.Null
				k = f.k1
			} else {
				k = defaultKey
				override = true
			}
		case slot == 1 && (f.k2 == keys.Null || f.k1 == keys.Null):
			k = defaultKey
			override = true
		case slot == 1:
			k = f.k2
		default:
			k = f.k1
		}

		if f.nestedOverride {
			override = true
			f.nestedOverride = false
		}

		// fill the second key with the default
		if slot == 0 && f.k2 == keys.Null {
			f.k2 = defaultKey
			f.nestedOverride = true
			if f.k1 == f.k2 {
				f.k2 = keys.Null
				f.nestedOverride = false
			}
		}

		// keys from the config always win over default keys. defaults are
		// only used if they are not bound to another control
		var existing controls.Control
		if override {
			existing = f.set.CheckDoubleUsage(k, false)
		}

		if k != keys.Null && (existing == controls.Null || existing == f.c) {
			return k, true
		}

		if slot != 0 || f.k2 == keys.Null {
			break
		}

		f.k1 = f.k2
		f.k2 = keys.Null
	}

	return keys.Null, true
}
