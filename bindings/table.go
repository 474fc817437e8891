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

// Player identifies the player a binding table belongs to.
type Player int

// List of valid Player values.
const (
	Player1 Player = iota
	Player2
	NumPlayers
)

func (p Player) String() string {
	switch p {
	case Player1:
		return "player 1"
	case Player2:
		return "player 2"
	}
	return "unknown player"
}

// Valid returns true if the player is Player1 or Player2.
func (p Player) Valid() bool {
	return p == Player1 || p == Player2
}

// Pair is the primary and secondary key bound to a control.
type Pair [2]keys.Code

// Unbound returns true if neither slot of the pair has a key.
func (p Pair) Unbound() bool {
	return p[0] == keys.Null && p[1] == keys.Null
}

// Has returns true if the key is in either slot of the pair. The Null key is
// never in a pair.
func (p Pair) Has(k keys.Code) bool {
	return k != keys.Null && (p[0] == k || p[1] == k)
}

// Table is the binding table for one player. It is indexed by control. The
// row for the Null control is never written.
type Table [controls.Num]Pair

// Bound returns the keys bound to the control.
func (t *Table) Bound(c controls.Control) Pair {
	if !c.Valid() {
		return Pair{}
	}
	return t[c]
}

// Clear the keys bound to the control.
func (t *Table) Clear(c controls.Control) {
	if !c.Valid() {
		return
	}
	t[c] = Pair{}
}

// ClearAll clears the keys for every control.
func (t *Table) ClearAll() {
	*t = Table{}
}

// Copy the bindings for the listed controls from another table. A nil list
// copies every control.
func (t *Table) Copy(from *Table, list []controls.Control) {
	if list == nil {
		*t = *from
		return
	}
	for _, c := range list {
		if c.Valid() {
			t[c] = from[c]
		}
	}
}

// Uses returns the first control that has the key bound to it.
func (t *Table) Uses(k keys.Code) (controls.Control, bool) {
	if k == keys.Null {
		return controls.Null, false
	}
	for c := controls.Forward; c < controls.Num; c++ {
		if t[c].Has(k) {
			return c, true
		}
	}
	return controls.Null, false
}
