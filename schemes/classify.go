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

package schemes

import (
	"github.com/srb2star/srb2input/bindings"
	"github.com/srb2star/srb2input/controls"
)

// pairs match if any of the four combinations of slots share a key. two
// entirely unbound pairs also match.
func match(a bindings.Pair, b bindings.Pair) bool {
	if a.Unbound() && b.Unbound() {
		return true
	}
	for _, k := range a {
		if b.Has(k) {
			return true
		}
	}
	return false
}

// Classify returns the first scheme for which every listed control in the
// table matches the scheme's bindings for the player. A nil list tests every
// control. The Custom ID is returned if no scheme matches.
//
// The table is not modified.
func Classify(tbl *bindings.Table, player bindings.Player, list []controls.Control) ID {
	if !player.Valid() {
		return Custom
	}

	if list == nil {
		list = controls.All()
	}

	for _, id := range IDs() {
		def := &schemes[id].tables[player]
		matched := true
		for _, c := range list {
			if !c.Valid() {
				continue
			}
			if !match(tbl[c], def[c]) {
				matched = false
				break
			}
		}
		if matched {
			return id
		}
	}

	return Custom
}
