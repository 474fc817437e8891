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

package config

import (
	"fmt"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/srb2star/srb2input/bindings"
	"github.com/srb2star/srb2input/controls"
	"github.com/srb2star/srb2input/curated"
	"github.com/srb2star/srb2input/keys"
	"github.com/srb2star/srb2input/logger"
	"github.com/srb2star/srb2input/version"
)

// Sentinal error patterns.
const (
	InvalidJSON  = "config: invalid json"
	ExportFailed = "config: export failed: %v"
)

func playerPath(p bindings.Player) string {
	return fmt.Sprintf("player%d", int(p)+1)
}

// slot names in JSON are the key names. an unbound slot is the empty string
func slotName(k keys.Code) string {
	if k == keys.Null {
		return ""
	}
	return k.Name()
}

// ExportJSON returns the binding set as a JSON document. For example:
//
//	{
//	  "execversion": 28,
//	  "controlperkey": "One",
//	  "player1": { "forward": ["w", ""], ... },
//	  "player2": { "forward": ["", ""], ... }
//	}
func ExportJSON(set *bindings.Set) ([]byte, error) {
	data := []byte("{}")

	var err error
	data, err = sjson.SetBytes(data, "execversion", int(version.LatestExecVersion))
	if err != nil {
		return nil, curated.Errorf(ExportFailed, err)
	}
	data, err = sjson.SetBytes(data, "controlperkey", set.Mode.String())
	if err != nil {
		return nil, curated.Errorf(ExportFailed, err)
	}

	for p := bindings.Player1; p < bindings.NumPlayers; p++ {
		tbl := set.Table(p)
		for _, c := range controls.All() {
			pair := tbl.Bound(c)
			path := fmt.Sprintf("%s.%s", playerPath(p), c.Name())
			data, err = sjson.SetBytes(data, path, []string{slotName(pair[0]), slotName(pair[1])})
			if err != nil {
				return nil, curated.Errorf(ExportFailed, err)
			}
		}
	}

	return data, nil
}

// ImportJSON replaces the binding tables in the set with the tables in the
// JSON document. The document is in the format produced by ExportJSON().
//
// Controls missing from the document are left unbound. Unknown controls are
// logged and ignored. In Exclusive mode a key that appears more than once is
// only bound to the first control it appears in. A second slot that is the
// same as the first slot is left unbound. The set is not changed if the
// document is not valid.
func ImportJSON(set *bindings.Set, data []byte) error {
	if !gjson.ValidBytes(data) {
		return curated.Errorf(InvalidJSON)
	}

	mode := set.Mode
	if r := gjson.GetBytes(data, "controlperkey"); r.Exists() {
		m, ok := bindings.ParseMode(r.String())
		if !ok {
			return curated.Errorf(InvalidJSON)
		}
		mode = m
	}

	var tables [bindings.NumPlayers]bindings.Table
	seen := make(map[keys.Code]bool)

	for p := bindings.Player1; p < bindings.NumPlayers; p++ {
		tbl := &tables[p]
		gjson.GetBytes(data, playerPath(p)).ForEach(func(name, slots gjson.Result) bool {
			c, ok := controls.Lookup(name.String())
			if !ok {
				logger.Logf(logger.Allow, "config", bindings.UnknownControl, name.String())
				return true
			}
			for i, s := range slots.Array() {
				if i > 1 {
					break
				}
				k := keys.Parse(s.String())
				if k == keys.Null || k == keys.Pause {
					continue
				}
				if i == 1 && k == tbl[c][0] {
					continue
				}
				if mode == bindings.Exclusive && seen[k] {
					continue
				}
				seen[k] = true
				tbl[c][i] = k
			}
			return true
		})
	}

	set.Players = tables
	set.Mode = mode
	set.ExecVersion = version.LatestExecVersion

	return nil
}
