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

// Package schemes contains the default control schemes and the function to
// classify a binding table as one of those schemes.
//
// The scheme definitions are embedded in the binary as a TOML file and are
// decoded when the package is initialised. The scheme tables are read-only
// after that point. The Default() function returns a copy.
package schemes

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/srb2star/srb2input/bindings"
	"github.com/srb2star/srb2input/controls"
	"github.com/srb2star/srb2input/keys"
)

// ID identifies a control scheme.
type ID int

// List of valid ID values. The order of the named schemes is the order in
// which they are defined in the embedded definitions file.
const (
	Custom ID = iota
	FPS
	Platform
	numSchemes
)

//go:embed schemes.toml
var definitions string

type slots []string

type definitionFile struct {
	Scheme []struct {
		Name     string           `toml:"name"`
		Controls map[string]slots `toml:"controls"`
	} `toml:"scheme"`
	Common  map[string]slots `toml:"common"`
	Gamepad struct {
		Player1 map[string]slots `toml:"player1"`
		Player2 map[string]slots `toml:"player2"`
	} `toml:"gamepad"`
}

type scheme struct {
	name   string
	tables [bindings.NumPlayers]bindings.Table
}

var schemes [numSchemes]scheme

func init() {
	if err := parse(definitions); err != nil {
		panic(fmt.Sprintf("schemes: %v", err))
	}
}

func parse(data string) error {
	var def definitionFile

	md, err := toml.Decode(data, &def)
	if err != nil {
		return err
	}
	if u := md.Undecoded(); len(u) > 0 {
		return fmt.Errorf("undecoded keys in definitions: %v", u)
	}

	if len(def.Scheme) != int(numSchemes)-1 {
		return fmt.Errorf("expected %d schemes, found %d", numSchemes-1, len(def.Scheme))
	}

	schemes[Custom] = scheme{name: "Custom"}

	for i, d := range def.Scheme {
		s := &schemes[i+1]
		s.name = d.Name

		steps := []struct {
			player bindings.Player
			slots  map[string]slots
		}{
			{bindings.Player1, d.Controls},
			{bindings.Player1, def.Common},
			{bindings.Player1, def.Gamepad.Player1},
			{bindings.Player2, def.Gamepad.Player2},
		}

		for _, st := range steps {
			if err := apply(&s.tables[st.player], st.slots); err != nil {
				return fmt.Errorf("%s: %w", s.name, err)
			}
		}
	}

	return nil
}

func apply(tbl *bindings.Table, m map[string]slots) error {
	for name, sl := range m {
		c, ok := controls.Lookup(name)
		if !ok {
			return fmt.Errorf("unknown control (%s)", name)
		}
		if len(sl) > 2 {
			return fmt.Errorf("too many keys for %s", name)
		}
		for i, kn := range sl {
			if kn == "" {
				continue
			}
			k, ok := keys.Lookup(kn)
			if !ok {
				return fmt.Errorf("unknown key (%s) for %s", kn, name)
			}
			tbl[c][i] = k
		}
	}
	return nil
}

func (id ID) String() string {
	if id < 0 || id >= numSchemes {
		return "unknown"
	}
	return schemes[id].name
}

// IDs returns the named schemes in classification order. The Custom scheme is
// not included.
func IDs() []ID {
	l := make([]ID, 0, numSchemes-1)
	for id := Custom + 1; id < numSchemes; id++ {
		l = append(l, id)
	}
	return l
}

// Lookup a scheme by name. Case is ignored.
func Lookup(name string) (ID, bool) {
	for id := Custom; id < numSchemes; id++ {
		if strings.EqualFold(schemes[id].name, name) {
			return id, true
		}
	}
	return Custom, false
}

// Default returns a copy of the binding table for the player in the scheme.
// The Custom scheme has no bindings.
func Default(id ID, player bindings.Player) bindings.Table {
	if id < 0 || id >= numSchemes || !player.Valid() {
		return bindings.Table{}
	}
	return schemes[id].tables[player]
}

// Defaults returns a copy of the binding tables for both players. Suitable
// for passing to bindings.NewSet().
func Defaults(id ID) [bindings.NumPlayers]bindings.Table {
	if id < 0 || id >= numSchemes {
		return [bindings.NumPlayers]bindings.Table{}
	}
	return schemes[id].tables
}
