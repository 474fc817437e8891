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

package userinput

import (
	"fmt"

	"github.com/srb2star/srb2input/bindings"
	"github.com/srb2star/srb2input/prefs"
	"github.com/srb2star/srb2input/sensitivity"
	"github.com/srb2star/srb2input/touch"
)

// DefaultMouseSens is the default value of every mouse sensitivity preference.
const DefaultMouseSens = 20

// Preferences for the input devices.
type Preferences struct {
	dsk *prefs.Disk

	MouseSens   prefs.Int
	MouseYSens  prefs.Int
	MouseSens2  prefs.Int
	MouseYSens2 prefs.Int

	UseMouse prefs.Bool

	// whether a key can be bound to more than one control. reads and writes
	// the Mode field of the binding set
	ControlPerKey *prefs.Generic

	// the touchscreen preferences are saved to the same disk
	Touch *touch.Preferences
}

func (p *Preferences) String() string {
	if p.dsk == nil {
		return ""
	}
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type.
//
// The dsk argument can be nil, in which case the preferences are never
// loaded or saved.
func NewPreferences(set *bindings.Set, dsk *prefs.Disk) (*Preferences, error) {
	p := &Preferences{dsk: dsk}

	for _, v := range []*prefs.Int{&p.MouseSens, &p.MouseYSens, &p.MouseSens2, &p.MouseYSens2} {
		v.SetRange(1, sensitivity.Max)
	}

	p.ControlPerKey = prefs.NewGeneric(
		func(s string) error {
			m, ok := bindings.ParseMode(s)
			if !ok {
				return fmt.Errorf("userinput: unknown control per key value (%s)", s)
			}
			set.Mode = m
			return nil
		},
		func() string {
			return set.Mode.String()
		},
	)

	var err error
	p.Touch, err = touch.NewPreferences(dsk)
	if err != nil {
		return nil, err
	}

	p.SetDefaults()

	if dsk == nil {
		return p, nil
	}

	err = dsk.Add("input.mousesens", &p.MouseSens)
	if err != nil {
		return nil, err
	}
	err = dsk.Add("input.mouseysens", &p.MouseYSens)
	if err != nil {
		return nil, err
	}
	err = dsk.Add("input.mousesens2", &p.MouseSens2)
	if err != nil {
		return nil, err
	}
	err = dsk.Add("input.mouseysens2", &p.MouseYSens2)
	if err != nil {
		return nil, err
	}
	err = dsk.Add("input.use_mouse", &p.UseMouse)
	if err != nil {
		return nil, err
	}
	err = dsk.Add("input.controlperkey", p.ControlPerKey)
	if err != nil {
		return nil, err
	}

	err = dsk.Load(true)
	if err != nil {
		return nil, err
	}

	return p, nil
}

// SetDefaults reverts all input preferences to their default values. This
// includes the touchscreen preferences.
func (p *Preferences) SetDefaults() {
	p.MouseSens.Set(DefaultMouseSens)
	p.MouseYSens.Set(DefaultMouseSens)
	p.MouseSens2.Set(DefaultMouseSens)
	p.MouseYSens2.Set(DefaultMouseSens)
	p.UseMouse.Set(true)
	p.ControlPerKey.Set(bindings.Exclusive.String())
	p.Touch.SetDefaults()
}

// Load input preferences from disk.
func (p *Preferences) Load() error {
	if p.dsk == nil {
		return nil
	}
	return p.dsk.Load(false)
}

// Save input preferences to disk.
func (p *Preferences) Save() error {
	if p.dsk == nil {
		return nil
	}
	return p.dsk.Save()
}

// the sensitivity pair for the player's mouse. the defaults are used if there
// are no preferences
func (p *Preferences) mouseSensitivity(player bindings.Player) (int, int) {
	if p == nil {
		return DefaultMouseSens, DefaultMouseSens
	}
	if player == bindings.Player2 {
		return p.MouseSens2.Get().(int), p.MouseYSens2.Get().(int)
	}
	return p.MouseSens.Get().(int), p.MouseYSens.Get().(int)
}
