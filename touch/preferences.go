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

package touch

import (
	"fmt"

	"github.com/srb2star/srb2input/prefs"
	"github.com/srb2star/srb2input/sensitivity"
)

// Preferences for the touchscreen controls.
type Preferences struct {
	dsk *prefs.Disk

	MovementStyle prefs.String
	Tiny          prefs.Bool

	// the camera can be moved by dragging a finger on an empty part of the
	// screen. the virtual joystick also requires this
	Camera prefs.Bool

	// transparency of the controls and of the menu navigation buttons. these
	// are not used by the touch package but are carried for the renderer
	InputTransparency prefs.Int
	MenuTransparency  prefs.Int

	Sens  prefs.Int
	YSens prefs.Int

	// called when a preference that affects the layout changes
	relayout func()
}

func (p *Preferences) String() string {
	if p.dsk == nil {
		return ""
	}
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. The values are added to the disk, if it is not nil, but
// they are not loaded.
func NewPreferences(dsk *prefs.Disk) (*Preferences, error) {
	p := &Preferences{dsk: dsk}

	p.Sens.SetRange(1, sensitivity.Max)
	p.YSens.SetRange(1, sensitivity.Max)
	p.InputTransparency.SetRange(0, 10)
	p.MenuTransparency.SetRange(0, 10)

	p.MovementStyle.SetHookPre(func(v prefs.Value) error {
		if _, ok := ParseMovementStyle(v.(string)); !ok {
			return fmt.Errorf("touch: unknown movement style (%s)", v)
		}
		return nil
	})

	p.SetDefaults()

	relayout := func(_ prefs.Value) error {
		if p.relayout != nil {
			p.relayout()
		}
		return nil
	}
	p.MovementStyle.SetHookPost(relayout)
	p.Tiny.SetHookPost(relayout)
	p.Camera.SetHookPost(relayout)

	if dsk == nil {
		return p, nil
	}

	err := dsk.Add("touch.touch_movementstyle", &p.MovementStyle)
	if err != nil {
		return nil, err
	}
	err = dsk.Add("touch.touch_tinycontrols", &p.Tiny)
	if err != nil {
		return nil, err
	}
	err = dsk.Add("touch.touch_camera", &p.Camera)
	if err != nil {
		return nil, err
	}
	err = dsk.Add("touch.touch_transinput", &p.InputTransparency)
	if err != nil {
		return nil, err
	}
	err = dsk.Add("touch.touch_transmenu", &p.MenuTransparency)
	if err != nil {
		return nil, err
	}
	err = dsk.Add("touch.touchsens", &p.Sens)
	if err != nil {
		return nil, err
	}
	err = dsk.Add("touch.touchysens", &p.YSens)
	if err != nil {
		return nil, err
	}

	return p, nil
}

// SetDefaults reverts all touch preferences to their default values.
func (p *Preferences) SetDefaults() {
	p.MovementStyle.Set(JoystickStyle.String())
	p.Tiny.Set(false)
	p.Camera.Set(true)
	p.InputTransparency.Set(10)
	p.MenuTransparency.Set(10)
	p.Sens.Set(40)
	p.YSens.Set(45)
}

// Style returns the movement style preference.
func (p *Preferences) Style() MovementStyle {
	s, _ := ParseMovementStyle(p.MovementStyle.String())
	return s
}

// Load touch preferences from disk.
func (p *Preferences) Load() error {
	if p.dsk == nil {
		return nil
	}
	return p.dsk.Load(false)
}

// Save touch preferences to disk.
func (p *Preferences) Save() error {
	if p.dsk == nil {
		return nil
	}
	return p.dsk.Save()
}
