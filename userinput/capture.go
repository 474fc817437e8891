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
	"github.com/srb2star/srb2input/bindings"
	"github.com/srb2star/srb2input/controls"
	"github.com/srb2star/srb2input/keys"
)

// CaptureResult is the state of a Capture after a key or a tick.
type CaptureResult int

// List of valid CaptureResult values.
const (
	Inactive CaptureResult = iota
	Waiting
	Captured
	Cancelled
	Expired
)

func (r CaptureResult) String() string {
	switch r {
	case Inactive:
		return "inactive"
	case Waiting:
		return "waiting"
	case Captured:
		return "captured"
	case Cancelled:
		return "cancelled"
	case Expired:
		return "expired"
	}
	return "unknown"
}

// Capture waits for the next key press so that it can be bound to a control.
// The Escape key cancels the capture. The Pause key can never be captured.
type Capture struct {
	player  bindings.Player
	control controls.Control
	slot    int

	// ticks left before the capture expires
	remaining int
	expires   bool

	active bool
	key    keys.Code
}

// Start capturing a key for the control and binding slot. The capture
// expires after the number of ticks. A ticks value of zero means the capture
// never expires.
func (c *Capture) Start(player bindings.Player, control controls.Control, slot int, ticks int) {
	*c = Capture{
		player:    player,
		control:   control,
		slot:      slot,
		remaining: ticks,
		expires:   ticks > 0,
		active:    true,
	}
}

// Active returns true if the capture is waiting for a key.
func (c *Capture) Active() bool {
	return c.active
}

// Key offers a key press to the capture.
func (c *Capture) Key(k keys.Code) CaptureResult {
	if !c.active {
		return Inactive
	}
	switch {
	case k == keys.Escape:
		c.active = false
		return Cancelled
	case k == keys.Null || k == keys.Pause || !k.Valid():
		return Waiting
	}
	c.active = false
	c.key = k
	return Captured
}

// Tick advances the expiry timer by one tick.
func (c *Capture) Tick() CaptureResult {
	if !c.active {
		return Inactive
	}
	if !c.expires {
		return Waiting
	}
	c.remaining--
	if c.remaining <= 0 {
		c.active = false
		return Expired
	}
	return Waiting
}

// Result returns the captured key. The boolean is false if no key has been
// captured.
func (c *Capture) Result() (keys.Code, bool) {
	if c.active || c.key == keys.Null {
		return keys.Null, false
	}
	return c.key, true
}

// Commit assigns the captured key to the control in the binding set.
func (c *Capture) Commit(set *bindings.Set) error {
	k, ok := c.Result()
	if !ok {
		return nil
	}
	return set.Assign(c.player, c.control, c.slot, k)
}
