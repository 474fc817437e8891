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

// Package mobiletouch translates the touch events of the golang.org/x/mobile
// app package into the raw input events of the userinput package.
//
// Mobile touch events carry a sequence number for each finger that is on the
// screen. Each sequence is given one of the touch.NumFingers finger slots for
// as long as the finger is down. Positions are in screen pixels, which is
// what the userinput package expects, and the movement since the previous
// event is calculated for each finger.
package mobiletouch

import (
	"golang.org/x/mobile/event/touch"

	"github.com/srb2star/srb2input/logger"
	srbtouch "github.com/srb2star/srb2input/touch"
	"github.com/srb2star/srb2input/userinput"
)

type finger struct {
	seq  touch.Sequence
	used bool
	x    int
	y    int
}

// Translator converts mobile touch events to userinput events. The zero
// value is ready to use.
type Translator struct {
	fingers [srbtouch.NumFingers]finger
}

func (tr *Translator) find(seq touch.Sequence) (int, bool) {
	for i := range tr.fingers {
		if tr.fingers[i].used && tr.fingers[i].seq == seq {
			return i, true
		}
	}
	return 0, false
}

func (tr *Translator) claim(seq touch.Sequence) (int, bool) {
	if i, ok := tr.find(seq); ok {
		return i, true
	}
	for i := range tr.fingers {
		if !tr.fingers[i].used {
			tr.fingers[i] = finger{seq: seq, used: true}
			return i, true
		}
	}
	return 0, false
}

// Translate a touch event. The boolean is false if the event could not be
// translated. This happens when there are more fingers on the screen than
// there are finger slots, or if the sequence is unknown.
func (tr *Translator) Translate(ev touch.Event) (userinput.Event, bool) {
	var i int
	var ok bool

	out := userinput.Event{
		X: int(ev.X),
		Y: int(ev.Y),

		// pressure is not reported
		Pressure: 1.0,
	}

	switch ev.Type {
	case touch.TypeBegin:
		out.Type = userinput.TouchDown
		i, ok = tr.claim(ev.Sequence)
	case touch.TypeMove:
		out.Type = userinput.TouchMotion
		i, ok = tr.find(ev.Sequence)
	case touch.TypeEnd:
		out.Type = userinput.TouchUp
		i, ok = tr.find(ev.Sequence)
	}

	if !ok {
		logger.Logf(logger.Allow, "mobiletouch", "no finger slot for sequence %d", ev.Sequence)
		return userinput.Event{}, false
	}

	f := &tr.fingers[i]
	out.Key = i
	if ev.Type != touch.TypeBegin {
		out.DX = out.X - f.x
		out.DY = out.Y - f.y
	}
	f.x = out.X
	f.y = out.Y

	if ev.Type == touch.TypeEnd {
		f.used = false
	}

	return out, true
}
