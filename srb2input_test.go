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

package main

import (
	"bufio"
	"io"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/srb2star/srb2input/bindings"
	"github.com/srb2star/srb2input/controls"
	"github.com/srb2star/srb2input/keys"
	"github.com/srb2star/srb2input/schemes"
	"github.com/srb2star/srb2input/test"
	"github.com/srb2star/srb2input/userinput"
)

func newTestSession(t *testing.T, out io.Writer) *session {
	t.Helper()
	s, err := newSession(schemes.FPS, "", out)
	test.DemandSuccess(t, err)
	return s
}

func TestSessionVariables(t *testing.T) {
	tw := &test.CompareWriter{}
	s := newTestSession(t, tw)

	test.ExpectSuccess(t, s.interp.Exec("mousesens 30; controlperkey several"))
	test.ExpectEquality(t, s.prefs.MouseSens.Get().(int), 30)
	test.ExpectEquality(t, s.set.Mode, bindings.Shared)

	test.ExpectSuccess(t, s.interp.Exec("touch_camera false"))
	test.ExpectEquality(t, s.prefs.Touch.Camera.Get().(bool), false)

	tw.Clear()
	test.ExpectSuccess(t, s.interp.Exec("touchsens"))
	test.ExpectEquality(t, tw.Compare("\"touchsens\" is \"40\"\n"), true)

	test.ExpectFailure(t, s.interp.Exec("touch_movementstyle sideways"))
}

func TestSessionLoadOptional(t *testing.T) {
	s := newTestSession(t, nil)
	pth := filepath.Join(t.TempDir(), "missing.cfg")

	test.ExpectSuccess(t, s.load(pth, true))
	test.ExpectFailure(t, s.load(pth, false))

	// the defaults are still in place
	test.ExpectEquality(t, s.set.Table(bindings.Player1).Bound(controls.Forward), bindings.Pair{'w', keys.Null})
}

func TestReport(t *testing.T) {
	s := newTestSession(t, nil)
	test.ExpectSuccess(t, s.interp.LoadReader(strings.NewReader(`
execversion 28
controlperkey several
setcontrol forward "UP ARROW"
setcontrol backward "DOWN ARROW"
setcontrol lookup PGUP
setcontrol lookdown PGDN
setcontrol fire s MOUSE1
setcontrol firenormal w
setcontrol tossflag t
`)))

	tw := &test.CompareWriter{}
	report(s.set, tw, true)

	test.ExpectEquality(t, tw.Contains("control per key: Several"), true)
	test.ExpectEquality(t, tw.Contains("player 1: scheme Custom (movement Platform)"), true)
	test.ExpectEquality(t, tw.Contains("  forward          UP ARROW\n"), true)
	test.ExpectEquality(t, tw.Contains("  fire             s, MOUSE1\n"), true)
	test.ExpectEquality(t, tw.Contains("  jump             SPACE, JOY6\n"), true)
	test.ExpectEquality(t, tw.Contains("t is bound to tossflag, talkkey"), true)
	test.ExpectEquality(t, tw.Contains("player 2: scheme FPS (movement FPS)"), true)
}

func TestCaptureKey(t *testing.T) {
	dir := t.TempDir()
	pth := filepath.Join(dir, "config.cfg")

	s := newTestSession(t, nil)

	var capture userinput.Capture
	capture.Start(bindings.Player1, controls.Jump, 0, 0)

	// the second key is never read
	res, err := captureKey(bufio.NewReader(strings.NewReader("Qx")), &capture, nil)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, res, userinput.Captured)

	tw := &test.CompareWriter{}
	test.ExpectSuccess(t, commitCapture(s, &capture, res, pth, tw))
	test.ExpectEquality(t, tw.Contains("q bound and saved to"), true)

	// q was not bound to anything so only the jump control changes
	test.ExpectEquality(t, s.set.Table(bindings.Player1).Bound(controls.Jump), bindings.Pair{'q', keys.Joy1 + 5})

	// the saved file can be loaded by a new session
	r := newTestSession(t, nil)
	test.ExpectSuccess(t, r.load(pth, false))
	test.ExpectEquality(t, r.set.Table(bindings.Player1).Bound(controls.Jump), bindings.Pair{'q', keys.Joy1 + 5})
}

func TestCaptureCancel(t *testing.T) {
	var capture userinput.Capture

	capture.Start(bindings.Player1, controls.Jump, 0, 0)
	res, err := captureKey(bufio.NewReader(strings.NewReader("\x1b")), &capture, nil)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, res, userinput.Cancelled)

	// CTRL-C
	capture.Start(bindings.Player1, controls.Jump, 0, 0)
	res, err = captureKey(bufio.NewReader(strings.NewReader("\x03")), &capture, nil)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, res, userinput.Cancelled)

	s := newTestSession(t, nil)
	tw := &test.CompareWriter{}
	test.ExpectSuccess(t, commitCapture(s, &capture, res, filepath.Join(t.TempDir(), "x.cfg"), tw))
	test.ExpectEquality(t, tw.Compare("binding cancelled\n"), true)
	test.ExpectEquality(t, s.set.Table(bindings.Player1).Bound(controls.Jump), bindings.Pair{keys.Space, keys.Joy1 + 5})
}

func TestCaptureExpired(t *testing.T) {
	var capture userinput.Capture
	capture.Start(bindings.Player1, controls.Jump, 1, 2)

	// the pipe is never written to so a key is never read
	pr, pw := io.Pipe()
	defer pw.Close()

	ticks := make(chan time.Time, 2)
	ticks <- time.Time{}
	ticks <- time.Time{}

	res, err := captureKey(bufio.NewReader(pr), &capture, ticks)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, res, userinput.Expired)
}

func TestCaptureReadError(t *testing.T) {
	var capture userinput.Capture
	capture.Start(bindings.Player1, controls.Jump, 0, 0)

	_, err := captureKey(bufio.NewReader(strings.NewReader("")), &capture, nil)
	test.ExpectFailure(t, err)
}

type alwaysInGame struct{}

func (alwaysInGame) InGameInput() bool { return true }

func TestWatcher(t *testing.T) {
	s := newTestSession(t, nil)
	in := userinput.NewInput(s.set, s.prefs, alwaysInGame{})

	tw := &test.CompareWriter{}
	w := watcher{in: in, out: tw}

	in.Dispatch(userinput.Event{Type: userinput.KeyDown, Key: int(keys.Space)})
	in.Dispatch(userinput.Event{Type: userinput.KeyDown, Key: int(keys.SecJoy1 + 5)})
	w.update()
	test.ExpectEquality(t, tw.Compare("player 1: +jump\nplayer 2: +jump\n"), true)

	// no change, no output
	tw.Clear()
	w.update()
	test.ExpectEquality(t, tw.Compare(""), true)

	in.Dispatch(userinput.Event{Type: userinput.KeyUp, Key: int(keys.Space)})
	w.update()
	test.ExpectEquality(t, tw.Compare("player 1: -jump\n"), true)
}
