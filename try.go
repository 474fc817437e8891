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
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/srb2star/srb2input/assert"
	"github.com/srb2star/srb2input/bindings"
	"github.com/srb2star/srb2input/controls"
	"github.com/srb2star/srb2input/logger"
	"github.com/srb2star/srb2input/modalflag"
	"github.com/srb2star/srb2input/sdlevents"
	"github.com/srb2star/srb2input/statsview"
	"github.com/srb2star/srb2input/touch"
	"github.com/srb2star/srb2input/userinput"
)

// stage stands in for the game during the TRY mode. the player is always in
// a level and the actions are reported rather than performed.
type stage struct {
	out io.Writer
}

func (st stage) State() touch.GameState    { return touch.StateLevel }
func (st stage) InGameInput() bool         { return true }
func (st stage) PromptHidesHUD(_ int) bool { return false }
func (st stage) ChatMuted() bool           { return false }
func (st stage) OpenMenu()                 { fmt.Fprintln(st.out, "action: menu") }
func (st stage) ToggleConsole()            { fmt.Fprintln(st.out, "action: console") }
func (st stage) Screenshot()               { fmt.Fprintln(st.out, "action: screenshot") }
func (st stage) ToggleMovie()              { fmt.Fprintln(st.out, "action: movie") }
func (st stage) ToggleChat()               { fmt.Fprintln(st.out, "action: chat") }

func (st stage) Pause() bool {
	fmt.Fprintln(st.out, "action: pause")
	return true
}

func (st stage) SwitchViewpoint() bool {
	fmt.Fprintln(st.out, "action: viewpoint")
	return true
}

// watcher reports changes to the active controls of both players.
type watcher struct {
	in     *userinput.Input
	out    io.Writer
	active [bindings.NumPlayers][controls.Num]bool
}

// update compares the active controls with those seen on the previous
// update. each change is written as a single line.
func (w *watcher) update() {
	for p := bindings.Player1; p < bindings.NumPlayers; p++ {
		var pressed, released []string
		for _, c := range controls.All() {
			a := w.in.ControlActive(p, c)
			if a == w.active[p][c] {
				continue
			}
			w.active[p][c] = a
			if a {
				pressed = append(pressed, c.Name())
			} else {
				released = append(released, c.Name())
			}
		}
		if len(pressed) > 0 {
			fmt.Fprintf(w.out, "%s: +%s\n", p, strings.Join(pressed, " +"))
		}
		if len(released) > 0 {
			fmt.Fprintf(w.out, "%s: -%s\n", p, strings.Join(released, " -"))
		}
	}

	m := w.in.Mouse(bindings.Player1)
	if m.X != 0 || m.Y != 0 || m.LookY != 0 {
		fmt.Fprintf(w.out, "%s: mouse %d %d (look %d)\n", bindings.Player1, m.X, m.Y, m.LookY)
	}
	w.in.ResetMice()
}

// tester is the Servicer for the TRY mode. it owns the SDL window and the
// joysticks and is serviced once per game tick.
type tester struct {
	window    *sdl.Window
	joysticks []*sdl.Joystick

	tr    *sdlevents.Translator
	in    *userinput.Input
	watch watcher

	// closed when the window is closed
	done chan bool
	last time.Time
}

func newTester(s *session, width int, height int, out io.Writer) (*tester, error) {
	assert.MainThread("newTester")

	err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_JOYSTICK | sdl.INIT_EVENTS)
	if err != nil {
		return nil, fmt.Errorf("sdl: %w", err)
	}

	window, err := sdl.CreateWindow("srb2input", sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		int32(width), int32(height), sdl.WINDOW_SHOWN)
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("sdl: %w", err)
	}

	ts := &tester{
		window: window,
		tr:     sdlevents.NewTranslator(width, height),
		done:   make(chan bool),
	}

	// the first two joysticks are given to the two players
	for i := range min(sdl.NumJoysticks(), int(bindings.NumPlayers)) {
		joy := sdl.JoystickOpen(i)
		if joy == nil {
			logger.Logf(logger.Allow, "try", "cannot open joystick %d", i)
			continue
		}
		ts.joysticks = append(ts.joysticks, joy)
		if i == 0 {
			ts.tr.Joystick1 = joy.InstanceID()
		} else {
			ts.tr.Joystick2 = joy.InstanceID()
		}
		fmt.Fprintf(out, "joystick %d: %s\n", i+1, joy.Name())
	}

	st := stage{out: out}
	ts.in = userinput.NewInput(s.set, s.prefs, st)
	res := touch.NewResolver(s.prefs.Touch, st, st, ts.in)
	res.Relayout(touch.LayoutContext{
		Width:              width,
		Height:             height,
		DupX:               max(width/touch.VirtualWidth, 1),
		DupY:               max(height/touch.VirtualHeight, 1),
		CanPause:           true,
		CanSwitchViewpoint: true,
	})
	ts.in.AttachTouch(res)

	ts.watch = watcher{in: ts.in, out: out}

	return ts, nil
}

// Destroy implements the Servicer interface.
func (ts *tester) Destroy(_ io.Writer) {
	for _, joy := range ts.joysticks {
		joy.Close()
	}
	ts.joysticks = nil
	if ts.window != nil {
		ts.window.Destroy()
		ts.window = nil
		sdl.Quit()
	}
}

// Service implements the Servicer interface.
func (ts *tester) Service() {
	assert.MainThread("tester.Service")

	if ts.window == nil {
		return
	}

	if !ts.tr.Service(ts.in) {
		select {
		case <-ts.done:
		default:
			close(ts.done)
		}
		return
	}

	// the game tick
	if time.Since(ts.last) < time.Second/touch.TicRate {
		sdl.Delay(1)
		return
	}
	ts.last = time.Now()

	ts.in.Sweep()
	ts.in.Touch().Tick()
	ts.watch.update()
}

func try(md *modalflag.Modes, sync *mainSync) error {
	md.NewMode()
	cf := addCommonFlags(md)
	width := md.AddInt("width", touch.VirtualWidth*2, "width of window")
	height := md.AddInt("height", touch.VirtualHeight*2, "height of window")
	stats := md.AddBool("statsview", false, "launch the runtime statistics server")
	statsWindow := md.AddInt("statswindow", int(statsview.DefaultConfig.Window/time.Second), "seconds of history kept by the statistics server")
	if !statsview.Available() {
		md.AdditionalHelp("the statsview flag has no effect in this build")
	}

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 1 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	s, err := cf.session(os.Stdout)
	if err != nil {
		return err
	}

	pth, err := configPath(md.GetArg(0))
	if err != nil {
		return err
	}
	err = s.load(pth, true)
	if err != nil {
		return err
	}

	if *stats {
		cfg := statsview.DefaultConfig
		cfg.Window = time.Duration(*statsWindow) * time.Second
		stop := statsview.Launch(os.Stdout, cfg)
		defer stop()
	}

	sync.creator <- func() (Servicer, error) {
		return newTester(s, *width, *height, os.Stdout)
	}

	var ts *tester
	select {
	case svc := <-sync.creation:
		ts = svc.(*tester)
	case err := <-sync.creationError:
		return err
	}

	fmt.Println("close the window to quit")
	<-ts.done

	return nil
}
