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
	"fmt"
	"io"
	"os"
	"time"

	"github.com/srb2star/srb2input/bindings"
	"github.com/srb2star/srb2input/controls"
	"github.com/srb2star/srb2input/curated"
	"github.com/srb2star/srb2input/easyterm"
	"github.com/srb2star/srb2input/keys"
	"github.com/srb2star/srb2input/modalflag"
	"github.com/srb2star/srb2input/touch"
	"github.com/srb2star/srb2input/userinput"
)

func bind(md *modalflag.Modes, sync *mainSync) error {
	md.NewMode()
	cf := addCommonFlags(md)
	player := md.AddInt("player", 1, "player to bind: 1 or 2")
	slot := md.AddInt("slot", 1, "binding slot: 1 or 2")
	timeout := md.AddInt("timeout", 5, "seconds to wait for a key. 0 waits forever")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	var cfg string
	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("control name required for %s mode", md)
	case 1:
	case 2:
		cfg = md.GetArg(1)
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	c, ok := controls.Lookup(md.GetArg(0))
	if !ok {
		return curated.Errorf(bindings.UnknownControl, md.GetArg(0))
	}
	if *player < 1 || *player > int(bindings.NumPlayers) {
		return fmt.Errorf("player must be 1 or 2 (%d)", *player)
	}
	if *slot < 1 || *slot > 2 {
		return fmt.Errorf("slot must be 1 or 2 (%d)", *slot)
	}
	if *timeout < 0 {
		return fmt.Errorf("timeout can not be negative (%d)", *timeout)
	}

	s, err := cf.session(os.Stdout)
	if err != nil {
		return err
	}

	pth, err := configPath(cfg)
	if err != nil {
		return err
	}
	err = s.load(pth, true)
	if err != nil {
		return err
	}

	var term easyterm.Terminal
	err = term.Initialise(os.Stdin, os.Stdout)
	if err != nil {
		return err
	}

	// CTRL-C is read from the terminal while it is in raw mode
	sync.state <- stateRequest{req: reqNoIntSig}

	pl := bindings.Player(*player - 1)
	term.Print("press a key for %s (%s, slot %d). ESC cancels\r\n", c.Name(), pl, *slot)

	err = term.RawMode()
	if err != nil {
		return err
	}

	var capture userinput.Capture
	capture.Start(pl, c, *slot-1, *timeout*touch.TicRate)

	ticker := time.NewTicker(time.Second / touch.TicRate)
	result, err := captureKey(bufio.NewReader(os.Stdin), &capture, ticker.C)
	ticker.Stop()

	if e := term.CanonicalMode(); e != nil && err == nil {
		err = e
	}
	if err != nil {
		return err
	}

	return commitCapture(s, &capture, result, pth, os.Stdout)
}

// captureKey offers keys read from the terminal to the capture until the
// capture is no longer waiting. the capture is ticked every time the ticks
// channel fires.
func captureKey(r *bufio.Reader, capture *userinput.Capture, ticks <-chan time.Time) (userinput.CaptureResult, error) {
	type keyRead struct {
		k   keys.Code
		err error
	}

	read := make(chan keyRead, 1)
	go func() {
		for {
			k, err := easyterm.ReadKey(r)
			read <- keyRead{k: k, err: err}
			if err != nil {
				return
			}
		}
	}()

	for {
		select {
		case kr := <-read:
			if kr.err != nil {
				if curated.Is(kr.err, easyterm.UserInterrupt) {
					return userinput.Cancelled, nil
				}
				return userinput.Inactive, kr.err
			}
			if res := capture.Key(kr.k); res != userinput.Waiting {
				return res, nil
			}
		case <-ticks:
			if res := capture.Tick(); res != userinput.Waiting {
				return res, nil
			}
		}
	}
}

func commitCapture(s *session, capture *userinput.Capture, result userinput.CaptureResult, pth string, out io.Writer) error {
	if result != userinput.Captured {
		fmt.Fprintf(out, "binding %s\n", result)
		return nil
	}

	err := capture.Commit(s.set)
	if err != nil {
		return err
	}

	err = s.interp.Save(pth)
	if err != nil {
		return err
	}

	k, _ := capture.Result()
	fmt.Fprintf(out, "%s bound and saved to %s\n", k.Name(), pth)
	return nil
}
