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

package logger_test

import (
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/srb2star/srb2input/logger"
	"github.com/srb2star/srb2input/test"
)

func TestTail(t *testing.T) {
	log := logger.NewLogger(100)
	w := &test.CompareWriter{}

	log.Write(w)
	test.ExpectEquality(t, w.String(), "")

	log.Log(logger.Allow, "setcontrol", "Control 'flyaway' unknown")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "setcontrol: Control 'flyaway' unknown\n")

	w.Clear()
	log.Log(logger.Allow, "dispatch", "bad key")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "setcontrol: Control 'flyaway' unknown\ndispatch: bad key\n")

	// asking for too many entries in a Tail() should be okay
	w.Clear()
	log.Tail(w, 100)
	test.ExpectEquality(t, len(w.Lines()), 2)

	w.Clear()
	log.Tail(w, 1)
	test.ExpectEquality(t, w.String(), "dispatch: bad key\n")

	w.Clear()
	log.Tail(w, 0)
	test.ExpectEquality(t, w.String(), "")
}

func TestRepeat(t *testing.T) {
	log := logger.NewLogger(100)
	w := &test.CompareWriter{}

	log.Log(logger.Allow, "dispatch", "bad key")
	log.Log(logger.Allow, "dispatch", "bad key")
	log.Log(logger.Allow, "dispatch", "bad key")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "dispatch: bad key (repeat x3)\n")
	test.ExpectEquality(t, log.Len(), 1)
}

func TestMaxEntries(t *testing.T) {
	log := logger.NewLogger(3)
	for i := range 10 {
		log.Log(logger.Allow, "tag", i)
	}
	test.ExpectEquality(t, log.Len(), 3)

	w := &test.CompareWriter{}
	log.Tail(w, 1)
	test.ExpectEquality(t, w.String(), "tag: 9\n")
}

type prohibitLogging struct {
	allow int
}

func (p prohibitLogging) AllowLogging() bool {
	return p.allow > 50
}

func TestPermissions(t *testing.T) {
	log := logger.NewLogger(100)
	w := &test.CompareWriter{}

	var p prohibitLogging

	for range 100 {
		p.allow = rand.IntN(100)
		log.Clear()
		w.Clear()
		log.Log(p, "tag", "detail")
		log.Write(w)
		if p.AllowLogging() {
			test.ExpectEquality(t, w.String(), "tag: detail\n")
		} else {
			test.ExpectEquality(t, w.String(), "")
		}
	}
}

type stringerTest struct{}

func (_ stringerTest) String() string {
	return "stringer test"
}

func TestDetailTypes(t *testing.T) {
	log := logger.NewLogger(100)
	w := &test.CompareWriter{}

	log.Log(logger.Allow, "tag", errors.New("test error"))
	log.Log(logger.Allow, "tag", stringerTest{})
	log.Log(logger.Allow, "tag", 100)
	log.Logf(logger.Allow, "tag", "wrapped: %v", errors.New("test error"))
	log.Write(w)
	test.ExpectEquality(t, w.String(), "tag: test error\ntag: stringer test\ntag: 100\ntag: wrapped: test error\n")
}

func TestEcho(t *testing.T) {
	log := logger.NewLogger(100)
	w := &test.CompareWriter{}
	log.SetEcho(w)
	log.Log(logger.Allow, "tag", "echoed")
	test.ExpectEquality(t, w.String(), "tag: echoed\n")

	log.SetEcho(nil)
	log.Log(logger.Allow, "tag", "not echoed")
	test.ExpectEquality(t, w.String(), "tag: echoed\n")
}
