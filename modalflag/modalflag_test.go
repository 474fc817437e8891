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

package modalflag_test

import (
	"testing"

	"github.com/srb2star/srb2input/modalflag"
	"github.com/srb2star/srb2input/test"
)

func TestNoModesNoFlags(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{})

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "")
	test.ExpectEquality(t, md.Path(), "")
	test.ExpectEquality(t, len(md.RemainingArgs()), 0)
}

func TestFlagsOnly(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"-player", "2", "config.cfg", "jump"})
	player := md.AddInt("player", 1, "player to bind")

	test.ExpectEquality(t, *player, 1)

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, *player, 2)
	test.ExpectEquality(t, len(md.RemainingArgs()), 2)
	test.ExpectEquality(t, md.GetArg(0), "config.cfg")
	test.ExpectEquality(t, md.GetArg(1), "jump")
	test.ExpectEquality(t, md.GetArg(2), "")
}

func TestUnknownFlag(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"-nosuchflag"})

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseError)
	test.ExpectFailure(t, err)
}

func TestModes(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"bind", "-slot", "2", "config.cfg"})
	md.AddSubModes("check", "bind")

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "BIND")

	md.NewMode()
	slot := md.AddInt("slot", 1, "slot to bind")
	p, err = md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, *slot, 2)
	test.ExpectEquality(t, md.Path(), "BIND")
	test.ExpectEquality(t, md.GetArg(0), "config.cfg")
}

func TestDefaultMode(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"config.cfg"})
	md.AddSubModes("check", "bind")

	_, err := md.Parse()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "CHECK")
	test.ExpectEquality(t, md.GetArg(0), "config.cfg")

	// flags belonging to the next layer also select the default mode
	md.NewArgs([]string{"-verbose", "config.cfg"})
	md.AddSubModes("check", "bind")
	_, err = md.Parse()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "CHECK")

	md.NewMode()
	verbose := md.AddBool("verbose", false, "list every binding")
	_, err = md.Parse()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, *verbose, true)
	test.ExpectEquality(t, md.GetArg(0), "config.cfg")

	md.NewArgs([]string{})
	md.AddSubModes("check")
	md.AddDefaultSubMode("export")
	_, err = md.Parse()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "EXPORT")
}

func TestNestedPath(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"default", "fps"})
	md.AddSubModes("check", "default")
	_, _ = md.Parse()

	md.NewMode()
	md.AddSubModes("platform", "fps")
	_, _ = md.Parse()

	test.ExpectEquality(t, md.Mode(), "FPS")
	test.ExpectEquality(t, md.Path(), "DEFAULT/FPS")
	test.ExpectEquality(t, md.String(), "DEFAULT/FPS")
}

func TestNoHelpAvailable(t *testing.T) {
	tw := &test.CompareWriter{}

	md := modalflag.Modes{Output: tw}
	md.NewArgs([]string{"-help"})

	p, _ := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)
	test.ExpectEquality(t, tw.Compare("No help available\n"), true)
}

func TestHelpFlagsAndModes(t *testing.T) {
	tw := &test.CompareWriter{}

	md := modalflag.Modes{Output: tw}
	md.NewArgs([]string{"-help"})
	md.AddBool("verbose", false, "list every binding")
	md.AddSubModes("check", "bind")
	md.AdditionalHelp("see the manual")

	p, _ := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)
	test.ExpectEquality(t, tw.Contains("-verbose"), true)
	test.ExpectEquality(t, tw.Contains("list every binding"), true)
	test.ExpectEquality(t, tw.Contains("available sub-modes: CHECK, BIND"), true)
	test.ExpectEquality(t, tw.Contains("default: CHECK"), true)
	test.ExpectEquality(t, tw.Contains("see the manual"), true)
}

func TestVisit(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"-b", "-a"})
	md.AddBool("a", false, "")
	md.AddBool("b", false, "")
	md.AddBool("c", false, "")
	_, _ = md.Parse()

	var seen []string
	md.Visit(func(f string) {
		seen = append(seen, f)
	})
	test.ExpectEquality(t, len(seen), 2)
	test.ExpectEquality(t, seen[0], "a")
	test.ExpectEquality(t, seen[1], "b")
}
