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

package config

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/srb2star/srb2input/bindings"
	"github.com/srb2star/srb2input/curated"
	"github.com/srb2star/srb2input/logger"
	"github.com/srb2star/srb2input/prefs"
	"github.com/srb2star/srb2input/version"
)

// Sentinal errors.
const (
	UnknownCommand  = "unknown command (%s)"
	ExecVersionArgs = "execversion [<version>]: set the config format version"
	BadExecVersion  = "execversion: not a valid version (%s)"
	DuplicateName   = "config: name already in use (%s)"
)

// Variable is a console variable that can be set from a config file. All the
// types in the prefs package satisfy this interface.
type Variable interface {
	Set(prefs.Value) error
	String() string
}

// Interpreter runs the commands in a config file against a binding set.
type Interpreter struct {
	set *bindings.Set

	// feedback from commands is written here. usually the console
	out io.Writer

	variables map[string]Variable
}

// NewInterpreter is the preferred method of initialisation for the
// Interpreter type. The output writer can be nil.
func NewInterpreter(set *bindings.Set, out io.Writer) *Interpreter {
	if out == nil {
		out = io.Discard
	}
	return &Interpreter{
		set:       set,
		out:       out,
		variables: make(map[string]Variable),
	}
}

// Variable adds a console variable to the interpreter. The name can not be
// the name of one of the built-in commands.
func (it *Interpreter) Variable(name string, v Variable) error {
	name = strings.ToLower(name)
	if _, ok := it.variables[name]; ok || isCommand(name) {
		return curated.Errorf(DuplicateName, name)
	}
	it.variables[name] = v
	return nil
}

func isCommand(name string) bool {
	switch name {
	case bindings.CommandName(bindings.Player1), bindings.CommandName(bindings.Player2), "execversion":
		return true
	}
	return false
}

// variable names in sorted order
func (it *Interpreter) variableNames() []string {
	n := make([]string, 0, len(it.variables))
	for k := range it.variables {
		n = append(n, k)
	}
	sort.Strings(n)
	return n
}

// Exec runs every command on the line. An error in one command does not stop
// the remaining commands from running. The returned error is the last error.
func (it *Interpreter) Exec(line string) error {
	var err error
	for _, c := range SplitCommands(line) {
		if e := it.command(TokeniseInput(c)); e != nil {
			fmt.Fprintln(it.out, e)
			err = e
		}
	}
	return err
}

// Run every line read from the reader. Errors in commands are written to the
// output but are not returned. The only error returned is a read error.
func (it *Interpreter) Run(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		_ = it.Exec(scanner.Text())
	}
	return scanner.Err()
}

func (it *Interpreter) command(tk *Tokens) error {
	name, ok := tk.Get()
	if !ok {
		return nil
	}
	name = strings.ToLower(name)

	switch name {
	case bindings.CommandName(bindings.Player1):
		return it.setcontrol(bindings.Player1, tk)
	case bindings.CommandName(bindings.Player2):
		return it.setcontrol(bindings.Player2, tk)
	case "execversion":
		return it.execversion(tk)
	}

	if v, ok := it.variables[name]; ok {
		val, ok := tk.Get()
		if !ok {
			fmt.Fprintf(it.out, "\"%s\" is \"%s\"\n", name, v.String())
			return nil
		}
		return v.Set(val)
	}

	logger.Logf(logger.Allow, "config", UnknownCommand, name)
	return curated.Errorf(UnknownCommand, name)
}

func (it *Interpreter) setcontrol(player bindings.Player, tk *Tokens) error {
	if tk.Remaining() != 2 && tk.Remaining() != 3 {
		return curated.Errorf(bindings.WrongArguments, bindings.CommandName(player), player)
	}
	control, _ := tk.Get()
	return it.set.SetControl(player, control, tk.Rest()...)
}

func (it *Interpreter) execversion(tk *Tokens) error {
	switch tk.Remaining() {
	case 0:
		fmt.Fprintf(it.out, "\"execversion\" is \"%d\"\n", int(it.set.ExecVersion))
		return nil
	case 1:
	default:
		return curated.Errorf(ExecVersionArgs)
	}

	s, _ := tk.Get()
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return curated.Errorf(BadExecVersion, s)
	}
	it.set.ExecVersion = version.ExecVersion(n)
	return nil
}
