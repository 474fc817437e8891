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
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/srb2star/srb2input/bindings"
	"github.com/srb2star/srb2input/controls"
	"github.com/srb2star/srb2input/curated"
	"github.com/srb2star/srb2input/keys"
	"github.com/srb2star/srb2input/version"
)

// DefaultConfigFile is the name of the control config file in the resource
// directory.
const DefaultConfigFile = "config.cfg"

// Sentinal error patterns.
const (
	NoConfigFile = "config: no config file (%s)"
	LoadFailed   = "config: load failed: %v"
	SaveFailed   = "config: save failed: %v"
)

// Load runs the config file at the path. The binding set's execversion is
// reset before the file is run and so a file without an execversion command
// is loaded as an unversioned file. Once loaded the execversion is set to the
// latest version, ready for interactive bindings.
func (it *Interpreter) Load(pth string) error {
	f, err := os.Open(pth)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return curated.Errorf(NoConfigFile, pth)
		}
		return curated.Errorf(LoadFailed, err)
	}
	defer f.Close()

	err = it.LoadReader(f)
	if err != nil {
		return curated.Errorf(LoadFailed, err)
	}

	return nil
}

// LoadReader is the same as Load() but reads from an io.Reader.
func (it *Interpreter) LoadReader(r io.Reader) error {
	it.set.ExecVersion = 0
	defer func() {
		it.set.ExecVersion = version.LatestExecVersion
	}()
	return it.Run(r)
}

// Save the config to the file at the path. The file is replaced.
func (it *Interpreter) Save(pth string) error {
	f, err := os.Create(pth)
	if err != nil {
		return curated.Errorf(SaveFailed, err)
	}

	err = it.Write(f)
	if err != nil {
		f.Close()
		return curated.Errorf(SaveFailed, err)
	}

	err = f.Close()
	if err != nil {
		return curated.Errorf(SaveFailed, err)
	}

	return nil
}

// a key name as it is written to the file. quote characters can't appear in
// a quoted argument so the generic form is used
func quoteKey(k keys.Code) string {
	n := k.Name()
	if strings.ContainsRune(n, '"') {
		n = fmt.Sprintf("KEY%d", int(k))
	}
	return fmt.Sprintf("\"%s\"", n)
}

// Write the config. The execversion command is written first, followed by
// the console variables and then the bindings of every control for the first
// player and then the second player.
func (it *Interpreter) Write(w io.Writer) error {
	b := bufio.NewWriter(w)

	fmt.Fprintf(b, "// %s configuration file\n", version.ApplicationName)
	fmt.Fprintf(b, "execversion \"%d\"\n", int(version.LatestExecVersion))

	for _, n := range it.variableNames() {
		fmt.Fprintf(b, "%s \"%s\"\n", n, it.variables[n].String())
	}

	for p := bindings.Player1; p < bindings.NumPlayers; p++ {
		tbl := it.set.Table(p)
		for _, c := range controls.All() {
			pair := tbl.Bound(c)
			fmt.Fprintf(b, "%s \"%s\" %s", bindings.CommandName(p), c.Name(), quoteKey(pair[0]))
			if pair[1] != keys.Null {
				fmt.Fprintf(b, " %s", quoteKey(pair[1]))
			}
			fmt.Fprintln(b)
		}
	}

	return b.Flush()
}
