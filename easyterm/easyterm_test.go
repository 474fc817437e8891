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

package easyterm_test

import (
	"os"
	"testing"

	"github.com/srb2star/srb2input/easyterm"
	"github.com/srb2star/srb2input/test"
)

func TestInitialiseMissingFiles(t *testing.T) {
	var term easyterm.Terminal
	test.ExpectFailure(t, term.Initialise(nil, os.Stdout))
	test.ExpectFailure(t, term.Initialise(os.Stdin, nil))
}

func TestInitialiseNotTerminal(t *testing.T) {
	r, w, err := os.Pipe()
	test.DemandSuccess(t, err)
	defer r.Close()
	defer w.Close()

	// a pipe has no terminal attributes to read
	var term easyterm.Terminal
	test.ExpectFailure(t, term.Initialise(r, w))
}
