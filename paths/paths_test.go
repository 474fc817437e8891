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

//go:build !release

package paths_test

import (
	"os"
	"strings"
	"testing"

	"github.com/srb2star/srb2input/paths"
	"github.com/srb2star/srb2input/test"
)

func TestPaths(t *testing.T) {
	t.Chdir(t.TempDir())

	pth, err := paths.ResourcePath("foo/bar", "baz")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, ".srb2input/foo/bar/baz")

	// sub-directory has been created
	_, err = os.Stat(".srb2input/foo/bar")
	test.ExpectSuccess(t, err)

	pth, err = paths.ResourcePath("", "baz")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, ".srb2input/baz")

	pth, err = paths.ResourcePath("", "")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, ".srb2input")
}

func TestUniqueFilename(t *testing.T) {
	fn := paths.UniqueFilename("export", "player1", "json")
	test.ExpectSuccess(t, strings.HasPrefix(fn, "export_player1_"))
	test.ExpectSuccess(t, strings.HasSuffix(fn, ".json"))

	fn = paths.UniqueFilename("dump", "", "")
	test.ExpectSuccess(t, strings.HasPrefix(fn, "dump_"))
	test.ExpectFailure(t, strings.Contains(fn, "."))
}
