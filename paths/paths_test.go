// This file is part of PicoComputer.
//
// PicoComputer is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// PicoComputer is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with PicoComputer.  If not, see <https://www.gnu.org/licenses/>.

package paths_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/picocomputer/paths"
	"github.com/jetsetilly/picocomputer/test"
)

func TestResourcePath(t *testing.T) {
	// running the test from a temporary directory with a local resource
	// directory means we don't touch the user's config directory
	tmp := t.TempDir()
	wd, err := os.Getwd()
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, os.Chdir(tmp))
	defer os.Chdir(wd)

	test.DemandSuccess(t, os.Mkdir(".picocomputer", 0o700))

	pth, err := paths.ResourcePath("", "preferences")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, filepath.Join(".picocomputer", "preferences"))

	pth, err = paths.ResourcePath("dumps", "state.dot")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, filepath.Join(".picocomputer", "dumps", "state.dot"))

	// sub-directory should have been created
	info, err := os.Stat(filepath.Join(".picocomputer", "dumps"))
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, info.IsDir())
}
