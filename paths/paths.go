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

package paths

import (
	"os"
	"path/filepath"
)

// the base path for all resources. note that we don't use this value directly
// except in the getBasePath() function. that function should be used instead.
const baseResourcePath = ".picocomputer"

// ResourcePath returns the resource string (representing the resource to be
// loaded) prepended with operating system specific details. The directory
// part of the path is created if necessary.
//
// Both arguments can be empty, in which case the path to the base directory
// is returned.
func ResourcePath(subPth string, file string) (string, error) {
	base, err := getBasePath(subPth)
	if err != nil {
		return "", err
	}
	return filepath.Join(base, file), nil
}

// getBasePath() returns baseResourcePath with the user's config directory
// prepended if it the unadorned baseResourcePath cannot be found in the
// current directory.
func getBasePath(subPth string) (string, error) {
	var pth string

	if _, err := os.Stat(baseResourcePath); err == nil {
		pth = filepath.Join(baseResourcePath, subPth)
	} else {
		cfg, err := os.UserConfigDir()
		if err != nil {
			return "", err
		}
		pth = filepath.Join(cfg, baseResourcePath[1:], subPth)
	}

	if _, err := os.Stat(pth); err == nil {
		return pth, nil
	}

	if err := os.MkdirAll(pth, 0o700); err != nil {
		return "", err
	}

	return pth, nil
}
