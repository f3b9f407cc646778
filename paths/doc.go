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

// Package paths contains functions to prepare paths for PicoComputer resources.
//
// The ResourcePath() function returns the correct path to a resource
// directory/file. The path is rooted in the ".picocomputer" directory if it
// exists in the current working directory. Otherwise the path is rooted in the
// user's configuration directory (as returned by os.UserConfigDir()).
//
// ResourcePath() will create the directory part of the path if it does not
// exist.
package paths
