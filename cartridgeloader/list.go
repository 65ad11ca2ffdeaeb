// This file is part of nescore.
//
// nescore is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// nescore is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with nescore.  If not, see <https://www.gnu.org/licenses/>.

package cartridgeloader

import (
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/nescore/nescore/archivefs"
	"github.com/nescore/nescore/curated"
)

// FileExtension is the file extension of iNES files. The comparison with the
// extension is not case sensitive.
const FileExtension = ".nes"

func isROM(path string) bool {
	return strings.EqualFold(filepath.Ext(path), FileExtension)
}

// ListROMs returns the path of every iNES file in the directory tree rooted at
// dir. Symbolic links are followed. The list is sorted by path.
func ListROMs(dir string) ([]string, error) {
	var roms []string

	// the real path of every directory visited. guards against symbolic
	// link loops
	visited := make(map[string]bool)

	var walk func(root string) error
	walk = func(root string) error {
		real, err := filepath.EvalSymlinks(root)
		if err != nil {
			return err
		}
		if visited[real] {
			return nil
		}
		visited[real] = true

		// the walk is of the real path but paths are reported relative to
		// the root as given
		return filepath.WalkDir(real, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				if path == real {
					return err
				}

				// unreadable entries are skipped
				if d != nil && d.IsDir() {
					return fs.SkipDir
				}
				return nil
			}

			rel, err := filepath.Rel(real, path)
			if err != nil {
				return err
			}
			path = filepath.Join(root, rel)

			if d.Type()&fs.ModeSymlink == fs.ModeSymlink {
				info, err := os.Stat(path)
				if err != nil {
					// broken link
					return nil
				}
				if info.IsDir() {
					// errors in a linked directory do not stop the listing
					_ = walk(path)
					return nil
				}
			} else if d.IsDir() {
				if rel != "." {
					if r, err := filepath.EvalSymlinks(path); err == nil {
						if visited[r] {
							return fs.SkipDir
						}
						visited[r] = true
					}
				}
				return nil
			}

			if isROM(path) {
				roms = append(roms, path)
			} else if archivefs.IsArchive(path) {
				// unreadable archives are skipped
				inner, err := archivefs.List(path, isROM)
				if err == nil {
					for _, f := range inner {
						roms = append(roms, filepath.Join(path, f))
					}
				}
			}

			return nil
		})
	}

	if err := walk(dir); err != nil {
		return nil, curated.Errorf(LoadError, err)
	}

	slices.Sort(roms)

	return roms, nil
}
