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

package archivefs

import (
	"archive/zip"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"slices"
	"strings"

	"github.com/nescore/nescore/curated"
)

// ArchiveError is the sentinel pattern for errors raised by the package.
const ArchiveError = "archivefs: %v"

// ArchiveExtension is the file extension of supported archives. Comparison is
// case insensitive.
const ArchiveExtension = ".zip"

// IsArchive returns true if the filename has the extension of a supported
// archive type.
func IsArchive(filename string) bool {
	return strings.EqualFold(filepath.Ext(filename), ArchiveExtension)
}

// Split the filename into the path to the archive file and the path of the
// file inside the archive. The ok value is false if no part of the filename
// is an archive.
//
// The inner path always uses forward slashes, as required by the zip format.
func Split(filename string) (archive string, inner string, ok bool) {
	filename = filepath.Clean(filename)
	parts := strings.Split(filename, string(filepath.Separator))

	for i := range parts {
		p := strings.Join(parts[:i+1], string(filepath.Separator))
		if p == "" || !IsArchive(p) {
			continue
		}

		fi, err := os.Stat(p)
		if err != nil || !fi.Mode().IsRegular() {
			continue
		}

		return p, path.Join(parts[i+1:]...), true
	}

	return filename, "", false
}

// ReadFile reads the named file. The file can be inside an archive.
func ReadFile(filename string) ([]byte, error) {
	archive, inner, ok := Split(filename)
	if !ok {
		d, err := os.ReadFile(filename)
		if err != nil {
			return nil, curated.Errorf(ArchiveError, err)
		}
		return d, nil
	}

	if inner == "" {
		return nil, curated.Errorf(ArchiveError, "archive named without a file")
	}

	zr, err := zip.OpenReader(archive)
	if err != nil {
		return nil, curated.Errorf(ArchiveError, err)
	}
	defer zr.Close()

	d, err := fs.ReadFile(zr, inner)
	if err != nil {
		return nil, curated.Errorf(ArchiveError, err)
	}

	return d, nil
}

// List returns the path of every file in the archive for which the match
// function returns true. The list is sorted. A nil match function matches
// every file.
func List(archive string, match func(string) bool) ([]string, error) {
	zr, err := zip.OpenReader(archive)
	if err != nil {
		return nil, curated.Errorf(ArchiveError, err)
	}
	defer zr.Close()

	var files []string

	err = fs.WalkDir(zr, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if match == nil || match(p) {
			files = append(files, p)
		}
		return nil
	})
	if err != nil {
		return nil, curated.Errorf(ArchiveError, err)
	}

	slices.Sort(files)

	return files, nil
}
