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
	"crypto/sha1"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/nescore/nescore/archivefs"
	"github.com/nescore/nescore/curated"
	"github.com/nescore/nescore/hardware/memory/cartridge"
	"github.com/nescore/nescore/logger"
)

// Sentinel patterns for errors raised by the cartridgeloader package.
const (
	LoadError    = "cartridgeloader: %v"
	HashMismatch = "cartridgeloader: unexpected hash value (%s)"
	NotLoaded    = "cartridgeloader: cartridge has not been loaded"
)

// Loader is used to specify the cartridge to load into the console.
type Loader struct {
	// filename of cartridge to load.
	Filename string

	// expected hash of the loaded cartridge. empty string indicates that the
	// hash is unknown and need not be validated. after a load operation the
	// value will be the hash of the loaded data
	Hash string

	// copy of the loaded data. subsequent calls to Load() will not reload
	// the data
	Data []byte

	// the parsed cartridge. nil if the data is not in the iNES format
	Cartridge *cartridge.Cartridge
}

// NewLoader is the preferred method of initialisation for the Loader type.
func NewLoader(filename string) Loader {
	return Loader{
		Filename: filename,
	}
}

// ShortName returns a shortened version of the Loader filename.
func (cl Loader) ShortName() string {
	shortCartName := filepath.Base(cl.Filename)
	shortCartName = strings.TrimSuffix(shortCartName, filepath.Ext(cl.Filename))
	return shortCartName
}

// HasLoaded returns true if Load() has been successfully called.
func (cl Loader) HasLoaded() bool {
	return len(cl.Data) > 0
}

// Load the cartridge data. Loader filenames with a valid scheme will use
// that method to load the data. Currently supported schemes are HTTP and
// local files. Local files can be inside a zip archive.
func (cl *Loader) Load() error {
	if len(cl.Data) > 0 {
		return nil
	}

	scheme := "file"

	url, err := url.Parse(cl.Filename)
	if err == nil {
		scheme = url.Scheme
	}

	switch scheme {
	case "http", "https":
		resp, err := http.Get(cl.Filename)
		if err != nil {
			return curated.Errorf(LoadError, err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return curated.Errorf(LoadError, resp.Status)
		}

		cl.Data, err = io.ReadAll(resp.Body)
		if err != nil {
			return curated.Errorf(LoadError, err)
		}

	case "file", "":
		cl.Data, err = archivefs.ReadFile(cl.Filename)
		if err != nil {
			return curated.Errorf(LoadError, err)
		}

	default:
		// a single letter scheme is a windows drive letter
		if len(scheme) != 1 {
			return curated.Errorf(LoadError, fmt.Sprintf("unsupported URL scheme (%s)", scheme))
		}
		cl.Data, err = archivefs.ReadFile(cl.Filename)
		if err != nil {
			return curated.Errorf(LoadError, err)
		}
	}

	// generate hash
	hash := fmt.Sprintf("%x", sha1.Sum(cl.Data))

	// check for hash consistency
	if cl.Hash != "" && cl.Hash != hash {
		cl.Data = nil
		return curated.Errorf(HashMismatch, hash)
	}

	cl.Hash = hash

	if strings.HasPrefix(string(cl.Data), cartridge.Constant) {
		cl.Cartridge, err = cartridge.Parse(cl.Data)
		if err != nil {
			cl.Data = nil
			return curated.Errorf(LoadError, err)
		}
	}

	logger.Logf(logger.Allow, "cartridgeloader", "loaded %s (%d bytes, sha1 %s)", cl.ShortName(), len(cl.Data), cl.Hash)

	return nil
}

// PRG returns the program data of the loaded cartridge.
func (cl Loader) PRG() ([]uint8, error) {
	if !cl.HasLoaded() {
		return nil, curated.Errorf(NotLoaded)
	}
	if cl.Cartridge != nil {
		return cl.Cartridge.PRG, nil
	}
	return cl.Data, nil
}
