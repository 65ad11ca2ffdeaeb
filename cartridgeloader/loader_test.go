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

package cartridgeloader_test

import (
	"archive/zip"
	"crypto/sha1"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/nescore/nescore/cartridgeloader"
	"github.com/nescore/nescore/curated"
	"github.com/nescore/nescore/test"
)

func inesData() []uint8 {
	d := []uint8{'N', 'E', 'S', 0x1a, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}
	p := make([]uint8, 0x4000)
	p[0] = 0xea
	return append(d, p...)
}

func writeFile(t *testing.T, path string, data []uint8) {
	t.Helper()
	err := os.MkdirAll(filepath.Dir(path), 0o755)
	test.DemandSuccess(t, err)
	err = os.WriteFile(path, data, 0o644)
	test.DemandSuccess(t, err)
}

func TestLoadINES(t *testing.T) {
	dir := t.TempDir()
	fn := filepath.Join(dir, "test.nes")
	data := inesData()
	writeFile(t, fn, data)

	cl := cartridgeloader.NewLoader(fn)
	test.ExpectFailure(t, cl.HasLoaded())
	_, err := cl.PRG()
	test.ExpectSuccess(t, curated.Is(err, cartridgeloader.NotLoaded))

	test.DemandSuccess(t, cl.Load())
	test.ExpectSuccess(t, cl.HasLoaded())
	test.ExpectEquality(t, cl.ShortName(), "test")
	test.ExpectEquality(t, cl.Hash, fmt.Sprintf("%x", sha1.Sum(data)))
	test.ExpectSuccess(t, cl.Cartridge != nil)

	prg, err := cl.PRG()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(prg), 0x4000)
	test.ExpectEquality(t, prg[0], uint8(0xea))
}

func TestLoadRaw(t *testing.T) {
	dir := t.TempDir()
	fn := filepath.Join(dir, "prog.bin")
	writeFile(t, fn, []uint8{0xa9, 0x00})

	cl := cartridgeloader.NewLoader(fn)
	test.DemandSuccess(t, cl.Load())
	test.ExpectSuccess(t, cl.Cartridge == nil)
	prg, err := cl.PRG()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(prg), 2)
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	cl := cartridgeloader.NewLoader(filepath.Join(dir, "missing.nes"))
	err := cl.Load()
	test.ExpectSuccess(t, curated.Is(err, cartridgeloader.LoadError))
	test.ExpectSuccess(t, errors.Is(err, fs.ErrNotExist))

	fn := filepath.Join(dir, "hash.nes")
	writeFile(t, fn, inesData())
	cl = cartridgeloader.NewLoader(fn)
	cl.Hash = "0000"
	err = cl.Load()
	test.ExpectSuccess(t, curated.Is(err, cartridgeloader.HashMismatch))
	test.ExpectFailure(t, cl.HasLoaded())

	// iNES constant but a bad header
	fn = filepath.Join(dir, "bad.nes")
	writeFile(t, fn, []uint8{'N', 'E', 'S', 0x1a, 2, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0x00})
	cl = cartridgeloader.NewLoader(fn)
	err = cl.Load()
	test.ExpectSuccess(t, curated.Is(err, cartridgeloader.LoadError))
	test.ExpectFailure(t, cl.HasLoaded())
}

func TestLoadHTTP(t *testing.T) {
	data := inesData()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/rom.nes" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write(data)
	}))
	defer srv.Close()

	cl := cartridgeloader.NewLoader(srv.URL + "/rom.nes")
	test.DemandSuccess(t, cl.Load())
	test.ExpectEquality(t, len(cl.Data), len(data))

	cl = cartridgeloader.NewLoader(srv.URL + "/missing.nes")
	test.ExpectFailure(t, cl.Load())
}

func TestListROMs(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "b.nes"), inesData())
	writeFile(t, filepath.Join(dir, "a.NES"), inesData())
	writeFile(t, filepath.Join(dir, "sub", "c.nes"), inesData())
	writeFile(t, filepath.Join(dir, "sub", "readme.txt"), []uint8("hello"))

	roms, err := cartridgeloader.ListROMs(dir)
	test.DemandSuccess(t, err)
	test.DemandEquality(t, len(roms), 3)
	test.ExpectEquality(t, roms[0], filepath.Join(dir, "a.NES"))
	test.ExpectEquality(t, roms[1], filepath.Join(dir, "b.nes"))
	test.ExpectEquality(t, roms[2], filepath.Join(dir, "sub", "c.nes"))

	_, err = cartridgeloader.ListROMs(filepath.Join(dir, "missing"))
	test.ExpectFailure(t, err)
}

func TestListROMsSymlink(t *testing.T) {
	dir := t.TempDir()
	other := t.TempDir()
	writeFile(t, filepath.Join(other, "linked.nes"), inesData())

	if err := os.Symlink(other, filepath.Join(dir, "link")); err != nil {
		t.Skipf("symbolic links not supported: %v", err)
	}

	// a loop back to the top of the tree
	if err := os.Symlink(dir, filepath.Join(other, "loop")); err != nil {
		t.Skipf("symbolic links not supported: %v", err)
	}

	roms, err := cartridgeloader.ListROMs(dir)
	test.DemandSuccess(t, err)
	test.DemandEquality(t, len(roms), 1)
	test.ExpectEquality(t, roms[0], filepath.Join(dir, "link", "linked.nes"))
}

func writeArchive(t *testing.T, path string, files map[string][]uint8) {
	t.Helper()
	f, err := os.Create(path)
	test.DemandSuccess(t, err)
	defer f.Close()

	zw := zip.NewWriter(f)
	for name, data := range files {
		w, err := zw.Create(name)
		test.DemandSuccess(t, err)
		_, err = w.Write(data)
		test.DemandSuccess(t, err)
	}
	test.DemandSuccess(t, zw.Close())
}

func TestLoadFromArchive(t *testing.T) {
	dir := t.TempDir()
	zfn := filepath.Join(dir, "roms.zip")
	writeArchive(t, zfn, map[string][]uint8{"games/a.nes": inesData()})

	cl := cartridgeloader.NewLoader(filepath.Join(zfn, "games", "a.nes"))
	err := cl.Load()
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, cl.Cartridge != nil)
	test.ExpectEquality(t, cl.ShortName(), "a")

	cl = cartridgeloader.NewLoader(filepath.Join(zfn, "missing.nes"))
	err = cl.Load()
	test.ExpectSuccess(t, curated.Has(err, cartridgeloader.LoadError))
	test.ExpectSuccess(t, errors.Is(err, fs.ErrNotExist))
}

func TestListROMsArchive(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "b.nes"), inesData())
	writeArchive(t, filepath.Join(dir, "roms.zip"), map[string][]uint8{
		"games/a.nes": inesData(),
		"readme.txt":  []uint8("hello"),
	})

	roms, err := cartridgeloader.ListROMs(dir)
	test.DemandSuccess(t, err)
	test.DemandEquality(t, len(roms), 2)
	test.ExpectEquality(t, roms[0], filepath.Join(dir, "b.nes"))
	test.ExpectEquality(t, roms[1], filepath.Join(dir, "roms.zip", "games", "a.nes"))
}
