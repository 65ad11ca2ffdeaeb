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

package cartridge

import (
	"fmt"
	"strings"

	"github.com/nescore/nescore/curated"
)

// HeaderSize is the size of an iNES header in bytes.
const HeaderSize = 16

// Constant is the value of the first four bytes of every iNES file. "NES"
// followed by the MS-DOS end-of-file character.
const Constant = "NES\x1a"

// Sizes of the units used in the header.
const (
	PRGUnit     = 0x4000
	CHRUnit     = 0x2000
	TrainerSize = 512
)

// Header is the sixteen byte header at the start of an iNES file. Only the
// first eleven bytes are meaningful. The remaining bytes are padding.
type Header struct {
	constant [4]uint8

	// size of PRG ROM in 16KB units
	prgSize uint8

	// size of CHR ROM in 8KB units. zero means the board uses CHR RAM
	chrSize uint8

	// flags 6 to 10
	flags [5]uint8
}

// NewHeader creates a Header from the first HeaderSize bytes of data. It does
// not check that the data is from an iNES file. Use Valid() for that.
func NewHeader(data []uint8) (Header, error) {
	var h Header
	if len(data) < HeaderSize {
		return h, curated.Errorf(TooShort, len(data))
	}
	copy(h.constant[:], data[0:4])
	h.prgSize = data[4]
	h.chrSize = data[5]
	copy(h.flags[:], data[6:11])
	return h, nil
}

// Valid returns true if the header starts with the iNES constant.
func (h Header) Valid() bool {
	return h.ConstantString() == Constant
}

// Constant returns the first four bytes of the header.
func (h Header) Constant() [4]uint8 {
	return h.constant
}

// ConstantString returns the first four bytes of the header as a string.
func (h Header) ConstantString() string {
	return string(h.constant[:])
}

// PRGSize returns the size of the PRG ROM in 16KB units.
func (h Header) PRGSize() uint8 {
	return h.prgSize
}

// CHRSize returns the size of the CHR ROM in 8KB units.
func (h Header) CHRSize() uint8 {
	return h.chrSize
}

// Flags returns header bytes 6 to 10.
func (h Header) Flags() [5]uint8 {
	return h.flags
}

// Flag returns one of the header flag bytes. The index is the position of the
// flag in the header, 6 to 10 inclusive. Any other index returns zero.
func (h Header) Flag(i int) uint8 {
	if i < 6 || i > 10 {
		return 0
	}
	return h.flags[i-6]
}

// Mapper returns the iNES mapper number. The low nibble is in flags 6 and
// the high nibble is in flags 7.
func (h Header) Mapper() uint8 {
	return (h.flags[1] & 0xf0) | (h.flags[0] >> 4)
}

// HasTrainer returns true if a 512 byte trainer follows the header.
func (h Header) HasTrainer() bool {
	return h.flags[0]&0x04 == 0x04
}

// HasBattery returns true if the cartridge has battery backed WRAM.
func (h Header) HasBattery() bool {
	return h.flags[0]&0x02 == 0x02
}

// VerticalMirroring returns true if the nametables are mirrored vertically.
func (h Header) VerticalMirroring() bool {
	return h.flags[0]&0x01 == 0x01
}

// IsNES2 returns true if the header is in the NES 2.0 format.
func (h Header) IsNES2() bool {
	return h.flags[1]&0x0c == 0x08
}

func (h Header) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("constant: %q\n", h.ConstantString()))
	s.WriteString(fmt.Sprintf("prg size: %d x 16KB\n", h.prgSize))
	s.WriteString(fmt.Sprintf("chr size: %d x 8KB\n", h.chrSize))
	s.WriteString(fmt.Sprintf("flags: % 02x\n", h.flags))
	s.WriteString(fmt.Sprintf("mapper: %d\n", h.Mapper()))
	s.WriteString(fmt.Sprintf("trainer: %v\n", h.HasTrainer()))
	if h.IsNES2() {
		s.WriteString("format: NES 2.0")
	} else {
		s.WriteString("format: iNES")
	}
	return s.String()
}
