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
	"github.com/nescore/nescore/curated"
	"github.com/nescore/nescore/logger"
)

// Sentinel patterns for errors raised by the cartridge package.
const (
	NotINES   = "cartridge: not an iNES file"
	TooShort  = "cartridge: data too short for header (%d bytes)"
	NoPRG     = "cartridge: no prg data"
	Truncated = "cartridge: %s size (%d bytes) exceeds data (%d bytes)"
)

// Cartridge is the parsed content of an iNES file.
type Cartridge struct {
	Header Header

	// nil if the header says there is no trainer
	Trainer []uint8

	PRG []uint8

	// nil if the board uses CHR RAM
	CHR []uint8
}

// Parse the data from an iNES file.
func Parse(data []uint8) (*Cartridge, error) {
	h, err := NewHeader(data)
	if err != nil {
		return nil, err
	}

	if !h.Valid() {
		return nil, curated.Errorf(NotINES)
	}

	if h.PRGSize() == 0 {
		return nil, curated.Errorf(NoPRG)
	}

	cart := &Cartridge{Header: h}

	data = data[HeaderSize:]

	if h.HasTrainer() {
		if len(data) < TrainerSize {
			return nil, curated.Errorf(Truncated, "trainer", TrainerSize, len(data))
		}
		cart.Trainer = data[:TrainerSize]
		data = data[TrainerSize:]
	}

	prg := int(h.PRGSize()) * PRGUnit
	if len(data) < prg {
		return nil, curated.Errorf(Truncated, "prg", prg, len(data))
	}
	cart.PRG = data[:prg]
	data = data[prg:]

	chr := int(h.CHRSize()) * CHRUnit
	if chr > 0 {
		if len(data) < chr {
			logger.Logf(logger.Allow, "cartridge", "chr data is short (%d bytes instead of %d)", len(data), chr)
			chr = len(data)
		}
		cart.CHR = data[:chr]
	}

	if h.Mapper() != 0 {
		logger.Logf(logger.Allow, "cartridge", "mapper %d is not supported. prg data will be loaded as NROM", h.Mapper())
	}

	return cart, nil
}
