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

// Package rewind keeps a history of console states so that the emulation can
// be stepped backwards.
//
// States are recorded with the Record() function, usually at the start of
// every instruction. The history is a circular array and the oldest state is
// dropped when the array is full. The Back() function plumbs the most recent
// state into the console and removes it from the history.
package rewind

import (
	"github.com/nescore/nescore/curated"
	"github.com/nescore/nescore/hardware"
)

// NoHistory is returned by Back() when there are no states to return to.
const NoHistory = "rewind: no history"

// DefaultEntries is a reasonable number of entries for interactive use.
const DefaultEntries = 100

// Rewind is the history of console states.
type Rewind struct {
	con *hardware.Console

	// circular array of snapshotted states
	entries []*hardware.State
	start   int
	count   int
}

// NewRewind is the preferred method of initialisation for the Rewind type.
func NewRewind(con *hardware.Console, maxEntries int) *Rewind {
	return &Rewind{
		con:     con,
		entries: make([]*hardware.State, max(maxEntries, 1)),
	}
}

// Reset removes all entries.
func (r *Rewind) Reset() {
	clear(r.entries)
	r.start = 0
	r.count = 0
}

// Len returns the number of states in the history.
func (r *Rewind) Len() int {
	return r.count
}

// Record a snapshot of the current console state.
func (r *Rewind) Record() {
	e := (r.start + r.count) % len(r.entries)
	r.entries[e] = r.con.Snapshot()

	if r.count < len(r.entries) {
		r.count++
	} else {
		r.start = (r.start + 1) % len(r.entries)
	}
}

// Back restores the most recently recorded state.
func (r *Rewind) Back() error {
	if r.count == 0 {
		return curated.Errorf(NoHistory)
	}

	r.count--
	e := (r.start + r.count) % len(r.entries)
	r.con.Plumb(r.entries[e])
	r.entries[e] = nil

	return nil
}
