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

// Package logger is the central log for nescore. Log entries are tagged and
// the number of entries is capped. Identical adjacent entries are collapsed
// into a single entry with a repeat count.
//
// The package level functions Log() and Logf() add to the central log. Every
// call requires a Permission value. logger.Allow will always allow the entry to
// be made but other implementations of the Permission interface can be used to
// filter entries depending on context.
//
// Isolated loggers, useful for testing, can be created with NewLogger().
package logger
