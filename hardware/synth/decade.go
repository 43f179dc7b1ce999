// This file is part of Freqgen.
//
// Freqgen is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Freqgen is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Freqgen.  If not, see <https://www.gnu.org/licenses/>.

package synth

// Decade selects the unit in which the target frequency is interpreted.
type Decade int

// List of valid Decade values.
const (
	MilliHz Decade = iota
	Hz
	KiloHz
	MegaHz
)

// DecadeList is a list of all possible string representations of the Decade type.
var DecadeList = []string{"mHz", "Hz", "kHz", "MHz"}

func (dec Decade) String() string {
	switch dec {
	case MilliHz:
		return "mHz"
	case Hz:
		return "Hz"
	case KiloHz:
		return "kHz"
	case MegaHz:
		return "MHz"
	}
	panic("unknown frequency decade")
}

// Letter returns the single character used in front of the Hz unit on the
// display. the Hz decade is a space so that formatted frequencies line up.
func (dec Decade) Letter() rune {
	return rune("m kM"[dec])
}

// FactorTimes1000 returns the decade multiplier times 1000. the extra factor
// of 1000 is what allows the mHz decade to be expressed with integers.
//
//	1 -> 1mHz, 1000 -> 1Hz, 1000000 -> 1kHz, 1000000000 -> 1MHz
func (dec Decade) FactorTimes1000() uint64 {
	f := uint64(1)
	for i := dec; i > 0; i-- {
		f *= 1000
	}
	return f
}

// RangeButtons is the list of range button labels offered by the front end.
// Note that this list is not the same as DecadeList. Index 2 is the synthetic
// "10Hz" range: a Hz decade with the slider sweep shifted up one decade.
var RangeButtons = []string{"mHz", "Hz", "10Hz", "kHz", "MHz"}

// RangeButton10Hz is the index into RangeButtons of the synthetic 10Hz range.
const RangeButton10Hz = 2
