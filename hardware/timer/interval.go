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

package timer

// Interval is one of the divisors offered by the CTC timer's prescaler. The
// hardware does not accept arbitrary divisors; the clock-select field of the
// control register encodes one of five fixed values.
type Interval uint32

// List of valid Interval values.
const (
	Div1    Interval = 1
	Div8    Interval = 8
	Div64   Interval = 64
	Div256  Interval = 256
	Div1024 Interval = 1024
)

// IntervalList is a list of all possible string representations of the Interval type.
var IntervalList = []string{"Div1", "Div8", "Div64", "Div256", "Div1024"}

func (in Interval) String() string {
	switch in {
	case Div1:
		return "Div1"
	case Div8:
		return "Div8"
	case Div64:
		return "Div64"
	case Div256:
		return "Div256"
	case Div1024:
		return "Div1024"
	}
	panic("unknown prescaler interval")
}

// ClockSelect returns the value for the clock-select field of the CTC
// timer's control register. The returned bool is false if the divisor is not
// one the prescaler offers.
func (in Interval) ClockSelect() (uint8, bool) {
	switch in {
	case Div1:
		return 0x01, true
	case Div8:
		return 0x02, true
	case Div64:
		return 0x03, true
	case Div256:
		return 0x04, true
	case Div1024:
		return 0x05, true
	}
	return 0x00, false
}
