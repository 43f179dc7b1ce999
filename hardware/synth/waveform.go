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

// Waveform is the shape of the generated output.
//
// Only Square can be produced through the timer reload path. The other
// shapes require the DDS peripheral, which is outside the remit of this
// package. They are accepted by the Core but translation flags them as
// clipped and the driver is not reprogrammed.
type Waveform int

// List of valid Waveform values.
const (
	Square Waveform = iota
	Sine
	Triangle
	Sawtooth
)

// WaveformList is a list of all possible string representations of the
// Waveform type. The strings are the captions used by the waveform cycle
// button on the front end.
var WaveformList = []string{"Square", "Sine", "Triangle", "Sawtooth"}

func (wav Waveform) String() string {
	switch wav {
	case Square:
		return "Square"
	case Sine:
		return "Sine"
	case Triangle:
		return "Triangle"
	case Sawtooth:
		return "Sawtooth"
	}
	panic("unknown waveform")
}

// Next returns the waveform that follows in the cycle order of the waveform
// button. Sawtooth wraps around to Square.
func (wav Waveform) Next() Waveform {
	if wav == Sawtooth {
		return Square
	}
	return wav + 1
}
