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

import "math"

// SliderMax is the largest value emitted (and accepted) by the frequency
// slider. The slider covers three decades logarithmically, one hundred
// positions per decade.
const SliderMax = 300

// SliderToFrequency decodes a slider position into a target frequency in the
// current decade unit. In the 10Hz range the sweep is shifted up one decade
// so that the slider covers 10Hz to 10kHz rather than 1Hz to 1kHz.
func SliderToFrequency(pos int, tenHzRange bool) float32 {
	if pos < 0 {
		pos = 0
	} else if pos > SliderMax {
		pos = SliderMax
	}

	t := float64(pos) / (SliderMax / 3)
	if tenHzRange {
		t += 1
	}
	return float32(math.Pow(10, t))
}

// FrequencyToSlider encodes a frequency into a slider position so that the
// slider can track the realized frequency after each retune. The result is
// clamped to the slider's range.
func FrequencyToSlider(frequency float32, tenHzRange bool) int {
	pos := int(math.Log10(float64(frequency)) * 100)
	if tenHzRange {
		pos -= 100
	}

	if pos < 0 {
		pos = 0
	} else if pos > SliderMax {
		pos = SliderMax
	}
	return pos
}
