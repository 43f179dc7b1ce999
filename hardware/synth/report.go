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

import (
	"fmt"

	"github.com/jetsetilly/freqgen/hardware/synth/profile"
)

// Reading is the frequency and period the hardware realizes for a given
// timer setting. Because both values are recomputed from the integer reload
// value, a Reading reflects the quantisation the user's target frequency has
// been subjected to.
type Reading struct {
	// realized frequency in units of the decade the reading was taken in
	Frequency float32

	// realized period in microseconds
	PeriodMicros float32
}

// Report derives the realized frequency and period from a timer setting. The
// decade should be the decade the target frequency was expressed in so that
// the realized frequency comes out in the same unit.
func Report(set Setting, dec Decade, prof profile.Profile) Reading {
	eff := float64(set.EffectiveReload())
	return Reading{
		Frequency:    float32((float64(prof.TimerClockHz) * 1000 / float64(dec.FactorTimes1000())) / eff),
		PeriodMicros: float32(eff / float64(prof.MicrosPerTickDivisor)),
	}
}

// FrequencyString formats the realized frequency for the display. nine
// characters wide with three decimal places, followed by the decade letter
// and the Hz unit.
func (rea Reading) FrequencyString(dec Decade) string {
	return fmt.Sprintf("%9.3f%cHz", rea.Frequency, dec.Letter())
}

// periods longer than this many microseconds are displayed in milliseconds
const periodUnitSwitch = 10000.0

// PeriodString formats the realized period for the display. ten characters
// wide with three decimal places, followed by the unit. periods longer than
// 10000us switch from the micro unit to milli.
func (rea Reading) PeriodString() string {
	p := rea.PeriodMicros
	unit := 'µ'
	if p > periodUnitSwitch {
		p /= 1000
		unit = 'm'
	}
	return fmt.Sprintf("%10.3f%cs", p, unit)
}
