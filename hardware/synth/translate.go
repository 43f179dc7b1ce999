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
	"math"

	"github.com/jetsetilly/freqgen/hardware/synth/profile"
)

// Setting is the result of translating a target frequency into a timer
// configuration for a specific platform profile.
type Setting struct {
	// the value for the timer's reload register. always at least 2: a reload
	// of 0 or 1 produces an undefined or DC output on the peripheral
	Reload uint32

	// the prescaler divisor placed between the peripheral clock and the
	// counter. always 1 on 32bit platforms. on 16bit platforms the value is
	// drawn from the profile's fixed divisor set
	Prescaler uint32

	// whether the requested frequency could not be represented and the
	// nearest hardware-representable value has been substituted
	Clipped bool
}

// EffectiveReload is the reload value the peripheral realizes once the
// prescaler has been accounted for. realized frequency and period are always
// derived from this product, never from the raw reload value.
func (set Setting) EffectiveReload() uint64 {
	return uint64(set.Reload) * uint64(set.Prescaler)
}

// Translate converts a target frequency, expressed in units of the given
// decade, into a reload/prescaler pair for the profile's timer peripheral.
//
// The nominal period is first computed in timer ticks and truncated to an
// integer. A period too short for the peripheral is clipped to 2 ticks and a
// period too long for the reload register (and, on 16bit platforms, the
// largest prescaler) is clipped to the register maximum. Both cases are
// flagged in the returned Setting.
//
// Only the square waveform is translated by this function. Callers must
// check the waveform themselves.
func Translate(target float32, dec Decade, prof profile.Profile) Setting {
	// period in timer ticks. the x1000 in the numerator and the decade
	// factor in the denominator together encode the unit, so a target of 1
	// in the mHz decade produces the same tick count as 0.001 in Hz
	ticksF := (float64(prof.TimerClockHz) * 1000 / float64(dec.FactorTimes1000())) / float64(target)

	set := Setting{Prescaler: 1}

	// upper clip. the tick count is beyond what the reload register can
	// express even with the largest prescaler
	limit := float64(prof.MaxReload()) * float64(prof.MaxPrescaler())
	if ticksF > limit {
		set.Reload = prof.MaxReload()
		set.Prescaler = prof.MaxPrescaler()
		set.Clipped = true
		return set
	}

	ticks := uint64(ticksF)

	// lower clip. frequency is too high for the peripheral
	if ticks < 2 {
		ticks = 2
		set.Clipped = true
	}

	if prof.ReloadWidth == 32 {
		set.Reload = uint32(ticks)
		return set
	}

	set.Reload, set.Prescaler = reduce16(ticks, prof)
	return set
}

// reduce16 folds a tick count that may be wider than 16 bits into a
// reload/divisor pair drawn from the peripheral's fixed prescaler set.
//
// The smallest divisor whose quotient fits the reload register is selected
// and the reload is the rounded quotient. Because the quantisation step of
// the realized period equals the divisor, this choice minimises the
// realized-frequency error over the whole divisor set.
func reduce16(ticks uint64, prof profile.Profile) (uint32, uint32) {
	max := uint64(prof.MaxReload())

	for _, div := range prof.Prescalers {
		d := uint64(div)
		q := (ticks + d/2) / d
		if q <= max {
			if q < 2 {
				q = 2
			}
			return uint32(q), div
		}
	}

	// unreachable: the upper clip in Translate guarantees that the largest
	// divisor always fits
	return prof.MaxReload(), prof.MaxPrescaler()
}

// validTarget returns false for target frequencies that must be ignored by
// the event sinks: zero, negative, NaN and infinities.
func validTarget(target float32) bool {
	f := float64(target)
	return f > 0 && !math.IsInf(f, 0) && !math.IsNaN(f)
}
