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

package synth_test

import (
	"math"
	"testing"

	"github.com/jetsetilly/freqgen/hardware/synth"
	"github.com/jetsetilly/freqgen/hardware/synth/profile"
	"github.com/jetsetilly/freqgen/test"
)

func TestTranslate32bit(t *testing.T) {
	// 2kHz is representable exactly
	set := synth.Translate(2000, synth.Hz, profile.STM32)
	test.Equate(t, set.Reload, 18000)
	test.Equate(t, set.Prescaler, 1)
	test.ExpectFailure(t, set.Clipped)

	// the highest frequency with an exact period
	set = synth.Translate(18000000, synth.Hz, profile.STM32)
	test.Equate(t, set.Reload, 2)
	test.ExpectFailure(t, set.Clipped)

	// beyond the achievable upper bound. the period floors below 2 ticks
	// and is clipped back up
	set = synth.Translate(20000000, synth.Hz, profile.STM32)
	test.Equate(t, set.Reload, 2)
	test.ExpectSuccess(t, set.Clipped)
}

func TestTranslate32bitOverflow(t *testing.T) {
	// 1mHz needs 36e9 ticks, which does not fit a 32bit reload register.
	// expect a clamp to the register maximum
	set := synth.Translate(1, synth.MilliHz, profile.STM32)
	test.Equate(t, set.Reload, uint32(0xffffffff))
	test.Equate(t, set.Prescaler, 1)
	test.ExpectSuccess(t, set.Clipped)

	// the clamped reload realizes approximately 8.381mHz
	rea := synth.Report(set, synth.MilliHz, profile.STM32)
	test.Tolerance(t, float64(rea.Frequency), 8.381, 0.001)
}

func TestTranslate16bit(t *testing.T) {
	// 1Hz needs 16e6 ticks. the smallest divisor that folds that into 16
	// bits is 256 and the realized frequency is then exact
	set := synth.Translate(1, synth.Hz, profile.AVR)
	test.Equate(t, set.Reload, 62500)
	test.Equate(t, set.Prescaler, 256)
	test.ExpectFailure(t, set.Clipped)

	rea := synth.Report(set, synth.Hz, profile.AVR)
	test.Tolerance(t, float64(rea.Frequency), 1.0, 1e-9)

	// a tick count that fits without a prescaler passes through untouched
	set = synth.Translate(500, synth.Hz, profile.AVR)
	test.Equate(t, set.Reload, 32000)
	test.Equate(t, set.Prescaler, 1)
	test.ExpectFailure(t, set.Clipped)
}

func TestTranslate16bitOverPeriod(t *testing.T) {
	// 50mHz needs 3.2e8 ticks, beyond even the largest prescaler. expect
	// the clamp to the register and prescaler maximums
	set := synth.Translate(50, synth.MilliHz, profile.AVR)
	test.Equate(t, set.Reload, 65535)
	test.Equate(t, set.Prescaler, 1024)
	test.ExpectSuccess(t, set.Clipped)
}

// the divisor chosen by the translator must realize a frequency at least as
// close to the target as any other divisor in the set could.
func TestPrescalerChoiceMinimisesError(t *testing.T) {
	prof := profile.AVR

	for _, target := range []float32{0.3, 1, 2.5, 7, 33, 100, 999, 1500, 60000} {
		set := synth.Translate(target, synth.Hz, prof)
		if set.Clipped {
			continue
		}

		chosen := math.Abs(float64(prof.TimerClockHz)/float64(set.EffectiveReload()) - float64(target))

		// alternatives start from the same floored tick count the
		// translator uses
		ticks := math.Floor(float64(prof.TimerClockHz) / float64(target))

		for _, div := range prof.Prescalers {
			reload := math.Round(ticks / float64(div))
			if reload < 2 || reload > 65535 {
				continue
			}
			alternative := math.Abs(float64(prof.TimerClockHz)/(reload*float64(div)) - float64(target))

			if alternative < chosen && chosen-alternative > 1e-9 {
				t.Errorf("divisor %d realizes %fHz more closely than the chosen divisor %d",
					div, target, set.Prescaler)
			}
		}
	}
}

// reload and prescaler invariants hold across the usable range of both
// platforms.
func TestTranslateInvariants(t *testing.T) {
	for _, prof := range []profile.Profile{profile.AVR, profile.STM32} {
		for _, dec := range []synth.Decade{synth.MilliHz, synth.Hz, synth.KiloHz, synth.MegaHz} {
			for _, target := range []float32{1, 3.3, 10, 99.9, 200, 500, 1000} {
				set := synth.Translate(target, dec, prof)

				if set.Reload < 2 {
					t.Errorf("reload %d below 2 (%s %f%s)", set.Reload, prof.ID, target, dec)
				}
				if set.Prescaler < 1 {
					t.Errorf("prescaler %d below 1 (%s %f%s)", set.Prescaler, prof.ID, target, dec)
				}
				if prof.ReloadWidth == 16 && set.Reload > 0xffff {
					t.Errorf("reload %d too wide for 16bit register (%f%s)", set.Reload, target, dec)
				}
			}
		}
	}
}

// the relative error of the realized frequency is bounded by the
// quantisation of the integer reload value.
func TestQuantisationBound(t *testing.T) {
	for _, target := range []float32{1, 9.5, 42, 137, 1000, 9999, 250000} {
		set := synth.Translate(target, synth.Hz, profile.STM32)
		if set.Clipped {
			continue
		}

		rea := synth.Report(set, synth.Hz, profile.STM32)
		relative := math.Abs(float64(rea.Frequency)-float64(target)) / float64(target)
		bound := 1.0/float64(set.EffectiveReload()) + 1e-6

		if relative > bound {
			t.Errorf("relative error %e exceeds quantisation bound %e at %fHz", relative, bound, target)
		}
	}
}
