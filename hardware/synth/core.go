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
	"github.com/jetsetilly/freqgen/logger"
)

// Driver implementations program the waveform-generation peripheral on
// behalf of the Core. Register writes on the peripheral cannot fail so none
// of the functions return an error.
//
// ProgramSquare may be called at any time, including while the timer is
// running. The peripheral accepts reload writes mid-cycle at the cost of a
// momentary output glitch.
type Driver interface {
	ProgramSquare(reload uint32, prescaler uint32)
	Start()
	Stop()
}

// FixedPresets is the list of frequencies carried by the fixed-frequency
// buttons on the front end. In the 10Hz range the values are multiplied by
// ten before use.
var FixedPresets = []int{1, 2, 5, 10, 20, 50, 100, 200, 500, 1000}

// the frequency the generator wakes up with
const bootTarget = 200

// Core is the state of the frequency-synthesis core. One Core exists per
// device and it lives for the process lifetime.
//
// All exported event functions are total. They never fail; instead they
// return the clipped flag from the translation step, which front ends
// typically surface as an audible feedback tone.
type Core struct {
	prof profile.Profile
	drv  Driver

	// the user's requested value, interpreted in units of decade. always
	// strictly positive and finite
	target   float32
	decade   Decade
	waveform Waveform

	// whether the timer output is running. translation is not gated on this
	// field, only the driver's start/stop
	enabled bool

	// true iff the synthetic 10Hz range button is selected. shifts the
	// slider sweep and the fixed presets up one decade
	tenHzRange bool

	// most recent translation and the reading derived from it
	setting Setting
	reading Reading
}

// NewCore is the preferred method of initialisation of the Core type.
//
// The generator boots in the 10Hz range at 200Hz, square wave, with the
// output running. The driver is programmed and started before NewCore
// returns.
func NewCore(prof profile.Profile, drv Driver) *Core {
	cor := &Core{
		prof:       prof,
		drv:        drv,
		waveform:   Square,
		decade:     Hz,
		tenHzRange: true,
		enabled:    true,
	}
	cor.target = bootTarget
	cor.retune()
	cor.drv.Start()
	return cor
}

func (cor *Core) String() string {
	run := "stopped"
	if cor.enabled {
		run = "running"
	}
	return fmt.Sprintf("%s (%s) [%s] reload=%d prescale=%d %s",
		cor.FrequencyString(), cor.PeriodString(), run, cor.setting.Reload,
		cor.setting.Prescaler, cor.waveform)
}

// retune runs the translate/report pipeline and reprograms the driver. It
// runs in both the running and the stopped state; only start/stop of the
// output is gated on the enabled flag.
func (cor *Core) retune() bool {
	if cor.waveform != Square {
		// non-square waveforms need the DDS peripheral, for which there is
		// no phase-increment translation yet. leave the timer as it is
		cor.setting.Clipped = true
		return true
	}

	cor.setting = Translate(cor.target, cor.decade, cor.prof)
	cor.reading = Report(cor.setting, cor.decade, cor.prof)
	cor.drv.ProgramSquare(cor.setting.Reload, cor.setting.Prescaler)

	return cor.setting.Clipped
}

// SetTarget sets the target frequency, interpreted in units of the current
// decade, and retunes the timer. Invalid values (zero, negative, NaN,
// infinite) are ignored and the state is left unchanged.
func (cor *Core) SetTarget(target float32) bool {
	if !validTarget(target) {
		logger.Logf("synth", "ignoring invalid target frequency (%v)", target)
		return cor.setting.Clipped
	}
	cor.target = target
	return cor.retune()
}

// SetTargetAutoscale sets the target frequency from a value expressed in Hz,
// choosing the decade that leaves the stored number in [1, 1000). Used by
// the numeric-keypad entry path, which always returns plain Hz.
func (cor *Core) SetTargetAutoscale(hz float32) bool {
	if !validTarget(hz) {
		logger.Logf("synth", "ignoring invalid target frequency (%v)", hz)
		return cor.setting.Clipped
	}

	dec := Hz
	for hz >= 1000 && dec < MegaHz {
		hz /= 1000
		dec++
	}
	if hz < 1 {
		hz *= 1000
		dec = MilliHz
	}

	cor.decade = dec
	cor.target = hz
	return cor.retune()
}

// SetRange selects one of the five range buttons. Index 2 is the synthetic
// 10Hz range, which is a Hz decade with the slider sweep shifted up one
// decade. Out of range indexes are ignored.
func (cor *Core) SetRange(button int) bool {
	if button < 0 || button >= len(RangeButtons) {
		logger.Logf("synth", "ignoring invalid range button (%d)", button)
		return cor.setting.Clipped
	}

	cor.tenHzRange = button == RangeButton10Hz
	if button >= RangeButton10Hz {
		button--
	}

	// note that the numeric target is reinterpreted in the new decade, not
	// converted. a target of 200 moves from 200Hz to 200kHz
	cor.decade = Decade(button)
	return cor.retune()
}

// SetDecade selects a decade directly, bypassing the range buttons. The 10Hz
// range hint is cleared.
func (cor *Core) SetDecade(dec Decade) bool {
	if dec < MilliHz || dec > MegaHz {
		logger.Logf("synth", "ignoring invalid decade (%d)", dec)
		return cor.setting.Clipped
	}
	cor.tenHzRange = false
	cor.decade = dec
	return cor.retune()
}

// SetFixedPreset sets the target frequency from one of the fixed-frequency
// buttons. In the 10Hz range the button value is multiplied by ten.
func (cor *Core) SetFixedPreset(value int) bool {
	if value <= 0 {
		logger.Logf("synth", "ignoring invalid preset (%d)", value)
		return cor.setting.Clipped
	}
	if cor.tenHzRange {
		value *= 10
	}
	cor.target = float32(value)
	return cor.retune()
}

// SetSlider sets the target frequency from a slider position in the range
// [0, SliderMax].
func (cor *Core) SetSlider(pos int) bool {
	cor.target = SliderToFrequency(pos, cor.tenHzRange)
	return cor.retune()
}

// SetEnabled starts or stops the timer output. Starting reprograms the
// driver with the most recent reload/prescaler pair; the translation step is
// not repeated so the reload value survives a stop/start cycle unchanged.
func (cor *Core) SetEnabled(enabled bool) bool {
	cor.enabled = enabled
	if enabled {
		cor.drv.ProgramSquare(cor.setting.Reload, cor.setting.Prescaler)
		cor.drv.Start()
	} else {
		cor.drv.Stop()
	}
	return cor.setting.Clipped
}

// SetWaveform selects the waveform shape and retunes. Shapes other than
// Square are accepted but flagged as clipped and the timer is not
// reprogrammed.
func (cor *Core) SetWaveform(wav Waveform) bool {
	if wav < Square || wav > Sawtooth {
		logger.Logf("synth", "ignoring invalid waveform (%d)", wav)
		return cor.setting.Clipped
	}
	cor.waveform = wav
	return cor.retune()
}

// CycleWaveform advances to the next waveform in the cycle order of the
// waveform button.
func (cor *Core) CycleWaveform() bool {
	return cor.SetWaveform(cor.waveform.Next())
}

// Target returns the requested frequency in units of the current decade.
func (cor *Core) Target() float32 {
	return cor.target
}

// Decade returns the decade the target frequency is interpreted in.
func (cor *Core) Decade() Decade {
	return cor.decade
}

// Waveform returns the currently selected waveform shape.
func (cor *Core) Waveform() Waveform {
	return cor.waveform
}

// Enabled returns true if the timer output is running.
func (cor *Core) Enabled() bool {
	return cor.enabled
}

// TenHzRange returns true if the synthetic 10Hz range is selected.
func (cor *Core) TenHzRange() bool {
	return cor.tenHzRange
}

// Setting returns the most recent translation result.
func (cor *Core) Setting() Setting {
	return cor.setting
}

// Reading returns the realized frequency and period for the most recent
// translation.
func (cor *Core) Reading() Reading {
	return cor.reading
}

// Clipped returns the clipped flag from the most recent translation.
func (cor *Core) Clipped() bool {
	return cor.setting.Clipped
}

// RealizedHz returns the realized frequency in plain Hz, independent of the
// current decade.
func (cor *Core) RealizedHz() float64 {
	return float64(cor.prof.TimerClockHz) / float64(cor.setting.EffectiveReload())
}

// FrequencyString returns the realized frequency formatted for the display.
func (cor *Core) FrequencyString() string {
	return cor.reading.FrequencyString(cor.decade)
}

// PeriodString returns the realized period formatted for the display.
func (cor *Core) PeriodString() string {
	return cor.reading.PeriodString()
}

// SliderPos returns the slider position corresponding to the realized
// frequency. The front end moves the slider here after every retune.
func (cor *Core) SliderPos() int {
	return FrequencyToSlider(cor.reading.Frequency, cor.tenHzRange)
}
