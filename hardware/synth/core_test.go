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
	"github.com/jetsetilly/freqgen/hardware/timer"
	"github.com/jetsetilly/freqgen/test"
)

func TestBootState(t *testing.T) {
	drv := timer.NewSynth32()
	cor := synth.NewCore(profile.STM32, drv)

	// the generator wakes up at 200Hz, square wave, 10Hz range, running
	test.Tolerance(t, float64(cor.Target()), 200, 1e-9)
	test.Equate(t, cor.Decade().String(), "Hz")
	test.Equate(t, cor.Waveform().String(), "Square")
	test.ExpectSuccess(t, cor.TenHzRange())
	test.ExpectSuccess(t, cor.Enabled())
	test.ExpectSuccess(t, drv.Running())

	// 200Hz at 36MHz
	test.Equate(t, drv.Reload, 180000)
	test.Equate(t, cor.Setting().Reload, 180000)
	test.ExpectFailure(t, cor.Clipped())
}

func TestSetTarget(t *testing.T) {
	drv := timer.NewSynth32()
	cor := synth.NewCore(profile.STM32, drv)

	test.ExpectFailure(t, cor.SetTarget(2000))
	test.Equate(t, drv.Reload, 18000)
	test.Equate(t, cor.FrequencyString(), " 2000.000 Hz")
	test.Equate(t, cor.PeriodString(), "   500.000µs")
}

func TestInvalidTargetIgnored(t *testing.T) {
	drv := timer.NewSynth32()
	cor := synth.NewCore(profile.STM32, drv)

	cor.SetTarget(2000)

	cor.SetTarget(0)
	cor.SetTarget(-5)
	cor.SetTarget(float32(math.NaN()))
	cor.SetTarget(float32(math.Inf(1)))

	// state is untouched
	test.Tolerance(t, float64(cor.Target()), 2000, 1e-9)
	test.Equate(t, drv.Reload, 18000)
}

func TestAutoscale(t *testing.T) {
	drv := timer.NewSynth32()
	cor := synth.NewCore(profile.STM32, drv)

	// keypad entry is always in Hz. the decade is chosen so the stored
	// number lands in [1, 1000)
	cor.SetTargetAutoscale(50000)
	test.Equate(t, cor.Decade().String(), "kHz")
	test.Tolerance(t, float64(cor.Target()), 50, 1e-9)

	cor.SetTargetAutoscale(0.5)
	test.Equate(t, cor.Decade().String(), "mHz")
	test.Tolerance(t, float64(cor.Target()), 500, 1e-9)

	cor.SetTargetAutoscale(1000)
	test.Equate(t, cor.Decade().String(), "kHz")
	test.Tolerance(t, float64(cor.Target()), 1, 1e-9)
}

func TestAutoscaleIdempotence(t *testing.T) {
	drv := timer.NewSynth32()
	cor := synth.NewCore(profile.STM32, drv)

	cor.SetTargetAutoscale(123456)
	target := cor.Target()
	dec := cor.Decade()
	reload := cor.Setting().Reload

	cor.SetTargetAutoscale(123456)
	test.Equate(t, cor.Target() == target, true)
	test.Equate(t, cor.Decade() == dec, true)
	test.Equate(t, cor.Setting().Reload, reload)
}

func TestDecadeReinterpretation(t *testing.T) {
	drv := timer.NewSynth32()
	cor := synth.NewCore(profile.STM32, drv)

	// changing range does not convert the numeric target. 200 moves from
	// 200Hz to 200kHz
	cor.SetRange(3)
	test.Equate(t, cor.Decade().String(), "kHz")
	test.ExpectFailure(t, cor.TenHzRange())
	test.Tolerance(t, float64(cor.Target()), 200, 1e-9)
	test.Equate(t, drv.Reload, 180)
}

func TestTenHzRange(t *testing.T) {
	drv := timer.NewSynth32()
	cor := synth.NewCore(profile.STM32, drv)

	// the 10Hz button is a synthetic Hz decade
	cor.SetRange(2)
	test.Equate(t, cor.Decade().String(), "Hz")
	test.ExpectSuccess(t, cor.TenHzRange())

	// presets are multiplied by ten
	cor.SetFixedPreset(200)
	test.Tolerance(t, float64(cor.Target()), 2000, 1e-9)
	test.Equate(t, drv.Reload, 18000)

	// any other range selection clears the hint
	cor.SetRange(1)
	test.ExpectFailure(t, cor.TenHzRange())
	cor.SetFixedPreset(200)
	test.Tolerance(t, float64(cor.Target()), 200, 1e-9)
}

func TestStopStartPreservesReload(t *testing.T) {
	drv := timer.NewSynth32()
	cor := synth.NewCore(profile.STM32, drv)

	cor.SetTarget(2000)
	reload := cor.Setting().Reload
	prescaler := cor.Setting().Prescaler

	cor.SetEnabled(false)
	test.ExpectFailure(t, cor.Enabled())
	test.ExpectFailure(t, drv.Running())
	test.Equate(t, drv.StopCount, 1)

	cor.SetEnabled(true)
	test.ExpectSuccess(t, drv.Running())
	test.Equate(t, drv.StartCount, 2)

	// the reload/prescaler pair survives the stop unchanged
	test.Equate(t, cor.Setting().Reload, reload)
	test.Equate(t, cor.Setting().Prescaler, prescaler)
	test.Equate(t, drv.Reload, reload)
}

func TestUnsupportedWaveform(t *testing.T) {
	drv := timer.NewSynth32()
	cor := synth.NewCore(profile.STM32, drv)

	cor.SetTarget(2000)
	reload := drv.Reload

	// non-square waveforms flag a clip and leave the timer alone
	test.ExpectSuccess(t, cor.SetWaveform(synth.Sine))
	test.ExpectSuccess(t, cor.Clipped())
	test.Equate(t, drv.Reload, reload)

	// the waveform button cycles back around to square eventually, at
	// which point translation resumes
	test.ExpectSuccess(t, cor.CycleWaveform())
	test.Equate(t, cor.Waveform().String(), "Triangle")
	test.ExpectSuccess(t, cor.CycleWaveform())
	test.ExpectFailure(t, cor.CycleWaveform())
	test.Equate(t, cor.Waveform().String(), "Square")
	test.ExpectFailure(t, cor.Clipped())
}

func TestSliderEvents(t *testing.T) {
	drv := timer.NewSynth32()
	cor := synth.NewCore(profile.STM32, drv)

	cor.SetRange(1)
	cor.SetSlider(150)
	test.Tolerance(t, float64(cor.Target()), 31.623, 0.001)

	// the slider tracks the realized frequency
	pos := cor.SliderPos()
	if pos < 149 || pos > 151 {
		t.Errorf("slider position %d too far from 150", pos)
	}
}

func TestCTCDriverIntegration(t *testing.T) {
	drv := timer.NewCTC()
	cor := synth.NewCore(profile.AVR, drv)

	// 1Hz folds into the 16bit register with the 256 divisor
	test.ExpectFailure(t, cor.SetRange(1))
	test.ExpectFailure(t, cor.SetFixedPreset(1))
	test.Equate(t, cor.Setting().Reload, 62500)
	test.Equate(t, cor.Setting().Prescaler, 256)
	test.Equate(t, drv.Compare, 62499)
	test.Equate(t, drv.Divisor.String(), "Div256")
}
