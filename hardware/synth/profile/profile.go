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

// Package profile contains the definitions of the two waveform-generation
// peripherals supported by the synthesis core.
package profile

// ProfileList is the list of profiles that the synthesis core may adopt.
var ProfileList = []string{"AVR", "STM32"}

// Profile is used to define the two timer peripherals. The values are fixed
// properties of the hardware and a Profile should be treated as immutable
// once it has reached the synthesis core.
type Profile struct {
	ID string

	// the counter tick rate of the timer peripheral
	TimerClockHz uint64

	// native width of the reload register. 16bit platforms require a
	// prescaler between the peripheral clock and the counter
	ReloadWidth int

	// divisor used to convert reload counts to microseconds. the value
	// accounts for the peripheral's output toggle behaviour and so is not
	// necessarily TimerClockHz/1e6
	MicrosPerTickDivisor uint32

	// the fixed set of prescaler divisors offered by the peripheral, in
	// ascending order. nil for platforms with no prescaler
	Prescalers []uint32
}

// MaxReload returns the largest value the reload register can hold.
func (pr Profile) MaxReload() uint32 {
	if pr.ReloadWidth == 16 {
		return 0xffff
	}
	return 0xffffffff
}

// MaxPrescaler returns the largest prescaler divisor offered by the
// peripheral. returns 1 for platforms with no prescaler.
func (pr Profile) MaxPrescaler() uint32 {
	if len(pr.Prescalers) == 0 {
		return 1
	}
	return pr.Prescalers[len(pr.Prescalers)-1]
}

// AVR is the profile for the 8bit platform. a 16bit reload register in
// CTC mode with the timer1 prescaler set.
var AVR Profile

// STM32 is the profile for the 32bit platform. a full 32bit reload register
// and no prescaler.
var STM32 Profile

func init() {
	AVR = Profile{
		ID:                   "AVR",
		TimerClockHz:         16000000,
		ReloadWidth:          16,
		MicrosPerTickDivisor: 8,
		Prescalers:           []uint32{1, 8, 64, 256, 1024},
	}

	STM32 = Profile{
		ID:                   "STM32",
		TimerClockHz:         36000000,
		ReloadWidth:          32,
		MicrosPerTickDivisor: 36,
	}
}
