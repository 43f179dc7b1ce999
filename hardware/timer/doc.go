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

// Package timer provides register-level models of the two waveform-generation
// peripherals the synthesis core can drive: the 16bit CTC timer found on the
// 8bit platform and the 32bit synth timer found on the 32bit platform.
//
// Both types implement the synth.Driver interface. They record the register
// values a real driver would write to the hardware, which makes them equally
// useful as the programming target of the interactive front end and as test
// doubles for the synthesis core.
package timer
