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

// Package synth implements the frequency-synthesis core of the signal
// generator. The Core type holds the generator state and receives the scalar
// events emitted by the front end (new target frequency, new range, start,
// stop, waveform change). Each event is routed through the translation step,
// which chooses a timer reload value and prescaler for the platform's
// waveform-generation peripheral, and then through the reporting step, which
// recomputes the frequency and period the hardware will actually produce
// after integer rounding.
//
// The front end is never dealt with directly. The Core only consumes scalar
// values and publishes the realized frequency, the realized period and a
// single clipped flag. Similarly, the hardware is abstracted away behind the
// Driver interface, implementations of which can be found in the
// hardware/timer package.
//
// The Core is not safe for concurrent use. On the device all state mutation
// happens on the touch event dispatcher and the display redraw callback runs
// on the same thread.
package synth
