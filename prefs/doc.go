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

// Package prefs facilitates the setting and saving of preference values. The
// generator state that should survive a restart (target frequency, range,
// waveform) is registered with a Disk instance and restored on the next run.
//
// Preference values are stored as a Bool, String, Int or Float type. These
// types can be safely accessed from different goroutines.
package prefs
