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

// Package wavwriter renders the output of the synthesis core to disk as a
// WAV file. Note that sample data is buffered in memory in its entirety and
// written to disk by the Save() function. It is therefore probably only
// suitable for testing and for auditioning a frequency setting.
package wavwriter

import (
	"os"
	"time"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/jetsetilly/freqgen/curated"
	"github.com/jetsetilly/freqgen/logger"
)

// sample amplitude of the rendered square wave. well below the int16 limit
// so there is headroom if files are ever mixed
const amplitude = 16000

const bitDepth = 16

// WavWriter accumulates samples of the realized output waveform and writes
// them out as a single WAV file.
type WavWriter struct {
	filename   string
	sampleRate int
	buffer     []int
}

// New is the preferred method of initialisation for the WavWriter type.
func New(filename string, sampleRate int) *WavWriter {
	return &WavWriter{
		filename:   filename,
		sampleRate: sampleRate,
		buffer:     make([]int, 0),
	}
}

// Synthesize appends dur's worth of square wave at the given frequency. The
// frequency should be the realized frequency reported by the synthesis core,
// in plain Hz, so that the recording reflects what the hardware would
// actually output.
//
// Frequencies at or above the Nyquist limit of the sample rate cannot be
// rendered and result in an error.
func (aw *WavWriter) Synthesize(frequencyHz float64, dur time.Duration) error {
	if frequencyHz <= 0 {
		return curated.Errorf("wavwriter: frequency must be positive (%f)", frequencyHz)
	}
	if frequencyHz >= float64(aw.sampleRate)/2 {
		return curated.Errorf("wavwriter: frequency %fHz is beyond the Nyquist limit of %dHz sampling",
			frequencyHz, aw.sampleRate)
	}

	n := int(dur.Seconds() * float64(aw.sampleRate))

	// the output toggles every half period
	for i := 0; i < n; i++ {
		halfPeriods := 2 * frequencyHz * float64(i) / float64(aw.sampleRate)
		if int(halfPeriods)%2 == 0 {
			aw.buffer = append(aw.buffer, amplitude)
		} else {
			aw.buffer = append(aw.buffer, -amplitude)
		}
	}

	return nil
}

// NumSamples returns the number of samples accumulated so far.
func (aw *WavWriter) NumSamples() int {
	return len(aw.buffer)
}

// Save writes the accumulated samples to the file given at initialisation.
func (aw *WavWriter) Save() (rerr error) {
	if len(aw.buffer) == 0 {
		return curated.Errorf("wavwriter: no samples to write")
	}

	f, err := os.Create(aw.filename)
	if err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}
	defer func() {
		err := f.Close()
		if err != nil && rerr == nil {
			rerr = curated.Errorf("wavwriter: %v", err)
		}
	}()

	enc := wav.NewEncoder(f, aw.sampleRate, bitDepth, 1, 1)

	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: 1,
			SampleRate:  aw.sampleRate,
		},
		Data:           aw.buffer,
		SourceBitDepth: bitDepth,
	}

	if err := enc.Write(buf); err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}
	if err := enc.Close(); err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}

	logger.Logf("wavwriter", "%d samples written to %s", len(aw.buffer), aw.filename)

	return nil
}
