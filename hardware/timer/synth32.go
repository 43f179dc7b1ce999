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

package timer

import (
	"fmt"

	"github.com/jetsetilly/freqgen/logger"
)

// Synth32 models the 32bit synth timer of the 32bit platform. The full
// 32bit auto-reload register means no prescaler is needed; the prescaler
// argument to ProgramSquare is expected to always be 1.
type Synth32 struct {
	// auto-reload register. the value is the reload count itself
	Reload uint32

	running bool

	StartCount int
	StopCount  int
}

// NewSynth32 is the preferred method of initialisation of the Synth32 type.
func NewSynth32() *Synth32 {
	return &Synth32{}
}

func (syn *Synth32) String() string {
	return fmt.Sprintf("ARR=%#08x running=%v", syn.Reload, syn.running)
}

// ProgramSquare implements the synth.Driver interface. The reload register
// accepts writes at any time, including mid-cycle. The new value latches on
// the next cycle boundary so a momentary glitch in the output is possible.
func (syn *Synth32) ProgramSquare(reload uint32, prescaler uint32) {
	if prescaler != 1 {
		logger.Logf("timer: synth32", "unexpected prescaler %d on 32bit timer", prescaler)
	}
	syn.Reload = reload
}

// Start implements the synth.Driver interface.
func (syn *Synth32) Start() {
	if !syn.running {
		syn.running = true
		syn.StartCount++
	}
}

// Stop implements the synth.Driver interface.
func (syn *Synth32) Stop() {
	if syn.running {
		syn.running = false
		syn.StopCount++
	}
}

// Running returns true if the timer output is being generated.
func (syn *Synth32) Running() bool {
	return syn.running
}
