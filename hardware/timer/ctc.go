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

// CTC models the 16bit timer peripheral of the 8bit platform, running in
// clear-timer-on-compare-match mode. The timer resets when the counter
// reaches the compare register, toggling the output pin.
type CTC struct {
	// compare register. the timer counts from 0 to this value so the
	// programmed value is the reload count minus one
	Compare uint16

	// clock-select field of the control register, encoding the prescaler
	// divisor. a value of zero means the timer is stopped
	ClockSelect uint8

	// the divisor the clock-select field encodes. kept alongside the raw
	// field because it is far more convenient to read in the debugger
	Divisor Interval

	running bool

	// number of start and stop transitions. used by tests to check the
	// stop/start gating of the event sinks
	StartCount int
	StopCount  int
}

// NewCTC is the preferred method of initialisation of the CTC type.
func NewCTC() *CTC {
	return &CTC{Divisor: Div1}
}

func (ctc *CTC) String() string {
	return fmt.Sprintf("OCR=%#04x clk=%#02x (%s) running=%v",
		ctc.Compare, ctc.ClockSelect, ctc.Divisor, ctc.running)
}

// ProgramSquare implements the synth.Driver interface. The reload count is
// converted to a compare value and the prescaler divisor to the control
// register's clock-select encoding.
func (ctc *CTC) ProgramSquare(reload uint32, prescaler uint32) {
	cs, ok := Interval(prescaler).ClockSelect()
	if !ok {
		logger.Logf("timer: ctc", "prescaler %d is not in the divisor set", prescaler)
		return
	}

	ctc.Compare = uint16(reload - 1)
	ctc.Divisor = Interval(prescaler)
	if ctc.running {
		ctc.ClockSelect = cs
	}
}

// Start implements the synth.Driver interface.
func (ctc *CTC) Start() {
	cs, _ := ctc.Divisor.ClockSelect()
	ctc.ClockSelect = cs
	if !ctc.running {
		ctc.running = true
		ctc.StartCount++
	}
}

// Stop implements the synth.Driver interface. On this peripheral stopping
// means clearing the clock-select field, which disconnects the counter from
// the clock.
func (ctc *CTC) Stop() {
	ctc.ClockSelect = 0x00
	if ctc.running {
		ctc.running = false
		ctc.StopCount++
	}
}

// Running returns true if the timer output is being generated.
func (ctc *CTC) Running() bool {
	return ctc.running
}
