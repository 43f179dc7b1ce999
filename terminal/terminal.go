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

// Package terminal implements a raw-mode terminal front end for the
// synthesis core. It stands in for the touch screen of the real device: the
// keyboard provides the fixed-frequency buttons, the range buttons, the
// slider and the start/stop toggle, and a status line shows what the display
// would show.
package terminal

import (
	"bufio"
	"os"
	"strconv"
	"strings"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/freqgen/curated"
	"github.com/jetsetilly/freqgen/hardware/synth"
	"github.com/jetsetilly/freqgen/logger"
	"github.com/jetsetilly/freqgen/resources"
	"github.com/jetsetilly/freqgen/terminal/easyterm"
)

// file the state graph is written to by the 'd' key.
const memvizFile = "freqgen_state.dot"

// how far one arrow keypress moves the frequency slider.
const sliderStep = 5

const helpText = `keys:
  1 2 3 4 5 6 7 8 9 0   fixed frequencies 1 2 5 10 20 50 100 200 500 1000
  m h t k M             range buttons mHz Hz 10Hz kHz MHz
  left/right arrows     frequency slider
  f                     enter frequency in Hz
  space                 start/stop
  w                     cycle waveform
  d                     dump state graph
  l                     show log
  q                     quit
`

// Terminal is the interactive front end.
type Terminal struct {
	term easyterm.Terminal
	cor  *synth.Core
}

// Run drives the synthesis core from keyboard input until the user quits.
// The terminal is left in canonical mode on return, whatever happens.
func Run(cor *synth.Core) error {
	trm := &Terminal{cor: cor}

	err := trm.term.Initialise(os.Stdin, os.Stdout)
	if err != nil {
		return curated.Errorf("terminal: %v", err)
	}
	defer trm.term.CanonicalMode()

	trm.term.Print(helpText)
	trm.term.RawMode()
	trm.redraw(false)

	for {
		quit, err := trm.handleKey()
		if err != nil {
			return err
		}
		if quit {
			trm.term.Print("\n")
			return nil
		}
	}
}

// mapping of range keys to the range button indexes of the front end.
var rangeKeys = map[byte]int{'m': 0, 'h': 1, 't': 2, 'k': 3, 'M': 4}

func (trm *Terminal) handleKey() (bool, error) {
	k, err := trm.term.ReadByte()
	if err != nil {
		return false, curated.Errorf("terminal: %v", err)
	}

	switch k {
	case 'q', easyterm.KeyInterrupt, easyterm.KeyEOF:
		return true, nil

	case easyterm.KeySpace:
		trm.redraw(trm.cor.SetEnabled(!trm.cor.Enabled()))

	case 'w':
		trm.redraw(trm.cor.CycleWaveform())

	case 'f':
		hz, ok := trm.readNumber()
		if ok {
			trm.redraw(trm.cor.SetTargetAutoscale(hz))
		} else {
			trm.redraw(false)
		}

	case 'd':
		trm.dumpState()
		trm.redraw(false)

	case 'l':
		trm.term.Print("\n")
		trm.term.CanonicalMode()
		logger.Tail(os.Stdout, 10)
		trm.term.RawMode()
		trm.redraw(false)

	case easyterm.KeyEsc:
		return false, trm.handleEscSequence()

	default:
		if k >= '0' && k <= '9' {
			// the zero key is the tenth button
			idx := int(k-'0') - 1
			if idx < 0 {
				idx = len(synth.FixedPresets) - 1
			}
			trm.redraw(trm.cor.SetFixedPreset(synth.FixedPresets[idx]))
			return false, nil
		}

		if button, ok := rangeKeys[k]; ok {
			trm.redraw(trm.cor.SetRange(button))
		}
	}

	return false, nil
}

func (trm *Terminal) handleEscSequence() error {
	k, err := trm.term.ReadByte()
	if err != nil {
		return curated.Errorf("terminal: %v", err)
	}
	if k != easyterm.EscCursor {
		return nil
	}

	k, err = trm.term.ReadByte()
	if err != nil {
		return curated.Errorf("terminal: %v", err)
	}

	switch k {
	case easyterm.CursorForward:
		trm.redraw(trm.cor.SetSlider(trm.cor.SliderPos() + sliderStep))
	case easyterm.CursorBackward:
		trm.redraw(trm.cor.SetSlider(trm.cor.SliderPos() - sliderStep))
	}

	return nil
}

// readNumber flips the terminal back to canonical mode to read a frequency
// value, in the way the numeric keypad of the real device takes over the
// screen. returns false if the input could not be parsed.
func (trm *Terminal) readNumber() (float32, bool) {
	trm.term.Print("\nfrequency [Hz]: ")
	trm.term.CanonicalMode()
	defer trm.term.RawMode()

	s, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return 0, false
	}

	f, err := strconv.ParseFloat(strings.TrimSpace(s), 32)
	if err != nil {
		trm.term.Print("not a number\n")
		return 0, false
	}

	return float32(f), true
}

// dumpState writes a graph of the core's state to the memviz file.
func (trm *Terminal) dumpState() {
	pth, err := resources.JoinPath(memvizFile)
	if err != nil {
		logger.Logf("terminal", "state dump failed: %v", err)
		return
	}

	f, err := os.Create(pth)
	if err != nil {
		logger.Logf("terminal", "state dump failed: %v", err)
		return
	}
	defer f.Close()

	memviz.Map(f, trm.cor)
	logger.Logf("terminal", "state graph written to %s", pth)
}

// redraw the status line. the bell character stands in for the feedback
// tone the real device sounds when a frequency has been clipped.
func (trm *Terminal) redraw(clipped bool) {
	trm.term.Print("\r\033[2K%s  slider=%3d", trm.cor.String(), trm.cor.SliderPos())
	if clipped {
		trm.term.Print("  clipped\a")
	}
}
