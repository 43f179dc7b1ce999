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

package logger_test

import (
	"testing"

	"github.com/jetsetilly/freqgen/logger"
	"github.com/jetsetilly/freqgen/test"
)

func TestCentral(t *testing.T) {
	tw := &test.CompareWriter{}

	logger.Clear()
	logger.Write(tw)
	test.ExpectSuccess(t, tw.Compare(""))

	logger.Log("test", "this is a test")
	logger.Write(tw)
	test.ExpectSuccess(t, tw.Compare("test: this is a test\n"))

	tw.Clear()
	logger.Logf("test", "this is a %s", "formatted test")
	logger.Tail(tw, 1)
	test.ExpectSuccess(t, tw.Compare("test: this is a formatted test\n"))

	logger.Clear()
}

func TestRepeatCompression(t *testing.T) {
	tw := &test.CompareWriter{}

	logger.Clear()
	logger.Log("synth", "ignoring invalid target frequency (0)")
	logger.Log("synth", "ignoring invalid target frequency (0)")
	logger.Log("synth", "ignoring invalid target frequency (0)")
	logger.Write(tw)
	test.ExpectSuccess(t, tw.Compare("synth: ignoring invalid target frequency (0) (repeat x3)\n"))

	logger.Clear()
}
