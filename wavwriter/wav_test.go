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

package wavwriter_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/jetsetilly/freqgen/test"
	"github.com/jetsetilly/freqgen/wavwriter"
)

func TestSynthesize(t *testing.T) {
	aw := wavwriter.New(filepath.Join(t.TempDir(), "out.wav"), 44100)

	test.ExpectSuccess(t, aw.Synthesize(440, time.Second))
	test.Equate(t, aw.NumSamples(), 44100)

	// successive calls accumulate
	test.ExpectSuccess(t, aw.Synthesize(880, 500*time.Millisecond))
	test.Equate(t, aw.NumSamples(), 44100+22050)

	test.ExpectSuccess(t, aw.Save())
}

func TestNyquistLimit(t *testing.T) {
	aw := wavwriter.New(filepath.Join(t.TempDir(), "out.wav"), 44100)

	test.ExpectFailure(t, aw.Synthesize(22050, time.Second))
	test.ExpectFailure(t, aw.Synthesize(0, time.Second))
	test.Equate(t, aw.NumSamples(), 0)
}

func TestSaveWithoutSamples(t *testing.T) {
	aw := wavwriter.New(filepath.Join(t.TempDir(), "out.wav"), 44100)
	test.ExpectFailure(t, aw.Save())
}
