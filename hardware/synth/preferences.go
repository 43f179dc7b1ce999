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

package synth

import (
	"github.com/jetsetilly/freqgen/curated"
	"github.com/jetsetilly/freqgen/prefs"
	"github.com/jetsetilly/freqgen/resources"
)

// the name of the preferences file under the resources base path
const prefsFile = "preferences"

// Preferences is the generator state that survives a restart. The state is
// not saved continuously; call Save() on shutdown and Restore() after
// creating the Core.
type Preferences struct {
	cor *Core
	dsk *prefs.Disk

	target   prefs.Float
	decade   prefs.Int
	tenHz    prefs.Bool
	waveform prefs.Int
	enabled  prefs.Bool
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type.
func NewPreferences(cor *Core) (*Preferences, error) {
	p := &Preferences{cor: cor}

	pth, err := resources.JoinPath(prefsFile)
	if err != nil {
		return nil, curated.Errorf("synth: %v", err)
	}

	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, curated.Errorf("synth: %v", err)
	}

	if err := p.dsk.Add("synth.target", &p.target); err != nil {
		return nil, curated.Errorf("synth: %v", err)
	}
	if err := p.dsk.Add("synth.decade", &p.decade); err != nil {
		return nil, curated.Errorf("synth: %v", err)
	}
	if err := p.dsk.Add("synth.tenhz", &p.tenHz); err != nil {
		return nil, curated.Errorf("synth: %v", err)
	}
	if err := p.dsk.Add("synth.waveform", &p.waveform); err != nil {
		return nil, curated.Errorf("synth: %v", err)
	}
	if err := p.dsk.Add("synth.enabled", &p.enabled); err != nil {
		return nil, curated.Errorf("synth: %v", err)
	}

	return p, nil
}

// Restore applies the saved state to the Core. If there is no saved state the
// Core is left on its boot defaults.
//
// The state is pushed through the normal event sinks so invalid values in the
// preferences file are ignored the same way invalid user input is.
func (p *Preferences) Restore() error {
	if err := p.dsk.Load(); err != nil {
		return err
	}

	// a zero target means there is no saved state to apply
	target := float32(p.target.Get().(float64))
	if target == 0 {
		return nil
	}

	// range before target. the decade decides how the target number is
	// interpreted and the 10Hz flag is cleared by SetDecade()
	if p.tenHz.Get().(bool) {
		p.cor.SetRange(RangeButton10Hz)
	} else {
		p.cor.SetDecade(Decade(p.decade.Get().(int)))
	}
	p.cor.SetWaveform(Waveform(p.waveform.Get().(int)))
	p.cor.SetTarget(target)
	p.cor.SetEnabled(p.enabled.Get().(bool))

	return nil
}

// Save takes a snapshot of the Core state and writes it to disk.
func (p *Preferences) Save() error {
	if err := p.target.Set(p.cor.Target()); err != nil {
		return err
	}
	if err := p.decade.Set(int(p.cor.Decade())); err != nil {
		return err
	}
	if err := p.tenHz.Set(p.cor.TenHzRange()); err != nil {
		return err
	}
	if err := p.waveform.Set(int(p.cor.Waveform())); err != nil {
		return err
	}
	if err := p.enabled.Set(p.cor.Enabled()); err != nil {
		return err
	}
	return p.dsk.Save()
}
