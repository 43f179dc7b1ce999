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

package main

import (
	"fmt"
	"os"
	"time"

	"github.com/jetsetilly/freqgen/curated"
	"github.com/jetsetilly/freqgen/hardware/synth"
	"github.com/jetsetilly/freqgen/hardware/synth/profile"
	"github.com/jetsetilly/freqgen/hardware/timer"
	"github.com/jetsetilly/freqgen/logger"
	"github.com/jetsetilly/freqgen/modalflag"
	"github.com/jetsetilly/freqgen/statsview"
	"github.com/jetsetilly/freqgen/terminal"
	"github.com/jetsetilly/freqgen/version"
	"github.com/jetsetilly/freqgen/wavwriter"
)

func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.AddSubModes("RUN", "WAV", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		os.Exit(0)
	case modalflag.ParseError:
		fmt.Printf("* %s\n", err)
		os.Exit(10)
	}

	switch md.Mode() {
	case "RUN":
		err = run(md)
	case "WAV":
		err = wavRender(md)
	case "VERSION":
		err = showVersion(md)
	}

	if err != nil {
		fmt.Printf("* %s\n", err)
		os.Exit(10)
	}
}

// platform creates the profile and driver pair named by the -platform flag.
func platform(id string) (profile.Profile, synth.Driver, error) {
	switch id {
	case "AVR", "avr":
		return profile.AVR, timer.NewCTC(), nil
	case "STM32", "stm32":
		return profile.STM32, timer.NewSynth32(), nil
	}
	return profile.Profile{}, nil, curated.Errorf("unrecognised platform (%s)", id)
}

func run(md *modalflag.Modes) error {
	md.NewMode()

	platformID := md.AddString("platform", "STM32", "platform profile to use (AVR or STM32)")
	echoLog := md.AddBool("log", false, "echo log entries to stderr as they arrive")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (%t)", statsview.Available()))
	useSaved := md.AddBool("prefs", true, "restore saved state on startup and save on exit")

	p, err := md.Parse()
	if p != modalflag.ParseContinue {
		return err
	}

	if *echoLog {
		logger.SetEcho(os.Stderr)
	}

	if *stats {
		statsview.Launch(os.Stdout)
	}

	prof, drv, err := platform(*platformID)
	if err != nil {
		return err
	}

	logger.Logf("freqgen", "running with %s profile", prof.ID)

	cor := synth.NewCore(prof, drv)

	if *useSaved {
		prf, err := synth.NewPreferences(cor)
		if err != nil {
			return err
		}
		if err := prf.Restore(); err != nil {
			logger.Logf("freqgen", "preferences not restored: %v", err)
		}
		defer func() {
			if err := prf.Save(); err != nil {
				logger.Logf("freqgen", "preferences not saved: %v", err)
			}
		}()
	}

	return terminal.Run(cor)
}

func wavRender(md *modalflag.Modes) error {
	md.NewMode()

	platformID := md.AddString("platform", "STM32", "platform profile to use (AVR or STM32)")
	duration := md.AddDuration("duration", 5*time.Second, "length of the recording")
	sampleRate := md.AddInt("rate", 44100, "sample rate of the recording")
	output := md.AddString("o", "freqgen.wav", "output file")

	p, err := md.Parse()
	if p != modalflag.ParseContinue {
		return err
	}

	var target float64 = 440
	if len(md.RemainingArgs()) > 0 {
		_, err := fmt.Sscanf(md.GetArg(0), "%f", &target)
		if err != nil {
			return curated.Errorf("wav: not a frequency (%s)", md.GetArg(0))
		}
	}

	prof, drv, err := platform(*platformID)
	if err != nil {
		return err
	}

	cor := synth.NewCore(prof, drv)
	if cor.SetTargetAutoscale(float32(target)) {
		fmt.Printf("target frequency has been clipped to %s\n", cor.FrequencyString())
	}

	aw := wavwriter.New(*output, *sampleRate)
	if err := aw.Synthesize(cor.RealizedHz(), *duration); err != nil {
		return err
	}
	if err := aw.Save(); err != nil {
		return err
	}

	fmt.Printf("%s (%s) for %v -> %s\n", cor.FrequencyString(), cor.PeriodString(), *duration, *output)

	return nil
}

func showVersion(md *modalflag.Modes) error {
	md.NewMode()

	revision := md.AddBool("v", false, "display revision information")

	p, err := md.Parse()
	if p != modalflag.ParseContinue {
		return err
	}

	vers, rev, _ := version.Version()
	fmt.Printf("%s (%s)\n", version.ApplicationName, vers)
	if *revision {
		fmt.Println(rev)
	}

	return nil
}
