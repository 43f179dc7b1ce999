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

package prefs

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/jetsetilly/freqgen/curated"
)

// WarningBoilerPlate is the first line in a prefs file. Is used to identify a
// file as a prefs file.
const WarningBoilerPlate = "*** do not edit this file by hand ***"

// the string that separates the key from the value in a prefs file entry.
const keySep = " :: "

// Disk represents preference values as stored on disk.
type Disk struct {
	path    string
	entries map[string]pref
}

// NewDisk is the preferred method of initialisation for the Disk type.
func NewDisk(path string) (*Disk, error) {
	return &Disk{
		path:    path,
		entries: make(map[string]pref),
	}, nil
}

// Add a pref value to the list of values to save/load from disk. The key
// cannot contain whitespace or the key separator.
//
// If the prefs file already contains a value for the key then the pref is set
// to that value immediately.
func (dsk *Disk) Add(key string, p pref) error {
	if strings.ContainsAny(key, " \t\n") || strings.Contains(key, keySep) {
		return curated.Errorf("prefs: invalid key (%s)", key)
	}
	dsk.entries[key] = p

	// load existing value for this key, if there is one
	saved, err := dsk.read()
	if err != nil {
		return err
	}
	if v, ok := saved[key]; ok {
		if err := p.Set(v); err != nil {
			return curated.Errorf("prefs: %v", err)
		}
	}

	return nil
}

// Load prefs from disk. Keys in the file that have not been added to the Disk
// instance are left alone.
func (dsk *Disk) Load() error {
	saved, err := dsk.read()
	if err != nil {
		return err
	}

	for key, p := range dsk.entries {
		if v, ok := saved[key]; ok {
			if err := p.Set(v); err != nil {
				return curated.Errorf("prefs: %v", err)
			}
		}
	}

	return nil
}

// Save prefs to disk. Keys in the file belonging to other Disk instances are
// preserved.
func (dsk *Disk) Save() error {
	// load the file as it exists now so that keys we don't handle are not
	// clobbered
	saved, err := dsk.read()
	if err != nil {
		return err
	}

	for key, p := range dsk.entries {
		saved[key] = p.String()
	}

	keys := make([]string, 0, len(saved))
	for key := range saved {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	f, err := os.Create(dsk.path)
	if err != nil {
		return curated.Errorf("prefs: %v", err)
	}
	defer f.Close()

	fmt.Fprintln(f, WarningBoilerPlate)
	for _, key := range keys {
		fmt.Fprintf(f, "%s%s%s\n", key, keySep, saved[key])
	}

	return nil
}

// read the prefs file into a key/value map. a missing file is not an error,
// it simply yields an empty map.
func (dsk *Disk) read() (map[string]string, error) {
	saved := make(map[string]string)

	f, err := os.Open(dsk.path)
	if err != nil {
		if os.IsNotExist(err) {
			return saved, nil
		}
		return nil, curated.Errorf("prefs: %v", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)

	// check boilerplate
	if !scanner.Scan() {
		return saved, nil
	}
	if scanner.Text() != WarningBoilerPlate {
		return nil, curated.Errorf("prefs: not a valid prefs file (%s)", dsk.path)
	}

	for scanner.Scan() {
		s := strings.SplitN(scanner.Text(), keySep, 2)
		if len(s) != 2 {
			return nil, curated.Errorf("prefs: malformed entry in prefs file (%s)", dsk.path)
		}
		saved[s[0]] = s[1]
	}

	if err := scanner.Err(); err != nil {
		return nil, curated.Errorf("prefs: %v", err)
	}

	return saved, nil
}
