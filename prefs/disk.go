// This file is part of srb2input.
//
// srb2input is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// srb2input is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with srb2input.  If not, see <https://www.gnu.org/licenses/>.

package prefs

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"

	"gopkg.in/ini.v1"

	"github.com/srb2star/srb2input/curated"
)

// DefaultPrefsFile is the default filename of the global preferences file.
const DefaultPrefsFile = "preferences.ini"

// WarningBoilerPlate is written to the head of every preferences file.
const WarningBoilerPlate = "; srb2input preferences file. values may be changed by hand but the file is rewritten on save"

// Sentinal error patterns.
const (
	NoPrefsFile   = "prefs: no prefs file (%s)"
	DuplicateKey  = "prefs: key already added (%s)"
	InvalidKey    = "prefs: invalid key (%s)"
	LoadingFailed = "prefs: loading %s: %v"
)

// Disk represents preference values as stored on disk. Values are stored in
// the INI format. A key of the form "section.name" is stored as the entry
// "name" in the INI section "section". A key with no dot is stored in the
// unnamed default section.
type Disk struct {
	path    string
	entries map[string]pref
}

func (dsk *Disk) String() string {
	keys := make([]string, 0, len(dsk.entries))
	for k := range dsk.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	s := strings.Builder{}
	for _, k := range keys {
		s.WriteString(fmt.Sprintf("%s :: %s\n", k, dsk.entries[k]))
	}
	return s.String()
}

// NewDisk is the preferred method of initialisation for the Disk type.
func NewDisk(path string) (*Disk, error) {
	dsk := &Disk{
		path:    path,
		entries: make(map[string]pref),
	}
	return dsk, nil
}

// splitKey divides a preferences key into the INI section name and key name.
func splitKey(key string) (string, string) {
	section, name, ok := strings.Cut(key, ".")
	if !ok {
		return ini.DefaultSection, key
	}
	return section, name
}

// Add preference value to list of values to store/load from Disk. The key
// value is used to identify the value in the file.
func (dsk *Disk) Add(key string, p pref) error {
	if key == "" || strings.ContainsAny(key, " \t=[];") || strings.HasSuffix(key, ".") {
		return curated.Errorf(InvalidKey, key)
	}
	if _, ok := dsk.entries[key]; ok {
		return curated.Errorf(DuplicateKey, key)
	}
	dsk.entries[key] = p
	return nil
}

// HasEntry returns true if the key has been added to the Disk.
func (dsk *Disk) HasEntry(key string) bool {
	_, ok := dsk.entries[key]
	return ok
}

var loadOptions = ini.LoadOptions{
	Insensitive:             false,
	InsensitiveSections:     true,
	IgnoreInlineComment:     true,
	SkipUnrecognizableLines: true,
}

// read the file at the Disk's path. a file that doesn't exist is not an error
// and returns an empty INI file.
func (dsk *Disk) read() (*ini.File, bool, error) {
	data, err := os.ReadFile(dsk.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return ini.Empty(loadOptions), false, nil
		}
		return nil, false, curated.Errorf(LoadingFailed, dsk.path, err)
	}

	f, err := ini.LoadSources(loadOptions, data)
	if err != nil {
		return nil, false, curated.Errorf(LoadingFailed, dsk.path, err)
	}
	return f, true, nil
}

// Save current preference values to disk. The entries in the file that have
// not been added to this Disk instance are preserved. Defunct entries are
// removed.
func (dsk *Disk) Save() error {
	f, _, err := dsk.read()
	if err != nil {
		return err
	}

	// remove defunct entries
	for _, sec := range f.Sections() {
		for _, k := range sec.KeyStrings() {
			key := k
			if sec.Name() != ini.DefaultSection {
				key = fmt.Sprintf("%s.%s", sec.Name(), k)
			}
			if isDefunct(key) {
				sec.DeleteKey(k)
			}
		}
	}

	// sorting the keys means the file is written in a predictable order
	keys := make([]string, 0, len(dsk.entries))
	for k := range dsk.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		section, name := splitKey(k)
		f.Section(section).Key(name).SetValue(dsk.entries[k].String())
	}

	var buf bytes.Buffer
	buf.WriteString(WarningBoilerPlate)
	buf.WriteString("\n")
	if _, err := f.WriteTo(&buf); err != nil {
		return fmt.Errorf("prefs: %w", err)
	}

	if err := os.WriteFile(dsk.path, buf.Bytes(), 0o640); err != nil {
		return fmt.Errorf("prefs: %w", err)
	}

	return nil
}

// Load preference values from disk. If the file does not exist and
// saveOnFirstUse is true then the current values are saved to create the
// file. If saveOnFirstUse is false a missing file is a NoPrefsFile error.
//
// After loading, the values in the most recent command line group (see
// PushCommandLineStack()) override the values from the file.
func (dsk *Disk) Load(saveOnFirstUse bool) error {
	f, exists, err := dsk.read()
	if err != nil {
		return err
	}

	if !exists {
		if !saveOnFirstUse {
			return curated.Errorf(NoPrefsFile, dsk.path)
		}
		if err := dsk.Save(); err != nil {
			return err
		}
	} else {
		for k, p := range dsk.entries {
			section, name := splitKey(k)
			sec, err := f.GetSection(section)
			if err != nil || !sec.HasKey(name) {
				continue
			}
			if err := p.Set(sec.Key(name).String()); err != nil {
				return fmt.Errorf("prefs: %s: %w", k, err)
			}
		}
	}

	for k, p := range dsk.entries {
		if ok, v := GetCommandLinePref(k); ok {
			if err := p.Set(v); err != nil {
				return fmt.Errorf("prefs: %s: %w", k, err)
			}
		}
	}

	return nil
}
