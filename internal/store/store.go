// Package store persists named input presets as a JSON array of records
// under a data directory. Records are keyed by name; saving an existing
// name replaces the record.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/windlab/sailforce/internal/rig"
)

const presetsFile = "presets.json"

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

// Preset is one stored record. The payload mirrors rig.Inputs with the
// original camelCase field names on the wire.
type Preset struct {
	Name    string       `json:"name"`
	SavedAt time.Time    `json:"saved_at"`
	Inputs  InputsRecord `json:"inputs"`
}

type InputsRecord struct {
	TrueWindSpeed  float64 `json:"trueWindSpeed"`
	CourseAngleDeg float64 `json:"courseAngleDeg"`
	BoardSpeed     float64 `json:"boardSpeed"`
	SailArea       float64 `json:"sailArea"`
	SheetingDeg    float64 `json:"sheetingDeg"`
	Downhaul       float64 `json:"downhaul"`
	Outhaul        float64 `json:"outhaul"`
}

func RecordFromInputs(in rig.Inputs) InputsRecord {
	return InputsRecord{
		TrueWindSpeed:  in.TrueWindSpeed,
		CourseAngleDeg: in.CourseAngleDeg,
		BoardSpeed:     in.BoardSpeed,
		SailArea:       in.SailArea,
		SheetingDeg:    in.SheetingDeg,
		Downhaul:       in.Downhaul,
		Outhaul:        in.Outhaul,
	}
}

func (r InputsRecord) ToInputs() rig.Inputs {
	return rig.Inputs{
		TrueWindSpeed:  r.TrueWindSpeed,
		CourseAngleDeg: r.CourseAngleDeg,
		BoardSpeed:     r.BoardSpeed,
		SailArea:       r.SailArea,
		SheetingDeg:    r.SheetingDeg,
		Downhaul:       r.Downhaul,
		Outhaul:        r.Outhaul,
	}
}

func (s *Store) path() string {
	return filepath.Join(s.baseDir, presetsFile)
}

func (s *Store) read() ([]Preset, error) {
	data, err := os.ReadFile(s.path())
	if err != nil {
		if os.IsNotExist(err) {
			return []Preset{}, nil
		}
		return nil, err
	}

	var presets []Preset
	if err := json.Unmarshal(data, &presets); err != nil {
		return nil, fmt.Errorf("parse %s: %w", presetsFile, err)
	}

	// Light structural validation: drop nameless records.
	valid := presets[:0]
	for _, p := range presets {
		if p.Name == "" {
			continue
		}
		valid = append(valid, p)
	}
	return valid, nil
}

func (s *Store) write(presets []Preset) error {
	sort.Slice(presets, func(i, j int) bool { return presets[i].Name < presets[j].Name })

	file, err := os.Create(s.path())
	if err != nil {
		return err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	return enc.Encode(presets)
}

// Save stores the inputs under name, replacing any existing record.
func (s *Store) Save(name string, in rig.Inputs) error {
	if name == "" {
		return fmt.Errorf("preset name must not be empty")
	}

	presets, err := s.read()
	if err != nil {
		return err
	}

	record := Preset{Name: name, SavedAt: time.Now().UTC(), Inputs: RecordFromInputs(in)}

	replaced := false
	for i := range presets {
		if presets[i].Name == name {
			presets[i] = record
			replaced = true
			break
		}
	}
	if !replaced {
		presets = append(presets, record)
	}

	return s.write(presets)
}

func (s *Store) Load(name string) (*Preset, error) {
	presets, err := s.read()
	if err != nil {
		return nil, err
	}
	for i := range presets {
		if presets[i].Name == name {
			return &presets[i], nil
		}
	}
	return nil, fmt.Errorf("preset not found: %s", name)
}

// List returns all stored presets sorted by name.
func (s *Store) List() ([]Preset, error) {
	presets, err := s.read()
	if err != nil {
		return nil, err
	}
	sort.Slice(presets, func(i, j int) bool { return presets[i].Name < presets[j].Name })
	return presets, nil
}

func (s *Store) Delete(name string) error {
	presets, err := s.read()
	if err != nil {
		return err
	}

	kept := presets[:0]
	found := false
	for _, p := range presets {
		if p.Name == name {
			found = true
			continue
		}
		kept = append(kept, p)
	}
	if !found {
		return fmt.Errorf("preset not found: %s", name)
	}

	return s.write(kept)
}

// Export writes the preset file to path in the same array-of-records format.
func (s *Store) Export(path string) error {
	presets, err := s.List()
	if err != nil {
		return err
	}

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	return enc.Encode(presets)
}

// Import merges records from path into the store. Records with empty names
// are skipped; imported names replace existing ones. Returns the number of
// records imported.
func (s *Store) Import(path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}

	var incoming []Preset
	if err := json.Unmarshal(data, &incoming); err != nil {
		return 0, fmt.Errorf("parse %s: %w", path, err)
	}

	presets, err := s.read()
	if err != nil {
		return 0, err
	}

	byName := make(map[string]int, len(presets))
	for i, p := range presets {
		byName[p.Name] = i
	}

	count := 0
	for _, p := range incoming {
		if p.Name == "" {
			continue
		}
		if idx, ok := byName[p.Name]; ok {
			presets[idx] = p
		} else {
			byName[p.Name] = len(presets)
			presets = append(presets, p)
		}
		count++
	}

	if err := s.write(presets); err != nil {
		return 0, err
	}
	return count, nil
}
