package grid

import (
	"fmt"
	"io"
	"os"

	"github.com/pdrpinto/tilepath"
	"gopkg.in/yaml.v3"
)

// MapFile is the YAML form of a Map. Explicit start and goal override any
// S/G markers in the rows. Rows starting with '#' must be quoted in YAML.
type MapFile struct {
	Name  string   `yaml:"name,omitempty"`
	Rows  []string `yaml:"rows"`
	Start *[2]int  `yaml:"start,omitempty"`
	Goal  *[2]int  `yaml:"goal,omitempty"`
}

// Decode reads a YAML map document.
func Decode(r io.Reader) (*Map, error) {
	var file MapFile
	if err := yaml.NewDecoder(r).Decode(&file); err != nil {
		return nil, fmt.Errorf("decode map: %w", err)
	}
	m, err := Parse(file.Rows)
	if err != nil {
		return nil, fmt.Errorf("parse map %q: %w", file.Name, err)
	}
	m.Name = file.Name
	if file.Start != nil {
		m.Start = &tilepath.Point{X: file.Start[0], Y: file.Start[1]}
	}
	if file.Goal != nil {
		m.Goal = &tilepath.Point{X: file.Goal[0], Y: file.Goal[1]}
	}
	return m, nil
}

// Load reads a YAML map file from disk.
func Load(path string) (*Map, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("load map: %w", err)
	}
	defer f.Close()
	return Decode(f)
}

// Encode writes m as a YAML map document.
func (m *Map) Encode(w io.Writer) error {
	file := MapFile{Name: m.Name, Rows: m.Tiles.Rows()}
	if m.Start != nil {
		file.Start = &[2]int{m.Start.X, m.Start.Y}
	}
	if m.Goal != nil {
		file.Goal = &[2]int{m.Goal.X, m.Goal.Y}
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(&file); err != nil {
		return fmt.Errorf("encode map: %w", err)
	}
	return enc.Close()
}
