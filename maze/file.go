package maze

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// File is the YAML document layout of a stored maze.
type File struct {
	Name string   `yaml:"name"`
	Rows []string `yaml:"rows"`
}

// LoadFile reads a YAML maze file and parses its rows in text format.
func LoadFile(path string) (*Maze, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("maze: failed to read %s: %w", path, err)
	}
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, "", fmt.Errorf("%w: %s: %v", ErrParse, path, err)
	}
	m, err := parseRows(f.Rows)
	if err != nil {
		return nil, "", fmt.Errorf("%s: %w", path, err)
	}
	return m, f.Name, nil
}

// SaveFile writes m to path as a YAML maze file.
func SaveFile(path, name string, m *Maze) error {
	f := File{Name: name, Rows: make([]string, m.grid.rows)}
	for r := range f.Rows {
		f.Rows[r] = formatRow(m, r)
	}
	data, err := yaml.Marshal(&f)
	if err != nil {
		return fmt.Errorf("maze: failed to marshal %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("maze: failed to write %s: %w", path, err)
	}
	return nil
}
