package formats

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// YAMLMaze represents the YAML structure for a maze file.
type YAMLMaze struct {
	ID       string            `yaml:"id"`
	Name     string            `yaml:"name"`
	Rows     []string          `yaml:"rows"`
	Metadata map[string]string `yaml:"metadata,omitempty"`
}

// ParseYAML parses a YAML maze file. Rows use the text maze glyphs.
func ParseYAML(data []byte) (Maze, error) {
	var ym YAMLMaze
	if err := yaml.Unmarshal(data, &ym); err != nil {
		return Maze{}, fmt.Errorf("yaml unmarshal: %w", err)
	}

	m, err := ParseRows(ym.Rows)
	if err != nil {
		return Maze{}, fmt.Errorf("rows: %w", err)
	}
	m.ID = ym.ID
	m.Name = ym.Name
	m.Metadata = ym.Metadata
	return m, nil
}

