package fixture

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/okian/leaguelogic/internal/domain/fault"
)

//go:embed demo.yaml
var demoYAML []byte

type document struct {
	Fixtures []Fixture `yaml:"fixtures"`
}

// Demo returns the built-in sample fixtures.
func Demo() []Fixture {
	fixtures, err := Parse(demoYAML)
	if err != nil {
		panic(fmt.Sprintf("embedded fixtures: %v", err))
	}
	return fixtures
}

// Load reads fixtures from a YAML file. An empty path yields the demo list.
func Load(path string) ([]Fixture, error) {
	if path == "" {
		return Demo(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fault.Configuration("fixtures.file", "cannot read "+path, err)
	}
	return Parse(data)
}

// Parse decodes and checks a fixtures document. Every fixture needs an id,
// a kickoff and both teams; ids must be unique.
func Parse(data []byte) ([]Fixture, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, &fault.DataShapeError{Reason: "fixtures are not valid YAML: " + err.Error()}
	}

	seen := make(map[string]struct{}, len(doc.Fixtures))
	for i, f := range doc.Fixtures {
		row := i + 1
		switch {
		case strings.TrimSpace(f.ID) == "":
			return nil, &fault.DataShapeError{Row: row, Column: "id", Reason: "id is required"}
		case f.Kickoff.IsZero():
			return nil, &fault.DataShapeError{Row: row, Column: "kickoff", Reason: "kickoff is required"}
		case f.Home == "" || f.Away == "":
			return nil, &fault.DataShapeError{Row: row, Column: "home", Reason: "both teams are required"}
		case f.Round < 0 || f.Round > SeasonRounds:
			return nil, &fault.DataShapeError{Row: row, Column: "round", Value: f.Round, Reason: "round out of range"}
		}
		if _, dup := seen[f.ID]; dup {
			return nil, &fault.DataShapeError{Row: row, Column: "id", Value: f.ID, Reason: "duplicate id"}
		}
		seen[f.ID] = struct{}{}
	}
	return doc.Fixtures, nil
}
