package sequence

import (
	"fmt"
	"os"

	"github.com/BrandonKowalski/coachmark/pkg/coachmark/geometry"
	"gopkg.in/yaml.v3"
)

// Definition is a walkthrough described in a YAML file:
//
//	id: first-run
//	steps:
//	  - id: settings
//	    title: Settings
//	    body: Change the theme and language here.
//	    region: {x: 16, y: 16, w: 48, h: 48}
//	  - id: library
//	    body: Your games live here.
//
// Regions are optional. Steps without one are positioned once the host
// registers the anchor's region at runtime.
type Definition struct {
	ID    string           `yaml:"id"`
	Steps []StepDefinition `yaml:"steps"`
}

type StepDefinition struct {
	ID     string     `yaml:"id"`
	Title  string     `yaml:"title"`
	Body   string     `yaml:"body"`
	Image  string     `yaml:"image"`
	Region *RegionDef `yaml:"region"`
}

type RegionDef struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	W float64 `yaml:"w"`
	H float64 `yaml:"h"`
}

func (r RegionDef) Rect() geometry.Rect {
	return geometry.XYWH(r.X, r.Y, r.W, r.H)
}

// LoadDefinition reads a walkthrough definition from a YAML file.
func LoadDefinition(path string) (*Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read walkthrough file %s: %w", path, err)
	}

	def, err := ParseDefinition(data)
	if err != nil {
		return nil, fmt.Errorf("invalid walkthrough in %s: %w", path, err)
	}
	return def, nil
}

// ParseDefinition decodes and validates a YAML walkthrough definition.
func ParseDefinition(data []byte) (*Definition, error) {
	var def Definition
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("failed to parse walkthrough YAML: %w", err)
	}

	def.applyDefaults()

	if err := def.validate(); err != nil {
		return nil, err
	}
	return &def, nil
}

func (d *Definition) applyDefaults() {
	if d.ID == "" {
		d.ID = "tour"
	}
}

func (d *Definition) validate() error {
	if len(d.Steps) == 0 {
		return ErrEmptySequence
	}

	seen := make(map[string]struct{}, len(d.Steps))
	for i, s := range d.Steps {
		if s.ID == "" {
			return fmt.Errorf("steps[%d]: id cannot be empty", i)
		}
		if _, dup := seen[s.ID]; dup {
			return fmt.Errorf("steps[%d]: %w: %q", i, ErrDuplicateStepID, s.ID)
		}
		seen[s.ID] = struct{}{}

		if s.Region != nil && (s.Region.W < 0 || s.Region.H < 0) {
			return fmt.Errorf("steps[%d]: region size must be >= 0, got %gx%g", i, s.Region.W, s.Region.H)
		}
	}
	return nil
}

// StepList returns the definition's steps as TextSteps, in order.
func (d *Definition) StepList() []Step {
	steps := make([]Step, 0, len(d.Steps))
	for _, s := range d.Steps {
		steps = append(steps, TextStep{
			Key:   s.ID,
			Title: s.Title,
			Body:  s.Body,
			Image: s.Image,
		})
	}
	return steps
}

// Regions returns the fixed regions declared in the file, keyed by step id.
func (d *Definition) Regions() map[string]geometry.Rect {
	regions := make(map[string]geometry.Rect)
	for _, s := range d.Steps {
		if s.Region != nil {
			regions[s.ID] = s.Region.Rect()
		}
	}
	return regions
}
