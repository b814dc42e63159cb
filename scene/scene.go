// Package scene loads interactors and interactables from YAML files and
// spawns them into a sesshoku World.
package scene

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/edwinsyarief/sesshoku"
	"gopkg.in/yaml.v3"
)

// ErrEmptyScene is returned when the document holds no entities.
var ErrEmptyScene = errors.New("scene: no entities")

// Scene is the YAML description of a set of entities.
type Scene struct {
	Interactors   []Interactor   `yaml:"interactors"`
	Interactables []Interactable `yaml:"interactables"`
}

// Interactor describes an entity able to fire interactions.
type Interactor struct {
	Name     string    `yaml:"name"`
	Position []float32 `yaml:"position"`
	Forward  []float32 `yaml:"forward"`
}

// Interactable describes an entity able to receive interactions.
type Interactable struct {
	Name        string    `yaml:"name"`
	Description string    `yaml:"description,omitempty"`
	Position    []float32 `yaml:"position"`
	Forward     []float32 `yaml:"forward,omitempty"`
	MaxDistance float32   `yaml:"max_distance"`
	Exclusive   bool      `yaml:"exclusive,omitempty"`
	Enabled     *bool     `yaml:"enabled,omitempty"`
}

// Load decodes a scene from r. Unknown fields are rejected.
func Load(r io.Reader) (*Scene, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var s Scene
	if err := dec.Decode(&s); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyScene
		}
		return nil, fmt.Errorf("decode scene: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// LoadFile opens and decodes the scene at path.
func LoadFile(path string) (*Scene, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open scene: %w", err)
	}
	defer f.Close()
	s, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Validate checks names, vectors and distances.
func (s *Scene) Validate() error {
	if len(s.Interactors) == 0 && len(s.Interactables) == 0 {
		return ErrEmptyScene
	}
	seen := make(map[string]struct{}, len(s.Interactors)+len(s.Interactables))
	name := func(n string) error {
		if n == "" {
			return errors.New("scene: entity without name")
		}
		if _, dup := seen[n]; dup {
			return fmt.Errorf("scene: duplicate entity name %q", n)
		}
		seen[n] = struct{}{}
		return nil
	}
	for _, in := range s.Interactors {
		if err := name(in.Name); err != nil {
			return err
		}
		if _, err := vec(in.Position, "position"); err != nil {
			return fmt.Errorf("scene: interactor %q: %w", in.Name, err)
		}
		fwd, err := vec(in.Forward, "forward")
		if err != nil {
			return fmt.Errorf("scene: interactor %q: %w", in.Name, err)
		}
		if fwd.LengthSquared() == 0 {
			return fmt.Errorf("scene: interactor %q: forward must not be zero", in.Name)
		}
	}
	for _, it := range s.Interactables {
		if err := name(it.Name); err != nil {
			return err
		}
		if _, err := vec(it.Position, "position"); err != nil {
			return fmt.Errorf("scene: interactable %q: %w", it.Name, err)
		}
		if it.Forward != nil {
			if _, err := vec(it.Forward, "forward"); err != nil {
				return fmt.Errorf("scene: interactable %q: %w", it.Name, err)
			}
		}
		if _, err := sesshoku.NewInteractable(it.MaxDistance, it.Exclusive); err != nil {
			return fmt.Errorf("scene: interactable %q: %w", it.Name, err)
		}
	}
	return nil
}

// Spawn creates every entity of the scene in w and returns them by name.
func (s *Scene) Spawn(w *sesshoku.World) (map[string]sesshoku.Entity, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	out := make(map[string]sesshoku.Entity, len(s.Interactors)+len(s.Interactables))
	for _, in := range s.Interactors {
		pos, _ := vec(in.Position, "position")
		fwd, _ := vec(in.Forward, "forward")
		out[in.Name] = sesshoku.SpawnInteractor(w, sesshoku.NewTransform(pos, fwd))
	}
	for _, it := range s.Interactables {
		pos, _ := vec(it.Position, "position")
		fwd := sesshoku.V3(0, 0, 1)
		if it.Forward != nil {
			fwd, _ = vec(it.Forward, "forward")
		}
		opts := []sesshoku.InteractableOption{
			sesshoku.WithName(it.Name),
			sesshoku.WithDescription(it.Description),
		}
		if it.Enabled != nil && !*it.Enabled {
			opts = append(opts, sesshoku.Disabled())
		}
		comp, err := sesshoku.NewInteractable(it.MaxDistance, it.Exclusive, opts...)
		if err != nil {
			return nil, fmt.Errorf("scene: interactable %q: %w", it.Name, err)
		}
		out[it.Name] = sesshoku.SpawnInteractable(w, sesshoku.NewTransform(pos, fwd), comp)
	}
	return out, nil
}

func vec(v []float32, field string) (sesshoku.Vec3, error) {
	if len(v) != 3 {
		return sesshoku.Vec3{}, fmt.Errorf("%s needs 3 components, got %d", field, len(v))
	}
	return sesshoku.V3(v[0], v[1], v[2]), nil
}
