package sketch

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/Faultbox/lathe/pkg/math"
	"github.com/Faultbox/lathe/pkg/revolve"
)

// ErrNoPoints is returned when a profile file has an empty point list.
var ErrNoPoints = errors.New("sketch: profile file has no points")

// File is the on-disk form of a sketch.
type File struct {
	Edges     int          `yaml:"edges,omitempty"`
	CloseSeam bool         `yaml:"close_seam,omitempty"`
	Points    [][2]float32 `yaml:"points,flow"`
}

// NewFile captures profile and the mesh settings it was drawn with.
func NewFile(profile revolve.Profile, edges int, closeSeam bool) *File {
	f := &File{
		Edges:     edges,
		CloseSeam: closeSeam,
		Points:    make([][2]float32, len(profile)),
	}
	for i, p := range profile {
		f.Points[i] = [2]float32{p.X, p.Y}
	}
	return f
}

// Profile converts the stored points back into a profile.
func (f *File) Profile() revolve.Profile {
	profile := make(revolve.Profile, len(f.Points))
	for i, p := range f.Points {
		profile[i] = math.Vec2{X: p[0], Y: p[1]}
	}
	return profile
}

// Options applies the file's settings on top of base. A zero edge count
// keeps base.Edges. The seam mode always comes from the file; a missing
// close_seam means an open seam.
func (f *File) Options(base revolve.Options) revolve.Options {
	if f.Edges != 0 {
		base.Edges = f.Edges
	}
	base.CloseSeam = f.CloseSeam
	return base
}

// OfferedOptions is Options with the edge count snapped to the nearest
// entry of revolve.StepCounts. snapped reports whether the file's count was
// replaced.
func (f *File) OfferedOptions(base revolve.Options) (opts revolve.Options, snapped bool) {
	opts = f.Options(base)
	if revolve.StepIndex(opts.Edges) < 0 {
		opts.Edges = revolve.SnapEdges(opts.Edges)
		snapped = true
	}
	return opts, snapped
}

// Parse decodes a profile file.
func Parse(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, err
	}
	if len(f.Points) == 0 {
		return nil, ErrNoPoints
	}
	if f.Edges != 0 {
		if err := revolve.ValidateEdges(f.Edges); err != nil {
			return nil, err
		}
	}
	return &f, nil
}

// LoadFile reads a profile file from disk.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing profile %s: %w", path, err)
	}
	return f, nil
}

// SaveFile writes f to path, creating parent directories as needed.
func SaveFile(path string, f *File) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := yaml.Marshal(f)
	if err != nil {
		return fmt.Errorf("encoding profile: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}
