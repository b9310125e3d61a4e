// Package workbench owns the editing session: the mesh settings, the model
// transform and the most recently generated mesh.
package workbench

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/lathe/internal/logger"
	"github.com/Faultbox/lathe/internal/view"
	"github.com/Faultbox/lathe/pkg/revolve"
)

// Snapshot is one published generation. Snapshots are never modified after
// they are published.
type Snapshot struct {
	Mesh       *revolve.Mesh
	Profile    revolve.Profile
	Options    revolve.Options
	Generation uint64
	Elapsed    time.Duration
}

// Workbench is safe for concurrent use. Readers call Current, which never
// blocks on a regeneration in progress.
type Workbench struct {
	log *zap.Logger

	mu        sync.Mutex
	opts      revolve.Options
	transform view.ModelTransform
	profile   revolve.Profile
	gen       uint64

	current atomic.Pointer[Snapshot]
}

// New creates a workbench with an empty mesh. log may be nil.
func New(opts revolve.Options, transform view.ModelTransform, log *zap.Logger) (*Workbench, error) {
	if err := revolve.ValidateEdges(opts.Edges); err != nil {
		return nil, err
	}

	w := &Workbench{
		log:       logger.OrNop(log).Named("workbench"),
		opts:      opts,
		transform: transform,
	}
	w.current.Store(&Snapshot{
		Mesh:    &revolve.Mesh{Edges: opts.Edges},
		Options: opts,
	})
	return w, nil
}

// Current returns the latest published snapshot.
func (w *Workbench) Current() *Snapshot {
	return w.current.Load()
}

// Options returns the current generation settings.
func (w *Workbench) Options() revolve.Options {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.opts
}

// Regenerate builds a mesh from profile and publishes it. On failure the
// previous mesh stays current. A profile with fewer than two points is
// reported as revolve.ErrEmptyProfile.
func (w *Workbench) Regenerate(profile revolve.Profile) (*Snapshot, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	profile = append(revolve.Profile(nil), profile...)
	snap, err := w.generateLocked(profile, w.opts)
	if err != nil {
		return nil, err
	}
	w.profile = profile
	return snap, nil
}

// SetEdges changes the step count. If a profile has been generated it is
// rebuilt with the new count.
func (w *Workbench) SetEdges(edges int) error {
	if err := revolve.ValidateEdges(edges); err != nil {
		w.log.Warn("rejected step count", zap.Int("edges", edges))
		return err
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.opts.Edges == edges {
		return nil
	}
	opts := w.opts
	opts.Edges = edges
	return w.applyLocked(opts)
}

// SetCloseSeam switches between the flat-index walk and closed strips.
func (w *Workbench) SetCloseSeam(closeSeam bool) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.opts.CloseSeam == closeSeam {
		return nil
	}
	opts := w.opts
	opts.CloseSeam = closeSeam
	return w.applyLocked(opts)
}

// SetDegeneratePolicy changes how zero-area faces affect normals.
func (w *Workbench) SetDegeneratePolicy(policy revolve.DegeneratePolicy) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.opts.Degenerate == policy {
		return nil
	}
	opts := w.opts
	opts.Degenerate = policy
	return w.applyLocked(opts)
}

// applyLocked stores opts and rebuilds the last profile with them.
func (w *Workbench) applyLocked(opts revolve.Options) error {
	if len(w.profile) == 0 {
		w.opts = opts
		return nil
	}
	if _, err := w.generateLocked(w.profile, opts); err != nil {
		return err
	}
	w.opts = opts
	return nil
}

func (w *Workbench) generateLocked(profile revolve.Profile, opts revolve.Options) (*Snapshot, error) {
	start := time.Now()
	mesh, err := revolve.Generate(profile, opts)
	if err != nil {
		if errors.Is(err, revolve.ErrEmptyProfile) {
			w.log.Info("nothing to generate", zap.Int("points", len(profile)))
		} else {
			w.log.Warn("mesh generation failed", zap.Error(err))
		}
		return nil, fmt.Errorf("regenerate: %w", err)
	}

	w.gen++
	snap := &Snapshot{
		Mesh:       mesh,
		Profile:    profile,
		Options:    opts,
		Generation: w.gen,
		Elapsed:    time.Since(start),
	}
	w.current.Store(snap)

	w.log.Debug("mesh regenerated",
		zap.Uint64("generation", snap.Generation),
		zap.Int("points", len(profile)),
		zap.Int("edges", opts.Edges),
		zap.Bool("close_seam", opts.CloseSeam),
		zap.Int("triangles", mesh.TriangleCount()),
		zap.Duration("elapsed", snap.Elapsed),
	)
	return snap, nil
}

// Transform returns the current model transform.
func (w *Workbench) Transform() view.ModelTransform {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.transform
}

// SetRotation sets the model rotation in degrees.
func (w *Workbench) SetRotation(x, y, z int) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.transform = w.transform.WithRotation(x, y, z)
}

// SetScale sets the uniform model scale.
func (w *Workbench) SetScale(s float32) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.transform = w.transform.WithScale(s)
}

// ResetRotation zeroes the model rotation.
func (w *Workbench) ResetRotation() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.transform = w.transform.ResetRotation()
}

// ResetScale restores unit scale.
func (w *Workbench) ResetScale() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.transform = w.transform.ResetScale()
}
