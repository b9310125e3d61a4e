// lathetool is a CLI utility for inspecting lathe profile files without
// opening a window.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/lathe/internal/export"
	"github.com/Faultbox/lathe/internal/logger"
	"github.com/Faultbox/lathe/internal/sketch"
	"github.com/Faultbox/lathe/pkg/revolve"
)

func main() {
	if len(os.Args) < 2 {
		printUsage(os.Stderr)
		os.Exit(1)
	}

	// Logs go to stderr so command output stays clean.
	level := os.Getenv("LATHE_LOG_LEVEL")
	if level == "" {
		level = "warn"
	}
	logger.Log = logger.New(level, logger.FileConfig{}, os.Stderr)
	logger.Sugar = logger.Log.Sugar()
	defer logger.Sync()

	command := os.Args[1]
	args := os.Args[2:]

	var err error
	switch command {
	case "info":
		err = cmdInfo(os.Stdout, args)
	case "steps":
		err = cmdSteps(os.Stdout)
	case "dump":
		err = cmdDump(os.Stdout, args)
	case "stl":
		err = cmdSTL(os.Stdout, args)
	case "help", "-h", "--help":
		printUsage(os.Stdout)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage(os.Stderr)
		os.Exit(1)
	}

	if err != nil {
		logger.Error("command failed", zap.String("command", command), zap.Error(err))
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, `lathetool - surface of revolution utility

Usage:
  lathetool <command> [options]

Commands:
  info [-edges N] [-close-seam] [-degenerate P] <profile.yaml>
                                     Show mesh statistics for a profile
  dump [-n N] [options] <profile.yaml>
                                     Print generated vertices
  stl [options] <profile.yaml> <out.stl>
                                     Export the mesh as binary STL
  steps                              List the offered step counts

Examples:
  lathetool info vase.yaml
  lathetool info -edges 36 -close-seam vase.yaml
  lathetool dump -n 6 vase.yaml
  lathetool stl -edges 72 -close-seam vase.yaml vase.stl`)
}

// meshFlags are the generation overrides shared by info and dump.
type meshFlags struct {
	edges      *int
	closeSeam  *bool
	degenerate *string
}

func addMeshFlags(fs *flag.FlagSet) meshFlags {
	return meshFlags{
		edges:      fs.Int("edges", 0, "Step count (0 = from file, else default)"),
		closeSeam:  fs.Bool("close-seam", false, "Stitch the last profile band back to the first"),
		degenerate: fs.String("degenerate", "", "Degenerate face policy: skip, zero or nan"),
	}
}

// options resolves generation options: defaults, then the file, then flags.
func (m meshFlags) options(f *sketch.File) (revolve.Options, error) {
	opts := f.Options(revolve.DefaultOptions())
	if *m.edges != 0 {
		opts.Edges = *m.edges
	}
	if *m.closeSeam {
		opts.CloseSeam = true
	}
	if *m.degenerate != "" {
		policy, err := revolve.ParseDegeneratePolicy(*m.degenerate)
		if err != nil {
			return opts, err
		}
		opts.Degenerate = policy
	}
	return opts, nil
}

// generate loads a profile and builds its mesh.
func generate(path string, m meshFlags) (*sketch.File, revolve.Options, *revolve.Mesh, error) {
	f, err := sketch.LoadFile(path)
	if err != nil {
		return nil, revolve.Options{}, nil, err
	}
	opts, err := m.options(f)
	if err != nil {
		return nil, opts, nil, err
	}
	mesh, err := revolve.Generate(f.Profile(), opts)
	if err != nil {
		return nil, opts, nil, fmt.Errorf("generating %s: %w", path, err)
	}
	logger.Debug("mesh generated",
		zap.String("path", path),
		zap.Int("edges", opts.Edges),
		zap.Int("vertices", mesh.VertexCount()))
	return f, opts, mesh, nil
}

func cmdInfo(w io.Writer, args []string) error {
	fs := flag.NewFlagSet("info", flag.ContinueOnError)
	m := addMeshFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 1 {
		return fmt.Errorf("usage: lathetool info [options] <profile.yaml>")
	}

	path := fs.Arg(0)
	f, opts, mesh, err := generate(path, m)
	if err != nil {
		return err
	}

	stats := collectStats(mesh)
	fmt.Fprintf(w, "Profile:    %s\n", path)
	fmt.Fprintf(w, "Points:     %d\n", len(f.Points))
	fmt.Fprintf(w, "Edges:      %d (%d degrees per step)\n", opts.Edges, revolve.AngleStep(opts.Edges))
	fmt.Fprintf(w, "Close seam: %t\n", opts.CloseSeam)
	fmt.Fprintf(w, "Degenerate: %s\n", opts.Degenerate)
	fmt.Fprintf(w, "Quads:      %d\n", mesh.Quads)
	fmt.Fprintf(w, "Triangles:  %d\n", mesh.TriangleCount())
	fmt.Fprintf(w, "Vertices:   %d\n", mesh.VertexCount())
	if !mesh.IsEmpty() {
		b := mesh.Bounds
		fmt.Fprintf(w, "Bounds:     (%.3f, %.3f, %.3f) - (%.3f, %.3f, %.3f)\n",
			b.Min.X, b.Min.Y, b.Min.Z, b.Max.X, b.Max.Y, b.Max.Z)
	}
	fmt.Fprintf(w, "Normals:    %d unit, %d short, %d zero, %d NaN\n",
		stats.unit, stats.short, stats.zero, stats.nan)
	return nil
}

func cmdSteps(w io.Writer) error {
	fmt.Fprintln(w, "Edges  Degrees")
	for _, n := range revolve.StepCounts {
		fmt.Fprintf(w, "%5d  %7d\n", n, revolve.AngleStep(n))
	}
	return nil
}

func cmdDump(w io.Writer, args []string) error {
	fs := flag.NewFlagSet("dump", flag.ContinueOnError)
	limit := fs.Int("n", 0, "Limit output to N vertices (0 = all)")
	m := addMeshFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 1 {
		return fmt.Errorf("usage: lathetool dump [options] <profile.yaml>")
	}

	_, _, mesh, err := generate(fs.Arg(0), m)
	if err != nil {
		return err
	}

	for i, v := range mesh.Vertices {
		if *limit > 0 && i >= *limit {
			fmt.Fprintf(w, "... and %d more\n", mesh.VertexCount()-*limit)
			break
		}
		if i%3 == 0 {
			fmt.Fprintf(w, "# triangle %d\n", i/3)
		}
		fmt.Fprintf(w, "v %9.5f %9.5f %9.5f  n %9.5f %9.5f %9.5f\n",
			v.Position.X, v.Position.Y, v.Position.Z,
			v.Normal.X, v.Normal.Y, v.Normal.Z)
	}
	return nil
}

func cmdSTL(w io.Writer, args []string) error {
	fs := flag.NewFlagSet("stl", flag.ContinueOnError)
	m := addMeshFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 2 {
		return fmt.Errorf("usage: lathetool stl [options] <profile.yaml> <out.stl>")
	}

	_, _, mesh, err := generate(fs.Arg(0), m)
	if err != nil {
		return err
	}

	out := fs.Arg(1)
	n, dropped, err := export.SaveSTL(out, mesh)
	if dropped > 0 {
		logger.Warn("skipped zero-area triangles", zap.Int("count", dropped))
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Wrote %d triangles to %s (%d degenerate skipped)\n", n, out, dropped)
	return nil
}

// normalStats counts vertex normals by length. Averaged normals are unit
// length only where both faces agree; "short" ones are the rest.
type normalStats struct {
	unit, short, zero, nan int
}

const unitTolerance = 1e-4

func collectStats(mesh *revolve.Mesh) normalStats {
	var s normalStats
	for _, v := range mesh.Vertices {
		n := v.Normal
		switch l := n.Length(); {
		case n.HasNaN():
			s.nan++
		case n.IsZero():
			s.zero++
		case l > 1-unitTolerance && l < 1+unitTolerance:
			s.unit++
		default:
			s.short++
		}
	}
	return s
}
