package revolve

// Quad is one stitching step between two adjacent rings. It emits the
// triangles (A, B, C) and (A, D, B), in that order.
type Quad struct {
	A, B, C, D RingIndex
}

// Topology is the ordered list of quads stitched between rings.
type Topology []Quad

// Triangles returns the two triangles of q in emission order.
func (q Quad) Triangles() [2][3]RingIndex {
	return [2][3]RingIndex{
		{q.A, q.B, q.C},
		{q.A, q.D, q.B},
	}
}

// Triangulate stitches adjacent rings into quads.
//
// With closeSeam unset it walks the concatenated ring sequence the same way
// the sketching tool always has: for every flat index i in
// [width+1, len-width) the corners are i-width, i, i-width+1 and i-1. The
// walk never reaches the last ring as a band's lower edge, so the band
// between the last two rings is absent and both caps stay open. Steps that
// straddle a ring boundary produce zero-area slivers, and the first band is
// missing one triangle at 0°.
//
// With closeSeam set the same bands are emitted, but each one is a closed
// strip of exactly edges quads that wraps from the last angular step back to
// the first.
func Triangulate(rings Rings, closeSeam bool) Topology {
	if closeSeam {
		return triangulateClosed(rings)
	}

	width := rings.Width()
	size := rings.Len()
	if size-width <= width+1 {
		return nil
	}

	quads := make(Topology, 0, size-2*width-1)
	for i := width + 1; i < size-width; i++ {
		quads = append(quads, Quad{
			A: rings.flatIndex(i - width),
			B: rings.flatIndex(i),
			C: rings.flatIndex(i - width + 1),
			D: rings.flatIndex(i - 1),
		})
	}
	return quads
}

func triangulateClosed(rings Rings) Topology {
	edges := rings.Width() - 1
	bands := len(rings) - 2
	if edges < 1 || bands < 1 {
		return nil
	}

	quads := make(Topology, 0, bands*edges)
	for p := 0; p < bands; p++ {
		for s := 0; s < edges; s++ {
			next := (s + 1) % edges
			quads = append(quads, Quad{
				A: RingIndex{Profile: p + 1, Slot: s},
				B: RingIndex{Profile: p, Slot: next},
				C: RingIndex{Profile: p, Slot: s},
				D: RingIndex{Profile: p + 1, Slot: next},
			})
		}
	}
	return quads
}
