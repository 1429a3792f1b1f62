package maze

import "github.com/vovakirdan/ghostmaze/internal/core"

// Patch is a 4-connected set of non-Wall cells.
type Patch []core.Pos

// Contains reports whether p belongs to the patch.
func (pt Patch) Contains(p core.Pos) bool {
	for _, q := range pt {
		if q == p {
			return true
		}
	}
	return false
}

// Patches returns every 4-connected component of non-Wall tiles.
// Connectivity does not wrap around the edges. Patches are ordered by
// their first cell in row-major order.
func Patches(g *Grid) []Patch {
	seen := make([]bool, len(g.Tiles))
	var patches []Patch

	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			start := core.Pos{X: x, Y: y}
			if seen[g.index(start)] || g.At(start) == Wall {
				continue
			}
			patches = append(patches, flood(g, start, seen))
		}
	}
	return patches
}

// flood collects the patch around start with an explicit worklist.
func flood(g *Grid, start core.Pos, seen []bool) Patch {
	var patch Patch
	work := []core.Pos{start}
	seen[g.index(start)] = true

	for len(work) > 0 {
		p := work[len(work)-1]
		work = work[:len(work)-1]
		patch = append(patch, p)

		for _, d := range core.Cardinals {
			n := p.Add(d.Delta())
			if !g.InBounds(n) || g.At(n) == Wall || seen[g.index(n)] {
				continue
			}
			seen[g.index(n)] = true
			work = append(work, n)
		}
	}
	return patch
}
