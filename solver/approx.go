package solver

import (
	"fmt"
	"runtime"
	"sync"

	"github.com/katalvlaran/latfield/lattice"
	"github.com/katalvlaran/latfield/linsys"
)

// SolveLattice computes an approximate least-squares solution of a
// lattice-structured system through the multi-resolution pipeline:
//
//	Stage A  solve a downscaled copy exactly, upsample → guess
//	Stage B  (Options.Tile) refine non-overlapping tiles in parallel
//	Stage C  (Options.CG) conjugate-gradient polish
//
// The returned vector always has exactly Π sizes entries and its true
// residual ‖A·x − b‖ never exceeds the guess's: of all intermediate
// estimates, the best one wins, with zeros as the final fallback. It
// never returns nil.
//
// Invalid options or sizes are caller bugs and panic; use
// Options.Validate to pre-flight untrusted configuration.
func SolveLattice(triplets []linsys.Triplet, rhs []float64, sizes []int, o Options) []float64 {
	if err := o.Validate(); err != nil {
		panic(fmt.Sprintf("solver: %v", err))
	}
	lat, err := lattice.New(sizes...)
	if err != nil {
		panic(fmt.Sprintf("solver: %v", err))
	}
	n := lat.Len()
	a := linsys.NewCSR(len(rhs), n, triplets)

	guess := coarseGuess(a, triplets, rhs, lat, o)
	best := guess
	bestRes := a.Residual(best, rhs)

	consider := func(x []float64) {
		if x == nil || !allFinite(x) {
			return
		}
		if res := a.Residual(x, rhs); res <= bestRes {
			best, bestRes = x, res
		}
	}

	current := guess
	if o.Tile {
		current = tileRefine(a, rhs, lat, guess, o.TileSize)
		consider(current)
	}
	if o.CG {
		m, y := a.Normal(rhs)
		consider(conjugateGradient(m, y, current, o.ErrorTolerance, o.MaxIterations))
	}
	return best
}

// coarseGuess runs Stage A: assemble the system at the downscaled
// resolution (through the caller's Assembler when provided, otherwise
// by algebraic restriction), solve it exactly and upsample. When the
// lattice cannot shrink, the full system is solved exactly instead.
// Falls back to zeros when the solve fails.
func coarseGuess(a *linsys.CSR, triplets []linsys.Triplet, rhs []float64, lat *lattice.Lattice, o Options) []float64 {
	sizes := lat.Sizes()
	coarseSizes := make([]int, len(sizes))
	shrunk := false
	for d, s := range sizes {
		c := (s + o.DownscaleFactor - 1) / o.DownscaleFactor
		if c < 2 {
			c = 2
		}
		if c > s {
			c = s
		}
		coarseSizes[d] = c
		if c < s {
			shrunk = true
		}
	}

	if !shrunk {
		// Already at coarse resolution: the exact solution is cheap
		// and is the best possible guess.
		if x := Solve(lat.Len(), triplets, rhs); x != nil {
			return x
		}
		return make([]float64, lat.Len())
	}

	coarseLat, err := lattice.New(coarseSizes...)
	if err != nil {
		return make([]float64, lat.Len())
	}

	var ct []linsys.Triplet
	var cr []float64
	if o.Assemble != nil {
		ct, cr = o.Assemble(coarseSizes)
	} else {
		ct = restrict(a, lat, coarseLat)
		cr = rhs
	}

	xc := Solve(coarseLat.Len(), ct, cr)
	if xc == nil {
		return make([]float64, lat.Len())
	}
	xg, err := lattice.Upscale(xc, coarseLat, lat)
	if err != nil {
		return make([]float64, lat.Len())
	}
	return xg
}

// restrict maps the fine system onto the coarse lattice through the
// upsampling operator: with x_fine ≈ U·x_coarse, each fine column's
// coefficient is distributed over the coarse corners of its rescaled
// position with n-linear weights, yielding A·U without re-running the
// constraint pipeline.
func restrict(a *linsys.CSR, fine, coarse *lattice.Lattice) []linsys.Triplet {
	dims := fine.NumDims()
	scale := make([]float64, dims)
	for d := 0; d < dims; d++ {
		if fine.Size(d) > 1 {
			scale[d] = float64(coarse.Size(d)-1) / float64(fine.Size(d)-1)
		}
	}

	rows, _ := a.Dims()
	out := make([]linsys.Triplet, 0, a.NNZ()*(1<<dims)/2)
	coords := make([]int, dims)
	pos := make([]float64, dims)
	for r := 0; r < rows; r++ {
		cols, vals := a.Row(r)
		for t, c := range cols {
			coords = fine.Coordinate(c, coords)
			for d := 0; d < dims; d++ {
				pos[d] = float64(coords[d]) * scale[d]
			}
			cell, ok := coarse.Locate(pos)
			if !ok {
				continue // cannot happen for a strict rescale
			}
			for mask := 0; mask < cell.NumCorners(); mask++ {
				flat, w := cell.Corner(mask)
				if w == 0 {
					continue
				}
				out = append(out, linsys.Triplet{Row: r, Col: flat, Value: vals[t] * w})
			}
		}
	}
	return out
}

// tile is one axis-aligned block of the lattice partition.
type tile struct {
	lo, hi []int // half-open [lo, hi) per axis
	rows   []int // equations touching the tile
}

// tileRefine runs Stage B: partition the lattice into tiles, solve
// each tile's reduced system exactly with boundary unknowns
// substituted from guess, and write the results back. Tiles own
// disjoint column ranges, so they run concurrently; equations that
// cross a boundary participate in every tile they touch.
func tileRefine(a *linsys.CSR, rhs []float64, lat *lattice.Lattice, guess []float64, tileSize int) []float64 {
	tiles := partition(lat, tileSize)
	if len(tiles) < 2 {
		return guess // a single tile would just repeat the exact solve
	}

	// Assign each equation to the tiles its columns touch.
	tileOf := make([]int, lat.Len())
	for ti := range tiles {
		forEachTilePoint(lat, &tiles[ti], func(flat int) { tileOf[flat] = ti })
	}
	rows, _ := a.Dims()
	seen := make([]int, len(tiles))
	for i := range seen {
		seen[i] = -1
	}
	for r := 0; r < rows; r++ {
		cols, _ := a.Row(r)
		for _, c := range cols {
			ti := tileOf[c]
			if seen[ti] != r {
				seen[ti] = r
				tiles[ti].rows = append(tiles[ti].rows, r)
			}
		}
	}

	out := make([]float64, len(guess))
	copy(out, guess)

	var wg sync.WaitGroup
	sem := make(chan struct{}, runtime.GOMAXPROCS(0))
	for ti := range tiles {
		wg.Add(1)
		sem <- struct{}{}
		go func(tl *tile) {
			defer wg.Done()
			defer func() { <-sem }()
			solveTile(a, rhs, lat, tl, guess, out)
		}(&tiles[ti])
	}
	wg.Wait()
	return out
}

// solveTile reduces the tile's equations to its interior columns,
// solves exactly and writes the tile region of out. On failure the
// region keeps the guess values already present in out.
func solveTile(a *linsys.CSR, rhs []float64, lat *lattice.Lattice, tl *tile, guess, out []float64) {
	dims := lat.NumDims()
	localSizes := make([]int, dims)
	for d := 0; d < dims; d++ {
		localSizes[d] = tl.hi[d] - tl.lo[d]
	}
	local, err := lattice.New(localSizes...)
	if err != nil {
		return
	}

	// Global flat index → local flat index; absent means outside.
	toLocal := make(map[int]int, local.Len())
	globalOf := make([]int, local.Len())
	idx := 0
	forEachTilePoint(lat, tl, func(flat int) {
		toLocal[flat] = idx
		globalOf[idx] = flat
		idx++
	})

	triplets := make([]linsys.Triplet, 0, len(tl.rows)*4)
	localRHS := make([]float64, 0, len(tl.rows))
	for _, r := range tl.rows {
		cols, vals := a.Row(r)
		b := rhs[r]
		row := len(localRHS)
		inside := false
		for t, c := range cols {
			if lc, ok := toLocal[c]; ok {
				triplets = append(triplets, linsys.Triplet{Row: row, Col: lc, Value: vals[t]})
				inside = true
			} else {
				b -= vals[t] * guess[c] // move boundary unknowns to the rhs
			}
		}
		if !inside {
			continue
		}
		localRHS = append(localRHS, b)
	}

	x := Solve(local.Len(), triplets, localRHS)
	if x == nil {
		return
	}
	for li, g := range globalOf {
		out[g] = x[li]
	}
}

// partition splits every axis into runs of tileSize, merging a
// too-short trailing run into its predecessor so each tile edge stays
// at least MinTileSize (axes shorter than that form a single run).
func partition(lat *lattice.Lattice, tileSize int) []tile {
	dims := lat.NumDims()
	cuts := make([][]int, dims) // per-axis start offsets plus final size
	for d := 0; d < dims; d++ {
		size := lat.Size(d)
		starts := []int{0}
		for s := tileSize; s < size; s += tileSize {
			if size-s < MinTileSize {
				break
			}
			starts = append(starts, s)
		}
		cuts[d] = append(starts, size)
	}

	var tiles []tile
	counts := make([]int, dims)
	for {
		lo := make([]int, dims)
		hi := make([]int, dims)
		for d := 0; d < dims; d++ {
			lo[d] = cuts[d][counts[d]]
			hi[d] = cuts[d][counts[d]+1]
		}
		tiles = append(tiles, tile{lo: lo, hi: hi})

		d := 0
		for ; d < dims; d++ {
			counts[d]++
			if counts[d] < len(cuts[d])-1 {
				break
			}
			counts[d] = 0
		}
		if d == dims {
			return tiles
		}
	}
}

// forEachTilePoint visits every lattice point of the tile in row-major
// order.
func forEachTilePoint(lat *lattice.Lattice, tl *tile, visit func(flat int)) {
	dims := lat.NumDims()
	coords := make([]int, dims)
	copy(coords, tl.lo)
	for {
		visit(lat.Index(coords))
		d := 0
		for ; d < dims; d++ {
			coords[d]++
			if coords[d] < tl.hi[d] {
				break
			}
			coords[d] = tl.lo[d]
		}
		if d == dims {
			return
		}
	}
}
