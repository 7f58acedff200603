package generator

import (
	"fmt"

	"github.com/jumperroute/router/geom"
	"github.com/jumperroute/router/hypergraph"
)

// Orientation selects which of InnerColChannelPointCount and
// InnerRowChannelPointCount governs the vertical (pad-to-pad, same row)
// channels versus the horizontal (pad-to-pad, same column) channels.
type Orientation int

const (
	// OrientationVertical routes InnerColChannelPointCount along vertical
	// channel edges (between side-by-side pads) and
	// InnerRowChannelPointCount along horizontal ones (between stacked
	// pads). This is the default.
	OrientationVertical Orientation = iota
	// OrientationHorizontal swaps the two roles.
	OrientationHorizontal
)

// GridOptions parameterizes a deterministic pad-lattice footprint: a
// Cols×Rows grid of crossable pad regions, connected pad-to-pad by inner
// channel ports and ringed by an outer perimeter of regions connected by
// outer channel ports. Mirrors the teacher's GridOptions /
// DefaultGridOptions construction idiom.
type GridOptions struct {
	Cols, Rows int

	MarginX, MarginY             float64
	OuterPaddingX, OuterPaddingY float64

	InnerColChannelPointCount int
	InnerRowChannelPointCount int

	// OuterChannelXPointCount and OuterChannelYPointCount default to
	// InnerColChannelPointCount and InnerRowChannelPointCount
	// (post-orientation) respectively when left at zero.
	OuterChannelXPointCount int
	OuterChannelYPointCount int

	// RegionsBetweenPads scales each pad cell's side length; higher values
	// spread pads further apart, leaving more room for channel ports.
	RegionsBetweenPads int

	Orientation Orientation

	// Center, if non-nil, recenters the pad lattice (excluding the outer
	// ring) on this point after layout.
	Center *geom.Point
	// Bounds, if non-nil, overrides MarginX/MarginY and cell sizing: the
	// pad lattice starts at Bounds' min corner with square cells sized to
	// the smaller of the two per-axis divisions, so it spans Bounds fully
	// only along the tighter axis.
	Bounds *geom.Bounds
}

// DefaultGridOptions returns a modest 4x4 grid with two channel points per
// inner edge and a 20-unit outer margin, matching the scale the router
// package's own hand-built test fixtures use.
func DefaultGridOptions() GridOptions {
	return GridOptions{
		Cols: 4, Rows: 4,
		MarginX: 10, MarginY: 10,
		OuterPaddingX: 20, OuterPaddingY: 20,
		InnerColChannelPointCount: 2,
		InnerRowChannelPointCount: 2,
		RegionsBetweenPads:        1,
		Orientation:               OrientationVertical,
	}
}

// GridResult is the output of GenerateGrid: the constructed graph plus the
// region id layout CreateProblem needs to place connection endpoints.
type GridResult struct {
	Graph *hypergraph.Graph

	// PadRegions is row-major: PadRegions[r*Cols+c] is pad (r,c).
	PadRegions []hypergraph.RegionID

	// PerimeterRegions is the outer ring in cyclic order (top row
	// left-to-right, right column top-to-bottom, bottom row
	// right-to-left, left column bottom-to-top), suitable for treating as
	// a circular sequence the way a single region's Ports list is.
	PerimeterRegions []hypergraph.RegionID
}

type edgeDir int

const (
	dirNorth edgeDir = iota
	dirEast
	dirSouth
	dirWest
)

// GenerateGrid lays out a deterministic pad lattice and outer perimeter
// ring per opts and returns the resulting graph.
func GenerateGrid(opts GridOptions) (*GridResult, error) {
	if opts.Cols <= 0 || opts.Rows <= 0 {
		return nil, fmt.Errorf("%w: cols and rows must be positive, got %dx%d", ErrInvalidGridOptions, opts.Cols, opts.Rows)
	}
	if opts.InnerColChannelPointCount < 0 || opts.InnerRowChannelPointCount < 0 {
		return nil, fmt.Errorf("%w: channel point counts must be non-negative", ErrInvalidGridOptions)
	}

	colPts, rowPts := opts.InnerColChannelPointCount, opts.InnerRowChannelPointCount
	if opts.Orientation == OrientationHorizontal {
		colPts, rowPts = rowPts, colPts
	}
	outerXPts, outerYPts := opts.OuterChannelXPointCount, opts.OuterChannelYPointCount
	if outerXPts == 0 {
		outerXPts = colPts
	}
	if outerYPts == 0 {
		outerYPts = rowPts
	}

	cellSize := 10.0 * float64(maxInt(opts.RegionsBetweenPads, 1))
	originX, originY := opts.MarginX, opts.MarginY
	if opts.Bounds != nil {
		originX, originY = opts.Bounds.MinX, opts.Bounds.MinY
		cellSize = minFloat(opts.Bounds.Width()/float64(opts.Cols), opts.Bounds.Height()/float64(opts.Rows))
	}
	if opts.Center != nil {
		curCenter := geom.Point{
			X: originX + cellSize*float64(opts.Cols)/2,
			Y: originY + cellSize*float64(opts.Rows)/2,
		}
		originX += opts.Center.X - curCenter.X
		originY += opts.Center.Y - curCenter.Y
	}

	g := hypergraph.NewGraph()
	pads := make([]hypergraph.RegionID, opts.Cols*opts.Rows)
	var nextPort hypergraph.PortID

	padID := func(r, c int) hypergraph.RegionID { return hypergraph.RegionID(r*opts.Cols + c) }
	padBounds := func(r, c int) geom.Bounds {
		return geom.Bounds{
			MinX: originX + float64(c)*cellSize, MinY: originY + float64(r)*cellSize,
			MaxX: originX + float64(c+1)*cellSize, MaxY: originY + float64(r+1)*cellSize,
		}
	}

	for r := 0; r < opts.Rows; r++ {
		for c := 0; c < opts.Cols; c++ {
			id := padID(r, c)
			if err := g.AddRegion(id, padBounds(r, c), true); err != nil {
				return nil, err
			}
			pads[r*opts.Cols+c] = id
		}
	}

	// Vertical channels: between (r,c) and (r,c+1), sharing the edge
	// x = padBounds(r,c).MaxX.
	for r := 0; r < opts.Rows; r++ {
		for c := 0; c < opts.Cols-1; c++ {
			b := padBounds(r, c)
			x := b.MaxX
			for k := 0; k < colPts; k++ {
				y := b.MinY + cellSize*float64(k+1)/float64(colPts+1)
				if err := g.AddPort(nextPort, padID(r, c), padID(r, c+1), geom.Point{X: x, Y: y}); err != nil {
					return nil, err
				}
				nextPort++
			}
		}
	}

	// Horizontal channels: between (r,c) and (r+1,c), sharing the edge
	// y = padBounds(r,c).MaxY.
	for r := 0; r < opts.Rows-1; r++ {
		for c := 0; c < opts.Cols; c++ {
			b := padBounds(r, c)
			y := b.MaxY
			for k := 0; k < rowPts; k++ {
				x := b.MinX + cellSize*float64(k+1)/float64(rowPts+1)
				if err := g.AddPort(nextPort, padID(r, c), padID(r+1, c), geom.Point{X: x, Y: y}); err != nil {
					return nil, err
				}
				nextPort++
			}
		}
	}

	type ringEntry struct {
		r, c int
		dir  edgeDir
	}
	var ring []ringEntry
	for c := 0; c < opts.Cols; c++ {
		ring = append(ring, ringEntry{0, c, dirNorth})
	}
	for r := 0; r < opts.Rows; r++ {
		ring = append(ring, ringEntry{r, opts.Cols - 1, dirEast})
	}
	for c := opts.Cols - 1; c >= 0; c-- {
		ring = append(ring, ringEntry{opts.Rows - 1, c, dirSouth})
	}
	for r := opts.Rows - 1; r >= 0; r-- {
		ring = append(ring, ringEntry{r, 0, dirWest})
	}

	nextRegion := hypergraph.RegionID(opts.Cols * opts.Rows)
	perimeter := make([]hypergraph.RegionID, 0, len(ring))
	for _, e := range ring {
		pad := padID(e.r, e.c)
		b := padBounds(e.r, e.c)

		var outer geom.Bounds
		var pts int
		var edgeFrom, edgeTo geom.Point
		switch e.dir {
		case dirNorth:
			outer = geom.Bounds{MinX: b.MinX, MaxX: b.MaxX, MinY: b.MinY - opts.OuterPaddingY, MaxY: b.MinY}
			pts = outerXPts
			edgeFrom, edgeTo = geom.Point{X: b.MinX, Y: b.MinY}, geom.Point{X: b.MaxX, Y: b.MinY}
		case dirSouth:
			outer = geom.Bounds{MinX: b.MinX, MaxX: b.MaxX, MinY: b.MaxY, MaxY: b.MaxY + opts.OuterPaddingY}
			pts = outerXPts
			edgeFrom, edgeTo = geom.Point{X: b.MinX, Y: b.MaxY}, geom.Point{X: b.MaxX, Y: b.MaxY}
		case dirEast:
			outer = geom.Bounds{MinX: b.MaxX, MaxX: b.MaxX + opts.OuterPaddingX, MinY: b.MinY, MaxY: b.MaxY}
			pts = outerYPts
			edgeFrom, edgeTo = geom.Point{X: b.MaxX, Y: b.MinY}, geom.Point{X: b.MaxX, Y: b.MaxY}
		default: // dirWest
			outer = geom.Bounds{MinX: b.MinX - opts.OuterPaddingX, MaxX: b.MinX, MinY: b.MinY, MaxY: b.MaxY}
			pts = outerYPts
			edgeFrom, edgeTo = geom.Point{X: b.MinX, Y: b.MinY}, geom.Point{X: b.MinX, Y: b.MaxY}
		}

		id := nextRegion
		nextRegion++
		if err := g.AddRegion(id, outer, true); err != nil {
			return nil, err
		}
		for k := 0; k < pts; k++ {
			t := float64(k+1) / float64(pts+1)
			pos := geom.Point{
				X: edgeFrom.X + (edgeTo.X-edgeFrom.X)*t,
				Y: edgeFrom.Y + (edgeTo.Y-edgeFrom.Y)*t,
			}
			if err := g.AddPort(nextPort, pad, id, pos); err != nil {
				return nil, err
			}
			nextPort++
		}
		perimeter = append(perimeter, id)
	}

	return &GridResult{Graph: g, PadRegions: pads, PerimeterRegions: perimeter}, nil
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}

	return b
}

func minFloat(a, b float64) float64 {
	if a < b {
		return a
	}

	return b
}
