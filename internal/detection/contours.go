package detection

import "image"

// ccwOffsets lists the 8 neighbor offsets in counterclockwise order starting
// east: E, NE, N, NW, W, SW, S, SE. Boundary tracing scans this ring in both
// directions, counterclockwise by ascending index and clockwise by
// descending index.
var ccwOffsets = [8]Point{
	{0, 1}, {-1, 1}, {-1, 0}, {-1, -1},
	{0, -1}, {1, -1}, {1, 0}, {1, 1},
}

// FindContours traces the outer boundary of every 8-connected foreground
// component in a binary mask and returns the boundaries keyed by discovery
// order ("contour_0", "contour_1", ...).
//
// # Algorithm
//
// The mask is scanned in row-major order. The first unclaimed foreground
// pixel of a component is necessarily its topmost-leftmost pixel, which
// always lies on the outer boundary. From there the boundary is walked with
// a border-following scan of the 8-neighborhood (the classic
// Suzuki-style walk: find the predecessor clockwise from the west neighbor,
// then repeatedly take the next counterclockwise foreground neighbor after
// the previous position) until the first edge of the walk repeats. The whole
// component is then flood-filled so later scan rows do not rediscover it.
//
// Only outer boundaries are produced. Boundaries of holes inside a component
// are never walked, and no nesting hierarchy is tracked, so a component
// sitting inside another component's hole still yields its own contour.
//
// Runs of boundary pixels that continue in the same direction are
// compressed to their endpoints, so an axis-aligned rectangle reduces to its
// four corners. A single isolated pixel yields a one-point contour, which
// downstream filtering treats as degenerate.
//
// The returned map is never nil; a mask with no foreground yields an empty
// map.
func FindContours(mask *image.Gray) ContourMap {
	return traceComponents(maskGrid(mask))
}

// maskGrid snapshots a mask into a bounds-free boolean grid. Any nonzero
// pixel counts as foreground.
func maskGrid(mask *image.Gray) [][]bool {
	b := mask.Bounds()
	h, w := b.Dy(), b.Dx()
	grid := make([][]bool, h)
	for r := 0; r < h; r++ {
		grid[r] = make([]bool, w)
		for c := 0; c < w; c++ {
			grid[r][c] = mask.GrayAt(b.Min.X+c, b.Min.Y+r).Y > 0
		}
	}
	return grid
}

func traceComponents(grid [][]bool) ContourMap {
	h := len(grid)
	w := 0
	if h > 0 {
		w = len(grid[0])
	}
	visited := make([][]bool, h)
	for r := range visited {
		visited[r] = make([]bool, w)
	}

	contours := ContourMap{}
	index := 0
	for r := 0; r < h; r++ {
		for c := 0; c < w; c++ {
			if !grid[r][c] || visited[r][c] {
				continue
			}
			start := Point{Row: r, Col: c}
			markComponent(grid, visited, start)
			contours[ContourID(index)] = compressCollinear(traceBoundary(grid, start))
			index++
		}
	}
	return contours
}

// markComponent flood-fills the 8-connected component containing start,
// claiming every pixel in visited.
func markComponent(grid [][]bool, visited [][]bool, start Point) {
	stack := []Point{start}
	visited[start.Row][start.Col] = true
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for dr := -1; dr <= 1; dr++ {
			for dc := -1; dc <= 1; dc++ {
				if dr == 0 && dc == 0 {
					continue
				}
				n := Point{Row: p.Row + dr, Col: p.Col + dc}
				if fg(grid, n.Row, n.Col) && !visited[n.Row][n.Col] {
					visited[n.Row][n.Col] = true
					stack = append(stack, n)
				}
			}
		}
	}
}

// traceBoundary walks the outer boundary of the component whose
// topmost-leftmost pixel is start and returns the ordered pixel sequence.
func traceBoundary(grid [][]bool, start Point) Contour {
	// Predecessor search: clockwise from the west neighbor, which is
	// background for a topmost-leftmost start pixel.
	firstDir := -1
	for i := 0; i < 8; i++ {
		di := (4 - i + 8) % 8
		d := ccwOffsets[di]
		if fg(grid, start.Row+d.Row, start.Col+d.Col) {
			firstDir = di
			break
		}
	}
	if firstDir < 0 {
		// Isolated pixel.
		return Contour{start}
	}
	first := Point{Row: start.Row + ccwOffsets[firstDir].Row, Col: start.Col + ccwOffsets[firstDir].Col}

	prev := first
	cur := start
	contour := Contour{start}
	for {
		pi := offsetIndex(Point{Row: prev.Row - cur.Row, Col: prev.Col - cur.Col})
		var next Point
		for i := 1; i <= 8; i++ {
			d := ccwOffsets[(pi+i)%8]
			cand := Point{Row: cur.Row + d.Row, Col: cur.Col + d.Col}
			if fg(grid, cand.Row, cand.Col) {
				next = cand
				break
			}
		}
		// The walk is complete when it is about to repeat its first
		// edge, the step from first onto start.
		if next == start && cur == first {
			return contour
		}
		prev, cur = cur, next
		contour = append(contour, cur)
	}
}

// compressCollinear removes points that continue a straight run, keeping
// only the endpoints of each run. The contour is treated as cyclic, so runs
// that wrap across the sequence boundary compress as well.
func compressCollinear(c Contour) Contour {
	n := len(c)
	if n < 3 {
		return c
	}
	out := make(Contour, 0, n)
	for i := 0; i < n; i++ {
		prev := c[(i+n-1)%n]
		cur := c[i]
		next := c[(i+1)%n]
		in := Point{Row: cur.Row - prev.Row, Col: cur.Col - prev.Col}
		outDir := Point{Row: next.Row - cur.Row, Col: next.Col - cur.Col}
		if in != outDir {
			out = append(out, cur)
		}
	}
	return out
}

func offsetIndex(d Point) int {
	for i, o := range ccwOffsets {
		if o == d {
			return i
		}
	}
	return 0
}

func fg(grid [][]bool, r, c int) bool {
	return r >= 0 && r < len(grid) && c >= 0 && c < len(grid[r]) && grid[r][c]
}
