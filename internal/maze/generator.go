// Package maze generates perfect mazes over a rectangular grid and
// materializes them as solid wall rectangles in world coordinates.
package maze

import (
	"math/rand"

	"github.com/vovakirdan/mazequest/internal/core"
)

// Maze holds the generated grid structure plus the materialized wall set.
// Vertical holds (cols+1)×rows edge flags, Horizontal holds cols×(rows+1);
// a true flag means the wall on that cell edge is present.
type Maze struct {
	Cols, Rows int
	CellSize   int
	Thickness  int

	Vertical   [][]bool // Vertical[x][y], x in [0, cols], y in [0, rows)
	Horizontal [][]bool // Horizontal[x][y], x in [0, cols), y in [0, rows]

	Walls []core.Rect // Remaining cell-edge walls plus the four borders
}

// Generate builds a perfect maze filling a window of the given size.
// The grid is cols×rows with cols = width/cellSize and rows = height/cellSize;
// a cell size larger than the window yields a trivial maze with only border
// walls, which is a valid degenerate case rather than an error. The same
// holds for a non-positive cell size or window: the grid collapses to zero
// cells and only the border walls are produced.
//
// The passage graph is carved with an iterative randomized depth-first
// search, so it is always a spanning tree of the grid: every cell reachable
// from every other through exactly one simple path.
func Generate(width, height, wallThickness, cellSize int, rng *rand.Rand) *Maze {
	var cols, rows int
	if cellSize > 0 {
		cols = width / cellSize
		rows = height / cellSize
	}
	if cols < 0 {
		cols = 0
	}
	if rows < 0 {
		rows = 0
	}

	m := &Maze{
		Cols:      cols,
		Rows:      rows,
		CellSize:  cellSize,
		Thickness: wallThickness,
	}
	m.initGrids()

	if cols > 0 && rows > 0 {
		start := cell{x: rng.Intn(cols), y: rng.Intn(rows)}
		m.carve(start, rng)
	}

	m.Walls = m.buildWalls(width, height)
	return m
}

type cell struct {
	x, y int
}

// initGrids allocates the edge-flag grids with every wall present.
func (m *Maze) initGrids() {
	m.Vertical = make([][]bool, m.Cols+1)
	for x := range m.Vertical {
		m.Vertical[x] = make([]bool, m.Rows)
		for y := range m.Vertical[x] {
			m.Vertical[x][y] = true
		}
	}
	m.Horizontal = make([][]bool, m.Cols)
	for x := range m.Horizontal {
		m.Horizontal[x] = make([]bool, m.Rows+1)
		for y := range m.Horizontal[x] {
			m.Horizontal[x][y] = true
		}
	}
}

// carve runs the randomized DFS from start, removing the wall between each
// newly visited cell and its predecessor. An explicit stack avoids blowing
// the call stack on large grids.
func (m *Maze) carve(start cell, rng *rand.Rand) {
	visited := make([][]bool, m.Cols)
	for x := range visited {
		visited[x] = make([]bool, m.Rows)
	}

	visited[start.x][start.y] = true
	stack := []cell{start}

	for len(stack) > 0 {
		cur := stack[len(stack)-1]

		next, ok := m.pickUnvisitedNeighbor(cur, visited, rng)
		if !ok {
			stack = stack[:len(stack)-1]
			continue
		}

		m.removeWallBetween(cur, next)
		visited[next.x][next.y] = true
		stack = append(stack, next)
	}
}

// pickUnvisitedNeighbor shuffles the four axis directions and returns the
// first in-bounds unvisited neighbor of c, if any.
func (m *Maze) pickUnvisitedNeighbor(c cell, visited [][]bool, rng *rand.Rand) (cell, bool) {
	dirs := [4][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	rng.Shuffle(len(dirs), func(i, j int) {
		dirs[i], dirs[j] = dirs[j], dirs[i]
	})

	for _, d := range dirs {
		nx, ny := c.x+d[0], c.y+d[1]
		if nx < 0 || nx >= m.Cols || ny < 0 || ny >= m.Rows {
			continue
		}
		if !visited[nx][ny] {
			return cell{x: nx, y: ny}, true
		}
	}
	return cell{}, false
}

// removeWallBetween clears the edge flag shared by two adjacent cells.
func (m *Maze) removeWallBetween(a, b cell) {
	switch {
	case b.x == a.x+1: // right
		m.Vertical[a.x+1][a.y] = false
	case b.x == a.x-1: // left
		m.Vertical[a.x][a.y] = false
	case b.y == a.y+1: // down
		m.Horizontal[a.x][a.y+1] = false
	case b.y == a.y-1: // up
		m.Horizontal[a.x][a.y] = false
	}
}

// buildWalls converts the remaining edge flags into wall rectangles and
// appends the four full-length window border walls.
func (m *Maze) buildWalls(width, height int) []core.Rect {
	walls := make([]core.Rect, 0, (m.Cols+1)*m.Rows+m.Cols*(m.Rows+1)+4)

	for x := 0; x <= m.Cols; x++ {
		for y := 0; y < m.Rows; y++ {
			if m.Vertical[x][y] {
				walls = append(walls, core.NewRect(x*m.CellSize, y*m.CellSize, m.Thickness, m.CellSize))
			}
		}
	}
	for x := 0; x < m.Cols; x++ {
		for y := 0; y <= m.Rows; y++ {
			if m.Horizontal[x][y] {
				walls = append(walls, core.NewRect(x*m.CellSize, y*m.CellSize, m.CellSize, m.Thickness))
			}
		}
	}

	// Window borders
	walls = append(walls,
		core.NewRect(0, 0, width, m.Thickness),                // top
		core.NewRect(0, height-m.Thickness, width, m.Thickness), // bottom
		core.NewRect(0, 0, m.Thickness, height),               // left
		core.NewRect(width-m.Thickness, 0, m.Thickness, height), // right
	)
	return walls
}

// OpenPassages counts the internal cell edges with no wall. A perfect maze
// over cols×rows cells has exactly cols*rows-1 of them.
func (m *Maze) OpenPassages() int {
	open := 0
	for x := 1; x < m.Cols; x++ { // internal vertical edges only
		for y := 0; y < m.Rows; y++ {
			if !m.Vertical[x][y] {
				open++
			}
		}
	}
	for x := 0; x < m.Cols; x++ {
		for y := 1; y < m.Rows; y++ { // internal horizontal edges only
			if !m.Horizontal[x][y] {
				open++
			}
		}
	}
	return open
}

// Neighbors returns the cells reachable from (cx, cy) through open passages.
func (m *Maze) Neighbors(cx, cy int) [][2]int {
	var out [][2]int
	if cx > 0 && !m.Vertical[cx][cy] {
		out = append(out, [2]int{cx - 1, cy})
	}
	if cx < m.Cols-1 && !m.Vertical[cx+1][cy] {
		out = append(out, [2]int{cx + 1, cy})
	}
	if cy > 0 && !m.Horizontal[cx][cy] {
		out = append(out, [2]int{cx, cy - 1})
	}
	if cy < m.Rows-1 && !m.Horizontal[cx][cy+1] {
		out = append(out, [2]int{cx, cy + 1})
	}
	return out
}

// CountPaths returns the number of distinct simple paths between two cells
// in the passage graph. In a perfect maze this is exactly 1 for any pair.
func (m *Maze) CountPaths(fromX, fromY, toX, toY int) int {
	visited := make(map[[2]int]bool)
	return m.countPathsDFS([2]int{fromX, fromY}, [2]int{toX, toY}, visited)
}

func (m *Maze) countPathsDFS(cur, goal [2]int, visited map[[2]int]bool) int {
	if cur == goal {
		return 1
	}
	visited[cur] = true
	paths := 0
	for _, n := range m.Neighbors(cur[0], cur[1]) {
		if !visited[n] {
			paths += m.countPathsDFS(n, goal, visited)
		}
	}
	visited[cur] = false
	return paths
}

// Connected reports whether every cell is reachable from cell (0, 0).
func (m *Maze) Connected() bool {
	if m.Cols == 0 || m.Rows == 0 {
		return true
	}
	seen := make(map[[2]int]bool)
	queue := [][2]int{{0, 0}}
	seen[[2]int{0, 0}] = true
	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		for _, n := range m.Neighbors(c[0], c[1]) {
			if !seen[n] {
				seen[n] = true
				queue = append(queue, n)
			}
		}
	}
	return len(seen) == m.Cols*m.Rows
}
