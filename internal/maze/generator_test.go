package maze

import (
	"math/rand"
	"testing"
)

func TestSpanningTreeAcrossSeeds(t *testing.T) {
	// A perfect maze is a spanning tree: connected, with exactly
	// cols*rows-1 open internal passages, for every seed.
	for seed := int64(0); seed < 50; seed++ {
		rng := rand.New(rand.NewSource(seed))
		m := Generate(640, 480, 20, 80, rng)

		if m.Cols != 8 || m.Rows != 6 {
			t.Fatalf("seed %d: grid is %dx%d, want 8x6", seed, m.Cols, m.Rows)
		}
		if !m.Connected() {
			t.Errorf("seed %d: maze has unreachable cells", seed)
		}
		if got, want := m.OpenPassages(), m.Cols*m.Rows-1; got != want {
			t.Errorf("seed %d: %d open passages, want %d", seed, got, want)
		}
	}
}

func TestExactlyOneRouteBetweenCorners(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	m := Generate(640, 480, 20, 80, rng)

	if paths := m.CountPaths(0, 0, 7, 5); paths != 1 {
		t.Errorf("found %d simple paths from (0,0) to (7,5), want exactly 1", paths)
	}
}

func TestDeterministicForSeed(t *testing.T) {
	m1 := Generate(640, 480, 20, 80, rand.New(rand.NewSource(42)))
	m2 := Generate(640, 480, 20, 80, rand.New(rand.NewSource(42)))

	if len(m1.Walls) != len(m2.Walls) {
		t.Fatalf("wall counts differ: %d vs %d", len(m1.Walls), len(m2.Walls))
	}
	for i := range m1.Walls {
		if m1.Walls[i] != m2.Walls[i] {
			t.Fatalf("wall %d differs: %+v vs %+v", i, m1.Walls[i], m2.Walls[i])
		}
	}
}

func TestDegenerateTinyWindow(t *testing.T) {
	// Cell size larger than the window: zero cells, borders only.
	rng := rand.New(rand.NewSource(1))
	m := Generate(60, 40, 5, 80, rng)

	if m.Cols != 0 || m.Rows != 0 {
		t.Fatalf("grid is %dx%d, want 0x0", m.Cols, m.Rows)
	}
	if len(m.Walls) != 4 {
		t.Errorf("got %d walls, want the 4 borders only", len(m.Walls))
	}
}

func TestSingleCellMaze(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	m := Generate(100, 100, 10, 100, rng)

	if m.Cols != 1 || m.Rows != 1 {
		t.Fatalf("grid is %dx%d, want 1x1", m.Cols, m.Rows)
	}
	if m.OpenPassages() != 0 {
		t.Errorf("single cell maze has %d open passages, want 0", m.OpenPassages())
	}
	// 4 cell edges + 4 borders
	if len(m.Walls) != 8 {
		t.Errorf("got %d walls, want 8", len(m.Walls))
	}
}

func TestWallGeometry(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	m := Generate(640, 480, 20, 80, rng)

	for _, w := range m.Walls {
		if w.W != 20 && w.H != 20 {
			// Every wall is either thickness-wide, thickness-tall, or a border.
			t.Errorf("wall %+v has neither dimension equal to thickness", w)
		}
		if w.X < 0 || w.Y < 0 || w.Right() > 640+20 || w.Bottom() > 480+20 {
			t.Errorf("wall %+v extends outside the window", w)
		}
	}
}

func TestNonPositiveCellSizeBordersOnly(t *testing.T) {
	// A config that parses but zeroes cell_size must degrade to the
	// borders-only maze, the same as an oversized cell, never panic.
	for _, cellSize := range []int{0, -80} {
		rng := rand.New(rand.NewSource(2))
		m := Generate(640, 480, 20, cellSize, rng)

		if m.Cols != 0 || m.Rows != 0 {
			t.Fatalf("cell size %d: grid is %dx%d, want 0x0", cellSize, m.Cols, m.Rows)
		}
		if len(m.Walls) != 4 {
			t.Errorf("cell size %d: got %d walls, want the 4 borders only", cellSize, len(m.Walls))
		}
	}
}
