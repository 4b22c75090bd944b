package geometry

import "testing"

func TestInterpolate(t *testing.T) {
	if got := Interpolate(5, 0, 10, 0, 20); got != 10 {
		t.Errorf("expected 10, got %d", got)
	}
	if got := Interpolate(0, 0, 10, 3, 20); got != 3 {
		t.Errorf("expected x0 at y0, got %d", got)
	}
	if got := Interpolate(10, 0, 10, 3, 20); got != 20 {
		t.Errorf("expected x1 at y1, got %d", got)
	}
}

func TestInterpolateHorizontalEdge(t *testing.T) {
	if got := Interpolate(4, 4, 4, 7, 9); got != 7 {
		t.Errorf("horizontal edge should return x0, got %d", got)
	}
}

func TestScanTriangleCoversRows(t *testing.T) {
	rows := map[int][2]int{}
	ScanTriangle([]Point{{0, 10}, {10, 0}, {0, 0}}, func(y, xFrom, xTo int) {
		if xFrom > xTo {
			t.Errorf("row %d has inverted span %d..%d", y, xFrom, xTo)
		}
		rows[y] = [2]int{xFrom, xTo}
	})

	if len(rows) != 11 {
		t.Fatalf("expected 11 rows, got %d", len(rows))
	}
	if rows[0] != [2]int{0, 10} {
		t.Errorf("top row should span 0..10, got %v", rows[0])
	}
	if rows[10] != [2]int{0, 0} {
		t.Errorf("bottom row should be the single apex pixel, got %v", rows[10])
	}
	for y, span := range rows {
		if span[0] < 0 || span[1] > 10 {
			t.Errorf("row %d span %v escapes the triangle", y, span)
		}
	}
}

func TestScanTriangleCoversCentroid(t *testing.T) {
	tri := []Point{{400, 280}, {391, 305}, {408, 305}}
	covered := false
	ScanTriangle(tri, func(y, xFrom, xTo int) {
		if y == 296 && xFrom <= 400 && 400 <= xTo {
			covered = true
		}
	})
	if !covered {
		t.Error("centroid of the ship triangle should be filled")
	}
}

func TestScanTriangleIgnoresShortInput(t *testing.T) {
	called := false
	ScanTriangle([]Point{{0, 0}, {1, 1}}, func(y, xFrom, xTo int) { called = true })
	if called {
		t.Error("fewer than 3 vertices should draw nothing")
	}
}
