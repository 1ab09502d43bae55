package clicker

import (
	"testing"

	"github.com/vovakirdan/adventure-clicker/internal/core"
)

// farBox never overlaps anything on the ground line.
var farBox = core.NewRectF(0, -1000, 1, 1)

func newTestManager() *ObstacleManager {
	om := NewObstacleManager(599, 350, 20, 40, 5, 1500)
	om.Reset(0)
	return om
}

func TestObstacleMovesBySpeed(t *testing.T) {
	om := newTestManager()
	om.Add(300)

	for i := 1; i <= 10; i++ {
		om.Update(farBox)
		if x := om.Obstacles()[0].X; x != 300-5*float64(i) {
			t.Fatalf("x after %d ticks = %v, expected %v", i, x, 300-5*float64(i))
		}
	}
}

func TestObstacleRemovedWhenReachingLeftEdge(t *testing.T) {
	om := newTestManager()
	om.Add(579)

	for i := 0; i < 115; i++ {
		om.Update(farBox)
		om.Prune()
	}
	obs := om.Obstacles()
	if len(obs) != 1 || obs[0].X != 4 {
		t.Fatalf("after 115 ticks: %v, expected one obstacle at x=4", obs)
	}

	om.Update(farBox)
	om.Prune()
	if len(om.Obstacles()) != 0 {
		t.Errorf("obstacle should be gone after 116 ticks, have %v", om.Obstacles())
	}
}

func TestPruneKeepsOrder(t *testing.T) {
	om := newTestManager()
	for _, x := range []float64{5, 100, 3, 200, 5, 300} {
		om.Add(x)
	}

	om.Update(farBox) // 0, 95, -2, 195, 0, 295
	om.Prune()

	got := om.Obstacles()
	expected := []float64{95, 195, 295}
	if len(got) != len(expected) {
		t.Fatalf("got %d obstacles, expected %d", len(got), len(expected))
	}
	for i := range expected {
		if got[i].X != expected[i] {
			t.Errorf("obstacle %d at x=%v, expected %v", i, got[i].X, expected[i])
		}
	}
}

func TestMaybeSpawnInterval(t *testing.T) {
	om := newTestManager()

	tests := []struct {
		now      int64
		expected bool
	}{
		{1000, false},
		{1500, false}, // exactly the interval is not enough
		{1501, true},
		{2000, false},
		{3001, false},
		{3002, true},
	}

	for _, tc := range tests {
		if got := om.MaybeSpawn(tc.now); got != tc.expected {
			t.Errorf("MaybeSpawn(%d) = %v, expected %v", tc.now, got, tc.expected)
		}
	}

	if n := len(om.Obstacles()); n != 2 {
		t.Fatalf("expected 2 spawned obstacles, got %d", n)
	}
	if o := om.Obstacles()[0]; o.X != 599 || o.Y != 350 || o.W != 20 || o.H != 40 {
		t.Errorf("unexpected spawned obstacle %+v", o.Body)
	}
}

func TestUpdateReportsHitButMovesAll(t *testing.T) {
	om := newTestManager()
	om.Add(105)
	om.Add(400)

	player := core.NewRectF(100, 350, 40, 40)
	if !om.Update(player) {
		t.Error("expected a hit")
	}
	if x := om.Obstacles()[1].X; x != 395 {
		t.Errorf("second obstacle should still move, x=%v", x)
	}
}
