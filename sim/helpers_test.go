package sim

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

const epsilon = 1e-3

func approx(a, b float32) bool {
	return math32.Abs(a-b) <= epsilon
}

func approxVec(a, b mgl32.Vec3) bool {
	return approx(a[0], b[0]) && approx(a[1], b[1]) && approx(a[2], b[2])
}

func v3(x, y float32) mgl32.Vec3 {
	return mgl32.Vec3{x, y, 0}
}

func newTestScene(t *testing.T, player mgl32.Vec3, ledges ...mgl32.Vec3) *Scene {
	t.Helper()
	b := Bootstrap{PlayerStart: player, CameraStart: player}
	for i, pos := range ledges {
		b.Ledges = append(b.Ledges, LedgeSpawn{ID: LedgeID(i + 1), Position: pos})
	}
	s, err := NewScene(b, DefaultTuning().CameraFollow)
	if err != nil {
		t.Fatalf("NewScene: %v", err)
	}
	return s
}

func newTestSim(t *testing.T, tuning Tuning, player mgl32.Vec3, ledges ...mgl32.Vec3) *Sim {
	t.Helper()
	b := Bootstrap{PlayerStart: player, CameraStart: player}
	for i, pos := range ledges {
		b.Ledges = append(b.Ledges, LedgeSpawn{ID: LedgeID(i + 1), Position: pos})
	}
	s, err := New(b, tuning)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return s
}

func mustInvariants(t *testing.T, s *Scene) {
	t.Helper()
	if err := s.CheckInvariants(); err != nil {
		t.Fatalf("invariants: %v", err)
	}
}
