package sim

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestGrabAttachesToNearestLedge(t *testing.T) {
	s := newTestSim(t, DefaultTuning(), v3(400, 300), v3(450, 300), v3(600, 300))

	s.Tick(Input{Grab: true}, 0.016)

	p := s.Scene().Player
	if !p.Attached || !p.Swinging || p.State != Swinging {
		t.Fatalf("expected swinging, got attached=%v swinging=%v state=%v", p.Attached, p.Swinging, p.State)
	}
	if p.AttachPoint != (mgl32.Vec2{450, 300}) {
		t.Fatalf("expected attach point (450,300), got %v", p.AttachPoint)
	}
	view := s.Scene().Snapshot()
	if !view.Player.HasLedge || view.Player.AttachedLedge != 1 {
		t.Fatalf("expected ledge 1 attached, got %+v", view.Player)
	}
	if !view.Ledges[0].Attached || view.Ledges[1].Attached {
		t.Fatalf("unexpected ledge attachment flags %+v", view.Ledges)
	}
	mustInvariants(t, s.Scene())
}

func TestAttachImpulseAppliedOnce(t *testing.T) {
	tuning := DefaultTuning()
	s := newTestScene(t, v3(0, 0), v3(0, 100))
	scan := NewLedgeScanSystem()
	swing := NewSwingSystem(&tuning)

	scan.Update(s, Frame{Input: Input{Grab: true}})
	swing.Update(s, Frame{Input: Input{Grab: true}})
	if s.Player.Velocity != tuning.AttachImpulse {
		t.Fatalf("expected impulse %v, got %v", tuning.AttachImpulse, s.Player.Velocity)
	}

	for i := 0; i < 3; i++ {
		scan.Update(s, Frame{Input: Input{Grab: true}})
		swing.Update(s, Frame{Input: Input{Grab: true}})
	}
	if s.Player.Velocity != tuning.AttachImpulse {
		t.Fatalf("impulse reapplied while held: %v", s.Player.Velocity)
	}
}

func TestReleaseClearsAttachment(t *testing.T) {
	cases := []struct {
		name  string
		setup func(p *Player)
	}{
		{"from_swinging", func(p *Player) {
			p.Attached, p.Swinging, p.State = true, true, Swinging
			p.AttachedLedge = 1
		}},
		{"from_detached", func(p *Player) {}},
		{"from_inconsistent", func(p *Player) {
			p.Swinging = true
			p.AttachedLedge = 7
		}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s := newTestSim(t, DefaultTuning(), v3(0, 0), v3(10, 10))
			p := s.Scene().Player
			c.setup(p)
			v := p.Velocity

			s.Tick(Input{Grab: false}, 0.016)

			if p.Attached || p.Swinging || p.AttachedLedge.Valid() || p.State != Detached {
				t.Fatalf("release left state %+v", p)
			}
			if p.Velocity.X() != v.X() {
				t.Fatalf("release changed x velocity %v -> %v", v.X(), p.Velocity.X())
			}
			mustInvariants(t, s.Scene())
		})
	}
}

func TestGrabWithoutLedges(t *testing.T) {
	s := newTestSim(t, DefaultTuning(), v3(0, 0))
	for i := 0; i < 5; i++ {
		s.Tick(Input{Grab: true}, 0.016)
		p := s.Scene().Player
		if p.Attached || p.Swinging || p.AttachedLedge.Valid() {
			t.Fatalf("tick %d: attached with no ledges", i)
		}
		if _, ok := s.Scene().Nearest(); ok {
			t.Fatalf("tick %d: nearest ledge resolved with no ledges", i)
		}
		mustInvariants(t, s.Scene())
	}
}

func TestTargetPinnedWhileSwinging(t *testing.T) {
	s := newTestSim(t, DefaultTuning(), v3(0, 0), v3(0, 100))
	s.Tick(Input{Grab: true}, 0.016)

	closer, err := s.Scene().AddLedge(LedgeSpawn{ID: 9, Position: s.Scene().Player.Position})
	if err != nil {
		t.Fatalf("AddLedge: %v", err)
	}
	s.Tick(Input{Grab: true}, 0.016)

	p := s.Scene().Player
	if p.AttachedLedge == closer {
		t.Fatal("target switched to a closer ledge while swinging")
	}
	if p.AttachPoint != (mgl32.Vec2{0, 100}) {
		t.Fatalf("expected pinned attach point (0,100), got %v", p.AttachPoint)
	}
	if hit, _ := s.Scene().Nearest(); hit.Entity != closer {
		t.Fatalf("scan should still see the closer ledge, got %+v", hit)
	}
}

func TestRemovedLedgeKeepsAttachPoint(t *testing.T) {
	s := newTestSim(t, DefaultTuning(), v3(0, 0), v3(0, 100))
	s.Tick(Input{Grab: true}, 0.016)

	if !s.Scene().RemoveLedge(1) {
		t.Fatal("RemoveLedge failed")
	}
	s.Tick(Input{Grab: true}, 0.016)

	p := s.Scene().Player
	if !p.Attached || !p.Swinging {
		t.Fatal("lookup miss should not detach the player")
	}
	if p.AttachPoint != (mgl32.Vec2{0, 100}) {
		t.Fatalf("expected previous attach point, got %v", p.AttachPoint)
	}
	if view := s.Scene().Snapshot(); view.Player.HasLedge {
		t.Fatalf("removed ledge still resolves: %+v", view.Player)
	}
	mustInvariants(t, s.Scene())

	s.Tick(Input{}, 0.016)
	if p.Attached || p.AttachedLedge.Valid() {
		t.Fatal("release after removal did not clear state")
	}
}

func TestSwingSign(t *testing.T) {
	cases := []struct {
		name    string
		follow  bool
		impulse mgl32.Vec3
		want    float32
	}{
		{"fixed_push_right", false, mgl32.Vec3{50, 0, 0}, 1},
		{"fixed_push_left", false, mgl32.Vec3{-50, 0, 0}, 1},
		{"follow_push_right", true, mgl32.Vec3{50, 0, 0}, 1},
		{"follow_push_left", true, mgl32.Vec3{-50, 0, 0}, -1},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			tuning := DefaultTuning()
			tuning.AttachImpulse = c.impulse
			tuning.SwingFollowsImpulse = c.follow
			s := newTestSim(t, tuning, v3(0, 0), v3(0, 100))
			s.Tick(Input{Grab: true}, 0.016)
			if got := s.Scene().Player.SwingSign; got != c.want {
				t.Fatalf("expected sign %v, got %v", c.want, got)
			}
		})
	}
}

func TestDefaultSwingIsClockwiseTangent(t *testing.T) {
	// Ledge to the left of a falling player: dir (-1,0), dir × ẑ = (0,1).
	s := newTestSim(t, DefaultTuning(), v3(100, 0), v3(0, 0))
	s.Scene().Player.Velocity = v3(0, -300)
	s.Tick(Input{Grab: true}, 0.016)

	v := s.Scene().Player.Velocity
	if v.Y() <= 0 || !approx(v.X(), 0) {
		t.Fatalf("expected an upward tangent, got %v", v)
	}
}

func TestSwingingImpliesAttachedEveryTick(t *testing.T) {
	s := newTestSim(t, DefaultTuning(), v3(640, 360), v3(840, 520), v3(1140, 520), v3(1440, 520))
	pattern := []bool{false, true, true, true, false, false, true, true, false, true}
	for i := 0; i < 300; i++ {
		s.Tick(Input{Grab: pattern[i%len(pattern)]}, 1.0/60)
		mustInvariants(t, s.Scene())
	}
}
