package sim

import (
	"testing"

	"github.com/milk9111/ledgeswing/ecs"
)

func newPipeScene(t *testing.T) (*Scene, ecs.Entity) {
	t.Helper()
	s := newTestScene(t, v3(400, 300))
	e, err := s.AddPipe(Pipe{Position: v3(500, 300), Width: 60, Height: 100})
	if err != nil {
		t.Fatalf("AddPipe: %v", err)
	}
	return s, e
}

func TestPipeContactReportsOnEnter(t *testing.T) {
	tuning := DefaultTuning()
	s, pipe := newPipeScene(t)
	cs := NewCollisionSystem(&tuning)

	cs.Update(s, Frame{})
	if s.Events.Len() != 0 || cs.Touching(pipe) {
		t.Fatal("contact reported while apart")
	}

	s.Player.Position = v3(480, 300)
	cs.Update(s, Frame{})
	events := s.Events.Drain()
	if len(events) != 1 || events[0].Entity != pipe {
		t.Fatalf("expected one contact with %v, got %+v", pipe, events)
	}
	if !cs.Touching(pipe) || s.Contacts != 1 {
		t.Fatalf("expected touching with 1 contact, got %v/%d", cs.Touching(pipe), s.Contacts)
	}

	cs.Update(s, Frame{})
	if s.Events.Len() != 0 {
		t.Fatal("staying inside reported a new contact")
	}

	s.Player.Position = v3(300, 300)
	cs.Update(s, Frame{})
	if cs.Touching(pipe) {
		t.Fatal("still touching after moving away")
	}

	s.Player.Position = v3(500, 360)
	cs.Update(s, Frame{})
	if s.Events.Len() != 1 || s.Contacts != 2 {
		t.Fatalf("re-entering should report again, got %d events and %d contacts", s.Events.Len(), s.Contacts)
	}
}

func TestPipeContactDoesNotMovePlayer(t *testing.T) {
	tuning := DefaultTuning()
	s, _ := newPipeScene(t)
	s.Player.Position = v3(500, 300)
	s.Player.Velocity = v3(3, 4)
	NewCollisionSystem(&tuning).Update(s, Frame{Dt: 0.016})
	if s.Player.Position != v3(500, 300) || s.Player.Velocity != v3(3, 4) {
		t.Fatalf("sensor altered motion: %v %v", s.Player.Position, s.Player.Velocity)
	}
}

func TestRemovedPipeStopsTouching(t *testing.T) {
	tuning := DefaultTuning()
	s, pipe := newPipeScene(t)
	cs := NewCollisionSystem(&tuning)
	s.Player.Position = v3(480, 300)
	cs.Update(s, Frame{})
	if !cs.Touching(pipe) {
		t.Fatal("expected contact")
	}

	s.Pipes.Remove(pipe)
	cs.Update(s, Frame{})
	if cs.Touching(pipe) {
		t.Fatal("removed pipe still touching")
	}
}

func TestZeroRadiusDisablesSensor(t *testing.T) {
	tuning := DefaultTuning()
	tuning.PlayerRadius = 0
	s, pipe := newPipeScene(t)
	s.Player.Position = v3(500, 300)
	cs := NewCollisionSystem(&tuning)
	cs.Update(s, Frame{})
	if s.Events.Len() != 0 || cs.Touching(pipe) {
		t.Fatal("disabled sensor reported a contact")
	}

	tuning.PlayerRadius = 32
	cs.Update(s, Frame{})
	if s.Events.Len() != 1 {
		t.Fatalf("re-enabled sensor should report, got %d", s.Events.Len())
	}
}

func TestSimDrainsContacts(t *testing.T) {
	b := Bootstrap{
		PlayerStart: v3(480, 300),
		CameraStart: v3(480, 300),
		Pipes:       []Pipe{{Position: v3(500, 300), Width: 60, Height: 100}},
	}
	s, err := New(b, DefaultTuning())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	s.Tick(Input{}, 0.016)
	if got := s.DrainContacts(); len(got) != 1 {
		t.Fatalf("expected one contact, got %+v", got)
	}
	if got := s.DrainContacts(); got != nil {
		t.Fatalf("drain should empty the queue, got %+v", got)
	}
}
