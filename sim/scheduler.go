package sim

// Input is the per-tick intent coming from the outer layer.
type Input struct {
	Grab bool
}

// Frame is what every stage sees for one tick.
type Frame struct {
	Input Input
	Dt    float32
}

// System is one stage of the tick pipeline.
type System interface {
	Update(s *Scene, f Frame)
}

// Scheduler runs systems in a fixed order.
type Scheduler struct {
	systems []System
}

func NewScheduler(systems ...System) *Scheduler {
	copied := append([]System(nil), systems...)
	return &Scheduler{systems: copied}
}

func (s *Scheduler) Update(scene *Scene, f Frame) {
	for _, system := range s.systems {
		if system != nil {
			system.Update(scene, f)
		}
	}
}

func (s *Scheduler) Systems() []System {
	systems := make([]System, 0, len(s.systems))
	return append(systems, s.systems...)
}
