package prefabs

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/milk9111/ledgeswing/common"
	"github.com/milk9111/ledgeswing/sim"
)

const (
	defaultLayoutSpacing = 150
	defaultLedgeOffset   = 100
	defaultLedgeDrop     = 100
	defaultPipeGap       = 150
)

// BuildBootstrap turns a scene spec into the record NewScene consumes.
// Explicit ledges and pipes come first, then the generated layout.
func BuildBootstrap(spec SceneSpec) (sim.Bootstrap, error) {
	b := sim.Bootstrap{
		PlayerStart: point(spec.Player),
		CameraStart: point(spec.Player),
	}
	if spec.Camera != nil {
		b.CameraStart = point(*spec.Camera)
	}

	for _, l := range spec.Ledges {
		b.Ledges = append(b.Ledges, sim.LedgeSpawn{
			ID:       sim.LedgeID(l.ID),
			Position: mgl32.Vec3{float32(l.X), float32(l.Y), 0},
		})
	}
	for _, p := range spec.Pipes {
		b.Pipes = append(b.Pipes, sim.Pipe{
			Top:      p.Top,
			Position: mgl32.Vec3{float32(p.X), float32(p.Y), 0},
			Width:    float32(p.Width),
			Height:   float32(p.Height),
		})
	}

	if spec.Layout != nil {
		ledges, pipes, err := GenerateLayout(*spec.Layout)
		if err != nil {
			return sim.Bootstrap{}, err
		}
		b.Ledges = append(b.Ledges, ledges...)
		b.Pipes = append(b.Pipes, pipes...)
	}
	return b, nil
}

// GenerateLayout places Count ledges and Count top/bottom pipe pairs to the
// right of the screen centre.
func GenerateLayout(l LayoutSpec) ([]sim.LedgeSpawn, []sim.Pipe, error) {
	if l.Count < 0 {
		return nil, nil, fmt.Errorf("prefabs: layout count %d", l.Count)
	}
	w := orDefault(l.Width, common.BaseWidth)
	h := orDefault(l.Height, common.BaseHeight)
	spacing := orDefault(l.Spacing, defaultLayoutSpacing)
	offset := orDefault(l.LedgeOffset, defaultLedgeOffset)
	drop := orDefault(l.LedgeDrop, defaultLedgeDrop)
	pipeW := orDefault(l.PipeWidth, common.PipeWidth*2)
	pipeH := orDefault(l.PipeHeight, common.PipeHeight)
	gap := orDefault(l.Gap, defaultPipeGap)

	segment := h - pipeH*2 - gap
	if segment <= 0 {
		return nil, nil, fmt.Errorf("prefabs: layout height %v leaves no room for pipes", h)
	}

	ledges := make([]sim.LedgeSpawn, 0, l.Count)
	pipes := make([]sim.Pipe, 0, l.Count*2)
	for i := 0; i < l.Count; i++ {
		x := float32(i)*spacing + offset
		ledges = append(ledges, sim.LedgeSpawn{
			ID:       sim.LedgeID(x),
			Position: mgl32.Vec3{w/2 + x*2, h - pipeH - drop, 0},
		})

		px := w/2 + float32(i)*spacing
		pipes = append(pipes,
			sim.Pipe{Top: true, Position: mgl32.Vec3{px, h - pipeH, 0}, Width: pipeW, Height: segment},
			sim.Pipe{Top: false, Position: mgl32.Vec3{px, pipeH, 0}, Width: pipeW, Height: segment},
		)
	}
	return ledges, pipes, nil
}

// Build applies the spec on top of sim.DefaultTuning and validates the result.
func (s TuningSpec) Build() (sim.Tuning, error) {
	t := sim.DefaultTuning()
	setFloat(&t.Gravity, s.Gravity)
	setFloat(&t.Damping, s.Damping)
	setFloat(&t.SwingSpeed, s.SwingSpeed)
	setFloat(&t.AttachEase, s.AttachEase)
	setFloat(&t.FixedStep, s.FixedStep)
	setFloat(&t.PlayerRadius, s.PlayerRadius)
	if s.AttachImpulse != nil {
		t.AttachImpulse = point(*s.AttachImpulse)
	}
	if s.CameraFollow != nil {
		t.CameraFollow = point(*s.CameraFollow).Vec2()
	}
	t.SwingFollowsImpulse = s.SwingFollowsImpulse
	if s.MaxSubsteps != nil {
		t.MaxSubsteps = *s.MaxSubsteps
	}
	if err := t.Validate(); err != nil {
		return sim.Tuning{}, fmt.Errorf("prefabs: tuning: %w", err)
	}
	return t, nil
}

// LoadScene loads and builds a scene prefab.
func LoadScene(filename string) (SceneSpec, sim.Bootstrap, error) {
	spec, err := LoadSceneSpec(filename)
	if err != nil {
		return SceneSpec{}, sim.Bootstrap{}, err
	}
	b, err := BuildBootstrap(spec)
	if err != nil {
		return SceneSpec{}, sim.Bootstrap{}, fmt.Errorf("prefabs: build %s: %w", filename, err)
	}
	return spec, b, nil
}

// LoadTuning loads and builds a tuning prefab.
func LoadTuning(filename string) (TuningSpec, sim.Tuning, error) {
	spec, err := LoadTuningSpec(filename)
	if err != nil {
		return TuningSpec{}, sim.Tuning{}, err
	}
	t, err := spec.Build()
	if err != nil {
		return TuningSpec{}, sim.Tuning{}, fmt.Errorf("prefabs: build %s: %w", filename, err)
	}
	return spec, t, nil
}

func point(p PointSpec) mgl32.Vec3 {
	return mgl32.Vec3{float32(p.X), float32(p.Y), 0}
}

func orDefault(v float64, def float32) float32 {
	if v == 0 {
		return def
	}
	return float32(v)
}

func setFloat(dst *float32, src *float64) {
	if src != nil {
		*dst = float32(*src)
	}
}
