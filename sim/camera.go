package sim

import "github.com/go-gl/mathgl/mgl32"

// Camera follows the player with a per-axis smoothing factor in [0,1].
// Higher follows faster; 1 locks the axis to the player.
type Camera struct {
	Position mgl32.Vec3
	Follow   mgl32.Vec2
}

type CameraSystem struct{}

func NewCameraSystem() *CameraSystem {
	return &CameraSystem{}
}

// Update moves the camera toward the player position.
func (cs *CameraSystem) Update(s *Scene, f Frame) {
	if s == nil || s.Player == nil || s.Camera == nil {
		return
	}
	c := s.Camera
	delta := s.Player.Position.Sub(c.Position)
	c.Position[0] += delta.X() * c.Follow.X()
	c.Position[1] += delta.Y() * c.Follow.Y()
}
