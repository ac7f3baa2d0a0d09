package common

const (
	BaseWidth  = 1280
	BaseHeight = 720
)

// Defaults for the swing simulation. World units are pixels, y points up.
const (
	Gravity       float32 = -50.8
	Damping       float32 = 0.78
	SwingSpeed    float32 = 200
	AttachImpulse float32 = 50

	CameraFollowX float32 = 1.0
	CameraFollowY float32 = 0.01

	PlayerSize   float32 = 64
	PlayerRadius         = PlayerSize / 2

	PipeWidth  float32 = 30
	PipeHeight float32 = 100
)
