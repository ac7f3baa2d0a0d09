package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Input is the polled state for one frame.
type Input struct {
	// Grab is held while the player wants to hang on a ledge.
	Grab bool
	// ResetPressed is true on the frame R was pressed.
	ResetPressed bool
	// QuitPressed is true on the frame Escape was pressed.
	QuitPressed bool
}

func NewInput() *Input {
	return &Input{}
}

// Update polls the keyboard, mouse and first gamepad.
func (i *Input) Update() {
	var gpGrab, gpReset bool
	if ids := ebiten.AppendGamepadIDs(nil); len(ids) > 0 {
		gid := ids[0]
		gpGrab = ebiten.IsStandardGamepadButtonPressed(gid, ebiten.StandardGamepadButtonRightBottom)
		gpReset = inpututil.IsStandardGamepadButtonJustPressed(gid, ebiten.StandardGamepadButtonCenterRight)
	}

	i.Grab = ebiten.IsKeyPressed(ebiten.KeySpace) ||
		ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) ||
		gpGrab
	i.ResetPressed = inpututil.IsKeyJustPressed(ebiten.KeyR) || gpReset
	i.QuitPressed = inpututil.IsKeyJustPressed(ebiten.KeyEscape)
}
