package main

import (
	"fmt"
	"image/color"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/ledgeswing/common"
	"github.com/milk9111/ledgeswing/prefabs"
	"github.com/milk9111/ledgeswing/sim"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"
)

const (
	ledgeRadius = 10
	ropeWidth   = 3
	hudLineStep = 16
)

// Renderer draws a sim.View. World space is y-up and centred on the camera;
// screen space is y-down with the camera in the middle of the base resolution.
type Renderer struct {
	face ebtext.Face

	background color.Color
	player     color.Color
	ledge      color.Color
	target     color.Color
	pipe       color.Color
	rope       color.Color
}

func NewRenderer(p prefabs.PaletteSpec) *Renderer {
	r := &Renderer{face: ebtext.NewGoXFace(basicfont.Face7x13)}
	r.SetPalette(p)
	return r
}

func (r *Renderer) SetPalette(p prefabs.PaletteSpec) {
	r.background = p.Background.Or(colornames.Skyblue)
	r.player = p.Player.Or(colornames.Royalblue)
	r.ledge = p.Ledge.Or(colornames.Sienna)
	r.target = p.Target.Or(colornames.Gold)
	r.pipe = p.Pipe.Or(colornames.Forestgreen)
	r.rope = p.Rope.Or(colornames.Lightgrey)
}

// worldToScreen maps a world position to screen pixels for the given camera.
func worldToScreen(p, camera mgl32.Vec3) (float32, float32) {
	x := p.X() - camera.X() + common.BaseWidth/2
	y := common.BaseHeight/2 - (p.Y() - camera.Y())
	return x, y
}

func (r *Renderer) Draw(screen *ebiten.Image, v sim.View) {
	screen.Fill(r.background)

	for _, p := range v.Pipes {
		w, h := p.Extent()
		x, y := worldToScreen(p.Position, v.Camera)
		vector.FillRect(screen, x-w/2, y-h/2, w, h, r.pipe, false)
	}

	target, hasTarget := targetLedge(v)
	for _, l := range v.Ledges {
		x, y := worldToScreen(l.Position, v.Camera)
		c := r.ledge
		if hasTarget && l.ID == target {
			c = r.target
		}
		vector.FillCircle(screen, x, y, ledgeRadius, c, true)
	}

	if v.Rope.Visible {
		sx, sy := worldToScreen(v.Rope.Start, v.Camera)
		ex, ey := worldToScreen(v.Rope.End, v.Camera)
		vector.StrokeLine(screen, sx, sy, ex, ey, ropeWidth, r.rope, true)
	}

	if v.HasPlayer {
		x, y := worldToScreen(v.Player.Position, v.Camera)
		vector.FillCircle(screen, x, y, common.PlayerRadius, r.player, true)
	}
}

// targetLedge is the ledge the player hangs from or would grab next.
func targetLedge(v sim.View) (sim.LedgeID, bool) {
	if !v.HasPlayer {
		return 0, false
	}
	if v.Player.HasLedge {
		return v.Player.AttachedLedge, true
	}
	var (
		best  sim.LedgeID
		found bool
		dist  float32
	)
	for _, l := range v.Ledges {
		if !found || l.Distance < dist {
			best, dist, found = l.ID, l.Distance, true
		}
	}
	return best, found
}

func hudLines(v sim.View) []string {
	if !v.HasPlayer {
		return []string{"no player"}
	}
	p := v.Player
	lines := []string{
		fmt.Sprintf("state: %s", p.State),
		fmt.Sprintf("speed: %.1f", p.Velocity.Vec2().Len()),
		fmt.Sprintf("contacts: %d", v.Contacts),
	}
	if p.HasLedge {
		lines = append(lines, fmt.Sprintf("ledge: %d", p.AttachedLedge))
	} else if len(v.Ledges) > 0 {
		lines = append(lines, fmt.Sprintf("nearest: %.1f", p.ClosestDistance))
	}
	return lines
}

func debugLine(frames int, fps, tps float64) string {
	return fmt.Sprintf("Frames: %d    FPS: %.2f    TPS: %.2f", frames, fps, tps)
}

func (r *Renderer) DrawHUD(screen *ebiten.Image, v sim.View, debug bool, frames int) {
	for i, line := range hudLines(v) {
		op := &ebtext.DrawOptions{}
		op.GeoM.Translate(10, float64(10+i*hudLineStep))
		op.ColorScale.ScaleWithColor(color.White)
		ebtext.Draw(screen, line, r.face, op)
	}
	if debug {
		ebitenutil.DebugPrintAt(screen, debugLine(frames, ebiten.ActualFPS(), ebiten.ActualTPS()), 10, common.BaseHeight-20)
	}
}
