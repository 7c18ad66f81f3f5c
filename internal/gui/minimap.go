//go:build cgo

package gui

import (
	"github.com/appengine-ltd/garden-sim/internal/game"
	rl "github.com/gen2brain/raylib-go/raylib"
)

const miniMapSpan = 160

// drawMiniMap paints the whole grid into a corner panel with the player and
// the current camera viewport marked.
func (ui *gameUI) drawMiniMap() {
	grid := ui.world.Grid
	if grid.Width <= 0 || grid.Height <= 0 {
		return
	}

	cell := float32(miniMapSpan) / float32(max(grid.Width, grid.Height))
	mapW := cell * float32(grid.Width)
	mapH := cell * float32(grid.Height)
	origin := rl.NewVector2(float32(ui.width)-mapW-16, float32(ui.height)-mapH-40)

	rl.DrawRectangle(int32(origin.X)-4, int32(origin.Y)-4, int32(mapW)+8, int32(mapH)+8, rl.Fade(colorPanel, 0.9))

	// Sample at most one pixel block per cell; at 150x150 each cell is about
	// one pixel so the blocks never overdraw badly.
	for y := 0; y < grid.Height; y++ {
		for x := 0; x < grid.Width; x++ {
			px := int32(origin.X + float32(x)*cell)
			py := int32(origin.Y + float32(y)*cell)
			size := int32(cell + 1)
			rl.DrawRectangle(px, py, size, size, tileBaseColor(grid.Kind(x, y)))
		}
	}

	for _, cultivar := range ui.world.Field.Live() {
		tile := cultivar.Origin
		px := int32(origin.X + float32(tile.X)*cell)
		py := int32(origin.Y + float32(tile.Y)*cell)
		rl.DrawRectangle(px, py, 2, 2, rlColor(cultivar.Type.Color))
	}

	// Camera viewport.
	viewX := origin.X + float32(ui.camX/game.TileSize)*cell
	viewY := origin.Y + float32(ui.camY/game.TileSize)*cell
	viewW := float32(ui.width) / game.TileSize * cell
	viewH := float32(ui.height) / game.TileSize * cell
	rl.DrawRectangleLinesEx(rl.NewRectangle(viewX, viewY, viewW, viewH), 1, rl.Fade(colorText, 0.7))

	playerX := int32(origin.X + float32(ui.world.Player.X)/game.TileSize*cell)
	playerY := int32(origin.Y + float32(ui.world.Player.Y)/game.TileSize*cell)
	rl.DrawCircle(playerX, playerY, 3, rl.NewColor(255, 88, 88, 255))

	rl.DrawRectangleLines(int32(origin.X)-4, int32(origin.Y)-4, int32(mapW)+8, int32(mapH)+8, colorBorder)
}
