//go:build cgo

package gui

import (
	"math"

	"github.com/appengine-ltd/garden-sim/internal/game"
	rl "github.com/gen2brain/raylib-go/raylib"
)

var (
	colorWater = rl.NewColor(52, 96, 168, 255)
	colorSoil  = rl.NewColor(118, 82, 52, 255)
	colorGrass = rl.NewColor(78, 138, 62, 255)
	colorStone = rl.NewColor(118, 120, 124, 255)
	colorSell  = rl.NewColor(222, 178, 62, 255)
)

func tileBaseColor(kind game.TileKind) rl.Color {
	switch kind {
	case game.TileWater:
		return colorWater
	case game.TileSoil:
		return colorSoil
	case game.TileGrass:
		return colorGrass
	case game.TileStone:
		return colorStone
	case game.TileSellArea:
		return colorSell
	default:
		return colorStone
	}
}

// tileJitter gives each tile a stable brightness nudge so large fields do
// not render as flat color blocks.
func tileJitter(x, y int) float64 {
	h := uint32(x)*2654435761 + uint32(y)*40503
	h ^= h >> 13
	return 0.92 + float64(h%17)/100.0
}

func (ui *gameUI) drawWorld() {
	grid := ui.world.Grid

	minX := clampInt(int(ui.camX)/game.TileSize, 0, grid.Width-1)
	minY := clampInt(int(ui.camY)/game.TileSize, 0, grid.Height-1)
	maxX := clampInt((int(ui.camX)+int(ui.width))/game.TileSize+1, 0, grid.Width-1)
	maxY := clampInt((int(ui.camY)+int(ui.height))/game.TileSize+1, 0, grid.Height-1)

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			kind := grid.Kind(x, y)
			clr := shade(tileBaseColor(kind), tileJitter(x, y))
			switch kind {
			case game.TileWater:
				ripple := 0.9 + 0.1*math.Sin(ui.elapsed*2+float64(x+y)*0.7)
				clr = shade(colorWater, ripple)
			case game.TileSellArea:
				pulse := 0.88 + 0.12*math.Sin(ui.elapsed*3)
				clr = shade(colorSell, pulse)
			}
			px := int32(x*game.TileSize) - int32(ui.camX)
			py := int32(y*game.TileSize) - int32(ui.camY)
			rl.DrawRectangle(px, py, game.TileSize, game.TileSize, clr)
		}
	}

	for _, cultivar := range ui.world.Field.Live() {
		ui.drawCultivar(cultivar, minX, minY, maxX, maxY)
	}

	ui.drawPlayer()
}

func (ui *gameUI) drawCultivar(c *game.Cultivar, minX, minY, maxX, maxY int) {
	tiles := c.OccupiedTiles()
	visible := false
	for _, tile := range tiles {
		if tile.X >= minX && tile.X <= maxX && tile.Y >= minY && tile.Y <= maxY {
			visible = true
			break
		}
	}
	if !visible {
		return
	}

	radius := float32(game.TileSize) * stageRadiusFactor(c.Stage)
	body := rlColor(c.Type.Color)
	if c.Stage == game.StageSeed || c.Stage == game.StageSprout {
		body = shade(body, 0.6)
	}
	for _, tile := range tiles {
		cx := int32(tile.X*game.TileSize) - int32(ui.camX) + game.TileSize/2
		cy := int32(tile.Y*game.TileSize) - int32(ui.camY) + game.TileSize/2
		rl.DrawCircle(cx, cy, radius, body)
		if c.Harvestable() {
			rl.DrawCircle(cx, cy-int32(radius)/2, radius*0.35, rlColor(c.Type.FruitColor))
		}
	}
}

func stageRadiusFactor(stage game.GrowthStage) float32 {
	switch stage {
	case game.StageSeed:
		return 0.10
	case game.StageSprout:
		return 0.18
	case game.StageYoung:
		return 0.30
	case game.StageMature:
		return 0.40
	default:
		return 0.44
	}
}

func (ui *gameUI) drawPlayer() {
	px := int32(ui.world.Player.X) - int32(ui.camX) + game.TileSize/2
	py := int32(ui.world.Player.Y) - int32(ui.camY) + game.TileSize/2
	rl.DrawCircle(px, py, float32(game.TileSize)*0.38, rl.NewColor(236, 224, 200, 255))
	rl.DrawCircle(px, py, float32(game.TileSize)*0.30, rl.NewColor(188, 96, 72, 255))
	rl.DrawCircleLines(px, py, float32(game.TileSize)*0.38, colorBG)
}

func (ui *gameUI) drawWeatherOverlay() {
	switch ui.world.Weather.Current {
	case game.WeatherRainy:
		rl.DrawRectangle(0, 0, ui.width, ui.height, rl.NewColor(30, 40, 70, 60))
		for i := 0; i < 140; i++ {
			x := particleX(i, int(ui.width))
			fall := math.Mod(ui.elapsed*620+float64(i*53), float64(ui.height))
			rl.DrawLine(x, int32(fall), x-3, int32(fall)+14, colorRainDrop)
		}
	case game.WeatherSnowing:
		rl.DrawRectangle(0, 0, ui.width, ui.height, rl.NewColor(200, 210, 230, 36))
		for i := 0; i < 90; i++ {
			drift := int32(math.Sin(ui.elapsed+float64(i)) * 12)
			x := particleX(i, int(ui.width)) + drift
			fall := math.Mod(ui.elapsed*70+float64(i*97), float64(ui.height))
			rl.DrawCircle(x, int32(fall), 2.2, colorSnow)
		}
	case game.WeatherCloudy:
		rl.DrawRectangle(0, 0, ui.width, ui.height, rl.NewColor(40, 40, 50, 40))
	}
}

func particleX(i, width int) int32 {
	if width <= 0 {
		return 0
	}
	return int32((i*977 + 131) % width)
}

func (ui *gameUI) drawDarkness() {
	darkness := ui.world.DayNight.Darkness()
	if darkness <= 0 {
		return
	}
	rl.DrawRectangle(0, 0, ui.width, ui.height, rl.Fade(colorNight, float32(darkness)))
}
