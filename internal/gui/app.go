//go:build cgo

package gui

import (
	"fmt"
	"time"

	"github.com/appengine-ltd/garden-sim/internal/game"
	rl "github.com/gen2brain/raylib-go/raylib"
)

type AppConfig struct {
	Version   string
	Commit    string
	BuildDate string
	World     game.WorldConfig
}

type App struct {
	cfg AppConfig
}

func NewApp(cfg AppConfig) *App {
	return &App{cfg: cfg}
}

var (
	colorBG       = rl.NewColor(12, 16, 10, 255)
	colorPanel    = rl.NewColor(20, 28, 18, 235)
	colorBorder   = rl.NewColor(96, 160, 84, 255)
	colorText     = rl.NewColor(222, 240, 214, 255)
	colorDim      = rl.NewColor(138, 168, 128, 255)
	colorAccent   = rl.NewColor(255, 214, 92, 255)
	colorWarn     = rl.NewColor(255, 150, 92, 255)
	colorMoney    = rl.NewColor(126, 235, 120, 255)
	colorNight    = rl.NewColor(8, 10, 28, 255)
	colorRainDrop = rl.NewColor(140, 180, 255, 170)
	colorSnow     = rl.NewColor(240, 244, 255, 210)
)

type gameUI struct {
	cfg AppConfig

	width  int32
	height int32
	quit   bool

	world *game.World

	camX float64
	camY float64

	shopOpen   bool
	shopPage   int
	shopCursor int
	helpOpen   bool

	elapsed  float64
	lastTick time.Time
}

func (a *App) Run() error {
	world, err := game.NewWorld(a.cfg.World)
	if err != nil {
		return fmt.Errorf("build world: %w", err)
	}
	ui := newGameUI(a.cfg, world)
	ui.Run()
	return nil
}

func newGameUI(cfg AppConfig, world *game.World) *gameUI {
	ui := &gameUI{
		cfg:    cfg,
		width:  1280,
		height: 720,
		world:  world,
	}
	// Start the camera centered on the player so the first frame does not pan.
	ui.camX = world.Player.X - float64(ui.width)/2
	ui.camY = world.Player.Y - float64(ui.height)/2
	ui.lastTick = time.Now()
	return ui
}

func (ui *gameUI) Run() {
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(ui.width, ui.height, "garden-sim")
	rl.SetExitKey(0)
	rl.SetTargetFPS(60)
	defaultFont := rl.GetFontDefault()
	rl.SetTextureFilter(defaultFont.Texture, rl.FilterBilinear)

	for !ui.quit && !rl.WindowShouldClose() {
		now := time.Now()
		delta := now.Sub(ui.lastTick).Seconds()
		if delta < 0 {
			delta = 0
		}
		ui.lastTick = now

		ui.width = int32(rl.GetScreenWidth())
		ui.height = int32(rl.GetScreenHeight())

		ui.update(delta)

		rl.BeginDrawing()
		rl.ClearBackground(colorBG)
		ui.draw()
		rl.EndDrawing()
	}

	rl.CloseWindow()
}

func (ui *gameUI) update(delta float64) {
	ui.elapsed += delta

	switch {
	case ui.helpOpen:
		if rl.IsKeyPressed(rl.KeyEscape) || rl.IsKeyPressed(rl.KeyF1) {
			ui.helpOpen = false
		}
	case ui.shopOpen:
		ui.updateShop()
	default:
		ui.updateField(delta)
	}

	// The garden keeps growing behind every overlay.
	ui.world.Step(delta)
	ui.followPlayer(delta)
}

func (ui *gameUI) updateField(delta float64) {
	if rl.IsKeyPressed(rl.KeyEscape) {
		ui.quit = true
		return
	}
	if rl.IsKeyPressed(rl.KeyF1) {
		ui.helpOpen = true
		return
	}
	if rl.IsKeyPressed(rl.KeyE) {
		ui.openShop()
		return
	}

	input := game.MoveInput{
		Left:   rl.IsKeyDown(rl.KeyA) || rl.IsKeyDown(rl.KeyLeft),
		Right:  rl.IsKeyDown(rl.KeyD) || rl.IsKeyDown(rl.KeyRight),
		Up:     rl.IsKeyDown(rl.KeyW) || rl.IsKeyDown(rl.KeyUp),
		Down:   rl.IsKeyDown(rl.KeyS) || rl.IsKeyDown(rl.KeyDown),
		Sprint: rl.IsKeyDown(rl.KeyLeftShift) || rl.IsKeyDown(rl.KeyRightShift),
	}
	ui.world.MovePlayer(delta, input)

	if rl.IsKeyPressed(rl.KeyP) || rl.IsKeyPressed(rl.KeySpace) {
		ui.world.PlantAtPlayer()
	}
	if rl.IsKeyPressed(rl.KeyH) {
		ui.world.HarvestAtPlayer()
	}
	if rl.IsKeyPressed(rl.KeyF) {
		ui.world.SellAll()
	}
}

// followPlayer eases the camera toward the player and clamps it to the map.
func (ui *gameUI) followPlayer(delta float64) {
	targetX := ui.world.Player.X - float64(ui.width)/2
	targetY := ui.world.Player.Y - float64(ui.height)/2
	ui.camX += (targetX - ui.camX) * delta * 6
	ui.camY += (targetY - ui.camY) * delta * 6

	maxX := float64(ui.world.Grid.Width*game.TileSize) - float64(ui.width)
	maxY := float64(ui.world.Grid.Height*game.TileSize) - float64(ui.height)
	ui.camX = clampF(ui.camX, 0, maxF(0, maxX))
	ui.camY = clampF(ui.camY, 0, maxF(0, maxY))
}

func (ui *gameUI) draw() {
	ui.drawWorld()
	ui.drawWeatherOverlay()
	ui.drawDarkness()
	ui.drawMiniMap()
	ui.drawHUD()
	if ui.shopOpen {
		ui.drawShop()
	}
	if ui.helpOpen {
		ui.drawHelp()
	}
}
