//go:build cgo

package gui

import (
	"fmt"
	"strings"

	"github.com/appengine-ltd/garden-sim/internal/game"
	rl "github.com/gen2brain/raylib-go/raylib"
)

const hudInventoryRows = 8

func (ui *gameUI) drawHUD() {
	ui.drawStatusPanel()
	ui.drawInventoryPanel()
	ui.drawNotice()
	ui.drawHoverInfo()

	hint := "WASD move   Shift sprint   P plant   H harvest   F sell all   E shop   F1 help"
	rl.DrawText(hint, 16, ui.height-26, 18, colorDim)
}

func (ui *gameUI) drawStatusPanel() {
	panel := rl.NewRectangle(12, 12, 320, 178)
	drawPanel(panel, "")

	w := ui.world
	fraction := w.DayNight.Fraction
	hours := int(fraction * 24)
	minutes := int(fraction*24*60) % 60

	buff := w.TotalGrowthMultiplier(w.Player.Tile())
	lines := []struct {
		text string
		clr  rl.Color
	}{
		{fmt.Sprintf("$%s", game.FormatMoney(w.Progress.Wallet)), colorMoney},
		{fmt.Sprintf("%02d:%02d   %s", hours, minutes, weatherLabel(w.Weather.Current)), colorText},
		{fmt.Sprintf("Growth buff: %.2fx", buff), colorAccent},
		{fmt.Sprintf("Fertilizer: %s", game.ToolTierName(w.Progress.FertilizerTier)), colorText},
		{fmt.Sprintf("Hoe: %s   Shovel: %s",
			game.ToolTierName(w.Progress.HoeTier), game.ToolTierName(w.Progress.ShovelTier)), colorText},
	}
	y := int32(panel.Y) + 14
	for i, line := range lines {
		size := int32(22)
		if i == 0 {
			size = 30
		}
		rl.DrawText(line.text, int32(panel.X)+14, y, size, line.clr)
		y += size + 8
	}
}

func weatherLabel(kind game.WeatherKind) string {
	switch kind {
	case game.WeatherRainy:
		return "Rainy (2x growth)"
	case game.WeatherSnowing:
		return "Snowing (0.75x growth)"
	default:
		return strings.ToUpper(string(kind)[:1]) + string(kind)[1:]
	}
}

func (ui *gameUI) drawInventoryPanel() {
	seeds := ui.world.Progress.SeedInventory()
	items := ui.world.Progress.ItemInventory()
	if len(seeds) == 0 && len(items) == 0 {
		return
	}

	panel := rl.NewRectangle(float32(ui.width-292), 12, 280, 0)
	rows := clampInt(len(seeds), 0, hudInventoryRows) + clampInt(len(items), 0, hudInventoryRows)
	headers := 0
	if len(seeds) > 0 {
		headers++
	}
	if len(items) > 0 {
		headers++
	}
	panel.Height = float32(20 + (rows+headers)*26)
	drawPanel(panel, "")

	y := int32(panel.Y) + 12
	y = ui.drawInventorySection("SEEDS", seeds, y, panel)
	ui.drawInventorySection("HARVESTED", items, y, panel)
}

func (ui *gameUI) drawInventorySection(title string, entries []game.InventoryEntry, y int32, panel rl.Rectangle) int32 {
	if len(entries) == 0 {
		return y
	}
	rl.DrawText(title, int32(panel.X)+14, y, 18, colorAccent)
	y += 26
	for i, entry := range entries {
		if i >= hudInventoryRows {
			rl.DrawText(fmt.Sprintf("... and %d more", len(entries)-hudInventoryRows), int32(panel.X)+14, y, 18, colorDim)
			y += 26
			break
		}
		rl.DrawText(entry.Name, int32(panel.X)+14, y, 20, colorText)
		qty := fmt.Sprintf("x%d", entry.Quantity)
		rl.DrawText(qty, int32(panel.X+panel.Width)-14-rl.MeasureText(qty, 20), y, 20, colorDim)
		y += 26
	}
	return y
}

func (ui *gameUI) drawNotice() {
	notice := ui.world.Notice()
	if notice == "" {
		return
	}
	size := int32(24)
	w := rl.MeasureText(notice, size)
	x := (ui.width - w) / 2
	y := ui.height - 92
	rl.DrawRectangle(x-16, y-10, w+32, size+20, rl.Fade(colorPanel, 0.92))
	rl.DrawText(notice, x, y, size, colorWarn)
}

// drawHoverInfo shows a tooltip for the plant under the mouse cursor.
func (ui *gameUI) drawHoverInfo() {
	if ui.shopOpen || ui.helpOpen {
		return
	}
	mouse := rl.GetMousePosition()
	tile := game.TileCoord{
		X: (int(mouse.X) + int(ui.camX)) / game.TileSize,
		Y: (int(mouse.Y) + int(ui.camY)) / game.TileSize,
	}
	cultivar, ok := ui.world.Field.CultivarAt(tile)
	if !ok {
		return
	}

	lines := []string{
		cultivar.Type.Name,
		fmt.Sprintf("%s  |  %s", strings.ToUpper(string(cultivar.Type.Tier)), cultivar.Stage),
		fmt.Sprintf("Growth: %d%%", int(cultivar.Progress()*100)),
		fmt.Sprintf("Sells for $%s", game.FormatMoney(cultivar.Type.SellValue)),
	}
	if cultivar.Harvestable() {
		lines[2] = "Ready to harvest!"
	}

	width := int32(0)
	for _, line := range lines {
		if w := rl.MeasureText(line, 18); w > width {
			width = w
		}
	}
	box := rl.NewRectangle(mouse.X+18, mouse.Y+12, float32(width+24), float32(len(lines)*24+16))
	if box.X+box.Width > float32(ui.width) {
		box.X = mouse.X - box.Width - 8
	}
	drawPanel(box, "")
	y := int32(box.Y) + 10
	for i, line := range lines {
		clr := colorText
		if i == 0 {
			clr = rlColor(cultivar.Type.Color)
		}
		rl.DrawText(line, int32(box.X)+12, y, 18, clr)
		y += 24
	}
}

func (ui *gameUI) drawHelp() {
	panel := rl.NewRectangle(float32(ui.width/2-300), float32(ui.height/2-230), 600, 460)
	drawPanel(panel, "How To Garden")

	lines := []string{
		"",
		"Move with WASD or the arrow keys, hold Shift to sprint.",
		"",
		"P or Space plants the oldest seed in your pouch on the",
		"nearest open dirt within hoe range.",
		"",
		"H harvests every ready plant within shovel range.",
		"",
		"Stand on the golden square and press F to sell your",
		"whole harvest. E opens the seed shop.",
		"",
		"Plants grow faster in rain and on tilled soil, slower",
		"in snow. Fertilizer upgrades multiply growth for the",
		"whole garden.",
		"",
		"Esc or F1 closes this screen.",
	}
	y := int32(panel.Y) + 44
	for _, line := range lines {
		rl.DrawText(line, int32(panel.X)+24, y, 20, colorText)
		y += 24
	}
	drawTextCentered(fmt.Sprintf("v%s (%s) %s", ui.cfg.Version, ui.cfg.Commit, ui.cfg.BuildDate),
		panel, int32(panel.Height)-32, 16, colorDim)
}
