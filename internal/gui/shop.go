//go:build cgo

package gui

import (
	"fmt"

	"github.com/appengine-ltd/garden-sim/internal/game"
	rl "github.com/gen2brain/raylib-go/raylib"
)

func (ui *gameUI) openShop() {
	ui.shopOpen = true
	ui.shopCursor = 0
}

func (ui *gameUI) updateShop() {
	if rl.IsKeyPressed(rl.KeyEscape) || rl.IsKeyPressed(rl.KeyE) {
		ui.shopOpen = false
		return
	}
	categories := ui.world.Catalog.Categories
	if len(categories) == 0 {
		ui.shopOpen = false
		return
	}

	if rl.IsKeyPressed(rl.KeyRight) || rl.IsKeyPressed(rl.KeyTab) {
		ui.shopPage = wrapIndex(ui.shopPage+1, len(categories))
		ui.shopCursor = 0
	}
	if rl.IsKeyPressed(rl.KeyLeft) {
		ui.shopPage = wrapIndex(ui.shopPage-1, len(categories))
		ui.shopCursor = 0
	}

	items := categories[ui.shopPage].Items
	if len(items) == 0 {
		return
	}
	if rl.IsKeyPressed(rl.KeyDown) {
		ui.shopCursor = wrapIndex(ui.shopCursor+1, len(items))
	}
	if rl.IsKeyPressed(rl.KeyUp) {
		ui.shopCursor = wrapIndex(ui.shopCursor-1, len(items))
	}
	if rl.IsKeyPressed(rl.KeyEnter) {
		quantity := 1
		if rl.IsKeyDown(rl.KeyLeftShift) || rl.IsKeyDown(rl.KeyRightShift) {
			quantity = 10
		}
		ui.world.Buy(items[clampInt(ui.shopCursor, 0, len(items)-1)], quantity)
	}
}

func (ui *gameUI) drawShop() {
	rl.DrawRectangle(0, 0, ui.width, ui.height, rl.Fade(colorBG, 0.7))

	panel := rl.NewRectangle(float32(ui.width/2-360), 40, 720, float32(ui.height-110))
	drawPanel(panel, "")

	categories := ui.world.Catalog.Categories
	if len(categories) == 0 {
		return
	}
	ui.shopPage = clampInt(ui.shopPage, 0, len(categories)-1)
	category := categories[ui.shopPage]

	header := fmt.Sprintf("%s   (%d/%d)", category.Name, ui.shopPage+1, len(categories))
	rl.DrawText(header, int32(panel.X)+20, int32(panel.Y)+14, 26, rlColor(category.Color))

	wallet := fmt.Sprintf("$%s", game.FormatMoney(ui.world.Progress.Wallet))
	rl.DrawText(wallet, int32(panel.X+panel.Width)-20-rl.MeasureText(wallet, 26), int32(panel.Y)+14, 26, colorMoney)

	rowTop := int32(panel.Y) + 56
	rowH := int32(30)
	maxRows := (int(panel.Height) - 80) / int(rowH)
	firstRow := 0
	if ui.shopCursor >= maxRows {
		firstRow = ui.shopCursor - maxRows + 1
	}

	for i := firstRow; i < len(category.Items) && i-firstRow < maxRows; i++ {
		name := category.Items[i]
		entry, ok := ui.world.Catalog.Lookup(name)
		if !ok {
			continue
		}
		y := rowTop + int32(i-firstRow)*rowH
		if i == ui.shopCursor {
			rl.DrawRectangle(int32(panel.X)+10, y-4, int32(panel.Width)-20, rowH-2, rl.Fade(colorAccent, 0.22))
		}
		rl.DrawText(entry.Name, int32(panel.X)+22, y, 20, colorText)

		detail := shopRowDetail(ui.world, entry)
		rl.DrawText(detail, int32(panel.X)+340, y, 20, colorDim)

		cost := fmt.Sprintf("$%s", game.FormatMoney(entry.SeedCost))
		clr := colorMoney
		if ui.world.Progress.Wallet < entry.SeedCost {
			clr = colorWarn
		}
		rl.DrawText(cost, int32(panel.X+panel.Width)-22-rl.MeasureText(cost, 20), y, 20, clr)
	}

	hint := "Up/Down select   Left/Right category   Enter buy   Shift+Enter buy 10   Esc close"
	drawTextCentered(hint, panel, int32(panel.Height)-30, 17, colorDim)
}

func shopRowDetail(w *game.World, entry *game.PlantType) string {
	if entry.IsTool() {
		tier := 0
		switch entry.Tool.Kind {
		case game.ToolFertilizer:
			tier = w.Progress.FertilizerTier
		case game.ToolHoe:
			tier = w.Progress.HoeTier
		case game.ToolShovel:
			tier = w.Progress.ShovelTier
		}
		switch {
		case tier >= entry.Tool.Level:
			return "owned"
		case tier == entry.Tool.Level-1:
			return "next upgrade"
		default:
			return fmt.Sprintf("needs %s", game.ToolTierName(entry.Tool.Level-1))
		}
	}
	return fmt.Sprintf("sells $%s   %.0fs", game.FormatMoney(entry.SellValue), entry.GrowthDuration)
}
