package game

import (
	"fmt"
	"time"
)

const (
	DefaultMapWidth  = 150
	DefaultMapHeight = 150
	TileSize         = 48

	defaultDayLengthSeconds = 600.0
	defaultStartingMoney    = 10.0
)

// WorldConfig is resolved once at world construction and immutable afterward.
type WorldConfig struct {
	MapWidth  int
	MapHeight int
	Seed      int64

	// DayLengthSeconds is the wall-clock length of a full day/night cycle.
	DayLengthSeconds float64

	StartingMoney float64
}

func DefaultWorldConfig() WorldConfig {
	return WorldConfig{
		MapWidth:         DefaultMapWidth,
		MapHeight:        DefaultMapHeight,
		DayLengthSeconds: defaultDayLengthSeconds,
		StartingMoney:    defaultStartingMoney,
	}
}

func (c WorldConfig) Validate() error {
	if c.MapWidth < 32 || c.MapHeight < 32 {
		return fmt.Errorf("map must be at least 32x32, got %dx%d", c.MapWidth, c.MapHeight)
	}
	if c.DayLengthSeconds <= 0 {
		return fmt.Errorf("day length must be positive, got %.1f", c.DayLengthSeconds)
	}
	if c.StartingMoney < 0 {
		return fmt.Errorf("starting money must not be negative, got %.2f", c.StartingMoney)
	}
	return nil
}

// withDefaults fills zero fields and picks a wall-clock seed when none is given.
func (c WorldConfig) withDefaults() WorldConfig {
	resolved := c
	if resolved.MapWidth == 0 {
		resolved.MapWidth = DefaultMapWidth
	}
	if resolved.MapHeight == 0 {
		resolved.MapHeight = DefaultMapHeight
	}
	if resolved.DayLengthSeconds == 0 {
		resolved.DayLengthSeconds = defaultDayLengthSeconds
	}
	if resolved.Seed == 0 {
		resolved.Seed = time.Now().UnixNano()
	}
	return resolved
}
