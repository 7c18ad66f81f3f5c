package game

const (
	playerBaseSpeed      = 160.0 // pixels per second
	playerSprintMultiple = 3.0
)

// MoveInput is one frame of directional intent. The front end translates
// key state into this so the sim never sees input devices.
type MoveInput struct {
	Left   bool
	Right  bool
	Up     bool
	Down   bool
	Sprint bool
}

// Player is the avatar's pixel position over the tile grid.
type Player struct {
	X float64
	Y float64
}

func NewPlayer(grid *Grid) *Player {
	cx, cy := grid.SellAreaCenter()
	return &Player{
		X: float64(cx * TileSize),
		Y: float64(cy * TileSize),
	}
}

// Move applies one frame of movement, blocked by water and the map edge.
func (p *Player) Move(dt float64, input MoveInput, grid *Grid) {
	speed := playerBaseSpeed
	if input.Sprint {
		speed *= playerSprintMultiple
	}
	var dx, dy float64
	if input.Left {
		dx -= speed * dt
	}
	if input.Right {
		dx += speed * dt
	}
	if input.Up {
		dy -= speed * dt
	}
	if input.Down {
		dy += speed * dt
	}

	newX := clampFloat(p.X+dx, 0, float64((grid.Width-1)*TileSize))
	newY := clampFloat(p.Y+dy, 0, float64((grid.Height-1)*TileSize))
	if grid.IsWalkable(int(newX)/TileSize, int(newY)/TileSize) {
		p.X = newX
		p.Y = newY
	}
}

// Tile is the tile the player is standing on.
func (p *Player) Tile() TileCoord {
	return TileCoord{X: int(p.X) / TileSize, Y: int(p.Y) / TileSize}
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
