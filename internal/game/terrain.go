package game

const BoardSize = 7

type Terrain int

const (
	Plain Terrain = iota
	Obstacle
	HomeMarker // cosmetic only
)

type TerrainGrid [BoardSize][BoardSize]Terrain

// DefaultTerrain returns the fixed layout every match is played on: a river row
// at x=3 with three crossings, four lakes flanking it and home markers in the corners.
func DefaultTerrain() TerrainGrid {
	var t TerrainGrid
	for _, y := range []int{0, 2, 4, 6} {
		t[3][y] = Obstacle
	}
	t[2][2] = Obstacle
	t[2][4] = Obstacle
	t[4][2] = Obstacle
	t[4][4] = Obstacle

	t[0][0] = HomeMarker
	t[0][6] = HomeMarker
	t[6][0] = HomeMarker
	t[6][6] = HomeMarker
	return t
}

func (t *TerrainGrid) At(c Coord) Terrain { return t[c.X][c.Y] }

func (t *TerrainGrid) Blocked(c Coord) bool { return t[c.X][c.Y] == Obstacle }

// InBounds reports whether c lies on the board.
func InBounds(c Coord) bool {
	return c.X >= 0 && c.X < BoardSize && c.Y >= 0 && c.Y < BoardSize
}

// HomeRows returns the x values a player may place on.
func HomeRows(p Player) []int {
	if p == Player1 {
		return []int{0, 1, 2}
	}
	return []int{4, 5, 6}
}

func inHomeRows(p Player, x int) bool {
	switch p {
	case Player1:
		return x >= 0 && x <= 2
	case Player2:
		return x >= 4 && x < BoardSize
	}
	return false
}
