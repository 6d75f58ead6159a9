package game

// ValidPlacement reports whether p may put a piece on c. Inventory and phase
// are checked by the Match.
func ValidPlacement(b *Board, t *TerrainGrid, p Player, c Coord) bool {
	if !InBounds(c) || !inHomeRows(p, c.X) {
		return false
	}
	if t.Blocked(c) {
		return false
	}
	return b.At(c) == nil
}

// ValidMove reports whether the piece standing on from may go to to.
func ValidMove(b *Board, t *TerrainGrid, from, to Coord) bool {
	if !InBounds(from) || !InBounds(to) {
		return false
	}
	piece := b.At(from)
	if piece == nil || t.Blocked(to) {
		return false
	}

	dx, dy := to.X-from.X, to.Y-from.Y
	if piece.Type != Scout {
		if abs(dx)+abs(dy) != 1 {
			return false
		}
		return enterable(b, piece.Owner, to)
	}

	// scouts run any distance along one axis, never through terrain or pieces
	if (dx == 0) == (dy == 0) {
		return false
	}
	sx, sy := sign(dx), sign(dy)
	for c := (Coord{from.X + sx, from.Y + sy}); c != to; c = (Coord{c.X + sx, c.Y + sy}) {
		if t.Blocked(c) || b.At(c) != nil {
			return false
		}
	}
	return enterable(b, piece.Owner, to)
}

func enterable(b *Board, owner Player, c Coord) bool {
	occupant := b.At(c)
	return occupant == nil || occupant.Owner != owner
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
