package game

// Step is one candidate move for a piece.
type Step struct {
	From Coord `json:"from"`
	To   Coord `json:"to"`
}

var directions = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

// LegalMoves lists every move p could make on b, in board order.
func LegalMoves(b *Board, t *TerrainGrid, p Player) []Step {
	var steps []Step
	for x := 0; x < BoardSize; x++ {
		for y := 0; y < BoardSize; y++ {
			from := Coord{X: x, Y: y}
			piece := b.At(from)
			if piece == nil || piece.Owner != p {
				continue
			}
			reach := 1
			if piece.Type == Scout {
				reach = BoardSize - 1
			}
			for _, d := range directions {
				for n := 1; n <= reach; n++ {
					to := Coord{X: x + d[0]*n, Y: y + d[1]*n}
					if !ValidMove(b, t, from, to) {
						break
					}
					steps = append(steps, Step{From: from, To: to})
					if b.At(to) != nil {
						break
					}
				}
			}
		}
	}
	return steps
}

// CanMove reports whether p has at least one legal move.
func CanMove(b *Board, t *TerrainGrid, p Player) bool {
	return len(LegalMoves(b, t, p)) > 0
}
