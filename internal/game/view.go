package game

// View projects b for viewer: own and revealed pieces are shown as they are,
// hidden opponent pieces keep their owner but lose their type. The result
// shares no pointers with b.
func View(b *Board, viewer Player) Board {
	var out Board
	for x := range b {
		for y := range b[x] {
			p := b[x][y]
			if p == nil {
				continue
			}
			if p.Owner == viewer || p.Revealed {
				cp := *p
				out[x][y] = &cp
				continue
			}
			out[x][y] = &Piece{Type: Unknown, Owner: p.Owner}
		}
	}
	return out
}
