package ai

import "reversi-local/board"

// Evaluate scores b from perspective's point of view: the weights under
// Light discs minus the weights under Dark discs, negated for Dark.
func Evaluate(b board.Board, perspective board.Tile, w WeightTable) float64 {
	var light, dark float64
	size := b.Size()
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			switch b.At(board.Coord{Col: col, Row: row}) {
			case board.Light:
				light += w[row][col]
			case board.Dark:
				dark += w[row][col]
			}
		}
	}
	if perspective == board.Light {
		return light - dark
	}
	return dark - light
}
