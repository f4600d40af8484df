package board

// Row is a single 4-tile row (or column), packed little-endian into a 16-bit
// word: the tile at position i occupies bits [4i, 4i+4). A nibble value of e
// denotes a tile of exponent e, with 0 meaning empty. Tiles of exponent 15
// never merge.
type Row uint16

const (
	// NumRows is the number of distinct 16-bit Row values, i.e., 4 nibbles.
	NumRows = 1 << 16

	tileMask        = 0xF
	maxTileExponent = 15
)

// NewRow packs four tile exponents, in position order, into a Row.
func NewRow(tiles [4]uint8) Row {
	var r Row
	for i, t := range tiles {
		if t > maxTileExponent {
			panic("invalid tile exponent")
		}
		r |= Row(t) << (4 * uint(i))
	}
	return r
}

// TileAt returns the tile exponent at position i (0-3).
func (r Row) TileAt(i int) uint8 {
	return uint8((r >> (4 * uint(i))) & tileMask)
}

// Score is the sum, over non-empty tiles, of (e-1)*2^e.
func (r Row) Score() float64 {
	var score float64
	for i := 0; i < 4; i++ {
		if t := r.TileAt(i); t > 1 {
			score += float64(t-1) * float64(uint32(1)<<t)
		}
	}
	return score
}

// CountEmpties returns the number of zero nibbles.
func (r Row) CountEmpties() int {
	empties := 0
	for i := 0; i < 4; i++ {
		if r.TileAt(i) == 0 {
			empties++
		}
	}
	return empties
}

// Reversed returns the row with tiles in reverse position order.
func (r Row) Reversed() Row {
	return NewRow([4]uint8{r.TileAt(3), r.TileAt(2), r.TileAt(1), r.TileAt(0)})
}

// AsColumn spreads the row's four nibbles into a column-major 64-bit pattern,
// shifting them left by 0, 12, 24 and 36 bits so that nibble i lands at bit
// 16i -- i.e., as if the row were column 0 of a Board.
func (r Row) AsColumn() uint64 {
	tmp := uint64(r)
	return (tmp | (tmp << 12) | (tmp << 24) | (tmp << 36)) & columnMask
}

const columnMask uint64 = 0x000F_000F_000F_000F

// Moved returns the canonical left-slide of the row: tiles gravitate left,
// then adjacent equal pairs merge (each tile participating in at most one
// merge), repeated until the row is stable. Deterministic; depends only on r.
func (r Row) Moved() Row {
	var tiles [4]uint8
	var merged [4]bool
	for i := range tiles {
		tiles[i] = r.TileAt(i)
	}

	for changed := true; changed; {
		changed = false
		for i := 0; i < 3; i++ {
			switch {
			case tiles[i] == 0 && tiles[i+1] != 0:
				tiles[i], tiles[i+1] = tiles[i+1], 0
				merged[i], merged[i+1] = merged[i+1], false
				changed = true
			case tiles[i] != 0 && tiles[i] == tiles[i+1] && tiles[i] != maxTileExponent && !merged[i] && !merged[i+1]:
				tiles[i]++
				tiles[i+1] = 0
				merged[i] = true
				changed = true
			}
		}
	}
	return NewRow(tiles)
}

// AllRows iterates over every one of the 65,536 possible Row values, in
// ascending order.
func AllRows(fn func(r Row)) {
	for i := 0; i < NumRows; i++ {
		fn(Row(i))
	}
}
