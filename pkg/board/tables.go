package board

// Precomputed, process-wide immutable tables over all 65,536 Row values.
// Constructed once at package init, idempotently -- see the Shared resources
// note in SPEC_FULL.md §5.
var (
	leftTable  [NumRows]Row
	rightTable [NumRows]Row
	upTable    [NumRows]uint64
	downTable  [NumRows]uint64
	scoreTable [NumRows]float64
)

func init() {
	AllRows(func(r Row) {
		moved := r.Moved()
		rev := r.Reversed()
		revMoved := moved.Reversed()

		leftTable[r] = moved
		rightTable[rev] = revMoved
		upTable[r] = moved.AsColumn()
		downTable[rev] = revMoved.AsColumn()

		scoreTable[r] = r.Score()
	})
}
