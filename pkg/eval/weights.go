package eval

import (
	_ "embed"
	"encoding/json"
	"fmt"
)

//go:embed weights/legacy.json
var optimizedLegacyJSON []byte

//go:embed weights/ntuple_small.json
var optimizedNTupleSmallJSON []byte

//go:embed weights/ntuple_medium.json
var optimizedNTupleMediumJSON []byte

// loadWeights unmarshals a canonical embedded weight blob into dst. Panics if
// the blob is malformed: the embedded data is a compile-time asset of this
// module, not user input, so a failure here can only be a packaging defect.
func loadWeights(data []byte, dst any) {
	if err := json.Unmarshal(data, dst); err != nil {
		panic(fmt.Sprintf("eval: corrupt embedded weights: %v", err))
	}
}
