package punch

import "fmt"

// Weights lists the plate's bit-weight columns, highest first. One
// column per bit of a 12-bit wordlist position. This is configuration
// data for the plate geometry, not a derived value; a different plate
// layout means editing this list.
var Weights = []int{2048, 1024, 512, 256, 128, 64, 32, 16, 8, 4, 2, 1}

// MaxIndex is the highest 1-based wordlist position a plate can encode.
const MaxIndex = 2048

// Decompose returns the subset of Weights whose sum equals index, in
// descending order. This is the binary representation of index read as
// weights rather than digits, so the subset is unique.
func Decompose(index int) ([]int, error) {
	if index < 1 || index > MaxIndex {
		return nil, fmt.Errorf("punch: index %d out of range [1, %d]", index, MaxIndex)
	}
	out := make([]int, 0, len(Weights))
	for _, w := range Weights {
		if index&w != 0 {
			out = append(out, w)
		}
	}
	return out, nil
}

// SelfCheck verifies, for every encodable position, that the punched
// weights sum back to the position exactly.
func SelfCheck() error {
	for i := 1; i <= MaxIndex; i++ {
		ws, err := Decompose(i)
		if err != nil {
			return err
		}
		sum := 0
		for _, w := range ws {
			sum += w
		}
		if sum != i {
			return fmt.Errorf("punch: weights for %d sum to %d", i, sum)
		}
	}
	return nil
}
