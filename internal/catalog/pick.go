package catalog

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"barbershop-catalog/internal/entities"
)

// IndexFunc returns a uniformly distributed index in [0, n).
type IndexFunc func(n int) (int, error)

// CryptoIndex draws the index from crypto/rand.
func CryptoIndex(n int) (int, error) {
	idx, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0, err
	}
	return int(idx.Int64()), nil
}

// RandomPick returns one record of the full list chosen by index.
func RandomPick[T any](records []T, index IndexFunc) (T, error) {
	var zero T
	if len(records) == 0 {
		return zero, fmt.Errorf("%w: cannot pick from an empty catalog", entities.ErrInvalidState)
	}
	if index == nil {
		index = CryptoIndex
	}
	i, err := index(len(records))
	if err != nil {
		return zero, fmt.Errorf("random index: %w", err)
	}
	if i < 0 || i >= len(records) {
		return zero, fmt.Errorf("%w: index %d out of range [0, %d)", entities.ErrInvalidState, i, len(records))
	}
	return records[i], nil
}
