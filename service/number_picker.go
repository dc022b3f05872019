package service

import (
	"crypto/rand"
	"fmt"
	"math/big"
	mathrand "math/rand"
)

// cryptoPicker draws from crypto/rand
type cryptoPicker struct{}

// NewCryptoPicker creates a picker backed by the operating system's secure random source
func NewCryptoPicker() NumberPicker {
	return cryptoPicker{}
}

func (cryptoPicker) PickUniqueNumbersInRange(start, end, count int) ([]int, error) {
	return pickUnique(start, end, count, func(n int) (int, error) {
		v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
		if err != nil {
			return 0, fmt.Errorf("failed to generate random number: %w", err)
		}
		return int(v.Int64()), nil
	})
}

// seededPicker is reproducible for a given seed. Not safe for concurrent use.
type seededPicker struct {
	rng *mathrand.Rand
}

// NewSeededPicker creates a deterministic picker, used when a seed is configured
func NewSeededPicker(seed int64) NumberPicker {
	return &seededPicker{rng: mathrand.New(mathrand.NewSource(seed))}
}

func (p *seededPicker) PickUniqueNumbersInRange(start, end, count int) ([]int, error) {
	return pickUnique(start, end, count, func(n int) (int, error) {
		return p.rng.Intn(n), nil
	})
}

// pickUnique runs a partial Fisher-Yates shuffle over [start, end].
// intn must return a uniform value in [0, n).
func pickUnique(start, end, count int, intn func(n int) (int, error)) ([]int, error) {
	if start > end {
		return nil, fmt.Errorf("invalid range [%d, %d]", start, end)
	}
	size := end - start + 1
	if count < 0 || count > size {
		return nil, fmt.Errorf("cannot pick %d unique numbers from %d candidates", count, size)
	}

	pool := make([]int, size)
	for i := range pool {
		pool[i] = start + i
	}

	for i := 0; i < count; i++ {
		j, err := intn(size - i)
		if err != nil {
			return nil, err
		}
		j += i
		pool[i], pool[j] = pool[j], pool[i]
	}

	return pool[:count], nil
}
