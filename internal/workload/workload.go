package workload

import (
	"errors"
	"fmt"
	"math/rand"
)

type Distribution string

const (
	Uniform Distribution = "uniform"
	Zipf    Distribution = "zipf"
)

// zipfS is the skew used for Zipf workloads; larger is more skewed.
const zipfS = 1.1

var ErrInvalidParams = errors.New("workload: invalid params")

type Params struct {
	Operations   int
	KeySpace     int
	Seed         int64
	Distribution Distribution
}

// Generate returns Operations keys in [1, KeySpace]. The same Params always
// yields the same sequence.
func Generate(p Params) ([]int, error) {
	if p.Operations < 0 {
		return nil, fmt.Errorf("%w: operations must not be negative, got %d", ErrInvalidParams, p.Operations)
	}
	if p.KeySpace < 1 {
		return nil, fmt.Errorf("%w: key space must be at least 1, got %d", ErrInvalidParams, p.KeySpace)
	}

	rng := rand.New(rand.NewSource(p.Seed))
	keys := make([]int, 0, p.Operations)

	switch p.Distribution {
	case Uniform, "":
		for i := 0; i < p.Operations; i++ {
			keys = append(keys, rng.Intn(p.KeySpace)+1)
		}
	case Zipf:
		if p.KeySpace == 1 {
			for i := 0; i < p.Operations; i++ {
				keys = append(keys, 1)
			}
			break
		}
		z := rand.NewZipf(rng, zipfS, 1, uint64(p.KeySpace-1))
		for i := 0; i < p.Operations; i++ {
			keys = append(keys, int(z.Uint64())+1)
		}
	default:
		return nil, fmt.Errorf("%w: unknown distribution %q", ErrInvalidParams, p.Distribution)
	}

	return keys, nil
}
