// Package random provides the process-wide random source used for rolls.
//
// Seeds come from crypto/rand unless the caller pins one, so a pinned seed
// replays the exact same sequence of dice.
package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"io"
	"math/rand"

	apperrors "github.com/louisbranch/rolldice/internal/platform/errors"
)

// NewSource returns a math/rand source for seed. A zero seed is replaced by
// a fresh one from crypto/rand; the seed actually used is returned.
func NewSource(seed int64) (*rand.Rand, int64, error) {
	return newSourceFrom(seed, crand.Reader)
}

func newSourceFrom(seed int64, reader io.Reader) (*rand.Rand, int64, error) {
	if seed == 0 {
		generated, err := seedFrom(reader)
		if err != nil {
			return nil, 0, err
		}
		seed = generated
	}
	return rand.New(rand.NewSource(seed)), seed, nil
}

func seedFrom(reader io.Reader) (int64, error) {
	var b [8]byte
	if _, err := io.ReadFull(reader, b[:]); err != nil {
		return 0, apperrors.Wrap(apperrors.CodeSeedUnavailable, "read random seed", err)
	}

	return int64(binary.LittleEndian.Uint64(b[:])), nil
}
