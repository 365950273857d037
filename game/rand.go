package game

import (
	"encoding/binary"
	"strconv"

	"github.com/cespare/xxhash"
	"lukechampine.com/frand"
)

// RandSource is the injectable randomness capability. Only a bounded
// integer draw is needed, so fakes are a one-liner.
type RandSource interface {
	Intn(n int) int
}

type frandSource struct {
	rng *frand.RNG
}

func (s frandSource) Intn(n int) int {
	return s.rng.Intn(n)
}

// NewRandSource returns a cryptographically seeded source.
func NewRandSource() RandSource {
	return frandSource{rng: frand.New()}
}

// NewSeededRandSource derives a deterministic source from a seed string, so
// a session (and its tests) can be replayed. The seed is stretched into key
// material by hashing it with a per-block counter.
func NewSeededRandSource(seed string) RandSource {
	var key [32]byte
	for i := 0; i < 4; i++ {
		h := xxhash.Sum64String(seed + "/" + strconv.Itoa(i))
		binary.LittleEndian.PutUint64(key[i*8:], h)
	}
	return frandSource{rng: frand.NewCustom(key[:], 1024, 12)}
}
