package enrichment

import (
	"encoding/binary"

	"github.com/minio/blake2b-simd"
)

// SetSeed derives the seed used for one gene set's permutations from the run
// seed and the set's name. Each set gets its own stream regardless of the
// order in which sets are scheduled.
func SetSeed(seed int64, name string) int64 {
	h := blake2b.New256()

	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(seed))
	h.Write(buf[:])
	h.Write([]byte(name))

	return int64(binary.LittleEndian.Uint64(h.Sum(nil)[:8]))
}
