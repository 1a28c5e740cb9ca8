package lotto649

import (
	"crypto/rand"
	"encoding/binary"
	"sync"
)

// SecureSource produces 64-bit values from the platform CSPRNG with batched
// reads. Unlike Engine it is fallible: a read error surfaces from NextChecked,
// so it does not satisfy RandomSource directly. Wrap it in a
// CircuitBreakerSource to get an infallible RandomSource with PRNG fallback.
type SecureSource struct {
	cache      []uint64
	cacheSize  int
	cacheIndex int
	cacheMtx   sync.Mutex
}

// NewSecureSource creates a secure source with the given cache size.
//
// If no cache size is provided, the default cache size is used.
// The cache size should be a positive integer.
func NewSecureSource(cacheSize ...int) *SecureSource {
	size := DefaultSecureCacheSize
	if len(cacheSize) > 0 && cacheSize[0] > 0 {
		size = cacheSize[0]
	}

	return &SecureSource{
		cache:      make([]uint64, 0, size),
		cacheSize:  size,
		cacheIndex: 0,
	}
}

// refillCache refills the cache with one batched CSPRNG read
func (s *SecureSource) refillCache() error {
	buf := make([]byte, s.cacheSize*8)
	if _, err := rand.Read(buf); err != nil {
		return ErrEntropyUnavailable
	}

	s.cache = s.cache[:0]
	for i := 0; i < s.cacheSize; i++ {
		s.cache = append(s.cache, binary.LittleEndian.Uint64(buf[i*8:]))
	}
	s.cacheIndex = 0
	return nil
}

// NextChecked returns the next 64-bit secure random value, or an error if the
// platform source fails a read.
func (s *SecureSource) NextChecked() (uint64, error) {
	s.cacheMtx.Lock()
	defer s.cacheMtx.Unlock()

	if s.cacheIndex >= len(s.cache) {
		if err := s.refillCache(); err != nil {
			return 0, err
		}
	}

	v := s.cache[s.cacheIndex]
	s.cacheIndex++
	return v, nil
}
