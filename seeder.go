package lotto649

import (
	"crypto/rand"
	"encoding/binary"
	"time"
	"unsafe"
)

// Seed produces one 64-bit seed for the engine. It prefers the platform
// cryptographic source and silently falls back to a time-based composite when
// that source is unavailable. The fallback is NOT security grade; see the
// package documentation on suitability.
func Seed() uint64 {
	if s, err := secureSeed(); err == nil {
		return s
	}
	return fallbackSeed()
}

// secureSeed reads 8 bytes from the platform CSPRNG
func secureSeed() (uint64, error) {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0, ErrEntropyUnavailable
	}
	return binary.LittleEndian.Uint64(buf[:]), nil
}

// fallbackSeed combines wall-clock seconds, the high-resolution nanosecond
// clock and the address of a local variable, which varies across launches
// under address-space layout randomization.
func fallbackSeed() uint64 {
	entropy := uint64(time.Now().Unix())
	entropy ^= uint64(time.Now().UnixNano())
	entropy ^= uint64(uintptr(unsafe.Pointer(&entropy)))
	return entropy
}
