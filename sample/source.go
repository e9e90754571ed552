package sample

import (
	crand "crypto/rand"
	"encoding/binary"

	"golang.org/x/crypto/chacha20"
)

// Source is a deterministic math/rand/v2 Source that reads 64-bit values
// from a ChaCha20 keystream. It is not safe for concurrent use.
type Source struct {
	stream *chacha20.Cipher
	block  [64]byte
	pos    int
}

// NewSource returns a Source whose output is fully determined by seed.
func NewSource(seed uint64) *Source {
	var key [chacha20.KeySize]byte
	binary.LittleEndian.PutUint64(key[:8], seed)
	return newSource(key)
}

// newEntropySource returns a Source keyed from crypto/rand.
func newEntropySource() *Source {
	var key [chacha20.KeySize]byte
	_, _ = crand.Read(key[:])
	return newSource(key)
}

func newSource(key [chacha20.KeySize]byte) *Source {
	var nonce [chacha20.NonceSize]byte
	stream, err := chacha20.NewUnauthenticatedCipher(key[:], nonce[:])
	if err != nil {
		// Only reachable with a malformed key or nonce length.
		panic("sample: " + err.Error())
	}
	s := &Source{stream: stream}
	s.pos = len(s.block)
	return s
}

// Uint64 returns the next 64 bits of keystream.
func (s *Source) Uint64() uint64 {
	if s.pos+8 > len(s.block) {
		clear(s.block[:])
		s.stream.XORKeyStream(s.block[:], s.block[:])
		s.pos = 0
	}
	v := binary.LittleEndian.Uint64(s.block[s.pos:])
	s.pos += 8
	return v
}
