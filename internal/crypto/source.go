package crypto

import (
	"io"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/chacha20"
)

// seededSource is a deterministic byte stream: the ChaCha20 keystream under a key
// derived from the seed.
type seededSource struct {
	cipher *chacha20.Cipher
}

// NewSeededSource returns a reader that yields the same bytes for the same seed.
// Output is reproducible, so it must only be used for fixtures and tests.
// The returned reader is not safe for concurrent use.
func NewSeededSource(seed string) io.Reader {
	key := blake2b.Sum256([]byte(seed))
	nonce := make([]byte, chacha20.NonceSize)

	// Key and nonce sizes are fixed above, so this cannot fail.
	c, err := chacha20.NewUnauthenticatedCipher(key[:], nonce)
	if err != nil {
		panic(err)
	}
	return &seededSource{cipher: c}
}

func (s *seededSource) Read(p []byte) (int, error) {
	clear(p)
	s.cipher.XORKeyStream(p, p)
	return len(p), nil
}
