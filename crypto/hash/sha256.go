package hash

import (
	"encoding/hex"
)

const (
	SHA256_HASH_SIZE_BYTES  = 32
	SHA256_BLOCK_SIZE_BYTES = 64
)

// Digest is a complete SHA-256 hash value. It is returned by value so callers
// never hand over an output buffer that could be the wrong size.
type Digest [SHA256_HASH_SIZE_BYTES]byte

func (d Digest) String() string {
	return hex.EncodeToString(d[:])
}

func (d Digest) Bytes() []byte {
	res := make([]byte, SHA256_HASH_SIZE_BYTES)
	copy(res, d[:])
	return res
}

func (d Digest) Equal(other Digest) bool {
	return d == other
}

func CalcSha256(data ...[]byte) Digest {
	engine := NewSha256Engine()
	for _, chunk := range data {
		_ = engine.Absorb(chunk) // a fresh engine cannot be misused here
	}
	digest, _ := engine.Finalize()
	return digest
}
